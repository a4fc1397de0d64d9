package config

import (
	"time"

	"github.com/lolocompany/kafka-unauth/pkg"
	"github.com/lolocompany/kafka-unauth/pkg/kafka"
)

// Profile represents a named target together with the probe limits to use
// against it. Zero values mean "not set" and fall through to the next source,
// except DisplayLimit where nil means "not set" and 0 prints no bodies.
type Profile struct {
	KafkaHost      string        `json:"kafka_ip" yaml:"kafka_ip"`
	KafkaPort      int           `json:"kafka_port" yaml:"kafka_port"`
	WebHost        string        `json:"web_ip" yaml:"web_ip"`
	WebPort        int           `json:"web_port" yaml:"web_port"`
	Client         string        `json:"client" yaml:"client"`
	DisplayLimit   *int          `json:"display_limit,omitempty" yaml:"display_limit,omitempty"`
	IdleTimeout    time.Duration `json:"idle_timeout" yaml:"idle_timeout"`
	AckTimeout     time.Duration `json:"ack_timeout" yaml:"ack_timeout"`
	ConsoleTimeout time.Duration `json:"console_timeout" yaml:"console_timeout"`
	DialTimeout    time.Duration `json:"dial_timeout" yaml:"dial_timeout"`
}

// Config is the top-level configuration structure loaded from disk.
type Config struct {
	Profiles       map[string]Profile `json:"profiles" yaml:"profiles"`
	DefaultProfile string             `json:"default_profile" yaml:"default_profile"`
}

// Settings is the fully resolved input of a scan.
type Settings struct {
	Target         pkg.Target
	Driver         kafka.Driver
	DisplayLimit   int
	IdleTimeout    time.Duration
	AckTimeout     time.Duration
	ConsoleTimeout time.Duration
	DialTimeout    time.Duration
}

// Profile renders s back into profile form, e.g. for printing.
func (s Settings) Profile() Profile {
	return Profile{
		KafkaHost:      s.Target.KafkaHost,
		KafkaPort:      s.Target.KafkaPort,
		WebHost:        s.Target.WebHost,
		WebPort:        s.Target.WebPort,
		Client:         string(s.Driver),
		DisplayLimit:   &s.DisplayLimit,
		IdleTimeout:    s.IdleTimeout,
		AckTimeout:     s.AckTimeout,
		ConsoleTimeout: s.ConsoleTimeout,
		DialTimeout:    s.DialTimeout,
	}
}
