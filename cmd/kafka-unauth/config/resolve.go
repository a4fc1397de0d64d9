package config

import (
	"cmp"
	"fmt"

	"github.com/lolocompany/kafka-unauth/pkg"
	"github.com/lolocompany/kafka-unauth/pkg/kafka"
)

// ResolveProfile returns the profile identified by profileName from cfg.
// If profileName is empty, DefaultProfile is used when set; with neither, an
// empty profile is returned.
func ResolveProfile(cfg Config, profileName string) (Profile, error) {
	if profileName == "" {
		profileName = cfg.DefaultProfile
	}
	if profileName == "" {
		return Profile{}, nil
	}

	p, ok := cfg.Profiles[profileName]
	if !ok {
		return Profile{}, fmt.Errorf("profile %q not found in config", profileName)
	}
	return p, nil
}

// Resolve determines the settings for a scan.
// Precedence (highest to lowest): explicitly set flags, profile from config, built-in defaults.
func Resolve(cfg Config, profileName string, flags Profile) (Settings, error) {
	profile, err := ResolveProfile(cfg, profileName)
	if err != nil {
		return Settings{}, err
	}

	target, err := pkg.NewTarget(
		cmp.Or(flags.KafkaHost, profile.KafkaHost),
		cmp.Or(flags.KafkaPort, profile.KafkaPort),
		cmp.Or(flags.WebHost, profile.WebHost),
		cmp.Or(flags.WebPort, profile.WebPort),
	)
	if err != nil {
		return Settings{}, fmt.Errorf("%w; set --kafka-ip or kafka_ip in a profile", err)
	}

	driver, err := kafka.ParseDriver(cmp.Or(flags.Client, profile.Client))
	if err != nil {
		return Settings{}, err
	}

	displayLimit := pkg.DefaultDisplayLimit
	if n := cmp.Or(flags.DisplayLimit, profile.DisplayLimit); n != nil {
		displayLimit = *n
	}
	if displayLimit < 0 {
		return Settings{}, fmt.Errorf("display limit must not be negative, got %d", displayLimit)
	}

	return Settings{
		Target:         target,
		Driver:         driver,
		DisplayLimit:   displayLimit,
		IdleTimeout:    cmp.Or(flags.IdleTimeout, profile.IdleTimeout, pkg.DefaultIdleTimeout),
		AckTimeout:     cmp.Or(flags.AckTimeout, profile.AckTimeout, pkg.DefaultAckTimeout),
		ConsoleTimeout: cmp.Or(flags.ConsoleTimeout, profile.ConsoleTimeout, pkg.DefaultConsoleTimeout),
		DialTimeout:    cmp.Or(flags.DialTimeout, profile.DialTimeout, kafka.DefaultDialTimeout),
	}, nil
}
