package util

import (
	"time"

	"github.com/lolocompany/kafka-unauth/cmd/kafka-unauth/config"
	"github.com/urfave/cli/v3"
)

// GlobalFlags returns the flags shared by the root scan and every subcommand.
// They are not local, so they can also be given after a subcommand name.
func GlobalFlags() []cli.Flag {
	return []cli.Flag{
		&cli.StringFlag{
			Name:    "config",
			Usage:   "Path to configuration file (defaults to ./kafka-unauth.yaml, then ~/.kafka-unauth/config.yaml)",
			Sources: cli.EnvVars("KAFKA_UNAUTH_CONFIG"),
			Local:   false,
		},
		&cli.StringFlag{
			Name:    "profile",
			Usage:   "Profile name to use from configuration",
			Sources: cli.EnvVars("KAFKA_UNAUTH_PROFILE"),
			Local:   false,
		},
		&cli.StringFlag{
			Name:    "format",
			Aliases: []string{"f"},
			Usage:   "Output format: text (default) or json (one object per line)",
			Local:   false,
		},
		&cli.BoolFlag{
			Name:    "quiet",
			Aliases: []string{"q"},
			Usage:   "Suppress status logging and the drain spinner on stderr",
			Value:   false,
			Local:   false,
		},
	}
}

// TargetFlags returns the flags that describe what to probe and how long to
// wait for each probe.
func TargetFlags() []cli.Flag {
	return []cli.Flag{
		&cli.StringFlag{
			Name:    "kafka-ip",
			Aliases: []string{"k"},
			Usage:   "Kafka broker host, e.g. 192.168.1.10 (required unless set by a profile)",
		},
		&cli.IntFlag{
			Name:    "kafka-port",
			Aliases: []string{"kp"},
			Usage:   "Kafka broker port",
			Value:   9092,
		},
		&cli.StringFlag{
			Name:    "web-ip",
			Aliases: []string{"w"},
			Usage:   "Web console host (defaults to the Kafka host)",
		},
		&cli.IntFlag{
			Name:    "web-port",
			Aliases: []string{"wp"},
			Usage:   "Web console port",
			Value:   9090,
		},
		&cli.StringFlag{
			Name:    "client",
			Aliases: []string{"c"},
			Usage:   "Kafka client library: kafka-go or sarama",
			Value:   "kafka-go",
		},
		&cli.IntFlag{
			Name:    "display-limit",
			Aliases: []string{"n"},
			Usage:   "Number of consumed messages to print (0 prints none)",
			Value:   3,
		},
		&cli.DurationFlag{
			Name:  "idle-timeout",
			Usage: "Consider a partition drained after this long without a message",
			Value: 5 * time.Second,
		},
		&cli.DurationFlag{
			Name:  "ack-timeout",
			Usage: "Maximum wait for the produce acknowledgement",
			Value: 5 * time.Second,
		},
		&cli.DurationFlag{
			Name:  "console-timeout",
			Usage: "Maximum wait for the web console response",
			Value: 5 * time.Second,
		},
		&cli.DurationFlag{
			Name:  "dial-timeout",
			Usage: "Kafka connection and metadata timeout",
			Value: 10 * time.Second,
		},
		&cli.BoolFlag{
			Name:  "fail-on-exposed",
			Usage: "Exit with status 3 when any probe confirms unauthenticated access",
		},
	}
}

// ProfileFromFlags collects the flags the user set explicitly, so unset ones
// fall through to the profile and the built-in defaults.
func ProfileFromFlags(cmd *cli.Command) config.Profile {
	var p config.Profile
	if cmd.IsSet("kafka-ip") {
		p.KafkaHost = cmd.String("kafka-ip")
	}
	if cmd.IsSet("kafka-port") {
		p.KafkaPort = cmd.Int("kafka-port")
	}
	if cmd.IsSet("web-ip") {
		p.WebHost = cmd.String("web-ip")
	}
	if cmd.IsSet("web-port") {
		p.WebPort = cmd.Int("web-port")
	}
	if cmd.IsSet("client") {
		p.Client = cmd.String("client")
	}
	if cmd.IsSet("display-limit") {
		n := cmd.Int("display-limit")
		p.DisplayLimit = &n
	}
	if cmd.IsSet("idle-timeout") {
		p.IdleTimeout = cmd.Duration("idle-timeout")
	}
	if cmd.IsSet("ack-timeout") {
		p.AckTimeout = cmd.Duration("ack-timeout")
	}
	if cmd.IsSet("console-timeout") {
		p.ConsoleTimeout = cmd.Duration("console-timeout")
	}
	if cmd.IsSet("dial-timeout") {
		p.DialTimeout = cmd.Duration("dial-timeout")
	}
	return p
}
