package commands

import (
	"context"
	"fmt"

	"github.com/lolocompany/kafka-unauth/cmd/kafka-unauth/config"
	"github.com/lolocompany/kafka-unauth/cmd/kafka-unauth/util"
	"github.com/urfave/cli/v3"
	"gopkg.in/yaml.v3"
)

// ConfigCommand prints the settings a scan would run with, after merging
// flags, the selected profile and defaults.
func ConfigCommand() *cli.Command {
	return &cli.Command{
		Name:        "config",
		Usage:       "Print the resolved scan settings",
		Description: "Resolve flags, configuration profile and defaults, and print the result as YAML without contacting any host.",
		Action: func(ctx context.Context, cmd *cli.Command) error {
			cfg, err := config.LoadConfig(cmd.String("config"))
			if err != nil {
				return err
			}
			settings, err := config.Resolve(cfg, cmd.String("profile"), util.ProfileFromFlags(cmd))
			if err != nil {
				return err
			}
			data, err := yaml.Marshal(settings.Profile())
			if err != nil {
				return fmt.Errorf("failed to marshal settings: %w", err)
			}
			_, err = cmd.Root().Writer.Write(data)
			return err
		},
	}
}
