package commands

import (
	"context"

	"github.com/urfave/cli/v3"
)

// DebugCommand groups helpers for checking how a scan is set up before it
// touches the target.
func DebugCommand() *cli.Command {
	return &cli.Command{
		Name:        "debug",
		Usage:       "Inspect scan setup without probing the target",
		Description: "Show how flags, config profiles and defaults combine into the settings a scan would use. Nothing here connects to the broker or the console.",
		Commands: []*cli.Command{
			ConfigCommand(),
		},
		Action: func(ctx context.Context, cmd *cli.Command) error {
			return cli.ShowSubcommandHelp(cmd)
		},
	}
}
