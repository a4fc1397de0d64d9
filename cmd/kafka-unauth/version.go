package main

import (
	"context"
	"fmt"

	global "github.com/lolocompany/kafka-unauth"
	"github.com/urfave/cli/v3"
)

func versionCommand() *cli.Command {
	return &cli.Command{
		Name:        "version",
		Usage:       "Print version information",
		Description: "Display the current version of kafka-unauth.",
		Action: func(ctx context.Context, cmd *cli.Command) error {
			_, err := fmt.Fprintf(cmd.Root().Writer, "kafka-unauth version %s\n", global.Version)
			return err
		},
	}
}
