package main

import (
	"context"
	"errors"
	"fmt"
	"log"
	"os"

	"github.com/lolocompany/kafka-unauth/cmd/kafka-unauth/commands"
	"github.com/lolocompany/kafka-unauth/cmd/kafka-unauth/util"
	"github.com/urfave/cli/v3"
)

// exitExposed is the process status for --fail-on-exposed when access was confirmed.
const exitExposed = 3

func newApp() *cli.Command {
	return &cli.Command{
		Name:  "kafka-unauth",
		Usage: "Check a Kafka broker and its web console for unauthenticated access",
		Description: "Lists topics, reads existing messages, writes a marked test message and fetches the web console, all without credentials. " +
			"Use only against systems you are authorized to assess.",
		Flags: append(util.TargetFlags(), util.GlobalFlags()...),
		Commands: []*cli.Command{
			commands.DebugCommand(),
			versionCommand(),
		},
		Action: scanAction,
	}
}

func main() {
	if err := newApp().Run(context.Background(), os.Args); err != nil {
		if errors.Is(err, errExposed) {
			fmt.Fprintln(os.Stderr, err)
			os.Exit(exitExposed)
		}
		log.Fatal(err)
	}
}
