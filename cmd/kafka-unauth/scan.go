package main

import (
	"context"
	"errors"
	"io"

	"github.com/lolocompany/kafka-unauth/cmd/kafka-unauth/config"
	"github.com/lolocompany/kafka-unauth/cmd/kafka-unauth/output"
	"github.com/lolocompany/kafka-unauth/cmd/kafka-unauth/util"
	"github.com/lolocompany/kafka-unauth/pkg"
	"github.com/lolocompany/kafka-unauth/pkg/kafka"
	"github.com/urfave/cli/v3"
)

var errExposed = errors.New("unauthenticated access confirmed")

func scanAction(ctx context.Context, cmd *cli.Command) error {
	cfg, err := config.LoadConfig(cmd.String("config"))
	if err != nil {
		return err
	}
	settings, err := config.Resolve(cfg, cmd.String("profile"), util.ProfileFromFlags(cmd))
	if err != nil {
		return err
	}
	format, err := output.ParseFormat(cmd.String("format"))
	if err != nil {
		return err
	}

	client, err := kafka.New(settings.Driver, kafka.Options{
		Brokers:     []string{settings.Target.BrokerAddr()},
		DialTimeout: settings.DialTimeout,
	})
	if err != nil {
		return err
	}

	var logWriter io.Writer
	var progress pkg.ProgressReporter
	if !cmd.Bool("quiet") {
		logWriter = cmd.Root().ErrWriter
		if output.IsTTY(logWriter) {
			progress = NewDrainProgressReporter(logWriter)
		}
	}

	encoder := output.NewEncoder(format, cmd.Root().Writer)
	if err := encoder.EncodeTarget(settings.Target); err != nil {
		return err
	}

	report, err := pkg.Scan(ctx, pkg.ScanConfig{
		Target:           settings.Target,
		Client:           client,
		DisplayLimit:     settings.DisplayLimit,
		IdleTimeout:      settings.IdleTimeout,
		AckTimeout:       settings.AckTimeout,
		ConsoleTimeout:   settings.ConsoleTimeout,
		TimeProvider:     pkg.RealTimeProvider{},
		ProgressReporter: progress,
		LogWriter:        logWriter,
		OnResult:         encoder.EncodeResult,
	})
	if err != nil {
		return err
	}
	if err := encoder.EncodeSummary(report); err != nil {
		return err
	}

	if cmd.Bool("fail-on-exposed") && report.Exposed() {
		return errExposed
	}
	return nil
}
