package pkg

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"time"
)

// KafkaClient is everything the Kafka probes need from a backend.
type KafkaClient interface {
	TopicLister
	MessageConsumer
	MessageProducer
}

// ScanConfig holds configuration for the Scan function
type ScanConfig struct {
	Target           Target
	Client           KafkaClient
	HTTPClient       *http.Client
	DisplayLimit     int
	IdleTimeout      time.Duration
	AckTimeout       time.Duration
	ConsoleTimeout   time.Duration
	TimeProvider     TimeProvider
	ProgressReporter ProgressReporter
	LogWriter        io.Writer
	// OnResult is called as soon as each probe finishes.
	OnResult func(Result) error
}

// Scan runs the topic, consume, produce and console probes in that order.
// Consume and produce depend on the topic probe and are skipped when it
// fails. The console probe always runs. Only an OnResult error aborts a scan.
func Scan(ctx context.Context, cfg ScanConfig) (Report, error) {
	report := Report{Target: cfg.Target}
	emit := func(r Result) error {
		report.Results = append(report.Results, r)
		if cfg.OnResult != nil {
			return cfg.OnResult(r)
		}
		return nil
	}

	logf(cfg.LogWriter, "[1/4] Listing topics on %s\n", cfg.Target.BrokerAddr())
	topics := CheckTopics(ctx, cfg.Client)
	if err := emit(topics); err != nil {
		return report, err
	}

	if topics.Status != StatusSuccess {
		for _, p := range []Probe{ProbeConsume, ProbeProduce} {
			if err := emit(skipped(p, "topic listing failed")); err != nil {
				return report, err
			}
		}
	} else {
		logf(cfg.LogWriter, "[2/4] Consuming from %q\n", topics.TestTopic)
		consume := CheckConsume(ctx, ConsumeConfig{
			Consumer:         cfg.Client,
			Topic:            topics.TestTopic,
			IdleTimeout:      cfg.IdleTimeout,
			DisplayLimit:     cfg.DisplayLimit,
			ProgressReporter: cfg.ProgressReporter,
		})
		if err := emit(consume); err != nil {
			return report, err
		}

		logf(cfg.LogWriter, "[3/4] Producing to %q\n", topics.TestTopic)
		produce := CheckProduce(ctx, ProduceConfig{
			Producer:     cfg.Client,
			Topic:        topics.TestTopic,
			AckTimeout:   cfg.AckTimeout,
			TimeProvider: cfg.TimeProvider,
		})
		if err := emit(produce); err != nil {
			return report, err
		}
	}

	logf(cfg.LogWriter, "[4/4] Fetching console %s\n", cfg.Target.ConsoleURL())
	console := CheckConsole(ctx, ConsoleConfig{
		URL:        cfg.Target.ConsoleURL(),
		Timeout:    cfg.ConsoleTimeout,
		HTTPClient: cfg.HTTPClient,
	})
	if err := emit(console); err != nil {
		return report, err
	}

	return report, nil
}

func logf(w io.Writer, format string, args ...any) {
	if w != nil {
		fmt.Fprintf(w, format, args...)
	}
}
