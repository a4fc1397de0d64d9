package pkg

import (
	"context"
	"time"
	"unicode/utf8"

	"github.com/lolocompany/kafka-unauth/pkg/kafka"
)

const (
	// DefaultDisplayLimit is how many consumed bodies are kept for display
	DefaultDisplayLimit = 3
	// DefaultIdleTimeout is how long to wait for the next message before a partition is considered drained
	DefaultIdleTimeout = 5 * time.Second
)

// MessageConsumer drains a topic without credentials.
type MessageConsumer interface {
	Consume(ctx context.Context, topic string, idle time.Duration, fn kafka.MessageHandler) error
}

// ConsumeConfig holds configuration for CheckConsume
type ConsumeConfig struct {
	Consumer         MessageConsumer
	Topic            string
	IdleTimeout      time.Duration
	DisplayLimit     int // zero keeps no samples
	ProgressReporter ProgressReporter
}

// CheckConsume reads the test topic from its earliest offset. Opening the
// session without error is a success even when the topic is empty.
func CheckConsume(ctx context.Context, cfg ConsumeConfig) Result {
	if cfg.Topic == "" {
		return skipped(ProbeConsume, "no test topic")
	}
	if cfg.IdleTimeout == 0 {
		cfg.IdleTimeout = DefaultIdleTimeout
	}

	if cfg.ProgressReporter != nil {
		defer cfg.ProgressReporter.Close()
	}

	res := Result{Probe: ProbeConsume, TestTopic: cfg.Topic}
	err := cfg.Consumer.Consume(ctx, cfg.Topic, cfg.IdleTimeout, func(value []byte) {
		res.MessageCount++
		if len(res.Samples) < cfg.DisplayLimit {
			res.Samples = append(res.Samples, newSample(res.MessageCount, value))
		}
		if cfg.ProgressReporter != nil {
			cfg.ProgressReporter.Add(1)
		}
	})
	if err != nil {
		res.Status = StatusFailure
		res.Error = err.Error()
		return res
	}

	res.Status = StatusSuccess
	return res
}

func newSample(index int, value []byte) Sample {
	if !utf8.Valid(value) {
		return Sample{Index: index, Binary: true}
	}
	return Sample{Index: index, Text: string(value)}
}
