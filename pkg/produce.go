package pkg

import (
	"context"
	"fmt"
	"time"

	"github.com/lolocompany/kafka-unauth/pkg/kafka"
)

const (
	// MarkerPrefix starts every injected test message
	MarkerPrefix = "kafka-unauth test message"
	// DefaultAckTimeout bounds the wait for the broker's acknowledgement
	DefaultAckTimeout = 5 * time.Second
)

// MessageProducer writes a message without credentials.
type MessageProducer interface {
	Produce(ctx context.Context, topic string, value []byte) (kafka.Ack, error)
}

// ProduceConfig holds configuration for CheckProduce
type ProduceConfig struct {
	Producer     MessageProducer
	Topic        string
	AckTimeout   time.Duration
	TimeProvider TimeProvider
}

// Marker returns the body of the test message written at now. The unix
// timestamp tells repeated runs apart.
func Marker(now time.Time) string {
	return fmt.Sprintf("%s %d", MarkerPrefix, now.Unix())
}

// CheckProduce writes a marker message to the test topic and succeeds only
// when the broker acknowledges it before AckTimeout.
func CheckProduce(ctx context.Context, cfg ProduceConfig) Result {
	if cfg.Topic == "" {
		return skipped(ProbeProduce, "no test topic")
	}
	if cfg.AckTimeout == 0 {
		cfg.AckTimeout = DefaultAckTimeout
	}
	if cfg.TimeProvider == nil {
		cfg.TimeProvider = RealTimeProvider{}
	}

	marker := Marker(cfg.TimeProvider.Now())
	res := Result{Probe: ProbeProduce, TestTopic: cfg.Topic, Marker: marker}

	ackCtx, cancel := context.WithTimeout(ctx, cfg.AckTimeout)
	defer cancel()

	ack, err := cfg.Producer.Produce(ackCtx, cfg.Topic, []byte(marker))
	if err == nil && ack.Topic == "" {
		err = fmt.Errorf("acknowledgement for %s carried no topic", cfg.Topic)
	}
	if err != nil {
		res.Status = StatusFailure
		res.Error = err.Error()
		return res
	}

	res.Status = StatusSuccess
	res.Written = &Written{Topic: ack.Topic, Partition: ack.Partition, Offset: ack.Offset}
	return res
}
