package pkg

import (
	"context"
	"time"

	"github.com/lolocompany/kafka-unauth/pkg/kafka"
)

// fakeClient is an in-memory KafkaClient.
type fakeClient struct {
	topics    []string
	topicsErr error

	messages   map[string][][]byte
	consumeErr error
	idleSeen   time.Duration

	ack          kafka.Ack
	produceErr   error
	produced     [][]byte
	waitForCtx   bool
	listCalls    int
	consumeCalls int
	produceCalls int
}

func (f *fakeClient) ListTopics(ctx context.Context) ([]string, error) {
	f.listCalls++
	if f.topicsErr != nil {
		return nil, f.topicsErr
	}
	return f.topics, nil
}

func (f *fakeClient) Consume(ctx context.Context, topic string, idle time.Duration, fn kafka.MessageHandler) error {
	f.consumeCalls++
	f.idleSeen = idle
	for _, m := range f.messages[topic] {
		fn(m)
	}
	return f.consumeErr
}

func (f *fakeClient) Produce(ctx context.Context, topic string, value []byte) (kafka.Ack, error) {
	f.produceCalls++
	f.produced = append(f.produced, value)
	if f.waitForCtx {
		<-ctx.Done()
		return kafka.Ack{}, ctx.Err()
	}
	if f.produceErr != nil {
		return kafka.Ack{}, f.produceErr
	}
	ack := f.ack
	if ack.Topic == "" {
		ack.Topic = topic
	}
	return ack, nil
}

type countingReporter struct {
	added  int64
	closed bool
}

func (c *countingReporter) Add(d int64)  { c.added += d }
func (c *countingReporter) Close() error { c.closed = true; return nil }
