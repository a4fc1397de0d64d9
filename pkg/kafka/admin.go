package kafka

import (
	"context"
	"fmt"
	"time"

	"github.com/segmentio/kafka-go"
)

// GoClient implements Client on top of github.com/segmentio/kafka-go.
type GoClient struct {
	brokers []string
	dialer  *kafka.Dialer
	timeout time.Duration
}

func NewGoClient(opts Options) *GoClient {
	return &GoClient{
		brokers: opts.Brokers,
		dialer: &kafka.Dialer{
			Timeout:   opts.DialTimeout,
			ClientID:  opts.ClientID,
			DualStack: true,
		},
		timeout: opts.DialTimeout,
	}
}

// dialAny connects to the first broker that accepts a connection.
func (c *GoClient) dialAny(ctx context.Context) (*kafka.Conn, error) {
	var conn *kafka.Conn
	var err error
	for _, broker := range c.brokers {
		conn, err = c.dialer.DialContext(ctx, "tcp", broker)
		if err == nil {
			return conn, nil
		}
	}
	return nil, fmt.Errorf("failed to connect to any broker (tried: %v): %w", c.brokers, err)
}

// ListTopics requests cluster metadata and returns every topic it names.
func (c *GoClient) ListTopics(ctx context.Context) ([]string, error) {
	conn, err := c.dialAny(ctx)
	if err != nil {
		return nil, err
	}
	defer conn.Close()

	if err := conn.SetDeadline(time.Now().Add(c.timeout)); err != nil {
		return nil, fmt.Errorf("failed to set deadline: %w", err)
	}

	// Empty topic list means all topics
	partitions, err := conn.ReadPartitions()
	if err != nil {
		return nil, fmt.Errorf("failed to read metadata: %w", err)
	}

	names := make([]string, 0, len(partitions))
	for _, p := range partitions {
		names = append(names, p.Topic)
	}
	return uniqueInOrder(names), nil
}

// uniqueInOrder drops repeated names, keeping first occurrences in place.
func uniqueInOrder(names []string) []string {
	seen := make(map[string]struct{}, len(names))
	out := make([]string, 0, len(names))
	for _, n := range names {
		if _, ok := seen[n]; ok {
			continue
		}
		seen[n] = struct{}{}
		out = append(out, n)
	}
	return out
}
