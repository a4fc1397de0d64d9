package kafka

import (
	"context"
	"fmt"
	"strings"
	"time"
)

// Driver names a Kafka client backend.
type Driver string

const (
	DriverKafkaGo Driver = "kafka-go" // github.com/segmentio/kafka-go (default)
	DriverSarama  Driver = "sarama"   // github.com/IBM/sarama
)

// DefaultDialTimeout bounds connection setup and metadata requests.
const DefaultDialTimeout = 10 * time.Second

// ParseDriver parses a backend name. An empty string selects DriverKafkaGo.
func ParseDriver(s string) (Driver, error) {
	s = strings.TrimSpace(strings.ToLower(s))
	if s == "" {
		return DriverKafkaGo, nil
	}
	switch Driver(s) {
	case DriverKafkaGo, DriverSarama:
		return Driver(s), nil
	default:
		return "", fmt.Errorf("unsupported kafka client %q (use kafka-go or sarama)", s)
	}
}

// Ack is the broker's acknowledgement of a produced message.
type Ack struct {
	Topic     string
	Partition int
	Offset    int64
}

// MessageHandler receives the value of every consumed message, in partition order.
type MessageHandler func(value []byte)

// Client is the set of unauthenticated operations the probes need.
// Every call opens and releases its own connection; nothing is pooled.
type Client interface {
	// ListTopics returns topic names in the order the broker reports them.
	ListTopics(ctx context.Context) ([]string, error)
	// Consume reads every partition of topic from the oldest retained offset.
	// A partition is considered drained once its high watermark is reached or
	// no message arrives within idle.
	Consume(ctx context.Context, topic string, idle time.Duration, fn MessageHandler) error
	// Produce writes a single message and waits for its acknowledgement.
	// The wait is bounded by ctx.
	Produce(ctx context.Context, topic string, value []byte) (Ack, error)
}

// Options configures a Client.
type Options struct {
	Brokers     []string
	DialTimeout time.Duration
	ClientID    string
}

// New returns the Client for driver.
func New(driver Driver, opts Options) (Client, error) {
	if len(opts.Brokers) == 0 {
		return nil, fmt.Errorf("at least one broker address is required")
	}
	if opts.DialTimeout <= 0 {
		opts.DialTimeout = DefaultDialTimeout
	}
	if opts.ClientID == "" {
		opts.ClientID = "kafka-unauth"
	}
	switch driver {
	case DriverKafkaGo, "":
		return NewGoClient(opts), nil
	case DriverSarama:
		return NewSaramaClient(opts), nil
	default:
		return nil, fmt.Errorf("unsupported kafka client %q", driver)
	}
}
