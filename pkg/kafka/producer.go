package kafka

import (
	"context"
	"fmt"
	"time"

	"github.com/segmentio/kafka-go"
)

// Produce writes value to topic with a single attempt and returns where the
// broker stored it.
func (c *GoClient) Produce(ctx context.Context, topic string, value []byte) (Ack, error) {
	acks := make(chan kafka.Message, 1)

	writer := &kafka.Writer{
		Addr:         kafka.TCP(c.brokers...),
		Topic:        topic,
		Balancer:     &kafka.LeastBytes{},
		MaxAttempts:  1,
		RequiredAcks: kafka.RequireOne,
		BatchSize:    1,
		BatchTimeout: 10 * time.Millisecond,
		Transport: &kafka.Transport{
			DialTimeout: c.timeout,
			ClientID:    c.dialer.ClientID,
		},
		Completion: func(messages []kafka.Message, err error) {
			if err != nil || len(messages) == 0 {
				return
			}
			select {
			case acks <- messages[0]:
			default:
			}
		},
	}
	defer writer.Close()

	if err := writer.WriteMessages(ctx, kafka.Message{Value: value}); err != nil {
		return Ack{}, fmt.Errorf("failed to write message to %s: %w", topic, err)
	}

	select {
	case msg := <-acks:
		if msg.Topic == "" {
			msg.Topic = topic
		}
		return Ack{Topic: msg.Topic, Partition: msg.Partition, Offset: msg.Offset}, nil
	default:
		return Ack{}, fmt.Errorf("no acknowledgement received from %s", topic)
	}
}
