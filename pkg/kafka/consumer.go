package kafka

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/segmentio/kafka-go"
)

// Consume reads each partition of topic from its first retained offset up to
// the high watermark observed when the partition was opened.
func (c *GoClient) Consume(ctx context.Context, topic string, idle time.Duration, fn MessageHandler) error {
	conn, err := c.dialAny(ctx)
	if err != nil {
		return err
	}
	if err := conn.SetDeadline(time.Now().Add(c.timeout)); err != nil {
		conn.Close()
		return fmt.Errorf("failed to set deadline: %w", err)
	}
	partitions, err := conn.ReadPartitions(topic)
	conn.Close()
	if err != nil {
		return fmt.Errorf("failed to read partitions of %s: %w", topic, err)
	}

	for _, p := range partitions {
		if p.Topic != topic {
			continue
		}
		if err := c.consumePartition(ctx, topic, p.ID, idle, fn); err != nil {
			return err
		}
	}
	return nil
}

func (c *GoClient) consumePartition(ctx context.Context, topic string, partition int, idle time.Duration, fn MessageHandler) error {
	first, last, err := c.readOffsets(ctx, topic, partition)
	if err != nil {
		return err
	}
	if last <= first {
		return nil
	}

	reader := kafka.NewReader(kafka.ReaderConfig{
		Brokers:   c.brokers,
		Topic:     topic,
		Partition: partition,
		Dialer:    c.dialer,
		MinBytes:  1,
		MaxBytes:  10e6,
		MaxWait:   500 * time.Millisecond,
	})
	defer reader.Close()

	if err := reader.SetOffset(first); err != nil {
		return fmt.Errorf("failed to seek %s[%d] to %d: %w", topic, partition, first, err)
	}

	for {
		readCtx, cancel := context.WithTimeout(ctx, idle)
		msg, err := reader.ReadMessage(readCtx)
		cancel()
		if err != nil {
			// Idle timeout: nothing more is expected on this partition
			if errors.Is(err, context.DeadlineExceeded) && ctx.Err() == nil {
				return nil
			}
			return fmt.Errorf("failed to read from %s[%d]: %w", topic, partition, err)
		}
		fn(msg.Value)
		if msg.Offset+1 >= last {
			return nil
		}
	}
}

// readOffsets asks the partition leader for its first and last offsets. This
// also surfaces authorization errors that the Reader would otherwise retry.
func (c *GoClient) readOffsets(ctx context.Context, topic string, partition int) (int64, int64, error) {
	var lastErr error
	for _, broker := range c.brokers {
		conn, err := c.dialer.DialLeader(ctx, "tcp", broker, topic, partition)
		if err != nil {
			lastErr = err
			continue
		}
		defer conn.Close()
		if err := conn.SetDeadline(time.Now().Add(c.timeout)); err != nil {
			return 0, 0, fmt.Errorf("failed to set deadline: %w", err)
		}
		first, last, err := conn.ReadOffsets()
		if err != nil {
			return 0, 0, fmt.Errorf("failed to read offsets of %s[%d]: %w", topic, partition, err)
		}
		return first, last, nil
	}
	return 0, 0, fmt.Errorf("failed to connect to leader of %s[%d]: %w", topic, partition, lastErr)
}
