package kafka

import (
	"context"
	"fmt"
	"sort"
	"time"

	"github.com/IBM/sarama"
)

// SaramaClient implements Client on top of github.com/IBM/sarama.
type SaramaClient struct {
	brokers  []string
	timeout  time.Duration
	clientID string
}

func NewSaramaClient(opts Options) *SaramaClient {
	return &SaramaClient{
		brokers:  opts.Brokers,
		timeout:  opts.DialTimeout,
		clientID: opts.ClientID,
	}
}

// config builds a credential-less configuration. Requests never retry, and
// when ctx carries a deadline every network timeout is clamped to it.
func (c *SaramaClient) config(ctx context.Context) *sarama.Config {
	timeout := c.timeout
	if deadline, ok := ctx.Deadline(); ok {
		if remaining := time.Until(deadline); remaining > 0 && remaining < timeout {
			timeout = remaining
		}
	}

	config := sarama.NewConfig()
	config.ClientID = c.clientID
	config.Net.DialTimeout = timeout
	config.Net.ReadTimeout = timeout
	config.Net.WriteTimeout = timeout
	config.Metadata.Retry.Max = 0
	config.Metadata.Full = true
	config.Consumer.Return.Errors = true
	config.Consumer.Offsets.Initial = sarama.OffsetOldest
	config.Producer.Return.Successes = true
	config.Producer.RequiredAcks = sarama.WaitForLocal
	config.Producer.Retry.Max = 0
	config.Producer.Timeout = timeout
	return config
}

func (c *SaramaClient) open(ctx context.Context) (sarama.Client, error) {
	client, err := sarama.NewClient(c.brokers, c.config(ctx))
	if err != nil {
		return nil, fmt.Errorf("failed to connect to %v: %w", c.brokers, err)
	}
	return client, nil
}

// ListTopics returns the topics from the cluster metadata. sarama keeps them
// in a map, so they are sorted to make the first topic deterministic.
func (c *SaramaClient) ListTopics(ctx context.Context) ([]string, error) {
	client, err := c.open(ctx)
	if err != nil {
		return nil, err
	}
	defer client.Close()

	topics, err := client.Topics()
	if err != nil {
		return nil, fmt.Errorf("failed to get topics: %w", err)
	}
	sort.Strings(topics)
	return topics, nil
}

func (c *SaramaClient) Consume(ctx context.Context, topic string, idle time.Duration, fn MessageHandler) error {
	client, err := c.open(ctx)
	if err != nil {
		return err
	}
	defer client.Close()

	consumer, err := sarama.NewConsumerFromClient(client)
	if err != nil {
		return fmt.Errorf("failed to create consumer: %w", err)
	}
	defer consumer.Close()

	partitions, err := consumer.Partitions(topic)
	if err != nil {
		return fmt.Errorf("failed to get partitions of %s: %w", topic, err)
	}

	for _, partition := range partitions {
		oldest, err := client.GetOffset(topic, partition, sarama.OffsetOldest)
		if err != nil {
			return fmt.Errorf("failed to get oldest offset of %s[%d]: %w", topic, partition, err)
		}
		newest, err := client.GetOffset(topic, partition, sarama.OffsetNewest)
		if err != nil {
			return fmt.Errorf("failed to get newest offset of %s[%d]: %w", topic, partition, err)
		}
		if newest <= oldest {
			continue
		}
		if err := drainPartition(ctx, consumer, topic, partition, oldest, newest, idle, fn); err != nil {
			return err
		}
	}
	return nil
}

func drainPartition(ctx context.Context, consumer sarama.Consumer, topic string, partition int32, oldest, newest int64, idle time.Duration, fn MessageHandler) error {
	pc, err := consumer.ConsumePartition(topic, partition, oldest)
	if err != nil {
		return fmt.Errorf("failed to consume %s[%d]: %w", topic, partition, err)
	}
	defer pc.Close()

	timer := time.NewTimer(idle)
	defer timer.Stop()

	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-timer.C:
			return nil
		case cerr := <-pc.Errors():
			if cerr == nil {
				return nil
			}
			return fmt.Errorf("failed to read from %s[%d]: %w", topic, partition, cerr.Err)
		case msg, ok := <-pc.Messages():
			if !ok {
				return nil
			}
			fn(msg.Value)
			if msg.Offset+1 >= newest {
				return nil
			}
			timer.Reset(idle)
		}
	}
}

func (c *SaramaClient) Produce(ctx context.Context, topic string, value []byte) (Ack, error) {
	client, err := c.open(ctx)
	if err != nil {
		return Ack{}, err
	}
	defer client.Close()

	producer, err := sarama.NewSyncProducerFromClient(client)
	if err != nil {
		return Ack{}, fmt.Errorf("failed to create producer: %w", err)
	}
	defer producer.Close()

	partition, offset, err := producer.SendMessage(&sarama.ProducerMessage{
		Topic: topic,
		Value: sarama.ByteEncoder(value),
	})
	if err != nil {
		return Ack{}, fmt.Errorf("failed to write message to %s: %w", topic, err)
	}
	if err := ctx.Err(); err != nil {
		return Ack{}, fmt.Errorf("acknowledgement from %s arrived too late: %w", topic, err)
	}
	return Ack{Topic: topic, Partition: int(partition), Offset: offset}, nil
}
