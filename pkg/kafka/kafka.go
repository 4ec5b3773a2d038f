// Package kafka builds the clients for the transactional email queue: the
// synchronous producer the API queues jobs with and the consumer group the
// email worker reads from.
package kafka

import (
	"fmt"
	"log/slog"
	"time"

	"github.com/IBM/sarama"
)

const (
	connectAttempts = 10
	connectDelay    = 3 * time.Second
)

// waitForBroker blocks until the broker accepts a client connection, so the
// binaries can start before Kafka does (compose startup ordering).
func waitForBroker(brokers []string) error {
	for attempt := 1; attempt <= connectAttempts; attempt++ {
		cfg := sarama.NewConfig()
		cfg.Net.DialTimeout = 1 * time.Second
		client, err := sarama.NewClient(brokers, cfg)
		if err == nil {
			client.Close()
			return nil
		}
		slog.Info("Waiting for Kafka broker...", "attempt", attempt)
		time.Sleep(connectDelay)
	}
	return fmt.Errorf("kafka broker not reachable after %d attempts", connectAttempts)
}

// NewProducer builds the synchronous producer used to queue email jobs.
// Successes are returned so a queueing failure surfaces to the submitting
// request instead of being silently dropped.
func NewProducer(broker string, retryMax int, retryBackoff time.Duration) (sarama.SyncProducer, error) {
	brokers := []string{broker}
	if err := waitForBroker(brokers); err != nil {
		return nil, err
	}

	cfg := sarama.NewConfig()
	cfg.Producer.Return.Successes = true
	cfg.Producer.Retry.Max = retryMax
	cfg.Producer.Retry.Backoff = retryBackoff

	return sarama.NewSyncProducer(brokers, cfg)
}

// NewConsumer joins the email worker's consumer group. Offsets start from
// the oldest message so jobs queued while no worker was running still get
// delivered.
func NewConsumer(broker, group string) (sarama.ConsumerGroup, error) {
	brokers := []string{broker}
	if err := waitForBroker(brokers); err != nil {
		return nil, err
	}

	cfg := sarama.NewConfig()
	cfg.Consumer.Group.Rebalance.Strategy = sarama.BalanceStrategyRoundRobin
	cfg.Consumer.Offsets.Initial = sarama.OffsetOldest
	cfg.Consumer.Return.Errors = true

	return sarama.NewConsumerGroup(brokers, group, cfg)
}
