// Package worker consumes queued transactional email jobs from Kafka and
// delivers them over SMTP. Delivery failures are logged and recorded, never
// propagated back to the producing request.
package worker

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/IBM/sarama"

	"github.com/cofounderbase/cofounderbase/internal/config"
	"github.com/cofounderbase/cofounderbase/internal/handlers"
	"github.com/cofounderbase/cofounderbase/internal/models"
	"github.com/cofounderbase/cofounderbase/pkg/database"
)

type Worker struct {
	cfg      *config.Config
	db       *database.Clients
	consumer sarama.ConsumerGroup
	ready    chan bool
}

func NewWorker(cfg *config.Config, db *database.Clients, consumer sarama.ConsumerGroup) *Worker {
	return &Worker{
		cfg:      cfg,
		db:       db,
		consumer: consumer,
		ready:    make(chan bool),
	}
}

func (w *Worker) Start(ctx context.Context) error {
	topics := []string{w.cfg.Kafka.Topic}
	slog.Info("Starting email worker", "topics", topics)

	// Setup signal handling for graceful shutdown
	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, syscall.SIGINT, syscall.SIGTERM)

	go func() {
		for err := range w.consumer.Errors() {
			slog.Error("Kafka consumer error received", "error", err)
		}
	}()

	go func() {
		for {
			if err := w.consumer.Consume(ctx, topics, w); err != nil {
				slog.Error("Error from consumer.Consume", "error", err)
			}
			if ctx.Err() != nil {
				return
			}
			// Reset the ready channel after a new session is created
			w.ready = make(chan bool)
		}
	}()

	<-w.ready // Wait till the consumer has been set up
	slog.Info("Email worker ready")

	select {
	case sig := <-sigChan:
		slog.Info("Received shutdown signal", "signal", sig)
	case <-ctx.Done():
		slog.Info("Context cancelled; shutting down worker")
	}

	slog.Info("Email worker shutting down gracefully")
	return nil
}

// Setup is run at the beginning of a new session, before ConsumeClaim.
func (w *Worker) Setup(sarama.ConsumerGroupSession) error {
	close(w.ready)
	return nil
}

// Cleanup is run at the end of a session, once all ConsumeClaim goroutines have exited.
func (w *Worker) Cleanup(sarama.ConsumerGroupSession) error {
	return nil
}

// ConsumeClaim must start a consumer loop of ConsumerGroupClaim's Messages().
func (w *Worker) ConsumeClaim(session sarama.ConsumerGroupSession, claim sarama.ConsumerGroupClaim) error {
	for message := range claim.Messages() {
		if err := w.processEmail(message.Value); err != nil {
			slog.Error("Failed to deliver email", "error", err, "offset", message.Offset)
		}
		session.MarkMessage(message, "")
	}
	return nil
}

// processEmail delivers one queued job, retrying with backoff, and records
// the final delivery status in Redis.
func (w *Worker) processEmail(payload []byte) error {
	var job models.EmailJob
	if err := json.Unmarshal(payload, &job); err != nil {
		return fmt.Errorf("failed to parse email job: %w", err)
	}

	var err error
	for attempt := 1; attempt <= w.cfg.Kafka.RetryMax; attempt++ {
		err = handlers.SendEmail(w.cfg.Email, job)
		if err == nil {
			break
		}
		slog.Error("Email delivery attempt failed", "jobID", job.ID, "attempt", attempt, "error", err)
		if attempt < w.cfg.Kafka.RetryMax {
			time.Sleep(w.cfg.Kafka.RetryBackoff)
		}
	}

	status := models.EmailStatusSent
	if err != nil {
		status = models.EmailStatusFailed
	}
	w.setStatus(job.ID, status)

	if err != nil {
		return fmt.Errorf("email delivery ultimately failed: %w", err)
	}
	slog.Info("Email delivered", "jobID", job.ID, "template", job.Template)
	return nil
}

func (w *Worker) setStatus(jobID, status string) {
	if jobID == "" {
		return
	}
	ctx := context.Background()
	key := fmt.Sprintf("email:%s", jobID)
	if err := w.db.Redis.Set(ctx, key, status, w.cfg.Storage.EmailTTL).Err(); err != nil {
		slog.Error("Failed to record email status", "jobID", jobID, "error", err)
	}
}
