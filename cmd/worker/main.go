package main

import (
	"context"
	"log/slog"
	"os"

	"github.com/joho/godotenv"

	"github.com/cofounderbase/cofounderbase/internal/config"
	"github.com/cofounderbase/cofounderbase/internal/worker"
	"github.com/cofounderbase/cofounderbase/pkg/database"
	"github.com/cofounderbase/cofounderbase/pkg/kafka"
)

func main() {
	// Load configuration
	if err := godotenv.Load(); err != nil {
		slog.Info("No .env file found, using environment")
	}
	cfg := config.LoadConfig()

	// Initialize database clients
	db, err := database.NewClients(cfg.Database.URL, cfg.Redis.Addr)
	if err != nil {
		slog.Error("Failed to initialize database clients", "error", err)
		os.Exit(1)
	}
	defer db.DB.Close()
	slog.Info("✅ Connected to databases")

	// Initialize Kafka consumer
	consumer, err := kafka.NewConsumer(cfg.Kafka.Broker, cfg.Kafka.Group)
	if err != nil {
		slog.Error("Failed to create Kafka consumer", "error", err)
		os.Exit(1)
	}
	defer consumer.Close()
	slog.Info("✅ Connected to Kafka")

	// Create and start worker
	w := worker.NewWorker(cfg, db, consumer)

	ctx := context.Background()
	if err := w.Start(ctx); err != nil {
		slog.Error("Worker error", "error", err)
		os.Exit(1)
	}
}
