package main

import (
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/joho/godotenv"

	"github.com/cofounderbase/cofounderbase/internal/api"
	"github.com/cofounderbase/cofounderbase/internal/config"
	"github.com/cofounderbase/cofounderbase/internal/storage"
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
	if err := db.CreateSchema(); err != nil {
		slog.Error("Failed to ensure schema", "error", err)
		os.Exit(1)
	}
	slog.Info("✅ Connected to databases")

	// Initialize Kafka producer
	producer, err := kafka.NewProducer(cfg.Kafka.Broker, cfg.Kafka.RetryMax, cfg.Kafka.RetryBackoff)
	if err != nil {
		slog.Error("Failed to create Kafka producer", "error", err)
		os.Exit(1)
	}
	defer producer.Close()
	slog.Info("✅ Connected to Kafka")

	// Headshots go to Supabase when configured, local disk otherwise.
	var st storage.Storage
	if cfg.Supabase.URL != "" {
		st = storage.NewSupabaseStorage(cfg.Supabase.URL, cfg.Supabase.ServiceKey, cfg.Supabase.Bucket)
		slog.Info("✅ Using Supabase storage", "bucket", cfg.Supabase.Bucket)
	} else {
		local, err := storage.NewLocalStorage(cfg.Storage.LocalDir, cfg.Server.PublicBaseURL)
		if err != nil {
			slog.Error("Failed to initialize local storage", "error", err)
			os.Exit(1)
		}
		st = local
		slog.Info("✅ Using local storage", "dir", local.Dir())
	}

	// Create and start server
	server := api.NewServer(cfg, db, producer, st)

	go func() {
		sigChan := make(chan os.Signal, 1)
		signal.Notify(sigChan, syscall.SIGINT, syscall.SIGTERM)
		sig := <-sigChan
		slog.Info("Received shutdown signal", "signal", sig)
		if err := server.Shutdown(); err != nil {
			slog.Error("Server shutdown error", "error", err)
		}
	}()

	if err := server.Start(); err != nil {
		slog.Error("Server error", "error", err)
		os.Exit(1)
	}
}
