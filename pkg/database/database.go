package database

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/jmoiron/sqlx"
	_ "github.com/lib/pq"
	"github.com/redis/go-redis/v9"
)

type Clients struct {
	DB    *sqlx.DB
	Redis *redis.Client
}

func NewClients(dbURL, redisAddr string) (*Clients, error) {
	// Connect to PostgreSQL
	db, err := sqlx.Connect("postgres", dbURL)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}

	// Initialize Redis client
	redisClient := redis.NewClient(&redis.Options{
		Addr:     redisAddr,
		Password: "",
		DB:       0,
	})

	ctx := context.Background()
	if err := redisClient.Ping(ctx).Err(); err != nil {
		return nil, fmt.Errorf("failed to connect to Redis: %w", err)
	}

	return &Clients{
		DB:    db,
		Redis: redisClient,
	}, nil
}

// CreateSchema ensures the directory tables exist.
func (c *Clients) CreateSchema() error {
	schema := `CREATE TABLE IF NOT EXISTS profiles (
		id TEXT PRIMARY KEY,
		full_name TEXT NOT NULL,
		email TEXT NOT NULL,
		headshot_url TEXT,
		location TEXT NOT NULL DEFAULT '',
		linkedin_url TEXT NOT NULL DEFAULT '',
		short_bio TEXT NOT NULL DEFAULT '',
		availability TEXT NOT NULL DEFAULT '',
		looking_for TEXT NOT NULL DEFAULT '',
		role TEXT NOT NULL,
		approved BOOLEAN NOT NULL DEFAULT FALSE,
		featured BOOLEAN NOT NULL DEFAULT FALSE,
		created_at TIMESTAMPTZ NOT NULL DEFAULT CURRENT_TIMESTAMP,
		startup_name TEXT,
		startup_stage TEXT,
		industry TEXT,
		what_building TEXT,
		cofounder_wanted TEXT,
		skills_expertise TEXT,
		experience_level TEXT,
		industry_interests TEXT,
		past_projects TEXT,
		motivation TEXT,
		investment_range TEXT,
		investment_stage TEXT,
		investment_focus TEXT,
		portfolio_companies TEXT,
		investment_criteria TEXT
	);
	CREATE TABLE IF NOT EXISTS advertisements (
		id TEXT PRIMARY KEY,
		title TEXT NOT NULL,
		description TEXT NOT NULL DEFAULT '',
		image_url TEXT,
		cta_text TEXT NOT NULL DEFAULT '',
		cta_url TEXT NOT NULL DEFAULT '',
		is_active BOOLEAN NOT NULL DEFAULT TRUE,
		created_at TIMESTAMPTZ NOT NULL DEFAULT CURRENT_TIMESTAMP,
		updated_at TIMESTAMPTZ NOT NULL DEFAULT CURRENT_TIMESTAMP
	);
	CREATE TABLE IF NOT EXISTS admin_settings (
		key TEXT PRIMARY KEY,
		value BOOLEAN NOT NULL,
		updated_at TIMESTAMPTZ NOT NULL DEFAULT CURRENT_TIMESTAMP
	);`

	if _, err := c.DB.Exec(schema); err != nil {
		return fmt.Errorf("failed to create schema: %w", err)
	}

	slog.Info("✅ Directory tables are ready!")
	return nil
}
