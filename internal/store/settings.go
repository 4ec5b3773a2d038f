package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/jmoiron/sqlx"
)

// SettingStore persists the admin key/boolean toggles.
type SettingStore struct {
	db *sqlx.DB
}

func NewSettingStore(db *sqlx.DB) *SettingStore {
	return &SettingStore{db: db}
}

// GetBool returns the stored value for key, or def when no row exists.
func (s *SettingStore) GetBool(ctx context.Context, key string, def bool) (bool, error) {
	var value bool
	err := s.db.GetContext(ctx, &value, `SELECT value FROM admin_settings WHERE key = $1`, key)
	if errors.Is(err, sql.ErrNoRows) {
		return def, nil
	}
	if err != nil {
		return def, fmt.Errorf("failed to read setting %q: %w", key, err)
	}
	return value, nil
}

// SetBool upserts the value for key.
func (s *SettingStore) SetBool(ctx context.Context, key string, value bool) error {
	query := `INSERT INTO admin_settings (key, value, updated_at) VALUES ($1, $2, $3)
		ON CONFLICT (key) DO UPDATE SET value = EXCLUDED.value, updated_at = EXCLUDED.updated_at`
	if _, err := s.db.ExecContext(ctx, query, key, value, time.Now().UTC()); err != nil {
		return fmt.Errorf("failed to write setting %q: %w", key, err)
	}
	return nil
}
