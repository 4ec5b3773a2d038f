package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"

	"github.com/cofounderbase/cofounderbase/internal/models"
)

const adColumns = `id, title, description, image_url, cta_text, cta_url, is_active, created_at, updated_at`

type adRow struct {
	ID          string         `db:"id"`
	Title       string         `db:"title"`
	Description string         `db:"description"`
	ImageURL    sql.NullString `db:"image_url"`
	CTAText     string         `db:"cta_text"`
	CTAURL      string         `db:"cta_url"`
	IsActive    bool           `db:"is_active"`
	CreatedAt   time.Time      `db:"created_at"`
	UpdatedAt   time.Time      `db:"updated_at"`
}

func (r adRow) toModel() models.Advertisement {
	return models.Advertisement{
		ID:          r.ID,
		Title:       r.Title,
		Description: r.Description,
		ImageURL:    r.ImageURL.String,
		CTAText:     r.CTAText,
		CTAURL:      r.CTAURL,
		IsActive:    r.IsActive,
		CreatedAt:   r.CreatedAt,
		UpdatedAt:   r.UpdatedAt,
	}
}

// AdStore persists sponsored-content records.
type AdStore struct {
	db *sqlx.DB
}

func NewAdStore(db *sqlx.DB) *AdStore {
	return &AdStore{db: db}
}

// ListActive returns the ads served to the public directory.
func (s *AdStore) ListActive(ctx context.Context) ([]models.Advertisement, error) {
	query := `SELECT ` + adColumns + ` FROM advertisements WHERE is_active = TRUE ORDER BY created_at DESC`
	return s.list(ctx, query)
}

// ListAll returns every ad for the admin dashboard.
func (s *AdStore) ListAll(ctx context.Context) ([]models.Advertisement, error) {
	query := `SELECT ` + adColumns + ` FROM advertisements ORDER BY created_at DESC`
	return s.list(ctx, query)
}

func (s *AdStore) list(ctx context.Context, query string) ([]models.Advertisement, error) {
	var rows []adRow
	if err := s.db.SelectContext(ctx, &rows, query); err != nil {
		return nil, fmt.Errorf("failed to list advertisements: %w", err)
	}
	ads := make([]models.Advertisement, 0, len(rows))
	for _, r := range rows {
		ads = append(ads, r.toModel())
	}
	return ads, nil
}

// Insert persists a new advertisement and returns it with identity and
// timestamps assigned.
func (s *AdStore) Insert(ctx context.Context, ad models.Advertisement) (models.Advertisement, error) {
	if ad.ID == "" {
		ad.ID = uuid.NewString()
	}
	now := time.Now().UTC()
	ad.CreatedAt = now
	ad.UpdatedAt = now

	query := `INSERT INTO advertisements (` + adColumns + `) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)`
	_, err := s.db.ExecContext(ctx, query, ad.ID, ad.Title, ad.Description,
		nullable(ad.ImageURL), ad.CTAText, ad.CTAURL, ad.IsActive, ad.CreatedAt, ad.UpdatedAt)
	if err != nil {
		return models.Advertisement{}, fmt.Errorf("failed to insert advertisement: %w", err)
	}
	return ad, nil
}

// Update overwrites the editable content fields of an advertisement.
func (s *AdStore) Update(ctx context.Context, ad models.Advertisement) error {
	query := `UPDATE advertisements SET title = $1, description = $2, image_url = $3,
		cta_text = $4, cta_url = $5, updated_at = $6 WHERE id = $7`
	return s.exec(ctx, query, ad.Title, ad.Description, nullable(ad.ImageURL),
		ad.CTAText, ad.CTAURL, time.Now().UTC(), ad.ID)
}

// SetActive toggles whether the ad is served.
func (s *AdStore) SetActive(ctx context.Context, id string, active bool) error {
	query := `UPDATE advertisements SET is_active = $1, updated_at = $2 WHERE id = $3`
	return s.exec(ctx, query, active, time.Now().UTC(), id)
}

// Delete removes an advertisement.
func (s *AdStore) Delete(ctx context.Context, id string) error {
	return s.exec(ctx, `DELETE FROM advertisements WHERE id = $1`, id)
}

// GetByID fetches a single advertisement.
func (s *AdStore) GetByID(ctx context.Context, id string) (models.Advertisement, error) {
	var row adRow
	query := `SELECT ` + adColumns + ` FROM advertisements WHERE id = $1`
	if err := s.db.GetContext(ctx, &row, query, id); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return models.Advertisement{}, ErrNotFound
		}
		return models.Advertisement{}, fmt.Errorf("failed to get advertisement: %w", err)
	}
	return row.toModel(), nil
}

func (s *AdStore) exec(ctx context.Context, query string, args ...interface{}) error {
	res, err := s.db.ExecContext(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("failed to update advertisement: %w", err)
	}
	if n, err := res.RowsAffected(); err == nil && n == 0 {
		return ErrNotFound
	}
	return nil
}
