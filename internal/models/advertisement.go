package models

import "time"

// Advertisement is a sponsored-content record shown interstitially among
// directory results. Only active ads are served to the public listing.
type Advertisement struct {
	ID          string    `json:"id" db:"id"`
	Title       string    `json:"title" db:"title"`
	Description string    `json:"description" db:"description"`
	ImageURL    string    `json:"image_url,omitempty" db:"image_url"`
	CTAText     string    `json:"cta_text" db:"cta_text"`
	CTAURL      string    `json:"cta_url" db:"cta_url"`
	IsActive    bool      `json:"is_active" db:"is_active"`
	CreatedAt   time.Time `json:"created_at" db:"created_at"`
	UpdatedAt   time.Time `json:"updated_at" db:"updated_at"`
}
