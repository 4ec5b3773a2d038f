// Package directory implements the profile listing pipeline: a
// freshness-bounded cache over the profile store, read-time display
// normalization, the per-dimension predicate filter set, and the display
// ranking.
package directory

import (
	"context"
	"time"

	"github.com/cofounderbase/cofounderbase/internal/models"
)

// DefaultTTL is the listing cache freshness window.
const DefaultTTL = 5 * time.Minute

// Directory produces the visible profile set for the public listing.
type Directory struct {
	cache *ListingCache
}

// New builds a Directory over fetch with the given cache freshness window.
func New(fetch FetchFunc, ttl time.Duration) *Directory {
	return &Directory{cache: NewListingCache(fetch, ttl)}
}

// Visible returns display-ready profiles matching the query: the cached
// listing is normalized per record, narrowed by the filter set, then ranked.
func (d *Directory) Visible(ctx context.Context, f FilterState) []models.Profile {
	listed := d.cache.Get(ctx)
	out := make([]models.Profile, 0, len(listed))
	for _, p := range listed {
		normalized := NormalizeForDisplay(p)
		if f.Matches(normalized) {
			out = append(out, normalized)
		}
	}
	Rank(out)
	return out
}

// Invalidate marks the cached listing stale, e.g. after an admin mutation.
func (d *Directory) Invalidate() {
	d.cache.Invalidate()
}
