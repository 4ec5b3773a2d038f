package directory

import (
	"context"
	"log/slog"
	"sync"
	"time"

	"github.com/cofounderbase/cofounderbase/internal/models"
)

// FetchFunc loads the full approved-profile listing from the backing store.
type FetchFunc func(ctx context.Context) ([]models.Profile, error)

// ListingCache is a single-slot cache of the directory listing, valid for a
// fixed freshness window. It lives for the process lifetime and is shared by
// all callers. Concurrent misses are serialized under the mutex, so a stale
// window triggers at most one refresh.
type ListingCache struct {
	fetch FetchFunc
	ttl   time.Duration
	now   func() time.Time

	mu          sync.Mutex
	profiles    []models.Profile
	populatedAt time.Time
}

// NewListingCache returns an empty cache backed by fetch.
func NewListingCache(fetch FetchFunc, ttl time.Duration) *ListingCache {
	return &ListingCache{
		fetch: fetch,
		ttl:   ttl,
		now:   time.Now,
	}
}

// Get returns the cached listing, refreshing it first when the cache is
// empty or older than the freshness window. A failed refresh is logged and
// the previous contents (possibly empty) are returned unchanged; errors are
// never surfaced to the caller.
func (c *ListingCache) Get(ctx context.Context) []models.Profile {
	c.mu.Lock()
	defer c.mu.Unlock()

	if len(c.profiles) > 0 && c.now().Sub(c.populatedAt) < c.ttl {
		return c.profiles
	}

	fresh, err := c.fetch(ctx)
	if err != nil {
		slog.Error("Failed to refresh directory listing", "error", err)
		return c.profiles
	}
	c.profiles = fresh
	c.populatedAt = c.now()
	return c.profiles
}

// Invalidate forces the next Get to refresh. Existing contents are kept so a
// failing refresh can still fall back to them.
func (c *ListingCache) Invalidate() {
	c.mu.Lock()
	c.populatedAt = time.Time{}
	c.mu.Unlock()
}
