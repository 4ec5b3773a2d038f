package directory

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/cofounderbase/cofounderbase/internal/models"
)

func day(s string) time.Time {
	ts, err := time.Parse("2006-01-02", s)
	if err != nil {
		panic(err)
	}
	return ts
}

func rankedIDs(profiles []models.Profile) []string {
	Rank(profiles)
	ids := make([]string, 0, len(profiles))
	for _, p := range profiles {
		ids = append(ids, p.ID)
	}
	return ids
}

// Role beats featured beats recency: both founders precede the cofounder,
// and within founders the featured one wins regardless of date.
func TestRankTotalOrder(t *testing.T) {
	profiles := []models.Profile{
		{ID: "cofounder-featured", Role: models.RoleCofounder, Featured: true, CreatedAt: day("2024-01-01")},
		{ID: "founder-new", Role: models.RoleFounder, Featured: false, CreatedAt: day("2024-06-01")},
		{ID: "founder-featured", Role: models.RoleFounder, Featured: true, CreatedAt: day("2024-01-01")},
	}

	assert.Equal(t, []string{"founder-featured", "founder-new", "cofounder-featured"}, rankedIDs(profiles))
}

func TestRankRolePriority(t *testing.T) {
	profiles := []models.Profile{
		{ID: "i", Role: models.RoleInvestor, CreatedAt: day("2024-03-01")},
		{ID: "c", Role: models.RoleCofounder, CreatedAt: day("2024-02-01")},
		{ID: "f", Role: models.RoleFounder, CreatedAt: day("2024-01-01")},
	}
	assert.Equal(t, []string{"f", "c", "i"}, rankedIDs(profiles))
}

func TestRankNewestFirstWithinRole(t *testing.T) {
	profiles := []models.Profile{
		{ID: "old", Role: models.RoleFounder, CreatedAt: day("2023-01-01")},
		{ID: "new", Role: models.RoleFounder, CreatedAt: day("2024-01-01")},
		// Zero timestamp sorts as the oldest possible value.
		{ID: "unknown", Role: models.RoleFounder},
	}
	assert.Equal(t, []string{"new", "old", "unknown"}, rankedIDs(profiles))
}

func TestRankTiebreakIsReproducible(t *testing.T) {
	ts := day("2024-01-01")
	profiles := []models.Profile{
		{ID: "b", Role: models.RoleFounder, CreatedAt: ts},
		{ID: "a", Role: models.RoleFounder, CreatedAt: ts},
	}
	assert.Equal(t, []string{"a", "b"}, rankedIDs(profiles))

	// Same keys in the opposite input order produce the same output.
	profiles = []models.Profile{
		{ID: "a", Role: models.RoleFounder, CreatedAt: ts},
		{ID: "b", Role: models.RoleFounder, CreatedAt: ts},
	}
	assert.Equal(t, []string{"a", "b"}, rankedIDs(profiles))
}
