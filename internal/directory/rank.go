package directory

import (
	"sort"

	"github.com/cofounderbase/cofounderbase/internal/models"
)

// rolePriority orders the three roles for display: founders first, then
// cofounders, then investors. Unknown roles sink to the end.
func rolePriority(role string) int {
	switch role {
	case models.RoleFounder:
		return 1
	case models.RoleCofounder:
		return 2
	case models.RoleInvestor:
		return 3
	}
	return 4
}

// Rank sorts profiles in place into display order: role priority ascending,
// featured before non-featured within a role, then newest first. A zero
// CreatedAt sorts as oldest. Ties break on ID so output is reproducible.
func Rank(profiles []models.Profile) {
	sort.SliceStable(profiles, func(i, j int) bool {
		a, b := profiles[i], profiles[j]
		if pa, pb := rolePriority(a.Role), rolePriority(b.Role); pa != pb {
			return pa < pb
		}
		if a.Featured != b.Featured {
			return a.Featured
		}
		if !a.CreatedAt.Equal(b.CreatedAt) {
			return a.CreatedAt.After(b.CreatedAt)
		}
		return a.ID < b.ID
	})
}
