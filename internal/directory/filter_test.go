package directory

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/cofounderbase/cofounderbase/internal/models"
)

func sampleProfiles() []models.Profile {
	return []models.Profile{
		{
			ID: "p1", FullName: "Bob Smith", Location: "San Francisco", Role: models.RoleFounder,
			ShortBio: "Building payments infrastructure", Availability: "Full-time",
			Founder: &models.FounderDetails{StartupName: "Acme Pay", StartupStage: "Seed", Industry: "Fintech"},
		},
		{
			ID: "p2", FullName: "Ana Lee", Location: "Remote (EU)", Role: models.RoleInvestor,
			Availability: "Part-time",
			Investor:     &models.InvestorDetails{InvestmentRange: "$1M-$5M", InvestmentStage: "Seed"},
		},
		{
			ID: "p3", FullName: "Carla Diaz", Location: "Berlin", Role: models.RoleCofounder,
			Availability: "Open to Discuss",
			Cofounder: &models.CofounderDetails{
				SkillsExpertise: "Go, distributed systems", ExperienceLevel: "Senior",
				IndustryInterests: "Healthtech",
			},
		},
	}
}

func filterIDs(profiles []models.Profile, f FilterState) []string {
	ids := []string{}
	for _, p := range Filter(profiles, f) {
		ids = append(ids, p.ID)
	}
	return ids
}

func TestMatchesSearch(t *testing.T) {
	profiles := sampleProfiles()

	assert.Equal(t, []string{"p1"}, filterIDs(profiles, FilterState{Search: "acme"}))
	assert.Equal(t, []string{"p3"}, filterIDs(profiles, FilterState{Search: "distributed"}))
	assert.Equal(t, []string{"p1", "p2", "p3"}, filterIDs(profiles, FilterState{Search: ""}))
	assert.Equal(t, []string{}, filterIDs(profiles, FilterState{Search: "quantum"}))
}

// A profile whose full name equals the search string is always included,
// even when every optional field is absent.
func TestSearchSubstringLaw(t *testing.T) {
	bare := models.Profile{ID: "only", FullName: "Dana Park", Role: models.RoleInvestor}
	f := FilterState{Search: "dana park"}
	assert.True(t, f.Matches(bare))
}

func TestMatchesLocation(t *testing.T) {
	profiles := sampleProfiles()

	assert.Equal(t, []string{"p1"}, filterIDs(profiles, FilterState{Location: []string{"San Francisco"}}))
	// "Remote" selection matches any location mentioning remote, whatever
	// the casing on either side.
	assert.Equal(t, []string{"p2"}, filterIDs(profiles, FilterState{Location: []string{"Remote"}}))
	assert.Equal(t, []string{"p2"}, filterIDs(profiles, FilterState{Location: []string{"remote"}}))
	assert.Equal(t, []string{"p2"}, filterIDs(profiles, FilterState{Location: []string{"REMOTE"}}))
	// OR within the dimension.
	assert.Equal(t, []string{"p1", "p3"}, filterIDs(profiles, FilterState{Location: []string{"Berlin", "Francisco"}}))
}

func TestMatchesIndustryExemptsMissingValue(t *testing.T) {
	profiles := sampleProfiles()

	// The investor has no industry value, so the dimension does not exclude
	// it; only the founder actually matches the selected value.
	got := filterIDs(profiles, FilterState{Industry: []string{"FinTech"}})
	assert.Equal(t, []string{"p1", "p2"}, got)

	// The cofounder's industry interests participate in the dimension.
	got = filterIDs(profiles, FilterState{Industry: []string{"Healthtech"}})
	assert.Equal(t, []string{"p2", "p3"}, got)
}

func TestMatchesAvailabilityExact(t *testing.T) {
	profiles := sampleProfiles()

	assert.Equal(t, []string{"p1"}, filterIDs(profiles, FilterState{Availability: []string{"Full-time"}}))
	// Substrings do not count for availability.
	assert.Equal(t, []string{}, filterIDs(profiles, FilterState{Availability: []string{"Full"}}))
}

func TestRoleConditionalDimensions(t *testing.T) {
	profiles := sampleProfiles()

	// Stage applies only to founders; others pass through.
	assert.Equal(t, []string{"p1", "p2", "p3"}, filterIDs(profiles, FilterState{Stage: []string{"Seed"}}))
	assert.Equal(t, []string{"p2", "p3"}, filterIDs(profiles, FilterState{Stage: []string{"Series A"}}))

	// Experience applies only to cofounders.
	assert.Equal(t, []string{"p1", "p2"}, filterIDs(profiles, FilterState{Experience: []string{"Junior"}}))

	// Investment range applies only to investors.
	assert.Equal(t, []string{"p1", "p3"}, filterIDs(profiles, FilterState{InvestmentRange: []string{"$10M+"}}))
	assert.Equal(t, []string{"p1", "p2", "p3"}, filterIDs(profiles, FilterState{InvestmentRange: []string{"$1M-$5M"}}))
	assert.Equal(t, []string{"p1", "p2", "p3"}, filterIDs(profiles, FilterState{InvestmentType: []string{"Seed"}}))
}

// Filtering by two dimensions equals the intersection of filtering by each
// dimension alone.
func TestFilterConjunction(t *testing.T) {
	profiles := sampleProfiles()

	byLocation := filterIDs(profiles, FilterState{Location: []string{"Berlin", "Francisco"}})
	byAvailability := filterIDs(profiles, FilterState{Availability: []string{"Full-time", "Open to Discuss"}})
	both := filterIDs(profiles, FilterState{
		Location:     []string{"Berlin", "Francisco"},
		Availability: []string{"Full-time", "Open to Discuss"},
	})

	intersection := []string{}
	seen := map[string]bool{}
	for _, id := range byLocation {
		seen[id] = true
	}
	for _, id := range byAvailability {
		if seen[id] {
			intersection = append(intersection, id)
		}
	}
	assert.Equal(t, intersection, both)
}

func TestMatchesIsDeterministic(t *testing.T) {
	f := FilterState{Search: "bob", Location: []string{"Francisco"}, Availability: []string{"Full-time"}}
	p := sampleProfiles()[0]
	first := f.Matches(p)
	for i := 0; i < 10; i++ {
		assert.Equal(t, first, f.Matches(p))
	}
}
