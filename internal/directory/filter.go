package directory

import (
	"strings"

	"github.com/cofounderbase/cofounderbase/internal/models"
)

// FilterState is the caller's current query: a free-text search plus one set
// of selected option strings per filter dimension. The dimension set is
// closed; within a dimension any selected value suffices (OR), and all
// dimensions must pass (AND).
//
// InvestmentType selects on the investor's investment-stage bucket.
type FilterState struct {
	Search          string
	Location        []string
	Industry        []string
	Availability    []string
	Stage           []string
	Experience      []string
	InvestmentRange []string
	InvestmentType  []string
}

// Matches reports whether p passes every active dimension. It is pure and
// order-independent.
func (f FilterState) Matches(p models.Profile) bool {
	return f.matchesSearch(p) &&
		f.matchesLocation(p) &&
		f.matchesIndustry(p) &&
		f.matchesAvailability(p) &&
		f.matchesStage(p) &&
		f.matchesExperience(p) &&
		f.matchesInvestment(p)
}

// matchesSearch checks the free-text query against the profile's searchable
// fields. Missing optional fields are skipped, never treated as failures.
func (f FilterState) matchesSearch(p models.Profile) bool {
	q := strings.ToLower(f.Search)
	if q == "" {
		return true
	}
	for _, field := range []string{
		p.FullName,
		p.ShortBio,
		p.Location,
		p.StartupName(),
		p.IndustryValue(),
		p.SkillsExpertise(),
	} {
		if field != "" && strings.Contains(strings.ToLower(field), q) {
			return true
		}
	}
	return false
}

// matchesLocation narrows by case-insensitive location substring. The
// "Remote" option needs no special handling: it matches any location
// mentioning remote through the same substring rule.
func (f FilterState) matchesLocation(p models.Profile) bool {
	if len(f.Location) == 0 {
		return true
	}
	loc := strings.ToLower(p.Location)
	for _, sel := range f.Location {
		if strings.Contains(loc, strings.ToLower(sel)) {
			return true
		}
	}
	return false
}

// matchesIndustry narrows by industry substring. A profile without an
// industry value is exempt from this dimension rather than excluded by it.
func (f FilterState) matchesIndustry(p models.Profile) bool {
	if len(f.Industry) == 0 {
		return true
	}
	industry := strings.ToLower(p.IndustryValue())
	if industry == "" {
		return true
	}
	for _, sel := range f.Industry {
		if strings.Contains(industry, strings.ToLower(sel)) {
			return true
		}
	}
	return false
}

func (f FilterState) matchesAvailability(p models.Profile) bool {
	if len(f.Availability) == 0 {
		return true
	}
	for _, sel := range f.Availability {
		if p.Availability == sel {
			return true
		}
	}
	return false
}

// matchesStage applies only to founder profiles carrying a startup stage.
func (f FilterState) matchesStage(p models.Profile) bool {
	if len(f.Stage) == 0 || p.Founder == nil || p.Founder.StartupStage == "" {
		return true
	}
	for _, sel := range f.Stage {
		if p.Founder.StartupStage == sel {
			return true
		}
	}
	return false
}

// matchesExperience applies only to cofounder profiles carrying an
// experience level.
func (f FilterState) matchesExperience(p models.Profile) bool {
	if len(f.Experience) == 0 || p.Cofounder == nil || p.Cofounder.ExperienceLevel == "" {
		return true
	}
	for _, sel := range f.Experience {
		if p.Cofounder.ExperienceLevel == sel {
			return true
		}
	}
	return false
}

// matchesInvestment applies the range and type dimensions to investor
// profiles carrying the corresponding value.
func (f FilterState) matchesInvestment(p models.Profile) bool {
	if len(f.InvestmentRange) > 0 && p.Investor != nil && p.Investor.InvestmentRange != "" {
		if !containsExact(f.InvestmentRange, p.Investor.InvestmentRange) {
			return false
		}
	}
	if len(f.InvestmentType) > 0 && p.Investor != nil && p.Investor.InvestmentStage != "" {
		if !containsExact(f.InvestmentType, p.Investor.InvestmentStage) {
			return false
		}
	}
	return true
}

func containsExact(selected []string, value string) bool {
	for _, sel := range selected {
		if sel == value {
			return true
		}
	}
	return false
}

// Filter returns the profiles matching f, preserving input order.
func Filter(profiles []models.Profile, f FilterState) []models.Profile {
	out := make([]models.Profile, 0, len(profiles))
	for _, p := range profiles {
		if f.Matches(p) {
			out = append(out, p)
		}
	}
	return out
}
