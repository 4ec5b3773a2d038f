package directory

import (
	"strings"
	"unicode"

	"github.com/cofounderbase/cofounderbase/internal/models"
)

// displayCase produces a display-safe copy of free text: markup-significant
// characters are stripped and each whitespace-delimited token is title-cased.
// Empty input yields an empty string.
func displayCase(s string) string {
	var b strings.Builder
	b.Grow(len(s))
	for _, r := range s {
		switch r {
		case '<', '>', '"', '\'', '&':
			continue
		}
		b.WriteRune(r)
	}

	words := strings.Fields(b.String())
	for i, w := range words {
		runes := []rune(w)
		words[i] = string(unicode.ToUpper(runes[0])) + strings.ToLower(string(runes[1:]))
	}
	return strings.Join(words, " ")
}

// NormalizeForDisplay returns a display-ready copy of p. Stored values are
// never mutated: the copy gets title-cased name, location, industry and
// startup name, and a lower-cased role for comparisons. The operation is
// idempotent.
func NormalizeForDisplay(p models.Profile) models.Profile {
	out := p
	if p.Founder != nil {
		f := *p.Founder
		out.Founder = &f
	}
	if p.Cofounder != nil {
		cf := *p.Cofounder
		out.Cofounder = &cf
	}
	if p.Investor != nil {
		inv := *p.Investor
		out.Investor = &inv
	}

	out.FullName = displayCase(p.FullName)
	out.Location = displayCase(p.Location)
	out.Role = strings.ToLower(strings.TrimSpace(p.Role))
	if out.Founder != nil {
		out.Founder.Industry = displayCase(out.Founder.Industry)
		out.Founder.StartupName = displayCase(out.Founder.StartupName)
	}
	return out
}
