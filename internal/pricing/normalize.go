package pricing

import (
	"regexp"
	"strings"
	"unicode"
)

// MatchStrategy is how a catalog name is matched for a given line-item kind.
// Delivery over-matching on substrings is intentional legacy behaviour; keeping
// the strategy explicit makes it testable instead of incidental.
type MatchStrategy int

const (
	MatchExact MatchStrategy = iota
	MatchSubstring
)

var (
	parentheticalRe = regexp.MustCompile(`\([^)]*\)`)

	// Literal currency tokens that price-list editors append to names
	// ("Профиль GEL", "Ручка (USD)").
	currencyTokens = []string{"gel", "usd", "eur", "₾", "$", "лари"}
)

// NormalizeName produces the match key for fuzzy catalog name equality:
// lowercase, parenthetical text and currency tokens removed, whitespace
// collapsed. "Профиль (GEL)", "профиль" and "ПРОФИЛЬ  " all map to "профиль".
func NormalizeName(s string) string {
	s = strings.ToLower(s)
	s = parentheticalRe.ReplaceAllString(s, " ")
	for _, tok := range currencyTokens {
		s = strings.ReplaceAll(s, tok, " ")
	}
	return strings.Join(strings.Fields(s), " ")
}

// NormalizeThickness keeps digits only, so "8", "8 мм" and "8mm" compare equal.
func NormalizeThickness(s string) string {
	var b strings.Builder
	for _, r := range s {
		if unicode.IsDigit(r) {
			b.WriteRune(r)
		}
	}
	return b.String()
}

func nameMatches(entry, wanted string, strategy MatchStrategy) bool {
	e, w := NormalizeName(entry), NormalizeName(wanted)
	if w == "" {
		return false
	}
	if strategy == MatchSubstring {
		return strings.Contains(e, w)
	}
	return e == w
}
