// Package normalize canonicalizes figure display names for comparison.
// Scraped names carry qualifiers ("Inkling (Side Order)"), variant suffixes,
// punctuation, and inconsistent casing that would defeat exact comparison,
// so every name is normalized before it reaches the similarity scorer.
package normalize

import (
	"regexp"
	"strings"
	"unicode"

	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

var (
	// parenthetical qualifiers, e.g. "(Side Order)", "(Alterna)"
	parensRE = regexp.MustCompile(`\s*\(.*?\)\s*`)

	// punctuation; keeps letters, digits and spaces
	punctRE = regexp.MustCompile(`[^\p{L}\p{N}\s]`)

	whitespaceRE = regexp.MustCompile(`\s+`)

	// dash-separated edition tags occasionally appended to lineup names
	variantSuffixes = []*regexp.Regexp{
		regexp.MustCompile(`\s*-\s*side order\s*$`),
		regexp.MustCompile(`\s*-\s*alterna\s*$`),
	}

	// NFD + strip combining marks + NFC, so "Pokémon" and "Pokemon" compare equal
	diacritics = transform.Chain(norm.NFD, runes.Remove(runes.In(unicode.Mn)), norm.NFC)
)

// Name canonicalizes a display name for comparison: lowercases, folds
// diacritics, strips parenthetical qualifiers and known variant suffixes,
// removes punctuation, and collapses whitespace. Idempotent; empty input
// yields empty output.
func Name(name string) string {
	name = strings.ToLower(name)

	if folded, _, err := transform.String(diacritics, name); err == nil {
		name = folded
	}

	name = parensRE.ReplaceAllString(name, " ")

	for _, re := range variantSuffixes {
		name = re.ReplaceAllString(name, "")
	}

	name = punctRE.ReplaceAllString(name, "")
	name = whitespaceRE.ReplaceAllString(name, " ")

	return strings.TrimSpace(name)
}
