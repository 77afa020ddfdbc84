// Package score computes a matching confidence in [0,1] between two
// normalized figure names, optionally boosted by release-date proximity.
//
// The name similarity blends a character-level alignment ratio with a
// word-set Jaccard similarity, plus a flat bonus when one name contains the
// other. The alignment ratio is Ratcliff/Obershelp-style: total matched
// characters found by recursive longest-common-substring alignment, divided
// by the length of the shorter name. Dividing by the shorter length means a
// pure substring pair scores a full 1.0 on the character component, which
// keeps short lineup names ("Mario") matchable against their longer catalog
// forms ("Mario Super").
package score

import (
	"strings"
	"time"
)

const (
	alignmentWeight = 0.6
	wordSetWeight   = 0.4
	substringBonus  = 0.1

	exactDateBoost = 0.3
	closeDateBoost = 0.15
	closeDateDays  = 30
)

// Name computes the similarity between two normalized names without any
// date information. Empty input on either side yields 0.
func Name(a, b string) float64 {
	if a == "" || b == "" {
		return 0
	}

	s := alignmentWeight*alignmentRatio(a, b) + wordSetWeight*jaccard(a, b)

	if strings.Contains(a, b) || strings.Contains(b, a) {
		s += substringBonus
	}

	return clamp(s)
}

// Names computes the similarity between two normalized names boosted by
// release-date proximity. Equal dates add 0.3, dates within 30 days add
// 0.15; a missing date on either side adds nothing. The result is clamped
// to 1.0 and is symmetric in its arguments.
func Names(a, b string, dateA, dateB *time.Time) float64 {
	s := Name(a, b)
	if s == 0 {
		return 0
	}
	return clamp(s + dateBoost(dateA, dateB))
}

// dateBoost returns the additive boost for release-date proximity.
func dateBoost(a, b *time.Time) float64 {
	if a == nil || b == nil {
		return 0
	}
	if a.Equal(*b) {
		return exactDateBoost
	}

	delta := a.Sub(*b)
	if delta < 0 {
		delta = -delta
	}
	if delta <= closeDateDays*24*time.Hour {
		return closeDateBoost
	}
	return 0
}

// alignmentRatio is the Ratcliff/Obershelp matched-character count divided
// by the length of the shorter string, in runes.
func alignmentRatio(a, b string) float64 {
	ra, rb := []rune(a), []rune(b)

	shorter := len(ra)
	if len(rb) < shorter {
		shorter = len(rb)
	}
	if shorter == 0 {
		return 0
	}

	return float64(matchedRunes(ra, rb)) / float64(shorter)
}

// matchedRunes counts total matched characters by finding the longest
// common substring and recursing on the unmatched pieces to its left and
// right, as Ratcliff/Obershelp alignment does.
func matchedRunes(a, b []rune) int {
	ai, bi, size := longestCommonSubstring(a, b)
	if size == 0 {
		return 0
	}
	return size +
		matchedRunes(a[:ai], b[:bi]) +
		matchedRunes(a[ai+size:], b[bi+size:])
}

// longestCommonSubstring returns the start offsets in a and b and the
// length of their longest common contiguous run. Ties resolve to the
// earliest position in a, then in b.
func longestCommonSubstring(a, b []rune) (ai, bi, size int) {
	if len(a) == 0 || len(b) == 0 {
		return 0, 0, 0
	}

	// lengths[j] holds the run length ending at a[i-1], b[j-1]
	lengths := make([]int, len(b)+1)

	for i := 1; i <= len(a); i++ {
		// iterate j backwards so lengths[j-1] is still the previous row
		for j := len(b); j >= 1; j-- {
			if a[i-1] != b[j-1] {
				lengths[j] = 0
				continue
			}
			lengths[j] = lengths[j-1] + 1
			if lengths[j] > size {
				size = lengths[j]
				ai = i - size
				bi = j - size
			}
		}
	}

	return ai, bi, size
}

// jaccard is the word-set similarity: |intersection| / |union| of the
// whitespace-split token sets.
func jaccard(a, b string) float64 {
	wordsA := toSet(strings.Fields(a))
	wordsB := toSet(strings.Fields(b))

	if len(wordsA) == 0 || len(wordsB) == 0 {
		return 0
	}

	intersection := 0
	for w := range wordsA {
		if _, ok := wordsB[w]; ok {
			intersection++
		}
	}

	union := len(wordsA) + len(wordsB) - intersection
	return float64(intersection) / float64(union)
}

func toSet(words []string) map[string]struct{} {
	set := make(map[string]struct{}, len(words))
	for _, w := range words {
		set[w] = struct{}{}
	}
	return set
}

func clamp(x float64) float64 {
	if x > 1 {
		return 1
	}
	if x < 0 {
		return 0
	}
	return x
}
