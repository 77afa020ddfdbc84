package lineup

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"

	"github.com/PuerkitoBio/goquery"
)

var (
	slashDateRE = regexp.MustCompile(`(\d{1,2})/(\d{1,2})/(\d{2,4})`)
	availableRE = regexp.MustCompile(`Available\s+\d`)
	yearRE      = regexp.MustCompile(`\b(20\d{2})\b`)

	trailingSeriesRE = regexp.MustCompile(`(?i)\s+series\s*$`)
)

func trimText(p *goquery.Selection) string {
	return strings.TrimSpace(p.Text())
}

func mentionsSeries(text string) bool {
	return strings.Contains(strings.ToLower(text), "series")
}

// cleanSeries strips the trailing "series" label the page appends to
// every line name ("Super Smash Bros. series" -> "Super Smash Bros.").
func cleanSeries(text string) string {
	return strings.TrimSpace(trailingSeriesRE.ReplaceAllString(text, ""))
}

// containsDate reports whether the paragraph looks like an availability
// line: a slash date, an "Available <digit>" phrase, or a bare year.
func containsDate(text string) bool {
	return slashDateRE.MatchString(text) ||
		availableRE.MatchString(text) ||
		yearRE.MatchString(text)
}

// parseDate extracts a date from an availability line and renders it as
// YYYY-MM-DD. Slash dates accept two- or four-digit years; a bare year
// means "sometime this year" and pins to December 31 so date-proximity
// scoring treats it as late in the year rather than exact. Returns ""
// when nothing parses.
func parseDate(text string) string {
	if m := slashDateRE.FindStringSubmatch(text); m != nil {
		month, _ := strconv.Atoi(m[1])
		day, _ := strconv.Atoi(m[2])
		year, _ := strconv.Atoi(m[3])
		if year < 100 {
			year += 2000
		}
		if month >= 1 && month <= 12 && day >= 1 && day <= 31 {
			return fmt.Sprintf("%04d-%02d-%02d", year, month, day)
		}
		return ""
	}

	if m := yearRE.FindStringSubmatch(text); m != nil {
		return m[1] + "-12-31"
	}

	return ""
}
