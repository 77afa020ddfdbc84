// Package catalogs defines the catalog data model: canonical figure
// entries, ephemeral scraped listings, the in-memory catalog collection,
// and the JSON store that persists it. The catalog is the single source of
// truth a run mutates; everything else in the system is derived from or
// feeds into it.
package catalogs

import (
	"regexp"
	"strings"
	"time"
)

// Region identifies a release region in an entry's release map.
type Region string

// Release regions.
const (
	RegionNA Region = "na"
	RegionEU Region = "eu"
	RegionJP Region = "jp"
	RegionAU Region = "au"
)

// Regions lists all release regions in canonical order.
var Regions = []Region{RegionNA, RegionEU, RegionJP, RegionAU}

// ReleaseDateLayout is the wire format for release dates.
const ReleaseDateLayout = "2006-01-02"

// Entry is a canonical catalog record for a single figure. Head and Tail
// together form the figure's identity; placeholder entries synthesized for
// unmatched listings carry the reserved "ff" prefix on both until an
// authoritative source promotes them.
type Entry struct {
	Name        string            `json:"name"`
	Character   string            `json:"character"`
	Series      string            `json:"series"`
	GameSeries  string            `json:"game_series,omitempty"`
	Head        string            `json:"head"`
	Tail        string            `json:"tail"`
	Type        string            `json:"type"`
	Image       string            `json:"image,omitempty"`
	Release     map[Region]string `json:"release"`
	Provisional bool              `json:"is_upcoming,omitempty"`
}

var slugRE = regexp.MustCompile(`[^a-z0-9]+`)

// slugify reduces a series name to a stable lowercase token for keys.
func slugify(s string) string {
	s = slugRE.ReplaceAllString(strings.ToLower(s), "-")
	return strings.Trim(s, "-")
}

// Key returns the entry's unique catalog key: head, tail, and a slug of
// the series. The series participates because the same character can
// appear across figure lines.
func (e *Entry) Key() string {
	return e.Head + "-" + e.Tail + "-" + slugify(e.Series)
}

// IsPlaceholder reports whether the entry's identity was synthesized
// locally rather than assigned by the authoritative source.
func (e *Entry) IsPlaceholder() bool {
	return strings.HasPrefix(e.Head, PlaceholderPrefix)
}

// ReleaseDate parses the entry's release date for the given region.
// Returns nil when the region has no date or the stored value is
// malformed.
func (e *Entry) ReleaseDate(region Region) *time.Time {
	raw, ok := e.Release[region]
	if !ok || raw == "" {
		return nil
	}
	t, err := time.Parse(ReleaseDateLayout, raw)
	if err != nil {
		return nil
	}
	return &t
}

// SetReleaseDate stores a release date for the given region, allocating
// the map on first use.
func (e *Entry) SetReleaseDate(region Region, date string) {
	if e.Release == nil {
		e.Release = make(map[Region]string, len(Regions))
	}
	e.Release[region] = date
}

// Clone returns a deep copy of the entry.
func (e *Entry) Clone() *Entry {
	out := *e
	if e.Release != nil {
		out.Release = make(map[Region]string, len(e.Release))
		for region, date := range e.Release {
			out.Release[region] = date
		}
	}
	return &out
}
