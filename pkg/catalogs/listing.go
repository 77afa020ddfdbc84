package catalogs

import "time"

// Listing is a single item scraped from the lineup page. Listings are
// ephemeral: they exist only for the duration of a run and are never
// persisted.
type Listing struct {
	// Name is the raw display name as scraped, before normalization.
	Name string

	// Series is the figure line the lineup page attributes the item to,
	// already cleaned of any trailing "series" suffix. Empty when the
	// page omits it.
	Series string

	// ReleaseDate is the announced North America date in YYYY-MM-DD
	// form, or empty when unannounced.
	ReleaseDate string

	// Image is the absolute URL of the listing's product image.
	Image string

	// Type is the item type when the page states one ("figure", "card").
	Type string
}

// ReleaseTime parses the listing's release date. Returns nil when the
// date is absent or malformed.
func (l *Listing) ReleaseTime() *time.Time {
	if l.ReleaseDate == "" {
		return nil
	}
	t, err := time.Parse(ReleaseDateLayout, l.ReleaseDate)
	if err != nil {
		return nil
	}
	return &t
}
