package reconcile

import "github.com/figtrack/figtrack/pkg/catalogs"

// merge fills the entry's empty fields from the listing and reports
// whether anything changed. The policy is fill-empty only: a field that
// already has a value is never overwritten, so merging is idempotent and
// scraped data can never clobber authoritative data.
func merge(entry *catalogs.Entry, listing *catalogs.Listing) bool {
	changed := false

	if listing.ReleaseDate != "" && entry.Release[catalogs.RegionNA] == "" {
		entry.SetReleaseDate(catalogs.RegionNA, listing.ReleaseDate)
		changed = true
	}

	if listing.Series != "" && entry.Series == "" {
		entry.Series = listing.Series
		changed = true
	}

	if listing.Type != "" && entry.Type == "" {
		entry.Type = listing.Type
		changed = true
	}

	return changed
}
