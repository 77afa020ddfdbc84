package reconcile

import "github.com/figtrack/figtrack/pkg/catalogs"

// newPlaceholder builds a provisional catalog entry for a listing that
// matched nothing. The identity is synthesized from the raw name, so the
// same listing produces the same placeholder on every run.
func newPlaceholder(listing *catalogs.Listing) *catalogs.Entry {
	head, tail := catalogs.SynthesizeID(listing.Name)

	itemType := listing.Type
	if itemType == "" {
		itemType = "figure"
	}

	entry := &catalogs.Entry{
		Name:        listing.Name,
		Character:   listing.Name,
		Series:      listing.Series,
		GameSeries:  listing.Series,
		Head:        head,
		Tail:        tail,
		Type:        itemType,
		Image:       listing.Image,
		Provisional: true,
	}
	if listing.ReleaseDate != "" {
		entry.SetReleaseDate(catalogs.RegionNA, listing.ReleaseDate)
	}
	return entry
}
