package reconcile

// Result reports what a reconciliation pass did to the catalog.
type Result struct {
	// Matched counts listings that scored against an existing entry,
	// whether or not the merge changed anything.
	Matched int

	// Updated counts matched listings whose merge filled at least one
	// empty field.
	Updated int

	// New counts placeholders created for unmatched listings.
	New int

	// Bundles counts listings excluded as multi-item sets.
	Bundles int

	// Backfilled counts placeholders promoted to authoritative
	// identities.
	Backfilled int

	// Changed reports whether the catalog was mutated at all. Persistence
	// is skipped when false.
	Changed bool
}

// Merge folds another result into this one.
func (r *Result) Merge(other Result) {
	r.Matched += other.Matched
	r.Updated += other.Updated
	r.New += other.New
	r.Bundles += other.Bundles
	r.Backfilled += other.Backfilled
	r.Changed = r.Changed || other.Changed
}
