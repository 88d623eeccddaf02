package scraper

// Profile selects the extraction rules for one source's markup.
type Profile int

const (
	// ProfileDefault resolves titles via the ordered sub-selector chain.
	ProfileDefault Profile = iota
	// ProfilePersonnelLabel scans row and cell text for the "[인사]" label
	// token. Used for boards whose rows have no identifiable title column.
	ProfilePersonnelLabel
)
