package scraper

// profileOverrides centralizes the one-off extraction logic: sources whose
// markup cannot be handled by the default sub-selector chain get a named
// profile here instead of string-branching inside the resolver.
var profileOverrides = map[string]Profile{
	"고용노동부": ProfilePersonnelLabel,
}

func ProfileFor(sourceName string) Profile {
	if p, ok := profileOverrides[sourceName]; ok {
		return p
	}
	return ProfileDefault
}
