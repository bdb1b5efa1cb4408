package selkocards

import "strings"

// Granularity is the unit size at which cards are generated.
type Granularity string

// Supported granularities.
const (
	GranularitySentence  Granularity = "sentence"
	GranularityParagraph Granularity = "paragraph"
	GranularitySection   Granularity = "section"
)

// Granularities lists every supported granularity in display order.
var Granularities = []Granularity{
	GranularitySentence,
	GranularityParagraph,
	GranularitySection,
}

// ParseGranularity resolves a granularity by name.
// Unknown names return EINVALID rather than falling back to a default.
func ParseGranularity(name string) (Granularity, error) {
	g := Granularity(strings.ToLower(strings.TrimSpace(name)))
	for _, known := range Granularities {
		if g == known {
			return g, nil
		}
	}
	return "", Errorf(EINVALID, "unknown level: %q", name)
}
