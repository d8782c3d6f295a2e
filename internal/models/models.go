package models

// Summary holds the four sections of a document summary. Every field is
// always present; an empty section is an empty slice, never nil semantics
// leaking to callers.
type Summary struct {
	ExecutiveSummary []string `json:"executive_summary"`
	KeyInsights      []string `json:"key_insights"`
	Risks            []string `json:"risks"`
	ActionItems      []string `json:"action_items"`
}

// NewSummary returns a Summary with all sections initialized to empty slices.
func NewSummary() Summary {
	return Summary{
		ExecutiveSummary: []string{},
		KeyInsights:      []string{},
		Risks:            []string{},
		ActionItems:      []string{},
	}
}

// Chunk is a contiguous, read-only window of the source text. Overlap is the
// number of leading bytes shared with the previous chunk, so dropping the
// first Overlap bytes of every chunk and concatenating reconstructs the
// original text.
type Chunk struct {
	Index   int
	Content string
	Overlap int
}

// SectionCaps bounds the length of each merged section.
type SectionCaps struct {
	ExecutiveSummary int `yaml:"executive_summary"`
	KeyInsights      int `yaml:"key_insights"`
	Risks            int `yaml:"risks"`
	ActionItems      int `yaml:"action_items"`
}

// DefaultCaps are the per-section limits applied after merging.
func DefaultCaps() SectionCaps {
	return SectionCaps{
		ExecutiveSummary: 12,
		KeyInsights:      20,
		Risks:            15,
		ActionItems:      15,
	}
}
