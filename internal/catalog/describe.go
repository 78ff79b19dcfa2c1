package catalog

// Description is a long description prepared for display
type Description struct {
	Text      string    `json:"text"`
	Truncated bool      `json:"truncated"`
	Expanded  bool      `json:"expanded"`
	Segments  []Segment `json:"segments"`
}

// Describe clips text for the given expansion state and highlights the result.
// Truncated reports whether a "Read more" toggle applies at all.
func Describe(text string, expanded bool, limit int, keywords KeywordSet) Description {
	shown := DisplayText(text, expanded, limit)
	return Description{
		Text:      shown,
		Truncated: NeedsTruncation(text, limit),
		Expanded:  expanded,
		Segments:  Highlight(shown, keywords),
	}
}
