package catalog

import (
	"strings"
	"unicode"
	"unicode/utf8"
)

// DefaultDescriptionLimit is the number of characters of a long description
// shown before "Read more".
const DefaultDescriptionLimit = 220

// Ellipsis is appended to clipped text
const Ellipsis = "..."

// NeedsTruncation reports whether text is longer than limit characters
func NeedsTruncation(text string, limit int) bool {
	return utf8.RuneCountInString(text) > max(limit, 0)
}

// DisplayText returns the text to show for a description in the given state.
// Collapsed text over the limit is cut to limit characters, stripped of
// trailing whitespace and followed by an ellipsis.
func DisplayText(text string, expanded bool, limit int) string {
	if expanded || !NeedsTruncation(text, limit) {
		return text
	}

	limit = max(limit, 0)
	cut := len(text)
	n := 0
	for i := range text {
		if n == limit {
			cut = i
			break
		}
		n++
	}

	return strings.TrimRightFunc(text[:cut], unicode.IsSpace) + Ellipsis
}
