package search

import (
	"strings"
	"unicode/utf8"

	"golang.org/x/text/unicode/norm"
)

// MinSuggestLength is the minimum number of characters (after trimming)
// required before an autocomplete request is issued.
const MinSuggestLength = 2

// SuggestText returns the text that is sent to the suggestion endpoint for
// the given text box content: surrounding whitespace removed.
func SuggestText(text string) string {
	return strings.TrimSpace(text)
}

// ShouldSuggest reports whether the text box content is long enough to ask
// for suggestions. Length is counted in characters of the NFC form, so a
// letter typed as base + combining accent counts once.
func ShouldSuggest(text string) bool {
	trimmed := SuggestText(text)
	if trimmed == "" {
		return false
	}
	return utf8.RuneCountInString(norm.NFC.String(trimmed)) >= MinSuggestLength
}
