package render

import "github.com/rubiojr/folio/pkg/searchapi"

// SuggestionList describes the autocomplete dropdown. Items are the exact
// strings that are put in the search box when clicked.
type SuggestionList struct {
	Visible bool     `json:"visible"`
	Items   []string `json:"items"`
}

// HiddenSuggestions is the state of the dropdown when there is nothing to
// show: input too short, empty answer or a failed request.
func HiddenSuggestions() SuggestionList {
	return SuggestionList{Visible: false, Items: []string{}}
}

// Suggestions builds the dropdown for a /suggest/ answer. The list is
// visible only when it has at least one entry.
func Suggestions(s *searchapi.Suggestions) SuggestionList {
	items := s.Values()
	if len(items) == 0 {
		return HiddenSuggestions()
	}
	return SuggestionList{Visible: true, Items: items}
}
