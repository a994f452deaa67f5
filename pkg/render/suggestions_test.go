package render

import (
	"testing"

	"github.com/rubiojr/folio/pkg/searchapi"
)

func TestSuggestions(t *testing.T) {
	tests := []struct {
		name    string
		input   *searchapi.Suggestions
		visible bool
		items   int
	}{
		{"nil", nil, false, 0},
		{"empty list", &searchapi.Suggestions{}, false, 0},
		{"only empty entries", &searchapi.Suggestions{Suggestions: []searchapi.FlexString{""}}, false, 0},
		{"two entries", &searchapi.Suggestions{Suggestions: []searchapi.FlexString{"Dune", "Dune Messiah"}}, true, 2},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			list := Suggestions(tt.input)
			if list.Visible != tt.visible {
				t.Errorf("expected visible=%v, got %v", tt.visible, list.Visible)
			}
			if len(list.Items) != tt.items {
				t.Errorf("expected %d items, got %d", tt.items, len(list.Items))
			}
		})
	}
}

func TestSuggestionsKeepExactText(t *testing.T) {
	list := Suggestions(&searchapi.Suggestions{Suggestions: []searchapi.FlexString{"<i>Odd</i> title"}})
	if list.Items[0] != "<i>Odd</i> title" {
		t.Errorf("suggestion text must be verbatim, got %q", list.Items[0])
	}
}

func TestDashSpaces(t *testing.T) {
	tests := map[string]string{
		"Jane Doe":     "Jane-Doe",
		"  padded  ":   "-padded-",
		"tab\tand\nnl": "tab-and-nl",
		"none":         "none",
	}
	for in, expected := range tests {
		if got := dashSpaces(in); got != expected {
			t.Errorf("dashSpaces(%q): expected %q, got %q", in, expected, got)
		}
	}
}
