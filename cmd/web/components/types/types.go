package types

import (
	"github.com/rubiojr/folio/pkg/render"
	"github.com/rubiojr/folio/pkg/search"
)

// PageData represents data passed to templates
type PageData struct {
	Title       string
	Params      search.Params
	Filters     render.FilterPanel
	Suggestions render.SuggestionList
	Results     render.ResultsView
	Version     string // Application version (for footer display)
}
