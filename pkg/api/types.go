package api

import (
	"time"

	"github.com/rubiojr/folio/pkg/render"
	"github.com/rubiojr/folio/pkg/search"
)

type ErrorResponse struct {
	Error   string `json:"error"`
	Message string `json:"message"`
}

type FiltersResponse struct {
	Filters render.FilterPanel `json:"filters"`
}

type SuggestResponse struct {
	Query       string                `json:"query"`
	Suggestions render.SuggestionList `json:"suggestions"`
}

type ResultsResponse struct {
	Params      search.Params      `json:"params"`
	QueryString string             `json:"query_string"`
	Results     render.ResultsView `json:"results"`
}

type HealthResponse struct {
	Status    string    `json:"status"`
	Timestamp time.Time `json:"timestamp"`
	Version   string    `json:"version"`
	Upstream  string    `json:"upstream"`
}
