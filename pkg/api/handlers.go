package api

import (
	"fmt"
	"net/http"
	"net/url"
	"strconv"
	"time"

	"github.com/rubiojr/folio/pkg/render"
	"github.com/rubiojr/folio/pkg/search"
	"github.com/rubiojr/folio/pkg/version"
)

// HandleFilters returns the filter panel. Query parameters select options
// the same way the page does.
func (s *Server) HandleFilters(w http.ResponseWriter, r *http.Request) {
	params, err := parseParams(r.URL.Query())
	if err != nil {
		s.writeError(w, http.StatusBadRequest, "Invalid parameter", err.Error())
		return
	}

	panel, _ := s.ctrl.LoadFilters(r.Context()).Select(params)
	s.writeJSON(w, http.StatusOK, FiltersResponse{Filters: panel})
}

// HandleSuggest returns the suggestion list for q. Short input yields a
// hidden list without contacting the search API.
func (s *Server) HandleSuggest(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query().Get(search.KeyQuery)

	response := SuggestResponse{
		Query:       search.SuggestText(q),
		Suggestions: s.ctrl.HandleInput(r.Context(), q),
	}
	s.writeJSON(w, http.StatusOK, response)
}

// HandleResults runs a search. A failed upstream request still returns the
// results view (in its error state) with a 502 status.
func (s *Server) HandleResults(w http.ResponseWriter, r *http.Request) {
	params, err := parseParams(r.URL.Query())
	if err != nil {
		s.writeError(w, http.StatusBadRequest, "Invalid parameter", err.Error())
		return
	}

	view := s.ctrl.PerformSearch(r.Context(), params)

	status := http.StatusOK
	if view.State == render.StateError {
		status = http.StatusBadGateway
	}
	s.writeJSON(w, status, ResultsResponse{
		Params:      params,
		QueryString: params.Encode(),
		Results:     view,
	})
}

func (s *Server) HandleHealth(w http.ResponseWriter, r *http.Request) {
	health := HealthResponse{
		Status:    "ok",
		Timestamp: time.Now().UTC(),
		Version:   version.APIVersion(),
		Upstream:  s.ctrl.Upstream(),
	}

	s.writeJSON(w, http.StatusOK, health)
}

// parseParams is search.ParseParams with validation: the JSON API rejects
// what the page silently ignores.
func parseParams(values url.Values) (search.Params, error) {
	if v := values.Get(search.KeyPublished); v != "" && v != search.PublishedTrue && v != search.PublishedFalse {
		return search.Params{}, fmt.Errorf("published must be %q or %q, got %q", search.PublishedTrue, search.PublishedFalse, v)
	}
	if v := values.Get(search.KeyPage); v != "" {
		if n, err := strconv.Atoi(v); err != nil || n < 0 {
			return search.Params{}, fmt.Errorf("page must be a non-negative integer, got %q", v)
		}
	}
	return search.ParseParams(values), nil
}
