package api

import (
	"net/http"
)

func (s *Server) RegisterRoutes(mux *http.ServeMux) {
	mux.HandleFunc("GET /api/filters", s.HandleFilters)
	mux.HandleFunc("GET /api/suggest", s.HandleSuggest)
	mux.HandleFunc("GET /api/results", s.HandleResults)
	mux.HandleFunc("GET /health", s.HandleHealth)
}
