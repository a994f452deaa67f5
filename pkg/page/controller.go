// Package page implements the search page controller: the state transitions
// behind the filter panel, the autocomplete dropdown and the results panel.
package page

import (
	"context"
	"sync"

	"github.com/rubiojr/folio/pkg/log"
	"github.com/rubiojr/folio/pkg/metrics"
	"github.com/rubiojr/folio/pkg/render"
	"github.com/rubiojr/folio/pkg/search"
	"github.com/rubiojr/folio/pkg/searchapi"
)

// Backend is the remote search API as seen by the controller.
// *searchapi.Client implements it.
type Backend interface {
	Filters(ctx context.Context) (*searchapi.FilterOptions, error)
	Suggest(ctx context.Context, text string) (*searchapi.Suggestions, error)
	Search(ctx context.Context, params search.Params) (*searchapi.SearchResponse, error)
}

var _ Backend = (*searchapi.Client)(nil)

// Controller turns user actions into API calls and render instructions.
// Failures never escape: they are logged and rendered as the degraded state
// of the affected panel. It is safe for concurrent use.
type Controller struct {
	mu      sync.RWMutex
	backend Backend
	logger  *log.Logger
}

func NewController(backend Backend) *Controller {
	return &Controller{
		backend: backend,
		logger:  log.ForService("page"),
	}
}

// SetBackend swaps the API used by subsequent operations. Requests already
// in flight finish against the previous one.
func (c *Controller) SetBackend(backend Backend) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.backend = backend
}

// Upstream returns the base URL of the backend in use, or "" for backends
// that do not report one.
func (c *Controller) Upstream() string {
	if b, ok := c.currentBackend().(interface{ BaseURL() string }); ok {
		return b.BaseURL()
	}
	return ""
}

func (c *Controller) currentBackend() Backend {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.backend
}

// LoadFilters fetches the filter vocabulary and builds the filter panel. On
// failure the category and author groups are left empty.
func (c *Controller) LoadFilters(ctx context.Context) render.FilterPanel {
	opts, err := c.currentBackend().Filters(ctx)
	if err != nil {
		c.logFailure(err, "Error loading filters")
		return render.Filters(nil)
	}

	c.logger.Debugf("loaded %d categories and %d authors", len(opts.Categories), len(opts.Authors))
	return render.Filters(opts)
}

// HandleInput reacts to a change of the search box. Text shorter than
// search.MinSuggestLength characters after trimming hides the dropdown
// without contacting the API.
func (c *Controller) HandleInput(ctx context.Context, text string) render.SuggestionList {
	if !search.ShouldSuggest(text) {
		metrics.SuggestionsSkippedTotal.Inc()
		return render.HiddenSuggestions()
	}

	res, err := c.currentBackend().Suggest(ctx, text)
	if err != nil {
		c.logFailure(err, "Error fetching suggestions")
		return render.HiddenSuggestions()
	}
	return render.Suggestions(res)
}

// SelectSuggestion puts suggestion in the search box and searches for it
// with the filters of current. It returns the parameters the search ran
// with, which the caller keeps as the new page state.
func (c *Controller) SelectSuggestion(ctx context.Context, suggestion string, current search.Params) (search.Params, render.ResultsView) {
	params := current.WithQuery(suggestion).Normalize()
	return params, c.PerformSearch(ctx, params)
}

// PerformSearch runs a search and builds the results panel: cards in API
// order, the no-results message, or the error message when the request
// fails.
func (c *Controller) PerformSearch(ctx context.Context, params search.Params) render.ResultsView {
	params = params.Normalize()
	c.logger.Debugf("search %s", params.Encode())

	res, err := c.currentBackend().Search(ctx, params)
	if err != nil {
		c.logFailure(err, "Error performing search")
		return render.ErrorResults()
	}
	return render.Results(res)
}

// State is everything needed to render the full page.
type State struct {
	Params  search.Params
	Filters render.FilterPanel
	Results render.ResultsView
}

// Load prepares the initial page: the filter panel with params selected
// and the results of the search params describe. An empty params runs the
// unfiltered search. Filter values the vocabulary does not offer are
// dropped before searching.
func (c *Controller) Load(ctx context.Context, params search.Params) State {
	filters, params := c.LoadFilters(ctx).Select(params.Normalize())
	return State{
		Params:  params,
		Filters: filters,
		Results: c.PerformSearch(ctx, params),
	}
}

// logFailure logs err by failure class. Abandoned requests are only
// logged at debug level.
func (c *Controller) logFailure(err error, msg string) {
	switch {
	case searchapi.IsCanceled(err):
		c.logger.Debugf("%s: %v", msg, err)
	case searchapi.IsDecode(err):
		c.logger.Errorf("%s: malformed response from %s: %v", msg, c.Upstream(), err)
	case searchapi.IsTransport(err):
		c.logger.Errorf("%s: search API %s unavailable: %v", msg, c.Upstream(), err)
	default:
		c.logger.Errorf("%s: %v", msg, err)
	}
}
