// Package searchapi is the HTTP client for the remote book search API.
//
// The API exposes three read-only endpoints under a configurable base URL:
//
//	GET /filters/          -> {"categories": [...], "authors": [...]}
//	GET /suggest/?q=<text> -> {"suggestions": [...]}
//	GET /search/?<params>  -> {"response": {"numFound": n, "docs": [...]}}
//
// Failures are marked with ErrTransport or ErrDecode. Every call is wrapped
// in an OpenTelemetry span and counted in the folio_upstream_* metrics.
package searchapi

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/cockroachdb/errors"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"

	"github.com/rubiojr/folio/pkg/log"
	"github.com/rubiojr/folio/pkg/metrics"
	"github.com/rubiojr/folio/pkg/search"
	"github.com/rubiojr/folio/pkg/version"
)

// Endpoint names used in logs, spans and metric labels.
const (
	EndpointFilters = "filters"
	EndpointSuggest = "suggest"
	EndpointSearch  = "search"
)

// maxBodySize caps how much of a response body is read.
const maxBodySize = 8 << 20

type Client struct {
	baseURL    string
	httpClient *http.Client
	tracer     trace.Tracer
	logger     *log.Logger
}

type Option func(*Client)

// WithTimeout bounds every request. Zero means no timeout.
func WithTimeout(d time.Duration) Option {
	return func(c *Client) {
		c.httpClient.Timeout = d
	}
}

func NewClient(baseURL string, opts ...Option) *Client {
	c := &Client{
		baseURL:    strings.TrimRight(strings.TrimSpace(baseURL), "/"),
		httpClient: &http.Client{},
		tracer:     otel.Tracer("folio-searchapi"),
		logger:     log.ForService("searchapi"),
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// BaseURL returns the API base URL without a trailing slash.
func (c *Client) BaseURL() string {
	return c.baseURL
}

// Filters fetches the filter vocabulary.
func (c *Client) Filters(ctx context.Context) (*FilterOptions, error) {
	var out FilterOptions
	if err := c.get(ctx, EndpointFilters, "/filters/", &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// Suggest fetches completions for text. The caller is expected to have
// checked search.ShouldSuggest; text is trimmed and percent-encoded here.
func (c *Client) Suggest(ctx context.Context, text string) (*Suggestions, error) {
	path := "/suggest/?q=" + search.EscapeComponent(search.SuggestText(text))

	var out Suggestions
	if err := c.get(ctx, EndpointSuggest, path, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// Search runs a search with params.
func (c *Client) Search(ctx context.Context, params search.Params) (*SearchResponse, error) {
	path := "/search/?" + params.Encode()

	var out SearchResponse
	if err := c.get(ctx, EndpointSearch, path, &out); err != nil {
		return nil, err
	}
	if out.Error != "" {
		c.logger.Warnf("search backend reported an error: %s", out.Error)
	}
	return &out, nil
}

func (c *Client) get(ctx context.Context, endpoint, path string, out any) error {
	target := c.baseURL + path

	ctx, span := c.tracer.Start(ctx, "searchapi."+endpoint,
		trace.WithSpanKind(trace.SpanKindClient),
		trace.WithAttributes(
			attribute.String("searchapi.endpoint", endpoint),
			attribute.String("http.url", target),
		),
	)
	defer span.End()

	start := time.Now()
	defer func() {
		metrics.UpstreamRequestDuration.WithLabelValues(endpoint).Observe(time.Since(start).Seconds())
	}()

	fail := func(err error, outcome, msg string) error {
		metrics.UpstreamRequestsTotal.WithLabelValues(endpoint, outcome).Inc()
		span.RecordError(err)
		span.SetStatus(codes.Error, msg)
		return err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, target, nil)
	if err != nil {
		return fail(transportError(err, endpoint), metrics.OutcomeTransport, "failed to build request")
	}
	req.Header.Set("Accept", "application/json")
	req.Header.Set("User-Agent", "folio/"+version.Version)

	c.logger.Debugf("GET %s", target)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fail(transportError(err, endpoint), metrics.OutcomeTransport, "request failed")
	}
	defer resp.Body.Close()

	span.SetAttributes(attribute.Int("http.status_code", resp.StatusCode))

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		// drain so the connection can be reused
		_, _ = io.Copy(io.Discard, io.LimitReader(resp.Body, maxBodySize))
		statusErr := &StatusError{Endpoint: endpoint, StatusCode: resp.StatusCode}
		return fail(errors.Mark(statusErr, ErrTransport), metrics.OutcomeTransport, "unexpected status")
	}

	body, err := io.ReadAll(io.LimitReader(resp.Body, maxBodySize))
	if err != nil {
		return fail(transportError(err, endpoint), metrics.OutcomeTransport, "failed to read body")
	}

	if err := json.Unmarshal(body, out); err != nil {
		return fail(decodeError(err, endpoint), metrics.OutcomeDecode, "malformed response")
	}

	if r, ok := out.(backendReporter); ok && r.backendError() != "" {
		metrics.UpstreamRequestsTotal.WithLabelValues(endpoint, metrics.OutcomeUpstream).Inc()
		span.SetStatus(codes.Error, "backend error")
		return nil
	}

	metrics.UpstreamRequestsTotal.WithLabelValues(endpoint, metrics.OutcomeOK).Inc()
	span.SetStatus(codes.Ok, "")
	return nil
}

// backendReporter is implemented by payloads that can carry an error
// reported by the search backend inside a 2xx answer.
type backendReporter interface {
	backendError() string
}
