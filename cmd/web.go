package cmd

import (
	"context"
	"embed"
	"errors"
	"fmt"
	"net/http"
	"os/signal"
	"strconv"
	"strings"
	"syscall"
	"time"

	"github.com/a-h/templ"
	"github.com/google/uuid"
	"github.com/klauspost/compress/gzhttp"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/urfave/cli/v3"

	"github.com/rubiojr/folio/cmd/web/components"
	"github.com/rubiojr/folio/cmd/web/components/types"
	"github.com/rubiojr/folio/pkg/api"
	"github.com/rubiojr/folio/pkg/config"
	"github.com/rubiojr/folio/pkg/log"
	"github.com/rubiojr/folio/pkg/metrics"
	"github.com/rubiojr/folio/pkg/page"
	"github.com/rubiojr/folio/pkg/realtime"
	"github.com/rubiojr/folio/pkg/render"
	"github.com/rubiojr/folio/pkg/search"
	"github.com/rubiojr/folio/pkg/version"
)

//go:embed web/static/*
var staticFS embed.FS

// WebCommand creates the web command with both API and UI
func WebCommand() *cli.Command {
	return &cli.Command{
		Name:  "web",
		Usage: "Start web server with the search page and JSON API",
		Flags: []cli.Flag{
			&cli.IntFlag{
				Name:  "port",
				Usage: "Port to listen on (default from config)",
			},
			&cli.StringFlag{
				Name:  "host",
				Usage: "Host to bind to (default from config)",
			},
		},
		Action: func(ctx context.Context, c *cli.Command) error {
			cfg, err := loadSettings(c)
			if err != nil {
				return err
			}
			if c.IsSet("host") {
				cfg.Web.Host = c.String("host")
			}
			if c.IsSet("port") {
				cfg.Web.Port = int(c.Int("port"))
			}
			if err := cfg.Validate(); err != nil {
				return fmt.Errorf("invalid web settings: %w", err)
			}
			return startWebServer(ctx, cfg, c.String("config"), c.String("api-url"))
		},
	}
}

// WebServer holds the server configuration and dependencies
type WebServer struct {
	ctrl      *page.Controller
	apiServer *api.Server
	live      *realtime.Handler
	renderer  components.FragmentRenderer
	logger    *log.Logger
}

func newWebServer(cfg *config.Config) *WebServer {
	s := &WebServer{
		ctrl:   page.NewController(newClient(cfg)),
		logger: log.ForService("web"),
	}
	s.apiServer = api.NewServer(s.ctrl)
	s.live = realtime.NewHandler(s.ctrl, s.renderer)
	return s
}

// Upstream returns the search API base URL currently in use.
func (s *WebServer) Upstream() string {
	return s.ctrl.Upstream()
}

// applyConfig points the controller at the upstream described by cfg.
// Requests already in flight finish against the previous client.
func (s *WebServer) applyConfig(cfg *config.Config) {
	s.ctrl.SetBackend(newClient(cfg))
}

// Handler returns the complete HTTP handler. /ws is served outside the
// gzip and logging wrappers, which would hide the connection hijacker.
func (s *WebServer) Handler() http.Handler {
	mux := http.NewServeMux()

	// API routes
	s.apiServer.RegisterRoutes(mux)

	// Web UI routes
	mux.HandleFunc("GET /{$}", s.handleHome)
	mux.HandleFunc("GET /fragments/suggest", s.handleSuggestFragment)
	mux.HandleFunc("GET /fragments/results", s.handleResultsFragment)

	// Static assets
	mux.HandleFunc("GET /static/", s.handleStatic)

	mux.Handle("GET /metrics", promhttp.Handler())

	root := http.NewServeMux()
	root.Handle("/ws", s.live)
	root.Handle("/", gzhttp.GzipHandler(logRequests(s.logger, api.CorsMiddleware(mux))))
	return root
}

// startWebServer serves until ctx is done or SIGINT/SIGTERM arrives
func startWebServer(ctx context.Context, cfg *config.Config, configPath, apiURL string) error {
	s := newWebServer(cfg)

	server := &http.Server{
		Addr:              cfg.WebAddr(),
		Handler:           s.Handler(),
		ReadHeaderTimeout: 10 * time.Second,
	}

	ctx, stop := signal.NotifyContext(ctx, syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	go s.watchConfig(ctx, configPath, apiURL)

	errCh := make(chan error, 1)
	go func() {
		s.logger.Infof("Starting web server on http://%s", cfg.WebAddr())
		s.logger.Infof("Search API: %s", s.Upstream())
		s.logger.Infof("Available endpoints:")
		s.logger.Infof("  Web UI:")
		s.logger.Infof("    GET / - Search page (q, category, author, published, page)")
		s.logger.Infof("    GET /fragments/suggest - Suggestions fragment")
		s.logger.Infof("    GET /fragments/results - Results fragment")
		s.logger.Infof("    GET /ws - Live suggestions and results")
		s.logger.Infof("  API:")
		s.logger.Infof("    GET /api/filters - Filter vocabulary")
		s.logger.Infof("    GET /api/suggest - Suggestions for q")
		s.logger.Infof("    GET /api/results - Search results")
		s.logger.Infof("    GET /health - Health check")
		s.logger.Infof("    GET /metrics - Prometheus metrics")

		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
		close(errCh)
	}()

	select {
	case err, ok := <-errCh:
		if ok {
			return fmt.Errorf("web server: %w", err)
		}
		return nil
	case <-ctx.Done():
	}

	s.logger.Infof("Shutting down web server...")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	return server.Shutdown(shutdownCtx)
}

// Web UI Handlers

// handleHome renders the full page, running the search described by the
// query string so the page works without the script.
func (s *WebServer) handleHome(w http.ResponseWriter, r *http.Request) {
	state := s.ctrl.Load(r.Context(), search.ParseParams(r.URL.Query()))

	data := types.PageData{
		Title:       pageTitle(state.Params),
		Params:      state.Params,
		Filters:     state.Filters,
		Suggestions: render.HiddenSuggestions(),
		Results:     state.Results,
		Version:     version.APIVersion(),
	}

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	if err := components.Page(data).Render(r.Context(), w); err != nil {
		http.Error(w, fmt.Sprintf("Template error: %v", err), http.StatusInternalServerError)
	}
}

func (s *WebServer) handleSuggestFragment(w http.ResponseWriter, r *http.Request) {
	list := s.ctrl.HandleInput(r.Context(), r.URL.Query().Get(search.KeyQuery))
	templ.Handler(components.Suggestions(list)).ServeHTTP(w, r)
}

func (s *WebServer) handleResultsFragment(w http.ResponseWriter, r *http.Request) {
	view := s.ctrl.PerformSearch(r.Context(), search.ParseParams(r.URL.Query()))
	templ.Handler(components.Results(view)).ServeHTTP(w, r)
}

// handleStatic serves static assets from embedded files
func (s *WebServer) handleStatic(w http.ResponseWriter, r *http.Request) {
	path := r.URL.Path

	// Remove /static/ prefix and add web/static/ prefix for embedded filesystem
	filePath := "web/static/" + strings.TrimPrefix(path, "/static/")

	content, err := staticFS.ReadFile(filePath)
	if err != nil {
		http.NotFound(w, r)
		return
	}

	if strings.HasSuffix(path, ".css") {
		w.Header().Set("Content-Type", "text/css; charset=utf-8")
	} else if strings.HasSuffix(path, ".js") {
		w.Header().Set("Content-Type", "application/javascript; charset=utf-8")
	}

	// Set cache headers for static assets
	w.Header().Set("Cache-Control", "public, max-age=3600")

	if _, err := w.Write(content); err != nil {
		s.logger.Warnf("Error writing static content: %v", err)
	}
}

func pageTitle(params search.Params) string {
	if params.Query == "" {
		return "folio - Book Search"
	}
	return params.Query + " - folio"
}

type statusRecorder struct {
	http.ResponseWriter
	status int
}

func (r *statusRecorder) WriteHeader(code int) {
	r.status = code
	r.ResponseWriter.WriteHeader(code)
}

func (r *statusRecorder) Flush() {
	if f, ok := r.ResponseWriter.(http.Flusher); ok {
		f.Flush()
	}
}

// logRequests tags every request with an X-Request-ID and records it in
// the HTTP metrics. Routes are labelled by mux pattern.
func logRequests(logger *log.Logger, next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()

		id := r.Header.Get("X-Request-ID")
		if id == "" {
			id = uuid.NewString()
		}
		w.Header().Set("X-Request-ID", id)

		rec := &statusRecorder{ResponseWriter: w, status: http.StatusOK}
		next.ServeHTTP(rec, r)

		route := r.Pattern
		if route == "" {
			route = "unmatched"
		}
		elapsed := time.Since(start)
		metrics.HttpRequestsTotal.WithLabelValues(r.Method, route, strconv.Itoa(rec.status)).Inc()
		metrics.HttpRequestDuration.WithLabelValues(route).Observe(elapsed.Seconds())

		logger.Debugf("%s %s %d %s id=%s", r.Method, r.URL.RequestURI(), rec.status, elapsed, id)
	})
}
