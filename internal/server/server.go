// Package server exposes the layout engine and renderers over HTTP for
// the practice-management UI.
//
// The service is stateless: every request carries its full input, every
// response is recomputed (or served from the shared artifact cache), and
// instances can run side by side behind a load balancer. Endpoints:
//
//	GET  /healthz       liveness probe
//	GET  /v1/templates  the fixed sheet catalog
//	POST /v1/layout     compute a layout for dimensions + options
//	POST /v1/suggest    advisor suggestion for a label size
//	POST /v1/preview    screen-pixel boxes for the on-screen preview
//	POST /v1/render     render a recipient batch to PDF
//
// Each request gets a job ID returned in X-Job-ID and attached to every
// log line, so a failed export in the UI can be found in the logs.
package server

import (
	"net/http"
	"time"

	"github.com/charmbracelet/log"
	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"

	"github.com/meridianpm/labelpress/pkg/cache"
	"github.com/meridianpm/labelpress/pkg/label"
)

// Config carries the service dependencies. Cache may be nil, which
// disables artifact caching.
type Config struct {
	// FontPath is the TTF font for PDF rendering.
	FontPath string

	// From is the practice's return address.
	From label.Address

	// Branding is the footer text, empty to omit.
	Branding string

	// Logo is the raw logo raster plus its format tag, both optional.
	Logo       []byte
	LogoFormat string

	// Cache is the shared artifact cache.
	Cache cache.Cache

	// Logger defaults to log.Default().
	Logger *log.Logger
}

// Server handles label layout and rendering requests.
type Server struct {
	cfg    Config
	cache  cache.Cache
	logger *log.Logger
}

// New creates a Server from the config.
func New(cfg Config) *Server {
	s := &Server{cfg: cfg, cache: cfg.Cache, logger: cfg.Logger}
	if s.logger == nil {
		s.logger = log.Default()
	}
	if s.cache == nil {
		s.cache = cache.NewNullCache()
	}
	return s
}

// Handler builds the chi router with all routes mounted.
func (s *Server) Handler() http.Handler {
	r := chi.NewRouter()
	r.Use(s.jobID)

	r.Get("/healthz", s.handleHealth)
	r.Route("/v1", func(r chi.Router) {
		r.Get("/templates", s.handleTemplates)
		r.Post("/layout", s.handleLayout)
		r.Post("/suggest", s.handleSuggest)
		r.Post("/preview", s.handlePreview)
		r.Post("/render", s.handleRender)
	})
	return r
}

// jobID assigns a request-scoped job ID, echoes it in the response, and
// logs request completion with it.
func (s *Server) jobID(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		id := uuid.NewString()
		w.Header().Set("X-Job-ID", id)

		logger := s.logger.With("job", id)
		ctx := withLogger(r.Context(), logger)

		start := time.Now()
		next.ServeHTTP(w, r.WithContext(ctx))
		logger.Debug("request served",
			"method", r.Method,
			"path", r.URL.Path,
			"elapsed", time.Since(start).Round(time.Millisecond))
	})
}
