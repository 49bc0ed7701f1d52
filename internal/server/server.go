// Package server exposes the layout, merge, and drag engines over HTTP for
// rendering front ends. Every endpoint is a thin JSON shim around a pure
// engine call: decode request → snapshot → compute → encode. The server
// holds no per-map state; interaction state belongs to the client's session.
package server

import (
	"net/http"
	"time"

	"github.com/charmbracelet/log"
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"

	"github.com/mindweave/mindweave/pkg/cache"
	"github.com/mindweave/mindweave/pkg/layout"
)

// Server handles the Mindweave HTTP API.
type Server struct {
	logger   *log.Logger
	cache    cache.Cache
	cfg      layout.Config
	cacheTTL time.Duration
}

// Options configures a Server.
type Options struct {
	Logger   *log.Logger   // required
	Cache    cache.Cache   // nil disables caching
	Layout   layout.Config // layout tunables shared by all requests
	CacheTTL time.Duration // zero means DefaultCacheTTL
}

// DefaultCacheTTL is how long cached layout results stay valid.
const DefaultCacheTTL = 15 * time.Minute

// New creates a Server from options, applying defaults for optional fields.
func New(opts Options) *Server {
	c := opts.Cache
	if c == nil {
		c = cache.NewNullCache()
	}
	ttl := opts.CacheTTL
	if ttl == 0 {
		ttl = DefaultCacheTTL
	}
	return &Server{
		logger:   opts.Logger,
		cache:    c,
		cfg:      opts.Layout,
		cacheTTL: ttl,
	}
}

// Handler returns the HTTP handler with all routes mounted.
func (s *Server) Handler() http.Handler {
	r := chi.NewRouter()
	r.Use(middleware.Recoverer)
	r.Use(middleware.RequestID)

	r.Get("/healthz", s.handleHealth)
	r.Route("/v1", func(r chi.Router) {
		r.Post("/layout", s.handleLayout)
		r.Post("/merge", s.handleMerge)
		r.Post("/drag", s.handleDrag)
		r.Post("/render", s.handleRender)
	})
	return r
}

func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "text/plain")
	_, _ = w.Write([]byte("ok"))
}
