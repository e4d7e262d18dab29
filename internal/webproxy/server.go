// Package webproxy serves the compiled single-page app and forwards API
// traffic to the backend. It is the public entrypoint in deployments where
// the frontend and backend run as separate services.
package webproxy

import (
	"encoding/json"
	"fmt"
	"log/slog"
	"net/http"
	"net/http/httputil"
	"net/url"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"

	"github.com/ruslanamed/clinic-go/internal/config"
)

// Server is the static/proxy frontend server.
type Server struct {
	cfg       *config.ProxyConfig
	logger    *slog.Logger
	proxy     *httputil.ReverseProxy
	startTime time.Time
}

// New builds the server. The backend URL must parse; everything else is
// checked lazily per request.
func New(cfg *config.ProxyConfig, logger *slog.Logger) (*Server, error) {
	backend, err := url.Parse(cfg.BackendURL)
	if err != nil {
		return nil, fmt.Errorf("parsing backend url %q: %w", cfg.BackendURL, err)
	}
	if logger == nil {
		logger = slog.Default()
	}

	proxy := httputil.NewSingleHostReverseProxy(backend)
	proxy.ErrorHandler = func(w http.ResponseWriter, r *http.Request, err error) {
		logger.Error("proxy error", "path", r.URL.Path, "error", err)
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusInternalServerError)
		_ = json.NewEncoder(w).Encode(map[string]string{"error": "Backend service unavailable"})
	}

	return &Server{
		cfg:       cfg,
		logger:    logger,
		proxy:     proxy,
		startTime: time.Now(),
	}, nil
}

// Routes builds the proxy router: /health answered locally, /api/* forwarded,
// everything else served from the app bundle with an index.html fallback so
// client-side routes deep-link correctly.
func (s *Server) Routes() http.Handler {
	r := chi.NewRouter()

	r.Use(chimw.RealIP)
	r.Use(chimw.Logger)
	r.Use(chimw.Recoverer)

	r.Get("/health", s.handleHealth)
	r.Handle("/api/*", s.proxy)
	r.NotFound(s.handleStatic)

	return r
}

func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	_ = json.NewEncoder(w).Encode(map[string]any{
		"status":    "OK",
		"timestamp": time.Now().UTC().Format(time.RFC3339),
		"uptime":    time.Since(s.startTime).Seconds(),
		"frontend":  "angular",
		"backend":   s.cfg.BackendURL,
	})
}

// handleStatic serves files from the dist directory. Any path that does not
// resolve to a real file gets index.html so the app router takes over.
func (s *Server) handleStatic(w http.ResponseWriter, r *http.Request) {
	name := filepath.Join(s.cfg.DistDir, filepath.Clean("/"+r.URL.Path))
	if !strings.HasPrefix(name, filepath.Clean(s.cfg.DistDir)) {
		http.NotFound(w, r)
		return
	}

	if info, err := os.Stat(name); err == nil && !info.IsDir() {
		http.ServeFile(w, r, name)
		return
	}

	http.ServeFile(w, r, filepath.Join(s.cfg.DistDir, "index.html"))
}
