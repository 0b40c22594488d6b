package http

import (
	"errors"
	"log/slog"
	"net/http"
	"time"

	"github.com/aretw0/drills"
	"github.com/aretw0/drills/internal/sanitize"
	"github.com/aretw0/drills/pkg/observability"
	"github.com/aretw0/drills/pkg/widget"
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	json "github.com/goccy/go-json"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Server serves the widget page and resolves its bindings.
type Server struct {
	getter   widget.Getter
	bindings map[string]widget.Binding
	order    []widget.Binding
	metrics  *observability.Metrics
	gatherer prometheus.Gatherer
	logger   *slog.Logger
}

// Option configures the Server.
type Option func(*Server)

// WithMetrics records binding outcomes on m and exposes g on /metrics.
func WithMetrics(m *observability.Metrics, g prometheus.Gatherer) Option {
	return func(s *Server) {
		s.metrics = m
		s.gatherer = g
	}
}

// WithLogger sets the request logger.
func WithLogger(logger *slog.Logger) Option {
	return func(s *Server) {
		s.logger = logger
	}
}

// NewHandler creates the HTTP handler for the given bindings.
func NewHandler(getter widget.Getter, bindings []widget.Binding, opts ...Option) http.Handler {
	s := &Server{
		getter:   getter,
		bindings: make(map[string]widget.Binding, len(bindings)),
		order:    bindings,
		logger:   slog.Default(),
	}
	for _, b := range bindings {
		s.bindings[b.Element] = b
	}
	for _, opt := range opts {
		opt(s)
	}
	if s.metrics == nil {
		reg := prometheus.NewRegistry()
		s.metrics = observability.NewMetrics(reg)
		s.gatherer = reg
	}

	r := chi.NewRouter()
	r.Use(middleware.RequestID)
	r.Use(middleware.Recoverer)
	r.Use(corsMiddleware)

	r.Get("/", s.Page)
	r.Get("/health", s.GetHealth)
	r.Get("/info", s.GetInfo)
	r.Get("/api/bindings", s.ListBindings)
	r.Get("/api/bindings/{element}", s.ResolveBinding)
	r.Handle("/metrics", promhttp.HandlerFor(s.gatherer, promhttp.HandlerOpts{}))
	return r
}

func corsMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Access-Control-Allow-Origin", "*")
		w.Header().Set("Access-Control-Allow-Methods", "GET, OPTIONS")
		w.Header().Set("Access-Control-Allow-Headers", "Content-Type, X-Requested-With")

		if r.Method == http.MethodOptions {
			w.WriteHeader(http.StatusOK)
			return
		}
		next.ServeHTTP(w, r)
	})
}

// GetHealth handles GET /health.
func (s *Server) GetHealth(w http.ResponseWriter, r *http.Request) {
	s.writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

// GetInfo handles GET /info.
func (s *Server) GetInfo(w http.ResponseWriter, r *http.Request) {
	s.writeJSON(w, http.StatusOK, map[string]string{
		"app":     "drills-http",
		"version": drills.Version,
	})
}

// ListBindings handles GET /api/bindings.
func (s *Server) ListBindings(w http.ResponseWriter, r *http.Request) {
	s.writeJSON(w, http.StatusOK, s.order)
}

// ResolveBinding handles GET /api/bindings/{element}?input=...
func (s *Server) ResolveBinding(w http.ResponseWriter, r *http.Request) {
	element := chi.URLParam(r, "element")
	b, ok := s.bindings[element]
	if !ok {
		s.writeError(w, http.StatusNotFound, "unknown binding: "+element)
		return
	}

	input, err := sanitize.Input(r.URL.Query().Get("input"))
	if err != nil {
		status := http.StatusBadRequest
		if errors.Is(err, sanitize.ErrInputTooLarge) {
			status = http.StatusRequestEntityTooLarge
		}
		s.logger.Warn("binding input rejected", "element", element, "err", err)
		s.writeError(w, status, err.Error())
		return
	}

	start := time.Now()
	res, err := widget.Resolve(r.Context(), s.getter, b, input)
	s.metrics.ObserveBinding(element, res.Failed, time.Since(start))
	if err != nil {
		s.logger.Warn("binding failed", "element", element,
			"request_id", middleware.GetReqID(r.Context()), "err", err)
	}
	s.writeJSON(w, http.StatusOK, res)
}

func (s *Server) writeError(w http.ResponseWriter, status int, msg string) {
	s.writeJSON(w, status, map[string]string{"error": msg})
}

func (s *Server) writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		s.logger.Error("encode response", "err", err)
	}
}
