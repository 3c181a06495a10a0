package server

import (
	"context"
	"fmt"
	"net/http"

	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.uber.org/zap"

	"github.com/mgdov/eco-place/internal/config"
	"github.com/mgdov/eco-place/internal/handler"
	appmw "github.com/mgdov/eco-place/internal/middleware"
)

// Server runs the dashboard API.
type Server struct {
	cfg    *config.Config
	log    *zap.Logger
	router chi.Router
	http   *http.Server
}

// New creates a new server.
func New(cfg *config.Config, log *zap.Logger, deps *Deps) *Server {
	r := chi.NewRouter()

	r.Use(appmw.RequestID)
	r.Use(chimw.Recoverer)
	r.Use(chimw.RealIP)
	r.Use(appmw.Metrics)
	r.Use(appmw.Logging(log))
	r.Use(appmw.CORS(cfg.AllowedOrigins))

	r.Get("/health", handler.Health)
	r.Handle("/metrics", promhttp.Handler())

	r.Route("/api", func(r chi.Router) {
		r.Get("/reports", deps.List.List)
		r.Post("/reports/refresh", deps.List.Refresh)
		r.Get("/reports/stats", deps.List.Stats)
		r.Patch("/reports/{reportID}/status", deps.Status.Update)
		r.Get("/categories", deps.Categories.List)
		r.Get("/labels", deps.Labels.Get)
	})

	addr := fmt.Sprintf(":%d", cfg.Port)
	return &Server{
		cfg:    cfg,
		log:    log,
		router: r,
		http: &http.Server{
			Addr:    addr,
			Handler: r,
		},
	}
}

// Router exposes the handler tree. Tests only.
func (s *Server) Router() http.Handler {
	return s.router
}

// Start starts the HTTP server.
func (s *Server) Start() error {
	s.log.Info("starting server", zap.String("addr", s.http.Addr))
	return s.http.ListenAndServe()
}

// Shutdown gracefully stops the server.
func (s *Server) Shutdown(ctx context.Context) error {
	return s.http.Shutdown(ctx)
}
