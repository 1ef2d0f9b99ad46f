package app

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"

	"github.com/markdave123-py/hybridocr/internal/api/handlers"
	appMiddleware "github.com/markdave123-py/hybridocr/internal/api/middlewares"
	"github.com/markdave123-py/hybridocr/internal/config"
	engine "github.com/markdave123-py/hybridocr/internal/core/extraction_engine"
	"github.com/markdave123-py/hybridocr/internal/core/metrics"
)

// Server wraps the HTTP server instance and its handlers.
type Server struct {
	httpServer *http.Server
	logger     *slog.Logger
}

// NewServer builds and wires all routes.
func NewServer(cfg *config.Config, extractor engine.Extractor, logger *slog.Logger) *Server {
	httpSrv := &http.Server{
		Addr:              ":" + cfg.Port,
		Handler:           NewRouter(cfg, extractor, logger),
		ReadHeaderTimeout: 10 * time.Second,
	}

	return &Server{httpServer: httpSrv, logger: logger}
}

// NewRouter returns the chi router with middleware and routes attached.
func NewRouter(cfg *config.Config, extractor engine.Extractor, logger *slog.Logger) http.Handler {
	extractHandler := handlers.NewExtractHandler(extractor, cfg.UploadLimit(), logger)

	r := chi.NewRouter()
	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(appMiddleware.RequestLogger(logger))
	r.Use(appMiddleware.Recoverer(logger))
	r.Use(middleware.Timeout(cfg.Timeout()))

	r.Use(cors.Handler(cors.Options{
		AllowedOrigins: []string{cfg.FrontendURL},
		AllowedMethods: []string{"GET", "POST", "OPTIONS"},
		AllowedHeaders: []string{"Accept", "Content-Type"},
		MaxAge:         300,
	}))

	r.Get("/", handlers.Health)
	r.Post("/extract", extractHandler.Extract)
	r.Method(http.MethodGet, "/metrics", metrics.Handler())

	return r
}

// Start runs the HTTP server until Shutdown is called.
func (s *Server) Start() error {
	s.logger.Info("HTTP server listening", "addr", s.httpServer.Addr)
	if err := s.httpServer.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		return err
	}
	return nil
}

// Shutdown gracefully stops the server.
func (s *Server) Shutdown(ctx context.Context) error {
	s.logger.Info("shutting down HTTP server")
	return s.httpServer.Shutdown(ctx)
}
