// internal/app/app.go
package app

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/markdave123-py/hybridocr/internal/config"
	engine "github.com/markdave123-py/hybridocr/internal/core/extraction_engine"
)

const shutdownTimeout = 30 * time.Second

type App struct {
	Engine *engine.Engine
	Server *Server
	logger *slog.Logger
}

func NewApp(cfg *config.Config, logger *slog.Logger) (*App, error) {
	eng, err := engine.NewEngine(cfg.EngineConfig(), logger)
	if err != nil {
		return nil, fmt.Errorf("couldn't initialize the extraction engine, %w", err)
	}
	logger.Info("extraction engine ready",
		"text_backend", cfg.TextBackend,
		"ocr_backend", cfg.OCRBackend,
		"dpi", cfg.OCRDPI,
		"max_upload_bytes", eng.MaxUploadBytes(),
	)

	server := NewServer(cfg, eng, logger)

	return &App{Engine: eng, Server: server, logger: logger}, nil
}

// Run serves until ctx is cancelled, then drains in-flight requests.
func (a *App) Run(ctx context.Context) error {
	g, gctx := errgroup.WithContext(ctx)

	g.Go(a.Server.Start)

	g.Go(func() error {
		<-gctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()
		return a.Server.Shutdown(shutdownCtx)
	})

	return g.Wait()
}
