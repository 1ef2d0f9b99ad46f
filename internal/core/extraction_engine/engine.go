package extraction_engine

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"
	"time"

	"github.com/markdave123-py/hybridocr/internal/core"
	"github.com/markdave123-py/hybridocr/internal/core/metrics"
)

// Extractor is the contract the HTTP layer and the CLI depend on.
type Extractor interface {
	Validate(doc core.UploadedDocument) core.ValidationOutcome
	Extract(ctx context.Context, doc core.UploadedDocument) (core.ExtractionResult, error)
}

var _ Extractor = (*Engine)(nil)

// Engine turns one uploaded PDF into text, preferring the embedded text
// layer and falling back to rasterization + OCR.
//
// cfg:    immutable tuning (binaries, DPI, OCR modes, temp dir, size ceiling).
// text:   structural text-layer reader.
// raster: page renderer for the OCR fallback.
// ocr:    per-page recognizer.
//
// An Engine holds no per-request state and is safe for concurrent use.
type Engine struct {
	cfg    EngineConfig
	text   core.TextExtractor
	raster core.Rasterizer
	ocr    core.Recognizer
	logger *slog.Logger
}

// NewEngine builds the configured backends.
func NewEngine(cfg EngineConfig, logger *slog.Logger) (*Engine, error) {
	if logger == nil {
		logger = slog.Default()
	}
	cfg = cfg.withDefaults()

	if err := os.MkdirAll(cfg.TempDir, 0o700); err != nil {
		return nil, fmt.Errorf("prepare temp dir %q: %w", cfg.TempDir, err)
	}

	var text core.TextExtractor
	switch cfg.TextBackend {
	case TextBackendPDF:
		text = NewPDFTextExtractor()
	case TextBackendDocconv:
		if err := checkPdftotext(); err != nil {
			return nil, err
		}
		text = NewDocconvExtractor(false)
	default:
		return nil, fmt.Errorf("unknown text backend %q", cfg.TextBackend)
	}

	runner := ExecRunner{}

	var rec core.Recognizer
	switch cfg.OCRBackend {
	case OCRBackendExec:
		rec = NewTesseractCLI(cfg.TesseractPath, cfg.OEM, cfg.PSM, runner, logger)
	case OCRBackendGosseract:
		g, err := NewGosseractRecognizer(cfg.PSM)
		if err != nil {
			return nil, err
		}
		rec = g
	default:
		return nil, fmt.Errorf("unknown OCR backend %q", cfg.OCRBackend)
	}

	raster := NewPopplerRasterizer(cfg.pdftoppmBinary(), cfg.TempDir, runner, logger)

	return NewEngineWith(cfg, text, raster, rec, logger), nil
}

// NewEngineWith wires explicit collaborators.
func NewEngineWith(cfg EngineConfig, text core.TextExtractor, raster core.Rasterizer, ocr core.Recognizer, logger *slog.Logger) *Engine {
	if logger == nil {
		logger = slog.Default()
	}
	return &Engine{cfg: cfg.withDefaults(), text: text, raster: raster, ocr: ocr, logger: logger}
}

// textLayer is the outcome of the structural stage. Found is false both for
// scanned documents and for files the parser could not read.
type textLayer struct {
	Text  string
	Found bool
}

// Extract persists the upload to a temporary artifact, reads its text layer,
// and runs OCR over every page when that layer is empty. The artifact is
// removed on every exit path. Failures are returned as *core.ExtractionError.
func (e *Engine) Extract(ctx context.Context, doc core.UploadedDocument) (core.ExtractionResult, error) {
	start := time.Now()
	logger := e.logger.With("filename", doc.Filename)

	if doc.Content == nil {
		return e.fail(logger, core.StagePersist, errors.New("no content"))
	}
	if _, err := doc.Content.Seek(0, io.SeekStart); err != nil {
		return e.fail(logger, core.StagePersist, err)
	}

	art, err := persistArtifact(e.cfg.TempDir, doc.Content, logger)
	if err != nil {
		return e.fail(logger, core.StagePersist, err)
	}
	defer art.release()

	var res core.ExtractionResult
	if layer := e.readTextLayer(ctx, logger, art.path); layer.Found {
		logger.Info("extracted using text mode", "chars", len(layer.Text))
		res = core.ExtractionResult{Text: layer.Text, Mode: core.ModeText}
	} else {
		logger.Info("no text found, switching to OCR")
		text, pages, err := e.ocrPages(ctx, logger, art.path)
		if err != nil {
			return e.fail(logger, err.Stage, err.Err)
		}
		res = core.ExtractionResult{Text: text, Mode: core.ModeOCR, Pages: pages}
	}

	res.Duration = time.Since(start)
	metrics.ExtractionsTotal.WithLabelValues(string(res.Mode)).Inc()
	metrics.ExtractionDuration.WithLabelValues(string(res.Mode)).Observe(res.Duration.Seconds())
	logger.Info("extraction complete", "mode", res.Mode, "pages", res.Pages, "duration_ms", res.Duration.Milliseconds())
	return res, nil
}

func (e *Engine) readTextLayer(ctx context.Context, logger *slog.Logger, path string) textLayer {
	raw, err := e.text.ExtractText(ctx, path)
	if err != nil {
		// a corrupt or non-PDF file is indistinguishable from a scan here;
		// both go to OCR, which usually fails loudly for the former
		logger.Warn("text layer unreadable, treating as scanned document", "error", err)
		return textLayer{}
	}
	text := strings.TrimSpace(raw)
	return textLayer{Text: text, Found: text != ""}
}

// ocrPages rasterizes the artifact and recognizes each page in order,
// concatenating without separators.
func (e *Engine) ocrPages(ctx context.Context, logger *slog.Logger, path string) (string, int, *core.ExtractionError) {
	pages, err := e.raster.Rasterize(ctx, path, e.cfg.DPI)
	if err != nil {
		return "", 0, &core.ExtractionError{Stage: core.StageRasterize, Err: err}
	}
	defer func() {
		if err := pages.Close(); err != nil {
			logger.Warn("failed to remove rendered pages", "error", err)
			metrics.CleanupFailuresTotal.Inc()
		}
	}()

	var b strings.Builder
	images := pages.Pages()
	for i, img := range images {
		text, err := e.ocr.Recognize(ctx, img)
		if err != nil {
			return "", 0, &core.ExtractionError{Stage: core.StageOCR, Err: fmt.Errorf("page %d: %w", i+1, err)}
		}
		metrics.OCRPagesTotal.Inc()
		b.WriteString(text)
	}
	return strings.TrimSpace(b.String()), len(images), nil
}

func (e *Engine) fail(logger *slog.Logger, stage string, err error) (core.ExtractionResult, error) {
	metrics.ExtractionFailuresTotal.WithLabelValues(stage).Inc()
	logger.Error("extraction failed", "stage", stage, "error", err)
	return core.ExtractionResult{}, &core.ExtractionError{Stage: stage, Err: err}
}
