package core

import (
	"context"
	"io"
	"time"
)

// Mode records which path produced the extracted text.
type Mode string

const (
	ModeText Mode = "text"
	ModeOCR  Mode = "ocr"
)

// UploadedDocument is a caller-owned upload. Content must be rewindable so the
// validator can measure it and the engine can still persist it afterwards.
type UploadedDocument struct {
	Filename string
	Content  io.ReadSeeker
}

// ExtractionResult represents the outcome of a single extraction call.
// Pages and Duration are informational only.
type ExtractionResult struct {
	Text     string
	Mode     Mode
	Pages    int
	Duration time.Duration
}

// ValidationOutcome is the verdict of the upload validator.
type ValidationOutcome struct {
	Valid  bool
	Reason string
}

// TextExtractor reads the embedded text layer of a PDF on disk.
// An error means the file could not be parsed as a PDF at all.
type TextExtractor interface {
	ExtractText(ctx context.Context, path string) (string, error)
}

// RasterizedDocument is the set of page images produced for one PDF.
// Pages are ordered by page number. Close removes every image.
type RasterizedDocument interface {
	Pages() []string
	Close() error
}

// Rasterizer renders every page of a PDF into an image at the given DPI.
type Rasterizer interface {
	Rasterize(ctx context.Context, pdfPath string, dpi int) (RasterizedDocument, error)
}

// Recognizer runs OCR over a single page image.
type Recognizer interface {
	Recognize(ctx context.Context, imagePath string) (string, error)
}
