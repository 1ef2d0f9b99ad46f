package core

import "fmt"

// Extraction stages reported by ExtractionError.
const (
	StagePersist   = "persist"
	StageRasterize = "rasterize"
	StageOCR       = "ocr"
)

// ValidationError is a problem with the caller's input (missing file, wrong
// extension, oversize). Reason is safe to show to the client.
type ValidationError struct {
	Reason string
}

func (e *ValidationError) Error() string { return e.Reason }

// ExtractionError is an unrecoverable processing failure. The cause is meant
// for server logs only.
type ExtractionError struct {
	Stage string
	Err   error
}

func (e *ExtractionError) Error() string {
	return fmt.Sprintf("extraction failed at %s: %v", e.Stage, e.Err)
}

func (e *ExtractionError) Unwrap() error { return e.Err }
