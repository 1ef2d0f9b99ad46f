package extraction_engine

import (
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/markdave123-py/hybridocr/internal/core"
	"github.com/markdave123-py/hybridocr/internal/core/metrics"
)

const (
	ReasonNotPDF     = "Uploaded file is not a PDF."
	ReasonUnreadable = "Uploaded file could not be read."
)

// Validate checks the filename extension, then the byte size. It never
// parses the PDF and never touches the filesystem.
func (e *Engine) Validate(doc core.UploadedDocument) core.ValidationOutcome {
	if !isPDFFilename(doc.Filename) {
		metrics.ValidationRejectionsTotal.WithLabelValues("not_pdf").Inc()
		return core.ValidationOutcome{Reason: ReasonNotPDF}
	}

	size, err := measure(doc.Content)
	if err != nil {
		e.logger.Warn("could not measure upload", "filename", doc.Filename, "error", err)
		metrics.ValidationRejectionsTotal.WithLabelValues("unreadable").Inc()
		return core.ValidationOutcome{Reason: ReasonUnreadable}
	}
	if size > e.cfg.MaxUploadBytes {
		metrics.ValidationRejectionsTotal.WithLabelValues("too_large").Inc()
		return core.ValidationOutcome{Reason: TooLargeReason(e.cfg.MaxUploadBytes)}
	}

	return core.ValidationOutcome{Valid: true}
}

// MaxUploadBytes is the configured size ceiling.
func (e *Engine) MaxUploadBytes() int64 { return e.cfg.MaxUploadBytes }

// TooLargeReason is the client-facing message for uploads above limit bytes.
func TooLargeReason(limit int64) string {
	const mib = 1 << 20
	if limit%mib == 0 {
		return fmt.Sprintf("File exceeds maximum allowed size (%d MB).", limit/mib)
	}
	return fmt.Sprintf("File exceeds maximum allowed size (%.1f MB).", float64(limit)/mib)
}

func isPDFFilename(name string) bool {
	return strings.HasSuffix(strings.ToLower(name), ".pdf")
}

// measure reports the stream length and rewinds it. Content-Length headers
// are not trusted.
func measure(r io.ReadSeeker) (int64, error) {
	if r == nil {
		return 0, errors.New("no content")
	}
	size, err := r.Seek(0, io.SeekEnd)
	if err != nil {
		return 0, fmt.Errorf("seek end: %w", err)
	}
	if _, err := r.Seek(0, io.SeekStart); err != nil {
		return 0, fmt.Errorf("rewind: %w", err)
	}
	return size, nil
}
