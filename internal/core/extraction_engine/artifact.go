package extraction_engine

import (
	"errors"
	"fmt"
	"io"
	"io/fs"
	"log/slog"
	"os"
	"path/filepath"
	"sync"

	"github.com/google/uuid"

	"github.com/markdave123-py/hybridocr/internal/core/metrics"
)

// artifact is the on-disk copy of one upload. It belongs to a single Extract
// call; release removes it and is safe to call more than once.
type artifact struct {
	path   string
	logger *slog.Logger
	once   sync.Once
}

// persistArtifact copies r into <dir>/<uuid>.pdf.
func persistArtifact(dir string, r io.Reader, logger *slog.Logger) (*artifact, error) {
	path := filepath.Join(dir, uuid.NewString()+".pdf")

	f, err := os.OpenFile(path, os.O_CREATE|os.O_EXCL|os.O_WRONLY, 0o600)
	if err != nil {
		return nil, fmt.Errorf("create temp artifact: %w", err)
	}
	a := &artifact{path: path, logger: logger}

	if _, err := io.Copy(f, r); err != nil {
		_ = f.Close()
		a.release()
		return nil, fmt.Errorf("write temp artifact: %w", err)
	}
	if err := f.Close(); err != nil {
		a.release()
		return nil, fmt.Errorf("close temp artifact: %w", err)
	}
	return a, nil
}

func (a *artifact) release() {
	a.once.Do(func() {
		if err := os.Remove(a.path); err != nil && !errors.Is(err, fs.ErrNotExist) {
			a.logger.Warn("failed to remove temp artifact", "path", a.path, "error", err)
			metrics.CleanupFailuresTotal.Inc()
		}
	})
}
