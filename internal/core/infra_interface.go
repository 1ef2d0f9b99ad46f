package core

import (
	"context"
	"log/slog"
)

// CommandRunner executes an external binary (pdftoppm, tesseract, ...).
// It abstracts os/exec so higher layers can be tested without the binaries installed.
type CommandRunner interface {
	Run(ctx context.Context, logger *slog.Logger, name string, args ...string) (stdout, stderr []byte, err error)
}
