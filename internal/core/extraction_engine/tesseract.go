package extraction_engine

import (
	"context"
	"log/slog"
	"strconv"

	"github.com/rotisserie/eris"

	"github.com/markdave123-py/hybridocr/internal/core"
)

var _ core.Recognizer = (*TesseractCLI)(nil)

// TesseractCLI runs the tesseract binary once per page image.
type TesseractCLI struct {
	binary string
	oem    int
	psm    int
	runner core.CommandRunner
	logger *slog.Logger
}

func NewTesseractCLI(binary string, oem, psm int, runner core.CommandRunner, logger *slog.Logger) *TesseractCLI {
	if binary == "" {
		binary = "tesseract"
	}
	if runner == nil {
		runner = ExecRunner{}
	}
	if logger == nil {
		logger = slog.Default()
	}
	return &TesseractCLI{binary: binary, oem: oem, psm: psm, runner: runner, logger: logger}
}

// Recognize returns tesseract's raw stdout for the image.
func (t *TesseractCLI) Recognize(ctx context.Context, imagePath string) (string, error) {
	// tesseract <img> stdout --oem 3 --psm 6
	out, errb, err := t.runner.Run(ctx, t.logger, t.binary,
		imagePath, "stdout",
		"--oem", strconv.Itoa(t.oem),
		"--psm", strconv.Itoa(t.psm),
	)
	if err != nil {
		return "", eris.Wrapf(err, "ocr: %s failed on %s: %s", t.binary, imagePath, truncate(string(errb), 1<<10))
	}
	return string(out), nil
}
