package extraction_engine

import (
	"context"
	"os"
	"os/exec"
	"strings"

	"code.sajari.com/docconv"
	"github.com/rotisserie/eris"

	"github.com/markdave123-py/hybridocr/internal/core"
)

var _ core.TextExtractor = (*DocconvExtractor)(nil)

// DocconvExtractor implements core.TextExtractor using sajari/docconv, which
// shells out to poppler's pdftotext for PDFs.
type DocconvExtractor struct {
	useReadability bool
}

func NewDocconvExtractor(useReadability bool) *DocconvExtractor {
	return &DocconvExtractor{useReadability: useReadability}
}

// ExtractText converts the PDF at path and strips form feeds so page
// boundaries stay unmarked.
func (e *DocconvExtractor) ExtractText(ctx context.Context, path string) (string, error) {
	f, err := os.Open(path)
	if err != nil {
		return "", eris.Wrap(err, "open pdf")
	}
	defer f.Close()

	res, err := docconv.Convert(f, "application/pdf", e.useReadability)
	if err != nil {
		return "", eris.Wrap(err, "docconv")
	}
	if err := ctx.Err(); err != nil {
		return "", err
	}
	if res.Error != "" {
		return "", eris.Errorf("docconv: %s", res.Error)
	}

	return stripPageBreaks(res.Body), nil
}

func stripPageBreaks(body string) string {
	return strings.ReplaceAll(body, "\f", "")
}

// checkPdftotext fails when docconv's PDF converter has nothing to shell out to.
func checkPdftotext() error {
	if _, err := exec.LookPath("pdftotext"); err != nil {
		return eris.Wrap(err, "docconv text backend needs poppler's pdftotext on PATH")
	}
	return nil
}
