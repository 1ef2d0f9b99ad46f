package extraction_engine

import (
	"context"
	"strings"

	"github.com/ledongthuc/pdf"
	"github.com/rotisserie/eris"

	"github.com/markdave123-py/hybridocr/internal/core"
)

var _ core.TextExtractor = (*PDFTextExtractor)(nil)

// PDFTextExtractor reads the text layer with ledongthuc/pdf, page by page.
type PDFTextExtractor struct{}

func NewPDFTextExtractor() *PDFTextExtractor {
	return &PDFTextExtractor{}
}

// ExtractText concatenates the plain text of every page in document order,
// with no page separators.
func (e *PDFTextExtractor) ExtractText(ctx context.Context, path string) (text string, err error) {
	// the parser panics on some malformed inputs
	defer func() {
		if r := recover(); r != nil {
			text, err = "", eris.Errorf("pdf parser panic: %v", r)
		}
	}()

	f, r, err := pdf.Open(path)
	if err != nil {
		return "", eris.Wrap(err, "open pdf")
	}
	defer f.Close()

	var b strings.Builder
	for i := 1; i <= r.NumPage(); i++ {
		if err := ctx.Err(); err != nil {
			return "", err
		}
		page := r.Page(i)
		if page.V.IsNull() {
			continue
		}
		pt, err := page.GetPlainText(nil)
		if err != nil {
			return "", eris.Wrapf(err, "page %d", i)
		}
		// GetPlainText emits a newline for every BT operator, so each page starts with one
		b.WriteString(strings.TrimPrefix(pt, "\n"))
	}
	return b.String(), nil
}
