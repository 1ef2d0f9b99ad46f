//go:build gosseract

package extraction_engine

import (
	"context"

	"github.com/otiai10/gosseract/v2"
	"github.com/rotisserie/eris"

	"github.com/markdave123-py/hybridocr/internal/core"
)

var _ core.Recognizer = (*GosseractRecognizer)(nil)

// GosseractRecognizer runs OCR in-process through libtesseract.
// The engine mode is fixed by the linked library; only PSM is applied.
type GosseractRecognizer struct {
	psm int
}

func NewGosseractRecognizer(psm int) (*GosseractRecognizer, error) {
	return &GosseractRecognizer{psm: psm}, nil
}

// Recognize uses a fresh client per page; gosseract clients are not safe for
// concurrent use.
func (g *GosseractRecognizer) Recognize(ctx context.Context, imagePath string) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}
	client := gosseract.NewClient()
	defer client.Close()

	if err := client.SetPageSegMode(gosseract.PageSegMode(g.psm)); err != nil {
		return "", eris.Wrapf(err, "ocr: set psm %d", g.psm)
	}
	if err := client.SetImage(imagePath); err != nil {
		return "", eris.Wrapf(err, "ocr: load %s", imagePath)
	}
	text, err := client.Text()
	if err != nil {
		return "", eris.Wrapf(err, "ocr: recognize %s", imagePath)
	}
	return text, nil
}
