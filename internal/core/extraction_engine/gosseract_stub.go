//go:build !gosseract

package extraction_engine

import (
	"context"
	"errors"
)

// ErrGosseractNotEnabled is returned when OCR_BACKEND=gosseract but the binary
// was built without libtesseract. Rebuild with -tags gosseract.
var ErrGosseractNotEnabled = errors.New("gosseract OCR backend not enabled; rebuild with -tags gosseract")

type GosseractRecognizer struct{}

func NewGosseractRecognizer(psm int) (*GosseractRecognizer, error) {
	return nil, ErrGosseractNotEnabled
}

func (g *GosseractRecognizer) Recognize(ctx context.Context, imagePath string) (string, error) {
	return "", ErrGosseractNotEnabled
}
