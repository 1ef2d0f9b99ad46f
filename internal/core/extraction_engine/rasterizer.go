package extraction_engine

import (
	"context"
	"log/slog"
	"os"
	"path/filepath"
	"sort"
	"strconv"

	"github.com/rotisserie/eris"

	"github.com/markdave123-py/hybridocr/internal/core"
)

var _ core.Rasterizer = (*PopplerRasterizer)(nil)

// PopplerRasterizer renders PDF pages to PNG with poppler's pdftoppm.
type PopplerRasterizer struct {
	binary  string
	tempDir string
	runner  core.CommandRunner
	logger  *slog.Logger
}

func NewPopplerRasterizer(binary, tempDir string, runner core.CommandRunner, logger *slog.Logger) *PopplerRasterizer {
	if binary == "" {
		binary = "pdftoppm"
	}
	if runner == nil {
		runner = ExecRunner{}
	}
	if logger == nil {
		logger = slog.Default()
	}
	return &PopplerRasterizer{binary: binary, tempDir: tempDir, runner: runner, logger: logger}
}

// Rasterize writes one PNG per page into a fresh scratch directory.
// The returned document owns that directory.
func (p *PopplerRasterizer) Rasterize(ctx context.Context, pdfPath string, dpi int) (core.RasterizedDocument, error) {
	dir, err := os.MkdirTemp(p.tempDir, "hybridocr-pages-*")
	if err != nil {
		return nil, eris.Wrap(err, "rasterize: create scratch dir")
	}
	doc := &pageSet{dir: dir}

	prefix := filepath.Join(dir, "page")
	// pdftoppm -r <dpi> -png <in.pdf> <dir/page>
	_, errb, err := p.runner.Run(ctx, p.logger, p.binary, "-r", strconv.Itoa(dpi), "-png", pdfPath, prefix)
	if err != nil {
		_ = doc.Close()
		return nil, eris.Wrapf(err, "rasterize: %s failed: %s", p.binary, truncate(string(errb), 1<<10))
	}

	// pdftoppm zero-pads page numbers to a common width, so lexical order is page order
	matches, err := filepath.Glob(prefix + "-*.png")
	if err != nil {
		_ = doc.Close()
		return nil, eris.Wrap(err, "rasterize: list pages")
	}
	if len(matches) == 0 {
		_ = doc.Close()
		return nil, eris.Errorf("rasterize: %s produced no pages", p.binary)
	}
	sort.Strings(matches)
	doc.pages = matches
	return doc, nil
}

// pageSet is a scratch directory of rendered pages.
type pageSet struct {
	dir   string
	pages []string
}

func (s *pageSet) Pages() []string { return s.pages }

func (s *pageSet) Close() error {
	return os.RemoveAll(s.dir)
}
