package extraction_engine

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"sync"
	"testing"

	"github.com/markdave123-py/hybridocr/internal/core"
)

// buildPDF writes a minimal PDF with one Helvetica font. Each argument is the
// content stream of one page.
func buildPDF(pages ...string) []byte {
	var buf bytes.Buffer
	var offsets []int
	obj := func(body string) {
		offsets = append(offsets, buf.Len())
		fmt.Fprintf(&buf, "%d 0 obj\n%s\nendobj\n", len(offsets), body)
	}

	buf.WriteString("%PDF-1.4\n")

	var kids bytes.Buffer
	for i := range pages {
		fmt.Fprintf(&kids, "%d 0 R ", 4+2*i)
	}
	obj("<< /Type /Catalog /Pages 2 0 R >>")
	obj(fmt.Sprintf("<< /Type /Pages /Kids [%s] /Count %d >>", kids.String(), len(pages)))
	obj("<< /Type /Font /Subtype /Type1 /BaseFont /Helvetica /Encoding /WinAnsiEncoding >>")
	for i, content := range pages {
		obj(fmt.Sprintf("<< /Type /Page /Parent 2 0 R /MediaBox [0 0 612 792] /Resources << /Font << /F1 3 0 R >> >> /Contents %d 0 R >>", 5+2*i))
		obj(fmt.Sprintf("<< /Length %d >>\nstream\n%s\nendstream", len(content), content))
	}

	xref := buf.Len()
	fmt.Fprintf(&buf, "xref\n0 %d\n", len(offsets)+1)
	buf.WriteString("0000000000 65535 f \n")
	for _, off := range offsets {
		fmt.Fprintf(&buf, "%010d 00000 n \n", off)
	}
	fmt.Fprintf(&buf, "trailer\n<< /Size %d /Root 1 0 R >>\nstartxref\n%d\n%%%%EOF\n", len(offsets)+1, xref)
	return buf.Bytes()
}

func textPage(s string) string {
	return fmt.Sprintf("BT /F1 24 Tf 72 720 Td (%s) Tj ET", s)
}

func upload(name string, data []byte) core.UploadedDocument {
	return core.UploadedDocument{Filename: name, Content: bytes.NewReader(data)}
}

func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func assertEmptyDir(t *testing.T, dir string) {
	t.Helper()
	entries, err := os.ReadDir(dir)
	if err != nil {
		t.Fatalf("read dir %s: %v", dir, err)
	}
	if len(entries) != 0 {
		names := make([]string, 0, len(entries))
		for _, e := range entries {
			names = append(names, e.Name())
		}
		t.Fatalf("expected %s to be empty, found %v", dir, names)
	}
}

// fakeRasterizer writes one placeholder image per page under its own dir.
type fakeRasterizer struct {
	mu      sync.Mutex
	pages   int
	err     error
	calls   int
	lastDPI int
	dir     string
}

func (f *fakeRasterizer) Rasterize(ctx context.Context, pdfPath string, dpi int) (core.RasterizedDocument, error) {
	f.mu.Lock()
	f.calls++
	f.lastDPI = dpi
	f.mu.Unlock()

	if _, err := os.Stat(pdfPath); err != nil {
		return nil, fmt.Errorf("artifact missing during rasterization: %w", err)
	}
	if f.err != nil {
		return nil, f.err
	}

	dir, err := os.MkdirTemp(f.dir, "pages-*")
	if err != nil {
		return nil, err
	}
	set := &pageSet{dir: dir}
	for i := 1; i <= f.pages; i++ {
		p := filepath.Join(dir, fmt.Sprintf("page-%02d.png", i))
		if err := os.WriteFile(p, []byte(fmt.Sprintf("page %d", i)), 0o600); err != nil {
			return nil, err
		}
		set.pages = append(set.pages, p)
	}
	return set, nil
}

func (f *fakeRasterizer) Calls() int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.calls
}

// fakeRecognizer returns texts[i] for the i-th call and fails on call failOn (1-based).
type fakeRecognizer struct {
	mu     sync.Mutex
	texts  []string
	failOn int
	seen   []string
}

func (f *fakeRecognizer) Recognize(ctx context.Context, imagePath string) (string, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.seen = append(f.seen, filepath.Base(imagePath))
	n := len(f.seen)
	if f.failOn > 0 && n == f.failOn {
		return "", fmt.Errorf("tesseract exploded")
	}
	if n-1 < len(f.texts) {
		return f.texts[n-1], nil
	}
	return "", nil
}

func (f *fakeRecognizer) Seen() []string {
	f.mu.Lock()
	defer f.mu.Unlock()
	return append([]string(nil), f.seen...)
}

// recordingText wraps a TextExtractor and remembers every path it was given.
type recordingText struct {
	core.TextExtractor
	mu    sync.Mutex
	paths []string
}

func (r *recordingText) ExtractText(ctx context.Context, path string) (string, error) {
	r.mu.Lock()
	r.paths = append(r.paths, path)
	r.mu.Unlock()
	return r.TextExtractor.ExtractText(ctx, path)
}

// fakeRunner stands in for os/exec. onRun may create files the real binary would.
type fakeRunner struct {
	mu     sync.Mutex
	calls  [][]string
	stdout []byte
	stderr []byte
	err    error
	onRun  func(name string, args []string) error
}

func (f *fakeRunner) Run(ctx context.Context, logger *slog.Logger, name string, args ...string) ([]byte, []byte, error) {
	f.mu.Lock()
	f.calls = append(f.calls, append([]string{name}, args...))
	f.mu.Unlock()
	if f.onRun != nil {
		if err := f.onRun(name, args); err != nil {
			return nil, []byte(err.Error()), err
		}
	}
	return f.stdout, f.stderr, f.err
}
