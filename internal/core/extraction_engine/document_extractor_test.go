package extraction_engine

import (
	"context"
	"os/exec"
	"strings"
	"testing"
)

func TestStripPageBreaks(t *testing.T) {
	if got := stripPageBreaks("Hello\n\fWorld\n\f"); got != "Hello\nWorld\n" {
		t.Fatalf("stripPageBreaks() = %q", got)
	}
}

func TestDocconvExtractor(t *testing.T) {
	if _, err := exec.LookPath("pdftotext"); err != nil {
		t.Skip("pdftotext not installed")
	}
	path := writePDF(t, buildPDF(textPage("Hello"), textPage("World")))

	got, err := NewDocconvExtractor(false).ExtractText(context.Background(), path)
	if err != nil {
		t.Fatalf("ExtractText() error = %v", err)
	}
	if strings.Contains(got, "\f") {
		t.Fatalf("form feed left in %q", got)
	}
	if !strings.Contains(got, "Hello") || !strings.Contains(got, "World") {
		t.Fatalf("text = %q", got)
	}
}

func TestNewEngineDocconvNeedsPdftotext(t *testing.T) {
	t.Setenv("PATH", t.TempDir())

	_, err := NewEngine(EngineConfig{TempDir: t.TempDir(), TextBackend: TextBackendDocconv}, discardLogger())
	if err == nil {
		t.Fatal("expected startup error without pdftotext")
	}
	if !strings.Contains(err.Error(), "pdftotext") {
		t.Fatalf("error = %v", err)
	}
}
