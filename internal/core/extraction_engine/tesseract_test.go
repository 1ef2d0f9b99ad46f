package extraction_engine

import (
	"context"
	"errors"
	"reflect"
	"strings"
	"testing"
)

func TestTesseractCLIRecognize(t *testing.T) {
	runner := &fakeRunner{stdout: []byte("INVOICE #123\n")}
	tc := NewTesseractCLI("/usr/local/bin/tesseract", 3, 6, runner, discardLogger())

	got, err := tc.Recognize(context.Background(), "/tmp/page-1.png")
	if err != nil {
		t.Fatalf("Recognize() error = %v", err)
	}
	if got != "INVOICE #123\n" {
		t.Fatalf("text = %q", got)
	}
	want := []string{"/usr/local/bin/tesseract", "/tmp/page-1.png", "stdout", "--oem", "3", "--psm", "6"}
	if !reflect.DeepEqual(runner.calls[0], want) {
		t.Fatalf("command = %v, want %v", runner.calls[0], want)
	}
}

func TestTesseractCLIError(t *testing.T) {
	runner := &fakeRunner{err: errors.New("exit status 1"), stderr: []byte("Error opening data file eng.traineddata")}
	tc := NewTesseractCLI("", 1, 3, runner, discardLogger())

	_, err := tc.Recognize(context.Background(), "/tmp/page-1.png")
	if err == nil {
		t.Fatal("expected error")
	}
	if !strings.Contains(err.Error(), "traineddata") {
		t.Fatalf("error should carry stderr, got %v", err)
	}
	if runner.calls[0][0] != "tesseract" {
		t.Fatalf("default binary = %s", runner.calls[0][0])
	}
}
