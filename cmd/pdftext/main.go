// Command pdftext runs the extraction engine on a local PDF and prints the
// same JSON the HTTP API returns.
package main

import (
	"context"
	"encoding/json"
	"flag"
	"fmt"
	"os"
	"path/filepath"

	"github.com/markdave123-py/hybridocr/internal/config"
	"github.com/markdave123-py/hybridocr/internal/core"
	engine "github.com/markdave123-py/hybridocr/internal/core/extraction_engine"
	"github.com/markdave123-py/hybridocr/internal/models"
)

func main() {
	path := flag.String("file", "", "path to the PDF to extract")
	flag.Parse()

	if *path == "" {
		fmt.Fprintln(os.Stderr, "Usage: pdftext -file <document.pdf>")
		os.Exit(2)
	}

	cfg := config.LoadConfig()
	logger := cfg.NewLogger(os.Stderr)

	eng, err := engine.NewEngine(cfg.EngineConfig(), logger)
	if err != nil {
		logger.Error("engine init failed", "error", err)
		os.Exit(1)
	}

	f, err := os.Open(*path)
	if err != nil {
		logger.Error("open input", "error", err)
		os.Exit(1)
	}
	defer f.Close()

	doc := core.UploadedDocument{Filename: filepath.Base(*path), Content: f}
	enc := json.NewEncoder(os.Stdout)
	enc.SetIndent("", "  ")

	if out := eng.Validate(doc); !out.Valid {
		_ = enc.Encode(models.ErrorResponse{Error: out.Reason})
		f.Close()
		os.Exit(2)
	}

	res, err := eng.Extract(context.Background(), doc)
	if err != nil {
		logger.Error("extraction failed", "error", err)
		_ = enc.Encode(models.ErrorResponse{Error: "Failed to extract text from PDF."})
		f.Close()
		os.Exit(1)
	}

	_ = enc.Encode(models.ExtractResponse{Text: res.Text, Mode: string(res.Mode)})
}
