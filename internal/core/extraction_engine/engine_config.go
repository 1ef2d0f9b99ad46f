package extraction_engine

import (
	"os"
	"path/filepath"
	"runtime"
)

// Text layer backends.
const (
	TextBackendPDF     = "pdf"
	TextBackendDocconv = "docconv"
)

// OCR backends.
const (
	OCRBackendExec      = "exec"
	OCRBackendGosseract = "gosseract"
)

const (
	defaultDPI = 200
	defaultOEM = 3
	defaultPSM = 6

	DefaultMaxUploadBytes = 10 << 20
)

// UnsetMode leaves OEM or PSM at its default. 0 is a real tesseract mode.
const UnsetMode = -1

// EngineConfig tunes the extraction engine. It is read once at startup and
// never mutated afterwards.
//
// TesseractPath:  tesseract binary name or absolute path ("tesseract" when empty).
// PopplerPath:    directory holding pdftoppm, or the pdftoppm binary itself.
// DPI:            rasterization resolution for the OCR fallback.
// OEM, PSM:       tesseract engine and page segmentation modes; negative selects 3 and 6.
// TempDir:        where temporary artifacts are written (os.TempDir() when empty).
// MaxUploadBytes: upload size ceiling enforced by Validate.
// TextBackend:    "pdf" (ledongthuc/pdf) or "docconv".
// OCRBackend:     "exec" (tesseract CLI) or "gosseract" (libtesseract, build tag gosseract).
type EngineConfig struct {
	TesseractPath  string
	PopplerPath    string
	DPI            int
	OEM            int
	PSM            int
	TempDir        string
	MaxUploadBytes int64
	TextBackend    string
	OCRBackend     string
}

// withDefaults returns a copy of cfg with every empty field filled in.
func (cfg EngineConfig) withDefaults() EngineConfig {
	if cfg.TesseractPath == "" {
		cfg.TesseractPath = "tesseract"
	}
	if cfg.DPI <= 0 {
		cfg.DPI = defaultDPI
	}
	if cfg.OEM < 0 {
		cfg.OEM = defaultOEM
	}
	if cfg.PSM < 0 {
		cfg.PSM = defaultPSM
	}
	if cfg.TempDir == "" {
		cfg.TempDir = os.TempDir()
	}
	if cfg.MaxUploadBytes <= 0 {
		cfg.MaxUploadBytes = DefaultMaxUploadBytes
	}
	if cfg.TextBackend == "" {
		cfg.TextBackend = TextBackendPDF
	}
	if cfg.OCRBackend == "" {
		cfg.OCRBackend = OCRBackendExec
	}
	return cfg
}

// pdftoppmBinary resolves PopplerPath the way poppler installs are usually
// shipped: either a bin directory or a direct path to pdftoppm.
func (cfg EngineConfig) pdftoppmBinary() string {
	name := "pdftoppm"
	if runtime.GOOS == "windows" {
		name += ".exe"
	}
	if cfg.PopplerPath == "" {
		return name
	}
	if st, err := os.Stat(cfg.PopplerPath); err == nil && st.IsDir() {
		return filepath.Join(cfg.PopplerPath, name)
	}
	return cfg.PopplerPath
}
