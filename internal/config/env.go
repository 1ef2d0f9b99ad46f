package config

import (
	"log/slog"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"

	engine "github.com/markdave123-py/hybridocr/internal/core/extraction_engine"
)

const DefaultRequestTimeout = 120 * time.Second

type Config struct {
	Port           string
	FrontendURL    string
	TesseractPath  string
	PopplerPath    string
	OCRDPI         int
	OCROEM         int
	OCRPSM         int
	OCRBackend     string
	TextBackend    string
	TempDir        string
	MaxUploadBytes int64
	RequestTimeout time.Duration
	LogLevel       string
	LogFormat      string
}

// LoadConfig loads the environment variables and return config
func LoadConfig() *Config {

	_ = godotenv.Load()

	cfg := &Config{
		Port:           getEnv("PORT", "5000"),
		FrontendURL:    getEnv("FRONTEND_URL", "http://localhost:3000"),
		TesseractPath:  getEnv("TESSERACT_PATH", ""),
		PopplerPath:    getEnv("POPPLER_PATH", ""),
		OCRDPI:         getEnvInt("OCR_DPI", 200),
		OCROEM:         getEnvInt("OCR_OEM", 3),
		OCRPSM:         getEnvInt("OCR_PSM", 6),
		OCRBackend:     getEnv("OCR_BACKEND", engine.OCRBackendExec),
		TextBackend:    getEnv("TEXT_BACKEND", engine.TextBackendPDF),
		TempDir:        getEnv("TEMP_DIR", os.TempDir()),
		MaxUploadBytes: getEnvInt64("MAX_UPLOAD_BYTES", engine.DefaultMaxUploadBytes),
		RequestTimeout: getEnvDuration("REQUEST_TIMEOUT", DefaultRequestTimeout),
		LogLevel:       getEnv("LOG_LEVEL", "info"),
		LogFormat:      getEnv("LOG_FORMAT", "text"),
	}

	if cfg.MaxUploadBytes <= 0 {
		slog.Warn("MAX_UPLOAD_BYTES must be positive, using default", "value", cfg.MaxUploadBytes)
		cfg.MaxUploadBytes = engine.DefaultMaxUploadBytes
	}
	if cfg.RequestTimeout <= 0 {
		slog.Warn("REQUEST_TIMEOUT must be positive, using default", "value", cfg.RequestTimeout)
		cfg.RequestTimeout = DefaultRequestTimeout
	}

	return cfg
}

// UploadLimit is the effective upload ceiling shared by the engine and the
// HTTP body guard.
func (c *Config) UploadLimit() int64 {
	if c.MaxUploadBytes <= 0 {
		return engine.DefaultMaxUploadBytes
	}
	return c.MaxUploadBytes
}

func (c *Config) Timeout() time.Duration {
	if c.RequestTimeout <= 0 {
		return DefaultRequestTimeout
	}
	return c.RequestTimeout
}

// EngineConfig projects the settings the extraction engine consumes.
func (c *Config) EngineConfig() engine.EngineConfig {
	return engine.EngineConfig{
		TesseractPath:  c.TesseractPath,
		PopplerPath:    c.PopplerPath,
		DPI:            c.OCRDPI,
		OEM:            c.OCROEM,
		PSM:            c.OCRPSM,
		TempDir:        c.TempDir,
		MaxUploadBytes: c.UploadLimit(),
		TextBackend:    c.TextBackend,
		OCRBackend:     c.OCRBackend,
	}
}

// Helper to read environment variables with a default fallback
func getEnv(key, fallback string) string {
	if value, exists := os.LookupEnv(key); exists {
		return value
	}
	return fallback
}

func getEnvInt(key string, def int) int {
	v := getEnv(key, "")
	if v == "" {
		return def
	}
	n, err := strconv.Atoi(v)
	if err != nil {
		slog.Warn("config value is not an int, using default", "key", key, "value", v, "default", def)
		return def
	}
	return n
}

func getEnvInt64(key string, def int64) int64 {
	v := getEnv(key, "")
	if v == "" {
		return def
	}
	n, err := strconv.ParseInt(v, 10, 64)
	if err != nil {
		slog.Warn("config value is not an int, using default", "key", key, "value", v, "default", def)
		return def
	}
	return n
}

func getEnvDuration(key string, def time.Duration) time.Duration {
	v := getEnv(key, "")
	if v == "" {
		return def
	}
	d, err := time.ParseDuration(v)
	if err != nil {
		slog.Warn("config value is not a duration, using default", "key", key, "value", v, "default", def)
		return def
	}
	return d
}
