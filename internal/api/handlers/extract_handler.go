package handlers

import (
	"errors"
	"log/slog"
	"net/http"
	"strings"

	"github.com/go-chi/chi/v5/middleware"

	"github.com/markdave123-py/hybridocr/internal/core"
	engine "github.com/markdave123-py/hybridocr/internal/core/extraction_engine"
	"github.com/markdave123-py/hybridocr/internal/models"
)

const (
	formField       = "pdf"
	multipartMemory = 8 << 20

	msgNoFile          = "No file uploaded"
	msgExtractionError = "Failed to extract text from PDF."
	msgInternalError   = "Internal server error"
)

type ExtractHandler struct {
	extractor      engine.Extractor
	maxUploadBytes int64
	logger         *slog.Logger
}

func NewExtractHandler(extractor engine.Extractor, maxUploadBytes int64, logger *slog.Logger) *ExtractHandler {
	if logger == nil {
		logger = slog.Default()
	}
	return &ExtractHandler{extractor: extractor, maxUploadBytes: maxUploadBytes, logger: logger}
}

// Extract handles POST /extract: multipart field "pdf" in, {"text","mode"} out.
func (h *ExtractHandler) Extract(w http.ResponseWriter, r *http.Request) {
	logger := h.logger.With("request_id", middleware.GetReqID(r.Context()))

	// the body guard only stops runaway uploads; the real ceiling is enforced by Validate
	r.Body = http.MaxBytesReader(w, r.Body, 2*h.maxUploadBytes+(1<<20))
	if err := r.ParseMultipartForm(multipartMemory); err != nil {
		if isBodyTooLarge(err) {
			h.reject(w, logger, &core.ValidationError{Reason: engine.TooLargeReason(h.maxUploadBytes)})
			return
		}
		logger.Debug("multipart parse failed", "error", err)
	}
	if r.MultipartForm != nil {
		defer func() {
			if err := r.MultipartForm.RemoveAll(); err != nil {
				logger.Warn("failed to remove multipart spill files", "error", err)
			}
		}()
	}

	file, header, err := r.FormFile(formField)
	if err != nil {
		h.reject(w, logger, &core.ValidationError{Reason: msgNoFile})
		return
	}
	defer file.Close()

	doc := core.UploadedDocument{Filename: header.Filename, Content: file}

	if out := h.extractor.Validate(doc); !out.Valid {
		h.reject(w, logger, &core.ValidationError{Reason: out.Reason})
		return
	}

	res, err := h.extractor.Extract(r.Context(), doc)
	if err != nil {
		var extErr *core.ExtractionError
		if errors.As(err, &extErr) {
			logger.Error("extraction failed", "filename", header.Filename, "stage", extErr.Stage, "error", extErr.Err)
			writeError(w, http.StatusInternalServerError, msgExtractionError)
			return
		}
		logger.Error("unhandled extraction error", "filename", header.Filename, "error", err)
		writeError(w, http.StatusInternalServerError, msgInternalError)
		return
	}

	writeJSON(w, http.StatusOK, models.ExtractResponse{Text: res.Text, Mode: string(res.Mode)})
}

func (h *ExtractHandler) reject(w http.ResponseWriter, logger *slog.Logger, verr *core.ValidationError) {
	logger.Warn("validation failed", "reason", verr.Reason)
	writeError(w, http.StatusBadRequest, verr.Reason)
}

func isBodyTooLarge(err error) bool {
	var mbe *http.MaxBytesError
	if errors.As(err, &mbe) {
		return true
	}
	// mime/multipart does not always wrap the reader error
	return strings.Contains(err.Error(), "request body too large")
}
