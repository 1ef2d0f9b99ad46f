package handlers

import (
	"net/http"

	"github.com/markdave123-py/hybridocr/internal/models"
)

const healthMessage = "Hybrid OCR Backend Running"

// Health is the static liveness check served on GET /.
func Health(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, models.StatusResponse{Message: healthMessage})
}
