// Package metrics holds the Prometheus collectors exposed on /metrics.
package metrics

import (
	"net/http"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

var (
	ExtractionsTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "hybridocr_extractions_total",
			Help: "Total number of successful extractions by mode",
		},
		[]string{"mode"},
	)
	ExtractionFailuresTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "hybridocr_extraction_failures_total",
			Help: "Total number of failed extractions by stage",
		},
		[]string{"stage"},
	)
	ExtractionDuration = prometheus.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "hybridocr_extraction_duration_seconds",
			Help:    "Duration of extractions by mode",
			Buckets: []float64{0.05, 0.1, 0.25, 0.5, 1, 2.5, 5, 10, 30, 60, 120},
		},
		[]string{"mode"},
	)
	OCRPagesTotal = prometheus.NewCounter(
		prometheus.CounterOpts{
			Name: "hybridocr_ocr_pages_total",
			Help: "Total number of pages sent through OCR",
		},
	)
	ValidationRejectionsTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "hybridocr_validation_rejections_total",
			Help: "Total number of uploads rejected before extraction",
		},
		[]string{"reason"},
	)
	CleanupFailuresTotal = prometheus.NewCounter(
		prometheus.CounterOpts{
			Name: "hybridocr_cleanup_failures_total",
			Help: "Total number of temporary files that could not be removed",
		},
	)
	HTTPRequestsTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "hybridocr_http_requests_total",
			Help: "Total number of HTTP requests",
		},
		[]string{"method", "route", "status"},
	)
	HTTPRequestDuration = prometheus.NewHistogramVec(
		prometheus.HistogramOpts{
			Name: "hybridocr_http_request_duration_seconds",
			Help: "Duration of HTTP requests",
		},
		[]string{"method", "route"},
	)
)

func init() {
	prometheus.MustRegister(ExtractionsTotal)
	prometheus.MustRegister(ExtractionFailuresTotal)
	prometheus.MustRegister(ExtractionDuration)
	prometheus.MustRegister(OCRPagesTotal)
	prometheus.MustRegister(ValidationRejectionsTotal)
	prometheus.MustRegister(CleanupFailuresTotal)
	prometheus.MustRegister(HTTPRequestsTotal)
	prometheus.MustRegister(HTTPRequestDuration)
}

// Handler serves the default registry.
func Handler() http.Handler {
	return promhttp.Handler()
}
