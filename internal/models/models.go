package models

// ExtractResponse is the 200 body of POST /extract.
type ExtractResponse struct {
	Text string `json:"text"`
	Mode string `json:"mode"` // "text" | "ocr"
}

// ErrorResponse is returned for every 4xx/5xx.
type ErrorResponse struct {
	Error string `json:"error"`
}

// StatusResponse is the health-check body.
type StatusResponse struct {
	Message string `json:"message"`
}
