package models

// FieldError describes a single rejected input field.
type FieldError struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

// ErrorResponse is the JSON body of every non-2xx API response.
// Errors is populated for validation failures only.
type ErrorResponse struct {
	Message string       `json:"message"`
	Errors  []FieldError `json:"errors,omitempty"`
}

// EmailStatusResponse reports whether outbound email is configured.
type EmailStatusResponse struct {
	Configured bool `json:"configured"`
}

// EmailTestResponse is the outcome of a test email send.
type EmailTestResponse struct {
	Success bool   `json:"success"`
	Message string `json:"message"`
}

// HealthResponse is the body of the readiness probe.
type HealthResponse struct {
	Status string `json:"status"`
}
