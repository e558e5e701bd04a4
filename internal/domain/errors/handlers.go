package errors

// ErrorInfo contains detailed error information
type ErrorInfo struct {
	Code    string       `json:"code"`              // Business error code, e.g., "ACCOUNT_EXISTS"
	Details string       `json:"details,omitempty"` // Detailed error description
	Fields  []FieldError `json:"fields,omitempty"`  // Per-field validation failures
}

// Response is the unified envelope error payloads are rendered into.
type Response struct {
	Success bool       `json:"success"`
	Code    int        `json:"code"`    // HTTP status code
	Message string     `json:"message"` // User-friendly message
	Error   *ErrorInfo `json:"error,omitempty"`
}
