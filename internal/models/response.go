package models

// ErrorResponse is the body of every failed request.
// swagger:model ErrorResponse
type ErrorResponse struct {
	// Error message
	// default: Authentication required
	Error string `json:"error"`
}

// MessageResponse is the body of a request that only reports success.
// swagger:model MessageResponse
type MessageResponse struct {
	// Success message
	Message string `json:"message"`
}

// HealthResponse reports that the server is up.
// swagger:model HealthResponse
type HealthResponse struct {
	// default: OK
	Status string `json:"status"`

	// Server time in RFC 3339
	Timestamp string `json:"timestamp"`
}
