package application

// PlusOneResponse is the body of GET /api/plusone/{slug}
type PlusOneResponse struct {
	Count int64 `json:"count"`
}

// HealthResponse is the body of GET /health
type HealthResponse struct {
	Status string `json:"status"`
}

// ErrorResponse represents an error in API responses
type ErrorResponse struct {
	Error string `json:"error"`
}
