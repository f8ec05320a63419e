package dto

// ErrorResponse is the body of every failed request.
type ErrorResponse struct {
	Detail string `json:"detail"`
}

// MessageResponse is the API banner.
type MessageResponse struct {
	Message string `json:"message"`
}

// HealthResponse reports service health.
type HealthResponse struct {
	Status string `json:"status"`
}
