package dto

// ErrorResponseDTO is the common error body.
type ErrorResponseDTO struct {
	Error string `json:"error" example:"unexpected status"`
	// Upstream carries the backend's own reply when the error came from it.
	Upstream string `json:"upstream,omitempty"`
}

type MessageResponseDTO struct {
	Message string `json:"message" example:"comment added"`
}
