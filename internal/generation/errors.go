package generation

import (
	"errors"
	"net/http"
)

// Domain errors for generation operations.
var (
	ErrUninitialized = errors.New("generator not initialized: call /api/initialize first")
	ErrGeneration    = errors.New("failed to generate response")
	ErrMissingKey    = errors.New("GEMINI_API_KEY environment variable is required")
)

// MapHTTPStatus maps generation domain errors to appropriate HTTP status codes.
func MapHTTPStatus(err error) int {
	if errors.Is(err, ErrGeneration) {
		return http.StatusBadRequest
	}
	return http.StatusInternalServerError
}
