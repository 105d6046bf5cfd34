package prompts

import (
	"errors"
	"net/http"
)

// Domain errors for prompt operations.
var (
	ErrNotFound    = errors.New("prompt index out of range")
	ErrEmptyPrompt = errors.New("prompt cannot be empty")
)

// MapHTTPStatus maps prompt domain errors to appropriate HTTP status codes.
func MapHTTPStatus(err error) int {
	if errors.Is(err, ErrNotFound) {
		return http.StatusNotFound
	}
	if errors.Is(err, ErrEmptyPrompt) {
		return http.StatusBadRequest
	}
	return http.StatusInternalServerError
}
