package handler

import (
	"net/http"

	"github.com/mcoot/kumkom/internal/api/apierr"
)

// Re-export from apierr for convenience
type APIError = apierr.APIError
type ErrorResponse = apierr.ErrorResponse

// WriteError writes an error response to the response writer
func WriteError(w http.ResponseWriter, err error) {
	apierr.WriteError(w, err)
}

// NewInvalidRequestError creates an invalid request error
func NewInvalidRequestError(message string) error {
	return apierr.NewInvalidRequestError(message)
}

// NewServiceUnavailableError reports a feature the server was started without
func NewServiceUnavailableError(message string) error {
	return apierr.NewServiceUnavailableError(message)
}
