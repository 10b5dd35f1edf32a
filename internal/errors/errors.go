// internal/errors/errors.go
package appErrors

import "net/http"

// APIError is a tagged domain error carrying the HTTP status it maps to.
// The controller surfaces Message verbatim and nothing else.
type APIError struct {
	Status  int
	Message string
}

func (e *APIError) Error() string {
	return e.Message
}

// NewValidation reports malformed or missing input (400).
func NewValidation(msg string) error {
	return &APIError{Status: http.StatusBadRequest, Message: msg}
}

// NewNotFound reports a missing referenced resource (404).
func NewNotFound(msg string) error {
	return &APIError{Status: http.StatusNotFound, Message: msg}
}

// NewConflict reports a uniqueness violation (409).
func NewConflict(msg string) error {
	return &APIError{Status: http.StatusConflict, Message: msg}
}
