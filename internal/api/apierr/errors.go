package apierr

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/PriyankaYambem/cloud-manager/internal/services/auth"
	"github.com/PriyankaYambem/cloud-manager/internal/services/token"
)

// ErrorResponse is the body of every error response. Clients display the
// message without interpreting it beyond success/failure.
type ErrorResponse struct {
	Message string `json:"message"`
}

// httpError combines an HTTP status code with a client-facing message
type httpError struct {
	status  int
	message string
}

// Error implements error interface
func (e *httpError) Error() string {
	return e.message
}

// WriteError writes an error response to the response writer
func WriteError(w http.ResponseWriter, err error) {
	he := toHTTPError(err)
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(he.status)
	_ = json.NewEncoder(w).Encode(ErrorResponse{Message: he.message})
}

// toHTTPError converts an error to an httpError
func toHTTPError(err error) *httpError {
	var he *httpError
	if errors.As(err, &he) {
		return he
	}

	switch {
	case errors.Is(err, auth.ErrUsernameExists):
		return &httpError{http.StatusConflict, "Username already exists"}

	// One message for unknown user and wrong password: responses must not
	// reveal whether a username is registered
	case errors.Is(err, auth.ErrInvalidCredentials):
		return &httpError{http.StatusBadRequest, "Invalid username or password"}

	case errors.Is(err, token.ErrExpired),
		errors.Is(err, token.ErrBadSignature),
		errors.Is(err, token.ErrMalformed):
		return &httpError{http.StatusUnauthorized, "Invalid or expired session"}

	default:
		return &httpError{http.StatusInternalServerError, "Internal server error"}
	}
}

// NewValidationError creates a 400 error with the given message
func NewValidationError(message string) error {
	return &httpError{http.StatusBadRequest, message}
}

// NewUnauthorizedError creates a 401 error for requests with no session
func NewUnauthorizedError() error {
	return &httpError{http.StatusUnauthorized, "Please log in"}
}

// NewInternalError creates an internal server error
func NewInternalError() error {
	return &httpError{http.StatusInternalServerError, "Internal server error"}
}
