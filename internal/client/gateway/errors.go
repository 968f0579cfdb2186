package gateway

import (
	"errors"
	"fmt"
	"net/http"
)

// APIError is a structured failure returned by the gateway for any non-2xx
// response. Status carries the HTTP status code and Message the
// server-provided "message" field, if any.
type APIError struct {
	Status  int
	Message string
}

func (e *APIError) Error() string {
	if e.Message != "" {
		return fmt.Sprintf("api error: status %d: %s", e.Status, e.Message)
	}
	return fmt.Sprintf("api error: status %d", e.Status)
}

// NotFound reports whether the error carries HTTP 404.
func (e *APIError) NotFound() bool {
	return e.Status == http.StatusNotFound
}

// IsNotFound reports whether err is an APIError with HTTP 404.
func IsNotFound(err error) bool {
	var apiErr *APIError
	return errors.As(err, &apiErr) && apiErr.NotFound()
}
