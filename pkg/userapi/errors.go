package userapi

import "fmt"

// APIError is returned by the client when the service responds with an error
// envelope. Status carries the HTTP status code and Message the envelope's
// error string.
type APIError struct {
	Status  int
	Message string
}

func (e *APIError) Error() string {
	return fmt.Sprintf("userapi: %d: %s", e.Status, e.Message)
}

// IsNotFound reports whether err is an APIError with a 404 status.
func IsNotFound(err error) bool {
	apiErr, ok := err.(*APIError)
	return ok && apiErr.Status == 404
}

// IsConflict reports whether err is an APIError with a 409 status.
func IsConflict(err error) bool {
	apiErr, ok := err.(*APIError)
	return ok && apiErr.Status == 409
}
