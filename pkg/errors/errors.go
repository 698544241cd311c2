package errors

import "fmt"

// HTTPError is an error carrying an HTTP status code.
// Delivery layers translate domain errors into HTTPError via mapError;
// pkg/response uses the code when writing the envelope.
type HTTPError struct {
	StatusCode int
	Message    string
}

// NewHTTPError creates an HTTPError with the given status code and message.
func NewHTTPError(statusCode int, message string) *HTTPError {
	return &HTTPError{
		StatusCode: statusCode,
		Message:    message,
	}
}

func (e *HTTPError) Error() string {
	return fmt.Sprintf("%d: %s", e.StatusCode, e.Message)
}
