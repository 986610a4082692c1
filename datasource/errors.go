package datasource

import (
	"fmt"
	"net/http"
)

// APIError reports a non-2xx response from the upstream weather API. The
// provider makes no judgement about the status; callers decide how to
// present it (404 means the city was not found, anything else is an
// upstream fault).
type APIError struct {
	StatusCode int
	Body       string
}

func (e *APIError) Error() string {
	return fmt.Sprintf("API error (status %d): %s", e.StatusCode, e.Body)
}

// NotFound reports whether the upstream rejected the query as an unknown location.
func (e *APIError) NotFound() bool {
	return e.StatusCode == http.StatusNotFound
}

// MalformedResponseError reports a 2xx response whose body is not the JSON
// envelope the projection depends on. Missing optional fields inside a
// well-formed envelope never produce this error.
type MalformedResponseError struct {
	Err error
}

func (e *MalformedResponseError) Error() string {
	return fmt.Sprintf("malformed response: %v", e.Err)
}

func (e *MalformedResponseError) Unwrap() error {
	return e.Err
}
