package client

import "fmt"

// NetworkError reports an unreachable backend or a non-2xx response.
// Message carries the backend's own error text when it sent one, so
// callers can surface it verbatim; Status is zero when the request
// never reached the backend.
type NetworkError struct {
	Op      string
	Status  int
	Message string
	Err     error
}

func (e *NetworkError) Error() string {
	if e.Message != "" {
		return e.Message
	}
	if e.Err != nil {
		return fmt.Sprintf("%s: %v", e.Op, e.Err)
	}
	return fmt.Sprintf("%s: request failed with status %d", e.Op, e.Status)
}

func (e *NetworkError) Unwrap() error { return e.Err }
