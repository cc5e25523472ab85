package catalogclient

import (
	"errors"
	"fmt"
)

var (
	ErrFetchFailed = errors.New("catalog fetch failed")
	ErrNotFound    = fmt.Errorf("%w: not found", ErrFetchFailed)
)

// StatusError carries a non-2xx response. Message is the API's "message"
// field when the body had one.
type StatusError struct {
	Code    int
	Message string
}

func (e *StatusError) Error() string {
	if e.Message == "" {
		return fmt.Sprintf("unexpected status %d", e.Code)
	}
	return fmt.Sprintf("unexpected status %d: %s", e.Code, e.Message)
}

func (e *StatusError) Unwrap() error {
	if e.Code == 404 {
		return ErrNotFound
	}
	return ErrFetchFailed
}
