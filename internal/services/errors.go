package services

import (
	"errors"
	"fmt"
)

// NetworkError means a backend request could not complete
type NetworkError struct {
	Op  string
	Err error
}

func (e *NetworkError) Error() string {
	return fmt.Sprintf("%s: network failure: %v", e.Op, e.Err)
}

func (e *NetworkError) Unwrap() error {
	return e.Err
}

// RejectionError means the backend answered with a non-2xx status
type RejectionError struct {
	Op         string
	StatusCode int
	Message    string
}

func (e *RejectionError) Error() string {
	if e.Message == "" {
		return fmt.Sprintf("%s: rejected with status %d", e.Op, e.StatusCode)
	}
	return fmt.Sprintf("%s: rejected with status %d: %s", e.Op, e.StatusCode, e.Message)
}

// IsNetworkFailure reports whether err is or wraps a NetworkError
func IsNetworkFailure(err error) bool {
	var netErr *NetworkError
	return errors.As(err, &netErr)
}

// IsRejection reports whether err is or wraps a RejectionError
func IsRejection(err error) bool {
	var rejErr *RejectionError
	return errors.As(err, &rejErr)
}
