package api

import (
	"errors"
	"fmt"

	"github.com/iudanet/maintkeeper/pkg/api"
)

// ErrNotFound is returned when the remote side has no record for the key
var ErrNotFound = errors.New("remote item not found")

// TransportError is any remote failure other than a version conflict:
// network errors and unexpected HTTP statuses
type TransportError struct {
	Err        error
	Message    string
	StatusCode int // StatusCode 0 для сетевых ошибок
}

func (e *TransportError) Error() string {
	if e.StatusCode == 0 {
		return fmt.Sprintf("transport error: %v", e.Err)
	}
	if e.Message != "" {
		return fmt.Sprintf("server error (%d): %s", e.StatusCode, e.Message)
	}
	return fmt.Sprintf("request failed with status %d", e.StatusCode)
}

func (e *TransportError) Unwrap() error {
	return e.Err
}

// ConflictError reports a rejected version precondition together with the
// authoritative remote record
type ConflictError struct {
	Remote api.ConflictResponse
}

func (e *ConflictError) Error() string {
	return fmt.Sprintf("version conflict: remote version %d", e.Remote.Version)
}
