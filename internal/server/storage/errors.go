package storage

import "errors"

// Common storage errors
var (
	// ErrItemNotFound indicates that the record does not exist on the server
	ErrItemNotFound = errors.New("item not found")
)
