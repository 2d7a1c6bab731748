package storage

import "errors"

// Common client storage errors
var (
	// ErrItemNotFound indicates that no item exists under the key
	ErrItemNotFound = errors.New("item not found")

	// ErrConflictNotFound indicates that no pending conflict exists for the key
	ErrConflictNotFound = errors.New("conflict not found")

	// ErrTombstoneNotFound indicates that no pending delete exists for the key
	ErrTombstoneNotFound = errors.New("tombstone not found")

	// ErrInvalidKey indicates an empty collection name or item ID
	ErrInvalidKey = errors.New("invalid item key")

	// ErrStorageClosed indicates that storage is closed
	ErrStorageClosed = errors.New("storage is closed")
)
