package store

import (
	"errors"
	"fmt"

	"github.com/iudanet/maintkeeper/internal/client/storage"
)

var (
	// ErrNotFound is returned by Update, Delete and GetOne when the key is absent
	ErrNotFound = storage.ErrItemNotFound

	// ErrInvalidImport is returned when import data is neither an export
	// document nor an array of records
	ErrInvalidImport = errors.New("invalid import data")

	// ErrChecksumMismatch is returned by Update when the stored payload no
	// longer matches its checksum
	ErrChecksumMismatch = errors.New("stored checksum mismatch")
)

// ImportError aborts Import and reports how many records were saved before the failure
type ImportError struct {
	Cause    error
	Imported int
}

func (e *ImportError) Error() string {
	return fmt.Sprintf("import failed after %d records: %v", e.Imported, e.Cause)
}

func (e *ImportError) Unwrap() error {
	return e.Cause
}
