package storage

import (
	"context"

	"github.com/iudanet/maintkeeper/internal/models"
)

// ItemStorage defines interface for server-side record persistence
type ItemStorage interface {
	// PutItem stores item if no record exists or item.Version is greater
	// than the stored one. Returns the record held after the call and
	// whether item was accepted; a rejected push returns the stored record.
	PutItem(ctx context.Context, item *models.RemoteItem) (*models.RemoteItem, bool, error)

	// GetItem retrieves a single record.
	// Returns ErrItemNotFound if it doesn't exist.
	GetItem(ctx context.Context, collection, id string) (*models.RemoteItem, error)

	// ListItems returns all records of collection ordered by id.
	// Returns empty slice if collection is empty.
	ListItems(ctx context.Context, collection string) ([]*models.RemoteItem, error)

	// DeleteItem removes the record if version is not behind the stored one.
	// A rejected delete returns the stored record and false.
	// Returns ErrItemNotFound if it doesn't exist.
	DeleteItem(ctx context.Context, collection, id string, version int64) (*models.RemoteItem, bool, error)
}
