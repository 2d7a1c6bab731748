package storage

import (
	"context"

	"github.com/iudanet/maintkeeper/internal/models"
)

// ModifyFunc mutates item in place inside a read-write transaction.
// The returned intent, if not nil, is appended to the intent log in the
// same transaction. Returning an error aborts the transaction.
type ModifyFunc func(item *models.StoredItem) (*models.SyncIntent, error)

// ItemStorage defines interface for storing items on client.
// This is the lowest storage layer: it works with already encoded payloads
// and doesn't perform any serialization of domain values itself.
type ItemStorage interface {
	// PutItem stores or overwrites an item, appends intent to the log and
	// drops any pending tombstone for the key, atomically
	PutItem(ctx context.Context, item *models.StoredItem, intent *models.SyncIntent) error

	// GetItem retrieves an item by key
	// Returns ErrItemNotFound if item doesn't exist
	GetItem(ctx context.Context, key models.ItemKey) (*models.StoredItem, error)

	// ListItems returns all items of a collection, or of every collection
	// when collection is empty
	ListItems(ctx context.Context, collection string) ([]*models.StoredItem, error)

	// ListCollections returns the names of collections holding items
	ListCollections(ctx context.Context) ([]string, error)

	// ModifyItem runs fn against the stored item and writes the result back
	// Returns ErrItemNotFound if item doesn't exist
	ModifyItem(ctx context.Context, key models.ItemKey, fn ModifyFunc) (*models.StoredItem, error)

	// DeleteItem removes an item, appends intent and stores tombstone, atomically
	// Returns ErrItemNotFound if item doesn't exist
	DeleteItem(ctx context.Context, key models.ItemKey, intent *models.SyncIntent, tombstone *models.Tombstone) error

	// RemoveItems physically removes items without logging intents
	// Used by cleanup; missing keys and items rejected by match are skipped.
	// match runs inside the write transaction; nil removes every present key.
	// Returns the number removed.
	RemoveItems(ctx context.Context, keys []models.ItemKey, match func(*models.StoredItem) bool) (int, error)
}

// IntentLog defines the append-only sync intent log
type IntentLog interface {
	// ListIntents returns intents with Seq greater than afterSeq in log order
	ListIntents(ctx context.Context, afterSeq uint64) ([]*models.SyncIntent, error)

	// CountIntents returns the number of intents in the log
	CountIntents(ctx context.Context) (int, error)

	// CompactIntents removes intents with Seq lower than beforeSeq
	// Returns the number removed
	CompactIntents(ctx context.Context, beforeSeq uint64) (int, error)
}

// TombstoneStorage defines storage of deletes awaiting remote acknowledgement
type TombstoneStorage interface {
	// ListTombstones returns all pending deletes
	ListTombstones(ctx context.Context) ([]*models.Tombstone, error)

	// DeleteTombstone drops a pending delete
	// Returns ErrTombstoneNotFound if none exists
	DeleteTombstone(ctx context.Context, key models.ItemKey) error

	// RecordTombstoneFailure increments attempts and stores the error message
	RecordTombstoneFailure(ctx context.Context, key models.ItemKey, errMsg string) error
}

// ConflictStorage defines storage of unresolved sync conflicts
type ConflictStorage interface {
	// SaveConflict stores or replaces the conflict for its key
	SaveConflict(ctx context.Context, conflict *models.Conflict) error

	// GetConflict retrieves the pending conflict for key
	// Returns ErrConflictNotFound if none exists
	GetConflict(ctx context.Context, key models.ItemKey) (*models.Conflict, error)

	// ListConflicts returns all pending conflicts
	ListConflicts(ctx context.Context) ([]*models.Conflict, error)

	// ResolveConflict writes the resolved item (nil keeps the key deleted),
	// appends intent when not nil, replaces the tombstone with tombstone (nil
	// drops it) and removes the conflict, atomically
	// Returns ErrConflictNotFound if no conflict exists for key
	ResolveConflict(ctx context.Context, key models.ItemKey, item *models.StoredItem, intent *models.SyncIntent, tombstone *models.Tombstone) error
}

//go:generate moq -out storage_mock.go . Storage

// Storage aggregates every client storage concern. Implemented by boltdb.Storage.
type Storage interface {
	ItemStorage
	IntentLog
	TombstoneStorage
	ConflictStorage
	MetadataStorage
}
