package sync

import (
	"context"

	"github.com/iudanet/maintkeeper/internal/models"
	"github.com/iudanet/maintkeeper/pkg/api"
)

//go:generate moq -out remote_mock.go . Remote

// Remote is the versioned remote endpoint. Implemented by api.Client.
type Remote interface {
	PutItem(ctx context.Context, collection, id string, version int64, value any) (*api.PutResponse, error)
	DeleteItem(ctx context.Context, collection, id string, version int64) error
}

// RemoteFactory creates a Remote for an endpoint URL
type RemoteFactory func(endpoint string) Remote

//go:generate moq -out local_mock.go . LocalStore

// LocalStore is the part of the durable store the engine drives.
// Implemented by store.Store.
type LocalStore interface {
	GetUnsynced(ctx context.Context, collection string) ([]*models.StoredItem, error)
	Value(item *models.StoredItem) (any, error)
	Save(ctx context.Context, collection, id string, value any, meta *models.ItemMetadata) error
	MarkPushed(ctx context.Context, key models.ItemKey, pushedVersion int64, checksum string, remoteVersion *int64) (bool, error)
	RecordSyncFailure(ctx context.Context, key models.ItemKey, errMsg string) error

	Tombstones(ctx context.Context) ([]*models.Tombstone, error)
	AcknowledgeDelete(ctx context.Context, key models.ItemKey) error
	RecordDeleteFailure(ctx context.Context, key models.ItemKey, errMsg string) error

	RecordConflict(ctx context.Context, conflict *models.Conflict) error
	Conflicts(ctx context.Context) ([]*models.Conflict, error)
	Conflict(ctx context.Context, key models.ItemKey) (*models.Conflict, error)
	ResolveWithValue(ctx context.Context, key models.ItemKey, value any, version int64, synced bool) error
	ResolveAsDeleted(ctx context.Context, key models.ItemKey, version int64, pending bool) error
}
