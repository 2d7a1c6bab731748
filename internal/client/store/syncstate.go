package store

import (
	"context"
	"errors"
	"fmt"
	"sort"
	"time"

	"github.com/iudanet/maintkeeper/internal/client/storage"
	"github.com/iudanet/maintkeeper/internal/models"
)

// GetUnsynced returns unsynced items, oldest modification first.
// An empty collection means every collection.
func (s *Store) GetUnsynced(ctx context.Context, collection string) ([]*models.StoredItem, error) {
	items, err := s.storage.ListItems(ctx, collection)
	if err != nil {
		return nil, fmt.Errorf("failed to list items: %w", err)
	}

	unsynced := make([]*models.StoredItem, 0)
	for _, item := range items {
		if !item.Synced {
			unsynced = append(unsynced, item)
		}
	}

	sort.SliceStable(unsynced, func(i, j int) bool {
		return unsynced[i].LastModified.Before(unsynced[j].LastModified)
	})

	return unsynced, nil
}

// Value decodes the logical value of item
func (s *Store) Value(item *models.StoredItem) (any, error) {
	return s.codec.Decode(item.Payload, item.Compressed)
}

// MarkSynced marks the item as acknowledged by the remote side. A non-nil
// remoteVersion overwrites the local version.
func (s *Store) MarkSynced(ctx context.Context, key models.ItemKey, remoteVersion *int64) error {
	_, err := s.markSynced(ctx, key, func(*models.StoredItem) bool { return true }, remoteVersion)
	return err
}

// MarkPushed marks the item synced only if it still holds the pushed state:
// version must equal pushedVersion and, when checksum is not empty, the
// stored checksum must equal it. An item changed while the push was in
// flight stays unsynced and keeps its version; false is returned then.
func (s *Store) MarkPushed(ctx context.Context, key models.ItemKey, pushedVersion int64, checksum string, remoteVersion *int64) (bool, error) {
	return s.markSynced(ctx, key, func(item *models.StoredItem) bool {
		return item.Version == pushedVersion && (checksum == "" || item.Checksum == checksum)
	}, remoteVersion)
}

// errChanged прерывает транзакцию без записи
var errChanged = errors.New("item changed since push")

func (s *Store) markSynced(ctx context.Context, key models.ItemKey, unchanged func(*models.StoredItem) bool, remoteVersion *int64) (bool, error) {
	_, err := s.storage.ModifyItem(ctx, key, func(item *models.StoredItem) (*models.SyncIntent, error) {
		if !unchanged(item) {
			return nil, errChanged
		}
		item.Synced = true
		item.SyncAttempts = 0
		item.LastError = ""
		if remoteVersion != nil {
			item.Version = *remoteVersion
		}
		return nil, nil
	})
	if errors.Is(err, errChanged) {
		s.logger.Info("Item changed during push, keeping it unsynced",
			"collection", key.Collection,
			"id", key.ID)
		return false, nil
	}
	if err != nil {
		return false, fmt.Errorf("failed to mark item %s synced: %w", key, err)
	}

	return true, nil
}

// RecordSyncFailure increments the sync attempt counter and stores errMsg
func (s *Store) RecordSyncFailure(ctx context.Context, key models.ItemKey, errMsg string) error {
	_, err := s.storage.ModifyItem(ctx, key, func(item *models.StoredItem) (*models.SyncIntent, error) {
		item.SyncAttempts++
		item.LastError = errMsg
		return nil, nil
	})
	if err != nil {
		return fmt.Errorf("failed to record sync failure for %s: %w", key, err)
	}

	return nil
}

// Tombstones returns deletes awaiting remote acknowledgement
func (s *Store) Tombstones(ctx context.Context) ([]*models.Tombstone, error) {
	tombstones, err := s.storage.ListTombstones(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list tombstones: %w", err)
	}
	return tombstones, nil
}

// AcknowledgeDelete drops the tombstone of key after the remote side
// confirmed the delete
func (s *Store) AcknowledgeDelete(ctx context.Context, key models.ItemKey) error {
	if err := s.storage.DeleteTombstone(ctx, key); err != nil && !errors.Is(err, storage.ErrTombstoneNotFound) {
		return fmt.Errorf("failed to drop tombstone %s: %w", key, err)
	}
	return nil
}

// RecordDeleteFailure increments attempts of the tombstone of key
func (s *Store) RecordDeleteFailure(ctx context.Context, key models.ItemKey, errMsg string) error {
	if err := s.storage.RecordTombstoneFailure(ctx, key, errMsg); err != nil {
		return fmt.Errorf("failed to record delete failure for %s: %w", key, err)
	}
	return nil
}

// RecordConflict persists a conflict until it is resolved
func (s *Store) RecordConflict(ctx context.Context, conflict *models.Conflict) error {
	if conflict.DetectedAt.IsZero() {
		conflict.DetectedAt = s.clock.Now()
	}

	if err := s.storage.SaveConflict(ctx, conflict); err != nil {
		return fmt.Errorf("failed to record conflict %s: %w", conflict.Key(), err)
	}

	s.logger.Warn("Sync conflict recorded",
		"collection", conflict.Collection,
		"id", conflict.ID,
		"type", conflict.ConflictType,
		"local_version", conflict.LocalVersion,
		"remote_version", conflict.RemoteVersion)

	return nil
}

// Conflicts returns pending conflicts
func (s *Store) Conflicts(ctx context.Context) ([]*models.Conflict, error) {
	conflicts, err := s.storage.ListConflicts(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list conflicts: %w", err)
	}
	return conflicts, nil
}

// Conflict returns the pending conflict for key.
// Returns storage.ErrConflictNotFound if there is none.
func (s *Store) Conflict(ctx context.Context, key models.ItemKey) (*models.Conflict, error) {
	conflict, err := s.storage.GetConflict(ctx, key)
	if err != nil {
		return nil, fmt.Errorf("failed to get conflict %s: %w", key, err)
	}
	return conflict, nil
}

// ResolveWithValue closes the conflict for key by writing value as the item
// at version. synced reports whether the remote side already holds value.
// Metadata and creation time of an existing item are kept.
func (s *Store) ResolveWithValue(ctx context.Context, key models.ItemKey, value any, version int64, synced bool) error {
	item, canonical, err := s.newItem(key.Collection, key.ID, value, nil)
	if err != nil {
		return err
	}

	existing, err := s.storage.GetItem(ctx, key)
	switch {
	case err == nil:
		item.CreatedAt = existing.CreatedAt
		item.Metadata = existing.Metadata
	case !errors.Is(err, storage.ErrItemNotFound):
		return fmt.Errorf("failed to get item %s: %w", key, err)
	}

	item.Version = version
	item.Synced = synced

	intent := &models.SyncIntent{
		Collection: key.Collection,
		ID:         key.ID,
		Operation:  models.OperationUpdate,
		Data:       canonical,
		Timestamp:  item.LastModified,
	}

	if err := s.storage.ResolveConflict(ctx, key, item, intent, nil); err != nil {
		return fmt.Errorf("failed to resolve conflict %s: %w", key, err)
	}

	s.logger.Info("Conflict resolved", "collection", key.Collection, "id", key.ID, "version", version, "synced", synced)

	return nil
}

// ResolveAsDeleted closes the conflict for key keeping the item deleted.
// When pending is true a tombstone at version is left for the next sync.
func (s *Store) ResolveAsDeleted(ctx context.Context, key models.ItemKey, version int64, pending bool) error {
	var tombstone *models.Tombstone
	if pending {
		tombstone = &models.Tombstone{
			Collection: key.Collection,
			ID:         key.ID,
			Version:    version,
			DeletedAt:  s.clock.Tick(),
		}
	}

	if err := s.storage.ResolveConflict(ctx, key, nil, nil, tombstone); err != nil {
		return fmt.Errorf("failed to resolve conflict %s: %w", key, err)
	}

	s.logger.Info("Conflict resolved as delete", "collection", key.Collection, "id", key.ID, "pending", pending)

	return nil
}

// RecordSyncTime stores the completion time of the last sync run
func (s *Store) RecordSyncTime(ctx context.Context, t time.Time) error {
	if err := s.storage.SaveLastSyncTime(ctx, t); err != nil {
		return fmt.Errorf("failed to save last sync time: %w", err)
	}
	return nil
}

// LastSyncTime returns the completion time of the last sync run, zero if
// there was none
func (s *Store) LastSyncTime(ctx context.Context) (time.Time, error) {
	t, err := s.storage.GetLastSyncTime(ctx)
	if err != nil {
		return time.Time{}, fmt.Errorf("failed to get last sync time: %w", err)
	}
	return t, nil
}
