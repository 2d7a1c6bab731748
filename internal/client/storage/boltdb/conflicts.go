package boltdb

import (
	"context"
	"encoding/json"
	"fmt"

	"go.etcd.io/bbolt"

	"github.com/iudanet/maintkeeper/internal/client/storage"
	"github.com/iudanet/maintkeeper/internal/models"
)

// SaveConflict stores or replaces the conflict for its key
func (s *Storage) SaveConflict(ctx context.Context, conflict *models.Conflict) error {
	if s.db == nil {
		return storage.ErrStorageClosed
	}
	if err := validateKey(conflict.Key()); err != nil {
		return err
	}

	err := s.db.Update(func(tx *bbolt.Tx) error {
		return putNested(tx, bucketConflicts, conflict.Key(), conflict)
	})

	if err != nil {
		return fmt.Errorf("failed to save conflict: %w", err)
	}

	return nil
}

// GetConflict retrieves the pending conflict for key
func (s *Storage) GetConflict(ctx context.Context, key models.ItemKey) (*models.Conflict, error) {
	if s.db == nil {
		return nil, storage.ErrStorageClosed
	}
	if err := validateKey(key); err != nil {
		return nil, err
	}

	var conflict *models.Conflict

	err := s.db.View(func(tx *bbolt.Tx) error {
		var err error
		conflict, err = getConflict(tx, key)
		return err
	})

	if err != nil {
		return nil, err
	}

	return conflict, nil
}

// ListConflicts returns all pending conflicts
func (s *Storage) ListConflicts(ctx context.Context) ([]*models.Conflict, error) {
	if s.db == nil {
		return nil, storage.ErrStorageClosed
	}

	var conflicts []*models.Conflict

	err := s.db.View(func(tx *bbolt.Tx) error {
		return forEachNested(tx, bucketConflicts, "", func(_ string, k, v []byte) error {
			var conflict models.Conflict
			if err := json.Unmarshal(v, &conflict); err != nil {
				return fmt.Errorf("failed to unmarshal conflict %q: %w", k, err)
			}
			conflicts = append(conflicts, &conflict)
			return nil
		})
	})

	if err != nil {
		return nil, fmt.Errorf("failed to list conflicts: %w", err)
	}

	return conflicts, nil
}

// ResolveConflict writes the resolved item, appends intent, replaces the
// tombstone and drops the conflict in one transaction. A nil item leaves the
// key deleted locally; a nil tombstone means no delete is pending.
func (s *Storage) ResolveConflict(ctx context.Context, key models.ItemKey, item *models.StoredItem, intent *models.SyncIntent, tombstone *models.Tombstone) error {
	if s.db == nil {
		return storage.ErrStorageClosed
	}
	if err := validateKey(key); err != nil {
		return err
	}

	return s.db.Update(func(tx *bbolt.Tx) error {
		if _, err := getConflict(tx, key); err != nil {
			return err
		}

		if item != nil {
			if err := putItem(tx, item); err != nil {
				return err
			}
		}

		if intent != nil {
			if err := appendIntent(tx, intent); err != nil {
				return err
			}
		}

		if tombstone != nil {
			if err := putNested(tx, bucketTombstones, key, tombstone); err != nil {
				return fmt.Errorf("failed to save tombstone: %w", err)
			}
		} else if err := deleteNested(tx, bucketTombstones, key); err != nil {
			return fmt.Errorf("failed to drop tombstone: %w", err)
		}

		if err := deleteNested(tx, bucketConflicts, key); err != nil {
			return fmt.Errorf("failed to drop conflict: %w", err)
		}

		return nil
	})
}

func getConflict(tx *bbolt.Tx, key models.ItemKey) (*models.Conflict, error) {
	bucket, err := collectionBucket(tx, bucketConflicts, key.Collection, false)
	if err != nil {
		return nil, err
	}
	if bucket == nil {
		return nil, storage.ErrConflictNotFound
	}

	data := bucket.Get([]byte(key.ID))
	if data == nil {
		return nil, storage.ErrConflictNotFound
	}

	conflict := &models.Conflict{}
	if err := json.Unmarshal(data, conflict); err != nil {
		return nil, fmt.Errorf("failed to unmarshal conflict: %w", err)
	}

	return conflict, nil
}
