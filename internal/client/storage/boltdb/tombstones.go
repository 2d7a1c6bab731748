package boltdb

import (
	"context"
	"encoding/json"
	"fmt"

	"go.etcd.io/bbolt"

	"github.com/iudanet/maintkeeper/internal/client/storage"
	"github.com/iudanet/maintkeeper/internal/models"
)

// ListTombstones returns all pending deletes
func (s *Storage) ListTombstones(ctx context.Context) ([]*models.Tombstone, error) {
	if s.db == nil {
		return nil, storage.ErrStorageClosed
	}

	var tombstones []*models.Tombstone

	err := s.db.View(func(tx *bbolt.Tx) error {
		return forEachNested(tx, bucketTombstones, "", func(_ string, k, v []byte) error {
			var tombstone models.Tombstone
			if err := json.Unmarshal(v, &tombstone); err != nil {
				return fmt.Errorf("failed to unmarshal tombstone %q: %w", k, err)
			}
			tombstones = append(tombstones, &tombstone)
			return nil
		})
	})

	if err != nil {
		return nil, fmt.Errorf("failed to list tombstones: %w", err)
	}

	return tombstones, nil
}

// DeleteTombstone drops a pending delete
func (s *Storage) DeleteTombstone(ctx context.Context, key models.ItemKey) error {
	if s.db == nil {
		return storage.ErrStorageClosed
	}
	if err := validateKey(key); err != nil {
		return err
	}

	return s.db.Update(func(tx *bbolt.Tx) error {
		bucket, err := collectionBucket(tx, bucketTombstones, key.Collection, false)
		if err != nil {
			return err
		}
		if bucket == nil || bucket.Get([]byte(key.ID)) == nil {
			return storage.ErrTombstoneNotFound
		}
		return bucket.Delete([]byte(key.ID))
	})
}

// RecordTombstoneFailure increments attempts of a pending delete
func (s *Storage) RecordTombstoneFailure(ctx context.Context, key models.ItemKey, errMsg string) error {
	if s.db == nil {
		return storage.ErrStorageClosed
	}
	if err := validateKey(key); err != nil {
		return err
	}

	return s.db.Update(func(tx *bbolt.Tx) error {
		bucket, err := collectionBucket(tx, bucketTombstones, key.Collection, false)
		if err != nil {
			return err
		}
		if bucket == nil {
			return storage.ErrTombstoneNotFound
		}

		data := bucket.Get([]byte(key.ID))
		if data == nil {
			return storage.ErrTombstoneNotFound
		}

		var tombstone models.Tombstone
		if err := json.Unmarshal(data, &tombstone); err != nil {
			return fmt.Errorf("failed to unmarshal tombstone: %w", err)
		}

		tombstone.Attempts++
		tombstone.LastError = errMsg

		return putNested(tx, bucketTombstones, key, &tombstone)
	})
}
