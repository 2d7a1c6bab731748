package boltdb

import (
	"context"
	"encoding/json"
	"fmt"

	"go.etcd.io/bbolt"

	"github.com/iudanet/maintkeeper/internal/client/storage"
	"github.com/iudanet/maintkeeper/internal/models"
)

// appendIntent assigns the next sequence number to intent and stores it.
// Must be called inside a read-write transaction.
func appendIntent(tx *bbolt.Tx, intent *models.SyncIntent) error {
	bucket := tx.Bucket(bucketIntents)
	if bucket == nil {
		return fmt.Errorf("intents bucket not found")
	}

	seq, err := bucket.NextSequence()
	if err != nil {
		return fmt.Errorf("failed to allocate intent sequence: %w", err)
	}
	intent.Seq = seq

	data, err := json.Marshal(intent)
	if err != nil {
		return fmt.Errorf("failed to marshal intent: %w", err)
	}

	if err := bucket.Put(itob(seq), data); err != nil {
		return fmt.Errorf("failed to append intent: %w", err)
	}

	return nil
}

// ListIntents returns intents with Seq greater than afterSeq in log order
func (s *Storage) ListIntents(ctx context.Context, afterSeq uint64) ([]*models.SyncIntent, error) {
	if s.db == nil {
		return nil, storage.ErrStorageClosed
	}

	var intents []*models.SyncIntent

	err := s.db.View(func(tx *bbolt.Tx) error {
		c := tx.Bucket(bucketIntents).Cursor()
		for k, v := c.Seek(itob(afterSeq + 1)); k != nil; k, v = c.Next() {
			var intent models.SyncIntent
			if err := json.Unmarshal(v, &intent); err != nil {
				return fmt.Errorf("failed to unmarshal intent %d: %w", btoi(k), err)
			}
			intents = append(intents, &intent)
		}
		return nil
	})

	if err != nil {
		return nil, fmt.Errorf("failed to list intents: %w", err)
	}

	return intents, nil
}

// CountIntents returns the number of intents in the log
func (s *Storage) CountIntents(ctx context.Context) (int, error) {
	if s.db == nil {
		return 0, storage.ErrStorageClosed
	}

	var count int
	err := s.db.View(func(tx *bbolt.Tx) error {
		count = tx.Bucket(bucketIntents).Stats().KeyN
		return nil
	})

	return count, err
}

// CompactIntents removes intents with Seq lower than beforeSeq.
// The sequence counter is never reset, so new intents keep increasing Seq.
func (s *Storage) CompactIntents(ctx context.Context, beforeSeq uint64) (int, error) {
	if s.db == nil {
		return 0, storage.ErrStorageClosed
	}

	removed := 0

	err := s.db.Update(func(tx *bbolt.Tx) error {
		bucket := tx.Bucket(bucketIntents)

		// Сначала собираем ключи: удаление под курсором может пропускать элементы
		var keys [][]byte
		c := bucket.Cursor()
		for k, _ := c.First(); k != nil && btoi(k) < beforeSeq; k, _ = c.Next() {
			keys = append(keys, append([]byte(nil), k...))
		}

		for _, k := range keys {
			if err := bucket.Delete(k); err != nil {
				return fmt.Errorf("failed to delete intent %d: %w", btoi(k), err)
			}
		}

		removed = len(keys)
		return nil
	})

	if err != nil {
		return 0, fmt.Errorf("compact intents transaction failed: %w", err)
	}

	return removed, nil
}
