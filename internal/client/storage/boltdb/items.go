package boltdb

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"go.etcd.io/bbolt"

	"github.com/iudanet/maintkeeper/internal/client/storage"
	"github.com/iudanet/maintkeeper/internal/models"
)

// PutItem stores or overwrites an item, appends intent and drops the tombstone
func (s *Storage) PutItem(ctx context.Context, item *models.StoredItem, intent *models.SyncIntent) error {
	if s.db == nil {
		return storage.ErrStorageClosed
	}
	if err := validateKey(item.Key()); err != nil {
		return err
	}

	err := s.db.Update(func(tx *bbolt.Tx) error {
		if err := putItem(tx, item); err != nil {
			return err
		}

		if intent != nil {
			if err := appendIntent(tx, intent); err != nil {
				return err
			}
		}

		// Новое сохранение отменяет ожидающее удаление на сервере
		return deleteNested(tx, bucketTombstones, item.Key())
	})

	if err != nil {
		return fmt.Errorf("put item transaction failed: %w", err)
	}

	return nil
}

// GetItem retrieves an item by key
func (s *Storage) GetItem(ctx context.Context, key models.ItemKey) (*models.StoredItem, error) {
	if s.db == nil {
		return nil, storage.ErrStorageClosed
	}
	if err := validateKey(key); err != nil {
		return nil, err
	}

	var item *models.StoredItem

	err := s.db.View(func(tx *bbolt.Tx) error {
		var err error
		item, err = getItem(tx, key)
		return err
	})

	if err != nil {
		return nil, err
	}

	return item, nil
}

// ListItems returns all items of collection, or of all collections if empty
func (s *Storage) ListItems(ctx context.Context, collection string) ([]*models.StoredItem, error) {
	if s.db == nil {
		return nil, storage.ErrStorageClosed
	}

	var items []*models.StoredItem

	err := s.db.View(func(tx *bbolt.Tx) error {
		return forEachNested(tx, bucketItems, collection, func(_ string, k, v []byte) error {
			var item models.StoredItem
			if err := json.Unmarshal(v, &item); err != nil {
				return fmt.Errorf("failed to unmarshal item %q: %w", k, err)
			}
			items = append(items, &item)
			return nil
		})
	})

	if err != nil {
		return nil, fmt.Errorf("failed to list items: %w", err)
	}

	return items, nil
}

// ListCollections returns names of non-empty collections
func (s *Storage) ListCollections(ctx context.Context) ([]string, error) {
	if s.db == nil {
		return nil, storage.ErrStorageClosed
	}

	var collections []string

	err := s.db.View(func(tx *bbolt.Tx) error {
		return tx.Bucket(bucketItems).ForEach(func(name, v []byte) error {
			if v != nil {
				return nil
			}
			if k, _ := tx.Bucket(bucketItems).Bucket(name).Cursor().First(); k != nil {
				collections = append(collections, string(name))
			}
			return nil
		})
	})

	if err != nil {
		return nil, fmt.Errorf("failed to list collections: %w", err)
	}

	return collections, nil
}

// ModifyItem runs fn against the stored item inside one read-write transaction.
// bbolt allows a single writer, so concurrent read-modify-write sequences on
// the same key can't interleave.
func (s *Storage) ModifyItem(ctx context.Context, key models.ItemKey, fn storage.ModifyFunc) (*models.StoredItem, error) {
	if s.db == nil {
		return nil, storage.ErrStorageClosed
	}
	if err := validateKey(key); err != nil {
		return nil, err
	}

	var result *models.StoredItem

	err := s.db.Update(func(tx *bbolt.Tx) error {
		item, err := getItem(tx, key)
		if err != nil {
			return err
		}

		intent, err := fn(item)
		if err != nil {
			return err
		}

		// Ключ менять нельзя
		item.Collection = key.Collection
		item.ID = key.ID

		if err := putItem(tx, item); err != nil {
			return err
		}

		if intent != nil {
			if err := appendIntent(tx, intent); err != nil {
				return err
			}
		}

		result = item
		return nil
	})

	if err != nil {
		return nil, err
	}

	return result, nil
}

// DeleteItem removes an item, appends intent and stores tombstone
func (s *Storage) DeleteItem(ctx context.Context, key models.ItemKey, intent *models.SyncIntent, tombstone *models.Tombstone) error {
	if s.db == nil {
		return storage.ErrStorageClosed
	}
	if err := validateKey(key); err != nil {
		return err
	}

	return s.db.Update(func(tx *bbolt.Tx) error {
		bucket, err := collectionBucket(tx, bucketItems, key.Collection, false)
		if err != nil {
			return err
		}
		if bucket == nil || bucket.Get([]byte(key.ID)) == nil {
			return storage.ErrItemNotFound
		}

		if err := bucket.Delete([]byte(key.ID)); err != nil {
			return fmt.Errorf("failed to delete item: %w", err)
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
		}

		return nil
	})
}

// RemoveItems physically removes items without logging intents.
// match is evaluated against the current item inside the transaction;
// a nil match removes every present key.
func (s *Storage) RemoveItems(ctx context.Context, keys []models.ItemKey, match func(*models.StoredItem) bool) (int, error) {
	if s.db == nil {
		return 0, storage.ErrStorageClosed
	}

	removed := 0

	err := s.db.Update(func(tx *bbolt.Tx) error {
		removed = 0
		for _, key := range keys {
			item, err := getItem(tx, key)
			if errors.Is(err, storage.ErrItemNotFound) {
				continue
			}
			if err != nil {
				return err
			}
			if match != nil && !match(item) {
				continue
			}

			bucket, err := collectionBucket(tx, bucketItems, key.Collection, false)
			if err != nil {
				return err
			}
			if err := bucket.Delete([]byte(key.ID)); err != nil {
				return fmt.Errorf("failed to remove item %s: %w", key, err)
			}
			removed++
		}
		return nil
	})

	if err != nil {
		return 0, fmt.Errorf("remove items transaction failed: %w", err)
	}

	return removed, nil
}

func getItem(tx *bbolt.Tx, key models.ItemKey) (*models.StoredItem, error) {
	bucket, err := collectionBucket(tx, bucketItems, key.Collection, false)
	if err != nil {
		return nil, err
	}
	if bucket == nil {
		return nil, storage.ErrItemNotFound
	}

	data := bucket.Get([]byte(key.ID))
	if data == nil {
		return nil, storage.ErrItemNotFound
	}

	item := &models.StoredItem{}
	if err := json.Unmarshal(data, item); err != nil {
		return nil, fmt.Errorf("failed to unmarshal item: %w", err)
	}

	return item, nil
}

func putItem(tx *bbolt.Tx, item *models.StoredItem) error {
	if err := putNested(tx, bucketItems, item.Key(), item); err != nil {
		return fmt.Errorf("failed to save item: %w", err)
	}
	return nil
}

// putNested marshals v to JSON and stores it under root -> collection -> id
func putNested(tx *bbolt.Tx, root []byte, key models.ItemKey, v any) error {
	data, err := json.Marshal(v)
	if err != nil {
		return fmt.Errorf("failed to marshal %s: %w", root, err)
	}

	bucket, err := collectionBucket(tx, root, key.Collection, true)
	if err != nil {
		return err
	}

	return bucket.Put([]byte(key.ID), data)
}

// deleteNested removes root -> collection -> id if present
func deleteNested(tx *bbolt.Tx, root []byte, key models.ItemKey) error {
	bucket, err := collectionBucket(tx, root, key.Collection, false)
	if err != nil {
		return err
	}
	if bucket == nil {
		return nil
	}
	return bucket.Delete([]byte(key.ID))
}
