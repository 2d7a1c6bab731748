package boltdb

import (
	"context"
	"encoding/binary"
	"fmt"
	"time"

	"go.etcd.io/bbolt"

	"github.com/iudanet/maintkeeper/internal/client/storage"
	"github.com/iudanet/maintkeeper/internal/models"
)

var (
	// BoltDB bucket names. items, tombstones and conflicts hold one nested
	// bucket per collection: root -> collection -> id.
	bucketItems      = []byte("items")
	bucketIntents    = []byte("intents")
	bucketTombstones = []byte("tombstones")
	bucketConflicts  = []byte("conflicts")
	bucketMetadata   = []byte("metadata")
)

var _ storage.Storage = (*Storage)(nil)

// Storage represents BoltDB storage implementation for client
type Storage struct {
	db *bbolt.DB
}

// New creates a new BoltDB storage instance
// dbPath is the path to the BoltDB database file
func New(ctx context.Context, dbPath string) (*Storage, error) {
	// Открываем BoltDB; таймаут защищает от вечного ожидания файловой блокировки
	db, err := bbolt.Open(dbPath, 0600, &bbolt.Options{Timeout: 5 * time.Second})
	if err != nil {
		return nil, fmt.Errorf("failed to open boltdb: %w", err)
	}

	s := &Storage{db: db}

	// Инициализируем buckets
	if err := s.initBuckets(); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("failed to initialize buckets: %w", err)
	}

	return s, nil
}

// Close closes the database connection
func (s *Storage) Close() error {
	if s.db == nil {
		return nil
	}
	err := s.db.Close()
	s.db = nil
	return err
}

// Path returns the database file path
func (s *Storage) Path() string {
	if s.db == nil {
		return ""
	}
	return s.db.Path()
}

// initBuckets создает необходимые buckets если они не существуют
func (s *Storage) initBuckets() error {
	return s.db.Update(func(tx *bbolt.Tx) error {
		for _, name := range [][]byte{bucketItems, bucketIntents, bucketTombstones, bucketConflicts, bucketMetadata} {
			if _, err := tx.CreateBucketIfNotExists(name); err != nil {
				return fmt.Errorf("failed to create %s bucket: %w", name, err)
			}
		}
		return nil
	})
}

// validateKey rejects keys bbolt can't address (empty bucket names or keys)
func validateKey(key models.ItemKey) error {
	if key.Collection == "" || key.ID == "" {
		return fmt.Errorf("%w: %q", storage.ErrInvalidKey, key.String())
	}
	return nil
}

// collectionBucket returns the nested bucket of collection under root.
// Returns nil without error when create is false and the bucket is absent.
func collectionBucket(tx *bbolt.Tx, root []byte, collection string, create bool) (*bbolt.Bucket, error) {
	parent := tx.Bucket(root)
	if parent == nil {
		return nil, fmt.Errorf("%s bucket not found", root)
	}

	if !create {
		return parent.Bucket([]byte(collection)), nil
	}

	bucket, err := parent.CreateBucketIfNotExists([]byte(collection))
	if err != nil {
		return nil, fmt.Errorf("failed to create collection bucket %q: %w", collection, err)
	}
	return bucket, nil
}

// forEachNested iterates key/values of every nested collection bucket under
// root, or of a single one when collection is not empty
func forEachNested(tx *bbolt.Tx, root []byte, collection string, fn func(collection string, k, v []byte) error) error {
	parent := tx.Bucket(root)
	if parent == nil {
		return fmt.Errorf("%s bucket not found", root)
	}

	if collection != "" {
		bucket := parent.Bucket([]byte(collection))
		if bucket == nil {
			// Нет bucket - коллекция пуста
			return nil
		}
		return bucket.ForEach(func(k, v []byte) error {
			return fn(collection, k, v)
		})
	}

	return parent.ForEach(func(name, v []byte) error {
		// v == nil означает вложенный bucket
		if v != nil {
			return nil
		}
		bucket := parent.Bucket(name)
		return bucket.ForEach(func(k, v []byte) error {
			return fn(string(name), k, v)
		})
	})
}

// itob encodes a sequence number as a big-endian key so cursor order matches Seq order
func itob(v uint64) []byte {
	b := make([]byte, 8)
	binary.BigEndian.PutUint64(b, v)
	return b
}

func btoi(b []byte) uint64 {
	return binary.BigEndian.Uint64(b)
}
