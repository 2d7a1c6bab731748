package store

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/iudanet/maintkeeper/internal/client/storage"
	"github.com/iudanet/maintkeeper/internal/clock"
	"github.com/iudanet/maintkeeper/internal/codec"
	"github.com/iudanet/maintkeeper/internal/models"
)

// CorruptionWarning описывает расхождение контрольной суммы при чтении
type CorruptionWarning struct {
	DetectedAt time.Time
	Key        models.ItemKey
	Stored     string
	Computed   string
}

// CorruptionObserver receives corruption warnings raised by reads
type CorruptionObserver func(CorruptionWarning)

// Store is the durable store service: it encodes domain values, keeps
// versions and the sync intent log, and exposes decoded records.
type Store struct {
	storage  storage.Storage
	codec    *codec.Codec
	clock    *clock.Clock
	logger   *slog.Logger
	observer CorruptionObserver
}

// New creates a store over st and advances clk past every timestamp
// already persisted, so a restarted process never stamps older times.
func New(ctx context.Context, st storage.Storage, cdc *codec.Codec, clk *clock.Clock, logger *slog.Logger) (*Store, error) {
	if logger == nil {
		logger = slog.Default()
	}

	s := &Store{
		storage: st,
		codec:   cdc,
		clock:   clk,
		logger:  logger,
	}

	items, err := st.ListItems(ctx, "")
	if err != nil {
		return nil, fmt.Errorf("failed to restore clock: %w", err)
	}
	for _, item := range items {
		clk.Observe(item.LastModified)
	}

	tombstones, err := st.ListTombstones(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to restore clock: %w", err)
	}
	for _, tombstone := range tombstones {
		clk.Observe(tombstone.DeletedAt)
	}

	return s, nil
}

// SetCorruptionObserver registers fn to be called on every checksum mismatch
// detected by reads
func (s *Store) SetCorruptionObserver(fn CorruptionObserver) {
	s.observer = fn
}

// Codec returns the codec used to encode payloads
func (s *Store) Codec() *codec.Codec {
	return s.codec
}

// Clock returns the store clock
func (s *Store) Clock() *clock.Clock {
	return s.clock
}

// Save encodes value and writes it as a new item (version 1, unsynced),
// overwriting any existing item at the same key.
func (s *Store) Save(ctx context.Context, collection, id string, value any, meta *models.ItemMetadata) error {
	item, canonical, err := s.newItem(collection, id, value, meta)
	if err != nil {
		return err
	}

	intent := &models.SyncIntent{
		Collection: collection,
		ID:         id,
		Operation:  models.OperationCreate,
		Data:       canonical,
		Timestamp:  item.LastModified,
	}

	if err := s.storage.PutItem(ctx, item, intent); err != nil {
		return fmt.Errorf("failed to save item %s: %w", item.Key(), err)
	}

	s.logger.Debug("Item saved",
		"collection", collection,
		"id", id,
		"size", item.RawSize,
		"compressed", item.Compressed)

	return nil
}

// Get returns every record of collection, or the record with id if id is
// not empty. A missing id yields an empty slice.
func (s *Store) Get(ctx context.Context, collection, id string) ([]Record, error) {
	if id != "" {
		record, err := s.GetOne(ctx, collection, id)
		if errors.Is(err, ErrNotFound) {
			return []Record{}, nil
		}
		if err != nil {
			return nil, err
		}
		return []Record{*record}, nil
	}

	items, err := s.storage.ListItems(ctx, collection)
	if err != nil {
		return nil, fmt.Errorf("failed to list items: %w", err)
	}

	records := make([]Record, 0, len(items))
	for _, item := range items {
		record, err := s.decodeRecord(item)
		if err != nil {
			// Пропускаем поврежденные записи
			s.logger.Warn("Skipping undecodable item",
				"collection", item.Collection,
				"id", item.ID,
				"error", err)
			continue
		}
		records = append(records, *record)
	}

	return records, nil
}

// GetOne returns a single record. Returns ErrNotFound if absent.
func (s *Store) GetOne(ctx context.Context, collection, id string) (*Record, error) {
	item, err := s.storage.GetItem(ctx, models.ItemKey{Collection: collection, ID: id})
	if err != nil {
		return nil, fmt.Errorf("failed to get item: %w", err)
	}

	record, err := s.decodeRecord(item)
	if err != nil {
		return nil, fmt.Errorf("failed to decode item %s: %w", item.Key(), err)
	}

	return record, nil
}

// Update merges partial into the stored value. Objects merge shallowly with
// partial keys taking precedence; any other combination replaces the value.
// Version is incremented by exactly one and the item becomes unsynced.
// A stored item whose checksum does not match is reported and left
// untouched; ErrChecksumMismatch is returned.
func (s *Store) Update(ctx context.Context, collection, id string, partial any, meta *models.ItemMetadata) error {
	key := models.ItemKey{Collection: collection, ID: id}

	normalized, err := normalize(partial)
	if err != nil {
		return err
	}

	var corrupted *models.StoredItem
	var computed string

	_, err = s.storage.ModifyItem(ctx, key, func(item *models.StoredItem) (*models.SyncIntent, error) {
		raw, err := s.codec.Raw(item.Payload, item.Compressed)
		if err != nil {
			return nil, fmt.Errorf("failed to decode current value: %w", err)
		}

		// Поврежденную запись не перештамповываем: только явный repair
		if computed = codec.Checksum(raw); item.Checksum != computed {
			corrupted = item.Clone()
			return nil, ErrChecksumMismatch
		}

		current, err := s.codec.Decode(raw, false)
		if err != nil {
			return nil, fmt.Errorf("failed to decode current value: %w", err)
		}

		merged := mergeValues(current, normalized)

		enc, err := s.codec.Encode(merged)
		if err != nil {
			return nil, fmt.Errorf("failed to encode value: %w", err)
		}
		canonical, err := s.codec.Raw(enc.Payload, enc.Compressed)
		if err != nil {
			return nil, err
		}

		applyEncoded(item, enc)
		item.Version++
		item.Synced = false
		item.SyncAttempts = 0
		item.LastError = ""
		item.LastModified = s.clock.Tick()
		item.Metadata = item.Metadata.Merge(meta)

		return &models.SyncIntent{
			Collection: collection,
			ID:         id,
			Operation:  models.OperationUpdate,
			Data:       canonical,
			Timestamp:  item.LastModified,
		}, nil
	})
	if corrupted != nil {
		s.reportCorruption(corrupted, computed)
	}
	if err != nil {
		return fmt.Errorf("failed to update item %s: %w", key, err)
	}

	return nil
}

// Delete removes the item, logs a delete intent and leaves a tombstone for
// the sync engine. Returns ErrNotFound if absent.
func (s *Store) Delete(ctx context.Context, collection, id string) error {
	key := models.ItemKey{Collection: collection, ID: id}

	item, err := s.storage.GetItem(ctx, key)
	if err != nil {
		return fmt.Errorf("failed to delete item %s: %w", key, err)
	}

	now := s.clock.Tick()
	intent := &models.SyncIntent{
		Collection: collection,
		ID:         id,
		Operation:  models.OperationDelete,
		Timestamp:  now,
	}
	tombstone := &models.Tombstone{
		Collection: collection,
		ID:         id,
		Version:    item.Version,
		DeletedAt:  now,
	}

	if err := s.storage.DeleteItem(ctx, key, intent, tombstone); err != nil {
		return fmt.Errorf("failed to delete item %s: %w", key, err)
	}

	s.logger.Debug("Item deleted", "collection", collection, "id", id)

	return nil
}

// Intents returns the sync intent log after afterSeq
func (s *Store) Intents(ctx context.Context, afterSeq uint64) ([]*models.SyncIntent, error) {
	intents, err := s.storage.ListIntents(ctx, afterSeq)
	if err != nil {
		return nil, fmt.Errorf("failed to list intents: %w", err)
	}
	return intents, nil
}

// CompactIntents removes delivered intents with Seq lower than beforeSeq.
// Never called implicitly.
func (s *Store) CompactIntents(ctx context.Context, beforeSeq uint64) (int, error) {
	removed, err := s.storage.CompactIntents(ctx, beforeSeq)
	if err != nil {
		return 0, fmt.Errorf("failed to compact intents: %w", err)
	}

	s.logger.Info("Intent log compacted", "before_seq", beforeSeq, "removed", removed)

	return removed, nil
}

// Collections returns names of collections holding items
func (s *Store) Collections(ctx context.Context) ([]string, error) {
	return s.storage.ListCollections(ctx)
}

// newItem builds a fresh item for value and returns it with the canonical JSON
func (s *Store) newItem(collection, id string, value any, meta *models.ItemMetadata) (*models.StoredItem, []byte, error) {
	if collection == "" || id == "" {
		return nil, nil, storage.ErrInvalidKey
	}

	enc, err := s.codec.Encode(value)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to encode value: %w", err)
	}
	canonical, err := s.codec.Raw(enc.Payload, enc.Compressed)
	if err != nil {
		return nil, nil, err
	}

	now := s.clock.Tick()
	defaults := models.ItemMetadata{Source: collection, Priority: models.PriorityMedium}

	item := &models.StoredItem{
		Collection:   collection,
		ID:           id,
		CreatedAt:    now,
		LastModified: now,
		Version:      1,
		Metadata:     defaults.Merge(meta),
	}
	applyEncoded(item, enc)

	return item, canonical, nil
}

// decodeRecord decodes item and verifies its checksum. A mismatch is
// reported as a warning, the record is still returned.
func (s *Store) decodeRecord(item *models.StoredItem) (*Record, error) {
	raw, err := s.codec.Raw(item.Payload, item.Compressed)
	if err != nil {
		return nil, err
	}

	value, err := s.codec.Decode(raw, false)
	if err != nil {
		return nil, err
	}

	if computed := codec.Checksum(raw); item.Checksum != computed {
		s.reportCorruption(item, computed)
	}

	return &Record{Value: value, Metadata: newRecordMetadata(item)}, nil
}

func (s *Store) reportCorruption(item *models.StoredItem, computed string) {
	warning := CorruptionWarning{
		DetectedAt: s.clock.Now(),
		Key:        item.Key(),
		Stored:     item.Checksum,
		Computed:   computed,
	}

	s.logger.Warn("Checksum mismatch",
		"collection", item.Collection,
		"id", item.ID,
		"stored", item.Checksum,
		"computed", computed)

	if s.observer != nil {
		s.observer(warning)
	}
}

func applyEncoded(item *models.StoredItem, enc *codec.Encoded) {
	item.Payload = enc.Payload
	item.Checksum = enc.Checksum
	item.RawSize = enc.RawSize
	item.CompressedSize = enc.CompressedSize
	item.Compressed = enc.Compressed
}

// normalize converts v to its generic JSON form
func normalize(v any) (any, error) {
	canonical, err := codec.Canonical(v)
	if err != nil {
		return nil, fmt.Errorf("failed to normalize value: %w", err)
	}

	var generic any
	if err := json.Unmarshal(canonical, &generic); err != nil {
		return nil, fmt.Errorf("failed to normalize value: %w", err)
	}

	return generic, nil
}

// mergeValues overlays partial onto current when both are objects
func mergeValues(current, partial any) any {
	base, ok := current.(map[string]any)
	if !ok {
		return partial
	}
	patch, ok := partial.(map[string]any)
	if !ok {
		return partial
	}

	merged := make(map[string]any, len(base)+len(patch))
	for k, v := range base {
		merged[k] = v
	}
	for k, v := range patch {
		merged[k] = v
	}

	return merged
}
