package integrity

import (
	"context"
	"fmt"
	"time"

	"github.com/iudanet/maintkeeper/internal/codec"
	"github.com/iudanet/maintkeeper/internal/models"
)

// RepairResult lists what Repair changed and what it could not fix
type RepairResult struct {
	Repaired     []models.ItemKey `json:"repaired"`
	Unrepairable []models.ItemKey `json:"unrepairable"`
}

// Repair re-stamps checksums of items in collection whose payload still
// decodes but whose stored checksum is missing or stale. Repaired items get
// a new version and become unsynced. Undecodable items are reported, never
// deleted.
func (v *Validator) Repair(ctx context.Context, collection string) (*RepairResult, error) {
	items, err := v.items.ListItems(ctx, collection)
	if err != nil {
		return nil, fmt.Errorf("failed to list items: %w", err)
	}

	result := &RepairResult{}

	for _, item := range items {
		raw, err := v.codec.Raw(item.Payload, item.Compressed)
		if err == nil {
			_, err = v.codec.Decode(raw, false)
		}
		if err != nil {
			result.Unrepairable = append(result.Unrepairable, item.Key())
			v.logger.Warn("Item cannot be repaired",
				"collection", item.Collection,
				"id", item.ID,
				"error", err)
			continue
		}

		if item.Checksum == codec.Checksum(raw) {
			continue
		}

		if err := v.restamp(ctx, item.Key()); err != nil {
			return result, err
		}
		result.Repaired = append(result.Repaired, item.Key())
	}

	v.logger.Info("Repair completed",
		"collection", collection,
		"repaired", len(result.Repaired),
		"unrepairable", len(result.Unrepairable))

	return result, nil
}

func (v *Validator) restamp(ctx context.Context, key models.ItemKey) error {
	_, err := v.items.ModifyItem(ctx, key, func(item *models.StoredItem) (*models.SyncIntent, error) {
		value, err := v.codec.Decode(item.Payload, item.Compressed)
		if err != nil {
			return nil, err
		}

		enc, err := v.codec.Encode(value)
		if err != nil {
			return nil, err
		}
		canonical, err := v.codec.Raw(enc.Payload, enc.Compressed)
		if err != nil {
			return nil, err
		}

		item.Payload = enc.Payload
		item.Checksum = enc.Checksum
		item.RawSize = enc.RawSize
		item.CompressedSize = enc.CompressedSize
		item.Compressed = enc.Compressed
		item.Version++
		item.Synced = false
		item.SyncAttempts = 0
		// Метка записи не должна уходить назад
		now := v.now().UTC()
		if !now.After(item.LastModified) {
			now = item.LastModified.Add(time.Nanosecond)
		}
		item.LastModified = now

		return &models.SyncIntent{
			Collection: key.Collection,
			ID:         key.ID,
			Operation:  models.OperationUpdate,
			Data:       canonical,
			Timestamp:  item.LastModified,
		}, nil
	})
	if err != nil {
		return fmt.Errorf("failed to repair item %s: %w", key, err)
	}

	return nil
}
