package store

import (
	"context"
	"fmt"
	"sort"
	"time"

	"github.com/iudanet/maintkeeper/internal/models"
)

// CleanupOptions selects what Cleanup removes. Unsynced items are never removed.
type CleanupOptions struct {
	MaxAge        *time.Duration // MaxAge удаляет synced записи старше; nil отключает правило
	MaxItems      int            // MaxItems предел общего числа записей; 0 без ограничения
	RemoveExpired bool           // RemoveExpired удаляет synced записи с истекшим expiresAt
}

// CleanupResult reports how many items each rule removed
type CleanupResult struct {
	Expired      int `json:"expired"`
	Aged         int `json:"aged"`
	OverCapacity int `json:"overCapacity"`
}

// Total returns the number of removed items
func (r *CleanupResult) Total() int {
	return r.Expired + r.Aged + r.OverCapacity
}

// Cleanup removes expired, aged and over-capacity items. Only synced items
// are candidates: losing unsynced local work is never allowed. Each
// candidate is re-checked inside the removal transaction, so an item edited
// after the listing survives.
func (s *Store) Cleanup(ctx context.Context, opts CleanupOptions) (*CleanupResult, error) {
	items, err := s.storage.ListItems(ctx, "")
	if err != nil {
		return nil, fmt.Errorf("failed to list items: %w", err)
	}

	now := s.clock.Now()
	// Метки могут опережать источник времени при быстрых записях
	ref := now
	if last := s.clock.Last(); last.After(ref) {
		ref = last
	}

	candidates := make(map[models.ItemKey]cleanupCandidate)
	var remove []models.ItemKey
	var kept []*models.StoredItem

	add := func(item *models.StoredItem, rule *int) {
		candidates[item.Key()] = cleanupCandidate{version: item.Version, modified: item.LastModified, rule: rule}
		remove = append(remove, item.Key())
	}

	result := &CleanupResult{}
	for _, item := range items {
		switch {
		case !item.Synced:
			kept = append(kept, item)
		case opts.RemoveExpired && item.Metadata.Expired(now):
			add(item, &result.Expired)
		case opts.MaxAge != nil && olderThan(ref.Sub(item.LastModified), *opts.MaxAge):
			add(item, &result.Aged)
		default:
			kept = append(kept, item)
		}
	}

	if opts.MaxItems > 0 && len(kept) > opts.MaxItems {
		sort.SliceStable(kept, func(i, j int) bool {
			return kept[i].LastModified.Before(kept[j].LastModified)
		})

		excess := len(kept) - opts.MaxItems
		for _, item := range kept {
			if excess == 0 {
				break
			}
			if !item.Synced {
				continue
			}
			add(item, &result.OverCapacity)
			excess--
		}
	}

	if len(remove) == 0 {
		return result, nil
	}

	removed, err := s.storage.RemoveItems(ctx, remove, func(item *models.StoredItem) bool {
		c, ok := candidates[item.Key()]
		if !ok || !item.Synced || item.Version != c.version || !item.LastModified.Equal(c.modified) {
			return false
		}
		*c.rule++
		return true
	})
	if err != nil {
		return nil, fmt.Errorf("failed to remove items: %w", err)
	}
	if skipped := len(remove) - removed; skipped > 0 {
		s.logger.Info("Cleanup skipped items changed since listing", "skipped", skipped)
	}

	s.logger.Info("Cleanup completed",
		"expired", result.Expired,
		"aged", result.Aged,
		"over_capacity", result.OverCapacity)

	return result, nil
}

type cleanupCandidate struct {
	version  int64
	modified time.Time
	rule     *int
}

// olderThan treats a zero limit as "every item up to now"
func olderThan(age, limit time.Duration) bool {
	if limit == 0 {
		return age >= 0
	}
	return age > limit
}
