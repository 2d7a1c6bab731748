package store

import (
	"context"
	"fmt"
	"time"
)

// Stats aggregates storage usage and sync backlog
type Stats struct {
	OldestItem       *time.Time `json:"oldestItem,omitempty"`
	NewestItem       *time.Time `json:"newestItem,omitempty"`
	OldestConflict   *time.Time `json:"oldestConflict,omitempty"`
	TotalItems       int        `json:"totalItems"`
	TotalSize        int        `json:"totalSize"`
	CompressedSize   int        `json:"compressedSize"`
	CompressionRatio float64    `json:"compressionRatio"`
	UnsyncedItems    int        `json:"unsyncedItems"`
	PendingDeletes   int        `json:"pendingDeletes"`
	PendingIntents   int        `json:"pendingIntents"`
	Conflicts        int        `json:"conflicts"`
}

// Stats returns aggregates for collection, or for the whole store if empty.
// PendingIntents always counts the whole log.
func (s *Store) Stats(ctx context.Context, collection string) (*Stats, error) {
	items, err := s.storage.ListItems(ctx, collection)
	if err != nil {
		return nil, fmt.Errorf("failed to list items: %w", err)
	}

	stats := &Stats{TotalItems: len(items)}

	for _, item := range items {
		stats.TotalSize += item.RawSize
		stats.CompressedSize += item.CompressedSize
		if !item.Synced {
			stats.UnsyncedItems++
		}

		created := item.CreatedAt
		if stats.OldestItem == nil || created.Before(*stats.OldestItem) {
			stats.OldestItem = &created
		}
		if stats.NewestItem == nil || created.After(*stats.NewestItem) {
			stats.NewestItem = &created
		}
	}

	if stats.TotalSize > 0 {
		stats.CompressionRatio = 1 - float64(stats.CompressedSize)/float64(stats.TotalSize)
	}

	tombstones, err := s.storage.ListTombstones(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list tombstones: %w", err)
	}
	for _, tombstone := range tombstones {
		if collection == "" || tombstone.Collection == collection {
			stats.PendingDeletes++
		}
	}

	conflicts, err := s.storage.ListConflicts(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list conflicts: %w", err)
	}
	for _, conflict := range conflicts {
		if collection != "" && conflict.Collection != collection {
			continue
		}
		stats.Conflicts++
		detected := conflict.DetectedAt
		if stats.OldestConflict == nil || detected.Before(*stats.OldestConflict) {
			stats.OldestConflict = &detected
		}
	}

	stats.PendingIntents, err = s.storage.CountIntents(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to count intents: %w", err)
	}

	return stats, nil
}
