package boltdb

import (
	"context"
	"encoding/json"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/iudanet/maintkeeper/internal/client/storage"
	"github.com/iudanet/maintkeeper/internal/models"
)

func createTestConflict(key models.ItemKey) *models.Conflict {
	return &models.Conflict{
		Collection:    key.Collection,
		ID:            key.ID,
		ConflictType:  models.ConflictTypeUpdate,
		LocalData:     json.RawMessage(`{"title":"local"}`),
		RemoteData:    json.RawMessage(`{"title":"remote"}`),
		LocalVersion:  2,
		RemoteVersion: 5,
		DetectedAt:    time.Date(2026, 3, 1, 10, 0, 0, 0, time.UTC),
	}
}

func TestStorage_Conflicts(t *testing.T) {
	store := createTestStorage(t)
	ctx := context.Background()
	key := models.ItemKey{Collection: "work-orders", ID: "wo-1"}

	_, err := store.GetConflict(ctx, key)
	assert.ErrorIs(t, err, storage.ErrConflictNotFound)

	require.NoError(t, store.SaveConflict(ctx, createTestConflict(key)))

	got, err := store.GetConflict(ctx, key)
	require.NoError(t, err)
	assert.Equal(t, int64(5), got.RemoteVersion)
	assert.JSONEq(t, `{"title":"remote"}`, string(got.RemoteData))

	// Повторное сохранение заменяет конфликт
	replacement := createTestConflict(key)
	replacement.RemoteVersion = 6
	require.NoError(t, store.SaveConflict(ctx, replacement))

	conflicts, err := store.ListConflicts(ctx)
	require.NoError(t, err)
	require.Len(t, conflicts, 1)
	assert.Equal(t, int64(6), conflicts[0].RemoteVersion)
}

func TestStorage_ResolveConflict(t *testing.T) {
	store := createTestStorage(t)
	ctx := context.Background()
	key := models.ItemKey{Collection: "work-orders", ID: "wo-1"}

	err := store.ResolveConflict(ctx, key, nil, nil, nil)
	assert.ErrorIs(t, err, storage.ErrConflictNotFound)

	require.NoError(t, store.PutItem(ctx, createTestItem(key.Collection, key.ID, 2, false), nil))
	require.NoError(t, store.DeleteItem(ctx, key, nil, &models.Tombstone{Collection: key.Collection, ID: key.ID, Version: 2}))
	require.NoError(t, store.SaveConflict(ctx, createTestConflict(key)))

	resolved := createTestItem(key.Collection, key.ID, 5, true)
	require.NoError(t, store.ResolveConflict(ctx, key, resolved,
		&models.SyncIntent{Collection: key.Collection, ID: key.ID, Operation: models.OperationUpdate}, nil))

	item, err := store.GetItem(ctx, key)
	require.NoError(t, err)
	assert.Equal(t, int64(5), item.Version)
	assert.True(t, item.Synced)

	conflicts, err := store.ListConflicts(ctx)
	require.NoError(t, err)
	assert.Empty(t, conflicts)

	tombstones, err := store.ListTombstones(ctx)
	require.NoError(t, err)
	assert.Empty(t, tombstones)
}

func TestStorage_ResolveConflict_KeepDelete(t *testing.T) {
	store := createTestStorage(t)
	ctx := context.Background()
	key := models.ItemKey{Collection: "work-orders", ID: "wo-1"}

	require.NoError(t, store.PutItem(ctx, createTestItem(key.Collection, key.ID, 2, true), nil))
	require.NoError(t, store.DeleteItem(ctx, key, nil, &models.Tombstone{Collection: key.Collection, ID: key.ID, Version: 2}))

	conflict := createTestConflict(key)
	conflict.ConflictType = models.ConflictTypeDelete
	require.NoError(t, store.SaveConflict(ctx, conflict))

	require.NoError(t, store.ResolveConflict(ctx, key, nil, nil,
		&models.Tombstone{Collection: key.Collection, ID: key.ID, Version: 5}))

	_, err := store.GetItem(ctx, key)
	assert.ErrorIs(t, err, storage.ErrItemNotFound)

	tombstones, err := store.ListTombstones(ctx)
	require.NoError(t, err)
	require.Len(t, tombstones, 1)
	assert.Equal(t, int64(5), tombstones[0].Version)
}

func TestStorage_Tombstones(t *testing.T) {
	store := createTestStorage(t)
	ctx := context.Background()
	key := models.ItemKey{Collection: "assets", ID: "a-1"}

	assert.ErrorIs(t, store.DeleteTombstone(ctx, key), storage.ErrTombstoneNotFound)
	assert.ErrorIs(t, store.RecordTombstoneFailure(ctx, key, "x"), storage.ErrTombstoneNotFound)

	require.NoError(t, store.PutItem(ctx, createTestItem(key.Collection, key.ID, 1, true), nil))
	require.NoError(t, store.DeleteItem(ctx, key, nil, &models.Tombstone{Collection: key.Collection, ID: key.ID, Version: 1}))

	require.NoError(t, store.RecordTombstoneFailure(ctx, key, "connection refused"))
	require.NoError(t, store.RecordTombstoneFailure(ctx, key, "timeout"))

	tombstones, err := store.ListTombstones(ctx)
	require.NoError(t, err)
	require.Len(t, tombstones, 1)
	assert.Equal(t, 2, tombstones[0].Attempts)
	assert.Equal(t, "timeout", tombstones[0].LastError)

	require.NoError(t, store.DeleteTombstone(ctx, key))

	tombstones, err = store.ListTombstones(ctx)
	require.NoError(t, err)
	assert.Empty(t, tombstones)
}
