package sqlite

import (
	"context"
	"encoding/json"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/iudanet/maintkeeper/internal/models"
	"github.com/iudanet/maintkeeper/internal/server/storage"
)

var _ storage.ItemStorage = (*Storage)(nil)

func setupTestStorage(t *testing.T) *Storage {
	t.Helper()

	// Используем in-memory database для тестов
	s, err := New(context.Background(), ":memory:")
	require.NoError(t, err)

	t.Cleanup(func() {
		_ = s.Close()
	})

	return s
}

func newItem(collection, id string, version int64, data string) *models.RemoteItem {
	return &models.RemoteItem{
		Collection: collection,
		ID:         id,
		Data:       json.RawMessage(data),
		Version:    version,
		UpdatedAt:  time.Date(2026, 3, 1, 10, 0, 0, 0, time.UTC),
	}
}

func TestItemStorage_PutItem(t *testing.T) {
	ctx := context.Background()
	s := setupTestStorage(t)

	_, saved, err := s.PutItem(ctx, newItem("work-orders", "wo-1", 1, `{"status":"open"}`))
	require.NoError(t, err)
	require.True(t, saved)

	tests := []struct {
		name        string
		version     int64
		wantSaved   bool
		wantVersion int64
	}{
		{name: "same version rejected", version: 1, wantSaved: false, wantVersion: 1},
		{name: "older version rejected", version: 0, wantSaved: false, wantVersion: 1},
		{name: "newer version accepted", version: 2, wantSaved: true, wantVersion: 2},
		{name: "jump accepted", version: 10, wantSaved: true, wantVersion: 10},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			current, saved, err := s.PutItem(ctx, newItem("work-orders", "wo-1", tt.version, `{"status":"closed"}`))
			require.NoError(t, err)
			assert.Equal(t, tt.wantSaved, saved)
			assert.Equal(t, tt.wantVersion, current.Version)

			stored, err := s.GetItem(ctx, "work-orders", "wo-1")
			require.NoError(t, err)
			assert.Equal(t, tt.wantVersion, stored.Version)
		})
	}
}

func TestItemStorage_PutItem_RejectedReturnsStored(t *testing.T) {
	ctx := context.Background()
	s := setupTestStorage(t)

	_, _, err := s.PutItem(ctx, newItem("assets", "a-1", 5, `{"name":"pump"}`))
	require.NoError(t, err)

	current, saved, err := s.PutItem(ctx, newItem("assets", "a-1", 3, `{"name":"valve"}`))
	require.NoError(t, err)
	assert.False(t, saved)
	assert.JSONEq(t, `{"name":"pump"}`, string(current.Data))
	assert.Equal(t, time.Date(2026, 3, 1, 10, 0, 0, 0, time.UTC), current.UpdatedAt)
}

func TestItemStorage_GetItem_NotFound(t *testing.T) {
	s := setupTestStorage(t)

	_, err := s.GetItem(context.Background(), "assets", "missing")
	assert.ErrorIs(t, err, storage.ErrItemNotFound)
}

func TestItemStorage_ListItems(t *testing.T) {
	ctx := context.Background()
	s := setupTestStorage(t)

	for _, item := range []*models.RemoteItem{
		newItem("assets", "b", 1, `{"n":2}`),
		newItem("assets", "a", 1, `{"n":1}`),
		newItem("work:orders", "a", 1, `{"n":3}`),
	} {
		_, _, err := s.PutItem(ctx, item)
		require.NoError(t, err)
	}

	items, err := s.ListItems(ctx, "assets")
	require.NoError(t, err)
	require.Len(t, items, 2)
	assert.Equal(t, "a", items[0].ID)
	assert.Equal(t, "b", items[1].ID)

	items, err = s.ListItems(ctx, "work:orders")
	require.NoError(t, err)
	require.Len(t, items, 1)
	assert.JSONEq(t, `{"n":3}`, string(items[0].Data))

	items, err = s.ListItems(ctx, "empty")
	require.NoError(t, err)
	assert.NotNil(t, items)
	assert.Empty(t, items)
}

func TestItemStorage_DeleteItem(t *testing.T) {
	ctx := context.Background()
	s := setupTestStorage(t)

	_, _, err := s.PutItem(ctx, newItem("assets", "a-1", 4, `{}`))
	require.NoError(t, err)

	current, deleted, err := s.DeleteItem(ctx, "assets", "a-1", 3)
	require.NoError(t, err)
	assert.False(t, deleted)
	assert.Equal(t, int64(4), current.Version)

	_, deleted, err = s.DeleteItem(ctx, "assets", "a-1", 4)
	require.NoError(t, err)
	assert.True(t, deleted)

	_, err = s.GetItem(ctx, "assets", "a-1")
	assert.ErrorIs(t, err, storage.ErrItemNotFound)

	_, _, err = s.DeleteItem(ctx, "assets", "a-1", 4)
	assert.ErrorIs(t, err, storage.ErrItemNotFound)

	// После удаления ключ можно создать заново с любой версией
	_, saved, err := s.PutItem(ctx, newItem("assets", "a-1", 1, `{}`))
	require.NoError(t, err)
	assert.True(t, saved)
}

func TestNew_FileDatabase(t *testing.T) {
	ctx := context.Background()
	path := filepath.Join(t.TempDir(), "server.db")

	s, err := New(ctx, path)
	require.NoError(t, err)
	_, _, err = s.PutItem(ctx, newItem("assets", "a-1", 1, `{"name":"pump"}`))
	require.NoError(t, err)
	require.NoError(t, s.Close())

	// Повторное открытие не применяет миграции заново и сохраняет данные
	s, err = New(ctx, path)
	require.NoError(t, err)
	defer func() {
		_ = s.Close()
	}()

	require.NoError(t, s.Ping(ctx))

	item, err := s.GetItem(ctx, "assets", "a-1")
	require.NoError(t, err)
	assert.Equal(t, int64(1), item.Version)
}
