package boltdb

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/iudanet/maintkeeper/internal/models"
)

func TestStorage_Intents_AppendOnlyOrder(t *testing.T) {
	store := createTestStorage(t)
	ctx := context.Background()
	key := models.ItemKey{Collection: "work-orders", ID: "wo-1"}

	require.NoError(t, store.PutItem(ctx, createTestItem(key.Collection, key.ID, 1, false),
		&models.SyncIntent{Collection: key.Collection, ID: key.ID, Operation: models.OperationCreate}))

	// Повторные мутации одного ключа не схлопываются
	for i := 0; i < 3; i++ {
		_, err := store.ModifyItem(ctx, key, func(item *models.StoredItem) (*models.SyncIntent, error) {
			item.Version++
			return &models.SyncIntent{Collection: key.Collection, ID: key.ID, Operation: models.OperationUpdate}, nil
		})
		require.NoError(t, err)
	}

	intents, err := store.ListIntents(ctx, 0)
	require.NoError(t, err)
	require.Len(t, intents, 4)

	for i, intent := range intents {
		assert.Equal(t, uint64(i+1), intent.Seq)
	}
	assert.Equal(t, models.OperationCreate, intents[0].Operation)
	assert.Equal(t, models.OperationUpdate, intents[3].Operation)

	tail, err := store.ListIntents(ctx, 2)
	require.NoError(t, err)
	require.Len(t, tail, 2)
	assert.Equal(t, uint64(3), tail[0].Seq)
}

func TestStorage_CompactIntents(t *testing.T) {
	store := createTestStorage(t)
	ctx := context.Background()

	for _, id := range []string{"a", "b", "c", "d"} {
		require.NoError(t, store.PutItem(ctx, createTestItem("assets", id, 1, false),
			&models.SyncIntent{Collection: "assets", ID: id, Operation: models.OperationCreate}))
	}

	removed, err := store.CompactIntents(ctx, 3)
	require.NoError(t, err)
	assert.Equal(t, 2, removed)

	count, err := store.CountIntents(ctx)
	require.NoError(t, err)
	assert.Equal(t, 2, count)

	// Последовательность не сбрасывается после компактизации
	require.NoError(t, store.PutItem(ctx, createTestItem("assets", "e", 1, false),
		&models.SyncIntent{Collection: "assets", ID: "e", Operation: models.OperationCreate}))

	intents, err := store.ListIntents(ctx, 0)
	require.NoError(t, err)
	require.Len(t, intents, 3)
	assert.Equal(t, uint64(3), intents[0].Seq)
	assert.Equal(t, uint64(5), intents[2].Seq)
}
