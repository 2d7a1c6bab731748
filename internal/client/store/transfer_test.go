package store

import (
	"context"
	"encoding/json"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/iudanet/maintkeeper/internal/models"
)

func TestStore_ExportImport(t *testing.T) {
	src := newTestEnv(t)
	ctx := context.Background()

	require.NoError(t, src.store.Save(ctx, "work-orders", "wo-1",
		map[string]any{"title": "Fix pump", "hours": 2.5},
		&models.ItemMetadata{Priority: models.PriorityHigh, Tags: []string{"hvac"}}))
	require.NoError(t, src.store.Save(ctx, "work-orders", "wo-2", []any{"a", "b"}, nil))

	data, err := src.store.Export(ctx, "work-orders")
	require.NoError(t, err)

	var doc ExportDocument
	require.NoError(t, json.Unmarshal(data, &doc))
	assert.Equal(t, "work-orders", doc.Collection)
	assert.Len(t, doc.Items, 2)

	dst := newTestEnv(t)
	count, err := dst.store.Import(ctx, data, "archive")
	require.NoError(t, err)
	assert.Equal(t, 2, count)

	record, err := dst.store.GetOne(ctx, "archive", "wo-1")
	require.NoError(t, err)
	assert.Equal(t, map[string]any{"title": "Fix pump", "hours": 2.5}, record.Value)
	assert.Equal(t, models.PriorityHigh, record.Metadata.Priority)
	assert.Equal(t, []string{"hvac"}, record.Metadata.Tags)
	assert.Equal(t, int64(1), record.Metadata.Version)
	assert.False(t, record.Metadata.Synced)

	wrapped, err := dst.store.GetOne(ctx, "archive", "wo-2")
	require.NoError(t, err)
	assert.Equal(t, []any{"a", "b"}, wrapped.Value)
}

func TestStore_Import_BareArray(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()

	data := []byte(`[
		{"title": "no id"},
		{"title": "with id", "_metadata": {"id": "wo-9", "collection": "elsewhere"}}
	]`)

	count, err := env.store.Import(ctx, data, "work-orders")
	require.NoError(t, err)
	assert.Equal(t, 2, count)

	records, err := env.store.Get(ctx, "work-orders", "")
	require.NoError(t, err)
	require.Len(t, records, 2)

	var generated string
	for _, r := range records {
		_, hasMeta := r.Fields()["_metadata"]
		assert.False(t, hasMeta)
		if r.Metadata.ID != "wo-9" {
			generated = r.Metadata.ID
		}
	}
	assert.Len(t, generated, 36)
}

func TestStore_Import_Errors(t *testing.T) {
	tests := []struct {
		name         string
		data         string
		collection   string
		wantImported int
	}{
		{name: "malformed json", data: `{"items": [`, collection: "x"},
		{name: "not a document", data: `42`, collection: "x"},
		{name: "document without items", data: `{"exportedAt": "2026-01-01T00:00:00Z"}`, collection: "x"},
		{name: "non-object record", data: `[{"a": 1}, 5]`, collection: "x"},
		{name: "no target collection", data: `[{"a": 1, "_metadata": {"collection": "c"}}, {"b": 2}]`, wantImported: 1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			env := newTestEnv(t)

			count, err := env.store.Import(context.Background(), []byte(tt.data), tt.collection)
			require.Error(t, err)

			var importErr *ImportError
			require.True(t, errors.As(err, &importErr))
			assert.Equal(t, tt.wantImported, importErr.Imported)
			assert.Equal(t, tt.wantImported, count)
		})
	}
}

func TestRecord_JSON(t *testing.T) {
	record := Record{
		Value:    map[string]any{"title": "x"},
		Metadata: RecordMetadata{ID: "wo-1", Collection: "work-orders", Version: 3},
	}

	data, err := json.Marshal(record)
	require.NoError(t, err)

	var decoded Record
	require.NoError(t, json.Unmarshal(data, &decoded))
	assert.Equal(t, record.Value, decoded.Value)
	assert.Equal(t, record.Key(), decoded.Key())
	assert.Equal(t, int64(3), decoded.Metadata.Version)

	scalar := Record{Value: "text", Metadata: RecordMetadata{ID: "n-1"}}
	data, err = json.Marshal(scalar)
	require.NoError(t, err)
	assert.Contains(t, string(data), `"value":"text"`)

	require.NoError(t, json.Unmarshal(data, &decoded))
	assert.Equal(t, "text", decoded.Value)
}
