package cli

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/iudanet/maintkeeper/internal/client/iocli"
	"github.com/iudanet/maintkeeper/internal/client/storage/boltdb"
	"github.com/iudanet/maintkeeper/internal/client/sync"
	"github.com/iudanet/maintkeeper/internal/config"
	"github.com/iudanet/maintkeeper/internal/models"
)

func newTestCli(t *testing.T) (*Cli, *bytes.Buffer) {
	t.Helper()

	out := &bytes.Buffer{}
	c := New(iocli.NewStreams(strings.NewReader(""), out), BuildInfo{Version: "1.2.3", BuildDate: "2026-10-01", GitCommit: "abc123"})
	c.cfg = config.Default()
	c.cfg.Store.Path = filepath.Join(t.TempDir(), "cli.db")
	c.logger = slog.New(slog.NewTextHandler(io.Discard, nil))
	t.Cleanup(func() { _ = c.Close() })

	return c, out
}

// execute запускает команду и возвращает ее вывод
func execute(t *testing.T, c *Cli, out *bytes.Buffer, args ...string) (string, error) {
	t.Helper()
	return executeContext(context.Background(), t, c, out, args...)
}

func executeContext(ctx context.Context, t *testing.T, c *Cli, out *bytes.Buffer, args ...string) (string, error) {
	t.Helper()

	out.Reset()
	cmd := NewRootCommand(c)
	cmd.SetArgs(args)
	err := cmd.ExecuteContext(ctx)
	return out.String(), err
}

func TestCli_SaveGetUpdateDelete(t *testing.T) {
	c, out := newTestCli(t)

	output, err := execute(t, c, out, "save", "work-orders", "wo-1", `{"title":"Replace pump seal","hours":2}`, "--priority", "high", "--tag", "pump")
	require.NoError(t, err)
	assert.Contains(t, output, "Saved work-orders:wo-1")

	output, err = execute(t, c, out, "update", "work-orders", "wo-1", `{"hours":3}`)
	require.NoError(t, err)
	assert.Contains(t, output, "Updated work-orders:wo-1")

	output, err = execute(t, c, out, "get", "work-orders", "wo-1")
	require.NoError(t, err)

	var record map[string]any
	require.NoError(t, json.Unmarshal([]byte(output), &record))
	assert.Equal(t, "Replace pump seal", record["title"])
	assert.Equal(t, float64(3), record["hours"])

	meta, ok := record["_metadata"].(map[string]any)
	require.True(t, ok)
	assert.Equal(t, float64(2), meta["version"])
	assert.Equal(t, "high", meta["priority"])
	assert.Equal(t, []any{"pump"}, meta["tags"])

	output, err = execute(t, c, out, "get", "work-orders")
	require.NoError(t, err)
	var records []map[string]any
	require.NoError(t, json.Unmarshal([]byte(output), &records))
	assert.Len(t, records, 1)

	output, err = execute(t, c, out, "delete", "work-orders", "wo-1")
	require.NoError(t, err)
	assert.Contains(t, output, "Deleted work-orders:wo-1")

	_, err = execute(t, c, out, "get", "work-orders", "wo-1")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "record not found")
}

func TestCli_ArgumentErrors(t *testing.T) {
	tests := []struct {
		name    string
		args    []string
		wantErr string
	}{
		{name: "invalid json", args: []string{"save", "assets", "a-1", "{broken"}, wantErr: "valid JSON"},
		{name: "invalid priority", args: []string{"save", "assets", "a-1", "1", "--priority", "urgent"}, wantErr: "invalid priority"},
		{name: "update missing", args: []string{"update", "assets", "nope", "{}"}, wantErr: "record not found"},
		{name: "delete missing", args: []string{"delete", "assets", "nope"}, wantErr: "record not found"},
		{name: "missing args", args: []string{"save", "assets"}, wantErr: "accepts 3 arg(s)"},
		{name: "sync without endpoint", args: []string{"sync"}, wantErr: "endpoint is not configured"},
		{name: "resolve bad use", args: []string{"conflicts", "resolve", "assets", "a-1", "--use", "newest"}, wantErr: "invalid --use"},
		{name: "resolve merged without value", args: []string{"conflicts", "resolve", "assets", "a-1", "--use", "merged"}, wantErr: "--value is required"},
		{name: "resolve missing conflict", args: []string{"conflicts", "resolve", "assets", "a-1", "--use", "local"}, wantErr: "no pending conflict"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c, out := newTestCli(t)

			_, err := execute(t, c, out, tt.args...)
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.wantErr)
		})
	}
}

func TestCli_UnsyncedAndStats(t *testing.T) {
	c, out := newTestCli(t)

	output, err := execute(t, c, out, "unsynced")
	require.NoError(t, err)
	assert.Contains(t, output, "Nothing to sync.")

	_, err = execute(t, c, out, "save", "assets", "a-1", `{"name":"pump"}`)
	require.NoError(t, err)
	_, err = execute(t, c, out, "save", "work-orders", "wo-1", `{"title":"Fix"}`)
	require.NoError(t, err)

	output, err = execute(t, c, out, "unsynced", "--collection", "assets")
	require.NoError(t, err)
	assert.Contains(t, output, "assets:a-1")
	assert.NotContains(t, output, "work-orders:wo-1")
	assert.Contains(t, output, "Total: 1")

	output, err = execute(t, c, out, "stats")
	require.NoError(t, err)
	assert.Contains(t, output, "Items:             2")
	assert.Contains(t, output, "Unsynced:          2")
	assert.Contains(t, output, "Last sync:         never")

	output, err = execute(t, c, out, "--json", "stats")
	require.NoError(t, err)
	var stats map[string]any
	require.NoError(t, json.Unmarshal([]byte(output), &stats))
	assert.Equal(t, float64(2), stats["totalItems"])
}

func TestCli_SyncAndCleanup(t *testing.T) {
	var puts int
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		puts++
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte(`{"version": 7}`))
	}))
	defer server.Close()

	c, out := newTestCli(t)

	_, err := execute(t, c, out, "save", "assets", "a-1", `{"name":"pump"}`)
	require.NoError(t, err)

	output, err := execute(t, c, out, "sync", "--endpoint", server.URL)
	require.NoError(t, err)
	assert.Contains(t, output, "Synchronization completed")
	assert.Contains(t, output, "Synced:    1")
	assert.Equal(t, 1, puts)

	output, err = execute(t, c, out, "cleanup", "--max-age", "0s")
	require.NoError(t, err)
	assert.Contains(t, output, "Removed 1 records")

	output, err = execute(t, c, out, "stats")
	require.NoError(t, err)
	assert.Contains(t, output, "Items:             0")
	assert.NotContains(t, output, "Last sync:         never")
}

func TestCli_ConflictFlow(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusConflict)
		_, _ = w.Write([]byte(`{"data": {"title": "Remote title"}, "version": 4}`))
	}))
	defer server.Close()

	c, out := newTestCli(t)

	_, err := execute(t, c, out, "save", "work-orders", "wo-1", `{"title":"Local title"}`)
	require.NoError(t, err)

	output, err := execute(t, c, out, "sync", "--endpoint", server.URL)
	require.NoError(t, err)
	assert.Contains(t, output, "Conflict:  work-orders:wo-1")
	assert.Contains(t, output, "pending")

	output, err = execute(t, c, out, "conflicts", "list")
	require.NoError(t, err)
	assert.Contains(t, output, "work-orders:wo-1")
	assert.Contains(t, output, `"Remote title"`)

	output, err = execute(t, c, out, "conflicts", "resolve", "work-orders", "wo-1", "--use", "remote")
	require.NoError(t, err)
	assert.Contains(t, output, "Resolved work-orders:wo-1 with remote")

	output, err = execute(t, c, out, "get", "work-orders", "wo-1")
	require.NoError(t, err)
	assert.Contains(t, output, "Remote title")

	output, err = execute(t, c, out, "conflicts", "list")
	require.NoError(t, err)
	assert.Contains(t, output, "No pending conflicts.")
}

func TestCli_SyncServiceFailure(t *testing.T) {
	c, out := newTestCli(t)
	c.cfg.Sync.Endpoint = "http://unused"
	c.syncService = &sync.ServiceMock{
		SyncFunc: func(ctx context.Context, endpoint string, opts sync.Options) (*sync.SyncResult, error) {
			return &sync.SyncResult{Success: false}, errors.New("store unavailable")
		},
	}

	_, err := execute(t, c, out, "sync", "--policy", "remote", "--batch-size", "5")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "synchronization failed")

	mock := c.syncService.(*sync.ServiceMock)
	require.Len(t, mock.SyncCalls(), 1)
	call := mock.SyncCalls()[0]
	assert.Equal(t, "http://unused", call.Endpoint)
	assert.Equal(t, sync.PolicyRemote, call.Opts.ConflictResolution)
	assert.Equal(t, 5, call.Opts.BatchSize)
	assert.Equal(t, 3, call.Opts.MaxRetries)
}

func TestCli_ExportImport(t *testing.T) {
	c, out := newTestCli(t)

	_, err := execute(t, c, out, "save", "assets", "a-1", `{"name":"pump"}`)
	require.NoError(t, err)
	_, err = execute(t, c, out, "save", "assets", "a-2", `"plain string"`)
	require.NoError(t, err)

	path := filepath.Join(t.TempDir(), "assets.json")
	output, err := execute(t, c, out, "export", "assets", "--out", path)
	require.NoError(t, err)
	assert.Contains(t, output, "Exported assets")

	output, err = execute(t, c, out, "import", path, "--collection", "assets-copy")
	require.NoError(t, err)
	assert.Contains(t, output, "Imported 2 records")

	output, err = execute(t, c, out, "get", "assets-copy", "a-1")
	require.NoError(t, err)
	assert.Contains(t, output, "pump")

	broken := filepath.Join(t.TempDir(), "broken.json")
	require.NoError(t, os.WriteFile(broken, []byte(`{"not":"an export"}`), 0o600))
	_, err = execute(t, c, out, "import", broken)
	assert.Error(t, err)
}

func TestCli_ValidateAndRepair(t *testing.T) {
	c, out := newTestCli(t)
	minLen := float64(3)
	c.cfg.Integrity.Collections = map[string]config.CollectionRules{
		"work-orders": {
			Fields: []config.FieldConfig{
				{Name: "title", Type: "string", Required: true, Min: &minLen},
				{Name: "status", Type: "string", Enum: []any{"open", "closed"}},
			},
			References: []config.ReferenceConfig{
				{Field: "assetId", Collection: "assets", Required: true},
			},
		},
	}

	_, err := execute(t, c, out, "save", "assets", "a-1", `{"name":"pump"}`)
	require.NoError(t, err)
	_, err = execute(t, c, out, "save", "work-orders", "wo-1", `{"title":"Fix pump","status":"open","assetId":"a-1"}`)
	require.NoError(t, err)

	output, err := execute(t, c, out, "validate", "work-orders")
	require.NoError(t, err)
	assert.Contains(t, output, "work-orders: healthy")

	_, err = execute(t, c, out, "save", "work-orders", "wo-2", `{"title":"Fx","status":"lost","assetId":"a-9"}`)
	require.NoError(t, err)

	output, err = execute(t, c, out, "validate", "work-orders")
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrIntegrityCritical)
	assert.Contains(t, output, "work-orders: critical")
	assert.Contains(t, output, "wo-2.title")
	assert.Contains(t, output, "wo-2.status")
	assert.Contains(t, output, "[failed] reference wo-2.assetId")

	// Без аргумента проверяются все коллекции
	output, err = execute(t, c, out, "--json", "validate")
	require.Error(t, err)
	var reports []map[string]any
	require.NoError(t, json.Unmarshal([]byte(output), &reports))
	assert.Len(t, reports, 2)

	output, err = execute(t, c, out, "repair", "work-orders")
	require.NoError(t, err)
	assert.Contains(t, output, "Repaired: 0")
}

func TestCli_CorruptionRecordedInHistory(t *testing.T) {
	c, out := newTestCli(t)
	ctx := context.Background()

	_, err := execute(t, c, out, "save", "assets", "a-1", `{"name":"pump"}`)
	require.NoError(t, err)
	require.NoError(t, c.Close())

	st, err := boltdb.New(ctx, c.cfg.Store.Path)
	require.NoError(t, err)
	_, err = st.ModifyItem(ctx, models.ItemKey{Collection: "assets", ID: "a-1"}, func(item *models.StoredItem) (*models.SyncIntent, error) {
		item.Checksum = "deadbeef"
		return nil, nil
	})
	require.NoError(t, err)
	require.NoError(t, st.Close())

	_, err = execute(t, c, out, "get", "assets", "a-1")
	require.NoError(t, err)

	history := c.validator.History()
	require.Len(t, history, 1)
	assert.Equal(t, models.CheckTypeChecksum, history[0].Type)
	assert.Equal(t, models.CheckWarning, history[0].Status)
	assert.Equal(t, "a-1", history[0].ItemID)

	_, err = execute(t, c, out, "update", "assets", "a-1", `{"name":"valve"}`)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "corrupted")
	assert.Len(t, c.validator.History(), 2)
}

func TestCli_Intents(t *testing.T) {
	c, out := newTestCli(t)

	for _, id := range []string{"a-1", "a-2", "a-3"} {
		_, err := execute(t, c, out, "save", "assets", id, "1")
		require.NoError(t, err)
	}

	output, err := execute(t, c, out, "intents")
	require.NoError(t, err)
	assert.Contains(t, output, "assets:a-3")
	assert.Contains(t, output, "Total: 3")

	output, err = execute(t, c, out, "intents", "--after", "2")
	require.NoError(t, err)
	assert.Contains(t, output, "Total: 1")

	output, err = execute(t, c, out, "intents", "--compact-before", "3")
	require.NoError(t, err)
	assert.Contains(t, output, "Compacted 2 intents")

	output, err = execute(t, c, out, "--json", "intents")
	require.NoError(t, err)
	var intents []models.SyncIntent
	require.NoError(t, json.Unmarshal([]byte(output), &intents))
	require.Len(t, intents, 1)
	assert.Equal(t, uint64(3), intents[0].Seq)
}

func TestCli_Daemon(t *testing.T) {
	c, out := newTestCli(t)
	c.cfg.Cleanup.Schedule = "* * * * * *"
	c.cfg.Integrity.Schedule = "0 0 * * * *"

	ctx, cancel := context.WithTimeout(context.Background(), 1500*time.Millisecond)
	defer cancel()

	output, err := executeContext(ctx, t, c, out, "daemon")
	require.NoError(t, err)
	assert.Contains(t, output, "Scheduled cleanup")
	assert.Contains(t, output, "Scheduled validate")
	assert.Contains(t, output, "Daemon stopped")
}

func TestCli_DaemonWithoutJobs(t *testing.T) {
	c, out := newTestCli(t)

	_, err := execute(t, c, out, "daemon")
	assert.ErrorIs(t, err, ErrNoJobs)
}

func TestCli_Version(t *testing.T) {
	c, out := newTestCli(t)

	output, err := execute(t, c, out, "version")
	require.NoError(t, err)
	assert.Contains(t, output, "Version:    1.2.3")
	assert.Contains(t, output, "Git Commit: abc123")
}

func TestRegisterRules_Invalid(t *testing.T) {
	tests := []struct {
		name  string
		field config.FieldConfig
	}{
		{name: "unknown type", field: config.FieldConfig{Name: "title", Type: "text"}},
		{name: "bad pattern", field: config.FieldConfig{Name: "sku", Type: "string", Pattern: "("}},
		{name: "bad items", field: config.FieldConfig{Name: "parts", Type: "array", Items: &config.FieldConfig{Type: "list"}}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := buildField(&tt.field)
			assert.Error(t, err)
		})
	}
}
