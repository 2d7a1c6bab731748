package sync

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"strings"
	stdsync "sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	httpClient "github.com/iudanet/maintkeeper/internal/client/api"
	"github.com/iudanet/maintkeeper/internal/client/storage/boltdb"
	"github.com/iudanet/maintkeeper/internal/client/store"
	"github.com/iudanet/maintkeeper/internal/clock"
	"github.com/iudanet/maintkeeper/internal/codec"
	"github.com/iudanet/maintkeeper/internal/models"
	"github.com/iudanet/maintkeeper/pkg/api"
)

var _ LocalStore = (*store.Store)(nil)

func testLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func newTestStore(t *testing.T) *store.Store {
	t.Helper()
	ctx := context.Background()

	st, err := boltdb.New(ctx, filepath.Join(t.TempDir(), "sync.db"))
	require.NoError(t, err)
	t.Cleanup(func() { _ = st.Close() })

	cdc, err := codec.New(0)
	require.NoError(t, err)
	t.Cleanup(func() { _ = cdc.Close() })

	s, err := store.New(ctx, st, cdc, clock.New(), testLogger())
	require.NoError(t, err)
	return s
}

// request запрос, полученный тестовым сервером
type request struct {
	Method  string
	Path    string
	IfMatch string
	Body    map[string]any
}

// fakeRemote тестовый endpoint с ответами по пути
type fakeRemote struct {
	responses map[string]func(w http.ResponseWriter)
	requests  []request
	mu        stdsync.Mutex
}

func newFakeRemote(t *testing.T) (*fakeRemote, string) {
	t.Helper()

	f := &fakeRemote{responses: make(map[string]func(w http.ResponseWriter))}
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		req := request{Method: r.Method, Path: r.URL.Path, IfMatch: r.Header.Get(api.IfMatchHeader)}
		if r.Body != nil {
			_ = json.NewDecoder(r.Body).Decode(&req.Body)
		}

		f.mu.Lock()
		f.requests = append(f.requests, req)
		respond, ok := f.responses[r.Method+" "+r.URL.Path]
		f.mu.Unlock()

		if !ok {
			w.WriteHeader(http.StatusNoContent)
			return
		}
		respond(w)
	}))
	t.Cleanup(server.Close)

	return f, server.URL
}

func (f *fakeRemote) on(method, path string, status int, body string) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.responses[method+" "+path] = func(w http.ResponseWriter) {
		w.WriteHeader(status)
		_, _ = w.Write([]byte(body))
	}
}

func (f *fakeRemote) calls() []request {
	f.mu.Lock()
	defer f.mu.Unlock()
	return append([]request(nil), f.requests...)
}

func TestSync_PushesUnsynced(t *testing.T) {
	local := newTestStore(t)
	remote, endpoint := newFakeRemote(t)
	ctx := context.Background()

	require.NoError(t, local.Save(ctx, "work-orders", "wo-1", map[string]any{"title": "Fix pump"}, nil))
	require.NoError(t, local.Save(ctx, "work-orders", "wo-2", map[string]any{"title": "Oil motor"}, nil))
	require.NoError(t, local.Update(ctx, "work-orders", "wo-2", map[string]any{"title": "Oil motor now"}, nil))
	remote.on(http.MethodPut, "/work-orders/wo-2", http.StatusOK, `{"version": 12}`)

	service := NewService(local, nil, testLogger())
	result, err := service.Sync(ctx, endpoint, Options{})
	require.NoError(t, err)

	assert.True(t, result.Success)
	assert.Equal(t, 2, result.Synced)
	assert.Equal(t, 0, result.Failed)
	assert.Empty(t, result.Errors)

	calls := remote.calls()
	require.Len(t, calls, 2)
	assert.Equal(t, http.MethodPut, calls[0].Method)
	assert.Equal(t, `"1"`, calls[0].IfMatch)
	assert.Equal(t, "Fix pump", calls[0].Body["title"])
	assert.Equal(t, `"2"`, calls[1].IfMatch)

	record, err := local.GetOne(ctx, "work-orders", "wo-2")
	require.NoError(t, err)
	assert.True(t, record.Metadata.Synced)
	assert.Equal(t, int64(12), record.Metadata.Version)

	unsynced, err := local.GetUnsynced(ctx, "")
	require.NoError(t, err)
	assert.Empty(t, unsynced)

	lastSync, err := local.LastSyncTime(ctx)
	require.NoError(t, err)
	assert.False(t, lastSync.IsZero())
}

func TestSync_Batches(t *testing.T) {
	local := newTestStore(t)
	ctx := context.Background()

	for i := 0; i < 7; i++ {
		require.NoError(t, local.Save(ctx, "assets", string(rune('a'+i)), i, nil))
	}

	var pushed int
	mock := &RemoteMock{
		PutItemFunc: func(ctx context.Context, collection, id string, version int64, value any) (*api.PutResponse, error) {
			pushed++
			return nil, nil
		},
		DeleteItemFunc: func(ctx context.Context, collection, id string, version int64) error {
			return nil
		},
	}

	service := NewService(local, func(string) Remote { return mock }, testLogger())
	result, err := service.Sync(ctx, "http://unused", Options{BatchSize: 3})
	require.NoError(t, err)
	assert.Equal(t, 7, result.Synced)
	assert.Equal(t, 7, pushed)
}

func TestSync_EditDuringPushStaysUnsynced(t *testing.T) {
	tests := []struct {
		response *api.PutResponse
		name     string
	}{
		{name: "no version in response"},
		{name: "server echoes version", response: &api.PutResponse{Version: 1}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			local := newTestStore(t)
			ctx := context.Background()

			require.NoError(t, local.Save(ctx, "work-orders", "wo-1", map[string]any{"title": "Fix pump"}, nil))

			mock := &RemoteMock{
				PutItemFunc: func(ctx context.Context, collection, id string, version int64, value any) (*api.PutResponse, error) {
					// Правка приходит, пока PUT в пути
					require.NoError(t, local.Update(ctx, collection, id, map[string]any{"title": "edited during sync"}, nil))
					return tt.response, nil
				},
			}

			service := NewService(local, func(string) Remote { return mock }, testLogger())
			result, err := service.Sync(ctx, "http://unused", Options{})
			require.NoError(t, err)
			assert.Equal(t, 1, result.Synced)

			record, err := local.GetOne(ctx, "work-orders", "wo-1")
			require.NoError(t, err)
			assert.False(t, record.Metadata.Synced)
			assert.Equal(t, int64(2), record.Metadata.Version)
			assert.Equal(t, "edited during sync", record.Value.(map[string]any)["title"])

			unsynced, err := local.GetUnsynced(ctx, "")
			require.NoError(t, err)
			assert.Len(t, unsynced, 1)

			// Следующая синхронизация доставляет правку
			mock.PutItemFunc = func(ctx context.Context, collection, id string, version int64, value any) (*api.PutResponse, error) {
				return nil, nil
			}
			_, err = service.Sync(ctx, "http://unused", Options{})
			require.NoError(t, err)

			calls := mock.PutItemCalls()
			require.Len(t, calls, 2)
			assert.Equal(t, int64(2), calls[1].Version)
			assert.Equal(t, "edited during sync", calls[1].Value.(map[string]any)["title"])

			record, err = local.GetOne(ctx, "work-orders", "wo-1")
			require.NoError(t, err)
			assert.True(t, record.Metadata.Synced)
		})
	}
}

func TestSync_LocalPolicyEditDuringPush(t *testing.T) {
	local := newTestStore(t)
	ctx := context.Background()

	require.NoError(t, local.Save(ctx, "assets", "a-1", map[string]any{"name": "pump"}, nil))

	mock := &RemoteMock{
		PutItemFunc: func(ctx context.Context, collection, id string, version int64, value any) (*api.PutResponse, error) {
			require.NoError(t, local.Update(ctx, collection, id, map[string]any{"name": "valve"}, nil))
			return nil, &httpClient.ConflictError{Remote: api.ConflictResponse{Data: json.RawMessage(`{"name":"remote"}`), Version: 5}}
		},
	}

	service := NewService(local, func(string) Remote { return mock }, testLogger())
	_, err := service.Sync(ctx, "http://unused", Options{ConflictResolution: PolicyLocal})
	require.NoError(t, err)

	record, err := local.GetOne(ctx, "assets", "a-1")
	require.NoError(t, err)
	assert.False(t, record.Metadata.Synced)
	assert.Equal(t, int64(2), record.Metadata.Version)
	assert.Equal(t, "valve", record.Value.(map[string]any)["name"])
}

func TestSync_RemotePolicyOverwritesLocal(t *testing.T) {
	local := newTestStore(t)
	remote, endpoint := newFakeRemote(t)
	ctx := context.Background()

	require.NoError(t, local.Save(ctx, "work-orders", "wo-1", map[string]any{"title": "Fix pump"}, nil))
	remote.on(http.MethodPut, "/work-orders/wo-1", http.StatusConflict, `{"title": "Remote title"}`)

	service := NewService(local, nil, testLogger())
	result, err := service.Sync(ctx, endpoint, Options{ConflictResolution: PolicyRemote})
	require.NoError(t, err)

	assert.Equal(t, 1, result.Failed)
	require.Len(t, result.Conflicts, 1)
	assert.True(t, result.Conflicts[0].Resolved)
	assert.Equal(t, "remote", result.Conflicts[0].Resolution)

	record, err := local.GetOne(ctx, "work-orders", "wo-1")
	require.NoError(t, err)
	assert.Equal(t, "Remote title", record.Fields()["title"])
	assert.True(t, record.Metadata.Synced)

	conflicts, err := local.Conflicts(ctx)
	require.NoError(t, err)
	assert.Empty(t, conflicts)
}

func TestSync_RemotePolicyAdoptsRemoteVersion(t *testing.T) {
	local := newTestStore(t)
	remote, endpoint := newFakeRemote(t)
	ctx := context.Background()

	require.NoError(t, local.Save(ctx, "work-orders", "wo-1", map[string]any{"title": "Fix pump"}, &models.ItemMetadata{Priority: models.PriorityHigh}))
	remote.on(http.MethodPut, "/work-orders/wo-1", http.StatusConflict,
		`{"data": {"title": "Remote title"}, "version": 6, "updatedAt": "2026-03-01T10:00:00Z"}`)

	service := NewService(local, nil, testLogger())
	_, err := service.Sync(ctx, endpoint, Options{ConflictResolution: PolicyRemote})
	require.NoError(t, err)

	record, err := local.GetOne(ctx, "work-orders", "wo-1")
	require.NoError(t, err)
	assert.Equal(t, int64(6), record.Metadata.Version)
	assert.Equal(t, models.PriorityHigh, record.Metadata.Priority)
}

func TestSync_LocalPolicyMarksSynced(t *testing.T) {
	local := newTestStore(t)
	remote, endpoint := newFakeRemote(t)
	ctx := context.Background()

	require.NoError(t, local.Save(ctx, "work-orders", "wo-1", map[string]any{"title": "Fix pump"}, nil))
	remote.on(http.MethodPut, "/work-orders/wo-1", http.StatusConflict,
		`{"data": {"title": "Remote title"}, "version": 4}`)

	service := NewService(local, nil, testLogger())
	result, err := service.Sync(ctx, endpoint, Options{ConflictResolution: PolicyLocal})
	require.NoError(t, err)
	require.Len(t, result.Conflicts, 1)
	assert.True(t, result.Conflicts[0].Resolved)

	record, err := local.GetOne(ctx, "work-orders", "wo-1")
	require.NoError(t, err)
	assert.Equal(t, "Fix pump", record.Fields()["title"])
	assert.True(t, record.Metadata.Synced)
	assert.Equal(t, int64(4), record.Metadata.Version)

	// Локальная версия не отправляется повторно
	assert.Len(t, remote.calls(), 1)
}

func TestSync_ManualConflictStaysPending(t *testing.T) {
	local := newTestStore(t)
	remote, endpoint := newFakeRemote(t)
	ctx := context.Background()

	require.NoError(t, local.Save(ctx, "work-orders", "wo-1", map[string]any{"title": "Fix pump"}, nil))
	require.NoError(t, local.Update(ctx, "work-orders", "wo-1", map[string]any{"title": "Fix pump urgently"}, nil))
	remote.on(http.MethodPut, "/work-orders/wo-1", http.StatusConflict,
		`{"data": {"title": "Remote title"}, "version": 5}`)

	service := NewService(local, nil, testLogger())
	result, err := service.Sync(ctx, endpoint, Options{ConflictResolution: PolicyManual})
	require.NoError(t, err)

	assert.True(t, result.Success)
	assert.Equal(t, 1, result.Failed)
	require.Len(t, result.Conflicts, 1)
	ref := result.Conflicts[0]
	assert.Equal(t, models.ItemKey{Collection: "work-orders", ID: "wo-1"}, ref.Key)
	assert.Equal(t, models.ConflictTypeUpdate, ref.Type)
	assert.False(t, ref.Resolved)

	record, err := local.GetOne(ctx, "work-orders", "wo-1")
	require.NoError(t, err)
	assert.False(t, record.Metadata.Synced)

	conflict, err := local.Conflict(ctx, ref.Key)
	require.NoError(t, err)
	assert.Equal(t, int64(2), conflict.LocalVersion)
	assert.Equal(t, int64(5), conflict.RemoteVersion)
	assert.JSONEq(t, `{"title":"Fix pump urgently"}`, string(conflict.LocalData))
	assert.JSONEq(t, `{"title":"Remote title"}`, string(conflict.RemoteData))

	stats, err := local.Stats(ctx, "")
	require.NoError(t, err)
	assert.Equal(t, 1, stats.Conflicts)

	// Повторная синхронизация не трогает запись с ожидающим конфликтом
	result, err = service.Sync(ctx, endpoint, Options{})
	require.NoError(t, err)
	assert.Equal(t, 1, result.Skipped)
	assert.Len(t, remote.calls(), 1)
}

func TestSync_ManualResolver(t *testing.T) {
	local := newTestStore(t)
	remote, endpoint := newFakeRemote(t)
	ctx := context.Background()
	key := models.ItemKey{Collection: "work-orders", ID: "wo-1"}

	require.NoError(t, local.Save(ctx, key.Collection, key.ID, map[string]any{"title": "Fix pump", "hours": 1}, nil))
	remote.on(http.MethodPut, "/work-orders/wo-1", http.StatusConflict,
		`{"data": {"title": "Remote title", "hours": 3}, "version": 5}`)

	service := NewService(local, nil, testLogger())

	var seen *models.Conflict
	service.RegisterResolver(key, func(ctx context.Context, conflict *models.Conflict) (*Resolution, error) {
		seen = conflict
		res := UseMerged(map[string]any{"title": "Remote title", "hours": 4})
		return &res, nil
	})

	result, err := service.Sync(ctx, endpoint, Options{})
	require.NoError(t, err)
	require.NotNil(t, seen)
	require.Len(t, result.Conflicts, 1)
	assert.True(t, result.Conflicts[0].Resolved)
	assert.Equal(t, "merged", result.Conflicts[0].Resolution)

	record, err := local.GetOne(ctx, key.Collection, key.ID)
	require.NoError(t, err)
	assert.Equal(t, float64(4), record.Fields()["hours"])
	assert.Equal(t, int64(6), record.Metadata.Version)
	assert.False(t, record.Metadata.Synced)

	_, err = local.Conflict(ctx, key)
	assert.Error(t, err)
}

func TestSync_ResolverErrorKeepsConflict(t *testing.T) {
	local := newTestStore(t)
	remote, endpoint := newFakeRemote(t)
	ctx := context.Background()
	key := models.ItemKey{Collection: "work-orders", ID: "wo-1"}

	require.NoError(t, local.Save(ctx, key.Collection, key.ID, map[string]any{"title": "a"}, nil))
	remote.on(http.MethodPut, "/work-orders/wo-1", http.StatusConflict, `{"data": {"title": "b"}, "version": 2}`)

	service := NewService(local, nil, testLogger())
	service.RegisterResolver(key, func(context.Context, *models.Conflict) (*Resolution, error) {
		return nil, errors.New("operator unavailable")
	})

	result, err := service.Sync(ctx, endpoint, Options{})
	require.NoError(t, err)
	require.Len(t, result.Errors, 1)
	assert.Contains(t, result.Errors[0], "operator unavailable")
	assert.False(t, result.Conflicts[0].Resolved)

	_, err = local.Conflict(ctx, key)
	assert.NoError(t, err)
}

func TestService_ResolveConflict(t *testing.T) {
	tests := []struct {
		name        string
		resolution  Resolution
		wantTitle   string
		wantVersion int64
		wantSynced  bool
	}{
		{name: "use remote", resolution: UseRemote(), wantTitle: "Remote title", wantVersion: 5, wantSynced: true},
		{name: "use local", resolution: UseLocal(), wantTitle: "Fix pump", wantVersion: 6},
		{name: "merged", resolution: UseMerged(map[string]any{"title": "Both"}), wantTitle: "Both", wantVersion: 6},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			local := newTestStore(t)
			remote, endpoint := newFakeRemote(t)
			ctx := context.Background()
			key := models.ItemKey{Collection: "work-orders", ID: "wo-1"}

			require.NoError(t, local.Save(ctx, key.Collection, key.ID, map[string]any{"title": "Fix pump"}, nil))
			remote.on(http.MethodPut, "/work-orders/wo-1", http.StatusConflict,
				`{"data": {"title": "Remote title"}, "version": 5}`)

			service := NewService(local, nil, testLogger())
			_, err := service.Sync(ctx, endpoint, Options{})
			require.NoError(t, err)

			require.NoError(t, service.ResolveConflict(ctx, key, tt.resolution))

			record, err := local.GetOne(ctx, key.Collection, key.ID)
			require.NoError(t, err)
			assert.Equal(t, tt.wantTitle, record.Fields()["title"])
			assert.Equal(t, tt.wantVersion, record.Metadata.Version)
			assert.Equal(t, tt.wantSynced, record.Metadata.Synced)

			conflicts, err := local.Conflicts(ctx)
			require.NoError(t, err)
			assert.Empty(t, conflicts)
		})
	}
}

func TestService_ResolveConflict_NotFound(t *testing.T) {
	service := NewService(newTestStore(t), nil, testLogger())

	err := service.ResolveConflict(context.Background(), models.ItemKey{Collection: "a", ID: "b"}, UseLocal())
	assert.Error(t, err)
}

func TestSync_TransportFailures(t *testing.T) {
	local := newTestStore(t)
	remote, endpoint := newFakeRemote(t)
	ctx := context.Background()
	key := models.ItemKey{Collection: "work-orders", ID: "wo-1"}

	require.NoError(t, local.Save(ctx, key.Collection, key.ID, map[string]any{"title": "a"}, nil))
	require.NoError(t, local.Save(ctx, key.Collection, "wo-2", map[string]any{"title": "b"}, nil))
	remote.on(http.MethodPut, "/work-orders/wo-1", http.StatusInternalServerError, "boom")

	service := NewService(local, nil, testLogger())

	for attempt := 1; attempt <= 3; attempt++ {
		result, err := service.Sync(ctx, endpoint, Options{MaxRetries: 3})
		require.NoError(t, err)
		assert.Equal(t, 1, result.Failed)
		require.Len(t, result.Errors, 1)
		assert.Contains(t, result.Errors[0], "500")
	}

	// Лимит попыток исчерпан: запись пропускается, но остается несинхронизированной
	result, err := service.Sync(ctx, endpoint, Options{MaxRetries: 3})
	require.NoError(t, err)
	assert.Equal(t, 1, result.Skipped)
	assert.Equal(t, 0, result.Failed)

	var putsForItem int
	for _, c := range remote.calls() {
		if c.Path == "/work-orders/wo-1" {
			putsForItem++
		}
	}
	assert.Equal(t, 3, putsForItem)

	unsynced, err := local.GetUnsynced(ctx, "")
	require.NoError(t, err)
	require.Len(t, unsynced, 1)
	assert.Equal(t, 3, unsynced[0].SyncAttempts)
	assert.Contains(t, unsynced[0].LastError, "500")

	// Update сбрасывает счетчик попыток
	require.NoError(t, local.Update(ctx, key.Collection, key.ID, map[string]any{"title": "c"}, nil))
	remote.on(http.MethodPut, "/work-orders/wo-1", http.StatusOK, "")
	result, err = service.Sync(ctx, endpoint, Options{MaxRetries: 3})
	require.NoError(t, err)
	assert.Equal(t, 1, result.Synced)
}

func TestSync_Tombstones(t *testing.T) {
	local := newTestStore(t)
	remote, endpoint := newFakeRemote(t)
	ctx := context.Background()

	for _, id := range []string{"gone", "missing", "flaky"} {
		require.NoError(t, local.Save(ctx, "assets", id, id, nil))
	}
	service := NewService(local, nil, testLogger())
	_, err := service.Sync(ctx, endpoint, Options{})
	require.NoError(t, err)

	for _, id := range []string{"gone", "missing", "flaky"} {
		require.NoError(t, local.Delete(ctx, "assets", id))
	}
	remote.on(http.MethodDelete, "/assets/missing", http.StatusNotFound, "")
	remote.on(http.MethodDelete, "/assets/flaky", http.StatusServiceUnavailable, "")

	result, err := service.Sync(ctx, endpoint, Options{})
	require.NoError(t, err)
	assert.Equal(t, 2, result.Deleted)
	assert.Equal(t, 1, result.Failed)

	tombstones, err := local.Tombstones(ctx)
	require.NoError(t, err)
	require.Len(t, tombstones, 1)
	assert.Equal(t, "flaky", tombstones[0].ID)
	assert.Equal(t, 1, tombstones[0].Attempts)

	for _, c := range remote.calls() {
		if c.Method == http.MethodDelete {
			assert.Equal(t, `"1"`, c.IfMatch)
		}
	}
}

func TestSync_DeleteConflict(t *testing.T) {
	local := newTestStore(t)
	remote, endpoint := newFakeRemote(t)
	ctx := context.Background()
	key := models.ItemKey{Collection: "assets", ID: "a-1"}

	require.NoError(t, local.Save(ctx, key.Collection, key.ID, map[string]any{"name": "pump"}, nil))
	require.NoError(t, local.MarkSynced(ctx, key, nil))
	require.NoError(t, local.Delete(ctx, key.Collection, key.ID))
	remote.on(http.MethodDelete, "/assets/a-1", http.StatusConflict,
		`{"data": {"name": "pump v2"}, "version": 3}`)

	service := NewService(local, nil, testLogger())
	result, err := service.Sync(ctx, endpoint, Options{})
	require.NoError(t, err)
	require.Len(t, result.Conflicts, 1)
	assert.Equal(t, models.ConflictTypeDelete, result.Conflicts[0].Type)

	// Оставляем удаление: tombstone получает версию сервера
	require.NoError(t, service.ResolveConflict(ctx, key, UseLocal()))

	tombstones, err := local.Tombstones(ctx)
	require.NoError(t, err)
	require.Len(t, tombstones, 1)
	assert.Equal(t, int64(3), tombstones[0].Version)

	remote.on(http.MethodDelete, "/assets/a-1", http.StatusNoContent, "")
	result, err = service.Sync(ctx, endpoint, Options{})
	require.NoError(t, err)
	assert.Equal(t, 1, result.Deleted)

	calls := remote.calls()
	assert.Equal(t, `"3"`, calls[len(calls)-1].IfMatch)
}

func TestSync_DeleteConflict_RemotePolicyRestores(t *testing.T) {
	local := newTestStore(t)
	remote, endpoint := newFakeRemote(t)
	ctx := context.Background()
	key := models.ItemKey{Collection: "assets", ID: "a-1"}

	require.NoError(t, local.Save(ctx, key.Collection, key.ID, map[string]any{"name": "pump"}, nil))
	require.NoError(t, local.MarkSynced(ctx, key, nil))
	require.NoError(t, local.Delete(ctx, key.Collection, key.ID))
	remote.on(http.MethodDelete, "/assets/a-1", http.StatusConflict,
		`{"data": {"name": "pump v2"}, "version": 3}`)

	service := NewService(local, nil, testLogger())
	_, err := service.Sync(ctx, endpoint, Options{ConflictResolution: PolicyRemote})
	require.NoError(t, err)

	record, err := local.GetOne(ctx, key.Collection, key.ID)
	require.NoError(t, err)
	assert.Equal(t, "pump v2", record.Fields()["name"])
	assert.True(t, record.Metadata.Synced)

	tombstones, err := local.Tombstones(ctx)
	require.NoError(t, err)
	assert.Empty(t, tombstones)
}

func TestSync_EnumerationFailure(t *testing.T) {
	mock := &LocalStoreMock{
		GetUnsyncedFunc: func(ctx context.Context, collection string) ([]*models.StoredItem, error) {
			return nil, errors.New("store unavailable")
		},
	}

	service := NewService(mock, nil, testLogger())

	var observed *SyncResult
	service.OnSync(func(r *SyncResult) { observed = r })

	result, err := service.Sync(context.Background(), "http://unused", Options{})
	require.Error(t, err)
	require.NotNil(t, result)
	assert.False(t, result.Success)
	assert.Contains(t, strings.Join(result.Errors, ";"), "store unavailable")
	assert.Same(t, result, observed)
	assert.Len(t, mock.GetUnsyncedCalls(), 1)
}

func TestSync_InvalidPolicy(t *testing.T) {
	service := NewService(&LocalStoreMock{}, nil, testLogger())

	_, err := service.Sync(context.Background(), "http://unused", Options{ConflictResolution: "newest"})
	assert.Error(t, err)
}

func TestSync_Observers(t *testing.T) {
	local := newTestStore(t)
	_, endpoint := newFakeRemote(t)
	ctx := context.Background()

	require.NoError(t, local.Save(ctx, "assets", "a-1", 1, nil))

	service := NewService(local, nil, testLogger())

	var results []*SyncResult
	service.OnSync(func(r *SyncResult) { results = append(results, r) })
	service.OnSync(func(r *SyncResult) { results = append(results, r) })

	result, err := service.Sync(ctx, endpoint, Options{})
	require.NoError(t, err)
	require.Len(t, results, 2)
	assert.Same(t, result, results[0])
	assert.Equal(t, 1, results[1].Synced)
}

func TestSync_CancelStopsAfterCurrentItem(t *testing.T) {
	local := newTestStore(t)
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	for _, id := range []string{"a", "b", "c"} {
		require.NoError(t, local.Save(context.Background(), "assets", id, id, nil))
	}

	mock := &RemoteMock{
		PutItemFunc: func(ctx context.Context, collection, id string, version int64, value any) (*api.PutResponse, error) {
			// Отмена во время первого запроса
			cancel()
			return nil, nil
		},
	}

	service := NewService(local, func(string) Remote { return mock }, testLogger())
	result, err := service.Sync(ctx, "http://unused", Options{})
	require.NoError(t, err)
	assert.True(t, result.Interrupted)
	assert.Equal(t, 1, result.Synced)
	assert.Len(t, mock.PutItemCalls(), 1)

	unsynced, err := local.GetUnsynced(context.Background(), "")
	require.NoError(t, err)
	assert.Len(t, unsynced, 2)
}

func TestSync_CollectionScope(t *testing.T) {
	local := newTestStore(t)
	remote, endpoint := newFakeRemote(t)
	ctx := context.Background()

	require.NoError(t, local.Save(ctx, "assets", "a-1", 1, nil))
	require.NoError(t, local.Save(ctx, "work-orders", "wo-1", 2, nil))

	service := NewService(local, nil, testLogger())
	result, err := service.Sync(ctx, endpoint, Options{Collection: "assets"})
	require.NoError(t, err)
	assert.Equal(t, 1, result.Synced)

	calls := remote.calls()
	require.Len(t, calls, 1)
	assert.Equal(t, "/assets/a-1", calls[0].Path)
}
