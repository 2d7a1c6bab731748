package app

import (
	"context"
	"encoding/json"
	"io"
	"log/slog"
	"net"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	clientapi "github.com/iudanet/maintkeeper/internal/client/api"
	"github.com/iudanet/maintkeeper/internal/config"
	"github.com/iudanet/maintkeeper/pkg/api"
)

func newTestServer(t *testing.T) *Server {
	t.Helper()

	cfg := config.Default()
	cfg.Server.Database = ":memory:"
	cfg.Server.Addr = "127.0.0.1:0"

	srv, err := New(context.Background(), cfg, slog.New(slog.NewTextHandler(io.Discard, nil)), "test")
	require.NoError(t, err)
	t.Cleanup(func() {
		_ = srv.Close()
	})

	return srv
}

func TestServer_Health(t *testing.T) {
	srv := newTestServer(t)
	ts := httptest.NewServer(srv.Handler())
	defer ts.Close()

	resp, err := http.Get(ts.URL + "/api/v1/health")
	require.NoError(t, err)
	defer func() {
		_ = resp.Body.Close()
	}()

	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.NotEmpty(t, resp.Header.Get("X-Request-ID"))

	var health api.HealthResponse
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&health))
	assert.Equal(t, "ok", health.Status)
	assert.Equal(t, "test", health.Version)
}

// Клиент синхронизации и сервер согласованы по протоколу
func TestServer_WithSyncClient(t *testing.T) {
	srv := newTestServer(t)
	ts := httptest.NewServer(srv.Handler())
	defer ts.Close()

	ctx := context.Background()
	client := clientapi.NewClient(ts.URL + "/api/v1/items")

	resp, err := client.PutItem(ctx, "work:orders", "wo-1", 1, map[string]any{"status": "open"})
	require.NoError(t, err)
	require.NotNil(t, resp)
	assert.Equal(t, int64(1), resp.Version)

	_, err = client.PutItem(ctx, "work:orders", "wo-1", 1, map[string]any{"status": "closed"})
	var conflictErr *clientapi.ConflictError
	require.ErrorAs(t, err, &conflictErr)
	assert.Equal(t, int64(1), conflictErr.Remote.Version)
	assert.JSONEq(t, `{"status":"open"}`, string(conflictErr.Remote.Data))

	item, err := client.GetItem(ctx, "work:orders", "wo-1")
	require.NoError(t, err)
	assert.Equal(t, "work:orders", item.Collection)

	require.NoError(t, client.DeleteItem(ctx, "work:orders", "wo-1", 1))
	assert.ErrorIs(t, client.DeleteItem(ctx, "work:orders", "wo-1", 1), clientapi.ErrNotFound)
}

func TestServer_UnknownRoute(t *testing.T) {
	srv := newTestServer(t)
	ts := httptest.NewServer(srv.Handler())
	defer ts.Close()

	// Неизвестный маршрут отдает 404 от mux, а не панику
	resp, err := http.Get(ts.URL + "/api/v1/unknown")
	require.NoError(t, err)
	_ = resp.Body.Close()
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)
}

func TestServer_ServeStopsOnCancel(t *testing.T) {
	srv := newTestServer(t)

	listener, err := net.Listen("tcp", "127.0.0.1:0")
	require.NoError(t, err)

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() {
		done <- srv.Serve(ctx, listener)
	}()

	url := "http://" + listener.Addr().String() + "/api/v1/items/assets/a-1"
	require.Eventually(t, func() bool {
		req, _ := http.NewRequest(http.MethodPut, url, strings.NewReader(`{"name":"pump"}`))
		req.Header.Set(api.IfMatchHeader, `"1"`)
		resp, err := http.DefaultClient.Do(req)
		if err != nil {
			return false
		}
		_ = resp.Body.Close()
		return resp.StatusCode == http.StatusOK
	}, 2*time.Second, 20*time.Millisecond)

	cancel()

	select {
	case err := <-done:
		assert.NoError(t, err)
	case <-time.After(5 * time.Second):
		t.Fatal("server did not stop")
	}
}

func TestServer_RunInvalidAddr(t *testing.T) {
	srv := newTestServer(t)
	srv.addr = "invalid:address:99"

	err := srv.Run(context.Background())
	assert.ErrorContains(t, err, "failed to listen")
}
