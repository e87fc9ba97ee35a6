package backend_test

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync"
	"testing"
	"time"

	"mcl/internal/backend"
	"mcl/internal/domain"

	"github.com/gorilla/websocket"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var upgrader = websocket.Upgrader{}

type wireRequest struct {
	ID     uint64          `json:"id"`
	Method string          `json:"method"`
	Params json.RawMessage `json:"params"`
}

// testHost is a minimal in-process backend host speaking the bridge protocol.
type testHost struct {
	t       *testing.T
	handler func(conn *websocket.Conn, req wireRequest)
}

func (h *testHost) serve(w http.ResponseWriter, r *http.Request) {
	conn, err := upgrader.Upgrade(w, r, nil)
	require.NoError(h.t, err)
	defer conn.Close()

	for {
		var req wireRequest
		if err := conn.ReadJSON(&req); err != nil {
			return
		}
		h.handler(conn, req)
	}
}

func dialTestHost(t *testing.T, host *testHost) *backend.RPC {
	t.Helper()
	srv := httptest.NewServer(http.HandlerFunc(host.serve))
	t.Cleanup(srv.Close)

	addr := "ws" + strings.TrimPrefix(srv.URL, "http")
	client, err := backend.Dial(context.Background(), addr)
	require.NoError(t, err)
	t.Cleanup(func() { client.Close() })
	return client
}

func respond(conn *websocket.Conn, id uint64, result any) {
	raw, _ := json.Marshal(result)
	_ = conn.WriteJSON(map[string]any{"id": id, "result": json.RawMessage(raw)})
}

func respondError(conn *websocket.Conn, id uint64, msg string) {
	_ = conn.WriteJSON(map[string]any{"id": id, "error": msg})
}

func pushEvent(conn *websocket.Conn, event, status string) {
	raw, _ := json.Marshal(status)
	_ = conn.WriteJSON(map[string]any{"event": event, "data": json.RawMessage(raw)})
}

func TestRPCListInstances(t *testing.T) {
	host := &testHost{t: t, handler: func(conn *websocket.Conn, req wireRequest) {
		assert.Equal(t, "list_instances", req.Method)
		respond(conn, req.ID, []domain.Instance{
			{ID: "a", Name: "Main", Loader: domain.LoaderFabric, McVersion: "1.21.4"},
			{ID: "b", Name: "Vanilla", Loader: domain.LoaderVanilla},
		})
	}}
	client := dialTestHost(t, host)

	instances, err := client.ListInstances(context.Background())
	require.NoError(t, err)
	require.Len(t, instances, 2)
	assert.Equal(t, "Main", instances[0].Name)
	assert.Equal(t, domain.LoaderVanilla, instances[1].Loader)
}

func TestRPCErrorCarriesBackendMessage(t *testing.T) {
	blocked := `Blocked by signature: /inst/mods/wurst.jar (wurst)`
	host := &testHost{t: t, handler: func(conn *websocket.Conn, req wireRequest) {
		respondError(conn, req.ID, blocked)
	}}
	client := dialTestHost(t, host)

	err := client.Launch(context.Background(), "a", "")
	require.Error(t, err)
	// The raw message must survive verbatim for blocked-launch matching
	assert.Equal(t, blocked, err.Error())
}

func TestRPCInstallPack(t *testing.T) {
	host := &testHost{t: t, handler: func(conn *websocket.Conn, req wireRequest) {
		assert.Equal(t, "install_modrinth_pack", req.Method)

		var params struct {
			Slugs     []string `json:"slugs"`
			McVersion string   `json:"mc_version"`
			Loader    string   `json:"loader"`
		}
		require.NoError(t, json.Unmarshal(req.Params, &params))
		assert.Equal(t, []string{"sodium", "lithium"}, params.Slugs)
		assert.Equal(t, "1.21.4", params.McVersion)
		assert.Equal(t, "fabric", params.Loader)

		respond(conn, req.ID, domain.InstallResult{
			Installed: []string{"sodium"},
			Skipped:   []string{"lithium"},
		})
	}}
	client := dialTestHost(t, host)

	result, err := client.InstallPack(context.Background(), []string{"sodium", "lithium"}, "1.21.4", domain.LoaderFabric)
	require.NoError(t, err)
	assert.Equal(t, []string{"sodium"}, result.Installed)
	assert.Equal(t, []string{"lithium"}, result.Skipped)
}

func TestRPCEventOrder(t *testing.T) {
	events := make(chan struct{})
	host := &testHost{t: t, handler: func(conn *websocket.Conn, req wireRequest) {
		// Launch succeeds, then lifecycle events stream in order
		respond(conn, req.ID, nil)
		pushEvent(conn, "mc:launching", "Preparing game...")
		pushEvent(conn, "mc:launching", "Downloading libraries...")
		pushEvent(conn, "mc:started", "Minecraft launched")
		pushEvent(conn, "mc:exited", "Minecraft closed (exit code 0).")
		close(events)
	}}
	client := dialTestHost(t, host)

	var mu sync.Mutex
	var got []string
	record := func(prefix string) func(string) {
		return func(status string) {
			mu.Lock()
			got = append(got, prefix+":"+status)
			mu.Unlock()
		}
	}
	client.Subscribe(backend.EventHandlers{
		OnLaunching: record("launching"),
		OnStarted:   record("started"),
		OnExited:    record("exited"),
	})

	require.NoError(t, client.Launch(context.Background(), "a", ""))
	<-events

	// Events are dispatched on the reader goroutine; give it a moment
	require.Eventually(t, func() bool {
		mu.Lock()
		defer mu.Unlock()
		return len(got) == 4
	}, time.Second, 10*time.Millisecond)

	mu.Lock()
	defer mu.Unlock()
	assert.Equal(t, []string{
		"launching:Preparing game...",
		"launching:Downloading libraries...",
		"started:Minecraft launched",
		"exited:Minecraft closed (exit code 0).",
	}, got)
}

func TestRPCContextCancellation(t *testing.T) {
	host := &testHost{t: t, handler: func(conn *websocket.Conn, req wireRequest) {
		// Never respond
	}}
	client := dialTestHost(t, host)

	ctx, cancel := context.WithTimeout(context.Background(), 50*time.Millisecond)
	defer cancel()

	err := client.Launch(ctx, "a", "")
	assert.ErrorIs(t, err, context.DeadlineExceeded)
}
