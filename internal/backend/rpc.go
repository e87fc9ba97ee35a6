package backend

import (
	"context"
	"encoding/json"
	"fmt"
	"sync"

	"mcl/internal/domain"

	"github.com/gorilla/websocket"
)

// Wire format: requests carry an id and method; responses echo the id with
// either a result or an error string. Pushed events carry an event name and
// no id. Everything travels over one websocket.
type rpcRequest struct {
	ID     uint64 `json:"id"`
	Method string `json:"method"`
	Params any    `json:"params,omitempty"`
}

type rpcEnvelope struct {
	ID     uint64          `json:"id,omitempty"`
	Result json.RawMessage `json:"result,omitempty"`
	Error  string          `json:"error,omitempty"`
	Event  string          `json:"event,omitempty"`
	Data   json.RawMessage `json:"data,omitempty"`
}

// Event names pushed by the backend host.
const (
	eventLaunching = "mc:launching"
	eventStarted   = "mc:started"
	eventExited    = "mc:exited"
)

// CallError is a failed backend call. Error() returns the backend's message
// verbatim, which callers pattern-match (e.g. blocked-launch detection).
type CallError struct {
	Method  string
	Message string
}

func (e *CallError) Error() string { return e.Message }

// RPC is a websocket bridge to the native backend host, implementing both
// Client and Events. A single reader goroutine correlates responses by id
// and dispatches push events sequentially, preserving arrival order.
type RPC struct {
	conn *websocket.Conn

	writeMu sync.Mutex // websocket allows one concurrent writer

	mu      sync.Mutex
	nextID  uint64
	pending map[uint64]chan rpcEnvelope
	subs    []EventHandlers
	closed  bool
}

// Dial connects to the backend host at the given websocket address and
// starts the read loop.
func Dial(ctx context.Context, addr string) (*RPC, error) {
	conn, _, err := websocket.DefaultDialer.DialContext(ctx, addr, nil)
	if err != nil {
		return nil, fmt.Errorf("connecting to backend at %s: %w", addr, err)
	}

	c := &RPC{
		conn:    conn,
		pending: make(map[uint64]chan rpcEnvelope),
	}
	go c.readLoop()
	return c, nil
}

// Close tears down the connection. In-flight calls fail.
func (c *RPC) Close() error {
	c.mu.Lock()
	c.closed = true
	c.mu.Unlock()
	return c.conn.Close()
}

// Subscribe registers lifecycle event handlers.
func (c *RPC) Subscribe(h EventHandlers) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.subs = append(c.subs, h)
}

func (c *RPC) readLoop() {
	for {
		var env rpcEnvelope
		if err := c.conn.ReadJSON(&env); err != nil {
			c.failPending(err)
			return
		}

		if env.Event != "" {
			c.dispatchEvent(env)
			continue
		}

		c.mu.Lock()
		ch, ok := c.pending[env.ID]
		if ok {
			delete(c.pending, env.ID)
		}
		c.mu.Unlock()
		if ok {
			ch <- env
		}
	}
}

// dispatchEvent runs handlers inline on the reader goroutine so events are
// applied strictly in arrival order.
func (c *RPC) dispatchEvent(env rpcEnvelope) {
	var status string
	if len(env.Data) > 0 {
		// Status payloads are plain JSON strings; anything else is ignored.
		_ = json.Unmarshal(env.Data, &status)
	}

	c.mu.Lock()
	subs := make([]EventHandlers, len(c.subs))
	copy(subs, c.subs)
	c.mu.Unlock()

	for _, h := range subs {
		switch env.Event {
		case eventLaunching:
			if h.OnLaunching != nil {
				h.OnLaunching(status)
			}
		case eventStarted:
			if h.OnStarted != nil {
				h.OnStarted(status)
			}
		case eventExited:
			if h.OnExited != nil {
				h.OnExited(status)
			}
		}
	}
}

func (c *RPC) failPending(err error) {
	c.mu.Lock()
	pending := c.pending
	c.pending = make(map[uint64]chan rpcEnvelope)
	c.mu.Unlock()

	for _, ch := range pending {
		ch <- rpcEnvelope{Error: fmt.Sprintf("backend connection lost: %v", err)}
	}
}

// call issues one request and decodes the result into out (may be nil).
func (c *RPC) call(ctx context.Context, method string, params any, out any) error {
	c.mu.Lock()
	if c.closed {
		c.mu.Unlock()
		return &CallError{Method: method, Message: "backend connection closed"}
	}
	c.nextID++
	id := c.nextID
	ch := make(chan rpcEnvelope, 1)
	c.pending[id] = ch
	c.mu.Unlock()

	c.writeMu.Lock()
	err := c.conn.WriteJSON(rpcRequest{ID: id, Method: method, Params: params})
	c.writeMu.Unlock()
	if err != nil {
		c.mu.Lock()
		delete(c.pending, id)
		c.mu.Unlock()
		return fmt.Errorf("calling %s: %w", method, err)
	}

	select {
	case <-ctx.Done():
		c.mu.Lock()
		delete(c.pending, id)
		c.mu.Unlock()
		return ctx.Err()
	case env := <-ch:
		if env.Error != "" {
			return &CallError{Method: method, Message: env.Error}
		}
		if out != nil && len(env.Result) > 0 {
			if err := json.Unmarshal(env.Result, out); err != nil {
				return fmt.Errorf("decoding %s result: %w", method, err)
			}
		}
		return nil
	}
}

// Launch starts the selected instance. The returned error text, if any, is
// the backend's verbatim message (blocked-launch patterns included).
func (c *RPC) Launch(ctx context.Context, instanceID, joinServer string) error {
	params := map[string]any{"instance_id": instanceID}
	if joinServer != "" {
		params["join_server"] = joinServer
	}
	return c.call(ctx, "launch_game", params, nil)
}

func (c *RPC) DeleteInstanceMod(ctx context.Context, instanceID, file string) error {
	return c.call(ctx, "delete_instance_mod", map[string]any{"instance_id": instanceID, "file": file}, nil)
}

func (c *RPC) ListInstanceMods(ctx context.Context, instanceID string) ([]domain.InstanceMod, error) {
	var mods []domain.InstanceMod
	err := c.call(ctx, "list_instance_mods", map[string]any{"instance_id": instanceID}, &mods)
	return mods, err
}

func (c *RPC) SetInstanceModEnabled(ctx context.Context, instanceID, file string, enabled bool) error {
	return c.call(ctx, "set_instance_mod_enabled", map[string]any{
		"instance_id": instanceID, "file": file, "enabled": enabled,
	}, nil)
}

func (c *RPC) OpenInstanceFolder(ctx context.Context, instanceID string) error {
	return c.call(ctx, "open_instance_folder", map[string]any{"instance_id": instanceID}, nil)
}

func (c *RPC) ListInstances(ctx context.Context) ([]domain.Instance, error) {
	var instances []domain.Instance
	err := c.call(ctx, "list_instances", nil, &instances)
	return instances, err
}

func (c *RPC) SelectedInstance(ctx context.Context) (*domain.Instance, error) {
	var inst *domain.Instance
	err := c.call(ctx, "get_selected_instance", nil, &inst)
	return inst, err
}

func (c *RPC) SelectInstance(ctx context.Context, instanceID string) error {
	return c.call(ctx, "select_instance", map[string]any{"instance_id": instanceID}, nil)
}

func (c *RPC) CreateInstance(ctx context.Context, name, mcVersion string, loader domain.Loader) (*domain.Instance, error) {
	var inst domain.Instance
	err := c.call(ctx, "create_instance", map[string]any{
		"name": name, "mc_version": mcVersion, "loader": loader,
	}, &inst)
	if err != nil {
		return nil, err
	}
	return &inst, nil
}

func (c *RPC) UpdateInstance(ctx context.Context, inst domain.Instance) error {
	return c.call(ctx, "update_instance", map[string]any{
		"instance_id": inst.ID, "name": inst.Name, "mc_version": inst.McVersion, "loader": inst.Loader,
	}, nil)
}

func (c *RPC) DeleteInstance(ctx context.Context, instanceID string) error {
	return c.call(ctx, "delete_instance", map[string]any{"instance_id": instanceID}, nil)
}

func (c *RPC) Search(ctx context.Context, query string, kind domain.AddonKind, limit int, loader domain.Loader) ([]domain.AddonRef, error) {
	var hits []struct {
		ID          string `json:"id"`
		Slug        string `json:"slug"`
		Title       string `json:"title"`
		Description string `json:"description"`
		Downloads   int64  `json:"downloads"`
		IconURL     string `json:"icon_url"`
	}
	err := c.call(ctx, "modrinth_search", map[string]any{
		"query": query, "kind": kind, "limit": limit, "loader": loader,
	}, &hits)
	if err != nil {
		return nil, err
	}

	refs := make([]domain.AddonRef, 0, len(hits))
	for _, h := range hits {
		refs = append(refs, domain.AddonRef{
			ID: h.ID, Slug: h.Slug, Title: h.Title,
			Description: h.Description, Downloads: h.Downloads, IconURL: h.IconURL,
		})
	}
	return refs, nil
}

func (c *RPC) InstallProject(ctx context.Context, projectID, mcVersion string, kind domain.AddonKind, loader domain.Loader) error {
	return c.call(ctx, "install_modrinth_project", map[string]any{
		"project_id": projectID, "mc_version": mcVersion, "kind": kind, "loader": loader,
	}, nil)
}

func (c *RPC) InstallPack(ctx context.Context, slugs []string, mcVersion string, loader domain.Loader) (domain.InstallResult, error) {
	var result domain.InstallResult
	err := c.call(ctx, "install_modrinth_pack", map[string]any{
		"slugs": slugs, "mc_version": mcVersion, "loader": loader,
	}, &result)
	return result, err
}

func (c *RPC) Authenticate(ctx context.Context, code string) (*domain.Account, error) {
	var account domain.Account
	err := c.call(ctx, "complete_ms_auth", map[string]any{"code": code}, &account)
	if err != nil {
		return nil, err
	}
	return &account, nil
}

var (
	_ Client = (*RPC)(nil)
	_ Events = (*RPC)(nil)
)
