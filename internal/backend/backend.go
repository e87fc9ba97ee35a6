// Package backend defines the contract with the native backend host: a
// request/response client plus a separate push-event subscription. The two
// surfaces are kept apart so lifecycle ordering guarantees stay easy to
// state and test.
package backend

import (
	"context"

	"mcl/internal/domain"
)

// Client is the request/response surface of the native backend host.
// Every call suspends the caller until the backend answers; errors carry
// the backend's message text verbatim so callers can classify it.
type Client interface {
	// Launching. joinServer, when non-empty, asks the game to connect to
	// that server address right after startup.
	Launch(ctx context.Context, instanceID, joinServer string) error
	DeleteInstanceMod(ctx context.Context, instanceID, file string) error
	ListInstanceMods(ctx context.Context, instanceID string) ([]domain.InstanceMod, error)
	SetInstanceModEnabled(ctx context.Context, instanceID, file string, enabled bool) error
	OpenInstanceFolder(ctx context.Context, instanceID string) error

	// Instances
	ListInstances(ctx context.Context) ([]domain.Instance, error)
	SelectedInstance(ctx context.Context) (*domain.Instance, error)
	SelectInstance(ctx context.Context, instanceID string) error
	CreateInstance(ctx context.Context, name, mcVersion string, loader domain.Loader) (*domain.Instance, error)
	UpdateInstance(ctx context.Context, inst domain.Instance) error
	DeleteInstance(ctx context.Context, instanceID string) error

	// Add-ons
	Search(ctx context.Context, query string, kind domain.AddonKind, limit int, loader domain.Loader) ([]domain.AddonRef, error)
	InstallProject(ctx context.Context, projectID, mcVersion string, kind domain.AddonKind, loader domain.Loader) error
	InstallPack(ctx context.Context, slugs []string, mcVersion string, loader domain.Loader) (domain.InstallResult, error)

	// Accounts. The token exchange and refresh happen on the backend; the
	// frontend only supplies the authorization code it extracted.
	Authenticate(ctx context.Context, code string) (*domain.Account, error)
}

// EventHandlers receives pushed lifecycle events. Each event carries an
// optional human-readable status string. Handlers are invoked in arrival
// order, at most once per backend event; nil handlers are skipped.
type EventHandlers struct {
	OnLaunching func(status string)
	OnStarted   func(status string)
	OnExited    func(status string)
}

// Events is the push side of the backend bridge.
type Events interface {
	Subscribe(h EventHandlers)
}
