package core

import (
	"context"
	"fmt"

	"mcl/internal/backend"
	"mcl/internal/domain"
)

// Session owns the launcher-wide UI state: the cached instance list, the
// current selection, and the signed-in account. The backend remains the
// authority for instances; the session holds copies and pushes edits back
// only on an explicit save.
type Session struct {
	backend backend.Client

	instances  []domain.Instance
	selectedID string
	account    *domain.Account
}

// NewSession creates an empty session over the given backend client.
func NewSession(b backend.Client) *Session {
	return &Session{backend: b}
}

// Refresh reloads the instance list and current selection from the backend.
func (s *Session) Refresh(ctx context.Context) error {
	instances, err := s.backend.ListInstances(ctx)
	if err != nil {
		return fmt.Errorf("listing instances: %w", err)
	}

	selected, err := s.backend.SelectedInstance(ctx)
	if err != nil {
		return fmt.Errorf("getting selected instance: %w", err)
	}

	s.instances = instances
	s.selectedID = ""
	if selected != nil {
		s.selectedID = selected.ID
	}

	// If the backend reports no selection but instances exist, select the
	// first one rather than leaving the launcher unusable.
	if s.selectedID == "" && len(instances) > 0 {
		s.selectedID = instances[0].ID
	}
	return nil
}

// Instances returns the cached instance list.
func (s *Session) Instances() []domain.Instance {
	out := make([]domain.Instance, len(s.instances))
	copy(out, s.instances)
	return out
}

// Selected returns the currently selected instance from the cache.
func (s *Session) Selected() (domain.Instance, bool) {
	for _, inst := range s.instances {
		if inst.ID == s.selectedID {
			return inst, true
		}
	}
	return domain.Instance{}, false
}

// Select changes the current instance on the backend and in the cache.
func (s *Session) Select(ctx context.Context, instanceID string) error {
	found := false
	for _, inst := range s.instances {
		if inst.ID == instanceID {
			found = true
			break
		}
	}
	if !found {
		return fmt.Errorf("%w: %s", domain.ErrInstanceNotFound, instanceID)
	}

	if err := s.backend.SelectInstance(ctx, instanceID); err != nil {
		return fmt.Errorf("selecting instance: %w", err)
	}
	s.selectedID = instanceID
	return nil
}

// Target returns the (version, loader) pair installs should be filtered
// against, taken from the selected instance.
func (s *Session) Target() (string, domain.Loader, error) {
	inst, ok := s.Selected()
	if !ok {
		return "", domain.LoaderVanilla, domain.ErrNoInstanceSelected
	}
	return inst.EffectiveVersion(), inst.Loader, nil
}

// SetAccount caches the signed-in account.
func (s *Session) SetAccount(a *domain.Account) {
	s.account = a
}

// Account returns the signed-in account, if any.
func (s *Session) Account() (domain.Account, bool) {
	if s.account == nil {
		return domain.Account{}, false
	}
	return *s.account, true
}

// CanPlay reports whether the play control should be enabled: both an
// account and a selected instance must be present.
func (s *Session) CanPlay() bool {
	_, hasAccount := s.Account()
	_, hasInstance := s.Selected()
	return hasAccount && hasInstance
}

// ApplyEdit mutates the cached copy of an instance without contacting the
// backend. The edit becomes durable only through SaveInstance.
func (s *Session) ApplyEdit(inst domain.Instance) {
	for i := range s.instances {
		if s.instances[i].ID == inst.ID {
			s.instances[i] = inst
			return
		}
	}
}

// SaveInstance pushes an edited instance to the backend and updates the cache.
func (s *Session) SaveInstance(ctx context.Context, inst domain.Instance) error {
	if err := s.backend.UpdateInstance(ctx, inst); err != nil {
		return fmt.Errorf("saving instance: %w", err)
	}
	s.ApplyEdit(inst)
	return nil
}

// CreateInstance creates a new instance on the backend and caches it. The
// first instance created becomes the selection.
func (s *Session) CreateInstance(ctx context.Context, name, mcVersion string, loader domain.Loader) (*domain.Instance, error) {
	inst, err := s.backend.CreateInstance(ctx, name, mcVersion, loader)
	if err != nil {
		return nil, fmt.Errorf("creating instance: %w", err)
	}

	s.instances = append(s.instances, *inst)
	if s.selectedID == "" {
		s.selectedID = inst.ID
	}
	return inst, nil
}

// DeleteInstance removes an instance from the backend and the cache,
// clearing the selection if it pointed at the removed instance.
func (s *Session) DeleteInstance(ctx context.Context, instanceID string) error {
	if err := s.backend.DeleteInstance(ctx, instanceID); err != nil {
		return fmt.Errorf("deleting instance: %w", err)
	}

	kept := s.instances[:0]
	for _, inst := range s.instances {
		if inst.ID != instanceID {
			kept = append(kept, inst)
		}
	}
	s.instances = kept

	if s.selectedID == instanceID {
		s.selectedID = ""
		if len(s.instances) > 0 {
			s.selectedID = s.instances[0].ID
		}
	}
	return nil
}
