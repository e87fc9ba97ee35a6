package core_test

import (
	"context"
	"errors"

	"mcl/internal/domain"
)

// fakeBackend implements backend.Client in memory for core tests. Each call
// is appended to calls so tests can assert what reached the backend.
type fakeBackend struct {
	calls []string

	instances []domain.Instance
	selected  string

	launchErr     error
	deleteModErr  error
	installResult domain.InstallResult
	installErr    error
}

func (f *fakeBackend) record(name string) {
	f.calls = append(f.calls, name)
}

func (f *fakeBackend) Launch(ctx context.Context, instanceID, joinServer string) error {
	if joinServer != "" {
		f.record("launch:" + instanceID + ":join:" + joinServer)
	} else {
		f.record("launch:" + instanceID)
	}
	return f.launchErr
}

func (f *fakeBackend) DeleteInstanceMod(ctx context.Context, instanceID, file string) error {
	f.record("delete_mod:" + instanceID + ":" + file)
	return f.deleteModErr
}

func (f *fakeBackend) ListInstanceMods(ctx context.Context, instanceID string) ([]domain.InstanceMod, error) {
	f.record("list_mods:" + instanceID)
	return nil, nil
}

func (f *fakeBackend) SetInstanceModEnabled(ctx context.Context, instanceID, file string, enabled bool) error {
	f.record("set_mod_enabled:" + instanceID + ":" + file)
	return nil
}

func (f *fakeBackend) OpenInstanceFolder(ctx context.Context, instanceID string) error {
	f.record("open_folder:" + instanceID)
	return nil
}

func (f *fakeBackend) ListInstances(ctx context.Context) ([]domain.Instance, error) {
	f.record("list_instances")
	return f.instances, nil
}

func (f *fakeBackend) SelectedInstance(ctx context.Context) (*domain.Instance, error) {
	f.record("get_selected")
	for _, inst := range f.instances {
		if inst.ID == f.selected {
			copied := inst
			return &copied, nil
		}
	}
	return nil, nil
}

func (f *fakeBackend) SelectInstance(ctx context.Context, instanceID string) error {
	f.record("select:" + instanceID)
	f.selected = instanceID
	return nil
}

func (f *fakeBackend) CreateInstance(ctx context.Context, name, mcVersion string, loader domain.Loader) (*domain.Instance, error) {
	f.record("create:" + name)
	inst := domain.Instance{ID: "gen-" + name, Name: name, McVersion: mcVersion, Loader: loader}
	f.instances = append(f.instances, inst)
	return &inst, nil
}

func (f *fakeBackend) UpdateInstance(ctx context.Context, inst domain.Instance) error {
	f.record("update:" + inst.ID)
	for i := range f.instances {
		if f.instances[i].ID == inst.ID {
			f.instances[i] = inst
			return nil
		}
	}
	return errors.New("instance not found")
}

func (f *fakeBackend) DeleteInstance(ctx context.Context, instanceID string) error {
	f.record("delete:" + instanceID)
	kept := f.instances[:0]
	for _, inst := range f.instances {
		if inst.ID != instanceID {
			kept = append(kept, inst)
		}
	}
	f.instances = kept
	return nil
}

func (f *fakeBackend) Search(ctx context.Context, query string, kind domain.AddonKind, limit int, loader domain.Loader) ([]domain.AddonRef, error) {
	f.record("search:" + query)
	return nil, nil
}

func (f *fakeBackend) InstallProject(ctx context.Context, projectID, mcVersion string, kind domain.AddonKind, loader domain.Loader) error {
	f.record("install_project:" + projectID)
	return nil
}

func (f *fakeBackend) InstallPack(ctx context.Context, slugs []string, mcVersion string, loader domain.Loader) (domain.InstallResult, error) {
	f.record("install_pack")
	return f.installResult, f.installErr
}

func (f *fakeBackend) Authenticate(ctx context.Context, code string) (*domain.Account, error) {
	f.record("authenticate")
	return &domain.Account{UUID: "u", Username: "steve"}, nil
}
