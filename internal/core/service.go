package core

import (
	"context"
	"fmt"
	"log"
	"path/filepath"

	"mcl/internal/auth"
	"mcl/internal/backend"
	"mcl/internal/domain"
	"mcl/internal/notify"
	"mcl/internal/source/modrinth"
	"mcl/internal/source/mojang"
	"mcl/internal/storage/config"
	"mcl/internal/storage/db"
)

// Options locates the launcher's on-disk state.
type Options struct {
	ConfigDir string
	DataDir   string
}

// Service assembles the launcher: configuration, local storage, the add-on
// registry and version metadata clients, the notification center, and once
// connected, the backend bridge with session, launcher and pack installer.
type Service struct {
	cfg    *config.Config
	cfgDir string
	packs  []domain.CuratedPack
	db     *db.DB
	center *notify.Center

	registry *modrinth.Client
	meta     *mojang.Client
	authFlow *auth.Flow
	account  *domain.Account

	backend   backend.Client
	session   *Session
	launcher  *Launcher
	installer *PackInstaller
}

// NewService loads configuration and local state. The backend is not
// contacted; call Connect or UseBackend before operations that need it.
func NewService(opts Options) (*Service, error) {
	cfg, err := config.Load(opts.ConfigDir)
	if err != nil {
		return nil, fmt.Errorf("loading config: %w", err)
	}

	packs, err := config.LoadPacks(opts.ConfigDir)
	if err != nil {
		return nil, fmt.Errorf("loading packs: %w", err)
	}

	database, err := db.New(filepath.Join(opts.DataDir, "mcl.db"))
	if err != nil {
		return nil, fmt.Errorf("opening database: %w", err)
	}

	center := notify.NewCenter()
	center.SetRecorder(database)
	if cfg.NotifyURL != "" {
		center.SetForwarding(nil, cfg.NotifyURL)
	}

	s := &Service{
		cfg:      cfg,
		cfgDir:   opts.ConfigDir,
		packs:    packs,
		db:       database,
		center:   center,
		registry: modrinth.NewClient(),
		meta:     mojang.NewClient(),
		authFlow: auth.NewFlow(cfg.MsClientID),
	}

	if err := s.restoreAccount(); err != nil {
		return nil, err
	}
	return s, nil
}

// restoreAccount loads the persisted sign-in, if any, so the launcher starts
// signed in across restarts.
func (s *Service) restoreAccount() error {
	stored, err := s.db.GetAccount()
	if err != nil {
		return fmt.Errorf("loading account: %w", err)
	}
	if stored != nil {
		s.account = &domain.Account{UUID: stored.UUID, Username: stored.Username}
	}
	return nil
}

// Connect dials the backend host from configuration and wires it in.
func (s *Service) Connect(ctx context.Context) error {
	client, err := backend.Dial(ctx, s.cfg.BackendAddr)
	if err != nil {
		return err
	}
	s.UseBackend(client)
	return nil
}

// UseBackend wires a backend client into the session, launcher and pack
// installer, subscribing to lifecycle events when the client pushes them.
func (s *Service) UseBackend(c backend.Client) {
	s.backend = c
	s.session = NewSession(c)
	s.session.SetAccount(s.account)
	s.launcher = NewLauncher(c, s.session, s.center)
	s.launcher.SetJoinServer(s.cfg.JoinServer)
	s.installer = NewPackInstaller(c, s.center)

	if events, ok := c.(backend.Events); ok {
		events.Subscribe(s.launcher.Events())
	}
}

// SignIn records a completed sign-in in the session and the database.
func (s *Service) SignIn(a domain.Account) error {
	s.account = &a
	if s.session != nil {
		s.session.SetAccount(&a)
	}
	if err := s.db.SaveAccount(a.UUID, a.Username); err != nil {
		return fmt.Errorf("saving account: %w", err)
	}
	s.center.Success("Signed in", "Welcome, %s", a.Username)
	return nil
}

// SignOut clears the stored account.
func (s *Service) SignOut() error {
	s.account = nil
	if s.session != nil {
		s.session.SetAccount(nil)
	}
	if err := s.db.DeleteAccount(); err != nil {
		return fmt.Errorf("deleting account: %w", err)
	}
	s.center.Info("Signed out", "Account removed from this device.")
	return nil
}

// SelectInstance switches the active instance and mirrors the choice into
// the local settings store, which seeds the UI before the backend answers
// on the next start.
func (s *Service) SelectInstance(ctx context.Context, instanceID string) error {
	if err := s.session.Select(ctx, instanceID); err != nil {
		return err
	}
	if err := s.db.SetSetting(db.SettingSelectedInstance, instanceID); err != nil {
		log.Printf("recording selected instance: %v", err)
	}
	return nil
}

// LastSelectedInstance returns the locally remembered selection.
func (s *Service) LastSelectedInstance() string {
	id, err := s.db.GetSetting(db.SettingSelectedInstance)
	if err != nil {
		return ""
	}
	return id
}

// SaveConfig persists the current configuration.
func (s *Service) SaveConfig() error {
	return s.cfg.Save(s.cfgDir)
}

// Close releases local resources. The backend connection, if one was dialed,
// is closed as well.
func (s *Service) Close() error {
	if closer, ok := s.backend.(interface{ Close() error }); ok && closer != nil {
		_ = closer.Close()
	}
	return s.db.Close()
}

func (s *Service) Config() *config.Config         { return s.cfg }
func (s *Service) Packs() []domain.CuratedPack    { return s.packs }
func (s *Service) Notifications() *notify.Center  { return s.center }
func (s *Service) Registry() *modrinth.Client     { return s.registry }
func (s *Service) Meta() *mojang.Client           { return s.meta }
func (s *Service) Auth() *auth.Flow               { return s.authFlow }
func (s *Service) DB() *db.DB                     { return s.db }
func (s *Service) Backend() backend.Client        { return s.backend }
func (s *Service) Session() *Session              { return s.session }
func (s *Service) Launcher() *Launcher            { return s.launcher }
func (s *Service) PackInstaller() *PackInstaller  { return s.installer }

// FindPack looks a curated pack up by name, case-insensitively.
func (s *Service) FindPack(name string) (domain.CuratedPack, error) {
	return config.FindPack(s.packs, name)
}
