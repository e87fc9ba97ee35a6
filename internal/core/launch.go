package core

import (
	"context"
	"fmt"
	"sync"

	"mcl/internal/backend"
	"mcl/internal/domain"
	"mcl/internal/notify"
)

// PhaseListener receives launch state changes together with the status line
// to display for the new phase.
type PhaseListener func(phase domain.LaunchPhase, status string)

// Launcher drives the game lifecycle for the selected instance. It moves
// through Idle -> Launching -> Started -> Idle, with Blocked reachable only
// from Launching when the backend refuses the launch.
type Launcher struct {
	backend    backend.Client
	session    *Session
	center     *notify.Center
	joinServer string

	mu        sync.Mutex
	phase     domain.LaunchPhase
	status    string
	blocked   *domain.BlockedReport
	listeners []PhaseListener
}

// NewLauncher creates an idle launcher over the given backend and session.
func NewLauncher(b backend.Client, s *Session, center *notify.Center) *Launcher {
	return &Launcher{
		backend: b,
		session: s,
		center:  center,
		phase:   domain.LaunchIdle,
	}
}

// SetJoinServer sets the server address the game connects to after launch.
// Empty disables quick-join.
func (l *Launcher) SetJoinServer(addr string) {
	l.joinServer = addr
}

// OnPhaseChange registers a listener invoked on every phase transition.
func (l *Launcher) OnPhaseChange(fn PhaseListener) {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.listeners = append(l.listeners, fn)
}

// Phase returns the current phase and its status line.
func (l *Launcher) Phase() (domain.LaunchPhase, string) {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.phase, l.status
}

// Blocked returns the pending blocked-launch report, if the launcher is in
// the Blocked phase.
func (l *Launcher) Blocked() (domain.BlockedReport, bool) {
	l.mu.Lock()
	defer l.mu.Unlock()
	if l.blocked == nil {
		return domain.BlockedReport{}, false
	}
	return *l.blocked, true
}

func (l *Launcher) transition(phase domain.LaunchPhase, status string) {
	l.mu.Lock()
	l.phase = phase
	l.status = status
	if phase != domain.LaunchBlocked {
		l.blocked = nil
	}
	listeners := make([]PhaseListener, len(l.listeners))
	copy(listeners, l.listeners)
	l.mu.Unlock()

	for _, fn := range listeners {
		fn(phase, status)
	}
}

// Play launches the selected instance. With no selection it notifies and
// returns without touching the backend. A backend error is classified as
// either a blocked launch (phase moves to Blocked and the report is kept
// for the UI) or a plain failure (notification, back to Idle).
func (l *Launcher) Play(ctx context.Context) error {
	inst, ok := l.session.Selected()
	if !ok {
		l.center.Error("Cannot launch", "No instance selected. Create or select an instance first.")
		return domain.ErrNoInstanceSelected
	}

	l.transition(domain.LaunchLaunching, "Preparing game...")

	if err := l.backend.Launch(ctx, inst.ID, l.joinServer); err != nil {
		if report, blocked := ParseBlocked(err.Error()); blocked {
			l.mu.Lock()
			l.blocked = &report
			l.mu.Unlock()
			l.transition(domain.LaunchBlocked, report.Title)
			return fmt.Errorf("launching %s: %w", inst.Name, err)
		}

		l.center.Error("Launch failed", "%s", err.Error())
		l.transition(domain.LaunchIdle, "")
		return fmt.Errorf("launching %s: %w", inst.Name, err)
	}
	return nil
}

// HandleLaunching applies a progress update from the backend. It is a no-op
// outside the Launching phase so a stale event cannot resurrect a dismissed
// launch.
func (l *Launcher) HandleLaunching(status string) {
	l.mu.Lock()
	inLaunch := l.phase == domain.LaunchLaunching
	l.mu.Unlock()
	if !inLaunch {
		return
	}
	l.transition(domain.LaunchLaunching, status)
}

// HandleStarted marks the game as running. Like HandleLaunching it ignores
// stale events arriving after the launcher has returned to Idle.
func (l *Launcher) HandleStarted(status string) {
	if l.idle() {
		return
	}
	l.transition(domain.LaunchStarted, status)
	l.center.Success("Game started", "%s", status)
}

// HandleExited records the game exit and returns the launcher to Idle, so
// the play control is immediately usable again. Stale events arriving while
// already Idle are ignored.
func (l *Launcher) HandleExited(status string) {
	if l.idle() {
		return
	}
	l.transition(domain.LaunchExited, status)
	l.center.Info("Game exited", "%s", status)
	l.transition(domain.LaunchIdle, "")
}

func (l *Launcher) idle() bool {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.phase == domain.LaunchIdle
}

// Dismiss clears a blocked report and returns to Idle. It fails outside the
// Blocked phase.
func (l *Launcher) Dismiss() error {
	l.mu.Lock()
	if l.phase != domain.LaunchBlocked {
		l.mu.Unlock()
		return domain.ErrNotBlocked
	}
	l.mu.Unlock()

	l.transition(domain.LaunchIdle, "")
	return nil
}

// RemoveAndRetry deletes the file named by the blocked report from the
// selected instance and launches again. The launcher stays Blocked when the
// deletion fails so the user can retry or dismiss.
func (l *Launcher) RemoveAndRetry(ctx context.Context) error {
	l.mu.Lock()
	if l.phase != domain.LaunchBlocked || l.blocked == nil {
		l.mu.Unlock()
		return domain.ErrNotBlocked
	}
	report := *l.blocked
	l.mu.Unlock()

	if report.File == "" {
		l.center.Error("Cannot remove", "The blocked add-on's file name is unknown. Remove it from the mods folder manually.")
		return fmt.Errorf("blocked report has no file name")
	}

	inst, ok := l.session.Selected()
	if !ok {
		return domain.ErrNoInstanceSelected
	}

	if err := l.backend.DeleteInstanceMod(ctx, inst.ID, report.File); err != nil {
		l.center.Error("Remove failed", "Could not delete %s: %s", report.File, err.Error())
		return fmt.Errorf("deleting %s: %w", report.File, err)
	}

	l.center.Success("Add-on removed", "Deleted %s. Launching again.", report.File)
	l.transition(domain.LaunchIdle, "")
	return l.Play(ctx)
}

// Events returns the lifecycle handlers to subscribe on the backend bridge.
func (l *Launcher) Events() backend.EventHandlers {
	return backend.EventHandlers{
		OnLaunching: l.HandleLaunching,
		OnStarted:   l.HandleStarted,
		OnExited:    l.HandleExited,
	}
}
