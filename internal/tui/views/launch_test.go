package views_test

import (
	"testing"

	"mcl/internal/domain"
	"mcl/internal/tui/views"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func keyMsg(s string) tea.KeyMsg {
	switch s {
	case "enter":
		return tea.KeyMsg{Type: tea.KeyEnter}
	case "esc":
		return tea.KeyMsg{Type: tea.KeyEsc}
	case "tab":
		return tea.KeyMsg{Type: tea.KeyTab}
	default:
		return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
	}
}

func collect(cmd tea.Cmd) tea.Msg {
	if cmd == nil {
		return nil
	}
	return cmd()
}

func testInstance() *domain.Instance {
	return &domain.Instance{ID: "a", Name: "Main", McVersion: "1.21.4", Loader: domain.LoaderFabric}
}

func TestLaunchEnterEmitsPlay(t *testing.T) {
	view := views.NewLaunch(testInstance(), &domain.Account{Username: "steve"})

	_, cmd := view.Update(keyMsg("enter"))
	msg := collect(cmd)
	assert.IsType(t, views.PlayMsg{}, msg)
}

func TestLaunchIgnoresPlayWhileLaunching(t *testing.T) {
	view := views.NewLaunch(testInstance(), nil)

	model, _ := view.Update(views.PhaseMsg{Phase: domain.LaunchLaunching, Status: "Preparing game..."})
	view = model.(views.Launch)

	_, cmd := view.Update(keyMsg("enter"))
	assert.Nil(t, collect(cmd))
}

func TestLaunchBlockedModalKeys(t *testing.T) {
	view := views.NewLaunch(testInstance(), nil)

	model, _ := view.Update(views.BlockedMsg{Report: domain.BlockedReport{
		Title: "Launch blocked", Body: "A disallowed add-on was detected: wurst", File: "wurst.jar",
	}})
	view = model.(views.Launch)
	require.NotNil(t, view.BlockedReport())
	assert.Equal(t, domain.LaunchBlocked, view.Phase())

	_, cmd := view.Update(keyMsg("r"))
	assert.IsType(t, views.RemoveAndRetryMsg{}, collect(cmd))

	_, cmd = view.Update(keyMsg("o"))
	assert.IsType(t, views.OpenFolderMsg{}, collect(cmd))

	// Play is not reachable while the modal shows
	_, cmd = view.Update(keyMsg("enter"))
	assert.Nil(t, collect(cmd))

	_, cmd = view.Update(keyMsg("esc"))
	msg := collect(cmd)
	require.IsType(t, views.DismissBlockedMsg{}, msg)

	model, _ = view.Update(msg)
	view = model.(views.Launch)
	assert.Nil(t, view.BlockedReport())
	assert.Equal(t, domain.LaunchIdle, view.Phase())
}

func TestLaunchPhaseMsgClearsModal(t *testing.T) {
	view := views.NewLaunch(testInstance(), nil)

	model, _ := view.Update(views.BlockedMsg{Report: domain.BlockedReport{Title: "Launch blocked"}})
	view = model.(views.Launch)

	model, _ = view.Update(views.PhaseMsg{Phase: domain.LaunchIdle})
	view = model.(views.Launch)
	assert.Nil(t, view.BlockedReport())
}

func TestLaunchViewRendersState(t *testing.T) {
	view := views.NewLaunch(testInstance(), &domain.Account{Username: "steve"})
	out := view.View()
	assert.Contains(t, out, "steve")
	assert.Contains(t, out, "Main")
	assert.Contains(t, out, "1.21.4")

	model, _ := view.Update(views.PhaseMsg{Phase: domain.LaunchLaunching, Status: "Downloading libraries..."})
	view = model.(views.Launch)
	assert.Contains(t, view.View(), "Downloading libraries...")
}
