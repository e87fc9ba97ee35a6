package tui

import (
	"context"
	"fmt"

	"mcl/internal/core"
	"mcl/internal/domain"
	"mcl/internal/notify"
	"mcl/internal/tui/views"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

// ViewType represents different screens in the TUI
type ViewType int

const (
	ViewLaunch ViewType = iota
	ViewInstances
	ViewBrowser
	ViewPacks
	ViewNews
)

// NavigateMsg is sent to change views
type NavigateMsg struct {
	View ViewType
}

// ErrorMsg is sent when an operation fails
type ErrorMsg struct {
	Err error
}

// NotificationMsg carries a notification into the status line
type NotificationMsg struct {
	Notification notify.Notification
}

// RefreshedMsg signals that the session was reloaded from the backend
type RefreshedMsg struct{}

// App is the main TUI application model
type App struct {
	service     *core.Service
	currentView ViewType
	width       int
	height      int
	statusLine  string
	err         error

	launch    tea.Model
	instances tea.Model
	browser   tea.Model
	packs     tea.Model
	news      tea.Model
}

// NewApp creates the TUI over an assembled, connected service.
func NewApp(service *core.Service) App {
	app := App{
		service:     service,
		currentView: ViewLaunch,
		width:       80,
		height:      24,
	}
	app.rebuildViews()
	return app
}

// rebuildViews recreates the sub-models from current session state. Called
// after anything that changes the selected instance.
func (a *App) rebuildViews() {
	var instPtr *domain.Instance
	var accPtr *domain.Account
	selectedID := ""
	loader := domain.LoaderVanilla
	var instances []domain.Instance

	if session := a.service.Session(); session != nil {
		if inst, ok := session.Selected(); ok {
			copied := inst
			instPtr = &copied
			selectedID = inst.ID
			loader = inst.Loader
		}
		if acc, ok := session.Account(); ok {
			copied := acc
			accPtr = &copied
		}
		instances = session.Instances()
	}

	a.launch = views.NewLaunch(instPtr, accPtr)
	a.instances = views.NewInstances(instances, selectedID)
	a.browser = views.NewBrowser(loader)
	a.packs = views.NewPacks(a.service.Packs(), loader)
	a.news = views.NewNews()
}

// CurrentView returns the current view type
func (a App) CurrentView() ViewType {
	return a.currentView
}

// Init implements tea.Model
func (a App) Init() tea.Cmd {
	return a.loadNewsCmd()
}

// Update implements tea.Model
func (a App) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return a.handleKeyPress(msg)

	case tea.WindowSizeMsg:
		a.width = msg.Width
		a.height = msg.Height
		return a.updateAllViews(msg)

	case NavigateMsg:
		a.currentView = msg.View
		return a, nil

	case ErrorMsg:
		a.err = msg.Err
		return a, nil

	case NotificationMsg:
		a.statusLine = fmt.Sprintf("%s: %s", msg.Notification.Title, msg.Notification.Message)
		return a, nil

	case RefreshedMsg:
		a.rebuildViews()
		return a, nil

	// Lifecycle updates always land on the home view, whichever tab is open
	case views.PhaseMsg, views.BlockedMsg:
		var cmd tea.Cmd
		a.launch, cmd = a.launch.Update(msg)
		return a, cmd

	// Intents raised by the sub-views
	case views.PlayMsg:
		return a, a.playCmd()
	case views.RemoveAndRetryMsg:
		return a, a.removeAndRetryCmd()
	case views.DismissBlockedMsg:
		_ = a.service.Launcher().Dismiss()
		return a.updateCurrentView(msg)
	case views.OpenFolderMsg:
		return a, a.openFolderCmd()
	case views.SelectInstanceMsg:
		return a, a.selectInstanceCmd(msg.InstanceID)
	case views.DeleteInstanceMsg:
		return a, a.deleteInstanceCmd(msg.InstanceID)
	case views.SearchMsg:
		return a.updateCurrentView(msg, a.searchCmd(msg.Query, msg.Kind))
	case views.InstallAddonMsg:
		return a, a.installAddonCmd(msg.Ref, msg.Kind)
	case views.InstallPackMsg:
		return a, a.installPackCmd(msg.Pack)
	}

	return a.updateCurrentView(msg)
}

func (a App) handleKeyPress(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	// Text inputs swallow printable keys while focused
	if a.currentView == ViewBrowser {
		if b, ok := a.browser.(interface{ IsSearchFocused() bool }); ok && b.IsSearchFocused() {
			return a.updateCurrentView(msg)
		}
	}

	switch msg.String() {
	case "q", "ctrl+c":
		return a, tea.Quit

	case "1":
		a.currentView = ViewLaunch
		return a, nil

	case "2":
		a.currentView = ViewInstances
		return a, nil

	case "3":
		a.currentView = ViewBrowser
		return a, nil

	case "4":
		a.currentView = ViewPacks
		return a, nil

	case "5":
		a.currentView = ViewNews
		return a, nil
	}

	return a.updateCurrentView(msg)
}

func (a App) updateCurrentView(msg tea.Msg, extra ...tea.Cmd) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd

	switch a.currentView {
	case ViewLaunch:
		a.launch, cmd = a.launch.Update(msg)
	case ViewInstances:
		a.instances, cmd = a.instances.Update(msg)
	case ViewBrowser:
		a.browser, cmd = a.browser.Update(msg)
	case ViewPacks:
		a.packs, cmd = a.packs.Update(msg)
	case ViewNews:
		a.news, cmd = a.news.Update(msg)
	}

	return a, tea.Batch(append([]tea.Cmd{cmd}, extra...)...)
}

func (a App) updateAllViews(msg tea.Msg) (tea.Model, tea.Cmd) {
	a.launch, _ = a.launch.Update(msg)
	a.instances, _ = a.instances.Update(msg)
	a.browser, _ = a.browser.Update(msg)
	a.packs, _ = a.packs.Update(msg)
	a.news, _ = a.news.Update(msg)
	return a, nil
}

func (a App) playCmd() tea.Cmd {
	launcher := a.service.Launcher()
	return func() tea.Msg {
		if err := launcher.Play(context.Background()); err != nil {
			if report, ok := launcher.Blocked(); ok {
				return views.BlockedMsg{Report: report}
			}
			return ErrorMsg{Err: err}
		}
		phase, status := launcher.Phase()
		return views.PhaseMsg{Phase: phase, Status: status}
	}
}

func (a App) removeAndRetryCmd() tea.Cmd {
	launcher := a.service.Launcher()
	return func() tea.Msg {
		if err := launcher.RemoveAndRetry(context.Background()); err != nil {
			if report, ok := launcher.Blocked(); ok {
				return views.BlockedMsg{Report: report}
			}
			return ErrorMsg{Err: err}
		}
		phase, status := launcher.Phase()
		return views.PhaseMsg{Phase: phase, Status: status}
	}
}

func (a App) openFolderCmd() tea.Cmd {
	session := a.service.Session()
	client := a.service.Backend()
	return func() tea.Msg {
		inst, ok := session.Selected()
		if !ok {
			return ErrorMsg{Err: domain.ErrNoInstanceSelected}
		}
		if err := client.OpenInstanceFolder(context.Background(), inst.ID); err != nil {
			return ErrorMsg{Err: err}
		}
		return nil
	}
}

func (a App) selectInstanceCmd(instanceID string) tea.Cmd {
	service := a.service
	return func() tea.Msg {
		if err := service.SelectInstance(context.Background(), instanceID); err != nil {
			return ErrorMsg{Err: err}
		}
		return RefreshedMsg{}
	}
}

func (a App) deleteInstanceCmd(instanceID string) tea.Cmd {
	session := a.service.Session()
	return func() tea.Msg {
		if err := session.DeleteInstance(context.Background(), instanceID); err != nil {
			return ErrorMsg{Err: err}
		}
		return RefreshedMsg{}
	}
}

func (a App) searchCmd(query string, kind domain.AddonKind) tea.Cmd {
	session := a.service.Session()
	registry := a.service.Registry()
	return func() tea.Msg {
		_, loader, err := session.Target()
		if err != nil {
			return views.SearchErrorMsg{Err: err}
		}
		refs, err := registry.Search(context.Background(), query, kind, 0, loader)
		if err != nil {
			return views.SearchErrorMsg{Err: err}
		}
		return views.SearchResultsMsg{Refs: refs}
	}
}

func (a App) installAddonCmd(ref domain.AddonRef, kind domain.AddonKind) tea.Cmd {
	session := a.service.Session()
	client := a.service.Backend()
	center := a.service.Notifications()
	return func() tea.Msg {
		version, loader, err := session.Target()
		if err != nil {
			return ErrorMsg{Err: err}
		}
		if !domain.CanInstall(loader, kind) {
			return ErrorMsg{Err: fmt.Errorf("mods need a modded loader")}
		}
		if err := client.InstallProject(context.Background(), ref.ID, version, kind, loader); err != nil {
			center.Error("Install failed", "%s: %s", ref.Title, err.Error())
			return ErrorMsg{Err: err}
		}
		center.Success("Installed", "%s added to the instance", ref.Title)
		return nil
	}
}

func (a App) installPackCmd(pack domain.CuratedPack) tea.Cmd {
	session := a.service.Session()
	installer := a.service.PackInstaller()
	return func() tea.Msg {
		version, loader, err := session.Target()
		if err != nil {
			return ErrorMsg{Err: err}
		}
		if _, err := installer.Install(context.Background(), pack, version, loader); err != nil {
			return ErrorMsg{Err: err}
		}
		return nil
	}
}

func (a App) loadNewsCmd() tea.Cmd {
	meta := a.service.Meta()
	return func() tea.Msg {
		items, err := meta.News(context.Background(), 0)
		if err != nil {
			return views.NewsErrorMsg{Err: err}
		}
		return views.NewsLoadedMsg{Items: items}
	}
}

// View implements tea.Model
func (a App) View() string {
	titleStyle := lipgloss.NewStyle().
		Bold(true).
		Foreground(lipgloss.Color("205")).
		MarginBottom(1)

	tabStyle := lipgloss.NewStyle().
		Foreground(lipgloss.Color("241"))

	activeTabStyle := lipgloss.NewStyle().
		Foreground(lipgloss.Color("205")).
		Bold(true)

	header := titleStyle.Render("mcl - Minecraft Launcher")

	tabs := []string{"[1]Play", "[2]Instances", "[3]Browse", "[4]Packs", "[5]News"}
	tabBar := ""
	for i, tab := range tabs {
		if ViewType(i) == a.currentView {
			tabBar += activeTabStyle.Render(tab) + "  "
		} else {
			tabBar += tabStyle.Render(tab) + "  "
		}
	}

	content := a.renderCurrentView()

	if a.err != nil {
		errStyle := lipgloss.NewStyle().Foreground(lipgloss.Color("196"))
		content += "\n" + errStyle.Render(fmt.Sprintf("Error: %v", a.err))
	}

	footerStyle := lipgloss.NewStyle().
		Foreground(lipgloss.Color("241")).
		MarginTop(1)
	footer := footerStyle.Render("q: quit")
	if a.statusLine != "" {
		footer = footerStyle.Render(a.statusLine) + "\n" + footer
	}

	return fmt.Sprintf("%s\n%s\n\n%s\n\n%s", header, tabBar, content, footer)
}

func (a App) renderCurrentView() string {
	switch a.currentView {
	case ViewLaunch:
		return a.launch.View()
	case ViewInstances:
		return a.instances.View()
	case ViewBrowser:
		return a.browser.View()
	case ViewPacks:
		return a.packs.View()
	case ViewNews:
		return a.news.View()
	default:
		return "Unknown view"
	}
}

// Run starts the TUI. Launch lifecycle updates and notifications are pumped
// into the program from the service's subscriptions.
func Run(service *core.Service) error {
	app := NewApp(service)
	p := tea.NewProgram(app, tea.WithAltScreen())

	service.Notifications().Subscribe(func(n notify.Notification) {
		p.Send(NotificationMsg{Notification: n})
	})
	if launcher := service.Launcher(); launcher != nil {
		launcher.OnPhaseChange(func(phase domain.LaunchPhase, status string) {
			if phase == domain.LaunchBlocked {
				if report, ok := launcher.Blocked(); ok {
					p.Send(views.BlockedMsg{Report: report})
					return
				}
			}
			p.Send(views.PhaseMsg{Phase: phase, Status: status})
		})
	}

	_, err := p.Run()
	return err
}
