package views

import (
	"fmt"

	"mcl/internal/domain"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

// PlayMsg is sent when the user presses the play control.
type PlayMsg struct{}

// PhaseMsg carries a launch phase change into the view.
type PhaseMsg struct {
	Phase  domain.LaunchPhase
	Status string
}

// BlockedMsg shows the blocked-launch modal.
type BlockedMsg struct {
	Report domain.BlockedReport
}

// DismissBlockedMsg closes the blocked-launch modal.
type DismissBlockedMsg struct{}

// RemoveAndRetryMsg asks for the blocked file to be deleted and the launch
// retried.
type RemoveAndRetryMsg struct{}

// OpenFolderMsg asks for the selected instance's folder to be opened.
type OpenFolderMsg struct{}

// Launch is the home screen: selected instance, account, play control, and
// the blocked-launch modal when the backend refuses a launch.
type Launch struct {
	instance *domain.Instance
	account  *domain.Account

	phase   domain.LaunchPhase
	status  string
	blocked *domain.BlockedReport

	width  int
	height int
}

// NewLaunch creates the home view.
func NewLaunch(instance *domain.Instance, account *domain.Account) Launch {
	return Launch{
		instance: instance,
		account:  account,
		phase:    domain.LaunchIdle,
		width:    80,
		height:   24,
	}
}

// Phase returns the launch phase the view is showing.
func (l Launch) Phase() domain.LaunchPhase {
	return l.phase
}

// BlockedReport returns the modal's report when one is showing.
func (l Launch) BlockedReport() *domain.BlockedReport {
	return l.blocked
}

// SetInstance updates the instance shown on the home screen.
func (l Launch) SetInstance(instance *domain.Instance) Launch {
	l.instance = instance
	return l
}

// Init implements tea.Model
func (l Launch) Init() tea.Cmd {
	return nil
}

// Update implements tea.Model
func (l Launch) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return l.handleKeyPress(msg)

	case tea.WindowSizeMsg:
		l.width = msg.Width
		l.height = msg.Height
		return l, nil

	case PhaseMsg:
		l.phase = msg.Phase
		l.status = msg.Status
		if msg.Phase != domain.LaunchBlocked {
			l.blocked = nil
		}
		return l, nil

	case BlockedMsg:
		l.phase = domain.LaunchBlocked
		report := msg.Report
		l.blocked = &report
		return l, nil

	case DismissBlockedMsg:
		l.blocked = nil
		l.phase = domain.LaunchIdle
		return l, nil
	}

	return l, nil
}

func (l Launch) handleKeyPress(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	// The modal captures input while showing
	if l.blocked != nil {
		switch msg.String() {
		case "esc":
			return l, func() tea.Msg { return DismissBlockedMsg{} }
		case "r":
			return l, func() tea.Msg { return RemoveAndRetryMsg{} }
		case "o":
			return l, func() tea.Msg { return OpenFolderMsg{} }
		}
		return l, nil
	}

	switch msg.String() {
	case "enter", "p":
		if l.phase == domain.LaunchIdle {
			return l, func() tea.Msg { return PlayMsg{} }
		}
		return l, nil

	case "o":
		return l, func() tea.Msg { return OpenFolderMsg{} }
	}

	return l, nil
}

// View implements tea.Model
func (l Launch) View() string {
	titleStyle := lipgloss.NewStyle().
		Bold(true).
		Foreground(lipgloss.Color("69")).
		MarginBottom(1)

	labelStyle := lipgloss.NewStyle().
		Foreground(lipgloss.Color("241"))

	statusStyle := lipgloss.NewStyle().
		Foreground(lipgloss.Color("214"))

	playStyle := lipgloss.NewStyle().
		Bold(true).
		Foreground(lipgloss.Color("42"))

	output := titleStyle.Render("Play") + "\n"

	if l.account != nil {
		output += labelStyle.Render(fmt.Sprintf("Signed in as %s", l.account.Username)) + "\n"
	} else {
		output += labelStyle.Render("Not signed in. Run: mcl account login") + "\n"
	}

	if l.instance != nil {
		output += labelStyle.Render(fmt.Sprintf("Instance: %s (%s, %s)",
			l.instance.Name, l.instance.EffectiveVersion(), l.instance.Loader)) + "\n\n"
	} else {
		output += labelStyle.Render("No instance selected.") + "\n\n"
	}

	if l.blocked != nil {
		return output + l.renderBlockedModal()
	}

	switch l.phase {
	case domain.LaunchIdle:
		output += playStyle.Render("▶ Press enter to play") + "\n"
	case domain.LaunchLaunching:
		output += statusStyle.Render(l.status) + "\n"
	case domain.LaunchStarted:
		output += playStyle.Render("Game is running") + "\n"
	case domain.LaunchExited:
		output += labelStyle.Render(l.status) + "\n"
	}

	helpStyle := lipgloss.NewStyle().
		Foreground(lipgloss.Color("241")).
		MarginTop(1)
	output += helpStyle.Render("enter: play  o: open folder")

	return output
}

func (l Launch) renderBlockedModal() string {
	modalStyle := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(lipgloss.Color("196")).
		Padding(1, 2)

	titleStyle := lipgloss.NewStyle().
		Bold(true).
		Foreground(lipgloss.Color("196"))

	helpStyle := lipgloss.NewStyle().
		Foreground(lipgloss.Color("241"))

	body := titleStyle.Render(l.blocked.Title) + "\n\n" + l.blocked.Body + "\n\n"
	if l.blocked.File != "" {
		body += helpStyle.Render("r: remove and retry  o: open folder  esc: dismiss")
	} else {
		body += helpStyle.Render("o: open folder  esc: dismiss")
	}

	return modalStyle.Render(body)
}
