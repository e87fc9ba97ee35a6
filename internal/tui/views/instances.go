package views

import (
	"fmt"

	"mcl/internal/domain"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

// SelectInstanceMsg is sent when the user picks an instance.
type SelectInstanceMsg struct {
	InstanceID string
}

// DeleteInstanceMsg asks for an instance to be deleted.
type DeleteInstanceMsg struct {
	InstanceID string
}

// InstancesLoadedMsg refreshes the list.
type InstancesLoadedMsg struct {
	Instances  []domain.Instance
	SelectedID string
}

// Instances lists the launcher's instances and lets the user switch the
// active one.
type Instances struct {
	instances  []domain.Instance
	selectedID string
	cursor     int
	width      int
	height     int
}

// NewInstances creates the instance list view.
func NewInstances(instances []domain.Instance, selectedID string) Instances {
	return Instances{
		instances:  instances,
		selectedID: selectedID,
		width:      80,
		height:     24,
	}
}

// Cursor returns the highlighted row.
func (v Instances) Cursor() int {
	return v.cursor
}

// Highlighted returns the instance under the cursor.
func (v Instances) Highlighted() *domain.Instance {
	if len(v.instances) == 0 || v.cursor >= len(v.instances) {
		return nil
	}
	return &v.instances[v.cursor]
}

// Init implements tea.Model
func (v Instances) Init() tea.Cmd {
	return nil
}

// Update implements tea.Model
func (v Instances) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return v.handleKeyPress(msg)

	case tea.WindowSizeMsg:
		v.width = msg.Width
		v.height = msg.Height
		return v, nil

	case InstancesLoadedMsg:
		v.instances = msg.Instances
		v.selectedID = msg.SelectedID
		if v.cursor >= len(v.instances) {
			v.cursor = 0
		}
		return v, nil
	}

	return v, nil
}

func (v Instances) handleKeyPress(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "up", "k":
		if len(v.instances) > 0 {
			v.cursor--
			if v.cursor < 0 {
				v.cursor = len(v.instances) - 1
			}
		}
		return v, nil

	case "down", "j":
		if len(v.instances) > 0 {
			v.cursor++
			if v.cursor >= len(v.instances) {
				v.cursor = 0
			}
		}
		return v, nil

	case "enter", " ":
		if inst := v.Highlighted(); inst != nil {
			id := inst.ID
			return v, func() tea.Msg { return SelectInstanceMsg{InstanceID: id} }
		}
		return v, nil

	case "d":
		if inst := v.Highlighted(); inst != nil {
			id := inst.ID
			return v, func() tea.Msg { return DeleteInstanceMsg{InstanceID: id} }
		}
		return v, nil
	}

	return v, nil
}

// View implements tea.Model
func (v Instances) View() string {
	titleStyle := lipgloss.NewStyle().
		Bold(true).
		Foreground(lipgloss.Color("69")).
		MarginBottom(1)

	itemStyle := lipgloss.NewStyle().
		PaddingLeft(2)

	cursorStyle := lipgloss.NewStyle().
		PaddingLeft(2).
		Foreground(lipgloss.Color("205")).
		Bold(true)

	activeStyle := lipgloss.NewStyle().
		Foreground(lipgloss.Color("42"))

	output := titleStyle.Render("Instances") + "\n"

	if len(v.instances) == 0 {
		output += itemStyle.Render("No instances. Create one with: mcl instance create <name>") + "\n"
		return output
	}

	for i, inst := range v.instances {
		marker := "  "
		style := itemStyle
		if i == v.cursor {
			marker = "▸ "
			style = cursorStyle
		}

		line := fmt.Sprintf("%s%s (%s, %s)", marker, inst.Name, inst.EffectiveVersion(), inst.Loader)
		if inst.ID == v.selectedID {
			line += activeStyle.Render("  ● active")
		}
		output += style.Render(line) + "\n"
	}

	helpStyle := lipgloss.NewStyle().
		Foreground(lipgloss.Color("241")).
		MarginTop(1)
	output += helpStyle.Render("↑/↓: navigate  enter: select  d: delete")

	return output
}
