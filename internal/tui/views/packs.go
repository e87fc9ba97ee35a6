package views

import (
	"fmt"
	"strings"

	"mcl/internal/domain"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

// InstallPackMsg asks for a curated pack to be installed.
type InstallPackMsg struct {
	Pack domain.CuratedPack
}

// Packs lists the curated add-on packs for one-click install.
type Packs struct {
	packs  []domain.CuratedPack
	loader domain.Loader
	cursor int
	width  int
	height int
}

// NewPacks creates the curated pack view for an instance's loader.
func NewPacks(packs []domain.CuratedPack, loader domain.Loader) Packs {
	return Packs{
		packs:  packs,
		loader: loader,
		width:  80,
		height: 24,
	}
}

// Highlighted returns the pack under the cursor.
func (p Packs) Highlighted() *domain.CuratedPack {
	if len(p.packs) == 0 || p.cursor >= len(p.packs) {
		return nil
	}
	return &p.packs[p.cursor]
}

// Init implements tea.Model
func (p Packs) Init() tea.Cmd {
	return nil
}

// Update implements tea.Model
func (p Packs) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return p.handleKeyPress(msg)

	case tea.WindowSizeMsg:
		p.width = msg.Width
		p.height = msg.Height
		return p, nil
	}

	return p, nil
}

func (p Packs) handleKeyPress(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "up", "k":
		if len(p.packs) > 0 {
			p.cursor--
			if p.cursor < 0 {
				p.cursor = len(p.packs) - 1
			}
		}
		return p, nil

	case "down", "j":
		if len(p.packs) > 0 {
			p.cursor++
			if p.cursor >= len(p.packs) {
				p.cursor = 0
			}
		}
		return p, nil

	case "enter", " ":
		if pack := p.Highlighted(); pack != nil {
			picked := *pack
			return p, func() tea.Msg { return InstallPackMsg{Pack: picked} }
		}
		return p, nil
	}

	return p, nil
}

// View implements tea.Model
func (p Packs) View() string {
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

	detailStyle := lipgloss.NewStyle().
		Foreground(lipgloss.Color("241")).
		PaddingLeft(4)

	warnStyle := lipgloss.NewStyle().
		Foreground(lipgloss.Color("214")).
		PaddingLeft(4)

	output := titleStyle.Render("Curated Packs") + "\n"

	if len(p.packs) == 0 {
		output += itemStyle.Render("No packs configured.") + "\n"
		return output
	}

	for i, pack := range p.packs {
		cursor := "  "
		style := itemStyle
		if i == p.cursor {
			cursor = "▸ "
			style = cursorStyle
		}

		slugs := pack.SlugsFor(p.loader)
		output += style.Render(fmt.Sprintf("%s%s (%d add-ons)", cursor, pack.Name, len(slugs))) + "\n"

		if i == p.cursor {
			if pack.Description != "" {
				output += detailStyle.Render(pack.Description) + "\n"
			}
			if len(slugs) == 0 {
				output += warnStyle.Render(fmt.Sprintf("Nothing to install on the %s loader.", p.loader)) + "\n"
			} else {
				output += detailStyle.Render(strings.Join(slugs, ", ")) + "\n"
			}
		}
	}

	helpStyle := lipgloss.NewStyle().
		Foreground(lipgloss.Color("241")).
		MarginTop(1)
	output += helpStyle.Render("↑/↓: navigate  enter: install pack")

	return output
}
