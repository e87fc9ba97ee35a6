package views

import (
	"fmt"

	"mcl/internal/domain"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

// NewsLoadedMsg carries fetched news entries.
type NewsLoadedMsg struct {
	Items []domain.NewsItem
}

// NewsErrorMsg indicates the feed could not be fetched.
type NewsErrorMsg struct {
	Err error
}

// News shows launcher patch notes.
type News struct {
	items   []domain.NewsItem
	cursor  int
	loading bool
	err     error
	width   int
	height  int
}

// NewNews creates the news view in its loading state.
func NewNews() News {
	return News{loading: true, width: 80, height: 24}
}

// Init implements tea.Model
func (n News) Init() tea.Cmd {
	return nil
}

// Update implements tea.Model
func (n News) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "up", "k":
			if len(n.items) > 0 {
				n.cursor--
				if n.cursor < 0 {
					n.cursor = len(n.items) - 1
				}
			}
		case "down", "j":
			if len(n.items) > 0 {
				n.cursor++
				if n.cursor >= len(n.items) {
					n.cursor = 0
				}
			}
		}
		return n, nil

	case tea.WindowSizeMsg:
		n.width = msg.Width
		n.height = msg.Height
		return n, nil

	case NewsLoadedMsg:
		n.items = msg.Items
		n.loading = false
		n.err = nil
		return n, nil

	case NewsErrorMsg:
		n.err = msg.Err
		n.loading = false
		return n, nil
	}

	return n, nil
}

// View implements tea.Model
func (n News) View() string {
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

	output := titleStyle.Render("News") + "\n"

	if n.loading {
		output += itemStyle.Render("Loading...") + "\n"
		return output
	}
	if n.err != nil {
		errorStyle := lipgloss.NewStyle().Foreground(lipgloss.Color("196"))
		output += errorStyle.Render(fmt.Sprintf("Error: %v", n.err)) + "\n"
		return output
	}
	if len(n.items) == 0 {
		output += itemStyle.Render("No news.") + "\n"
		return output
	}

	for i, item := range n.items {
		cursor := "  "
		style := itemStyle
		if i == n.cursor {
			cursor = "▸ "
			style = cursorStyle
		}

		line := cursor + item.Title
		if item.Date != "" {
			line += "  (" + item.Date + ")"
		}
		output += style.Render(line) + "\n"

		if i == n.cursor {
			if item.Summary != "" {
				output += detailStyle.Render(item.Summary) + "\n"
			}
			if item.URL != "" {
				output += detailStyle.Render(item.URL) + "\n"
			}
		}
	}

	return output
}
