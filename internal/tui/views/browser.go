package views

import (
	"fmt"

	"mcl/internal/domain"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

// SearchMsg asks the registry to be searched.
type SearchMsg struct {
	Query string
	Kind  domain.AddonKind
}

// SearchResultsMsg carries registry search results.
type SearchResultsMsg struct {
	Refs []domain.AddonRef
}

// SearchErrorMsg indicates a failed search.
type SearchErrorMsg struct {
	Err error
}

// InstallAddonMsg asks for an add-on to be installed into the selected
// instance.
type InstallAddonMsg struct {
	Ref  domain.AddonRef
	Kind domain.AddonKind
}

// kinds cycled by tab, in display order.
var browserKinds = []domain.AddonKind{domain.KindMod, domain.KindResourcePack, domain.KindShader}

// Browser searches the add-on registry. Mods are greyed out and not
// installable while the selected instance runs the vanilla loader; resource
// packs and shaders always install.
type Browser struct {
	loader domain.Loader

	searchInput   textinput.Model
	searchFocused bool
	kindIndex     int
	results       []domain.AddonRef
	selected      int
	loading       bool
	err           error
	width         int
	height        int
}

// NewBrowser creates the registry browser for an instance's loader.
func NewBrowser(loader domain.Loader) Browser {
	ti := textinput.New()
	ti.Placeholder = "Search add-ons..."
	ti.Focus()
	ti.CharLimit = 100
	ti.Width = 40

	return Browser{
		loader:        loader,
		searchInput:   ti,
		searchFocused: true,
		width:         80,
		height:        24,
	}
}

// IsSearchFocused reports whether the search input is capturing keys.
func (b Browser) IsSearchFocused() bool {
	return b.searchFocused
}

// Kind returns the add-on kind currently being browsed.
func (b Browser) Kind() domain.AddonKind {
	return browserKinds[b.kindIndex]
}

// CanInstallSelected reports whether the highlighted result may be
// installed on the instance's loader.
func (b Browser) CanInstallSelected() bool {
	return domain.CanInstall(b.loader, b.Kind())
}

// SelectedRef returns the highlighted result.
func (b Browser) SelectedRef() *domain.AddonRef {
	if len(b.results) == 0 || b.selected >= len(b.results) {
		return nil
	}
	return &b.results[b.selected]
}

// ResultCount returns the number of results showing.
func (b Browser) ResultCount() int {
	return len(b.results)
}

// Init implements tea.Model
func (b Browser) Init() tea.Cmd {
	return textinput.Blink
}

// Update implements tea.Model
func (b Browser) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd

	switch msg := msg.(type) {
	case tea.KeyMsg:
		return b.handleKeyPress(msg)

	case tea.WindowSizeMsg:
		b.width = msg.Width
		b.height = msg.Height
		return b, nil

	case SearchResultsMsg:
		b.results = msg.Refs
		b.loading = false
		b.err = nil
		b.selected = 0
		return b, nil

	case SearchErrorMsg:
		b.err = msg.Err
		b.loading = false
		return b, nil
	}

	if b.searchFocused {
		b.searchInput, cmd = b.searchInput.Update(msg)
		return b, cmd
	}

	return b, nil
}

func (b Browser) handleKeyPress(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if b.searchFocused {
		switch msg.Type {
		case tea.KeyEsc:
			b.searchFocused = false
			b.searchInput.Blur()
			return b, nil

		case tea.KeyEnter:
			query := b.searchInput.Value()
			kind := b.Kind()
			b.loading = true
			b.searchFocused = false
			b.searchInput.Blur()
			return b, func() tea.Msg { return SearchMsg{Query: query, Kind: kind} }

		default:
			var cmd tea.Cmd
			b.searchInput, cmd = b.searchInput.Update(msg)
			return b, cmd
		}
	}

	switch msg.String() {
	case "/":
		b.searchFocused = true
		b.searchInput.Focus()
		return b, nil

	case "tab":
		b.kindIndex = (b.kindIndex + 1) % len(browserKinds)
		b.results = nil
		b.selected = 0
		return b, nil

	case "up", "k":
		if len(b.results) > 0 {
			b.selected--
			if b.selected < 0 {
				b.selected = len(b.results) - 1
			}
		}
		return b, nil

	case "down", "j":
		if len(b.results) > 0 {
			b.selected++
			if b.selected >= len(b.results) {
				b.selected = 0
			}
		}
		return b, nil

	case "enter", " ":
		ref := b.SelectedRef()
		if ref == nil || !b.CanInstallSelected() {
			return b, nil
		}
		picked := *ref
		kind := b.Kind()
		return b, func() tea.Msg { return InstallAddonMsg{Ref: picked, Kind: kind} }
	}

	return b, nil
}

// View implements tea.Model
func (b Browser) View() string {
	titleStyle := lipgloss.NewStyle().
		Bold(true).
		Foreground(lipgloss.Color("69")).
		MarginBottom(1)

	tabStyle := lipgloss.NewStyle().
		Foreground(lipgloss.Color("241"))

	activeTabStyle := lipgloss.NewStyle().
		Foreground(lipgloss.Color("205")).
		Bold(true)

	itemStyle := lipgloss.NewStyle().
		PaddingLeft(2)

	selectedStyle := lipgloss.NewStyle().
		PaddingLeft(2).
		Foreground(lipgloss.Color("205")).
		Bold(true)

	detailStyle := lipgloss.NewStyle().
		Foreground(lipgloss.Color("241")).
		PaddingLeft(4)

	warnStyle := lipgloss.NewStyle().
		Foreground(lipgloss.Color("214"))

	errorStyle := lipgloss.NewStyle().
		Foreground(lipgloss.Color("196"))

	output := titleStyle.Render("Browse Add-ons") + "\n"

	for i, kind := range browserKinds {
		label := fmt.Sprintf("[%s]", kind)
		if i == b.kindIndex {
			output += activeTabStyle.Render(label) + "  "
		} else {
			output += tabStyle.Render(label) + "  "
		}
	}
	output += "\n\n"

	if !domain.CanInstall(b.loader, b.Kind()) {
		output += warnStyle.Render("Mods need a modded loader; this instance runs vanilla.") + "\n\n"
	}

	searchLabel := "Search: "
	if b.searchFocused {
		searchLabel = "Search (esc to exit): "
	}
	output += searchLabel + b.searchInput.View() + "\n\n"

	if b.loading {
		output += warnStyle.Render("Searching...") + "\n"
		return output
	}

	if b.err != nil {
		output += errorStyle.Render(fmt.Sprintf("Error: %v", b.err)) + "\n"
		return output
	}

	if len(b.results) == 0 {
		output += itemStyle.Render("Enter a search term and press Enter.") + "\n"
	} else {
		for i, ref := range b.results {
			cursor := "  "
			style := itemStyle
			if i == b.selected {
				cursor = "▸ "
				style = selectedStyle
			}
			output += style.Render(cursor+ref.Title) + "\n"

			if i == b.selected {
				if ref.Description != "" {
					output += detailStyle.Render(ref.Description) + "\n"
				}
				output += detailStyle.Render(fmt.Sprintf("Downloads: %d", ref.Downloads)) + "\n"
			}
		}
	}

	helpStyle := lipgloss.NewStyle().
		Foreground(lipgloss.Color("241")).
		MarginTop(1)
	output += helpStyle.Render("/: search  tab: kind  ↑/↓: navigate  enter: install")

	return output
}
