package tui

import (
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/cat-catcher/internal/core"
)

// MenuItem is an entry of the boot menu.
type MenuItem int

const (
	MenuPlay MenuItem = iota
	MenuScores
	MenuCredits
	MenuClose
)

// String returns the label shown in the menu.
func (i MenuItem) String() string {
	switch i {
	case MenuPlay:
		return "Play"
	case MenuScores:
		return "High Scores"
	case MenuCredits:
		return "Credits"
	case MenuClose:
		return "Close"
	default:
		return "?"
	}
}

// menuView is the page the boot menu is showing.
type menuView int

const (
	viewItems menuView = iota
	viewCredits
	viewConfirmClose
)

var (
	menuTitleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("208"))
	menuSelectedStyle = lipgloss.NewStyle().
				Bold(true).
				Foreground(lipgloss.Color("229"))
	menuHintStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("241"))
)

// MenuModel is the Bubble Tea model for the boot menu.
type MenuModel struct {
	items     []MenuItem
	cursor    int
	view      menuView
	width     int
	height    int
	credits   []string
	config    core.RuntimeConfig
	keyMapper *KeyMapper
	quitting  bool
	selected  *MenuItem // Set when the user picks Play or High Scores
}

// NewMenuModel creates a new boot menu.
func NewMenuModel(cfg core.RuntimeConfig, credits []string) MenuModel {
	return MenuModel{
		items:     []MenuItem{MenuPlay, MenuScores, MenuCredits, MenuClose},
		width:     cfg.ScreenW,
		height:    cfg.ScreenH,
		credits:   credits,
		config:    cfg,
		keyMapper: NewKeyMapper(),
	}
}

// Init initializes the menu model.
func (m MenuModel) Init() tea.Cmd {
	return nil
}

// Update handles messages for the menu.
func (m MenuModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		if msg.String() == "ctrl+c" {
			m.quitting = true
			return m, tea.Quit
		}
		return m.handleKey(msg)

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.config.ScreenW = msg.Width
		m.config.ScreenH = msg.Height
		return m, nil
	}

	return m, nil
}

// handleKey processes keyboard input for the current page.
func (m MenuModel) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	action := m.keyMapper.MapKeyToMenuAction(msg)

	switch m.view {
	case viewCredits:
		if action == MenuActionSelect || action == MenuActionBack {
			m.view = viewItems
		}
		return m, nil

	case viewConfirmClose:
		switch action {
		case MenuActionYes:
			m.quitting = true
			return m, tea.Quit
		case MenuActionNo, MenuActionBack:
			m.view = viewItems
		}
		return m, nil
	}

	switch action {
	case MenuActionQuit:
		m.view = viewConfirmClose

	case MenuActionUp:
		if m.cursor > 0 {
			m.cursor--
		}

	case MenuActionDown:
		if m.cursor < len(m.items)-1 {
			m.cursor++
		}

	case MenuActionSelect:
		return m.activate(m.items[m.cursor])
	}

	return m, nil
}

func (m MenuModel) activate(item MenuItem) (tea.Model, tea.Cmd) {
	switch item {
	case MenuPlay, MenuScores:
		m.selected = &item
	case MenuCredits:
		m.view = viewCredits
	case MenuClose:
		m.view = viewConfirmClose
	}
	return m, nil
}

// View renders the menu.
func (m MenuModel) View() string {
	if m.quitting {
		return ""
	}

	var b strings.Builder
	b.WriteString("\n")
	b.WriteString(centerText(menuTitleStyle.Render("C A T   C A T C H E R"), m.width))
	b.WriteString("\n\n")

	switch m.view {
	case viewCredits:
		for _, line := range m.credits {
			b.WriteString(centerText(line, m.width))
			b.WriteString("\n")
		}
		b.WriteString("\n")
		b.WriteString(centerText(menuHintStyle.Render("Enter/Esc: Back"), m.width))

	case viewConfirmClose:
		b.WriteString(centerText("Close the game?", m.width))
		b.WriteString("\n\n")
		b.WriteString(centerText(menuHintStyle.Render("Y: Yes  |  N: No"), m.width))

	default:
		for i, item := range m.items {
			line := "  " + item.String()
			if i == m.cursor {
				line = menuSelectedStyle.Render("> " + item.String())
			}
			b.WriteString(centerText(line, m.width))
			b.WriteString("\n")
		}
		b.WriteString("\n")
		controls := "Up/Down: Navigate  |  Enter: Select  |  Q: Close"
		b.WriteString(centerText(menuHintStyle.Render(controls), m.width))
	}

	b.WriteString("\n")
	return b.String()
}

// Selected returns the chosen menu item, or nil if none was chosen.
func (m MenuModel) Selected() *MenuItem {
	return m.selected
}

// IsQuitting returns true if user requested to quit.
func (m MenuModel) IsQuitting() bool {
	return m.quitting
}

// Config returns the current runtime config (may have been updated by resize).
func (m MenuModel) Config() core.RuntimeConfig {
	return m.config
}

// centerText centers text within given width, measuring printable cells.
func centerText(text string, width int) string {
	w := lipgloss.Width(text)
	if w >= width {
		return text
	}
	padding := (width - w) / 2
	return strings.Repeat(" ", padding) + text
}
