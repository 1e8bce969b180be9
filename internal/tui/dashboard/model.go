package dashboard

import (
	"github.com/charmbracelet/bubbles/help"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/alexisbeaulieu97/extdeck/internal/controller"
	"github.com/alexisbeaulieu97/extdeck/internal/logger"
	"github.com/alexisbeaulieu97/extdeck/internal/view"
)

const (
	minWidth  = 60
	minHeight = 20

	// cardHeight is the painted height of one card: three content rows plus border.
	cardHeight = 5
	// chromeHeight reserves rows for the header, filter bar and footer.
	chromeHeight = 12
)

// Options tunes dashboard behaviour.
type Options struct {
	// ConfirmRemove asks before deleting an extension.
	ConfirmRemove bool
	// Unicode enables glyph icons instead of ASCII fallbacks.
	Unicode bool
}

// Model is the main dashboard model
type Model struct {
	// Core data
	ctrl *controller.Controller
	log  *logger.Logger

	// UI state
	keys         KeyMap
	help         help.Model
	styles       view.Styles
	viewMode     ViewMode
	cursor       int
	scrollOffset int

	// Confirmation state
	confirmCard view.Card

	// Banners
	showError bool
	errorMsg  string
	tooSmall  bool

	// Dimensions
	width  int
	height int

	// Configuration
	confirmations bool
	useUnicode    bool
}

// NewModel creates a new dashboard model around ctrl.
func NewModel(ctrl *controller.Controller, opts Options, log *logger.Logger) Model {
	m := Model{
		ctrl:          ctrl,
		log:           log.With("component", "dashboard"),
		keys:          DefaultKeyMap(),
		help:          help.New(),
		viewMode:      ViewList,
		confirmations: opts.ConfirmRemove,
		useUnicode:    opts.Unicode,
		width:         80,
		height:        24,
	}
	m.restyle()
	return m
}

// Init initializes the model and returns initial commands
func (m Model) Init() tea.Cmd {
	return nil
}

// Controller returns the controller driving this model.
func (m Model) Controller() *controller.Controller {
	return m.ctrl
}

// Cursor returns the index of the focused card.
func (m Model) Cursor() int {
	return m.cursor
}

// GetViewMode returns the current view mode
func (m Model) GetViewMode() ViewMode {
	return m.viewMode
}

// SelectedCard returns the focused card, if the page has any.
func (m Model) SelectedCard() (view.Card, bool) {
	return m.ctrl.Page().Card(m.cursor)
}

// MoveCursorUp moves cursor up with wrapping
func (m *Model) MoveCursorUp() {
	n := m.ctrl.Page().Len()
	if n == 0 {
		return
	}
	m.cursor--
	if m.cursor < 0 {
		m.cursor = n - 1
	}
	m.scrollToCursor()
}

// MoveCursorDown moves cursor down with wrapping
func (m *Model) MoveCursorDown() {
	n := m.ctrl.Page().Len()
	if n == 0 {
		return
	}
	m.cursor++
	if m.cursor >= n {
		m.cursor = 0
	}
	m.scrollToCursor()
}

// clampCursor keeps the cursor on the page after it shrinks.
func (m *Model) clampCursor() {
	n := m.ctrl.Page().Len()
	switch {
	case n == 0:
		m.cursor = 0
	case m.cursor >= n:
		m.cursor = n - 1
	case m.cursor < 0:
		m.cursor = 0
	}
	m.scrollToCursor()
}

func (m *Model) scrollToCursor() {
	visible := m.visibleCards()
	if m.cursor < m.scrollOffset {
		m.scrollOffset = m.cursor
	}
	if m.cursor >= m.scrollOffset+visible {
		m.scrollOffset = m.cursor - visible + 1
	}
	if last := m.ctrl.Page().Len() - visible; m.scrollOffset > last {
		m.scrollOffset = last
	}
	if m.scrollOffset < 0 {
		m.scrollOffset = 0
	}
}

// visibleCards is how many cards fit between header and footer.
func (m Model) visibleCards() int {
	rows := m.height - chromeHeight
	if m.showError {
		rows -= 3
	}
	if m.tooSmall {
		rows -= 3
	}
	n := rows / cardHeight
	if n < 1 {
		return 1
	}
	return n
}

// restyle rebuilds styles for the controller's theme and current width.
func (m *Model) restyle() {
	m.styles = view.NewStyles(m.ctrl.Theme()).WithWidth(m.width)
	m.help.Styles.ShortKey = m.styles.HelpKey.Width(0)
	m.help.Styles.ShortDesc = m.styles.Muted
	m.help.Styles.FullKey = m.styles.HelpKey.Width(0)
	m.help.Styles.FullDesc = m.styles.HelpDesc
	m.help.Width = m.width
}

func (m *Model) setError(msg string) {
	m.showError = true
	m.errorMsg = msg
}

func (m *Model) clearError() {
	m.showError = false
	m.errorMsg = ""
	m.ctrl.ClearErr()
}
