package dashboard

import (
	"fmt"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/alexisbeaulieu97/extdeck/internal/filter"
	"github.com/alexisbeaulieu97/extdeck/internal/view"
)

// Update handles incoming messages and updates the model
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.restyle()

		// The size banner is independent of showError/errorMsg.
		m.tooSmall = m.width < minWidth || m.height < minHeight
		m.clampCursor()
		return m, nil

	case tea.KeyMsg:
		return m.handleKeyPress(msg)
	}

	return m, nil
}

func (m Model) handleKeyPress(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch m.viewMode {
	case ViewList:
		return m.handleListKeys(msg)
	case ViewHelp:
		return m.handleHelpKeys(msg)
	case ViewConfirm:
		return m.handleConfirmKeys(msg)
	default:
		return m, nil
	}
}

func (m Model) handleListKeys(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Quit):
		return m, tea.Quit

	case key.Matches(msg, m.keys.Help):
		m.viewMode = ViewHelp
		m.help.ShowAll = true

	case key.Matches(msg, m.keys.Dismiss):
		if m.showError {
			m.clearError()
		}

	case key.Matches(msg, m.keys.Up):
		m.MoveCursorUp()

	case key.Matches(msg, m.keys.Down):
		m.MoveCursorDown()

	case key.Matches(msg, m.keys.Toggle):
		if card, ok := m.SelectedCard(); ok {
			card.Toggle()
			m.clampCursor()
		}

	case key.Matches(msg, m.keys.Remove):
		card, ok := m.SelectedCard()
		if !ok {
			break
		}
		if m.confirmations {
			m.confirmCard = card
			m.viewMode = ViewConfirm
			break
		}
		card.Remove()
		m.clampCursor()

	case key.Matches(msg, m.keys.FilterAll):
		m.applyFilter(filter.All)

	case key.Matches(msg, m.keys.FilterOn):
		m.applyFilter(filter.Active)

	case key.Matches(msg, m.keys.FilterOff):
		m.applyFilter(filter.Inactive)

	case key.Matches(msg, m.keys.NextFilter):
		m.applyFilter(m.ctrl.Filter().Next())

	case key.Matches(msg, m.keys.ToggleTheme):
		m.toggleTheme()
	}

	return m, nil
}

func (m Model) handleHelpKeys(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "ctrl+c":
		return m, tea.Quit
	case "?", "esc", "q":
		m.viewMode = ViewList
		m.help.ShowAll = false
	}
	return m, nil
}

func (m Model) handleConfirmKeys(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case msg.String() == "ctrl+c":
		return m, tea.Quit

	case key.Matches(msg, m.keys.Confirm):
		m.confirmCard.Remove()
		m.confirmCard = view.Card{}
		m.viewMode = ViewList
		m.clampCursor()

	case key.Matches(msg, m.keys.Cancel):
		m.confirmCard = view.Card{}
		m.viewMode = ViewList
	}
	return m, nil
}

func (m *Model) applyFilter(mode filter.Mode) {
	m.ctrl.SetFilter(mode)
	m.cursor = 0
	m.scrollOffset = 0
}

func (m *Model) toggleTheme() {
	m.ctrl.OnToggleTheme()
	m.restyle()
	if err := m.ctrl.Err(); err != nil {
		m.setError(fmt.Sprintf("Theme not saved: %v", err))
	}
}
