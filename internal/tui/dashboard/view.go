package dashboard

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/alexisbeaulieu97/extdeck/internal/view"
)

// View renders the current model state
func (m Model) View() string {
	switch m.viewMode {
	case ViewHelp:
		return m.renderHelpView()
	case ViewConfirm:
		return m.renderConfirmView()
	default:
		return m.renderListView()
	}
}

// renderListView renders the header, filter bar, cards and footer.
func (m Model) renderListView() string {
	if m.width == 0 || m.height == 0 {
		return "Initializing..."
	}

	var content strings.Builder

	content.WriteString(m.renderHeader())
	content.WriteString("\n")

	if m.tooSmall {
		content.WriteString(m.renderSizeBanner())
		content.WriteString("\n")
	}

	if m.showError {
		content.WriteString(m.renderErrorBanner())
		content.WriteString("\n")
	}

	content.WriteString(view.PaintFilterBar(m.ctrl.FilterControls(), m.styles))
	content.WriteString("\n\n")

	content.WriteString(m.renderCardList())
	content.WriteString("\n")

	content.WriteString(m.renderFooter())

	return content.String()
}

// renderHeader renders the title, catalog summary and theme switch.
func (m Model) renderHeader() string {
	title := m.styles.Title.Render("Extensions List")

	counts := m.ctrl.Counts()
	summary := m.styles.Muted.Render(fmt.Sprintf("%d total  %d active  %d inactive",
		counts.All, counts.Active, counts.Inactive))

	headerContent := lipgloss.JoinVertical(
		lipgloss.Left,
		title,
		lipgloss.JoinHorizontal(lipgloss.Top,
			summary,
			"    ",
			view.PaintThemeToggle(m.ctrl.Theme(), m.useUnicode, m.styles),
		),
	)

	return m.styles.Header.Render(headerContent)
}

func (m Model) renderCardList() string {
	return view.Paint(m.ctrl.Page(), view.PaintOptions{
		Styles:  m.styles,
		Focus:   m.cursor,
		Unicode: m.useUnicode,
		Offset:  m.scrollOffset,
		Limit:   m.visibleCards(),
	})
}

func (m Model) renderFooter() string {
	return m.styles.Footer.Render(m.help.ShortHelpView(m.keys.ShortHelp()))
}

func (m Model) renderErrorBanner() string {
	return m.styles.ErrorBanner.Render(m.errorMsg)
}

func (m Model) renderSizeBanner() string {
	return m.styles.ErrorBanner.Render(fmt.Sprintf("Terminal too small (%dx%d). Minimum size: %dx%d",
		m.width, m.height, minWidth, minHeight))
}

func (m Model) renderHelpView() string {
	if m.width == 0 || m.height == 0 {
		return "Initializing..."
	}

	title := m.styles.Title.Render("Extensions List Help")

	body := lipgloss.NewStyle().
		Padding(1, 2).
		Render(m.help.FullHelpView(m.keys.FullHelp()))

	tips := m.styles.Muted.Render(strings.Join([]string{
		"Removing an extension cannot be undone.",
		"Toggling under the Active or Inactive filter moves the card out of view.",
		"The theme is remembered between sessions.",
	}, "\n"))

	footer := m.styles.Footer.Render("Press ? or Esc to close")

	return lipgloss.JoinVertical(
		lipgloss.Left,
		title,
		body,
		tips,
		footer,
	)
}

// renderConfirmView renders the removal confirmation dialog
func (m Model) renderConfirmView() string {
	if m.width == 0 || m.height == 0 {
		return "Initializing..."
	}

	warn := "Remove"
	if m.useUnicode {
		warn = "⚠ Remove"
	}
	message := fmt.Sprintf("%s %s?\n\nThis cannot be undone.", warn, m.confirmCard.Name)

	dialog := m.styles.ConfirmBox.
		Width(50).
		Align(lipgloss.Center).
		Render(lipgloss.JoinVertical(
			lipgloss.Center,
			m.styles.Name.Render(message),
			"",
			m.styles.Muted.Render("y = Yes    n = No    Esc = Cancel"),
		))

	return lipgloss.Place(m.width, m.height, lipgloss.Center, lipgloss.Center, dialog)
}
