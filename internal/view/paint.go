package view

import (
	"strings"
	"unicode"

	"github.com/charmbracelet/lipgloss"

	"github.com/alexisbeaulieu97/extdeck/internal/preferences"
)

// PaintOptions controls how a page is drawn.
type PaintOptions struct {
	Styles Styles
	// Focus is the index of the highlighted card, or -1.
	Focus   int
	Unicode bool
	// Offset and Limit select a window of cards; Limit <= 0 means all.
	Offset int
	Limit  int
}

// Paint draws the cards of page top to bottom.
func Paint(page Page, opts PaintOptions) string {
	if page.Len() == 0 {
		return opts.Styles.EmptyState.Render("No extensions match this filter.")
	}

	start := opts.Offset
	if start < 0 || start >= page.Len() {
		start = 0
	}
	end := page.Len()
	if opts.Limit > 0 && start+opts.Limit < end {
		end = start + opts.Limit
	}

	rows := make([]string, 0, end-start+2)
	if start > 0 {
		rows = append(rows, opts.Styles.Muted.Render(arrow(opts.Unicode, true)+" More above"))
	}
	for i := start; i < end; i++ {
		rows = append(rows, PaintCard(page.Cards[i], i == opts.Focus, opts))
	}
	if end < page.Len() {
		rows = append(rows, opts.Styles.Muted.Render(arrow(opts.Unicode, false)+" More below"))
	}

	return lipgloss.JoinVertical(lipgloss.Left, rows...)
}

// PaintCard draws one card: logo badge, name, description, removal control
// and activation control.
func PaintCard(card Card, focused bool, opts PaintOptions) string {
	s := opts.Styles

	heading := lipgloss.JoinHorizontal(
		lipgloss.Top,
		s.Badge.Render(Monogram(card.Name)),
		" ",
		s.Name.Render(card.Name),
	)

	description := card.Description
	if strings.TrimSpace(description) == "" {
		description = "No description"
	}

	controls := lipgloss.JoinHorizontal(
		lipgloss.Top,
		s.Remove.Render(removeLabel(opts.Unicode)),
		"   ",
		toggleLabel(card.Active, opts.Unicode, s),
	)

	content := lipgloss.JoinVertical(
		lipgloss.Left,
		heading,
		s.Description.Render(description),
		controls,
	)

	if focused {
		return s.FocusedCard.Render(content)
	}
	return s.Card.Render(content)
}

// PaintFilterBar draws the filter selectors, highlighting the active one.
func PaintFilterBar(controls []FilterControl, s Styles) string {
	parts := make([]string, len(controls))
	for i, control := range controls {
		if control.Active {
			parts[i] = s.FilterSelected.Render(control.Mode.Label())
		} else {
			parts[i] = s.FilterIdle.Render(control.Mode.Label())
		}
	}
	return lipgloss.JoinHorizontal(lipgloss.Top, parts...)
}

// PaintThemeToggle draws the global theme switch.
func PaintThemeToggle(theme preferences.Theme, unicodeOK bool, s Styles) string {
	icon := "[dark]"
	if theme.IsLight() {
		icon = "[light]"
	}
	if unicodeOK {
		icon = "☾ dark"
		if theme.IsLight() {
			icon = "☀ light"
		}
	}
	return s.Muted.Render("theme: ") + s.Name.Render(icon)
}

// Monogram stands in for the logo asset: up to two capitals from name.
func Monogram(name string) string {
	var letters []rune
	for _, word := range strings.Fields(name) {
		for _, r := range word {
			if unicode.IsUpper(r) || len(letters) == 0 {
				letters = append(letters, unicode.ToUpper(r))
			}
			if len(letters) == 2 {
				return string(letters)
			}
		}
	}
	if len(letters) == 0 {
		return "?"
	}
	return string(letters)
}

func toggleLabel(active, unicodeOK bool, s Styles) string {
	switch {
	case active && unicodeOK:
		return s.ToggleOn.Render("● on")
	case active:
		return s.ToggleOn.Render("[x] on")
	case unicodeOK:
		return s.ToggleOff.Render("○ off")
	default:
		return s.ToggleOff.Render("[ ] off")
	}
}

func removeLabel(unicodeOK bool) string {
	if unicodeOK {
		return "✕ remove"
	}
	return "[remove]"
}

func arrow(unicodeOK, up bool) string {
	switch {
	case unicodeOK && up:
		return "▲"
	case unicodeOK:
		return "▼"
	case up:
		return "^"
	default:
		return "v"
	}
}
