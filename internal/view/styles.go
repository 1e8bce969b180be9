package view

import (
	"github.com/charmbracelet/lipgloss"

	"github.com/alexisbeaulieu97/extdeck/internal/preferences"
)

// Palette is the set of colors a theme supplies.
type Palette struct {
	Foreground lipgloss.Color
	Muted      lipgloss.Color
	Surface    lipgloss.Color
	Border     lipgloss.Color
	Accent     lipgloss.Color
	Success    lipgloss.Color
	Danger     lipgloss.Color
	OnAccent   lipgloss.Color
}

var (
	darkPalette = Palette{
		Foreground: lipgloss.Color("252"),
		Muted:      lipgloss.Color("245"),
		Surface:    lipgloss.Color("235"),
		Border:     lipgloss.Color("240"),
		Accent:     lipgloss.Color("203"), // Coral
		Success:    lipgloss.Color("42"),
		Danger:     lipgloss.Color("196"),
		OnAccent:   lipgloss.Color("232"),
	}

	lightPalette = Palette{
		Foreground: lipgloss.Color("235"),
		Muted:      lipgloss.Color("242"),
		Surface:    lipgloss.Color("255"),
		Border:     lipgloss.Color("250"),
		Accent:     lipgloss.Color("160"), // Red
		Success:    lipgloss.Color("28"),
		Danger:     lipgloss.Color("124"),
		OnAccent:   lipgloss.Color("231"),
	}
)

// PaletteFor returns the palette for theme.
func PaletteFor(theme preferences.Theme) Palette {
	if theme.IsLight() {
		return lightPalette
	}
	return darkPalette
}

// Styles holds every lipgloss style the list and dashboard chrome use.
type Styles struct {
	Palette Palette

	Title       lipgloss.Style
	Header      lipgloss.Style
	Card        lipgloss.Style
	FocusedCard lipgloss.Style
	Badge       lipgloss.Style
	Name        lipgloss.Style
	Description lipgloss.Style
	Muted       lipgloss.Style
	ToggleOn    lipgloss.Style
	ToggleOff   lipgloss.Style
	Remove      lipgloss.Style

	FilterSelected lipgloss.Style
	FilterIdle     lipgloss.Style

	Footer      lipgloss.Style
	ErrorBanner lipgloss.Style
	EmptyState  lipgloss.Style
	HelpKey     lipgloss.Style
	HelpDesc    lipgloss.Style
	ConfirmBox  lipgloss.Style
}

// NewStyles builds the styles for theme.
func NewStyles(theme preferences.Theme) Styles {
	p := PaletteFor(theme)

	card := lipgloss.NewStyle().
		Foreground(p.Foreground).
		BorderStyle(lipgloss.RoundedBorder()).
		BorderForeground(p.Border).
		Padding(0, 1)

	filterBase := lipgloss.NewStyle().
		Padding(0, 2).
		MarginRight(1)

	return Styles{
		Palette: p,

		Title: lipgloss.NewStyle().
			Bold(true).
			Foreground(p.Foreground),

		Header: lipgloss.NewStyle().
			BorderStyle(lipgloss.NormalBorder()).
			BorderBottom(true).
			BorderForeground(p.Border).
			PaddingBottom(1).
			MarginBottom(1),

		Card: card,

		FocusedCard: card.
			BorderForeground(p.Accent),

		Badge: lipgloss.NewStyle().
			Bold(true).
			Foreground(p.OnAccent).
			Background(p.Accent).
			Padding(0, 1),

		Name: lipgloss.NewStyle().
			Bold(true).
			Foreground(p.Foreground),

		Description: lipgloss.NewStyle().
			Foreground(p.Muted),

		Muted: lipgloss.NewStyle().
			Foreground(p.Muted),

		ToggleOn: lipgloss.NewStyle().
			Bold(true).
			Foreground(p.Success),

		ToggleOff: lipgloss.NewStyle().
			Foreground(p.Muted),

		Remove: lipgloss.NewStyle().
			Foreground(p.Danger),

		FilterSelected: filterBase.
			Bold(true).
			Foreground(p.OnAccent).
			Background(p.Accent),

		FilterIdle: filterBase.
			Foreground(p.Foreground).
			Background(p.Surface),

		Footer: lipgloss.NewStyle().
			Foreground(p.Muted).
			BorderStyle(lipgloss.NormalBorder()).
			BorderTop(true).
			BorderForeground(p.Border).
			PaddingTop(1).
			MarginTop(1),

		ErrorBanner: lipgloss.NewStyle().
			Foreground(p.Danger).
			Bold(true).
			Padding(0, 2).
			MarginBottom(1).
			BorderStyle(lipgloss.ThickBorder()).
			BorderForeground(p.Danger),

		EmptyState: lipgloss.NewStyle().
			Foreground(p.Muted).
			Italic(true).
			PaddingTop(2).
			PaddingBottom(2).
			PaddingLeft(2),

		HelpKey: lipgloss.NewStyle().
			Foreground(p.Accent).
			Bold(true).
			Width(14),

		HelpDesc: lipgloss.NewStyle().
			Foreground(p.Foreground),

		ConfirmBox: lipgloss.NewStyle().
			BorderStyle(lipgloss.ThickBorder()).
			BorderForeground(p.Danger).
			Padding(1, 3),
	}
}

// WithWidth caps the width-sensitive styles to a terminal of width columns.
func (s Styles) WithWidth(width int) Styles {
	if width <= 4 {
		return s
	}
	s.Card = s.Card.Width(width - 4)
	s.FocusedCard = s.FocusedCard.Width(width - 4)
	s.Header = s.Header.Width(width - 2)
	s.Footer = s.Footer.Width(width - 2)
	return s
}
