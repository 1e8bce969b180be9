package preferences

import (
	"fmt"
	"strings"
)

// Theme is the persisted display preference.
type Theme string

const (
	ThemeLight Theme = "light"
	ThemeDark  Theme = "dark"
)

// DefaultTheme is used when nothing has been stored yet.
const DefaultTheme = ThemeDark

// ParseTheme accepts "light" or "dark", case-insensitively.
func ParseTheme(value string) (Theme, error) {
	switch Theme(strings.ToLower(strings.TrimSpace(value))) {
	case ThemeLight:
		return ThemeLight, nil
	case ThemeDark:
		return ThemeDark, nil
	default:
		return "", fmt.Errorf("invalid theme %q: must be %q or %q", value, ThemeLight, ThemeDark)
	}
}

// Toggle returns the opposite theme.
func (t Theme) Toggle() Theme {
	if t == ThemeLight {
		return ThemeDark
	}
	return ThemeLight
}

// IsLight reports whether the light theme flag should be applied.
func (t Theme) IsLight() bool {
	return t == ThemeLight
}

func (t Theme) String() string {
	return string(t)
}
