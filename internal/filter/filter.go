package filter

import (
	"fmt"
	"strings"

	"github.com/alexisbeaulieu97/extdeck/internal/catalog"
)

// Mode restricts which catalog items are shown.
type Mode int

const (
	All Mode = iota
	Active
	Inactive
)

// Modes returns every mode in selector order.
func Modes() []Mode {
	return []Mode{All, Active, Inactive}
}

// ParseMode accepts "all", "active" or "inactive", case-insensitively.
func ParseMode(value string) (Mode, error) {
	switch strings.ToLower(strings.TrimSpace(value)) {
	case "all":
		return All, nil
	case "active":
		return Active, nil
	case "inactive":
		return Inactive, nil
	default:
		return All, fmt.Errorf("invalid filter %q: must be one of all, active, inactive", value)
	}
}

func (m Mode) String() string {
	switch m {
	case Active:
		return "active"
	case Inactive:
		return "inactive"
	default:
		return "all"
	}
}

// Label is the selector caption.
func (m Mode) Label() string {
	switch m {
	case Active:
		return "Active"
	case Inactive:
		return "Inactive"
	default:
		return "All"
	}
}

// Next cycles All -> Active -> Inactive -> All.
func (m Mode) Next() Mode {
	return Mode((int(m) + 1) % len(Modes()))
}

// Matches reports whether item belongs in the view for m.
func (m Mode) Matches(item catalog.Item) bool {
	switch m {
	case Active:
		return item.IsActive
	case Inactive:
		return !item.IsActive
	default:
		return true
	}
}

// Apply returns the items matching mode in their original order.
// The input slice is never modified.
func Apply(items []catalog.Item, mode Mode) []catalog.Item {
	result := make([]catalog.Item, 0, len(items))
	for _, item := range items {
		if mode.Matches(item) {
			result = append(result, item)
		}
	}
	return result
}
