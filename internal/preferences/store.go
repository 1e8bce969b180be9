package preferences

import (
	"fmt"

	"github.com/alexisbeaulieu97/extdeck/internal/kvstore"
	"github.com/alexisbeaulieu97/extdeck/internal/logger"
)

// ThemeKey is the storage key holding the theme.
const ThemeKey = "theme"

// Store reads and writes the theme preference over a key-value backend.
type Store struct {
	backend kvstore.Store
	log     *logger.Logger
}

// NewStore wraps backend. log may be nil.
func NewStore(backend kvstore.Store, log *logger.Logger) *Store {
	return &Store{backend: backend, log: log.With("component", "preferences")}
}

// Read returns the persisted theme, or DefaultTheme when none is stored.
// Backend failures and unrecognised values are logged and read as absent.
func (s *Store) Read() Theme {
	value, ok, err := s.backend.Get(ThemeKey)
	if err != nil {
		s.log.Warn(err, "failed to read theme preference")
		return DefaultTheme
	}
	if !ok {
		return DefaultTheme
	}

	theme, err := ParseTheme(value)
	if err != nil {
		s.log.Warn(err, "ignoring stored theme preference")
		return DefaultTheme
	}
	return theme
}

// Write persists theme, overwriting any previous value.
func (s *Store) Write(theme Theme) error {
	if _, err := ParseTheme(string(theme)); err != nil {
		return err
	}
	if err := s.backend.Set(ThemeKey, string(theme)); err != nil {
		return fmt.Errorf("write theme preference: %w", err)
	}
	s.log.With("theme", string(theme)).Debug("theme preference saved")
	return nil
}

// Close releases the backend.
func (s *Store) Close() error {
	return s.backend.Close()
}
