package controller

import (
	"errors"

	"github.com/alexisbeaulieu97/extdeck/internal/catalog"
	"github.com/alexisbeaulieu97/extdeck/internal/filter"
	"github.com/alexisbeaulieu97/extdeck/internal/logger"
	"github.com/alexisbeaulieu97/extdeck/internal/preferences"
	"github.com/alexisbeaulieu97/extdeck/internal/view"
)

// ThemeStore is the part of the preference store the controller needs.
type ThemeStore interface {
	Read() preferences.Theme
	Write(preferences.Theme) error
}

// Counts summarises the whole catalog, independent of the current filter.
type Counts struct {
	All      int
	Active   int
	Inactive int
}

// Controller owns the view state and routes every user event to the catalog.
// It is not safe for concurrent use; the event loop calls it one handler at a time.
type Controller struct {
	catalog  *catalog.Catalog
	themes   ThemeStore
	renderer view.Renderer
	log      *logger.Logger

	currentFilter filter.Mode
	currentTheme  preferences.Theme
	controls      []view.FilterControl
	page          view.Page

	// lastErr holds the most recent preference write failure for the UI.
	lastErr error
}

// New reads the theme from themes, starts on the All filter and renders once.
func New(c *catalog.Catalog, themes ThemeStore, log *logger.Logger) *Controller {
	ctrl := &Controller{
		catalog:       c,
		themes:        themes,
		log:           log.With("component", "controller"),
		currentFilter: filter.All,
		currentTheme:  themes.Read(),
	}
	ctrl.controls = view.FilterControls(ctrl.currentFilter)
	ctrl.render()
	return ctrl
}

// SetFilter switches the filter, refreshes the selector indicators and re-renders.
func (c *Controller) SetFilter(mode filter.Mode) {
	c.currentFilter = mode
	c.controls = view.FilterControls(mode)
	c.log.With("filter", mode.String()).Debug("filter changed")
	c.render()
}

// OnToggleTheme flips the theme and persists it. A failed write keeps the
// new theme for this session and is reported through Err.
func (c *Controller) OnToggleTheme() {
	c.currentTheme = c.currentTheme.Toggle()
	if err := c.themes.Write(c.currentTheme); err != nil {
		c.lastErr = err
		c.log.Warn(err, "failed to persist theme")
		return
	}
	c.lastErr = nil
	c.log.With("theme", c.currentTheme.String()).Info("theme changed")
}

// OnToggleItem flips the named item and re-renders, since its filter
// membership may have changed. Unknown names are ignored.
func (c *Controller) OnToggleItem(name string) {
	if err := c.catalog.Toggle(name); err != nil {
		c.logMiss(err, name, "toggle")
		return
	}
	c.log.With("extension", name).Debug("extension toggled")
	c.render()
}

// OnRemoveItem deletes the named item and re-renders. Unknown names are ignored.
func (c *Controller) OnRemoveItem(name string) {
	if err := c.catalog.Remove(name); err != nil {
		c.logMiss(err, name, "remove")
	} else {
		c.log.With("extension", name).Info("extension removed")
	}
	c.render()
}

// Filter returns the current filter.
func (c *Controller) Filter() filter.Mode {
	return c.currentFilter
}

// Theme returns the current theme.
func (c *Controller) Theme() preferences.Theme {
	return c.currentTheme
}

// FilterControls returns the selector state; exactly one is active.
func (c *Controller) FilterControls() []view.FilterControl {
	out := make([]view.FilterControl, len(c.controls))
	copy(out, c.controls)
	return out
}

// Page returns the most recent rendering.
func (c *Controller) Page() view.Page {
	return c.page
}

// Catalog exposes the underlying model.
func (c *Controller) Catalog() *catalog.Catalog {
	return c.catalog
}

// Counts tallies the full catalog.
func (c *Controller) Counts() Counts {
	items := c.catalog.Items()
	counts := Counts{All: len(items)}
	for _, item := range items {
		if item.IsActive {
			counts.Active++
		} else {
			counts.Inactive++
		}
	}
	return counts
}

// Err returns the last preference write failure, if any.
func (c *Controller) Err() error {
	return c.lastErr
}

// ClearErr forgets the last failure.
func (c *Controller) ClearErr() {
	c.lastErr = nil
}

func (c *Controller) render() {
	c.page = c.renderer.Render(filter.Apply(c.catalog.Items(), c.currentFilter), c)
}

func (c *Controller) logMiss(err error, name, op string) {
	if errors.Is(err, catalog.ErrNotFound) {
		c.log.WithFields(map[string]any{"extension": name, "op": op}).Debug("extension no longer in catalog")
		return
	}
	c.log.Error(err, op+" failed")
}
