package controller

import (
	"errors"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/alexisbeaulieu97/extdeck/internal/catalog"
	"github.com/alexisbeaulieu97/extdeck/internal/filter"
	"github.com/alexisbeaulieu97/extdeck/internal/kvstore"
	"github.com/alexisbeaulieu97/extdeck/internal/preferences"
	"github.com/alexisbeaulieu97/extdeck/internal/view"
)

func newController(t *testing.T, items []catalog.Item) (*Controller, *kvstore.MemoryStore) {
	t.Helper()
	backend := kvstore.NewMemoryStore()
	return New(catalog.New(items), preferences.NewStore(backend, nil), nil), backend
}

func abc() []catalog.Item {
	return []catalog.Item{
		{Name: "A", IsActive: true},
		{Name: "B", IsActive: false},
		{Name: "C", IsActive: true},
	}
}

func pageNames(p view.Page) []string {
	out := make([]string, 0, p.Len())
	for _, card := range p.Cards {
		out = append(out, card.Name)
	}
	return out
}

func activeControl(t *testing.T, controls []view.FilterControl) filter.Mode {
	t.Helper()
	var found []filter.Mode
	for _, control := range controls {
		if control.Active {
			found = append(found, control.Mode)
		}
	}
	require.Len(t, found, 1, "exactly one filter control must be active")
	return found[0]
}

func TestNewStartsOnAllWithDarkTheme(t *testing.T) {
	ctrl, _ := newController(t, abc())

	assert.Equal(t, filter.All, ctrl.Filter())
	assert.Equal(t, preferences.ThemeDark, ctrl.Theme())
	assert.Equal(t, filter.All, activeControl(t, ctrl.FilterControls()))
	assert.Equal(t, []string{"A", "B", "C"}, pageNames(ctrl.Page()))
}

func TestNewReadsStoredTheme(t *testing.T) {
	backend := kvstore.NewMemoryStore()
	require.NoError(t, backend.Set(preferences.ThemeKey, "light"))

	ctrl := New(catalog.New(abc()), preferences.NewStore(backend, nil), nil)
	assert.Equal(t, preferences.ThemeLight, ctrl.Theme())
}

func TestSetFilterRerendersAndMarksControl(t *testing.T) {
	ctrl, _ := newController(t, abc())

	ctrl.SetFilter(filter.Active)
	assert.Equal(t, filter.Active, ctrl.Filter())
	assert.Equal(t, filter.Active, activeControl(t, ctrl.FilterControls()))
	assert.Equal(t, []string{"A", "C"}, pageNames(ctrl.Page()))

	ctrl.SetFilter(filter.Inactive)
	assert.Equal(t, filter.Inactive, activeControl(t, ctrl.FilterControls()))
	assert.Equal(t, []string{"B"}, pageNames(ctrl.Page()))

	ctrl.SetFilter(filter.All)
	assert.Equal(t, []string{"A", "B", "C"}, pageNames(ctrl.Page()))
}

func TestAnyFilterReachableFromAny(t *testing.T) {
	ctrl, _ := newController(t, abc())
	for _, from := range filter.Modes() {
		for _, to := range filter.Modes() {
			ctrl.SetFilter(from)
			ctrl.SetFilter(to)
			assert.Equal(t, to, ctrl.Filter())
			assert.Equal(t, to, activeControl(t, ctrl.FilterControls()))
		}
	}
}

func TestToggleUnderActiveFilterChangesMembership(t *testing.T) {
	ctrl, _ := newController(t, abc())
	ctrl.SetFilter(filter.Active)
	require.Equal(t, []string{"A", "C"}, pageNames(ctrl.Page()))

	ctrl.OnToggleItem("B")
	assert.Equal(t, []string{"A", "B", "C"}, pageNames(ctrl.Page()))

	ctrl.OnToggleItem("A")
	assert.Equal(t, []string{"B", "C"}, pageNames(ctrl.Page()))
}

func TestToggleUnderAllRefreshesControlState(t *testing.T) {
	ctrl, _ := newController(t, abc())

	ctrl.OnToggleItem("B")

	card, ok := ctrl.Page().Card(1)
	require.True(t, ok)
	assert.Equal(t, "B", card.Name)
	assert.True(t, card.Active)
}

func TestCardCallbacksRouteThroughController(t *testing.T) {
	ctrl, _ := newController(t, abc())

	card, ok := ctrl.Page().Card(1)
	require.True(t, ok)
	card.Toggle()

	item, err := ctrl.Catalog().Find("B")
	require.NoError(t, err)
	assert.True(t, item.IsActive)

	card, ok = ctrl.Page().Card(0)
	require.True(t, ok)
	card.Remove()
	assert.Equal(t, []string{"B", "C"}, pageNames(ctrl.Page()))
}

func TestStaleCardIsNoOp(t *testing.T) {
	ctrl, _ := newController(t, abc())
	stale, ok := ctrl.Page().Card(0)
	require.True(t, ok)

	ctrl.OnRemoveItem("A")
	stale.Toggle()
	stale.Remove()

	assert.Equal(t, []string{"B", "C"}, pageNames(ctrl.Page()))
	assert.Equal(t, 2, ctrl.Catalog().Len())
}

func TestRemoveAlwaysRerenders(t *testing.T) {
	ctrl, _ := newController(t, abc())
	ctrl.SetFilter(filter.Active)

	ctrl.OnRemoveItem("A")
	assert.Equal(t, []string{"C"}, pageNames(ctrl.Page()))

	_, err := ctrl.Catalog().Find("A")
	assert.ErrorIs(t, err, catalog.ErrNotFound)

	ctrl.OnRemoveItem("missing")
	assert.Equal(t, []string{"C"}, pageNames(ctrl.Page()))
}

func TestToggleThemePersists(t *testing.T) {
	ctrl, backend := newController(t, abc())

	ctrl.OnToggleTheme()
	assert.Equal(t, preferences.ThemeLight, ctrl.Theme())
	value, ok, err := backend.Get(preferences.ThemeKey)
	require.NoError(t, err)
	require.True(t, ok)
	assert.Equal(t, "light", value)

	ctrl.OnToggleTheme()
	assert.Equal(t, preferences.ThemeDark, ctrl.Theme())
	value, _, _ = backend.Get(preferences.ThemeKey)
	assert.Equal(t, "dark", value)
	assert.NoError(t, ctrl.Err())
}

func TestToggleThemeWriteFailure(t *testing.T) {
	ctrl, backend := newController(t, abc())
	backend.SetErr = errors.New("read-only filesystem")

	ctrl.OnToggleTheme()

	assert.Equal(t, preferences.ThemeLight, ctrl.Theme())
	require.Error(t, ctrl.Err())
	assert.Contains(t, ctrl.Err().Error(), "read-only filesystem")

	ctrl.ClearErr()
	assert.NoError(t, ctrl.Err())
}

func TestThemeSurvivesRestart(t *testing.T) {
	path := filepath.Join(t.TempDir(), "preferences.json")

	backend, err := kvstore.NewFileStore(path, nil)
	require.NoError(t, err)
	first := New(catalog.New(abc()), preferences.NewStore(backend, nil), nil)
	first.OnToggleTheme()

	reopened, err := kvstore.NewFileStore(path, nil)
	require.NoError(t, err)
	second := New(catalog.New(abc()), preferences.NewStore(reopened, nil), nil)
	assert.Equal(t, preferences.ThemeLight, second.Theme())
	assert.Equal(t, filter.All, second.Filter())
}

func TestCounts(t *testing.T) {
	ctrl, _ := newController(t, catalog.Defaults())
	ctrl.SetFilter(filter.Inactive)

	counts := ctrl.Counts()
	assert.Equal(t, Counts{All: 12, Active: 8, Inactive: 4}, counts)

	ctrl.OnRemoveItem("DevLens")
	assert.Equal(t, Counts{All: 11, Active: 7, Inactive: 4}, ctrl.Counts())
}

func TestFilterControlsReturnsCopy(t *testing.T) {
	ctrl, _ := newController(t, abc())
	controls := ctrl.FilterControls()
	controls[0].Active = false

	assert.Equal(t, filter.All, activeControl(t, ctrl.FilterControls()))
}
