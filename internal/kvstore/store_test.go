package kvstore

import (
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/alexisbeaulieu97/extdeck/internal/logger"
)

func TestFileStoreNewCreatesDirectory(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "prefs.json")

	store, err := NewFileStore(path, nil)
	require.NoError(t, err)

	_, err = os.Stat(filepath.Dir(path))
	require.NoError(t, err)

	_, ok, err := store.Get("theme")
	require.NoError(t, err)
	assert.False(t, ok)
}

func TestFileStoreSetPersists(t *testing.T) {
	path := filepath.Join(t.TempDir(), "prefs.json")

	store, err := NewFileStore(path, nil)
	require.NoError(t, err)
	require.NoError(t, store.Set("theme", "light"))

	data, err := os.ReadFile(path)
	require.NoError(t, err)

	var file File
	require.NoError(t, json.Unmarshal(data, &file))
	assert.Equal(t, "1.0", file.Version)
	assert.Equal(t, "light", file.Values["theme"])

	reopened, err := NewFileStore(path, nil)
	require.NoError(t, err)
	value, ok, err := reopened.Get("theme")
	require.NoError(t, err)
	assert.True(t, ok)
	assert.Equal(t, "light", value)
}

func TestFileStoreSetOverwrites(t *testing.T) {
	store, err := NewFileStore(filepath.Join(t.TempDir(), "prefs.json"), nil)
	require.NoError(t, err)

	require.NoError(t, store.Set("theme", "light"))
	require.NoError(t, store.Set("theme", "dark"))

	value, ok, err := store.Get("theme")
	require.NoError(t, err)
	assert.True(t, ok)
	assert.Equal(t, "dark", value)
}

func TestFileStoreNoTempFileLeftBehind(t *testing.T) {
	path := filepath.Join(t.TempDir(), "prefs.json")
	store, err := NewFileStore(path, nil)
	require.NoError(t, err)
	require.NoError(t, store.Set("theme", "dark"))

	_, err = os.Stat(path + ".tmp")
	assert.True(t, os.IsNotExist(err))
}

func TestFileStoreCorruptFileStartsEmpty(t *testing.T) {
	path := filepath.Join(t.TempDir(), "prefs.json")
	require.NoError(t, os.WriteFile(path, []byte("{not json"), 0o644))
	var logs bytes.Buffer
	log, err := logger.New(logger.Options{Level: "warn", Writer: &logs})
	require.NoError(t, err)

	store, err := NewFileStore(path, log)
	require.NoError(t, err)
	assert.Contains(t, logs.String(), "ignoring unreadable store file")
	assert.Contains(t, logs.String(), "failed to parse store")

	_, ok, err := store.Get("theme")
	require.NoError(t, err)
	assert.False(t, ok)

	require.NoError(t, store.Set("theme", "light"))
	reopened, err := NewFileStore(path, nil)
	require.NoError(t, err)
	value, ok, err := reopened.Get("theme")
	require.NoError(t, err)
	require.True(t, ok)
	assert.Equal(t, "light", value)
}

func TestFileStoreLoadReportsCorruption(t *testing.T) {
	path := filepath.Join(t.TempDir(), "prefs.json")
	require.NoError(t, os.WriteFile(path, []byte("{not json"), 0o644))
	store := &FileStore{path: path, values: map[string]string{"theme": "dark"}}

	err := store.load()
	require.ErrorIs(t, err, ErrCorrupt)
	assert.Equal(t, map[string]string{"theme": "dark"}, store.values)
}

func TestFileStoreReadErrorIsFatal(t *testing.T) {
	path := filepath.Join(t.TempDir(), "prefs.json")
	require.NoError(t, os.Mkdir(path, 0o755))

	_, err := NewFileStore(path, nil)
	require.Error(t, err)
	assert.NotErrorIs(t, err, ErrCorrupt)
}

func TestFileStoreNullValues(t *testing.T) {
	path := filepath.Join(t.TempDir(), "prefs.json")
	require.NoError(t, os.WriteFile(path, []byte(`{"version":"1.0","values":null}`), 0o644))

	store, err := NewFileStore(path, nil)
	require.NoError(t, err)
	require.NoError(t, store.Set("theme", "light"))
}

func TestSQLiteStoreRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "prefs.db")

	store, err := OpenSQLite(path)
	require.NoError(t, err)

	_, ok, err := store.Get("theme")
	require.NoError(t, err)
	assert.False(t, ok)

	require.NoError(t, store.Set("theme", "light"))
	require.NoError(t, store.Set("theme", "dark"))
	require.NoError(t, store.Close())

	reopened, err := OpenSQLite(path)
	require.NoError(t, err)
	t.Cleanup(func() { _ = reopened.Close() })

	value, ok, err := reopened.Get("theme")
	require.NoError(t, err)
	assert.True(t, ok)
	assert.Equal(t, "dark", value)
}

func TestOpenSQLiteRequiresPath(t *testing.T) {
	_, err := OpenSQLite("  ")
	require.Error(t, err)
}

func TestOpenBackends(t *testing.T) {
	dir := t.TempDir()

	jsonStore, err := Open("json", filepath.Join(dir, "prefs.json"), nil)
	require.NoError(t, err)
	assert.IsType(t, &FileStore{}, jsonStore)

	defaultStore, err := Open("", filepath.Join(dir, "default.json"), nil)
	require.NoError(t, err)
	assert.IsType(t, &FileStore{}, defaultStore)

	sqliteStore, err := Open("SQLite", filepath.Join(dir, "prefs.db"), nil)
	require.NoError(t, err)
	assert.IsType(t, &SQLiteStore{}, sqliteStore)
	require.NoError(t, sqliteStore.Close())

	_, err = Open("redis", filepath.Join(dir, "x"), nil)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "unknown preference backend")
}

func TestMemoryStore(t *testing.T) {
	store := NewMemoryStore()
	require.NoError(t, store.Set("theme", "light"))

	value, ok, err := store.Get("theme")
	require.NoError(t, err)
	assert.True(t, ok)
	assert.Equal(t, "light", value)

	store.SetErr = os.ErrPermission
	assert.ErrorIs(t, store.Set("theme", "dark"), os.ErrPermission)
}
