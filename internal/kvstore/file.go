package kvstore

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sync"

	"github.com/alexisbeaulieu97/extdeck/internal/logger"
)

const fileFormatVersion = "1.0"

// ErrCorrupt marks a store file that exists but cannot be decoded.
var ErrCorrupt = errors.New("corrupt store file")

// File is the JSON document written by FileStore.
type File struct {
	Version string            `json:"version"`
	Values  map[string]string `json:"values"`
}

// FileStore keeps values in a single JSON file that is rewritten on every Set.
type FileStore struct {
	path    string
	mu      sync.RWMutex
	version string
	values  map[string]string
}

// NewFileStore creates the parent directory and loads any existing file.
// A missing file yields an empty store. An undecodable file is logged and
// also yields an empty store; the next Set rewrites it.
func NewFileStore(path string, log *logger.Logger) (*FileStore, error) {
	s := &FileStore{
		path:    path,
		version: fileFormatVersion,
		values:  make(map[string]string),
	}

	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return nil, fmt.Errorf("failed to create store directory: %w", err)
	}

	if err := s.load(); err != nil {
		switch {
		case os.IsNotExist(err):
		case errors.Is(err, ErrCorrupt):
			log.With("path", path).Warn(err, "ignoring unreadable store file")
		default:
			return nil, err
		}
	}

	return s, nil
}

// load reads the store from disk, replacing in-memory values.
// On failure the in-memory values are left untouched.
func (s *FileStore) load() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	data, err := os.ReadFile(s.path)
	if err != nil {
		return err
	}

	var file File
	if err := json.Unmarshal(data, &file); err != nil {
		return fmt.Errorf("failed to parse store %s: %w: %w", s.path, ErrCorrupt, err)
	}

	if file.Version != "" {
		s.version = file.Version
	}
	s.values = file.Values
	if s.values == nil {
		s.values = make(map[string]string)
	}

	return nil
}

// saveLocked writes the store to disk atomically; callers hold mu.
func (s *FileStore) saveLocked() error {
	data, err := json.MarshalIndent(File{Version: s.version, Values: s.values}, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal store: %w", err)
	}

	tmpPath := s.path + ".tmp"
	if err := os.WriteFile(tmpPath, data, 0o644); err != nil {
		return fmt.Errorf("failed to write temporary file: %w", err)
	}

	if err := os.Rename(tmpPath, s.path); err != nil {
		_ = os.Remove(tmpPath)
		return fmt.Errorf("failed to rename temporary file: %w", err)
	}

	return nil
}

// Get returns the value stored under key.
func (s *FileStore) Get(key string) (string, bool, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	value, ok := s.values[key]
	return value, ok, nil
}

// Set stores value under key and persists the file.
func (s *FileStore) Set(key, value string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	previous, existed := s.values[key]
	s.values[key] = value
	if err := s.saveLocked(); err != nil {
		if existed {
			s.values[key] = previous
		} else {
			delete(s.values, key)
		}
		return err
	}
	return nil
}

// Close is a no-op; every Set is already flushed.
func (s *FileStore) Close() error {
	return nil
}
