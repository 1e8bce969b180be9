package kvstore

import (
	"fmt"
	"strings"

	"github.com/alexisbeaulieu97/extdeck/internal/logger"
)

// Store is a durable string key-value store.
//
// Get reports a missing key with ok=false and a nil error.
type Store interface {
	Get(key string) (value string, ok bool, err error)
	Set(key, value string) error
	Close() error
}

// Backend names accepted by Open.
const (
	BackendJSON   = "json"
	BackendSQLite = "sqlite"
)

// Open returns the Store for backend rooted at path. log may be nil.
func Open(backend, path string, log *logger.Logger) (Store, error) {
	switch strings.ToLower(strings.TrimSpace(backend)) {
	case "", BackendJSON:
		return NewFileStore(path, log)
	case BackendSQLite:
		return OpenSQLite(path)
	default:
		return nil, fmt.Errorf("unknown preference backend %q", backend)
	}
}
