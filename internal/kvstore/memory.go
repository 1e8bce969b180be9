package kvstore

// MemoryStore is a process-local Store, used in tests and as a fallback.
type MemoryStore struct {
	values map[string]string
	// SetErr, when non-nil, is returned by every Set.
	SetErr error
}

// NewMemoryStore returns an empty MemoryStore.
func NewMemoryStore() *MemoryStore {
	return &MemoryStore{values: make(map[string]string)}
}

func (s *MemoryStore) Get(key string) (string, bool, error) {
	value, ok := s.values[key]
	return value, ok, nil
}

func (s *MemoryStore) Set(key, value string) error {
	if s.SetErr != nil {
		return s.SetErr
	}
	s.values[key] = value
	return nil
}

func (s *MemoryStore) Close() error {
	return nil
}
