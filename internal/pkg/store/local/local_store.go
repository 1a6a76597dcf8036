package local

import (
	"fmt"
	"path/filepath"
	"strings"

	"github.com/syndtr/goleveldb/leveldb"
)

// Store is the always-available local backend: durable key-value storage
// scoped to the running client. Collections live under the fixed keys in
// the consts package and are read in full and rewritten in full on every
// mutation.
type Store struct {
	db *leveldb.DB
}

// Open opens (or creates) the LevelDB database at the provided path.
func Open(path string) (*Store, error) {
	trimmed := strings.TrimSpace(path)
	if trimmed == "" {
		return nil, fmt.Errorf("local store path required")
	}
	abs, err := filepath.Abs(trimmed)
	if err != nil {
		return nil, fmt.Errorf("resolve local store path: %w", err)
	}
	db, err := leveldb.OpenFile(abs, nil)
	if err != nil {
		return nil, fmt.Errorf("open local store: %w", err)
	}
	return &Store{db: db}, nil
}

// Close releases the underlying LevelDB resources.
func (s *Store) Close() error {
	if s == nil || s.db == nil {
		return nil
	}
	return s.db.Close()
}

// Get returns the value for key and whether the key exists.
func (s *Store) Get(key string) (string, bool, error) {
	val, err := s.db.Get([]byte(key), nil)
	if err == leveldb.ErrNotFound {
		return "", false, nil
	}
	if err != nil {
		return "", false, fmt.Errorf("local read %q: %w", key, err)
	}
	return string(val), true, nil
}

// Set stores value under key, overwriting any previous value.
func (s *Store) Set(key, value string) error {
	if err := s.db.Put([]byte(key), []byte(value), nil); err != nil {
		return fmt.Errorf("local write %q: %w", key, err)
	}
	return nil
}

// Has reports whether key exists without reading its value.
func (s *Store) Has(key string) (bool, error) {
	ok, err := s.db.Has([]byte(key), nil)
	if err != nil {
		return false, fmt.Errorf("local check %q: %w", key, err)
	}
	return ok, nil
}
