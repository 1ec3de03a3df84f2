package finsuite

import (
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"sort"
	"strings"
)

// ErrNotFound is returned by a Store when a key has never been set.
var ErrNotFound = errors.New("key not found")

// Store is the persistence boundary: a generic key-value interface the books
// and the statement table round-trip through. The domain types never touch
// the disk themselves, so everything stays testable against an in-memory
// store.
type Store interface {
	// Get reads the value stored under key into v, or ErrNotFound.
	Get(key string, v any) error
	// Set stores v under key, overwriting any prior value.
	Set(key string, v any) error
	// Keys lists the stored keys in lexical order.
	Keys() ([]string, error)
}

// DirStore persists each key as one human-readable JSON file in a directory,
// so a workspace stays diffable and easy to keep in a private git repo.
type DirStore struct {
	dir string
}

// OpenDirStore opens (creating if needed) a directory-backed store.
func OpenDirStore(dir string) (*DirStore, error) {
	if err := os.MkdirAll(dir, 0755); err != nil {
		return nil, fmt.Errorf("cannot create workspace dir %q: %w", dir, err)
	}
	return &DirStore{dir: dir}, nil
}

func (s *DirStore) path(key string) string {
	return filepath.Join(s.dir, key+".json")
}

func (s *DirStore) Get(key string, v any) error {
	data, err := os.ReadFile(s.path(key))
	if errors.Is(err, fs.ErrNotExist) {
		return fmt.Errorf("%q: %w", key, ErrNotFound)
	}
	if err != nil {
		return err
	}
	if err := json.Unmarshal(data, v); err != nil {
		return fmt.Errorf("corrupt value for %q: %w", key, err)
	}
	return nil
}

func (s *DirStore) Set(key string, v any) error {
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return fmt.Errorf("cannot marshal value for %q: %w", key, err)
	}
	return os.WriteFile(s.path(key), append(data, '\n'), 0644)
}

func (s *DirStore) Keys() ([]string, error) {
	matches, err := filepath.Glob(filepath.Join(s.dir, "*.json"))
	if err != nil {
		return nil, err
	}
	keys := make([]string, 0, len(matches))
	for _, m := range matches {
		keys = append(keys, strings.TrimSuffix(filepath.Base(m), ".json"))
	}
	sort.Strings(keys)
	return keys, nil
}

// MemStore is an in-memory Store for tests.
type MemStore struct {
	values map[string][]byte
}

func NewMemStore() *MemStore {
	return &MemStore{values: make(map[string][]byte)}
}

func (s *MemStore) Get(key string, v any) error {
	data, ok := s.values[key]
	if !ok {
		return fmt.Errorf("%q: %w", key, ErrNotFound)
	}
	return json.Unmarshal(data, v)
}

func (s *MemStore) Set(key string, v any) error {
	data, err := json.Marshal(v)
	if err != nil {
		return err
	}
	s.values[key] = data
	return nil
}

func (s *MemStore) Keys() ([]string, error) {
	keys := make([]string, 0, len(s.values))
	for k := range s.values {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys, nil
}
