// Package localstore keeps small string values on the client machine, the way a browser
// keeps them in local storage.
package localstore

import (
	"encoding/json"
	"io/fs"
	"os"
	"path/filepath"
	"sync"

	"github.com/pkg/errors"
)

// FileStore persists key/value pairs as a single JSON object on disk.
type FileStore struct {
	mu   sync.Mutex
	path string
}

// NewFileStore returns a store backed by the file at path. The file and its directory
// are created on the first Set.
func NewFileStore(path string) *FileStore {
	return &FileStore{path: path}
}

// Get returns the value stored under key. A missing file reads as empty.
func (s *FileStore) Get(key string) (string, bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	values, err := s.load()
	if err != nil {
		return "", false, err
	}
	value, ok := values[key]

	return value, ok, nil
}

// Set stores value under key, rewriting the file atomically.
func (s *FileStore) Set(key, value string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	values, err := s.load()
	if err != nil {
		return err
	}
	values[key] = value

	data, err := json.MarshalIndent(values, "", "  ")
	if err != nil {
		return errors.WithStack(err)
	}

	if err := os.MkdirAll(filepath.Dir(s.path), 0o700); err != nil {
		return errors.Wrap(err, "failed to create local storage directory")
	}

	tmp, err := os.CreateTemp(filepath.Dir(s.path), ".localstore-*")
	if err != nil {
		return errors.Wrap(err, "failed to create local storage file")
	}
	defer os.Remove(tmp.Name())

	if _, err := tmp.Write(data); err != nil {
		tmp.Close()

		return errors.Wrap(err, "failed to write local storage file")
	}
	if err := tmp.Close(); err != nil {
		return errors.WithStack(err)
	}

	return errors.Wrap(os.Rename(tmp.Name(), s.path), "failed to replace local storage file")
}

func (s *FileStore) load() (map[string]string, error) {
	data, err := os.ReadFile(s.path)
	if errors.Is(err, fs.ErrNotExist) {
		return map[string]string{}, nil
	}
	if err != nil {
		return nil, errors.Wrap(err, "failed to read local storage file")
	}

	values := map[string]string{}
	if len(data) == 0 {
		return values, nil
	}
	if err := json.Unmarshal(data, &values); err != nil {
		return nil, errors.Wrap(err, "local storage file is corrupt")
	}

	return values, nil
}

// MemoryStore is a process-local store.
type MemoryStore struct {
	mu     sync.RWMutex
	values map[string]string
}

// NewMemoryStore creates an empty MemoryStore.
func NewMemoryStore() *MemoryStore {
	return &MemoryStore{values: map[string]string{}}
}

func (s *MemoryStore) Get(key string) (string, bool, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	value, ok := s.values[key]

	return value, ok, nil
}

func (s *MemoryStore) Set(key, value string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.values[key] = value

	return nil
}
