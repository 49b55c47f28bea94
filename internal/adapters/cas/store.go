// Package cas implements the golden hash store.
package cas

import (
	"encoding/json"
	"errors"
	"io/fs"
	"os"
	"path/filepath"
	"sync"

	"go.trai.ch/utext/internal/core/domain"
	"go.trai.ch/utext/internal/core/ports"
	"go.trai.ch/zerr"
)

var _ ports.HashStore = (*Store)(nil)

// DefaultPath is where golden hashes are kept when no path is configured.
const DefaultPath = ".utext/hashes.json"

// Store implements ports.HashStore using a flat JSON file.
type Store struct {
	path  string
	mu    sync.RWMutex
	cache map[string]domain.HashRecord
}

// NewStore creates a new HashStore backed by the file at the given path.
func NewStore(path string) (*Store, error) {
	s := &Store{
		path:  filepath.Clean(path),
		cache: make(map[string]domain.HashRecord),
	}
	if err := s.load(); err != nil {
		return nil, err
	}
	return s, nil
}

func (s *Store) load() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	//nolint:gosec // Path is cleaned and provided by trusted caller
	data, err := os.ReadFile(s.path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil
		}
		return zerr.With(zerr.Wrap(err, "failed to read hash store"), "path", s.path)
	}

	if len(data) == 0 {
		return nil
	}

	if err := json.Unmarshal(data, &s.cache); err != nil {
		return zerr.With(zerr.Wrap(err, "failed to unmarshal hash store"), "path", s.path)
	}

	return nil
}

// save must be called with s.mu held.
func (s *Store) save() error {
	data, err := json.MarshalIndent(s.cache, "", "  ")
	if err != nil {
		return zerr.Wrap(err, "failed to marshal hash store")
	}

	if err := os.MkdirAll(filepath.Dir(s.path), 0o750); err != nil {
		return zerr.Wrap(err, "failed to create directory for hash store")
	}

	//nolint:gosec // Path is cleaned and provided by trusted caller
	if err := os.WriteFile(s.path, data, 0o644); err != nil {
		return zerr.With(zerr.Wrap(err, "failed to write hash store"), "path", s.path)
	}

	return nil
}

// Get retrieves the hash record for a given case name.
func (s *Store) Get(caseName string) (*domain.HashRecord, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	record, ok := s.cache[caseName]
	if !ok {
		return nil, nil
	}
	return &record, nil
}

// Put stores the hash record and flushes the store to disk.
func (s *Store) Put(record domain.HashRecord) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.cache[record.CaseName] = record
	return s.save()
}
