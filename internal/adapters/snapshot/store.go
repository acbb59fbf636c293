// Package snapshot persists observed digests between `lsproj check` runs.
package snapshot

import (
	"encoding/json"
	"errors"
	"io/fs"
	"maps"
	"os"
	"path/filepath"
	"slices"
	"sync"

	"go.trai.ch/lsproj/internal/core/domain"
	"go.trai.ch/lsproj/internal/core/ports"
	"go.trai.ch/zerr"
)

var (
	_ ports.SnapshotStore  = (*Store)(nil)
	_ ports.SnapshotOpener = Opener{}
)

// Store implements ports.SnapshotStore using a flat JSON file.
type Store struct {
	path  string
	mu    sync.RWMutex
	cache map[string]domain.DigestRecord
}

// NewStore creates a store backed by the file at path. A missing file is an empty store.
func NewStore(path string) (*Store, error) {
	s := &Store{
		path:  filepath.Clean(path),
		cache: make(map[string]domain.DigestRecord),
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
		return zerr.With(zerr.Wrap(err, domain.ErrStoreReadFailed.Error()), "path", s.path)
	}

	if len(data) == 0 {
		return nil
	}

	var records []domain.DigestRecord
	if err := json.Unmarshal(data, &records); err != nil {
		return zerr.With(zerr.Wrap(err, domain.ErrStoreUnmarshalFailed.Error()), "path", s.path)
	}
	for _, rec := range records {
		s.cache[rec.Path] = rec
	}
	return nil
}

// save writes the cache to disk. The caller must hold s.mu.
func (s *Store) save() error {
	records := s.sorted()
	data, err := json.MarshalIndent(records, "", "  ")
	if err != nil {
		return zerr.Wrap(err, domain.ErrStoreMarshalFailed.Error())
	}

	if err := os.MkdirAll(filepath.Dir(s.path), domain.DirPerm); err != nil {
		return zerr.Wrap(err, domain.ErrStoreCreateFailed.Error())
	}

	//nolint:gosec // Path is cleaned and provided by trusted caller
	if err := os.WriteFile(s.path, data, domain.FilePerm); err != nil {
		return zerr.With(zerr.Wrap(err, domain.ErrStoreWriteFailed.Error()), "path", s.path)
	}
	return nil
}

func (s *Store) sorted() []domain.DigestRecord {
	records := make([]domain.DigestRecord, 0, len(s.cache))
	for _, path := range slices.Sorted(maps.Keys(s.cache)) {
		records = append(records, s.cache[path])
	}
	return records
}

// Get retrieves the record of path.
func (s *Store) Get(path string) (*domain.DigestRecord, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	rec, ok := s.cache[path]
	if !ok {
		return nil, nil
	}
	return &rec, nil
}

// All returns every record ordered by path.
func (s *Store) All() ([]domain.DigestRecord, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.sorted(), nil
}

// Put stores the records and writes the store to disk.
func (s *Store) Put(records ...domain.DigestRecord) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	for _, rec := range records {
		s.cache[rec.Path] = rec
	}
	return s.save()
}

// Delete removes the records of paths and writes the store to disk.
func (s *Store) Delete(paths ...string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	for _, path := range paths {
		delete(s.cache, path)
	}
	return s.save()
}

// Opener implements ports.SnapshotOpener.
type Opener struct{}

// Open opens the store at path.
func (Opener) Open(path string) (ports.SnapshotStore, error) {
	return NewStore(path)
}
