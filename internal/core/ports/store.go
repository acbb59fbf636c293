package ports

import "go.trai.ch/lsproj/internal/core/domain"

// SnapshotStore defines the interface for persisting observed digests.
//
//go:generate go run go.uber.org/mock/mockgen -source=store.go -destination=mocks/mock_store.go -package=mocks
type SnapshotStore interface {
	// Get retrieves the record of a path.
	// Returns nil, nil if not found.
	Get(path string) (*domain.DigestRecord, error)

	// All returns every stored record ordered by path.
	All() ([]domain.DigestRecord, error)

	// Put stores the record, replacing the previous one for the same path.
	Put(records ...domain.DigestRecord) error

	// Delete removes the records of the given paths.
	Delete(paths ...string) error
}

// SnapshotOpener opens the snapshot store kept at a path.
type SnapshotOpener interface {
	Open(path string) (SnapshotStore, error)
}
