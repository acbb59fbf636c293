package ports

import (
	"context"

	"go.trai.ch/lsproj/internal/core/domain"
)

// DigestQuery is the memoized digest computation owned by the incremental engine.
//
//go:generate go run go.uber.org/mock/mockgen -source=query.go -destination=mocks/mock_query.go -package=mocks
type DigestQuery interface {
	// Get evaluates the digest of id, recording a dependency of the query running in ctx on it.
	Get(ctx context.Context, id domain.DigestID) domain.Digest
	// Invalidate drops the memoized digest of id so the next Get reads the file again.
	Invalidate(id domain.DigestID)
}

// DependencyReporter registers file dependencies of the query running in ctx.
type DependencyReporter interface {
	// ReportDependency declares that the current query reads the file at path.
	ReportDependency(ctx context.Context, path string)
}

// NonceSource yields values that are pairwise distinct for the lifetime of the process.
type NonceSource interface {
	// Next returns a value never returned before.
	Next() uint64
}
