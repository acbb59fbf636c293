package ports

import (
	"context"

	"go.trai.ch/lsproj/internal/core/domain"
)

// QueryRuntime is the part of the incremental engine a query uses to describe reads
// the engine cannot observe through tracked dependencies. Both calls apply to the
// query currently being evaluated in ctx and are no-ops outside of a query.
//
//go:generate go run go.uber.org/mock/mockgen -source=runtime.go -destination=mocks/mock_runtime.go -package=mocks
type QueryRuntime interface {
	// ReportSyntheticRead marks the current query as reading external state of the
	// given durability, so the engine re-executes it whenever such state may have changed.
	ReportSyntheticRead(ctx context.Context, durability domain.Durability)

	// ReportUntrackedRead marks the current query as not safely memoizable:
	// it is re-executed in every new revision.
	ReportUntrackedRead(ctx context.Context)
}
