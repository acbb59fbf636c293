// Package query implements a small demand-driven incremental computation engine.
//
// Inputs are observed through synthetic reads tagged with a durability; derived values
// are memoized per key together with the set of memoized values they read. A new
// revision starts whenever inputs are declared changed, and memoized values are then
// re-verified lazily on next access.
package query

import (
	"context"
	"sync"
	"sync/atomic"

	"go.trai.ch/lsproj/internal/core/domain"
	"go.trai.ch/lsproj/internal/core/ports"
)

// Revision is a logical timestamp of the engine. Revisions start at 1.
type Revision uint64

const firstRevision Revision = 1

// Runtime owns the revision clock shared by all memos of one database.
//
// Evaluations take the runtime lock in shared mode for their whole duration, input
// changes take it exclusively. Calling SyntheticWrite or Memo.Invalidate from inside an
// evaluation deadlocks.
type Runtime struct {
	mu sync.RWMutex

	revision    atomic.Uint64
	lastChanged [domain.DurabilityCount]atomic.Uint64

	telemetry ports.Telemetry
}

var _ ports.QueryRuntime = (*Runtime)(nil)

// NewRuntime creates a runtime at the first revision.
// A nil telemetry disables recording.
func NewRuntime(telemetry ports.Telemetry) *Runtime {
	rt := &Runtime{telemetry: telemetry}
	rt.revision.Store(uint64(firstRevision))
	for i := range rt.lastChanged {
		rt.lastChanged[i].Store(uint64(firstRevision))
	}
	return rt
}

// Revision returns the current revision.
func (rt *Runtime) Revision() Revision {
	return Revision(rt.revision.Load())
}

// LastChanged returns the last revision in which an input of durability d (or higher) changed.
func (rt *Runtime) LastChanged(d domain.Durability) Revision {
	return Revision(rt.lastChanged[d].Load())
}

// SyntheticWrite declares that inputs of durability d changed outside the engine's view.
// It starts a new revision; every memoized value of durability d or lower is re-verified on next access.
func (rt *Runtime) SyntheticWrite(d domain.Durability) Revision {
	rt.mu.Lock()
	defer rt.mu.Unlock()
	return rt.bump(d)
}

// bump must be called with mu held exclusively.
func (rt *Runtime) bump(d domain.Durability) Revision {
	next := Revision(rt.revision.Add(1))
	for i := domain.DurabilityLow; i <= d; i++ {
		rt.lastChanged[i].Store(uint64(next))
	}
	return next
}

// ReportSyntheticRead marks the evaluation running in ctx as reading external state of durability d.
func (rt *Runtime) ReportSyntheticRead(ctx context.Context, d domain.Durability) {
	f := frameFrom(ctx, rt)
	if f == nil {
		return
	}
	f.syntheticRead(d)
}

// ReportUntrackedRead marks the evaluation running in ctx as re-executing in every new revision.
func (rt *Runtime) ReportUntrackedRead(ctx context.Context) {
	f := frameFrom(ctx, rt)
	if f == nil {
		return
	}
	f.untrackedRead()
}

func (rt *Runtime) record(ctx context.Context, name string) (context.Context, ports.Vertex) {
	if rt.telemetry == nil {
		return ctx, nil
	}
	return rt.telemetry.Record(ctx, name)
}
