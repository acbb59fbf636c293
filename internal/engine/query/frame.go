package query

import (
	"context"
	"fmt"
	"sync"

	"go.trai.ch/lsproj/internal/core/domain"
)

// dependency is a memoized value read by an evaluation.
type dependency interface {
	// changedAfter brings the value up to date and reports whether it changed after rev.
	changedAfter(ctx context.Context, rev Revision) bool
}

// queryID identifies one memoized value across memos.
type queryID struct {
	memo any
	key  any
}

func (q queryID) String() string {
	if n, ok := q.memo.(interface{ Name() string }); ok {
		return fmt.Sprintf("%s(%v)", n.Name(), q.key)
	}
	return fmt.Sprintf("%v", q.key)
}

// frame collects what one evaluation read.
// Evaluations may fan out to goroutines sharing the same ctx, so every field is guarded.
type frame struct {
	rt     *Runtime
	parent *frame
	id     queryID

	mu         sync.Mutex
	deps       []dependency
	durability domain.Durability
	synthetic  bool
	untracked  bool
}

type frameKey struct{}

func newFrame(ctx context.Context, rt *Runtime, id queryID) (context.Context, *frame) {
	f := &frame{
		rt:         rt,
		parent:     frameFrom(ctx, rt),
		id:         id,
		durability: domain.DurabilityHigh,
	}
	return context.WithValue(ctx, frameKey{}, f), f
}

// frameFrom returns the evaluation running in ctx, or nil outside of an evaluation of rt.
func frameFrom(ctx context.Context, rt *Runtime) *frame {
	f, ok := ctx.Value(frameKey{}).(*frame)
	if !ok || f.rt != rt {
		return nil
	}
	return f
}

// checkCycle panics if id is already being evaluated up the stack.
func (f *frame) checkCycle(id queryID) {
	for p := f; p != nil; p = p.parent {
		if p.id == id {
			panic(fmt.Sprintf("query: cycle detected while evaluating %s", id))
		}
	}
}

func (f *frame) read(dep dependency, durability domain.Durability) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.deps = append(f.deps, dep)
	f.durability = min(f.durability, durability)
}

func (f *frame) syntheticRead(durability domain.Durability) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.synthetic = true
	f.durability = min(f.durability, durability)
}

func (f *frame) untrackedRead() {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.untracked = true
	f.durability = domain.DurabilityLow
}
