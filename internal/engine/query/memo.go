package query

import (
	"context"
	"fmt"
	"sync"

	"go.trai.ch/lsproj/internal/core/domain"
	"golang.org/x/sync/singleflight"
)

// Func computes the value of one key. It reports its reads through the ctx it is given.
type Func[K comparable, V any] func(ctx context.Context, key K) V

// Memo is a memoized function over keys K.
//
// A memoized value is reused while nothing it read may have changed. When a value is
// recomputed and compares equal to the previous one, dependents keep treating it as
// unchanged.
//
// A synthetic read only caps the durability of the entry. Entries that also read other
// memos are verified through those reads; entries whose only read is synthetic are
// re-executed once their durability moves. Untracked reads always re-execute.
type Memo[K comparable, V any] struct {
	rt    *Runtime
	name  string
	fn    Func[K, V]
	equal func(a, b V) bool

	mu      sync.RWMutex
	entries map[K]*entry[V]
	flights singleflight.Group
}

// entry is immutable once stored; updates replace it.
type entry[V any] struct {
	value      V
	verifiedAt Revision
	changedAt  Revision
	durability domain.Durability
	deps       []dependency
	synthetic  bool
	untracked  bool
	stale      bool
	executions int
}

// EntryInfo describes the memoized state of one key.
type EntryInfo struct {
	VerifiedAt   Revision
	ChangedAt    Revision
	Durability   domain.Durability
	Dependencies int
	Synthetic    bool
	Untracked    bool
	Executions   int
}

// NewMemo creates a memo of fn. equal decides whether a recomputed value is unchanged;
// a nil equal treats every recomputation as a change.
func NewMemo[K comparable, V any](rt *Runtime, name string, fn Func[K, V], equal func(a, b V) bool) *Memo[K, V] {
	return &Memo[K, V]{
		rt:      rt,
		name:    name,
		fn:      fn,
		equal:   equal,
		entries: make(map[K]*entry[V]),
	}
}

// Name returns the memo name used in telemetry and diagnostics.
func (m *Memo[K, V]) Name() string {
	return m.name
}

// Get returns the up to date value of key.
// When called from inside another evaluation, that evaluation records a dependency on key.
func (m *Memo[K, V]) Get(ctx context.Context, key K) V {
	parent := frameFrom(ctx, m.rt)
	if parent == nil {
		m.rt.mu.RLock()
		defer m.rt.mu.RUnlock()
	} else {
		parent.checkCycle(m.id(key))
	}

	e := m.fetch(ctx, key)
	if parent != nil {
		parent.read(memoDependency[K, V]{memo: m, key: key}, e.durability)
	}
	return e.value
}

// Invalidate discards the verified state of key so the next Get recomputes it.
// A recomputed value that equals the previous one still counts as unchanged.
func (m *Memo[K, V]) Invalidate(key K) {
	m.rt.mu.Lock()
	defer m.rt.mu.Unlock()

	m.mu.Lock()
	e, ok := m.entries[key]
	if ok {
		stale := *e
		stale.stale = true
		m.entries[key] = &stale
	}
	m.mu.Unlock()

	if ok {
		m.rt.bump(e.durability)
	}
}

// Inspect returns the memoized state of key without evaluating it.
func (m *Memo[K, V]) Inspect(key K) (EntryInfo, bool) {
	e := m.load(key)
	if e == nil {
		return EntryInfo{}, false
	}
	return EntryInfo{
		VerifiedAt:   e.verifiedAt,
		ChangedAt:    e.changedAt,
		Durability:   e.durability,
		Dependencies: len(e.deps),
		Synthetic:    e.synthetic,
		Untracked:    e.untracked,
		Executions:   e.executions,
	}, true
}

func (m *Memo[K, V]) id(key K) queryID {
	return queryID{memo: m, key: key}
}

func (m *Memo[K, V]) load(key K) *entry[V] {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.entries[key]
}

func (m *Memo[K, V]) store(key K, e *entry[V]) *entry[V] {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.entries[key] = e
	return e
}

// fetch returns an entry verified at the current revision.
func (m *Memo[K, V]) fetch(ctx context.Context, key K) *entry[V] {
	if e := m.load(key); e != nil && !e.stale && e.verifiedAt == m.rt.Revision() {
		return e
	}
	v, _, _ := m.flights.Do(fmt.Sprintf("%#v", key), func() (any, error) {
		return m.refresh(ctx, key), nil
	})
	return v.(*entry[V])
}

func (m *Memo[K, V]) refresh(ctx context.Context, key K) *entry[V] {
	rev := m.rt.Revision()
	old := m.load(key)
	if old != nil && !old.stale && old.verifiedAt == rev {
		return old
	}

	ctx, vertex := m.rt.record(ctx, m.id(key).String())
	if old != nil && !old.stale && m.unchangedSince(ctx, old) {
		verified := *old
		verified.verifiedAt = rev
		if vertex != nil {
			vertex.Cached()
		}
		return m.store(key, &verified)
	}

	e := m.execute(ctx, key, old, rev)
	if vertex != nil {
		vertex.Complete(nil)
	}
	return m.store(key, e)
}

// unchangedSince reports whether nothing old read may have changed since it was verified.
func (m *Memo[K, V]) unchangedSince(ctx context.Context, old *entry[V]) bool {
	if m.rt.LastChanged(old.durability) <= old.verifiedAt {
		return true
	}
	if old.untracked {
		return false
	}
	// A synthetic read with nothing tracked behind it is an input the engine cannot observe.
	if old.synthetic && len(old.deps) == 0 {
		return false
	}
	for _, dep := range old.deps {
		if dep.changedAfter(ctx, old.verifiedAt) {
			return false
		}
	}
	return true
}

func (m *Memo[K, V]) execute(ctx context.Context, key K, old *entry[V], rev Revision) *entry[V] {
	ctx, f := newFrame(ctx, m.rt, m.id(key))
	value := m.fn(ctx, key)

	f.mu.Lock()
	defer f.mu.Unlock()
	e := &entry[V]{
		value:      value,
		verifiedAt: rev,
		changedAt:  rev,
		durability: f.durability,
		deps:       f.deps,
		synthetic:  f.synthetic,
		untracked:  f.untracked,
		executions: 1,
	}
	if old != nil {
		e.executions = old.executions + 1
		if m.equal != nil && m.equal(old.value, value) && e.durability >= old.durability {
			e.changedAt = old.changedAt
		}
	}
	return e
}

// memoDependency is an edge to one key of a memo.
type memoDependency[K comparable, V any] struct {
	memo *Memo[K, V]
	key  K
}

func (d memoDependency[K, V]) changedAfter(ctx context.Context, rev Revision) bool {
	return d.memo.fetch(ctx, d.key).changedAt > rev
}
