package query

import (
	"fmt"
	"math"
	"sync"
)

// Interner maps keys to small integer handles for the lifetime of a database.
// Handles are 1-based; the zero handle is never issued.
type Interner[K comparable, H ~uint32] struct {
	mu   sync.RWMutex
	ids  map[K]H
	keys []K
}

// NewInterner creates an empty interner.
func NewInterner[K comparable, H ~uint32]() *Interner[K, H] {
	return &Interner[K, H]{ids: make(map[K]H)}
}

// Intern returns the handle of key, allocating exactly one handle per distinct key.
func (in *Interner[K, H]) Intern(key K) H {
	if h, ok := in.Find(key); ok {
		return h
	}

	in.mu.Lock()
	defer in.mu.Unlock()
	if h, ok := in.ids[key]; ok {
		return h
	}
	if uint64(len(in.keys)) >= math.MaxUint32 {
		panic("query: interner is full")
	}
	in.keys = append(in.keys, key)
	h := H(len(in.keys))
	in.ids[key] = h
	return h
}

// Find returns the handle of key without allocating one.
func (in *Interner[K, H]) Find(key K) (H, bool) {
	in.mu.RLock()
	defer in.mu.RUnlock()
	h, ok := in.ids[key]
	return h, ok
}

// Lookup returns the key behind h. It panics if h was not issued by this interner.
func (in *Interner[K, H]) Lookup(h H) K {
	in.mu.RLock()
	defer in.mu.RUnlock()
	if h == 0 || int(h) > len(in.keys) {
		panic(fmt.Sprintf("query: handle %d was not issued by this interner", h))
	}
	return in.keys[h-1]
}

// Len returns the number of interned keys.
func (in *Interner[K, H]) Len() int {
	in.mu.RLock()
	defer in.mu.RUnlock()
	return len(in.keys)
}
