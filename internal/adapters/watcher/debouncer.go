// Package watcher turns file system notifications into batched digest invalidations.
package watcher

import (
	"slices"
	"sync"
	"time"
	"unique"
)

// Debouncer coalesces rapid file system events into batched invalidations.
//
// Add and Flush must not be called concurrently with each other.
type Debouncer struct {
	mu         sync.Mutex
	pending    map[unique.Handle[string]]struct{}
	timer      *time.Timer
	generation uint64
	window     time.Duration
	callback   func(paths []string)

	// inflight counts timers that were scheduled and have neither been stopped nor finished.
	inflight sync.WaitGroup
}

// NewDebouncer creates a debouncer that calls callback with the sorted set of paths
// added during a quiet period of window.
func NewDebouncer(window time.Duration, callback func(paths []string)) *Debouncer {
	return &Debouncer{
		pending:  make(map[unique.Handle[string]]struct{}),
		window:   window,
		callback: callback,
	}
}

// Add adds a file path to the pending set and restarts the quiet period.
func (d *Debouncer) Add(path string) {
	d.mu.Lock()
	defer d.mu.Unlock()

	d.pending[unique.Make(path)] = struct{}{}

	d.stopLocked()
	d.generation++
	gen := d.generation
	d.inflight.Add(1)
	d.timer = time.AfterFunc(d.window, func() { d.fire(gen) })
}

// Pending returns the number of paths waiting for the next batch.
func (d *Debouncer) Pending() int {
	d.mu.Lock()
	defer d.mu.Unlock()
	return len(d.pending)
}

func (d *Debouncer) fire(gen uint64) {
	defer d.inflight.Done()

	d.mu.Lock()
	if gen == d.generation {
		d.timer = nil
	}
	paths := d.drain()
	d.mu.Unlock()

	d.deliver(paths)
}

// Flush immediately delivers all pending paths. It returns once no callback is running,
// including one started by a timer that fired before Flush was called.
func (d *Debouncer) Flush() {
	d.mu.Lock()
	d.stopLocked()
	paths := d.drain()
	d.mu.Unlock()

	d.deliver(paths)
	d.inflight.Wait()
}

// stopLocked cancels the scheduled timer. A timer that already fired keeps its
// inflight slot until its callback returns. The caller must hold d.mu.
func (d *Debouncer) stopLocked() {
	if d.timer != nil && d.timer.Stop() {
		d.inflight.Done()
	}
	d.timer = nil
}

func (d *Debouncer) deliver(paths []string) {
	if len(paths) > 0 && d.callback != nil {
		d.callback(paths)
	}
}

// drain empties the pending set. The caller must hold d.mu.
func (d *Debouncer) drain() []string {
	paths := make([]string, 0, len(d.pending))
	for handle := range d.pending {
		paths = append(paths, handle.Value())
	}
	d.pending = make(map[unique.Handle[string]]struct{})
	slices.Sort(paths)
	return paths
}
