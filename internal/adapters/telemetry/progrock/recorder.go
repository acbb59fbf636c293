// Package progrock records engine evaluations as progrock vertices.
package progrock

import (
	"context"
	"strconv"
	"sync/atomic"

	"github.com/opencontainers/go-digest"
	"github.com/vito/progrock"
	"go.trai.ch/lsproj/internal/core/ports"
)

var _ ports.Telemetry = (*Recorder)(nil)

// Recorder implements ports.Telemetry on top of a progrock recorder.
type Recorder struct {
	w        progrock.Writer
	rec      *progrock.Recorder
	seq      atomic.Uint64
	closed   atomic.Bool
	computed atomic.Int64
	cached   atomic.Int64
}

// New creates a Recorder writing to a fresh tape.
func New() *Recorder {
	return NewRecorder(progrock.NewTape())
}

// NewRecorder creates a Recorder with the given writer.
func NewRecorder(w progrock.Writer) *Recorder {
	return &Recorder{
		w:   w,
		rec: progrock.NewRecorder(w),
	}
}

// Record starts a vertex named after the evaluated query. Every evaluation gets its own
// vertex, so repeated evaluations of one query across revisions stay distinguishable.
// After Close nothing is recorded.
func (r *Recorder) Record(ctx context.Context, name string) (context.Context, ports.Vertex) {
	if r.closed.Load() {
		return ctx, discarded{}
	}
	d := digest.FromString(name + "#" + strconv.FormatUint(r.seq.Add(1), 10))
	return ctx, &evaluation{vertex: r.rec.Vertex(d, name), owner: r}
}

// Stats returns how many recorded evaluations executed and how many were reused.
func (r *Recorder) Stats() (computed, cached int64) {
	return r.computed.Load(), r.cached.Load()
}

// Close flushes and closes the recording session.
func (r *Recorder) Close() error {
	if r.closed.Swap(true) {
		return nil
	}
	if c, ok := r.w.(interface{ Close() error }); ok {
		return c.Close()
	}
	return nil
}
