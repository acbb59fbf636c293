package progrock

import (
	"sync/atomic"

	"github.com/vito/progrock"
)

// evaluation is the vertex of one memo evaluation. It settles once; later calls are ignored.
type evaluation struct {
	vertex  *progrock.VertexRecorder
	owner   *Recorder
	settled atomic.Bool
}

func (e *evaluation) Complete(err error) {
	if e.settled.Swap(true) {
		return
	}
	e.owner.computed.Add(1)
	e.vertex.Done(err)
}

// Cached settles the vertex as reused from the previous revision.
func (e *evaluation) Cached() {
	if e.settled.Swap(true) {
		return
	}
	e.owner.cached.Add(1)
	e.vertex.Cached()
	e.vertex.Done(nil)
}

// discarded is handed out after Close.
type discarded struct{}

func (discarded) Complete(error) {}

func (discarded) Cached() {}
