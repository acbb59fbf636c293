package digests

import (
	"sync/atomic"

	"go.trai.ch/lsproj/internal/core/ports"
)

// AtomicNonces hands out pairwise distinct nonces for I/O error digests.
type AtomicNonces struct {
	last atomic.Uint64
}

var _ ports.NonceSource = (*AtomicNonces)(nil)

// Next returns a nonce never returned before by this source.
func (n *AtomicNonces) Next() uint64 {
	return n.last.Add(1)
}
