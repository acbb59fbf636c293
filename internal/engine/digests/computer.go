// Package digests computes file digests and reports file dependencies of queries.
package digests

import (
	"context"
	"errors"
	"io/fs"

	"go.trai.ch/lsproj/internal/core/domain"
	"go.trai.ch/lsproj/internal/core/ports"
)

// Computer reads digestible files and fingerprints them.
type Computer struct {
	files   ports.DigestInterner
	runtime ports.QueryRuntime
	hasher  ports.FileHasher
	nonces  ports.NonceSource
}

// NewComputer creates a Computer.
func NewComputer(
	files ports.DigestInterner,
	runtime ports.QueryRuntime,
	hasher ports.FileHasher,
	nonces ports.NonceSource,
) *Computer {
	return &Computer{
		files:   files,
		runtime: runtime,
		hasher:  hasher,
		nonces:  nonces,
	}
}

// Compute returns the current digest of the file behind id.
//
// The file system can change without the engine noticing, so every call reports a
// synthetic low durability read before returning.
func (c *Computer) Compute(ctx context.Context, id domain.DigestID) domain.Digest {
	path := c.files.Lookup(id).Path()
	c.runtime.ReportSyntheticRead(ctx, domain.DurabilityLow)

	hash, err := c.hasher.HashFile(path)
	switch {
	case err == nil:
		return domain.OKDigest(hash)
	case errors.Is(err, fs.ErrNotExist):
		return domain.FileNotFoundDigest()
	default:
		return domain.IOErrorDigest(c.nonces.Next())
	}
}
