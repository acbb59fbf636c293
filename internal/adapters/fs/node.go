package fs

import (
	"context"

	"github.com/grindlemire/graft"
	"go.trai.ch/lsproj/internal/core/ports"
)

const (
	WalkerNodeID graft.ID = "adapter.fs.walker"
	FinderNodeID graft.ID = "adapter.fs.finder"
	HasherNodeID graft.ID = "adapter.fs.hasher"
)

func init() {
	graft.Register(graft.Node[ports.TrackedFileWalker]{
		ID:        WalkerNodeID,
		Cacheable: true,
		Run: func(ctx context.Context) (ports.TrackedFileWalker, error) {
			return NewWalker(), nil
		},
	})

	graft.Register(graft.Node[ports.ManifestFinder]{
		ID:        FinderNodeID,
		Cacheable: true,
		Run: func(ctx context.Context) (ports.ManifestFinder, error) {
			return NewFinder(), nil
		},
	})

	graft.Register(graft.Node[ports.FileHasher]{
		ID:        HasherNodeID,
		Cacheable: true,
		Run: func(ctx context.Context) (ports.FileHasher, error) {
			return NewHasher(), nil
		},
	})
}
