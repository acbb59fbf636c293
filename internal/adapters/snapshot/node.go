package snapshot

import (
	"context"

	"github.com/grindlemire/graft"
	"go.trai.ch/lsproj/internal/core/ports"
)

const NodeID graft.ID = "adapter.snapshot_opener"

func init() {
	graft.Register(graft.Node[ports.SnapshotOpener]{
		ID:        NodeID,
		Cacheable: true,
		Run: func(_ context.Context) (ports.SnapshotOpener, error) {
			return Opener{}, nil
		},
	})
}
