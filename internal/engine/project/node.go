package project

import (
	"context"

	"github.com/grindlemire/graft"
	"go.trai.ch/lsproj/internal/adapters/fs"
	"go.trai.ch/lsproj/internal/adapters/logger"
	"go.trai.ch/lsproj/internal/adapters/manifest"
	"go.trai.ch/lsproj/internal/adapters/telemetry/progrock"
	"go.trai.ch/lsproj/internal/core/ports"
)

// NodeID is the unique identifier for the project database Graft node.
const NodeID graft.ID = "engine.project"

func init() {
	graft.Register(graft.Node[*Database]{
		ID:        NodeID,
		Cacheable: true,
		DependsOn: []graft.ID{
			fs.HasherNodeID,
			manifest.NodeID,
			logger.NodeID,
			progrock.NodeID,
		},
		Run: func(ctx context.Context) (*Database, error) {
			hasher, err := graft.Dep[ports.FileHasher](ctx)
			if err != nil {
				return nil, err
			}
			loader, err := graft.Dep[ports.ManifestLoader](ctx)
			if err != nil {
				return nil, err
			}
			log, err := graft.Dep[ports.Logger](ctx)
			if err != nil {
				return nil, err
			}
			tel, err := graft.Dep[ports.Telemetry](ctx)
			if err != nil {
				return nil, err
			}
			return NewDatabase(hasher, loader, log, tel), nil
		},
	})
}
