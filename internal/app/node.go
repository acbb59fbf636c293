package app

import (
	"context"

	"github.com/grindlemire/graft"
	"go.trai.ch/lsproj/internal/adapters/config"             //nolint:depguard // Wired in app layer
	"go.trai.ch/lsproj/internal/adapters/fs"                 //nolint:depguard // Wired in app layer
	"go.trai.ch/lsproj/internal/adapters/logger"             //nolint:depguard // Wired in app layer
	"go.trai.ch/lsproj/internal/adapters/snapshot"           //nolint:depguard // Wired in app layer
	"go.trai.ch/lsproj/internal/adapters/telemetry/progrock" //nolint:depguard // Wired in app layer
	"go.trai.ch/lsproj/internal/adapters/watcher"            //nolint:depguard // Wired in app layer
	"go.trai.ch/lsproj/internal/core/ports"
	"go.trai.ch/lsproj/internal/engine/project"
)

const (
	// AppNodeID is the unique identifier for the main App Graft node.
	AppNodeID graft.ID = "app.main"
	// ComponentsNodeID is the unique identifier for the App components Graft node.
	ComponentsNodeID graft.ID = "app.components"
)

// Components contains all the initialized application components.
// This struct provides controlled access to components needed by the CLI layer.
type Components struct {
	App       *App
	Logger    ports.Logger
	Telemetry ports.Telemetry
}

func init() {
	graft.Register(graft.Node[*App]{
		ID:        AppNodeID,
		Cacheable: true,
		DependsOn: []graft.ID{
			project.NodeID,
			fs.FinderNodeID,
			fs.WalkerNodeID,
			config.NodeID,
			snapshot.NodeID,
			watcher.NodeID,
			logger.NodeID,
		},
		Run: runAppNode,
	})

	graft.Register(graft.Node[*Components]{
		ID:        ComponentsNodeID,
		Cacheable: true,
		DependsOn: []graft.ID{
			AppNodeID,
			logger.NodeID,
			progrock.NodeID,
		},
		Run: runComponentsNode,
	})
}

func runAppNode(ctx context.Context) (*App, error) {
	db, err := graft.Dep[*project.Database](ctx)
	if err != nil {
		return nil, err
	}
	finder, err := graft.Dep[ports.ManifestFinder](ctx)
	if err != nil {
		return nil, err
	}
	walker, err := graft.Dep[ports.TrackedFileWalker](ctx)
	if err != nil {
		return nil, err
	}
	loader, err := graft.Dep[ports.SettingsLoader](ctx)
	if err != nil {
		return nil, err
	}
	snapshots, err := graft.Dep[ports.SnapshotOpener](ctx)
	if err != nil {
		return nil, err
	}
	w, err := graft.Dep[ports.Watcher](ctx)
	if err != nil {
		return nil, err
	}
	log, err := graft.Dep[ports.Logger](ctx)
	if err != nil {
		return nil, err
	}
	return New(db, finder, walker, loader, snapshots, w, log), nil
}

func runComponentsNode(ctx context.Context) (*Components, error) {
	app, err := graft.Dep[*App](ctx)
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
	return &Components{App: app, Logger: log, Telemetry: tel}, nil
}
