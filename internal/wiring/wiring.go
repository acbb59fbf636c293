// Package wiring registers all Graft nodes for the application.
package wiring

import (
	// Register adapter nodes.
	_ "go.trai.ch/lsproj/internal/adapters/config"
	_ "go.trai.ch/lsproj/internal/adapters/fs"
	_ "go.trai.ch/lsproj/internal/adapters/logger"
	_ "go.trai.ch/lsproj/internal/adapters/manifest"
	_ "go.trai.ch/lsproj/internal/adapters/snapshot"
	_ "go.trai.ch/lsproj/internal/adapters/telemetry/progrock"
	_ "go.trai.ch/lsproj/internal/adapters/watcher"
	// Register app and engine nodes.
	_ "go.trai.ch/lsproj/internal/app"
	_ "go.trai.ch/lsproj/internal/engine/project"
)
