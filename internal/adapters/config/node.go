package config

import (
	"context"

	"github.com/grindlemire/graft"
	"go.trai.ch/lsproj/internal/core/ports"
)

const NodeID graft.ID = "adapter.settings_loader"

func init() {
	graft.Register(graft.Node[ports.SettingsLoader]{
		ID:        NodeID,
		Cacheable: true,
		Run: func(ctx context.Context) (ports.SettingsLoader, error) {
			return NewLoader(), nil
		},
	})
}
