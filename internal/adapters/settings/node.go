package settings

import (
	"context"

	"github.com/grindlemire/graft"
	"go.trai.ch/gradlemodel/internal/adapters/logger"
	"go.trai.ch/gradlemodel/internal/core/domain"
	"go.trai.ch/gradlemodel/internal/core/ports"
)

const (
	// NodeID is the unique identifier for the settings source Graft node.
	NodeID graft.ID = "adapter.settings"
	// WatcherNodeID is the unique identifier for the concrete, watchable settings source.
	WatcherNodeID graft.ID = "adapter.settings.watcher"
)

func init() {
	graft.Register(graft.Node[*Source]{
		ID:        WatcherNodeID,
		Cacheable: true,
		DependsOn: []graft.ID{logger.NodeID},
		Run: func(ctx context.Context) (*Source, error) {
			log, err := graft.Dep[ports.Logger](ctx)
			if err != nil {
				return nil, err
			}
			return NewSource(domain.DefaultSettingsPath(), log), nil
		},
	})

	graft.Register(graft.Node[ports.SettingsSource]{
		ID:        NodeID,
		Cacheable: true,
		DependsOn: []graft.ID{WatcherNodeID},
		Run: func(ctx context.Context) (ports.SettingsSource, error) {
			return graft.Dep[*Source](ctx)
		},
	})
}
