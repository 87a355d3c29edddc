package cache

import (
	"context"

	"github.com/grindlemire/graft"
	"go.trai.ch/gradlemodel/internal/adapters/logger"
	"go.trai.ch/gradlemodel/internal/adapters/settings"
	"go.trai.ch/gradlemodel/internal/core/ports"
)

// NodeID is the unique identifier for the model cache Graft node.
const NodeID graft.ID = "adapter.model_cache"

func init() {
	graft.Register(graft.Node[ports.ModelCache]{
		ID:        NodeID,
		Cacheable: true,
		DependsOn: []graft.ID{settings.NodeID, logger.NodeID},
		Run: func(ctx context.Context) (ports.ModelCache, error) {
			src, err := graft.Dep[ports.SettingsSource](ctx)
			if err != nil {
				return nil, err
			}

			log, err := graft.Dep[ports.Logger](ctx)
			if err != nil {
				return nil, err
			}

			c := New(src.Settings().ProjectCacheSize)
			Follow(c, src, log)
			return c, nil
		},
	})
}
