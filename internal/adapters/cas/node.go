package cas

import (
	"context"

	"github.com/grindlemire/graft"
	"go.trai.ch/gradlemodel/internal/adapters/settings"
	"go.trai.ch/gradlemodel/internal/core/domain"
	"go.trai.ch/gradlemodel/internal/core/ports"
)

// NodeID is the unique identifier for the snapshot store Graft node.
const NodeID graft.ID = "adapter.snapshot_store"

func init() {
	graft.Register(graft.Node[ports.SnapshotStore]{
		ID:        NodeID,
		Cacheable: true,
		DependsOn: []graft.ID{settings.NodeID},
		Run: func(ctx context.Context) (ports.SnapshotStore, error) {
			src, err := graft.Dep[ports.SettingsSource](ctx)
			if err != nil {
				return nil, err
			}
			store := NewStore(src.Settings().SnapshotDir)
			src.OnChange(func(s domain.Settings) {
				store.SetRoot(s.SnapshotDir)
			})
			return store, nil
		},
	})
}
