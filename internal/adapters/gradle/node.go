package gradle

import (
	"context"
	"path/filepath"

	"github.com/grindlemire/graft"
	"go.trai.ch/gradlemodel/internal/adapters/logger"
	"go.trai.ch/gradlemodel/internal/core/domain"
	"go.trai.ch/gradlemodel/internal/core/ports"
)

// NodeID is the unique identifier for the gradle connector Graft node.
const NodeID graft.ID = "adapter.gradle"

func init() {
	graft.Register(graft.Node[ports.ToolingConnector]{
		ID:        NodeID,
		Cacheable: true,
		DependsOn: []graft.ID{logger.NodeID},
		Run: func(ctx context.Context) (ports.ToolingConnector, error) {
			log, err := graft.Dep[ports.Logger](ctx)
			if err != nil {
				return nil, err
			}
			base := filepath.Join(filepath.Dir(domain.DefaultSnapshotPath()), "gradle")
			return NewConnector(NewDistributions(nil, base, log)), nil
		},
	})
}
