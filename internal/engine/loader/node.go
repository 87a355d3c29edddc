package loader

import (
	"context"

	"github.com/grindlemire/graft"
	"go.trai.ch/gradlemodel/internal/adapters/cache"     //nolint:depguard // Wired in engine wiring
	"go.trai.ch/gradlemodel/internal/adapters/cas"       //nolint:depguard // Wired in engine wiring
	"go.trai.ch/gradlemodel/internal/adapters/fs"        //nolint:depguard // Wired in engine wiring
	"go.trai.ch/gradlemodel/internal/adapters/gradle"    //nolint:depguard // Wired in engine wiring
	"go.trai.ch/gradlemodel/internal/adapters/logger"    //nolint:depguard // Wired in engine wiring
	"go.trai.ch/gradlemodel/internal/adapters/settings"  //nolint:depguard // Wired in engine wiring
	"go.trai.ch/gradlemodel/internal/adapters/telemetry" //nolint:depguard // Wired in engine wiring
	"go.trai.ch/gradlemodel/internal/core/ports"
)

// NodeID is the unique identifier for the loader Graft node.
const NodeID graft.ID = "engine.loader"

func init() {
	graft.Register(graft.Node[*Loader]{
		ID:        NodeID,
		Cacheable: true,
		DependsOn: []graft.ID{
			gradle.NodeID,
			cache.NodeID,
			cas.NodeID,
			fs.FingerprinterNodeID,
			settings.NodeID,
			telemetry.NodeID,
			logger.NodeID,
		},
		Run: func(ctx context.Context) (*Loader, error) {
			connector, err := graft.Dep[ports.ToolingConnector](ctx)
			if err != nil {
				return nil, err
			}

			modelCache, err := graft.Dep[ports.ModelCache](ctx)
			if err != nil {
				return nil, err
			}

			store, err := graft.Dep[ports.SnapshotStore](ctx)
			if err != nil {
				return nil, err
			}

			fingerprinter, err := graft.Dep[ports.Fingerprinter](ctx)
			if err != nil {
				return nil, err
			}

			src, err := graft.Dep[ports.SettingsSource](ctx)
			if err != nil {
				return nil, err
			}

			progress, err := graft.Dep[*telemetry.TracedProgress](ctx)
			if err != nil {
				return nil, err
			}

			log, err := graft.Dep[ports.Logger](ctx)
			if err != nil {
				return nil, err
			}

			return New(connector, modelCache, store, fingerprinter, src, progress, log), nil
		},
	})
}
