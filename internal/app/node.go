package app

import (
	"context"

	"github.com/grindlemire/graft"
	"go.trai.ch/gradlemodel/internal/adapters/extension" //nolint:depguard // Wired in app layer
	"go.trai.ch/gradlemodel/internal/adapters/logger"    //nolint:depguard // Wired in app layer
	"go.trai.ch/gradlemodel/internal/adapters/settings"  //nolint:depguard // Wired in app layer
	"go.trai.ch/gradlemodel/internal/adapters/telemetry" //nolint:depguard // Wired in app layer
	"go.trai.ch/gradlemodel/internal/engine/loader"
)

const (
	// AppNodeID is the unique identifier for the main App Graft node.
	AppNodeID graft.ID = "app.main"
	// ComponentsNodeID is the unique identifier for the App components Graft node.
	ComponentsNodeID graft.ID = "app.components"
)

func init() {
	graft.Register(graft.Node[*App]{
		ID:        AppNodeID,
		Cacheable: true,
		DependsOn: []graft.ID{
			loader.NodeID,
			settings.WatcherNodeID,
			extension.NodeID,
			logger.ConcreteNodeID,
		},
		Run: func(ctx context.Context) (*App, error) {
			l, err := graft.Dep[*loader.Loader](ctx)
			if err != nil {
				return nil, err
			}

			src, err := graft.Dep[*settings.Source](ctx)
			if err != nil {
				return nil, err
			}

			registry, err := graft.Dep[*extension.Registry](ctx)
			if err != nil {
				return nil, err
			}

			log, err := graft.Dep[*logger.Logger](ctx)
			if err != nil {
				return nil, err
			}

			return New(l, src, registry.Refs(), log, log), nil
		},
	})

	graft.Register(graft.Node[*Components]{
		ID:        ComponentsNodeID,
		Cacheable: true,
		DependsOn: []graft.ID{
			AppNodeID,
			logger.ConcreteNodeID,
			telemetry.NodeID,
		},
		Run: runComponentsNode,
	})
}

func runComponentsNode(ctx context.Context) (*Components, error) {
	a, err := graft.Dep[*App](ctx)
	if err != nil {
		return nil, err
	}

	log, err := graft.Dep[*logger.Logger](ctx)
	if err != nil {
		return nil, err
	}

	progress, err := graft.Dep[*telemetry.TracedProgress](ctx)
	if err != nil {
		return nil, err
	}

	return &Components{
		App:      a,
		Logger:   log,
		Output:   log,
		Progress: progress,
	}, nil
}
