package telemetry

import (
	"context"

	"github.com/grindlemire/graft"
	"go.opentelemetry.io/otel"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"
	"go.trai.ch/gradlemodel/internal/adapters/telemetry/progrock"
	"go.trai.ch/gradlemodel/internal/core/ports"
)

// NodeID is the unique identifier for the Telemetry adapter Graft node.
const NodeID graft.ID = "adapter.telemetry"

func init() {
	graft.Register(graft.Node[*TracedProgress]{
		ID:        NodeID,
		Cacheable: true,
		DependsOn: []graft.ID{progrock.NodeID},
		Run: func(ctx context.Context) (*TracedProgress, error) {
			inner, err := graft.Dep[ports.Progress](ctx)
			if err != nil {
				return nil, err
			}
			provider := sdktrace.NewTracerProvider()
			otel.SetTracerProvider(provider)
			return NewTracedProgress(inner, provider), nil
		},
	})
}
