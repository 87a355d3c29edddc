package extension

import (
	"context"

	"github.com/grindlemire/graft"
)

// NodeID is the unique identifier for the extension registry Graft node.
const NodeID graft.ID = "adapter.extensions"

func init() {
	graft.Register(graft.Node[*Registry]{
		ID:        NodeID,
		Cacheable: true,
		Run: func(_ context.Context) (*Registry, error) {
			return Builtin(), nil
		},
	})
}
