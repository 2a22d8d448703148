package packindex

import (
	"context"

	"github.com/grindlemire/graft"
	"go.trai.ch/dxpatch/internal/core/ports"
)

// NodeID is the unique identifier for the pack index Graft node.
const NodeID graft.ID = "adapter.packindex"

func init() {
	graft.Register(graft.Node[ports.PackIndex]{
		ID:        NodeID,
		Cacheable: true,
		Run: func(_ context.Context) (ports.PackIndex, error) {
			return New(), nil
		},
	})
}
