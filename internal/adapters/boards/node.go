package boards

import (
	"context"

	"github.com/grindlemire/graft"
	"go.trai.ch/dxpatch/internal/core/ports"
)

// NodeID is the unique identifier for the board writer Graft node.
const NodeID graft.ID = "adapter.boards"

func init() {
	graft.Register(graft.Node[ports.BoardWriter]{
		ID:        NodeID,
		Cacheable: true,
		Run: func(_ context.Context) (ports.BoardWriter, error) {
			return NewWriter(), nil
		},
	})
}
