package cas

import (
	"context"

	"github.com/grindlemire/graft"
	"go.trai.ch/dxpatch/internal/core/ports"
)

// NodeID is the unique identifier for the install state store Graft node.
const NodeID graft.ID = "adapter.install_state_store"

func init() {
	graft.Register(graft.Node[ports.InstallStateStore]{
		ID:        NodeID,
		Cacheable: true,
		Run: func(_ context.Context) (ports.InstallStateStore, error) {
			return NewStore(), nil
		},
	})
}
