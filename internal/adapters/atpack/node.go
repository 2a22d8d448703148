package atpack

import (
	"context"

	"github.com/grindlemire/graft"
	"go.trai.ch/dxpatch/internal/adapters/logger"
	"go.trai.ch/dxpatch/internal/core/ports"
)

// NodeID is the unique identifier for the pack fetcher Graft node.
const NodeID graft.ID = "adapter.atpack"

func init() {
	graft.Register(graft.Node[ports.PackFetcher]{
		ID:        NodeID,
		Cacheable: true,
		DependsOn: []graft.ID{logger.NodeID},
		Run: func(ctx context.Context) (ports.PackFetcher, error) {
			log, err := graft.Dep[ports.Logger](ctx)
			if err != nil {
				return nil, err
			}
			return New(log), nil
		},
	})
}
