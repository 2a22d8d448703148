package shell

import (
	"context"

	"github.com/grindlemire/graft"
	"go.trai.ch/dxpatch/internal/adapters/logger"
	"go.trai.ch/dxpatch/internal/core/ports"
)

const (
	// NodeID is the unique identifier for the executor Graft node.
	NodeID graft.ID = "adapter.executor"
	// ProvisionerNodeID is the unique identifier for the toolchain provisioner Graft node.
	ProvisionerNodeID graft.ID = "adapter.provisioner"
)

func init() {
	graft.Register(graft.Node[ports.Executor]{
		ID:        NodeID,
		Cacheable: true,
		DependsOn: []graft.ID{logger.NodeID},
		Run: func(ctx context.Context) (ports.Executor, error) {
			log, err := graft.Dep[ports.Logger](ctx)
			if err != nil {
				return nil, err
			}
			return NewExecutor(log), nil
		},
	})

	graft.Register(graft.Node[ports.ToolchainProvisioner]{
		ID:        ProvisionerNodeID,
		Cacheable: true,
		DependsOn: []graft.ID{NodeID, logger.NodeID},
		Run: func(ctx context.Context) (ports.ToolchainProvisioner, error) {
			executor, err := graft.Dep[ports.Executor](ctx)
			if err != nil {
				return nil, err
			}
			log, err := graft.Dep[ports.Logger](ctx)
			if err != nil {
				return nil, err
			}
			return NewProvisioner(executor, log), nil
		},
	})
}
