package scheduler

import (
	"context"

	"github.com/grindlemire/graft"
	"go.trai.ch/dxpatch/internal/adapters/fs"     //nolint:depguard // Wired in engine wiring
	"go.trai.ch/dxpatch/internal/adapters/logger" //nolint:depguard // Wired in engine wiring
	"go.trai.ch/dxpatch/internal/core/ports"
)

// NodeID is the unique identifier for the scheduler Graft node.
const NodeID graft.ID = "engine.scheduler"

func init() {
	graft.Register(graft.Node[*Scheduler]{
		ID:        NodeID,
		Cacheable: true,
		DependsOn: []graft.ID{
			fs.InstallerNodeID,
			logger.NodeID,
		},
		Run: func(ctx context.Context) (*Scheduler, error) {
			installer, err := graft.Dep[ports.Installer](ctx)
			if err != nil {
				return nil, err
			}
			log, err := graft.Dep[ports.Logger](ctx)
			if err != nil {
				return nil, err
			}
			return NewScheduler(installer, log), nil
		},
	})
}
