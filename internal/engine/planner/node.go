package planner

import (
	"context"

	"github.com/grindlemire/graft"
	"go.trai.ch/dxpatch/internal/adapters/fs"     //nolint:depguard // Wired in engine node
	"go.trai.ch/dxpatch/internal/adapters/logger" //nolint:depguard // Wired in engine node
	"go.trai.ch/dxpatch/internal/core/ports"
	"go.trai.ch/dxpatch/internal/engine/decoder"
	"go.trai.ch/dxpatch/internal/engine/synth"
)

// NodeID is the unique identifier for the planner Graft node.
const NodeID graft.ID = "engine.planner"

func init() {
	graft.Register(graft.Node[*Planner]{
		ID:        NodeID,
		Cacheable: true,
		DependsOn: []graft.ID{fs.ToolchainNodeID, logger.NodeID},
		Run: func(ctx context.Context) (*Planner, error) {
			lister, err := graft.Dep[ports.CompilerVersionLister](ctx)
			if err != nil {
				return nil, err
			}
			log, err := graft.Dep[ports.Logger](ctx)
			if err != nil {
				return nil, err
			}
			return New(lister, decoder.New(), synth.New(), log), nil
		},
	})
}
