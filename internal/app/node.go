package app

import (
	"context"

	"github.com/grindlemire/graft"
	"go.trai.ch/dxpatch/internal/adapters/atpack"             //nolint:depguard // Wired in app layer
	"go.trai.ch/dxpatch/internal/adapters/boards"             //nolint:depguard // Wired in app layer
	"go.trai.ch/dxpatch/internal/adapters/cas"                //nolint:depguard // Wired in app layer
	"go.trai.ch/dxpatch/internal/adapters/config"             //nolint:depguard // Wired in app layer
	"go.trai.ch/dxpatch/internal/adapters/fs"                 //nolint:depguard // Wired in app layer
	"go.trai.ch/dxpatch/internal/adapters/logger"             //nolint:depguard // Wired in app layer
	"go.trai.ch/dxpatch/internal/adapters/packindex"          //nolint:depguard // Wired in app layer
	"go.trai.ch/dxpatch/internal/adapters/shell"              //nolint:depguard // Wired in app layer
	"go.trai.ch/dxpatch/internal/adapters/telemetry/progrock" //nolint:depguard // Wired in app layer
	"go.trai.ch/dxpatch/internal/core/ports"
	"go.trai.ch/dxpatch/internal/engine/planner"
	"go.trai.ch/dxpatch/internal/engine/scheduler"
)

const (
	// AppNodeID is the unique identifier for the main App Graft node.
	AppNodeID graft.ID = "app.main"
	// ComponentsNodeID is the unique identifier for the App components Graft node.
	ComponentsNodeID graft.ID = "app.components"
)

func init() {
	// App Node
	graft.Register(graft.Node[*App]{
		ID:        AppNodeID,
		Cacheable: true,
		DependsOn: []graft.ID{
			config.NodeID,
			fs.WalkerNodeID,
			planner.NodeID,
			scheduler.NodeID,
			fs.InstallerNodeID,
			boards.NodeID,
			cas.NodeID,
			packindex.NodeID,
			atpack.NodeID,
			shell.ProvisionerNodeID,
			progrock.NodeID,
			logger.NodeID,
		},
		Run: runAppNode,
	})

	// Components Node
	graft.Register(graft.Node[*Components]{
		ID:        ComponentsNodeID,
		Cacheable: true,
		DependsOn: []graft.ID{
			AppNodeID,
			logger.NodeID,
		},
		Run: func(ctx context.Context) (*Components, error) {
			app, err := graft.Dep[*App](ctx)
			if err != nil {
				return nil, err
			}
			log, err := graft.Dep[ports.Logger](ctx)
			if err != nil {
				return nil, err
			}
			return &Components{App: app, Logger: log}, nil
		},
	})
}

//nolint:cyclop // one lookup per dependency
func runAppNode(ctx context.Context) (*App, error) {
	loader, err := graft.Dep[ports.ConfigLoader](ctx)
	if err != nil {
		return nil, err
	}
	discoverer, err := graft.Dep[ports.PackDiscoverer](ctx)
	if err != nil {
		return nil, err
	}
	plan, err := graft.Dep[*planner.Planner](ctx)
	if err != nil {
		return nil, err
	}
	sched, err := graft.Dep[*scheduler.Scheduler](ctx)
	if err != nil {
		return nil, err
	}
	installer, err := graft.Dep[ports.Installer](ctx)
	if err != nil {
		return nil, err
	}
	writer, err := graft.Dep[ports.BoardWriter](ctx)
	if err != nil {
		return nil, err
	}
	store, err := graft.Dep[ports.InstallStateStore](ctx)
	if err != nil {
		return nil, err
	}
	index, err := graft.Dep[ports.PackIndex](ctx)
	if err != nil {
		return nil, err
	}
	fetcher, err := graft.Dep[ports.PackFetcher](ctx)
	if err != nil {
		return nil, err
	}
	provisioner, err := graft.Dep[ports.ToolchainProvisioner](ctx)
	if err != nil {
		return nil, err
	}
	telemetry, err := graft.Dep[ports.Telemetry](ctx)
	if err != nil {
		return nil, err
	}
	log, err := graft.Dep[ports.Logger](ctx)
	if err != nil {
		return nil, err
	}

	return New(loader, discoverer, plan, sched, installer, writer, store,
		index, fetcher, provisioner, telemetry, log), nil
}
