package fs

import (
	"context"

	"github.com/grindlemire/graft"
	"go.trai.ch/dxpatch/internal/core/ports"
)

const (
	// WalkerNodeID is the unique identifier for the pack discoverer Graft node.
	WalkerNodeID graft.ID = "adapter.fs.walker"
	// ToolchainNodeID is the unique identifier for the compiler version lister Graft node.
	ToolchainNodeID graft.ID = "adapter.fs.toolchain"
	// HasherNodeID is the unique identifier for the hasher Graft node.
	HasherNodeID graft.ID = "adapter.fs.hasher"
	// InstallerNodeID is the unique identifier for the installer Graft node.
	InstallerNodeID graft.ID = "adapter.fs.installer"
)

func init() {
	graft.Register(graft.Node[ports.PackDiscoverer]{
		ID:        WalkerNodeID,
		Cacheable: true,
		Run: func(_ context.Context) (ports.PackDiscoverer, error) {
			return NewWalker(), nil
		},
	})

	graft.Register(graft.Node[ports.CompilerVersionLister]{
		ID:        ToolchainNodeID,
		Cacheable: true,
		Run: func(_ context.Context) (ports.CompilerVersionLister, error) {
			return NewToolchain(), nil
		},
	})

	// Hasher Node (Concrete implementation needed by Installer)
	graft.Register(graft.Node[*Hasher]{
		ID:        HasherNodeID,
		Cacheable: true,
		Run: func(_ context.Context) (*Hasher, error) {
			return NewHasher(), nil
		},
	})

	graft.Register(graft.Node[ports.Installer]{
		ID:        InstallerNodeID,
		Cacheable: true,
		DependsOn: []graft.ID{HasherNodeID},
		Run: func(ctx context.Context) (ports.Installer, error) {
			hasher, err := graft.Dep[*Hasher](ctx)
			if err != nil {
				return nil, err
			}
			return NewInstaller(hasher), nil
		},
	})
}
