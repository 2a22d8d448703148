package ports

import (
	"context"

	"go.trai.ch/dxpatch/internal/core/domain"
)

// Installer applies install instructions to the filesystem.
//
//go:generate go run go.uber.org/mock/mockgen -source=installer.go -destination=mocks/mock_installer.go -package=mocks
type Installer interface {
	// Install copies the instruction's source to its destination with installed-file permissions.
	// It returns the outcome and the content digest of the installed file.
	Install(ctx context.Context, instr domain.InstallInstruction) (domain.InstallOutcome, string, error)

	// Remove deletes an installed file. A missing file is not an error.
	Remove(path string) error
}

// ToolchainProvisioner makes sure a toolchain exists at a root directory.
type ToolchainProvisioner interface {
	// Ensure installs the toolchain if root does not exist yet.
	Ensure(ctx context.Context, root string) error
}
