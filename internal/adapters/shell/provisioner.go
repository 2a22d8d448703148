package shell

import (
	"context"
	"os"

	"go.trai.ch/dxpatch/internal/core/domain"
	"go.trai.ch/dxpatch/internal/core/ports"
	"go.trai.ch/zerr"
)

var _ ports.ToolchainProvisioner = (*Provisioner)(nil)

// Provisioner installs the AVR toolchain through the PlatformIO CLI.
type Provisioner struct {
	executor ports.Executor
	logger   ports.Logger
	// Command is the PlatformIO executable.
	Command string
}

// NewProvisioner creates a Provisioner running "pio".
func NewProvisioner(executor ports.Executor, logger ports.Logger) *Provisioner {
	return &Provisioner{executor: executor, logger: logger, Command: "pio"}
}

// InstallCommand returns the command installing the toolchain package globally.
func (p *Provisioner) InstallCommand() domain.Command {
	return domain.Command{
		Name: p.Command,
		Args: []string{"pkg", "install", "-g", "--tool", domain.ToolchainPackage},
	}
}

// Ensure installs the toolchain when root is missing and checks that it exists afterwards.
func (p *Provisioner) Ensure(ctx context.Context, root string) error {
	if isDir(root) {
		p.logger.Debug("found toolchain at " + root)
		return nil
	}

	p.logger.Info("toolchain missing at " + root + ", installing " + domain.ToolchainPackage)
	if err := p.executor.Execute(ctx, p.InstallCommand()); err != nil {
		return zerr.With(zerr.Wrap(err, domain.ErrToolchainProvisionFailed.Error()), "root", root)
	}

	if !isDir(root) {
		return zerr.With(zerr.Wrap(domain.ErrToolchainNotFound, "toolchain still missing after install"), "root", root)
	}
	return nil
}

func isDir(path string) bool {
	info, err := os.Stat(path)
	return err == nil && info.IsDir()
}
