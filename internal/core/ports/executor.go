// Package ports defines the core interfaces for the application.
package ports

import (
	"context"

	"go.trai.ch/dxpatch/internal/core/domain"
)

// Executor defines the interface for running external programs.
//
//go:generate go run go.uber.org/mock/mockgen -source=executor.go -destination=mocks/mock_executor.go -package=mocks
type Executor interface {
	// Execute runs the command to completion, streaming its output to the logger.
	// It returns an error if the command cannot be started or exits non-zero.
	Execute(ctx context.Context, cmd domain.Command) error
}
