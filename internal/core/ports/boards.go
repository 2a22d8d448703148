package ports

import "go.trai.ch/dxpatch/internal/core/domain"

// BoardWriter emits board descriptors.
//
//go:generate go run go.uber.org/mock/mockgen -source=boards.go -destination=mocks/mock_boards.go -package=mocks
type BoardWriter interface {
	// Write stores the descriptor under dir/boards and returns the written path.
	Write(dir string, board domain.BoardDescriptor) (string, error)
}
