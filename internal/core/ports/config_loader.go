package ports

import (
	"go.trai.ch/dxpatch/internal/core/boarddoc"
	"go.trai.ch/dxpatch/internal/core/domain"
)

// ConfigLoader defines the interface for loading the run configuration and the board template.
//
//go:generate mockgen -source=config_loader.go -destination=mocks/mock_config_loader.go -package=mocks
type ConfigLoader interface {
	// Load reads the configuration file at path. A missing file yields the defaults.
	Load(path string) (*domain.Config, error)

	// LoadTemplate reads the board descriptor template at path.
	LoadTemplate(path string) (*boarddoc.Document, error)
}
