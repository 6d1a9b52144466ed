package ports

import "go.trai.ch/bom/internal/core/domain"

// ConfigLoader defines the interface for loading user settings.
//
//go:generate mockgen -source=config_loader.go -destination=mocks/mock_config_loader.go -package=mocks
type ConfigLoader interface {
	// Load walks up from cwd looking for the settings file.
	// Returns empty settings when no file is found.
	Load(cwd string) (*domain.Settings, error)

	// LoadFile reads settings from an explicit path. A missing file is an error.
	LoadFile(path string) (*domain.Settings, error)
}
