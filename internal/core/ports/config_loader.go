package ports

import "go.trai.ch/propstore/internal/core/domain"

// ConfigLoader defines the interface for loading process settings.
//
//go:generate go run go.uber.org/mock/mockgen -source=config_loader.go -destination=mocks/mock_config_loader.go -package=mocks
type ConfigLoader interface {
	// Load returns the merged settings from defaults, file and environment.
	Load() (*domain.Settings, error)
}
