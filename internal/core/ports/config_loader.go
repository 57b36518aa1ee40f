// Package ports defines the core interfaces for the application.
package ports

import "go.trai.ch/setupjs/internal/core/domain"

// InputLoader reads the run inputs.
//
//go:generate mockgen -source=config_loader.go -destination=mocks/mock_config_loader.go -package=mocks
type InputLoader interface {
	// Load reads inputs from the environment, layered over the optional inputs file.
	// An empty file means environment only.
	Load(file string) (*domain.Inputs, error)
}

// ManifestLoader reads a project manifest.
type ManifestLoader interface {
	// Load parses the package.json at path.
	Load(path string) (*domain.Manifest, error)
}
