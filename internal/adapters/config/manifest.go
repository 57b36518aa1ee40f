package config

import (
	"encoding/json"
	"os"

	"go.trai.ch/setupjs/internal/core/domain"
	"go.trai.ch/zerr"
)

// ManifestLoader implements ports.ManifestLoader for package.json.
type ManifestLoader struct{}

// NewManifestLoader creates a ManifestLoader.
func NewManifestLoader() *ManifestLoader {
	return &ManifestLoader{}
}

// Load decodes devEngines and devDependencies from the manifest at path.
// Non-string devDependencies are dropped.
func (l *ManifestLoader) Load(path string) (*domain.Manifest, error) {
	// #nosec G304 -- path comes from the manifest input
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, zerr.With(zerr.Wrap(err, domain.ErrManifestReadFailed.Error()), "path", path)
	}

	var dto manifestDTO
	if err := json.Unmarshal(data, &dto); err != nil {
		return nil, zerr.With(zerr.Wrap(err, domain.ErrManifestParseFailed.Error()), "path", path)
	}

	m := &domain.Manifest{Path: path}

	if dto.DevEngines != nil {
		engines, ok := dto.DevEngines.(map[string]any)
		if !ok {
			return nil, zerr.With(zerr.Wrap(domain.ErrInvalidDevEngines, "devEngines must be an object"), "path", path)
		}
		m.DevEngines = engines
	}

	if len(dto.DevDependencies) > 0 {
		m.DevDependencies = make(map[string]string, len(dto.DevDependencies))
		for name, v := range dto.DevDependencies {
			if s, ok := v.(string); ok {
				m.DevDependencies[name] = s
			}
		}
	}

	return m, nil
}
