package resolver

import (
	"fmt"

	"go.trai.ch/setupjs/internal/core/domain"
	"go.trai.ch/zerr"
)

// BuildPlan resolves the toolchain and lint tool version for a run.
// Explicit inputs win over the manifest; m may be nil in explicit mode.
func BuildPlan(in domain.Inputs, m *domain.Manifest) (domain.Plan, error) {
	var (
		tc  domain.Toolchain
		err error
	)

	explicit := in.Explicit()
	if explicit {
		tc, err = ResolveExplicit(in)
	} else {
		var devEngines map[string]any
		if m != nil {
			devEngines = m.DevEngines
		}
		tc, err = Resolve(devEngines)
	}
	if err != nil {
		return domain.Plan{}, err
	}

	tc, err = Complete(tc)
	if err != nil {
		return domain.Plan{}, err
	}

	biome, err := BiomeVersion(in, m)
	if err != nil {
		return domain.Plan{}, err
	}

	return domain.Plan{Toolchain: tc, BiomeVersion: biome, Explicit: explicit}, nil
}

// BiomeVersion returns the lint tool version: the biome-version input, or an
// absolute @biomejs/biome devDependency. Ranges in the manifest are ignored.
func BiomeVersion(in domain.Inputs, m *domain.Manifest) (string, error) {
	if in.BiomeVersion != "" {
		if err := domain.ValidateAbsoluteVersion(in.BiomeVersion); err != nil {
			return "", zerr.Wrap(domain.ErrNotAbsoluteVersion, fmt.Sprintf("biome-version %q", in.BiomeVersion))
		}
		return in.BiomeVersion, nil
	}

	if v, ok := m.DevDependency(domain.BiomePackage); ok && domain.IsAbsoluteVersion(v) {
		return v, nil
	}
	return "", nil
}
