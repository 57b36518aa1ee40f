package resolver_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.trai.ch/setupjs/internal/core/domain"
	"go.trai.ch/setupjs/internal/engine/resolver"
)

func TestResolveExplicit(t *testing.T) {
	t.Parallel()

	node := domain.RuntimeSpec{Name: domain.RuntimeNode, Version: "24.11.0"}
	bun := domain.RuntimeSpec{Name: domain.RuntimeBun, Version: "1.3.2"}
	deno := domain.RuntimeSpec{Name: domain.RuntimeDeno, Version: "2.5.6"}

	tests := []struct {
		name     string
		in       domain.Inputs
		pm       domain.PackageManagerSpec
		runtimes []domain.RuntimeSpec
	}{
		{
			name:     "pnpm with node",
			in:       domain.Inputs{NodeVersion: "24.11.0", PackageManager: "pnpm", PackageManagerVersion: "10.20.0"},
			pm:       domain.PackageManagerSpec{Name: domain.PackageManagerPnpm, Version: "10.20.0"},
			runtimes: []domain.RuntimeSpec{node},
		},
		{
			name:     "bun from bun-version",
			in:       domain.Inputs{PackageManager: "bun", BunVersion: "1.3.2"},
			pm:       domain.PackageManagerSpec{Name: domain.PackageManagerBun, Version: "1.3.2"},
			runtimes: []domain.RuntimeSpec{bun},
		},
		{
			name:     "bun from package-manager-version",
			in:       domain.Inputs{PackageManager: "bun", PackageManagerVersion: "1.3.2", NodeVersion: "24.11.0"},
			pm:       domain.PackageManagerSpec{Name: domain.PackageManagerBun, Version: "1.3.2"},
			runtimes: []domain.RuntimeSpec{node, bun},
		},
		{
			name:     "bun versions agree",
			in:       domain.Inputs{PackageManager: "bun", PackageManagerVersion: "1.3.2", BunVersion: "1.3.2"},
			pm:       domain.PackageManagerSpec{Name: domain.PackageManagerBun, Version: "1.3.2"},
			runtimes: []domain.RuntimeSpec{bun},
		},
		{
			name:     "implicit bun",
			in:       domain.Inputs{BunVersion: "1.3.2", DenoVersion: "2.5.6"},
			pm:       domain.PackageManagerSpec{Name: domain.PackageManagerBun, Version: "1.3.2"},
			runtimes: []domain.RuntimeSpec{bun, deno},
		},
		{
			name:     "implicit deno",
			in:       domain.Inputs{DenoVersion: "2.5.6"},
			pm:       domain.PackageManagerSpec{Name: domain.PackageManagerDeno, Version: "2.5.6"},
			runtimes: []domain.RuntimeSpec{deno},
		},
		{
			name:     "explicit deno",
			in:       domain.Inputs{PackageManager: "deno", DenoVersion: "2.5.6"},
			pm:       domain.PackageManagerSpec{Name: domain.PackageManagerDeno, Version: "2.5.6"},
			runtimes: []domain.RuntimeSpec{deno},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			tc, err := resolver.ResolveExplicit(tt.in)
			require.NoError(t, err)
			assert.Equal(t, tt.pm, tc.PackageManager)
			assert.Equal(t, tt.runtimes, tc.Runtimes)
		})
	}
}

func TestResolveExplicit_Errors(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		in   domain.Inputs
		kind error
	}{
		{
			name: "version without name",
			in:   domain.Inputs{NodeVersion: "24.11.0", PackageManagerVersion: "10.20.0"},
			kind: domain.ErrPackageManagerVersionWithoutName,
		},
		{
			name: "pnpm without version",
			in:   domain.Inputs{NodeVersion: "24.11.0", PackageManager: "pnpm"},
			kind: domain.ErrMissingPackageManagerVersion,
		},
		{
			name: "yarn without node",
			in:   domain.Inputs{PackageManager: "yarn", PackageManagerVersion: "4.10.3"},
			kind: domain.ErrMissingRuntimeVersion,
		},
		{
			name: "bun without any version",
			in:   domain.Inputs{PackageManager: "bun", NodeVersion: "24.11.0"},
			kind: domain.ErrMissingPackageManagerVersion,
		},
		{
			name: "bun versions conflict",
			in:   domain.Inputs{PackageManager: "bun", PackageManagerVersion: "1.3.2", BunVersion: "1.3.1"},
			kind: domain.ErrConflictingVersions,
		},
		{
			name: "deno versions conflict",
			in:   domain.Inputs{PackageManager: "deno", PackageManagerVersion: "2.5.6", DenoVersion: "2.5.5"},
			kind: domain.ErrConflictingVersions,
		},
		{
			name: "node alone",
			in:   domain.Inputs{NodeVersion: "24.11.0"},
			kind: domain.ErrNoPackageManager,
		},
		{
			name: "unknown package manager",
			in:   domain.Inputs{NodeVersion: "24.11.0", PackageManager: "cnpm", PackageManagerVersion: "9.0.0"},
			kind: domain.ErrUnsupportedName,
		},
		{
			name: "range node version",
			in:   domain.Inputs{NodeVersion: "24.x", PackageManager: "npm", PackageManagerVersion: "10.9.0"},
			kind: domain.ErrNotAbsoluteVersion,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			_, err := resolver.ResolveExplicit(tt.in)
			require.ErrorIs(t, err, tt.kind)
		})
	}
}

func TestBuildPlan(t *testing.T) {
	t.Parallel()

	manifest := &domain.Manifest{
		DevEngines: map[string]any{
			"runtime":        map[string]any{"name": "node", "version": "24.11.0"},
			"packageManager": map[string]any{"name": "pnpm", "version": "10.20.0"},
		},
		DevDependencies: map[string]string{domain.BiomePackage: "2.3.5"},
	}

	t.Run("manifest mode", func(t *testing.T) {
		t.Parallel()
		plan, err := resolver.BuildPlan(domain.Inputs{}, manifest)
		require.NoError(t, err)
		assert.False(t, plan.Explicit)
		assert.Equal(t, domain.PackageManagerPnpm, plan.Toolchain.PackageManager.Name)
		assert.Equal(t, "2.3.5", plan.BiomeVersion)
	})

	t.Run("explicit inputs replace the manifest", func(t *testing.T) {
		t.Parallel()
		plan, err := resolver.BuildPlan(domain.Inputs{BunVersion: "1.3.2"}, manifest)
		require.NoError(t, err)
		assert.True(t, plan.Explicit)
		assert.Equal(t, domain.PackageManagerBun, plan.Toolchain.PackageManager.Name)
		assert.Equal(t, []domain.RuntimeSpec{{Name: domain.RuntimeBun, Version: "1.3.2"}}, plan.Toolchain.Runtimes)
	})

	t.Run("biome input wins", func(t *testing.T) {
		t.Parallel()
		plan, err := resolver.BuildPlan(domain.Inputs{BiomeVersion: "2.3.6"}, manifest)
		require.NoError(t, err)
		assert.Equal(t, "2.3.6", plan.BiomeVersion)
	})

	t.Run("biome range in manifest is ignored", func(t *testing.T) {
		t.Parallel()
		m := *manifest
		m.DevDependencies = map[string]string{domain.BiomePackage: "^2.3.0"}
		plan, err := resolver.BuildPlan(domain.Inputs{}, &m)
		require.NoError(t, err)
		assert.Empty(t, plan.BiomeVersion)
	})

	t.Run("invalid biome input is fatal", func(t *testing.T) {
		t.Parallel()
		_, err := resolver.BuildPlan(domain.Inputs{BiomeVersion: "latest"}, manifest)
		require.ErrorIs(t, err, domain.ErrNotAbsoluteVersion)
	})

	t.Run("no manifest in auto mode", func(t *testing.T) {
		t.Parallel()
		_, err := resolver.BuildPlan(domain.Inputs{}, nil)
		require.ErrorIs(t, err, domain.ErrMissingDevEngines)
	})
}
