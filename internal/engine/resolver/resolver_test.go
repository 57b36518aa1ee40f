package resolver_test

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.trai.ch/setupjs/internal/core/domain"
	"go.trai.ch/setupjs/internal/engine/resolver"
)

func devEngines(t *testing.T, raw string) map[string]any {
	t.Helper()
	var out map[string]any
	require.NoError(t, json.Unmarshal([]byte(raw), &out))
	return out
}

func TestResolve_PnpmAndNode(t *testing.T) {
	t.Parallel()

	tc, err := resolver.Resolve(devEngines(t, `{
		"packageManager": {"name": "pnpm", "version": "10.20.0"},
		"runtime": {"name": "node", "version": "24.11.0"}
	}`))
	require.NoError(t, err)

	assert.Equal(t, domain.PackageManagerSpec{Name: domain.PackageManagerPnpm, Version: "10.20.0"}, tc.PackageManager)
	assert.Equal(t, []domain.RuntimeSpec{{Name: domain.RuntimeNode, Version: "24.11.0"}}, tc.Runtimes)
}

func TestResolve_RuntimeArrayKeepsOrder(t *testing.T) {
	t.Parallel()

	tc, err := resolver.Resolve(devEngines(t, `{
		"packageManager": {"name": "bun", "version": "1.3.2"},
		"runtime": [
			{"name": "bun", "version": "1.3.2"},
			{"name": "node", "version": "24.11.0"},
			{"name": "deno", "version": "2.5.6"}
		]
	}`))
	require.NoError(t, err)

	require.Len(t, tc.Runtimes, 3)
	assert.Equal(t, domain.RuntimeBun, tc.Runtimes[0].Name)
	assert.Equal(t, domain.RuntimeNode, tc.Runtimes[1].Name)
	assert.Equal(t, domain.RuntimeDeno, tc.Runtimes[2].Name)
}

func TestResolve_PackageManagerArrayFirstWins(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		raw  string
	}{
		{"single element", `[{"name": "yarn", "version": "4.10.3"}]`},
		{"later elements ignored", `[{"name": "yarn", "version": "4.10.3"}, {"name": "npm", "version": "10.9.0"}]`},
		{"later elements not validated", `[{"name": "yarn", "version": "4.10.3"}, {"name": "cnpm", "version": "^1"}]`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			tc, err := resolver.Resolve(devEngines(t, `{
				"runtime": {"name": "node", "version": "24.11.0"},
				"packageManager": `+tt.raw+`
			}`))
			require.NoError(t, err)
			assert.Equal(t, domain.PackageManagerSpec{Name: domain.PackageManagerYarn, Version: "4.10.3"}, tc.PackageManager)
		})
	}
}

func TestResolve_Errors(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		raw     string
		kind    error
		message string
	}{
		{
			name:    "missing runtime version",
			raw:     `{"runtime": {"name": "node"}, "packageManager": {"name": "npm", "version": "10.9.0"}}`,
			kind:    domain.ErrMissingField,
			message: "runtime[0].version must be a string",
		},
		{
			name:    "numeric version",
			raw:     `{"runtime": {"name": "node", "version": 24}, "packageManager": {"name": "npm", "version": "10.9.0"}}`,
			kind:    domain.ErrMissingField,
			message: "runtime[0].version must be a string",
		},
		{
			name:    "range version",
			raw:     `{"runtime": {"name": "node", "version": "^24.0.0"}, "packageManager": {"name": "npm", "version": "10.9.0"}}`,
			kind:    domain.ErrNotAbsoluteVersion,
			message: `runtime[0].version "^24.0.0"`,
		},
		{
			name:    "unsupported runtime in array",
			raw:     `{"runtime": [{"name": "node", "version": "24.11.0"}, {"name": "java", "version": "21.0.0"}], "packageManager": {"name": "npm", "version": "10.9.0"}}`,
			kind:    domain.ErrUnsupportedName,
			message: `runtime[1].name "java"`,
		},
		{
			name:    "unsupported runtime reported before its range version",
			raw:     `{"runtime": {"name": "java", "version": "^1"}, "packageManager": {"name": "npm", "version": "10.9.0"}}`,
			kind:    domain.ErrUnsupportedName,
			message: `runtime[0].name "java"`,
		},
		{
			name:    "unsupported package manager reported before its range version",
			raw:     `{"runtime": {"name": "node", "version": "24.11.0"}, "packageManager": {"name": "cnpm", "version": "^1"}}`,
			kind:    domain.ErrUnsupportedName,
			message: `packageManager[0].name "cnpm"`,
		},
		{
			name:    "invalid version in second runtime",
			raw:     `{"runtime": [{"name": "node", "version": "24.11.0"}, {"name": "bun", "version": "1.x"}], "packageManager": {"name": "npm", "version": "10.9.0"}}`,
			kind:    domain.ErrNotAbsoluteVersion,
			message: `runtime[1].version "1.x"`,
		},
		{
			name:    "deno is not a manifest package manager",
			raw:     `{"runtime": {"name": "deno", "version": "2.5.6"}, "packageManager": {"name": "deno", "version": "2.5.6"}}`,
			kind:    domain.ErrUnsupportedName,
			message: `packageManager[0].name "deno"`,
		},
		{
			name:    "package manager range",
			raw:     `{"runtime": {"name": "node", "version": "24.11.0"}, "packageManager": {"name": "pnpm", "version": ">=10"}}`,
			kind:    domain.ErrNotAbsoluteVersion,
			message: `packageManager[0].version ">=10"`,
		},
		{
			name:    "missing runtime key",
			raw:     `{"packageManager": {"name": "npm", "version": "10.9.0"}}`,
			kind:    domain.ErrMissingRuntime,
			message: "devEngines.runtime is required",
		},
		{
			name:    "missing package manager key",
			raw:     `{"runtime": {"name": "node", "version": "24.11.0"}}`,
			kind:    domain.ErrMissingPackageManager,
			message: "devEngines.packageManager is required",
		},
		{
			name:    "empty runtime array",
			raw:     `{"runtime": [], "packageManager": {"name": "npm", "version": "10.9.0"}}`,
			kind:    domain.ErrInvalidDevEngines,
			message: "devEngines.runtime must not be an empty array",
		},
		{
			name:    "runtime is a string",
			raw:     `{"runtime": "node", "packageManager": {"name": "npm", "version": "10.9.0"}}`,
			kind:    domain.ErrInvalidDevEngines,
			message: "devEngines.runtime must be an object or an array",
		},
		{
			name:    "duplicate runtime",
			raw:     `{"runtime": [{"name": "node", "version": "24.11.0"}, {"name": "node", "version": "22.0.0"}], "packageManager": {"name": "npm", "version": "10.9.0"}}`,
			kind:    domain.ErrInvalidDevEngines,
			message: `runtime[1].name "node" repeats runtime[0]`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			_, err := resolver.Resolve(devEngines(t, tt.raw))
			require.Error(t, err)
			require.ErrorIs(t, err, tt.kind)
			assert.Contains(t, err.Error(), tt.message)
		})
	}
}

func TestResolve_NilDevEngines(t *testing.T) {
	t.Parallel()

	_, err := resolver.Resolve(nil)
	require.ErrorIs(t, err, domain.ErrMissingDevEngines)
}

func TestComplete(t *testing.T) {
	t.Parallel()

	t.Run("bun package manager implies bun runtime", func(t *testing.T) {
		t.Parallel()
		tc, err := resolver.Complete(domain.Toolchain{
			PackageManager: domain.PackageManagerSpec{Name: domain.PackageManagerBun, Version: "1.3.2"},
			Runtimes:       []domain.RuntimeSpec{{Name: domain.RuntimeNode, Version: "24.11.0"}},
		})
		require.NoError(t, err)
		assert.Equal(t, []domain.RuntimeSpec{
			{Name: domain.RuntimeNode, Version: "24.11.0"},
			{Name: domain.RuntimeBun, Version: "1.3.2"},
		}, tc.Runtimes)
	})

	t.Run("bun runtime version must match", func(t *testing.T) {
		t.Parallel()
		_, err := resolver.Complete(domain.Toolchain{
			PackageManager: domain.PackageManagerSpec{Name: domain.PackageManagerBun, Version: "1.3.2"},
			Runtimes:       []domain.RuntimeSpec{{Name: domain.RuntimeBun, Version: "1.3.1"}},
		})
		require.ErrorIs(t, err, domain.ErrConflictingVersions)
	})

	t.Run("pnpm needs node", func(t *testing.T) {
		t.Parallel()
		_, err := resolver.Complete(domain.Toolchain{
			PackageManager: domain.PackageManagerSpec{Name: domain.PackageManagerPnpm, Version: "10.20.0"},
			Runtimes:       []domain.RuntimeSpec{{Name: domain.RuntimeBun, Version: "1.3.2"}},
		})
		require.ErrorIs(t, err, domain.ErrMissingRuntimeVersion)
	})
}
