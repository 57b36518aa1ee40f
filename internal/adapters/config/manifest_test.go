package config_test

import (
	"errors"
	"io/fs"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.trai.ch/setupjs/internal/adapters/config"
	"go.trai.ch/setupjs/internal/core/domain"
)

func writeManifest(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "package.json")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))
	return path
}

func TestManifestLoader_Load(t *testing.T) {
	t.Parallel()

	path := writeManifest(t, `{
		"name": "app",
		"devEngines": {
			"runtime": {"name": "node", "version": "24.11.0"},
			"packageManager": {"name": "pnpm", "version": "10.20.0"}
		},
		"devDependencies": {"@biomejs/biome": "2.3.5", "weird": 3}
	}`)

	m, err := config.NewManifestLoader().Load(path)
	require.NoError(t, err)

	assert.Equal(t, path, m.Path)
	require.Contains(t, m.DevEngines, "runtime")
	require.Contains(t, m.DevEngines, "packageManager")

	v, ok := m.DevDependency(domain.BiomePackage)
	assert.True(t, ok)
	assert.Equal(t, "2.3.5", v)

	_, ok = m.DevDependency("weird")
	assert.False(t, ok)
}

func TestManifestLoader_NoDevEngines(t *testing.T) {
	t.Parallel()

	m, err := config.NewManifestLoader().Load(writeManifest(t, `{"name": "app"}`))
	require.NoError(t, err)
	assert.Nil(t, m.DevEngines)
	assert.Nil(t, m.DevDependencies)
}

func TestManifestLoader_Errors(t *testing.T) {
	t.Parallel()

	t.Run("missing file keeps not-exist", func(t *testing.T) {
		t.Parallel()
		_, err := config.NewManifestLoader().Load(filepath.Join(t.TempDir(), "package.json"))
		require.Error(t, err)
		assert.True(t, errors.Is(err, fs.ErrNotExist))
		assert.Contains(t, err.Error(), domain.ErrManifestReadFailed.Error())
	})

	t.Run("invalid json", func(t *testing.T) {
		t.Parallel()
		_, err := config.NewManifestLoader().Load(writeManifest(t, `{"devEngines": `))
		require.Error(t, err)
		assert.Contains(t, err.Error(), domain.ErrManifestParseFailed.Error())
	})

	t.Run("devEngines not an object", func(t *testing.T) {
		t.Parallel()
		_, err := config.NewManifestLoader().Load(writeManifest(t, `{"devEngines": ["node"]}`))
		require.ErrorIs(t, err, domain.ErrInvalidDevEngines)
	})
}
