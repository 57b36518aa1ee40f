package config_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.trai.ch/setupjs/internal/adapters/config"
	"go.trai.ch/setupjs/internal/core/domain"
)

func TestInputLoader_Defaults(t *testing.T) {
	t.Parallel()

	in, err := config.NewInputLoaderWithEnviron(nil).Load("")
	require.NoError(t, err)

	assert.True(t, in.Cache)
	assert.False(t, in.SkipInstall)
	assert.False(t, in.CacheExactMatch)
	assert.Equal(t, ".", in.WorkingDirectory)
	assert.Equal(t, "package.json", in.Manifest)
	assert.False(t, in.Explicit())
	assert.Nil(t, in.CachePaths)
}

func TestInputLoader_Environment(t *testing.T) {
	t.Parallel()

	environ := []string{
		"INPUT_NODE-VERSION= 24.11.0 ",
		"INPUT_PACKAGE-MANAGER=PNPM",
		"INPUT_PACKAGE-MANAGER-VERSION=10.20.0",
		"INPUT_CACHE=no",
		"INPUT_SKIP-INSTALL=On",
		"INPUT_CACHE-EXACT-MATCH=1",
		"INPUT_CACHE-KEY-SALT=v2",
		"INPUT_LOCK-FILE-PATTERNS=apps/*/pnpm-lock.yaml\n\npackages/**/pnpm-lock.yaml",
		"INPUT_CACHE-PATHS=~/.cache/a, ~/.cache/b",
		"INPUT_WORKING-DIRECTORY=web",
		"PATH=/usr/bin",
	}

	in, err := config.NewInputLoaderWithEnviron(environ).Load("")
	require.NoError(t, err)

	assert.Equal(t, "24.11.0", in.NodeVersion)
	assert.Equal(t, "pnpm", in.PackageManager)
	assert.Equal(t, "10.20.0", in.PackageManagerVersion)
	assert.False(t, in.Cache)
	assert.True(t, in.SkipInstall)
	assert.True(t, in.CacheExactMatch)
	assert.Equal(t, "v2", in.CacheKeySalt)
	assert.Equal(t, []string{"apps/*/pnpm-lock.yaml", "packages/**/pnpm-lock.yaml"}, in.LockFilePatterns)
	assert.Equal(t, []string{"~/.cache/a", "~/.cache/b"}, in.CachePaths)
	assert.Equal(t, "web", in.WorkingDirectory)
	assert.True(t, in.Explicit())
}

func TestInputLoader_FileWithEnvironmentOverride(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	file := filepath.Join(dir, "inputs.yaml")
	content := `node-version: "22.0.0"
package-manager: npm
package-manager-version: "10.9.0"
cache: "false"
manifest: tools/package.json
`
	require.NoError(t, os.WriteFile(file, []byte(content), 0o600))

	in, err := config.NewInputLoaderWithEnviron([]string{"INPUT_NODE-VERSION=24.11.0"}).Load(file)
	require.NoError(t, err)

	assert.Equal(t, "24.11.0", in.NodeVersion)
	assert.Equal(t, "npm", in.PackageManager)
	assert.Equal(t, "10.9.0", in.PackageManagerVersion)
	assert.False(t, in.Cache)
	assert.Equal(t, "tools/package.json", in.Manifest)
}

func TestInputLoader_Errors(t *testing.T) {
	t.Parallel()

	t.Run("invalid boolean", func(t *testing.T) {
		t.Parallel()
		_, err := config.NewInputLoaderWithEnviron([]string{"INPUT_CACHE=maybe"}).Load("")
		require.ErrorIs(t, err, domain.ErrInvalidInput)
	})

	t.Run("missing file", func(t *testing.T) {
		t.Parallel()
		_, err := config.NewInputLoaderWithEnviron(nil).Load(filepath.Join(t.TempDir(), "nope.yaml"))
		require.Error(t, err)
		assert.Contains(t, err.Error(), domain.ErrInputsReadFailed.Error())
	})

	t.Run("malformed file", func(t *testing.T) {
		t.Parallel()
		file := filepath.Join(t.TempDir(), "inputs.yaml")
		require.NoError(t, os.WriteFile(file, []byte("node-version: [unclosed"), 0o600))
		_, err := config.NewInputLoaderWithEnviron(nil).Load(file)
		require.Error(t, err)
		assert.Contains(t, err.Error(), domain.ErrInputsParseFailed.Error())
	})
}
