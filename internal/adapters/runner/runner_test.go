package runner_test

import (
	"bytes"
	"os"
	"path/filepath"
	"regexp"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.trai.ch/setupjs/internal/adapters/runner"
	"go.trai.ch/setupjs/internal/core/domain"
)

var heredoc = regexp.MustCompile(`^([^<\n]+)<<(ghadelimiter_[0-9a-f]{32})\n((?s).*)\n(ghadelimiter_[0-9a-f]{32})\n$`)

func env(vars map[string]string) func(string) string {
	return func(k string) string { return vars[k] }
}

func readFile(t *testing.T, path string) string {
	t.Helper()
	data, err := os.ReadFile(path)
	require.NoError(t, err)
	return string(data)
}

func TestOutputs_FileCommand(t *testing.T) {
	t.Parallel()

	file := filepath.Join(t.TempDir(), "output")
	outputs := runner.NewOutputsWith(env(map[string]string{runner.OutputFileEnv: file}), nil)

	require.NoError(t, outputs.Set(domain.OutputLockFiles, "pnpm-lock.yaml\npackages/a/pnpm-lock.yaml"))

	m := heredoc.FindStringSubmatch(readFile(t, file))
	require.NotNil(t, m)
	assert.Equal(t, "lock-files", m[1])
	assert.Equal(t, "pnpm-lock.yaml\npackages/a/pnpm-lock.yaml", m[3])
	assert.Equal(t, m[2], m[4])
}

func TestOutputs_StdoutFallback(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	outputs := runner.NewOutputsWith(env(nil), &buf)

	require.NoError(t, outputs.Set(domain.OutputNodeVersion, "24.11.0"))
	require.NoError(t, outputs.Set(domain.OutputCacheHit, "partial"))
	assert.Equal(t, "node-version=24.11.0\ncache-hit=partial\n", buf.String())
}

func TestOutputs_UnknownKey(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	err := runner.NewOutputsWith(env(nil), &buf).Set(domain.OutputKey("python-version"), "3.12")
	require.ErrorIs(t, err, domain.ErrUnknownOutput)
	assert.Empty(t, buf.String())
}

func TestStateStore_LocalRoundTrip(t *testing.T) {
	t.Parallel()

	path := domain.DefaultStatePath(t.TempDir())
	store := runner.NewStateStoreWith(env(nil), path)

	got, err := store.Get(domain.StateCachePrimaryKey)
	require.NoError(t, err)
	assert.Empty(t, got)

	require.NoError(t, store.Save(domain.StateCachePrimaryKey, "linux-x64-abc-def"))
	require.NoError(t, store.Save(domain.StateCacheMatchedKey, "linux-x64-abc-def"))

	reopened := runner.NewStateStoreWith(env(nil), path)
	got, err = reopened.Get(domain.StateCachePrimaryKey)
	require.NoError(t, err)
	assert.Equal(t, "linux-x64-abc-def", got)
}

func TestStateStore_FileCommandAndEnv(t *testing.T) {
	t.Parallel()

	file := filepath.Join(t.TempDir(), "state")
	local := domain.DefaultStatePath(t.TempDir())
	vars := map[string]string{
		runner.StateFileEnv:                                 file,
		runner.StateEnvPrefix + domain.StateCacheMatchedKey: "from-env",
	}
	store := runner.NewStateStoreWith(env(vars), local)

	require.NoError(t, store.Save(domain.StateCachePrimaryKey, "k1"))
	m := heredoc.FindStringSubmatch(readFile(t, file))
	require.NotNil(t, m)
	assert.Equal(t, "cache-primary-key", m[1])
	assert.Equal(t, "k1", m[3])
	assert.NoFileExists(t, local)

	got, err := store.Get(domain.StateCacheMatchedKey)
	require.NoError(t, err)
	assert.Equal(t, "from-env", got)
}

func TestStateStore_CIIgnoresLocalFile(t *testing.T) {
	t.Parallel()

	local := domain.DefaultStatePath(t.TempDir())
	require.NoError(t, runner.NewStateStoreWith(env(nil), local).Save(domain.StateCacheMatchedKey, "linux-x64-abc-def"))

	vars := map[string]string{
		runner.StateFileEnv:                                 filepath.Join(t.TempDir(), "state"),
		runner.StateEnvPrefix + domain.StateCachePrimaryKey: "linux-x64-abc-new",
	}
	store := runner.NewStateStoreWith(env(vars), local)

	primary, err := store.Get(domain.StateCachePrimaryKey)
	require.NoError(t, err)
	assert.Equal(t, "linux-x64-abc-new", primary)

	matched, err := store.Get(domain.StateCacheMatchedKey)
	require.NoError(t, err)
	assert.Empty(t, matched)
}

func TestStateStore_CorruptLocalFile(t *testing.T) {
	t.Parallel()

	path := filepath.Join(t.TempDir(), "state.json")
	require.NoError(t, os.WriteFile(path, []byte("{not json"), 0o600))

	_, err := runner.NewStateStoreWith(env(nil), path).Get("k")
	require.ErrorContains(t, err, domain.ErrStateReadFailed.Error())
}

func TestEnvironment_AddPath(t *testing.T) {
	t.Parallel()

	pathFile := filepath.Join(t.TempDir(), "path")
	vars := map[string]string{"PATH": "/usr/bin", runner.PathFileEnv: pathFile}
	set := map[string]string{}
	e := runner.NewEnvironmentWith(env(vars), func(k, v string) error {
		set[k] = v
		return nil
	})

	require.NoError(t, e.AddPath("/opt/node/bin"))
	assert.Equal(t, "/opt/node/bin"+string(os.PathListSeparator)+"/usr/bin", set["PATH"])
	assert.Equal(t, "/opt/node/bin\n", readFile(t, pathFile))
}

func TestEnvironment_ExportVariable(t *testing.T) {
	t.Parallel()

	envFile := filepath.Join(t.TempDir(), "env")
	set := map[string]string{}
	e := runner.NewEnvironmentWith(env(map[string]string{runner.EnvFileEnv: envFile}), func(k, v string) error {
		set[k] = v
		return nil
	})

	require.NoError(t, e.ExportVariable("DENO_DIR", "/home/runner/.cache/deno"))
	assert.Equal(t, "/home/runner/.cache/deno", set["DENO_DIR"])

	m := heredoc.FindStringSubmatch(readFile(t, envFile))
	require.NotNil(t, m)
	assert.Equal(t, "DENO_DIR", m[1])
}

func TestEnvironment_OutsideCI(t *testing.T) {
	t.Parallel()

	set := map[string]string{}
	e := runner.NewEnvironmentWith(env(nil), func(k, v string) error {
		set[k] = v
		return nil
	})

	require.NoError(t, e.AddPath("/opt/bun"))
	assert.Equal(t, "/opt/bun", set["PATH"])
}
