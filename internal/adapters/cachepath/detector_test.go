package cachepath_test

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.trai.ch/setupjs/internal/adapters/cachepath"
	"go.trai.ch/setupjs/internal/core/domain"
	"go.trai.ch/setupjs/internal/core/ports/mocks"
	"go.uber.org/mock/gomock"
)

const home = "/home/runner"

func env(vars map[string]string) func(string) string {
	return func(k string) string { return vars[k] }
}

func homeDir() (string, error) { return home, nil }

func pm(name domain.PackageManagerName, version string) domain.PackageManagerSpec {
	return domain.PackageManagerSpec{Name: name, Version: version}
}

func newDetector(t *testing.T, platform domain.Platform, vars map[string]string) (*cachepath.Detector, *mocks.MockCommandRunner) {
	t.Helper()
	ctrl := gomock.NewController(t)
	runner := mocks.NewMockCommandRunner(ctrl)
	log := mocks.NewMockLogger(ctrl)
	log.EXPECT().Debug(gomock.Any()).AnyTimes()
	return cachepath.NewDetectorWith(runner, log, platform, env(vars), homeDir), runner
}

func TestDetector_QueriesTool(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		pm   domain.PackageManagerSpec
		cmd  domain.Command
		out  string
		want string
	}{
		{
			name: "npm",
			pm:   pm(domain.PackageManagerNpm, "10.9.0"),
			cmd:  domain.Command{Name: "npm", Args: []string{"config", "get", "cache"}},
			out:  "/home/runner/.npm",
			want: "/home/runner/.npm",
		},
		{
			name: "pnpm",
			pm:   pm(domain.PackageManagerPnpm, "10.20.0"),
			cmd:  domain.Command{Name: "pnpm", Args: []string{"store", "path", "--silent"}},
			out:  "/home/runner/.local/share/pnpm/store/v10",
			want: "/home/runner/.local/share/pnpm/store/v10",
		},
		{
			name: "yarn classic",
			pm:   pm(domain.PackageManagerYarn, "1.22.22"),
			cmd:  domain.Command{Name: "yarn", Args: []string{"cache", "dir"}},
			out:  "/home/runner/.cache/yarn/v6",
			want: "/home/runner/.cache/yarn/v6",
		},
		{
			name: "yarn berry",
			pm:   pm(domain.PackageManagerYarn, "4.10.3"),
			cmd:  domain.Command{Name: "yarn", Args: []string{"config", "get", "cacheFolder"}},
			out:  "/home/runner/.yarn/berry/cache",
			want: "/home/runner/.yarn/berry/cache",
		},
		{
			name: "bun",
			pm:   pm(domain.PackageManagerBun, "1.3.2"),
			cmd:  domain.Command{Name: "bun", Args: []string{"pm", "cache"}},
			out:  "/home/runner/.bun/install/cache",
			want: "/home/runner/.bun/install/cache",
		},
		{
			name: "deno",
			pm:   pm(domain.PackageManagerDeno, "2.5.6"),
			cmd:  domain.Command{Name: "deno", Args: []string{"info", "--json"}},
			out:  `{"version": 1, "denoDir": "/home/runner/.cache/deno", "modulesCache": "/home/runner/.cache/deno/remote"}`,
			want: "/home/runner/.cache/deno",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			d, runner := newDetector(t, domain.Platform{OS: "linux", Arch: "amd64"}, nil)

			cmd := tt.cmd
			cmd.Dir = "/work"
			runner.EXPECT().Output(gomock.Any(), cmd).Return(tt.out, nil)

			got, ok := d.DetectCachePath(context.Background(), tt.pm, "/work")
			require.True(t, ok)
			assert.Equal(t, filepath.Clean(tt.want), got)
		})
	}
}

func TestDetector_Fallbacks(t *testing.T) {
	t.Parallel()

	linux := domain.Platform{OS: "linux", Arch: "amd64"}
	darwin := domain.Platform{OS: "darwin", Arch: "arm64"}
	windows := domain.Platform{OS: "windows", Arch: "amd64"}
	localAppData := map[string]string{"LOCALAPPDATA": `C:\Users\runner\AppData\Local`}

	tests := []struct {
		name     string
		pm       domain.PackageManagerSpec
		platform domain.Platform
		vars     map[string]string
		want     string
	}{
		{"npm linux", pm(domain.PackageManagerNpm, "10.9.0"), linux, nil, filepath.Join(home, ".npm")},
		{"npm windows", pm(domain.PackageManagerNpm, "10.9.0"), windows, localAppData, filepath.Join(localAppData["LOCALAPPDATA"], "npm-cache")},
		{"pnpm linux", pm(domain.PackageManagerPnpm, "10.20.0"), linux, nil, filepath.Join(home, ".local", "share", "pnpm", "store")},
		{"pnpm linux xdg", pm(domain.PackageManagerPnpm, "10.20.0"), linux, map[string]string{"XDG_DATA_HOME": "/data"}, filepath.Join("/data", "pnpm", "store")},
		{"pnpm darwin", pm(domain.PackageManagerPnpm, "10.20.0"), darwin, nil, filepath.Join(home, "Library", "pnpm", "store")},
		{"pnpm windows", pm(domain.PackageManagerPnpm, "10.20.0"), windows, localAppData, filepath.Join(localAppData["LOCALAPPDATA"], "pnpm", "store")},
		{"yarn classic linux", pm(domain.PackageManagerYarn, "1.22.22"), linux, nil, filepath.Join(home, ".cache", "yarn")},
		{"yarn classic darwin", pm(domain.PackageManagerYarn, "1.22.22"), darwin, nil, filepath.Join(home, "Library", "Caches", "Yarn")},
		{"yarn classic windows", pm(domain.PackageManagerYarn, "1.22.22"), windows, localAppData, filepath.Join(localAppData["LOCALAPPDATA"], "Yarn", "Cache")},
		{"yarn berry", pm(domain.PackageManagerYarn, "4.10.3"), darwin, nil, filepath.Join(home, ".yarn", "berry", "cache")},
		{"bun default", pm(domain.PackageManagerBun, "1.3.2"), linux, nil, filepath.Join(home, ".bun", "install", "cache")},
		{"bun env", pm(domain.PackageManagerBun, "1.3.2"), linux, map[string]string{"BUN_INSTALL_CACHE_DIR": "/bun-cache"}, "/bun-cache"},
		{"deno env", pm(domain.PackageManagerDeno, "2.5.6"), linux, map[string]string{"DENO_DIR": "/deno"}, "/deno"},
		{"deno linux", pm(domain.PackageManagerDeno, "2.5.6"), linux, nil, filepath.Join(home, ".cache", "deno")},
		{"deno darwin", pm(domain.PackageManagerDeno, "2.5.6"), darwin, nil, filepath.Join(home, "Library", "Caches", "deno")},
		{"deno windows", pm(domain.PackageManagerDeno, "2.5.6"), windows, localAppData, filepath.Join(localAppData["LOCALAPPDATA"], "deno")},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			d, runner := newDetector(t, tt.platform, tt.vars)
			runner.EXPECT().Output(gomock.Any(), gomock.Any()).Return("", errors.New("not found"))

			got, ok := d.DetectCachePath(context.Background(), tt.pm, t.TempDir())
			require.True(t, ok)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestDetector_EmptyQueryOutputFallsBack(t *testing.T) {
	t.Parallel()

	d, runner := newDetector(t, domain.Platform{OS: "linux", Arch: "amd64"}, nil)
	runner.EXPECT().Output(gomock.Any(), gomock.Any()).Return("undefined", nil)

	got, ok := d.DetectCachePath(context.Background(), pm(domain.PackageManagerNpm, "10.9.0"), t.TempDir())
	require.True(t, ok)
	assert.Equal(t, filepath.Join(home, ".npm"), got)
}

func TestDetector_ProjectHints(t *testing.T) {
	t.Parallel()

	t.Run("yarnrc cacheFolder", func(t *testing.T) {
		t.Parallel()
		workdir := t.TempDir()
		require.NoError(t, os.WriteFile(filepath.Join(workdir, ".yarnrc.yml"), []byte("nodeLinker: pnp\ncacheFolder: ./.yarn/cache\n"), 0o600))

		d, runner := newDetector(t, domain.Platform{OS: "linux", Arch: "amd64"}, nil)
		runner.EXPECT().Output(gomock.Any(), gomock.Any()).Return("", errors.New("yarn missing"))

		got, ok := d.DetectCachePath(context.Background(), pm(domain.PackageManagerYarn, "4.10.3"), workdir)
		require.True(t, ok)
		assert.Equal(t, filepath.Join(workdir, ".yarn", "cache"), got)
	})

	t.Run("bunfig install cache dir", func(t *testing.T) {
		t.Parallel()
		workdir := t.TempDir()
		require.NoError(t, os.WriteFile(filepath.Join(workdir, "bunfig.toml"), []byte("[install.cache]\ndir = \"~/.custom-bun\"\n"), 0o600))

		d, runner := newDetector(t, domain.Platform{OS: "linux", Arch: "amd64"}, nil)
		runner.EXPECT().Output(gomock.Any(), gomock.Any()).Return("", errors.New("bun missing"))

		got, ok := d.DetectCachePath(context.Background(), pm(domain.PackageManagerBun, "1.3.2"), workdir)
		require.True(t, ok)
		assert.Equal(t, filepath.Join(home, ".custom-bun"), got)
	})
}

func TestDetector_NoHome(t *testing.T) {
	t.Parallel()

	ctrl := gomock.NewController(t)
	runner := mocks.NewMockCommandRunner(ctrl)
	log := mocks.NewMockLogger(ctrl)
	log.EXPECT().Debug(gomock.Any()).AnyTimes()
	runner.EXPECT().Output(gomock.Any(), gomock.Any()).Return("", errors.New("missing"))

	d := cachepath.NewDetectorWith(runner, log, domain.Platform{OS: "linux", Arch: "amd64"}, env(nil),
		func() (string, error) { return "", errors.New("no home") })

	_, ok := d.DetectCachePath(context.Background(), pm(domain.PackageManagerNpm, "10.9.0"), t.TempDir())
	assert.False(t, ok)
}
