//go:build e2e

package e2e_test

import (
	"os"
	"os/exec"
	"path/filepath"
	"testing"

	"github.com/rogpeppe/go-internal/testscript"
)

var setupjsBinary string

func TestMain(m *testing.M) {
	tmpDir, err := os.MkdirTemp("", "setupjs-e2e-*")
	if err != nil {
		panic(err)
	}

	setupjsBinary = filepath.Join(tmpDir, "setupjs")

	//nolint:gosec // Building binary with static arguments, not user input
	cmd := exec.Command("go", "build", "-o", setupjsBinary, "./cmd/setupjs")
	cmd.Dir = ".."
	cmd.Stdout = os.Stdout
	cmd.Stderr = os.Stderr

	if err := cmd.Run(); err != nil {
		panic("failed to build setupjs binary: " + err.Error())
	}

	exitCode := m.Run()

	_ = os.RemoveAll(tmpDir)

	os.Exit(exitCode)
}

func TestScripts(t *testing.T) {
	testscript.Run(t, testscript.Params{
		Dir:   "testdata",
		Setup: setupE2E,
	})
}

func setupE2E(env *testscript.Env) error {
	env.Setenv("NO_COLOR", "1")
	env.Setenv("CI", "true")
	env.Setenv("GITHUB_ACTIONS", "")
	env.Setenv("SETUPJS_LOG_FORMAT", "pretty")

	binDir := filepath.Dir(setupjsBinary)
	currentPath := env.Getenv("PATH")
	env.Setenv("PATH", binDir+string(os.PathListSeparator)+currentPath)

	homeDir := filepath.Join(env.WorkDir, ".home")
	if err := os.MkdirAll(homeDir, 0o750); err != nil {
		return err
	}
	env.Setenv("HOME", homeDir)
	env.Setenv("RUNNER_TOOL_CACHE", filepath.Join(env.WorkDir, ".tools"))
	env.Setenv("SETUPJS_CACHE_DIR", filepath.Join(env.WorkDir, ".cache"))

	return nil
}
