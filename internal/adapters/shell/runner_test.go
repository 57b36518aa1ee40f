package shell_test

import (
	"context"
	"os"
	"runtime"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.trai.ch/setupjs/internal/adapters/shell"
	"go.trai.ch/setupjs/internal/core/domain"
	"go.trai.ch/setupjs/internal/core/ports/mocks"
	"go.trai.ch/zerr"
	"go.uber.org/mock/gomock"
)

func skipOnWindows(t *testing.T) {
	t.Helper()
	if runtime.GOOS == "windows" {
		t.Skip("uses sh")
	}
}

func TestRunner_Run_LogsEachLine(t *testing.T) {
	t.Parallel()
	skipOnWindows(t)

	ctrl := gomock.NewController(t)
	log := mocks.NewMockLogger(ctrl)
	log.EXPECT().Debug(gomock.Any()).AnyTimes()
	gomock.InOrder(
		log.EXPECT().Info("line1"),
		log.EXPECT().Info("part1part2"),
	)

	runner := shell.NewRunner(log)
	err := runner.Run(context.Background(), domain.Command{
		Name: "sh",
		Args: []string{"-c", "echo line1; printf part1; sleep 0.1; echo part2"},
		Dir:  t.TempDir(),
	})
	require.NoError(t, err)
}

func TestRunner_Run_FlushesTrailingOutput(t *testing.T) {
	t.Parallel()
	skipOnWindows(t)

	ctrl := gomock.NewController(t)
	log := mocks.NewMockLogger(ctrl)
	log.EXPECT().Debug(gomock.Any()).AnyTimes()
	log.EXPECT().Info("no newline")

	err := shell.NewRunner(log).Run(context.Background(), domain.Command{
		Name: "sh",
		Args: []string{"-c", "printf 'no newline'"},
	})
	require.NoError(t, err)
}

func TestRunner_Run_Failure(t *testing.T) {
	t.Parallel()
	skipOnWindows(t)

	ctrl := gomock.NewController(t)
	log := mocks.NewMockLogger(ctrl)
	log.EXPECT().Debug(gomock.Any()).AnyTimes()
	log.EXPECT().Info(gomock.Any()).AnyTimes()

	err := shell.NewRunner(log).Run(context.Background(), domain.Command{
		Name: "sh",
		Args: []string{"-c", "exit 3"},
	})
	require.Error(t, err)
	assert.Contains(t, err.Error(), domain.ErrCommandFailed.Error())

	var zErr *zerr.Error
	require.ErrorAs(t, err, &zErr)
	assert.Equal(t, 3, zErr.Metadata()["exit_code"])
	assert.Equal(t, "sh -c exit 3", zErr.Metadata()["command"])
}

func TestRunner_Output(t *testing.T) {
	t.Parallel()
	skipOnWindows(t)

	ctrl := gomock.NewController(t)
	log := mocks.NewMockLogger(ctrl)
	log.EXPECT().Debug(gomock.Any()).AnyTimes()

	out, err := shell.NewRunner(log).Output(context.Background(), domain.Command{
		Name: "sh",
		Args: []string{"-c", "echo '  /home/runner/.npm  '; echo noise >&2"},
	})
	require.NoError(t, err)
	assert.Equal(t, "/home/runner/.npm", out)
}

func TestRunner_Output_EnvOverride(t *testing.T) {
	t.Parallel()
	skipOnWindows(t)

	ctrl := gomock.NewController(t)
	log := mocks.NewMockLogger(ctrl)
	log.EXPECT().Debug(gomock.Any()).AnyTimes()

	out, err := shell.NewRunner(log).Output(context.Background(), domain.Command{
		Name: "sh",
		Args: []string{"-c", "echo $SETUPJS_TEST_VALUE"},
		Env:  []string{"SETUPJS_TEST_VALUE=test-value-123"},
	})
	require.NoError(t, err)
	assert.Equal(t, "test-value-123", out)
}

func TestRunner_Output_FailureKeepsStderr(t *testing.T) {
	t.Parallel()
	skipOnWindows(t)

	ctrl := gomock.NewController(t)
	log := mocks.NewMockLogger(ctrl)
	log.EXPECT().Debug(gomock.Any()).AnyTimes()

	_, err := shell.NewRunner(log).Output(context.Background(), domain.Command{
		Name: "sh",
		Args: []string{"-c", "echo boom >&2; exit 1"},
	})
	require.Error(t, err)

	var zErr *zerr.Error
	require.ErrorAs(t, err, &zErr)
	assert.Equal(t, "boom", zErr.Metadata()["stderr"])
}

func TestRunner_MissingBinary(t *testing.T) {
	t.Parallel()

	ctrl := gomock.NewController(t)
	log := mocks.NewMockLogger(ctrl)
	log.EXPECT().Debug(gomock.Any()).AnyTimes()

	_, err := shell.NewRunner(log).Output(context.Background(), domain.Command{Name: "setupjs-definitely-missing-binary"})
	require.Error(t, err)

	var zErr *zerr.Error
	require.ErrorAs(t, err, &zErr)
	assert.Equal(t, -1, zErr.Metadata()["exit_code"])
}

func TestResolveEnvironment(t *testing.T) {
	t.Parallel()

	sep := string(os.PathListSeparator)
	sysEnv := []string{"HOME=/home/runner", "PATH=/usr/bin"}

	assert.Equal(t, sysEnv, shell.ResolveEnvironment(sysEnv, nil))

	got := shell.ResolveEnvironment(sysEnv, []string{"PATH=/opt/node/bin", "NODE_OPTIONS=--max-old-space-size=4096"})
	assert.Equal(t, []string{
		"HOME=/home/runner",
		"PATH=/opt/node/bin" + sep + "/usr/bin",
		"NODE_OPTIONS=--max-old-space-size=4096",
	}, got)
}
