// Package shell runs external tools such as package managers and installed runtimes.
package shell

import (
	"bytes"
	"context"
	"errors"
	"io"
	"os"
	"os/exec"
	"strings"

	"go.trai.ch/setupjs/internal/core/domain"
	"go.trai.ch/setupjs/internal/core/ports"
	"go.trai.ch/zerr"
)

var _ ports.CommandRunner = (*Runner)(nil)

// Runner implements ports.CommandRunner using os/exec.
type Runner struct {
	logger ports.Logger
}

// NewRunner creates a new Runner.
func NewRunner(logger ports.Logger) *Runner {
	return &Runner{logger: logger}
}

// Run executes cmd, forwarding each line it prints to the log.
func (r *Runner) Run(ctx context.Context, cmd domain.Command) error {
	r.logger.Debug("$ " + cmd.String())

	stdoutLog := &logWriter{logger: r.logger, level: levelInfo}
	stderrLog := &logWriter{logger: r.logger, level: levelInfo}
	defer func() {
		_ = stdoutLog.Close()
		_ = stderrLog.Close()
	}()

	c := command(ctx, cmd)
	c.Stdout = stdoutLog
	c.Stderr = stderrLog

	if err := c.Run(); err != nil {
		return commandError(err, cmd, "")
	}
	return nil
}

// Output executes cmd and returns its trimmed standard output.
// Standard error is kept for the failure report and logged at debug level.
func (r *Runner) Output(ctx context.Context, cmd domain.Command) (string, error) {
	r.logger.Debug("$ " + cmd.String())

	var stdout, stderr bytes.Buffer
	stderrLog := &logWriter{logger: r.logger, level: levelDebug}
	defer func() { _ = stderrLog.Close() }()

	c := command(ctx, cmd)
	c.Stdout = &stdout
	c.Stderr = io.MultiWriter(&stderr, stderrLog)

	if err := c.Run(); err != nil {
		return "", commandError(err, cmd, strings.TrimSpace(stderr.String()))
	}
	return strings.TrimSpace(stdout.String()), nil
}

func command(ctx context.Context, cmd domain.Command) *exec.Cmd {
	c := exec.CommandContext(ctx, cmd.Name, cmd.Args...) //nolint:gosec // commands are built from validated inputs
	c.Dir = cmd.Dir
	c.Env = resolveEnvironment(os.Environ(), cmd.Env)
	return c
}

func commandError(err error, cmd domain.Command, stderr string) error {
	exitCode := -1
	var exitErr *exec.ExitError
	if errors.As(err, &exitErr) {
		exitCode = exitErr.ExitCode()
	}

	wrapped := zerr.Wrap(err, domain.ErrCommandFailed.Error())
	wrapped = zerr.With(wrapped, "command", cmd.String())
	wrapped = zerr.With(wrapped, "exit_code", exitCode)
	if stderr != "" {
		wrapped = zerr.With(wrapped, "stderr", stderr)
	}
	return wrapped
}

// resolveEnvironment applies overrides on top of the process environment.
// A PATH override is prepended to the inherited PATH.
func resolveEnvironment(sysEnv, overrides []string) []string {
	if len(overrides) == 0 {
		return sysEnv
	}

	envMap := make(map[string]string, len(sysEnv)+len(overrides))
	order := make([]string, 0, len(sysEnv)+len(overrides))
	set := func(k, v string) {
		if _, exists := envMap[k]; !exists {
			order = append(order, k)
		}
		envMap[k] = v
	}

	for _, entry := range sysEnv {
		if k, v, ok := strings.Cut(entry, "="); ok {
			set(k, v)
		}
	}
	for _, entry := range overrides {
		k, v, ok := strings.Cut(entry, "=")
		if !ok {
			continue
		}
		if k == "PATH" {
			if sysPath := envMap["PATH"]; sysPath != "" {
				v = v + string(os.PathListSeparator) + sysPath
			}
		}
		set(k, v)
	}

	result := make([]string, 0, len(order))
	for _, k := range order {
		result = append(result, k+"="+envMap[k])
	}
	return result
}

type logLevel int

const (
	levelInfo logLevel = iota
	levelDebug
)

type logWriter struct {
	logger ports.Logger
	level  logLevel
	buf    []byte
}

func (w *logWriter) Write(p []byte) (n int, err error) {
	w.buf = append(w.buf, p...)

	for {
		i := bytes.IndexByte(w.buf, '\n')
		if i < 0 {
			break
		}

		w.logLine(w.buf[:i])
		w.buf = w.buf[i+1:]
	}

	return len(p), nil
}

func (w *logWriter) Close() error {
	if len(w.buf) > 0 {
		w.logLine(w.buf)
		w.buf = nil
	}
	return nil
}

func (w *logWriter) logLine(line []byte) {
	msg := strings.TrimSuffix(string(line), "\r")

	if w.level == levelInfo {
		w.logger.Info(msg)
	} else {
		w.logger.Debug(msg)
	}
}
