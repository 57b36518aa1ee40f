// Package runner speaks the CI runner's file-command protocol for outputs, state, PATH and env.
package runner

import (
	"crypto/rand"
	"encoding/hex"
	"os"
	"strings"

	"go.trai.ch/setupjs/internal/core/domain"
	"go.trai.ch/zerr"
)

// File-command variables set by the runner.
const (
	OutputFileEnv = "GITHUB_OUTPUT"
	StateFileEnv  = "GITHUB_STATE"
	PathFileEnv   = "GITHUB_PATH"
	EnvFileEnv    = "GITHUB_ENV"

	// StateEnvPrefix prefixes state values handed to the post phase.
	StateEnvPrefix = "STATE_"
)

// formatKeyValue renders name and value in the heredoc form used by file commands.
func formatKeyValue(name, value string) (string, error) {
	delimiter, err := newDelimiter()
	if err != nil {
		return "", err
	}
	if strings.Contains(name, delimiter) || strings.Contains(value, delimiter) {
		return "", zerr.With(zerr.New("value contains the heredoc delimiter"), "name", name)
	}
	return name + "<<" + delimiter + "\n" + value + "\n" + delimiter + "\n", nil
}

func newDelimiter() (string, error) {
	buf := make([]byte, 16)
	if _, err := rand.Read(buf); err != nil {
		return "", err
	}
	return "ghadelimiter_" + hex.EncodeToString(buf), nil
}

// appendFile appends line to the file command at path.
func appendFile(path, line string) error {
	//nolint:gosec // path is provided by the runner
	f, err := os.OpenFile(path, os.O_APPEND|os.O_CREATE|os.O_WRONLY, domain.FilePerm)
	if err != nil {
		return err
	}
	if _, err := f.WriteString(line); err != nil {
		_ = f.Close()
		return err
	}
	return f.Close()
}
