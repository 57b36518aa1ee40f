package runner

import (
	"os"

	"go.trai.ch/setupjs/internal/core/domain"
	"go.trai.ch/setupjs/internal/core/ports"
	"go.trai.ch/zerr"
)

var _ ports.Environment = (*Environment)(nil)

// Environment implements ports.Environment.
// Changes apply to this process and, inside CI, to later steps of the job.
type Environment struct {
	getenv func(string) string
	setenv func(string, string) error
}

// NewEnvironment creates an Environment for the current process.
func NewEnvironment() *Environment {
	return NewEnvironmentWith(os.Getenv, os.Setenv)
}

// NewEnvironmentWith creates an Environment with explicit accessors.
func NewEnvironmentWith(getenv func(string) string, setenv func(string, string) error) *Environment {
	return &Environment{getenv: getenv, setenv: setenv}
}

// AddPath prepends dir to PATH.
func (e *Environment) AddPath(dir string) error {
	path := dir
	if current := e.getenv("PATH"); current != "" {
		path = dir + string(os.PathListSeparator) + current
	}
	if err := e.setenv("PATH", path); err != nil {
		return zerr.With(zerr.Wrap(err, domain.ErrEnvironmentWriteFailed.Error()), "path", dir)
	}

	if file := e.getenv(PathFileEnv); file != "" {
		if err := appendFile(file, dir+"\n"); err != nil {
			return zerr.With(zerr.Wrap(err, domain.ErrEnvironmentWriteFailed.Error()), "path", dir)
		}
	}
	return nil
}

// ExportVariable sets name for this process and later steps.
func (e *Environment) ExportVariable(name, value string) error {
	if err := e.setenv(name, value); err != nil {
		return zerr.With(zerr.Wrap(err, domain.ErrEnvironmentWriteFailed.Error()), "name", name)
	}

	if file := e.getenv(EnvFileEnv); file != "" {
		line, err := formatKeyValue(name, value)
		if err == nil {
			err = appendFile(file, line)
		}
		if err != nil {
			return zerr.With(zerr.Wrap(err, domain.ErrEnvironmentWriteFailed.Error()), "name", name)
		}
	}
	return nil
}
