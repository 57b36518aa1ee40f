package runner

import (
	"fmt"
	"io"
	"os"

	"go.trai.ch/setupjs/internal/core/domain"
	"go.trai.ch/setupjs/internal/core/ports"
	"go.trai.ch/zerr"
)

var _ ports.Outputs = (*Outputs)(nil)

// Outputs implements ports.Outputs on the output file command, or key=value lines outside CI.
type Outputs struct {
	getenv func(string) string
	stdout io.Writer
}

// NewOutputs creates Outputs for the current process.
func NewOutputs() *Outputs {
	return NewOutputsWith(os.Getenv, os.Stdout)
}

// NewOutputsWith creates Outputs with an explicit environment and fallback writer.
func NewOutputsWith(getenv func(string) string, stdout io.Writer) *Outputs {
	return &Outputs{getenv: getenv, stdout: stdout}
}

// Set writes one output. Keys outside the allow-list are rejected.
func (o *Outputs) Set(key domain.OutputKey, value string) error {
	if !key.IsValid() {
		return zerr.With(zerr.Wrap(domain.ErrUnknownOutput, "rejected"), "key", string(key))
	}

	path := o.getenv(OutputFileEnv)
	if path == "" {
		if _, err := fmt.Fprintf(o.stdout, "%s=%s\n", key, value); err != nil {
			return zerr.Wrap(err, domain.ErrOutputWriteFailed.Error())
		}
		return nil
	}

	line, err := formatKeyValue(string(key), value)
	if err == nil {
		err = appendFile(path, line)
	}
	if err != nil {
		return zerr.With(zerr.Wrap(err, domain.ErrOutputWriteFailed.Error()), "key", string(key))
	}
	return nil
}
