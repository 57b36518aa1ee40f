package ports

import "go.trai.ch/setupjs/internal/core/domain"

// Environment mutates the environment of this and later job steps.
//
//go:generate mockgen -source=runner.go -destination=mocks/mock_runner.go -package=mocks
type Environment interface {
	// AddPath prepends dir to PATH.
	AddPath(dir string) error

	// ExportVariable sets name for this process and later steps.
	ExportVariable(name, value string) error
}

// Outputs publishes step outputs.
type Outputs interface {
	// Set writes an output. Keys outside the allow-list fail with domain.ErrUnknownOutput.
	Set(key domain.OutputKey, value string) error
}

// StateStore carries values from the main phase to the post phase.
type StateStore interface {
	// Save persists value under key.
	Save(key, value string) error

	// Get returns the value saved under key, or "" when absent.
	Get(key string) (string, error)
}
