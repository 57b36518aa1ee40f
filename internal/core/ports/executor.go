package ports

import (
	"context"

	"go.trai.ch/setupjs/internal/core/domain"
)

// CommandRunner runs external tools.
//
//go:generate mockgen -source=executor.go -destination=mocks/mock_executor.go -package=mocks
type CommandRunner interface {
	// Run executes cmd and streams its output to the log.
	Run(ctx context.Context, cmd domain.Command) error

	// Output executes cmd and returns its trimmed standard output.
	Output(ctx context.Context, cmd domain.Command) (string, error)
}
