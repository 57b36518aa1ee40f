package cachepath

import (
	"go.trai.ch/setupjs/internal/core/domain"
	"go.trai.ch/setupjs/internal/core/ports"
)

// NewDetectorWith exposes newDetectorWith for testing.
func NewDetectorWith(
	runner ports.CommandRunner,
	logger ports.Logger,
	platform domain.Platform,
	getenv func(string) string,
	homeDir func() (string, error),
) *Detector {
	return newDetectorWith(runner, logger, platform, getenv, homeDir)
}
