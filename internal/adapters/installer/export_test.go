package installer

import (
	"go.trai.ch/setupjs/internal/core/domain"
	"go.trai.ch/setupjs/internal/core/ports"
)

// NewInstallerWith exposes newInstallerWith for testing.
func NewInstallerWith(
	platform domain.Platform,
	dists []Distribution,
	cache ports.ToolCache,
	downloader ports.Downloader,
	runner ports.CommandRunner,
	env ports.Environment,
	logger ports.Logger,
) *Installer {
	return newInstallerWith(platform, dists, cache, downloader, runner, env, logger)
}

// Unpack exposes unpack for testing.
var Unpack = unpack

// LookupChecksum exposes lookupChecksum for testing.
var LookupChecksum = lookupChecksum
