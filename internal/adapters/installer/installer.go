// Package installer downloads, verifies and activates pinned tool distributions.
package installer

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"regexp"

	"go.trai.ch/setupjs/internal/core/domain"
	"go.trai.ch/setupjs/internal/core/ports"
	"go.trai.ch/zerr"
)

var versionPattern = regexp.MustCompile(`\d+\.\d+\.\d+(?:-[0-9A-Za-z.-]+)?`)

var _ ports.Installer = (*Installer)(nil)

// Installer implements ports.Installer for archive-distributed tools.
type Installer struct {
	dists      map[domain.ToolName]Distribution
	cache      ports.ToolCache
	downloader ports.Downloader
	runner     ports.CommandRunner
	env        ports.Environment
	logger     ports.Logger
	platform   domain.Platform
}

// NewInstaller creates an Installer for the host platform with the default distributions.
func NewInstaller(
	cache ports.ToolCache,
	downloader ports.Downloader,
	runner ports.CommandRunner,
	env ports.Environment,
	logger ports.Logger,
) *Installer {
	return newInstallerWith(domain.CurrentPlatform(), DefaultDistributions(), cache, downloader, runner, env, logger)
}

func newInstallerWith(
	platform domain.Platform,
	dists []Distribution,
	cache ports.ToolCache,
	downloader ports.Downloader,
	runner ports.CommandRunner,
	env ports.Environment,
	logger ports.Logger,
) *Installer {
	byTool := make(map[domain.ToolName]Distribution, len(dists))
	for _, d := range dists {
		byTool[d.Tool()] = d
	}
	return &Installer{
		dists:      byTool,
		cache:      cache,
		downloader: downloader,
		runner:     runner,
		env:        env,
		logger:     logger,
		platform:   platform,
	}
}

// Install makes version of tool available on PATH and returns the version the binary reports.
// Unknown tools, missing versions and unsupported platforms fail before any network access.
func (i *Installer) Install(ctx context.Context, tool domain.ToolName, version string) (string, error) {
	if version == "" {
		return "", zerr.With(zerr.Wrap(domain.ErrMissingVersion, "cannot install"), "tool", string(tool))
	}
	dist, ok := i.dists[tool]
	if !ok {
		return "", zerr.With(zerr.Wrap(domain.ErrUnknownTool, "cannot install"), "tool", string(tool))
	}

	rel, err := dist.Release(i.platform, version)
	if err != nil {
		return "", err
	}

	arch := i.platform.NodeArch()
	root, hit := i.cache.Find(tool, version, arch)
	if hit {
		i.logger.Info(fmt.Sprintf("Using cached %s %s", tool, version))
	} else {
		root, err = i.fetch(ctx, rel, tool, version, arch)
		if err != nil {
			return "", installError(err, tool, version)
		}
	}

	binDir := filepath.Join(root, filepath.FromSlash(rel.BinDir))
	if err := i.env.AddPath(binDir); err != nil {
		return "", installError(err, tool, version)
	}

	out, err := i.runner.Output(ctx, domain.Command{
		Name: filepath.Join(binDir, rel.Executable),
		Args: dist.VersionArgs(),
	})
	if err != nil {
		return "", toolError(zerr.Wrap(err, domain.ErrVerifyFailed.Error()), tool, version)
	}

	installed := versionPattern.FindString(out)
	if installed == "" {
		err := zerr.With(zerr.Wrap(domain.ErrVerifyFailed, "no version in output"), "output", out)
		return "", toolError(err, tool, version)
	}
	if installed != version {
		i.logger.Warn(fmt.Sprintf("%s reports version %s, expected %s", tool, installed, version))
	}

	i.logger.Info(fmt.Sprintf("Installed %s %s", tool, installed))
	return installed, nil
}

// fetch downloads and unpacks rel into a staging directory and registers it in the tool cache.
func (i *Installer) fetch(ctx context.Context, rel Release, tool domain.ToolName, version, arch string) (string, error) {
	i.logger.Info(fmt.Sprintf("Downloading %s %s from %s", tool, version, rel.URL))

	file, err := i.downloader.Download(ctx, rel.URL)
	if err != nil {
		return "", err
	}
	defer func() { _ = os.Remove(file) }()

	if err := i.verifyChecksum(ctx, file, rel); err != nil {
		return "", err
	}

	staging, err := os.MkdirTemp("", "setupjs-"+string(tool)+"-")
	if err != nil {
		return "", err
	}
	defer func() { _ = os.RemoveAll(staging) }()

	if err := unpack(file, staging, rel); err != nil {
		return "", err
	}

	if !i.platform.IsWindows() {
		executable := filepath.Join(staging, filepath.FromSlash(rel.BinDir), rel.Executable)
		if err := os.Chmod(executable, domain.ExecPerm); err != nil {
			return "", err
		}
	}

	return i.cache.Add(staging, tool, version, arch)
}

func installError(err error, tool domain.ToolName, version string) error {
	return toolError(zerr.Wrap(err, domain.ErrInstallFailed.Error()), tool, version)
}

func toolError(err error, tool domain.ToolName, version string) error {
	return zerr.With(zerr.With(err, "tool", string(tool)), "version", version)
}
