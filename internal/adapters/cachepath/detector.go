// Package cachepath locates the global cache directory of each package manager.
package cachepath

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"go.trai.ch/setupjs/internal/core/domain"
	"go.trai.ch/setupjs/internal/core/ports"
)

var _ ports.CachePathDetector = (*Detector)(nil)

// Detector implements ports.CachePathDetector.
// It asks the package manager first, then reads project configuration, then falls back to
// the documented per-platform default.
type Detector struct {
	runner   ports.CommandRunner
	logger   ports.Logger
	platform domain.Platform
	getenv   func(string) string
	homeDir  func() (string, error)
}

// NewDetector creates a Detector for the host platform.
func NewDetector(runner ports.CommandRunner, logger ports.Logger) *Detector {
	return newDetectorWith(runner, logger, domain.CurrentPlatform(), os.Getenv, os.UserHomeDir)
}

func newDetectorWith(
	runner ports.CommandRunner,
	logger ports.Logger,
	platform domain.Platform,
	getenv func(string) string,
	homeDir func() (string, error),
) *Detector {
	return &Detector{
		runner:   runner,
		logger:   logger,
		platform: platform,
		getenv:   getenv,
		homeDir:  homeDir,
	}
}

// DetectCachePath returns the cache directory of pm for a project in workdir.
func (d *Detector) DetectCachePath(ctx context.Context, pm domain.PackageManagerSpec, workdir string) (string, bool) {
	s := strategyFor(pm)
	if s == nil {
		return "", false
	}

	if path, ok := d.query(ctx, s, pm, workdir); ok {
		return path, true
	}

	if s.hint != nil {
		if path, ok := s.hint(d, workdir); ok {
			d.logger.Debug(fmt.Sprintf("%s cache path from project config: %s", pm.Name, path))
			return path, true
		}
	}

	path, ok := s.fallback(d)
	if ok {
		d.logger.Debug(fmt.Sprintf("%s cache path from platform default: %s", pm.Name, path))
	}
	return path, ok
}

func (d *Detector) query(ctx context.Context, s *strategy, pm domain.PackageManagerSpec, workdir string) (string, bool) {
	cmd := s.query
	cmd.Dir = workdir

	out, err := d.runner.Output(ctx, cmd)
	if err != nil {
		d.logger.Debug(fmt.Sprintf("%s failed: %v", cmd.String(), err))
		return "", false
	}

	path := out
	if s.parse != nil {
		path = s.parse(out)
	}
	path = strings.TrimSpace(path)
	if path == "" || path == "undefined" || path == "null" {
		return "", false
	}
	return d.absolute(path, workdir), true
}

// absolute expands a leading ~ and resolves relative paths against workdir.
func (d *Detector) absolute(path, workdir string) string {
	if path == "~" || strings.HasPrefix(path, "~/") || strings.HasPrefix(path, `~\`) {
		if home, err := d.homeDir(); err == nil {
			path = filepath.Join(home, path[1:])
		}
	}
	if !filepath.IsAbs(path) {
		path = filepath.Join(workdir, path)
	}
	return filepath.Clean(path)
}

// home joins elements under the user's home directory.
func (d *Detector) home(elem ...string) (string, bool) {
	home, err := d.homeDir()
	if err != nil || home == "" {
		return "", false
	}
	return filepath.Join(append([]string{home}, elem...)...), true
}

// localAppData joins elements under %LOCALAPPDATA%.
func (d *Detector) localAppData(elem ...string) (string, bool) {
	base := d.getenv("LOCALAPPDATA")
	if base == "" {
		var ok bool
		if base, ok = d.home("AppData", "Local"); !ok {
			return "", false
		}
	}
	return filepath.Join(append([]string{base}, elem...)...), true
}
