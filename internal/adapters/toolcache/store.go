// Package toolcache stores extracted tool distributions between runs.
package toolcache

import (
	"io"
	"io/fs"
	"os"
	"path/filepath"

	"go.trai.ch/setupjs/internal/core/domain"
	"go.trai.ch/setupjs/internal/core/ports"
	"go.trai.ch/zerr"
)

const completeSuffix = ".complete"

var _ ports.ToolCache = (*Store)(nil)

// Store implements ports.ToolCache as <root>/<tool>/<version>/<arch>.
// An install is complete once the <arch>.complete marker exists next to it.
type Store struct {
	root string
}

// NewStore creates a Store rooted at the default tool cache directory.
func NewStore() *Store {
	return NewStoreWithPath(domain.DefaultToolCachePath())
}

// NewStoreWithPath creates a Store rooted at root.
func NewStoreWithPath(root string) *Store {
	return &Store{root: filepath.Clean(root)}
}

// Find returns the directory of a complete install.
func (s *Store) Find(tool domain.ToolName, version, arch string) (string, bool) {
	dir := s.dir(tool, version, arch)
	if _, err := os.Stat(dir + completeSuffix); err != nil {
		return "", false
	}
	if info, err := os.Stat(dir); err != nil || !info.IsDir() {
		return "", false
	}
	return dir, true
}

// Add moves srcDir into the cache, replacing any partial install, and marks it complete.
func (s *Store) Add(srcDir string, tool domain.ToolName, version, arch string) (string, error) {
	dir := s.dir(tool, version, arch)
	marker := dir + completeSuffix

	if err := os.Remove(marker); err != nil && !os.IsNotExist(err) {
		return "", s.writeError(err, tool, version)
	}
	if err := os.RemoveAll(dir); err != nil {
		return "", s.writeError(err, tool, version)
	}
	if err := os.MkdirAll(filepath.Dir(dir), domain.DirPerm); err != nil {
		return "", s.writeError(err, tool, version)
	}

	if err := os.Rename(srcDir, dir); err != nil {
		// Staging may live on another device.
		if copyErr := copyDir(srcDir, dir); copyErr != nil {
			return "", s.writeError(copyErr, tool, version)
		}
		_ = os.RemoveAll(srcDir)
	}

	//nolint:gosec // marker path is built from the cache root
	if err := os.WriteFile(marker, nil, domain.FilePerm); err != nil {
		return "", s.writeError(err, tool, version)
	}
	return dir, nil
}

func (s *Store) dir(tool domain.ToolName, version, arch string) string {
	return filepath.Join(s.root, string(tool), version, arch)
}

func (s *Store) writeError(err error, tool domain.ToolName, version string) error {
	wrapped := zerr.Wrap(err, domain.ErrToolCacheWriteFailed.Error())
	wrapped = zerr.With(wrapped, "tool", string(tool))
	return zerr.With(wrapped, "version", version)
}

func copyDir(src, dst string) error {
	return filepath.WalkDir(src, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		rel, err := filepath.Rel(src, path)
		if err != nil {
			return err
		}
		target := filepath.Join(dst, rel)

		switch {
		case d.IsDir():
			return os.MkdirAll(target, domain.DirPerm)
		case d.Type()&fs.ModeSymlink != 0:
			link, err := os.Readlink(path)
			if err != nil {
				return err
			}
			return os.Symlink(link, target)
		default:
			info, err := d.Info()
			if err != nil {
				return err
			}
			return copyFile(path, target, info.Mode().Perm())
		}
	})
}

func copyFile(src, dst string, perm fs.FileMode) error {
	in, err := os.Open(src) //nolint:gosec // src is inside the staging directory
	if err != nil {
		return err
	}
	defer func() { _ = in.Close() }()

	out, err := os.OpenFile(dst, os.O_CREATE|os.O_WRONLY|os.O_TRUNC, perm) //nolint:gosec // dst is inside the cache root
	if err != nil {
		return err
	}
	if _, err := io.Copy(out, in); err != nil {
		_ = out.Close()
		return err
	}
	return out.Close()
}
