// Package blobcache implements a filesystem-backed dependency cache keyed like the CI cache service.
package blobcache

import (
	"context"
	_ "crypto/sha256" // registers the digest algorithm
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"slices"
	"strings"
	"time"

	"github.com/cespare/xxhash/v2"
	"github.com/opencontainers/go-digest"
	"go.trai.ch/setupjs/internal/core/domain"
	"go.trai.ch/setupjs/internal/core/ports"
	"go.trai.ch/zerr"
)

var _ ports.CacheBackend = (*Store)(nil)

// entryMeta is the JSON sidecar written next to each archive.
type entryMeta struct {
	Key       string    `json:"key"`
	Version   string    `json:"version"`
	Paths     []string  `json:"paths"`
	CreatedAt time.Time `json:"createdAt"`
	Size      int64     `json:"size"`
}

// Store implements ports.CacheBackend with one tar.gz and one JSON file per entry.
// Entries only match requests for the same set of paths.
type Store struct {
	root   string
	logger ports.Logger
	now    func() time.Time
	home   func() (string, error)
}

// NewStore creates a Store rooted at the default snapshot directory.
func NewStore(logger ports.Logger) *Store {
	return NewStoreWithPath(domain.DefaultBlobCachePath(), logger)
}

// NewStoreWithPath creates a Store rooted at root.
func NewStoreWithPath(root string, logger ports.Logger) *Store {
	return &Store{
		root:   filepath.Clean(root),
		logger: logger,
		now:    time.Now,
		home:   os.UserHomeDir,
	}
}

// Restore extracts the entry for primaryKey, or else the newest entry whose key starts with
// one of restoreKeys, tried in order. It returns the matched key, or "" on a miss.
func (s *Store) Restore(ctx context.Context, paths []string, primaryKey string, restoreKeys []string) (string, error) {
	resolved, err := s.resolvePaths(paths)
	if err != nil {
		return "", err
	}
	version := pathsVersion(resolved)

	meta, err := s.readMeta(entryID(version, primaryKey))
	if err != nil {
		return "", err
	}

	if meta == nil {
		for _, prefix := range restoreKeys {
			meta, err = s.newestWithPrefix(version, prefix)
			if err != nil {
				return "", err
			}
			if meta != nil {
				break
			}
		}
	}
	if meta == nil {
		return "", nil
	}

	archive := s.archivePath(entryID(version, meta.Key))
	s.logger.Debug(fmt.Sprintf("restoring cache entry %s (%d bytes)", meta.Key, meta.Size))
	if err := extractArchive(ctx, archive); err != nil {
		return "", zerr.With(zerr.Wrap(err, domain.ErrCacheRestoreFailed.Error()), "key", meta.Key)
	}
	return meta.Key, nil
}

// Save archives the existing paths under key.
func (s *Store) Save(ctx context.Context, paths []string, key string) error {
	resolved, err := s.resolvePaths(paths)
	if err != nil {
		return err
	}
	version := pathsVersion(resolved)
	id := entryID(version, key)

	existing, err := s.readMeta(id)
	if err != nil {
		return err
	}
	if existing != nil {
		return zerr.With(zerr.Wrap(domain.ErrCacheEntryExists, "refusing to overwrite"), "key", key)
	}

	present := make([]string, 0, len(resolved))
	for _, p := range resolved {
		if _, err := os.Lstat(p); err == nil {
			present = append(present, p)
		}
	}
	if len(present) == 0 {
		return zerr.With(zerr.Wrap(domain.ErrNothingToCache, "no cache path exists"), "paths", strings.Join(paths, ", "))
	}

	if err := os.MkdirAll(s.root, domain.DirPerm); err != nil {
		return zerr.Wrap(err, domain.ErrCacheArchiveFailed.Error())
	}

	size, err := s.writeArchive(ctx, id, present)
	if err != nil {
		return zerr.With(zerr.Wrap(err, domain.ErrCacheArchiveFailed.Error()), "key", key)
	}

	meta := entryMeta{
		Key:       key,
		Version:   version,
		Paths:     resolved,
		CreatedAt: s.now().UTC(),
		Size:      size,
	}
	data, err := json.MarshalIndent(meta, "", "  ")
	if err != nil {
		return zerr.Wrap(err, domain.ErrCacheArchiveFailed.Error())
	}
	if err := atomicWriteFile(s.metaPath(id), data); err != nil {
		_ = os.Remove(s.archivePath(id))
		return zerr.With(zerr.Wrap(err, domain.ErrCacheArchiveFailed.Error()), "key", key)
	}

	s.logger.Debug(fmt.Sprintf("saved cache entry %s (%d bytes)", key, size))
	return nil
}

func (s *Store) writeArchive(ctx context.Context, id string, paths []string) (int64, error) {
	tmp, err := os.CreateTemp(s.root, "entry-*.tar.gz.tmp")
	if err != nil {
		return 0, err
	}
	tmpName := tmp.Name()
	defer func() {
		if _, statErr := os.Stat(tmpName); statErr == nil {
			_ = os.Remove(tmpName)
		}
	}()

	exclude, err := filepath.Abs(s.root)
	if err != nil {
		_ = tmp.Close()
		return 0, err
	}
	if err := writeArchive(ctx, tmp, paths, exclude); err != nil {
		_ = tmp.Close()
		return 0, err
	}
	info, err := tmp.Stat()
	if err != nil {
		_ = tmp.Close()
		return 0, err
	}
	if err := tmp.Close(); err != nil {
		return 0, err
	}
	if err := os.Chmod(tmpName, domain.FilePerm); err != nil {
		return 0, err
	}
	return info.Size(), os.Rename(tmpName, s.archivePath(id))
}

func (s *Store) readMeta(id string) (*entryMeta, error) {
	//nolint:gosec // path is built from the store root and a hashed id
	data, err := os.ReadFile(s.metaPath(id))
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, nil
		}
		return nil, zerr.Wrap(err, domain.ErrCacheRestoreFailed.Error())
	}

	var meta entryMeta
	if err := json.Unmarshal(data, &meta); err != nil {
		return nil, zerr.With(zerr.Wrap(err, domain.ErrCacheRestoreFailed.Error()), "entry", id)
	}
	if _, err := os.Stat(s.archivePath(id)); err != nil {
		// Metadata without its archive is an interrupted save.
		return nil, nil
	}
	return &meta, nil
}

func (s *Store) newestWithPrefix(version, prefix string) (*entryMeta, error) {
	files, err := filepath.Glob(filepath.Join(s.root, "*.json"))
	if err != nil {
		return nil, zerr.Wrap(err, domain.ErrCacheRestoreFailed.Error())
	}

	var best *entryMeta
	for _, f := range files {
		meta, err := s.readMeta(strings.TrimSuffix(filepath.Base(f), ".json"))
		if err != nil || meta == nil {
			continue
		}
		if meta.Version != version || !strings.HasPrefix(meta.Key, prefix) {
			continue
		}
		if best == nil || meta.CreatedAt.After(best.CreatedAt) {
			best = meta
		}
	}
	return best, nil
}

// resolvePaths expands ~ and makes every path absolute and clean.
func (s *Store) resolvePaths(paths []string) ([]string, error) {
	out := make([]string, 0, len(paths))
	for _, p := range paths {
		if p == "~" || strings.HasPrefix(p, "~/") || strings.HasPrefix(p, `~\`) {
			home, err := s.home()
			if err != nil {
				return nil, zerr.With(zerr.Wrap(err, "cannot expand home directory"), "path", p)
			}
			p = filepath.Join(home, p[1:])
		}
		abs, err := filepath.Abs(p)
		if err != nil {
			return nil, zerr.With(zerr.Wrap(err, "invalid cache path"), "path", p)
		}
		out = append(out, abs)
	}
	return out, nil
}

func (s *Store) archivePath(id string) string {
	return filepath.Join(s.root, id+".tar.gz")
}

func (s *Store) metaPath(id string) string {
	return filepath.Join(s.root, id+".json")
}

// pathsVersion digests the sorted path list.
func pathsVersion(paths []string) string {
	sorted := slices.Clone(paths)
	slices.Sort(sorted)
	return digest.FromString(strings.Join(sorted, "\n")).Encoded()
}

// entryID derives the file name of an entry from its version and key.
func entryID(version, key string) string {
	h := xxhash.New()
	_, _ = h.WriteString(version)
	_, _ = h.Write([]byte{0})
	_, _ = h.WriteString(key)
	return fmt.Sprintf("%016x", h.Sum64())
}

// atomicWriteFile writes data to a file atomically by writing to a temp file and renaming it.
func atomicWriteFile(path string, data []byte) error {
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, domain.DirPerm); err != nil {
		return err
	}

	tmpFile, err := os.CreateTemp(dir, "entry-*.json.tmp")
	if err != nil {
		return err
	}
	tmpName := tmpFile.Name()

	defer func() {
		if _, statErr := os.Stat(tmpName); statErr == nil {
			_ = os.Remove(tmpName)
		}
	}()

	if _, err := tmpFile.Write(data); err != nil {
		_ = tmpFile.Close()
		return err
	}
	if err := tmpFile.Close(); err != nil {
		return err
	}
	if err := os.Chmod(tmpName, domain.FilePerm); err != nil {
		return err
	}
	return os.Rename(tmpName, path)
}
