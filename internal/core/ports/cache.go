package ports

import (
	"context"

	"go.trai.ch/setupjs/internal/core/domain"
)

// DependencyCache restores and saves package-manager caches across jobs.
//
//go:generate mockgen -source=cache.go -destination=mocks/mock_cache.go -package=mocks
type DependencyCache interface {
	// Restore computes the cache key, restores the best match and persists state.
	// Failures are logged and reported as a miss.
	Restore(ctx context.Context, req domain.RestoreRequest) domain.RestoreResult

	// Save stores the cache under the primary key unless it was an exact hit.
	Save(ctx context.Context) domain.SaveOutcome
}

// CachePathDetector finds the global cache directory of a package manager.
type CachePathDetector interface {
	// DetectCachePath queries the tool first, then project hints, then per-platform defaults.
	DetectCachePath(ctx context.Context, pm domain.PackageManagerSpec, workdir string) (string, bool)
}

// LockfileFinder expands lock-file globs.
type LockfileFinder interface {
	// FindLockFiles returns the sorted slash-separated paths under root matching any pattern.
	FindLockFiles(root string, patterns []string) ([]string, error)
}

// LockfileHasher digests lock-file contents.
type LockfileHasher interface {
	// HashLockFiles digests files (relative to root) in order. Unreadable files are skipped.
	HashLockFiles(ctx context.Context, root string, files []string) (string, error)
}

// CacheBackend stores and retrieves cache snapshots by key.
type CacheBackend interface {
	// Restore extracts the entry for primaryKey, or the newest entry matching a restore prefix.
	// It returns the matched key, or "" on a miss.
	Restore(ctx context.Context, paths []string, primaryKey string, restoreKeys []string) (string, error)

	// Save archives paths under key. Existing keys fail with domain.ErrCacheEntryExists.
	Save(ctx context.Context, paths []string, key string) error
}
