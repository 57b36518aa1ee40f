// Package cache restores and saves package-manager caches across CI jobs.
package cache

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"path/filepath"
	"strings"

	"go.trai.ch/setupjs/internal/core/domain"
	"go.trai.ch/setupjs/internal/core/ports"
	"go.trai.ch/zerr"
)

// Manager implements ports.DependencyCache.
// Cache failures never fail the job: they are logged and treated as a miss.
type Manager struct {
	detector ports.CachePathDetector
	finder   ports.LockfileFinder
	hasher   ports.LockfileHasher
	backend  ports.CacheBackend
	state    ports.StateStore
	env      ports.Environment
	logger   ports.Logger
	platform domain.Platform
}

// NewManager creates a Manager for the current platform.
func NewManager(
	detector ports.CachePathDetector,
	finder ports.LockfileFinder,
	hasher ports.LockfileHasher,
	backend ports.CacheBackend,
	state ports.StateStore,
	env ports.Environment,
	logger ports.Logger,
) *Manager {
	return newManagerWith(domain.CurrentPlatform(), detector, finder, hasher, backend, state, env, logger)
}

func newManagerWith(
	platform domain.Platform,
	detector ports.CachePathDetector,
	finder ports.LockfileFinder,
	hasher ports.LockfileHasher,
	backend ports.CacheBackend,
	state ports.StateStore,
	env ports.Environment,
	logger ports.Logger,
) *Manager {
	return &Manager{
		detector: detector,
		finder:   finder,
		hasher:   hasher,
		backend:  backend,
		state:    state,
		env:      env,
		logger:   logger,
		platform: platform,
	}
}

// Restore computes the primary key, restores the best matching snapshot and persists
// the state the post phase needs. State is written on every path.
func (m *Manager) Restore(ctx context.Context, req domain.RestoreRequest) domain.RestoreResult {
	pms := req.Toolchain.ActivePackageManagers()
	cfg := m.cacheConfig(ctx, pms, req)

	result := domain.RestoreResult{Hit: domain.CacheHitMiss, CachePaths: cfg.CachePaths}
	defer func() {
		m.persist(result, pms)
	}()

	lockFiles, err := m.finder.FindLockFiles(req.WorkDir, cfg.LockFilePatterns)
	if err != nil {
		m.warn(zerr.Wrap(err, "failed to find lock files"))
		return result
	}
	result.LockFiles = lockFiles
	if len(lockFiles) == 0 {
		m.logger.Warn("No lock files found, the cache key only covers tool versions")
	}

	lockHash, err := m.hasher.HashLockFiles(ctx, req.WorkDir, lockFiles)
	if err != nil {
		m.warn(zerr.Wrap(err, "failed to hash lock files"))
		return result
	}

	key := domain.CacheKey{
		Platform:     m.platform.Key(),
		VersionHash:  domain.VersionHash(req.Salt, req.Toolchain.Runtimes, req.Toolchain.PackageManager),
		LockfileHash: lockHash,
	}
	result.PrimaryKey = key.String()

	var restoreKeys []string
	if !req.ExactMatch {
		restoreKeys = []string{key.RestorePrefix()}
	}

	if len(cfg.CachePaths) == 0 {
		m.logger.Warn("No cache paths detected, skipping cache restore")
		return result
	}

	m.logger.Debug(fmt.Sprintf("Cache paths: %s", strings.Join(cfg.CachePaths, ", ")))
	matched, err := m.backend.Restore(ctx, cfg.CachePaths, result.PrimaryKey, restoreKeys)
	if err != nil {
		m.warn(err)
		return result
	}

	result.MatchedKey = matched
	switch matched {
	case "":
		m.logger.Info(fmt.Sprintf("Cache not found for key: %s", result.PrimaryKey))
	case result.PrimaryKey:
		result.Hit = domain.CacheHitExact
		m.logger.Info(fmt.Sprintf("Cache restored from key: %s", matched))
	default:
		result.Hit = domain.CacheHitPartial
		m.logger.Info(fmt.Sprintf("Cache restored from restore key: %s", matched))
	}
	return result
}

// cacheConfig unions the detected paths and lock-file patterns of every active
// package manager with the user-supplied ones.
func (m *Manager) cacheConfig(
	ctx context.Context,
	pms []domain.PackageManagerSpec,
	req domain.RestoreRequest,
) domain.CacheConfig {
	var cfg domain.CacheConfig
	for _, pm := range pms {
		next := domain.CacheConfig{LockFilePatterns: domain.LockFilePatterns(pm.Name)}
		if path, ok := m.detector.DetectCachePath(ctx, pm, req.WorkDir); ok {
			next.CachePaths = []string{path}
			m.pinCacheDir(pm, path)
		} else {
			m.logger.Warn(fmt.Sprintf("Could not determine the cache directory of %s", pm))
		}
		cfg = cfg.Union(next)
	}

	extra := domain.CacheConfig{LockFilePatterns: req.Extra.LockFilePatterns}
	for _, p := range req.Extra.CachePaths {
		extra.CachePaths = append(extra.CachePaths, resolveAgainst(req.WorkDir, p))
	}
	return cfg.Union(extra)
}

// pinCacheDir exports the detected cache directory for package managers that read it
// from the environment.
func (m *Manager) pinCacheDir(pm domain.PackageManagerSpec, path string) {
	name, ok := domain.CacheDirEnv(pm.Name)
	if !ok {
		return
	}
	if err := m.env.ExportVariable(name, path); err != nil {
		m.warn(err)
		return
	}
	m.logger.Debug(fmt.Sprintf("Exported %s=%s", name, path))
}

// resolveAgainst makes a user cache path absolute relative to the working directory.
// Home-relative paths are left for the backend to expand.
func resolveAgainst(workdir, p string) string {
	if p == "" || filepath.IsAbs(p) || strings.HasPrefix(p, "~") {
		return p
	}
	return filepath.Join(workdir, p)
}

func (m *Manager) persist(result domain.RestoreResult, pms []domain.PackageManagerSpec) {
	paths, err := json.Marshal(nonNil(result.CachePaths))
	if err != nil {
		m.warn(zerr.Wrap(err, domain.ErrStateWriteFailed.Error()))
		return
	}
	managers, err := json.Marshal(pms)
	if err != nil {
		m.warn(zerr.Wrap(err, domain.ErrStateWriteFailed.Error()))
		return
	}

	values := []struct{ key, value string }{
		{domain.StateCachePrimaryKey, result.PrimaryKey},
		{domain.StateCacheMatchedKey, result.MatchedKey},
		{domain.StateCachePaths, string(paths)},
		{domain.StatePackageManagers, string(managers)},
	}
	for _, v := range values {
		if err := m.state.Save(v.key, v.value); err != nil {
			m.warn(err)
		}
	}
}

// Save stores the cache paths under the primary key recorded by Restore.
// It is skipped when no key was computed or the primary key was restored exactly.
func (m *Manager) Save(ctx context.Context) domain.SaveOutcome {
	state, err := m.loadState()
	if err != nil {
		m.warn(err)
		return domain.SaveFailed
	}

	if state.PrimaryKey == "" {
		m.logger.Info("No cache key was computed, not saving cache")
		return domain.SaveSkippedNoKey
	}
	if state.MatchedKey == state.PrimaryKey {
		m.logger.Info(fmt.Sprintf("Cache hit occurred on the primary key %s, not saving cache", state.PrimaryKey))
		return domain.SaveSkippedExactHit
	}

	names := make([]string, 0, len(state.PackageManagers))
	for _, pm := range state.PackageManagers {
		names = append(names, pm.String())
	}
	if len(names) > 0 {
		m.logger.Debug(fmt.Sprintf("Saving cache for %s", strings.Join(names, ", ")))
	}

	if err := m.backend.Save(ctx, state.CachePaths, state.PrimaryKey); err != nil {
		if errors.Is(err, domain.ErrCacheEntryExists) {
			m.logger.Warn(fmt.Sprintf("Cache entry %s already exists, not saving cache", state.PrimaryKey))
			return domain.SaveFailed
		}
		m.warn(err)
		return domain.SaveFailed
	}

	m.logger.Info(fmt.Sprintf("Cache saved with key: %s", state.PrimaryKey))
	return domain.SaveSaved
}

func (m *Manager) loadState() (domain.CacheState, error) {
	var s domain.CacheState
	var err error

	if s.PrimaryKey, err = m.state.Get(domain.StateCachePrimaryKey); err != nil {
		return s, err
	}
	if s.MatchedKey, err = m.state.Get(domain.StateCacheMatchedKey); err != nil {
		return s, err
	}

	raw, err := m.state.Get(domain.StateCachePaths)
	if err != nil {
		return s, err
	}
	if raw != "" {
		if err := json.Unmarshal([]byte(raw), &s.CachePaths); err != nil {
			return s, zerr.With(zerr.Wrap(err, domain.ErrStateReadFailed.Error()), "key", domain.StateCachePaths)
		}
	}

	raw, err = m.state.Get(domain.StatePackageManagers)
	if err != nil {
		return s, err
	}
	if raw != "" {
		if err := json.Unmarshal([]byte(raw), &s.PackageManagers); err != nil {
			return s, zerr.With(zerr.Wrap(err, domain.ErrStateReadFailed.Error()), "key", domain.StatePackageManagers)
		}
	}
	return s, nil
}

func (m *Manager) warn(err error) {
	m.logger.Warn(err.Error())
}

func nonNil(s []string) []string {
	if s == nil {
		return []string{}
	}
	return s
}
