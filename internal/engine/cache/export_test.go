package cache

import (
	"go.trai.ch/setupjs/internal/core/domain"
	"go.trai.ch/setupjs/internal/core/ports"
)

// NewManagerWith exposes the platform-injecting constructor to tests.
func NewManagerWith(
	platform domain.Platform,
	detector ports.CachePathDetector,
	finder ports.LockfileFinder,
	hasher ports.LockfileHasher,
	backend ports.CacheBackend,
	state ports.StateStore,
	env ports.Environment,
	logger ports.Logger,
) *Manager {
	return newManagerWith(platform, detector, finder, hasher, backend, state, env, logger)
}
