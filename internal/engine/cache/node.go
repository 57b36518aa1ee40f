package cache

import (
	"context"

	"github.com/grindlemire/graft"
	"go.trai.ch/setupjs/internal/adapters/blobcache" //nolint:depguard // Wired in engine wiring
	"go.trai.ch/setupjs/internal/adapters/cachepath" //nolint:depguard // Wired in engine wiring
	"go.trai.ch/setupjs/internal/adapters/fs"        //nolint:depguard // Wired in engine wiring
	"go.trai.ch/setupjs/internal/adapters/logger"    //nolint:depguard // Wired in engine wiring
	"go.trai.ch/setupjs/internal/adapters/runner"    //nolint:depguard // Wired in engine wiring
	"go.trai.ch/setupjs/internal/core/ports"
)

// NodeID is the unique identifier for the cache manager Graft node.
const NodeID graft.ID = "engine.cache"

func init() {
	graft.Register(graft.Node[ports.DependencyCache]{
		ID:        NodeID,
		Cacheable: true,
		DependsOn: []graft.ID{
			cachepath.NodeID,
			fs.FinderNodeID,
			fs.HasherNodeID,
			blobcache.NodeID,
			runner.StateNodeID,
			runner.EnvironmentNodeID,
			logger.NodeID,
		},
		Run: func(ctx context.Context) (ports.DependencyCache, error) {
			detector, err := graft.Dep[ports.CachePathDetector](ctx)
			if err != nil {
				return nil, err
			}

			finder, err := graft.Dep[ports.LockfileFinder](ctx)
			if err != nil {
				return nil, err
			}

			hasher, err := graft.Dep[ports.LockfileHasher](ctx)
			if err != nil {
				return nil, err
			}

			backend, err := graft.Dep[ports.CacheBackend](ctx)
			if err != nil {
				return nil, err
			}

			state, err := graft.Dep[ports.StateStore](ctx)
			if err != nil {
				return nil, err
			}

			env, err := graft.Dep[ports.Environment](ctx)
			if err != nil {
				return nil, err
			}

			log, err := graft.Dep[ports.Logger](ctx)
			if err != nil {
				return nil, err
			}

			return NewManager(detector, finder, hasher, backend, state, env, log), nil
		},
	})
}
