package blobcache

import (
	"context"

	"github.com/grindlemire/graft"
	"go.trai.ch/setupjs/internal/adapters/logger"
	"go.trai.ch/setupjs/internal/core/ports"
)

// NodeID is the unique identifier for the cache backend Graft node.
const NodeID graft.ID = "adapter.blobcache"

func init() {
	graft.Register(graft.Node[ports.CacheBackend]{
		ID:        NodeID,
		Cacheable: true,
		DependsOn: []graft.ID{logger.NodeID},
		Run: func(ctx context.Context) (ports.CacheBackend, error) {
			log, err := graft.Dep[ports.Logger](ctx)
			if err != nil {
				return nil, err
			}
			return NewStore(log), nil
		},
	})
}
