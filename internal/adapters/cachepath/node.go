package cachepath

import (
	"context"

	"github.com/grindlemire/graft"
	"go.trai.ch/setupjs/internal/adapters/logger"
	"go.trai.ch/setupjs/internal/adapters/shell"
	"go.trai.ch/setupjs/internal/core/ports"
)

// NodeID is the unique identifier for the cache path detector Graft node.
const NodeID graft.ID = "adapter.cachepath"

func init() {
	graft.Register(graft.Node[ports.CachePathDetector]{
		ID:        NodeID,
		Cacheable: true,
		DependsOn: []graft.ID{shell.NodeID, logger.NodeID},
		Run: func(ctx context.Context) (ports.CachePathDetector, error) {
			runner, err := graft.Dep[ports.CommandRunner](ctx)
			if err != nil {
				return nil, err
			}
			log, err := graft.Dep[ports.Logger](ctx)
			if err != nil {
				return nil, err
			}
			return NewDetector(runner, log), nil
		},
	})
}
