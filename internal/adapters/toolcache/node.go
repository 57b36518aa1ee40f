package toolcache

import (
	"context"

	"github.com/grindlemire/graft"
	"go.trai.ch/setupjs/internal/core/ports"
)

// NodeID is the unique identifier for the tool cache Graft node.
const NodeID graft.ID = "adapter.toolcache"

func init() {
	graft.Register(graft.Node[ports.ToolCache]{
		ID:        NodeID,
		Cacheable: true,
		Run: func(_ context.Context) (ports.ToolCache, error) {
			return NewStore(), nil
		},
	})
}
