package installer

import (
	"context"

	"github.com/grindlemire/graft"
	"go.trai.ch/setupjs/internal/adapters/fetch"
	"go.trai.ch/setupjs/internal/adapters/logger"
	"go.trai.ch/setupjs/internal/adapters/runner"
	"go.trai.ch/setupjs/internal/adapters/shell"
	"go.trai.ch/setupjs/internal/adapters/toolcache"
	"go.trai.ch/setupjs/internal/core/ports"
)

// NodeID is the unique identifier for the installer Graft node.
const NodeID graft.ID = "adapter.installer"

func init() {
	graft.Register(graft.Node[ports.Installer]{
		ID:        NodeID,
		Cacheable: true,
		DependsOn: []graft.ID{
			toolcache.NodeID,
			fetch.NodeID,
			shell.NodeID,
			runner.EnvironmentNodeID,
			logger.NodeID,
		},
		Run: func(ctx context.Context) (ports.Installer, error) {
			cache, err := graft.Dep[ports.ToolCache](ctx)
			if err != nil {
				return nil, err
			}
			downloader, err := graft.Dep[ports.Downloader](ctx)
			if err != nil {
				return nil, err
			}
			cmdRunner, err := graft.Dep[ports.CommandRunner](ctx)
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
			return NewInstaller(cache, downloader, cmdRunner, env, log), nil
		},
	})
}
