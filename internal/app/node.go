package app

import (
	"context"

	"github.com/grindlemire/graft"
	"go.trai.ch/setupjs/internal/adapters/config"    //nolint:depguard // Wired in app layer
	"go.trai.ch/setupjs/internal/adapters/installer" //nolint:depguard // Wired in app layer
	"go.trai.ch/setupjs/internal/adapters/logger"    //nolint:depguard // Wired in app layer
	"go.trai.ch/setupjs/internal/adapters/runner"    //nolint:depguard // Wired in app layer
	"go.trai.ch/setupjs/internal/adapters/shell"     //nolint:depguard // Wired in app layer
	"go.trai.ch/setupjs/internal/adapters/telemetry" //nolint:depguard // Wired in app layer
	"go.trai.ch/setupjs/internal/core/ports"
	"go.trai.ch/setupjs/internal/engine/cache"
)

const (
	// AppNodeID is the unique identifier for the main App Graft node.
	AppNodeID graft.ID = "app.main"
	// ComponentsNodeID is the unique identifier for the App components Graft node.
	ComponentsNodeID graft.ID = "app.components"
)

func init() {
	graft.Register(graft.Node[*App]{
		ID:        AppNodeID,
		Cacheable: true,
		DependsOn: []graft.ID{
			config.InputLoaderNodeID,
			config.ManifestLoaderNodeID,
			installer.NodeID,
			shell.NodeID,
			cache.NodeID,
			runner.OutputsNodeID,
			telemetry.NodeID,
			logger.NodeID,
		},
		Run: runAppNode,
	})

	graft.Register(graft.Node[*Components]{
		ID:        ComponentsNodeID,
		Cacheable: true,
		DependsOn: []graft.ID{
			AppNodeID,
			logger.NodeID,
		},
		Run: func(ctx context.Context) (*Components, error) {
			app, err := graft.Dep[*App](ctx)
			if err != nil {
				return nil, err
			}

			log, err := graft.Dep[ports.Logger](ctx)
			if err != nil {
				return nil, err
			}

			return &Components{App: app, Logger: log}, nil
		},
	})
}

func runAppNode(ctx context.Context) (*App, error) {
	inputs, err := graft.Dep[ports.InputLoader](ctx)
	if err != nil {
		return nil, err
	}

	manifests, err := graft.Dep[ports.ManifestLoader](ctx)
	if err != nil {
		return nil, err
	}

	inst, err := graft.Dep[ports.Installer](ctx)
	if err != nil {
		return nil, err
	}

	cmdRunner, err := graft.Dep[ports.CommandRunner](ctx)
	if err != nil {
		return nil, err
	}

	depCache, err := graft.Dep[ports.DependencyCache](ctx)
	if err != nil {
		return nil, err
	}

	outputs, err := graft.Dep[ports.Outputs](ctx)
	if err != nil {
		return nil, err
	}

	tracer, err := graft.Dep[ports.Tracer](ctx)
	if err != nil {
		return nil, err
	}

	log, err := graft.Dep[ports.Logger](ctx)
	if err != nil {
		return nil, err
	}

	return New(inputs, manifests, inst, cmdRunner, depCache, outputs, tracer, log), nil
}
