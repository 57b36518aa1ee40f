package config

import (
	"context"

	"github.com/grindlemire/graft"
	"go.trai.ch/setupjs/internal/core/ports"
)

const (
	// InputLoaderNodeID is the unique identifier for the input loader Graft node.
	InputLoaderNodeID graft.ID = "adapter.config.inputs"
	// ManifestLoaderNodeID is the unique identifier for the manifest loader Graft node.
	ManifestLoaderNodeID graft.ID = "adapter.config.manifest"
)

func init() {
	graft.Register(graft.Node[ports.InputLoader]{
		ID:        InputLoaderNodeID,
		Cacheable: true,
		Run: func(_ context.Context) (ports.InputLoader, error) {
			return NewInputLoader(), nil
		},
	})

	graft.Register(graft.Node[ports.ManifestLoader]{
		ID:        ManifestLoaderNodeID,
		Cacheable: true,
		Run: func(_ context.Context) (ports.ManifestLoader, error) {
			return NewManifestLoader(), nil
		},
	})
}
