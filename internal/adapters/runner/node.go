package runner

import (
	"context"

	"github.com/grindlemire/graft"
	"go.trai.ch/setupjs/internal/core/ports"
)

const (
	// OutputsNodeID is the unique identifier for the outputs Graft node.
	OutputsNodeID graft.ID = "adapter.runner.outputs"
	// StateNodeID is the unique identifier for the state store Graft node.
	StateNodeID graft.ID = "adapter.runner.state"
	// EnvironmentNodeID is the unique identifier for the environment Graft node.
	EnvironmentNodeID graft.ID = "adapter.runner.environment"
)

func init() {
	graft.Register(graft.Node[ports.Outputs]{
		ID:        OutputsNodeID,
		Cacheable: true,
		Run: func(_ context.Context) (ports.Outputs, error) {
			return NewOutputs(), nil
		},
	})

	graft.Register(graft.Node[ports.StateStore]{
		ID:        StateNodeID,
		Cacheable: true,
		Run: func(_ context.Context) (ports.StateStore, error) {
			return NewStateStore(), nil
		},
	})

	graft.Register(graft.Node[ports.Environment]{
		ID:        EnvironmentNodeID,
		Cacheable: true,
		Run: func(_ context.Context) (ports.Environment, error) {
			return NewEnvironment(), nil
		},
	})
}
