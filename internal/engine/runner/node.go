package runner

import (
	"context"

	"github.com/grindlemire/graft"
	"go.trai.ch/utext/internal/adapters/cas"                //nolint:depguard // Wired in engine wiring
	"go.trai.ch/utext/internal/adapters/collation"          //nolint:depguard // Wired in engine wiring
	"go.trai.ch/utext/internal/adapters/telemetry/progrock" //nolint:depguard // Wired in engine wiring
	"go.trai.ch/utext/internal/core/ports"
)

// NodeID is the unique identifier for the runner Graft node.
const NodeID graft.ID = "engine.runner"

func init() {
	graft.Register(graft.Node[*Runner]{
		ID:        NodeID,
		Cacheable: true,
		DependsOn: []graft.ID{
			cas.NodeID,
			collation.NodeID,
			progrock.NodeID,
		},
		Run: func(ctx context.Context) (*Runner, error) {
			store, err := graft.Dep[ports.HashStore](ctx)
			if err != nil {
				return nil, err
			}

			collator, err := graft.Dep[ports.Collator](ctx)
			if err != nil {
				return nil, err
			}

			telemetry, err := graft.Dep[ports.Telemetry](ctx)
			if err != nil {
				return nil, err
			}

			return NewRunner(store, collator).WithTelemetry(telemetry), nil
		},
	})
}
