package progrock

import (
	"context"
	"os"

	"github.com/grindlemire/graft"
	"go.trai.ch/utext/internal/adapters/detector"
	"go.trai.ch/utext/internal/adapters/linear"
	"go.trai.ch/utext/internal/adapters/tui"
	"go.trai.ch/utext/internal/core/ports"
)

// NodeID is the unique identifier for the telemetry adapter node.
const NodeID graft.ID = "adapter.telemetry"

// ProgressEnv overrides the detected progress output mode.
const ProgressEnv = "UTEXT_PROGRESS"

func init() {
	graft.Register(graft.Node[ports.Telemetry]{
		ID:        NodeID,
		Cacheable: true,
		Run: func(_ context.Context) (ports.Telemetry, error) {
			mode := detector.ResolveMode(detector.DetectEnvironment(), os.Getenv(ProgressEnv))
			if mode == detector.ModeTUI {
				return NewRecorder(tui.NewRenderer(os.Stderr)), nil
			}
			return NewRecorder(linear.NewRenderer(os.Stderr)), nil
		},
	})
}
