package collation

import (
	"context"

	"github.com/grindlemire/graft"
	"go.trai.ch/utext/internal/core/ports"
)

// NodeID is the unique identifier for the collator Graft node.
const NodeID graft.ID = "adapter.collator"

func init() {
	graft.Register(graft.Node[ports.Collator]{
		ID:        NodeID,
		Cacheable: true,
		Run: func(_ context.Context) (ports.Collator, error) {
			return New(), nil
		},
	})
}
