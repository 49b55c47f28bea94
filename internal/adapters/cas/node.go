package cas

import (
	"context"

	"github.com/grindlemire/graft"
	"go.trai.ch/utext/internal/core/ports"
)

// NodeID is the unique identifier for the hash store Graft node.
const NodeID graft.ID = "adapter.hash_store"

func init() {
	graft.Register(graft.Node[ports.HashStore]{
		ID:        NodeID,
		Cacheable: true,
		Run: func(_ context.Context) (ports.HashStore, error) {
			return NewStore(DefaultPath)
		},
	})
}
