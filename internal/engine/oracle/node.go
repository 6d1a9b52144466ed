package oracle

import (
	"context"

	"github.com/grindlemire/graft"
	"go.trai.ch/bom/internal/core/ports"
)

// NodeID is the unique identifier for the price table Graft node.
const NodeID graft.ID = "engine.oracle"

func init() {
	graft.Register(graft.Node[ports.PriceTable]{
		ID:        NodeID,
		Cacheable: true,
		Run: func(_ context.Context) (ports.PriceTable, error) {
			return New(), nil
		},
	})
}
