package report

import (
	"context"

	"github.com/grindlemire/graft"
	"go.trai.ch/bom/internal/core/ports"
)

// NodeID is the unique identifier for the bill encoder Graft node.
const NodeID graft.ID = "adapter.report"

func init() {
	graft.Register(graft.Node[ports.BillEncoder]{
		ID:        NodeID,
		Cacheable: true,
		Run: func(_ context.Context) (ports.BillEncoder, error) {
			return NewEncoder(), nil
		},
	})
}
