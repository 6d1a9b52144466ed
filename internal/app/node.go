package app

import (
	"context"

	"github.com/grindlemire/graft"
	"go.trai.ch/bom/internal/adapters/circ"
	"go.trai.ch/bom/internal/adapters/config"
	"go.trai.ch/bom/internal/adapters/logger"
	"go.trai.ch/bom/internal/adapters/report"
	"go.trai.ch/bom/internal/core/ports"
	"go.trai.ch/bom/internal/engine/oracle"
)

const (
	// NodeID is the unique identifier for the App Graft node.
	NodeID graft.ID = "app.main"
	// ComponentsNodeID is the unique identifier for the Components Graft node.
	ComponentsNodeID graft.ID = "app.components"
)

// Components bundles what the CLI entry point needs.
type Components struct {
	App    *App
	Logger ports.Logger
}

func init() {
	graft.Register(graft.Node[*App]{
		ID:        NodeID,
		Cacheable: true,
		DependsOn: []graft.ID{config.NodeID, circ.NodeID, oracle.NodeID, report.NodeID, logger.NodeID},
		Run: func(ctx context.Context) (*App, error) {
			configLoader, err := graft.Dep[ports.ConfigLoader](ctx)
			if err != nil {
				return nil, err
			}
			loader, err := graft.Dep[ports.DocumentLoader](ctx)
			if err != nil {
				return nil, err
			}
			prices, err := graft.Dep[ports.PriceTable](ctx)
			if err != nil {
				return nil, err
			}
			encoder, err := graft.Dep[ports.BillEncoder](ctx)
			if err != nil {
				return nil, err
			}
			log, err := graft.Dep[ports.Logger](ctx)
			if err != nil {
				return nil, err
			}
			return New(configLoader, loader, prices, encoder, log), nil
		},
	})

	graft.Register(graft.Node[*Components]{
		ID:        ComponentsNodeID,
		Cacheable: true,
		DependsOn: []graft.ID{NodeID, logger.NodeID},
		Run: func(ctx context.Context) (*Components, error) {
			a, err := graft.Dep[*App](ctx)
			if err != nil {
				return nil, err
			}
			log, err := graft.Dep[ports.Logger](ctx)
			if err != nil {
				return nil, err
			}
			return &Components{App: a, Logger: log}, nil
		},
	})
}
