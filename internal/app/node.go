package app

import (
	"context"

	"github.com/grindlemire/graft"
	"go.trai.ch/utext/internal/adapters/collation" //nolint:depguard // Wired in app layer
	"go.trai.ch/utext/internal/adapters/config"    //nolint:depguard // Wired in app layer
	"go.trai.ch/utext/internal/adapters/logger"    //nolint:depguard // Wired in app layer
	"go.trai.ch/utext/internal/core/ports"
	"go.trai.ch/utext/internal/engine/runner"
)

const (
	// AppNodeID is the unique identifier for the main App Graft node.
	AppNodeID graft.ID = "app.main"
	// ComponentsNodeID is the unique identifier for the App components Graft node.
	ComponentsNodeID graft.ID = "app.components"
)

func init() {
	// App Node
	graft.Register(graft.Node[*App]{
		ID:        AppNodeID,
		Cacheable: true,
		DependsOn: []graft.ID{
			config.NodeID,
			runner.NodeID,
			collation.NodeID,
			logger.NodeID,
		},
		Run: func(ctx context.Context) (*App, error) {
			loader, err := graft.Dep[ports.SuiteLoader](ctx)
			if err != nil {
				return nil, err
			}

			r, err := graft.Dep[*runner.Runner](ctx)
			if err != nil {
				return nil, err
			}

			collator, err := graft.Dep[ports.Collator](ctx)
			if err != nil {
				return nil, err
			}

			log, err := graft.Dep[ports.Logger](ctx)
			if err != nil {
				return nil, err
			}

			return New(loader, r, collator, log), nil
		},
	})

	// Components Node
	graft.Register(graft.Node[*Components]{
		ID:        ComponentsNodeID,
		Cacheable: true,
		DependsOn: []graft.ID{
			AppNodeID,
			logger.NodeID,
		},
		Run: runComponentsNode,
	})
}

func runComponentsNode(ctx context.Context) (*Components, error) {
	app, err := graft.Dep[*App](ctx)
	if err != nil {
		return nil, err
	}

	log, err := graft.Dep[ports.Logger](ctx)
	if err != nil {
		return nil, err
	}

	return &Components{
		App:    app,
		Logger: log,
	}, nil
}
