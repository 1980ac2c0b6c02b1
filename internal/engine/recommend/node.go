package recommend

import (
	"context"

	"github.com/grindlemire/graft"
	"go.trai.ch/propstore/internal/adapters/catalog"   //nolint:depguard // Wired in engine wiring
	"go.trai.ch/propstore/internal/adapters/metrics"   //nolint:depguard // Wired in engine wiring
	"go.trai.ch/propstore/internal/adapters/telemetry" //nolint:depguard // Wired in engine wiring
	"go.trai.ch/propstore/internal/core/ports"
)

// NodeID is the unique identifier for the recommendation Graft node.
const NodeID graft.ID = "engine.recommend"

func init() {
	graft.Register(graft.Node[*Engine]{
		ID:        NodeID,
		Cacheable: true,
		DependsOn: []graft.ID{
			catalog.NodeID,
			telemetry.TracerNodeID,
			metrics.NodeID,
		},
		Run: func(ctx context.Context) (*Engine, error) {
			store, err := graft.Dep[ports.CatalogStore](ctx)
			if err != nil {
				return nil, err
			}

			tracer, err := graft.Dep[ports.Tracer](ctx)
			if err != nil {
				return nil, err
			}

			collector, err := graft.Dep[*metrics.Collector](ctx)
			if err != nil {
				return nil, err
			}

			return New(store, store, tracer, collector), nil
		},
	})
}
