package imagecache

import (
	"context"

	"github.com/grindlemire/graft"
	"go.trai.ch/propstore/internal/adapters/catalog"   //nolint:depguard // Wired in engine wiring
	"go.trai.ch/propstore/internal/adapters/config"    //nolint:depguard // Wired in engine wiring
	"go.trai.ch/propstore/internal/adapters/fetch"     //nolint:depguard // Wired in engine wiring
	"go.trai.ch/propstore/internal/adapters/logger"    //nolint:depguard // Wired in engine wiring
	"go.trai.ch/propstore/internal/adapters/metrics"   //nolint:depguard // Wired in engine wiring
	"go.trai.ch/propstore/internal/adapters/telemetry" //nolint:depguard // Wired in engine wiring
	"go.trai.ch/propstore/internal/core/domain"
	"go.trai.ch/propstore/internal/core/ports"
)

// NodeID is the unique identifier for the image cache Graft node.
const NodeID graft.ID = "engine.imagecache"

func init() {
	graft.Register(graft.Node[*Engine]{
		ID:        NodeID,
		Cacheable: true,
		DependsOn: []graft.ID{
			catalog.NodeID,
			fetch.NodeID,
			logger.NodeID,
			telemetry.TracerNodeID,
			metrics.NodeID,
			config.SettingsNodeID,
		},
		Run: func(ctx context.Context) (*Engine, error) {
			store, err := graft.Dep[ports.CatalogStore](ctx)
			if err != nil {
				return nil, err
			}

			fetcher, err := graft.Dep[ports.ImageFetcher](ctx)
			if err != nil {
				return nil, err
			}

			log, err := graft.Dep[ports.Logger](ctx)
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

			settings, err := graft.Dep[*domain.Settings](ctx)
			if err != nil {
				return nil, err
			}

			engine := New(store, fetcher, log, tracer, collector, settings.ImageCache)
			collector.ObserveCache(engine.Stats)
			return engine, nil
		},
	})
}
