package httpapi

import (
	"context"

	"github.com/grindlemire/graft"
	"go.trai.ch/propstore/internal/adapters/config"
	"go.trai.ch/propstore/internal/adapters/logger"
	"go.trai.ch/propstore/internal/adapters/metrics"
	"go.trai.ch/propstore/internal/core/domain"
	"go.trai.ch/propstore/internal/core/ports"
	"go.trai.ch/propstore/internal/engine/imagecache" //nolint:depguard // Wired in adapter wiring
	"go.trai.ch/propstore/internal/engine/recommend"  //nolint:depguard // Wired in adapter wiring
)

// NodeID is the unique identifier for the HTTP API Graft node.
const NodeID graft.ID = "adapter.httpapi"

func init() {
	graft.Register(graft.Node[*Server]{
		ID:        NodeID,
		Cacheable: true,
		DependsOn: []graft.ID{
			imagecache.NodeID,
			recommend.NodeID,
			logger.NodeID,
			metrics.NodeID,
			config.SettingsNodeID,
		},
		Run: func(ctx context.Context) (*Server, error) {
			cache, err := graft.Dep[*imagecache.Engine](ctx)
			if err != nil {
				return nil, err
			}

			suggester, err := graft.Dep[*recommend.Engine](ctx)
			if err != nil {
				return nil, err
			}

			log, err := graft.Dep[ports.Logger](ctx)
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

			return NewServer(cache, suggester, log, collector.Handler(), Options{
				ServiceName:     settings.ServiceName,
				ReloadPerMinute: settings.HTTP.ReloadPerMinute,
			}), nil
		},
	})
}
