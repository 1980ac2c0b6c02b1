package supervisor

import (
	"context"
	"log/slog"
	"net/http"
	"time"

	"github.com/grindlemire/graft"
	"go.trai.ch/propstore/internal/adapters/config"
	"go.trai.ch/propstore/internal/adapters/httpapi"
	"go.trai.ch/propstore/internal/adapters/logger"
	"go.trai.ch/propstore/internal/core/domain"
	"go.trai.ch/propstore/internal/core/ports"
	"go.trai.ch/propstore/internal/engine/imagecache" //nolint:depguard // Wired in adapter wiring
)

// NodeID is the unique identifier for the supervision tree Graft node.
const NodeID graft.ID = "adapter.supervisor"

const readHeaderTimeout = 10 * time.Second

func init() {
	graft.Register(graft.Node[*Tree]{
		ID:        NodeID,
		Cacheable: true,
		DependsOn: []graft.ID{
			config.SettingsNodeID,
			logger.NodeID,
			logger.SlogNodeID,
			httpapi.NodeID,
			imagecache.NodeID,
		},
		Run: func(ctx context.Context) (*Tree, error) {
			settings, err := graft.Dep[*domain.Settings](ctx)
			if err != nil {
				return nil, err
			}

			log, err := graft.Dep[ports.Logger](ctx)
			if err != nil {
				return nil, err
			}

			slogger, err := graft.Dep[*slog.Logger](ctx)
			if err != nil {
				return nil, err
			}

			api, err := graft.Dep[*httpapi.Server](ctx)
			if err != nil {
				return nil, err
			}

			cache, err := graft.Dep[*imagecache.Engine](ctx)
			if err != nil {
				return nil, err
			}

			shutdown := time.Duration(settings.HTTP.ShutdownSeconds) * time.Second
			tree := NewTree(settings.ServiceName, slogger, shutdown)
			tree.Add(NewHTTPService(&http.Server{
				Addr:              settings.HTTP.Addr,
				Handler:           api.Routes(),
				ReadHeaderTimeout: readHeaderTimeout,
			}, shutdown))
			tree.Add(NewWarmupService(cache, log))
			return tree, nil
		},
	})
}
