package app

import (
	"context"

	"github.com/grindlemire/graft"
	"go.trai.ch/propstore/internal/adapters/catalog"    //nolint:depguard // Wired in app layer
	"go.trai.ch/propstore/internal/adapters/config"     //nolint:depguard // Wired in app layer
	"go.trai.ch/propstore/internal/adapters/logger"     //nolint:depguard // Wired in app layer
	"go.trai.ch/propstore/internal/adapters/supervisor" //nolint:depguard // Wired in app layer
	"go.trai.ch/propstore/internal/adapters/telemetry"  //nolint:depguard // Wired in app layer
	"go.trai.ch/propstore/internal/core/domain"
	"go.trai.ch/propstore/internal/core/ports"
	"go.trai.ch/propstore/internal/engine/imagecache"
	"go.trai.ch/propstore/internal/engine/recommend"
)

const (
	// AppNodeID is the unique identifier for the main App Graft node.
	AppNodeID graft.ID = "app.main"
	// ComponentsNodeID is the unique identifier for the App components Graft node.
	ComponentsNodeID graft.ID = "app.components"
)

func init() {
	graft.Register(graft.Node[*App]{
		ID:        AppNodeID,
		Cacheable: true,
		DependsOn: []graft.ID{
			imagecache.NodeID,
			recommend.NodeID,
			supervisor.NodeID,
			catalog.NodeID,
			telemetry.ProviderNodeID,
			logger.NodeID,
			config.SettingsNodeID,
		},
		Run: runAppNode,
	})

	graft.Register(graft.Node[*Components]{
		ID:        ComponentsNodeID,
		Cacheable: true,
		DependsOn: []graft.ID{
			AppNodeID,
			logger.NodeID,
		},
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

func runAppNode(ctx context.Context) (*App, error) {
	cache, err := graft.Dep[*imagecache.Engine](ctx)
	if err != nil {
		return nil, err
	}

	suggester, err := graft.Dep[*recommend.Engine](ctx)
	if err != nil {
		return nil, err
	}

	tree, err := graft.Dep[*supervisor.Tree](ctx)
	if err != nil {
		return nil, err
	}

	store, err := graft.Dep[ports.CatalogStore](ctx)
	if err != nil {
		return nil, err
	}

	provider, err := graft.Dep[*telemetry.Provider](ctx)
	if err != nil {
		return nil, err
	}

	log, err := graft.Dep[ports.Logger](ctx)
	if err != nil {
		return nil, err
	}

	settings, err := graft.Dep[*domain.Settings](ctx)
	if err != nil {
		return nil, err
	}

	return New(cache, suggester, tree, store, sqliteSeedOpener(settings.Catalog, log), provider, log, settings.HTTP.Addr), nil
}

// sqliteSeedOpener opens the configured sqlite database with its schema applied.
func sqliteSeedOpener(settings domain.CatalogSettings, log ports.Logger) SeedOpener {
	return func(ctx context.Context) (SeedStore, error) {
		settings.Migrate = true
		store, err := catalog.Open(ctx, settings, log)
		if err != nil {
			return nil, err
		}
		return store, nil
	}
}
