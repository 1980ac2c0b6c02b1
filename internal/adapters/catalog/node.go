package catalog

import (
	"context"

	"github.com/grindlemire/graft"
	"go.trai.ch/propstore/internal/adapters/config"
	"go.trai.ch/propstore/internal/adapters/fixture"
	"go.trai.ch/propstore/internal/adapters/logger"
	"go.trai.ch/propstore/internal/core/domain"
	"go.trai.ch/propstore/internal/core/ports"
	"go.trai.ch/zerr"
)

// NodeID is the unique identifier for the catalog Graft node.
const NodeID graft.ID = "adapter.catalog"

func init() {
	graft.Register(graft.Node[ports.CatalogStore]{
		ID:        NodeID,
		Cacheable: true,
		DependsOn: []graft.ID{config.SettingsNodeID, logger.NodeID},
		Run: func(ctx context.Context) (ports.CatalogStore, error) {
			settings, err := graft.Dep[*domain.Settings](ctx)
			if err != nil {
				return nil, err
			}
			log, err := graft.Dep[ports.Logger](ctx)
			if err != nil {
				return nil, err
			}
			return OpenDriver(ctx, settings.Catalog, log)
		},
	})
}

// OpenDriver opens the catalog backend selected by settings.Driver.
func OpenDriver(ctx context.Context, settings domain.CatalogSettings, log ports.Logger) (ports.CatalogStore, error) {
	switch settings.Driver {
	case domain.CatalogDriverSQLite:
		store, err := Open(ctx, settings, log)
		if err != nil {
			return nil, err
		}
		return store, nil
	case domain.CatalogDriverFixture:
		c, err := fixture.Load(settings.FixturePath)
		if err != nil {
			return nil, err
		}
		return c, nil
	default:
		return nil, zerr.With(domain.ErrUnknownCatalogDriver, "driver", settings.Driver)
	}
}
