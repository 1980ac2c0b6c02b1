package telemetry

import (
	"context"
	"os"

	"github.com/grindlemire/graft"
	"go.trai.ch/propstore/internal/adapters/config"
	"go.trai.ch/propstore/internal/core/domain"
	"go.trai.ch/propstore/internal/core/ports"
)

// ProviderNodeID is the unique identifier for the tracer provider Graft node.
const ProviderNodeID graft.ID = "adapter.telemetry.provider"

// TracerNodeID is the unique identifier for the Telemetry adapter Graft node.
const TracerNodeID graft.ID = "adapter.telemetry"

func init() {
	graft.Register(graft.Node[*Provider]{
		ID:        ProviderNodeID,
		Cacheable: true,
		DependsOn: []graft.ID{config.SettingsNodeID},
		Run: func(ctx context.Context) (*Provider, error) {
			settings, err := graft.Dep[*domain.Settings](ctx)
			if err != nil {
				return nil, err
			}
			return NewProvider(settings.ServiceName, settings.Telemetry, os.Stderr)
		},
	})

	graft.Register(graft.Node[ports.Tracer]{
		ID:        TracerNodeID,
		Cacheable: true,
		DependsOn: []graft.ID{ProviderNodeID},
		Run: func(ctx context.Context) (ports.Tracer, error) {
			provider, err := graft.Dep[*Provider](ctx)
			if err != nil {
				return nil, err
			}
			return provider.Tracer(), nil
		},
	})
}
