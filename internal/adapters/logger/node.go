package logger

import (
	"context"
	"log/slog"

	"github.com/grindlemire/graft"
	"go.trai.ch/propstore/internal/adapters/config"
	"go.trai.ch/propstore/internal/core/domain"
	"go.trai.ch/propstore/internal/core/ports"
)

// NodeID is the unique identifier for the logger Graft node.
const NodeID graft.ID = "adapter.logger"

// SlogNodeID is the unique identifier for the raw slog logger Graft node.
const SlogNodeID graft.ID = "adapter.logger.slog"

func init() {
	graft.Register(graft.Node[ports.Logger]{
		ID:        NodeID,
		Cacheable: true,
		DependsOn: []graft.ID{config.SettingsNodeID},
		Run: func(ctx context.Context) (ports.Logger, error) {
			settings, err := graft.Dep[*domain.Settings](ctx)
			if err != nil {
				return nil, err
			}
			return New(settings.Log), nil
		},
	})

	graft.Register(graft.Node[*slog.Logger]{
		ID:        SlogNodeID,
		Cacheable: true,
		DependsOn: []graft.ID{NodeID},
		Run: func(ctx context.Context) (*slog.Logger, error) {
			lg, err := graft.Dep[ports.Logger](ctx)
			if err != nil {
				return nil, err
			}
			if s, ok := lg.(interface{ Slog() *slog.Logger }); ok {
				return s.Slog(), nil
			}
			return slog.Default(), nil
		},
	})
}
