// Package supervisor runs the long-lived services of the process under a
// suture supervision tree.
package supervisor

import (
	"context"
	"log/slog"
	"time"

	"github.com/thejerf/suture/v4"
	"github.com/thejerf/sutureslog"
)

const (
	defaultFailureThreshold = 5
	defaultFailureDecay     = 30
	defaultFailureBackoff   = 15 * time.Second
	defaultShutdownTimeout  = 10 * time.Second
)

// Tree is the root supervisor of the serve command.
type Tree struct {
	root *suture.Supervisor
}

// NewTree creates a Tree that reports restarts and panics to logger.
// A non-positive shutdown timeout uses the default of 10s.
func NewTree(name string, logger *slog.Logger, shutdown time.Duration) *Tree {
	if shutdown <= 0 {
		shutdown = defaultShutdownTimeout
	}
	handler := &sutureslog.Handler{Logger: logger}
	return &Tree{
		root: suture.New(name, suture.Spec{
			EventHook:        handler.MustHook(),
			FailureThreshold: defaultFailureThreshold,
			FailureDecay:     defaultFailureDecay,
			FailureBackoff:   defaultFailureBackoff,
			Timeout:          shutdown,
		}),
	}
}

// Add registers a service. Services added after Serve started are started immediately.
func (t *Tree) Add(svc suture.Service) suture.ServiceToken {
	return t.root.Add(svc)
}

// Serve runs every service until ctx is done.
func (t *Tree) Serve(ctx context.Context) error {
	return t.root.Serve(ctx)
}
