// Package wiring registers all Graft nodes for the application.
package wiring

import (
	// Register adapter nodes.
	_ "go.trai.ch/propstore/internal/adapters/catalog"
	_ "go.trai.ch/propstore/internal/adapters/config"
	_ "go.trai.ch/propstore/internal/adapters/fetch"
	_ "go.trai.ch/propstore/internal/adapters/httpapi"
	_ "go.trai.ch/propstore/internal/adapters/logger"
	_ "go.trai.ch/propstore/internal/adapters/metrics"
	_ "go.trai.ch/propstore/internal/adapters/supervisor"
	_ "go.trai.ch/propstore/internal/adapters/telemetry"
	// Register app and engine nodes.
	_ "go.trai.ch/propstore/internal/app"
	_ "go.trai.ch/propstore/internal/engine/imagecache"
	_ "go.trai.ch/propstore/internal/engine/recommend"
)
