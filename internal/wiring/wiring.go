// Package wiring registers all Graft nodes for the application.
package wiring

import (
	// Register adapter nodes.
	_ "go.trai.ch/setupjs/internal/adapters/blobcache"
	_ "go.trai.ch/setupjs/internal/adapters/cachepath"
	_ "go.trai.ch/setupjs/internal/adapters/config"
	_ "go.trai.ch/setupjs/internal/adapters/fetch"
	_ "go.trai.ch/setupjs/internal/adapters/fs"
	_ "go.trai.ch/setupjs/internal/adapters/installer"
	_ "go.trai.ch/setupjs/internal/adapters/logger"
	_ "go.trai.ch/setupjs/internal/adapters/runner"
	_ "go.trai.ch/setupjs/internal/adapters/shell"
	_ "go.trai.ch/setupjs/internal/adapters/telemetry"
	_ "go.trai.ch/setupjs/internal/adapters/toolcache"
	// Register app and engine nodes.
	_ "go.trai.ch/setupjs/internal/app"
	_ "go.trai.ch/setupjs/internal/engine/cache"
)
