// Package wiring registers all Graft nodes for the application.
package wiring

import (
	// Register adapter nodes.
	_ "go.trai.ch/dxpatch/internal/adapters/atpack"
	_ "go.trai.ch/dxpatch/internal/adapters/boards"
	_ "go.trai.ch/dxpatch/internal/adapters/cas"
	_ "go.trai.ch/dxpatch/internal/adapters/config"
	_ "go.trai.ch/dxpatch/internal/adapters/fs"
	_ "go.trai.ch/dxpatch/internal/adapters/logger"
	_ "go.trai.ch/dxpatch/internal/adapters/packindex"
	_ "go.trai.ch/dxpatch/internal/adapters/shell"
	_ "go.trai.ch/dxpatch/internal/adapters/telemetry/progrock"
	// Register app and engine nodes.
	_ "go.trai.ch/dxpatch/internal/app"
	_ "go.trai.ch/dxpatch/internal/engine/planner"
	_ "go.trai.ch/dxpatch/internal/engine/scheduler"
)
