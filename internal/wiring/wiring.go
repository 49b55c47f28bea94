// Package wiring registers all Graft nodes for the application.
package wiring

import (
	// Register adapter nodes.
	_ "go.trai.ch/utext/internal/adapters/cas"
	_ "go.trai.ch/utext/internal/adapters/collation"
	_ "go.trai.ch/utext/internal/adapters/config"
	_ "go.trai.ch/utext/internal/adapters/logger"
	_ "go.trai.ch/utext/internal/adapters/telemetry/progrock"
	// Register app and engine nodes.
	_ "go.trai.ch/utext/internal/app"
	_ "go.trai.ch/utext/internal/engine/runner"
)
