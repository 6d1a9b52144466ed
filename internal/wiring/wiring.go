// Package wiring registers all Graft nodes for the application.
package wiring

import (
	// Register adapter nodes.
	_ "go.trai.ch/bom/internal/adapters/circ"
	_ "go.trai.ch/bom/internal/adapters/config"
	_ "go.trai.ch/bom/internal/adapters/fs"
	_ "go.trai.ch/bom/internal/adapters/logger"
	_ "go.trai.ch/bom/internal/adapters/report"
	// Register app and engine nodes.
	_ "go.trai.ch/bom/internal/app"
	_ "go.trai.ch/bom/internal/engine/oracle"
)
