// Package wiring registers all Graft nodes for the application.
package wiring

import (
	// Register adapter nodes.
	_ "go.trai.ch/gradlemodel/internal/adapters/cache"
	_ "go.trai.ch/gradlemodel/internal/adapters/cas"
	_ "go.trai.ch/gradlemodel/internal/adapters/extension"
	_ "go.trai.ch/gradlemodel/internal/adapters/fs"
	_ "go.trai.ch/gradlemodel/internal/adapters/gradle"
	_ "go.trai.ch/gradlemodel/internal/adapters/logger"
	_ "go.trai.ch/gradlemodel/internal/adapters/settings"
	_ "go.trai.ch/gradlemodel/internal/adapters/telemetry/progrock"
	// Register app and engine nodes.
	_ "go.trai.ch/gradlemodel/internal/app"
	_ "go.trai.ch/gradlemodel/internal/engine/loader"
)
