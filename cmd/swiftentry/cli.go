// Where: cmd/swiftentry/cli.go
// What: CLI dependency wiring helpers.
// Why: Centralize construction for testability.
package main

import (
	"io"
	"os"

	"github.com/poruru/swift-entry-gen/internal/app"
	"github.com/poruru/swift-entry-gen/internal/generator"
)

var stderr io.Writer = os.Stderr

// buildDependencies constructs the runtime dependencies for a run.
// Diagnostics go to stderr; rendering and emission use the generator
// package defaults.
func buildDependencies() app.Dependencies {
	return app.Dependencies{
		Err:    stderr,
		Render: generator.RenderEntryPoint,
		Emit:   generator.Emit,
	}
}
