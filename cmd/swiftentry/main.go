// Where: cmd/swiftentry/main.go
// What: CLI entrypoint.
// Why: Generate the Swift entry-point source with configured dependencies.
package main

import (
	"os"

	"github.com/poruru/swift-entry-gen/internal/app"
)

func main() {
	os.Exit(app.Run(os.Args[1:], buildDependencies()))
}
