// Where: internal/app/app.go
// What: CLI entrypoint logic.
// Why: Provide a testable parse -> render -> write pipeline.
package app

import (
	"fmt"
	"io"
	"os"

	"github.com/poruru/swift-entry-gen/internal/generator"
)

// Renderer produces the entry-point source for a module/type pair.
type Renderer func(moduleName, entryTypeName string) (string, error)

// Emitter commits rendered source to the output path.
type Emitter func(path, content string) error

// Dependencies holds the injected collaborators for a run. Err receives
// diagnostics; nothing is written to stdout on success.
type Dependencies struct {
	Err    io.Writer
	Render Renderer
	Emit   Emitter
}

// Run executes one generation pass: scan the argument vector (program
// name excluded, i.e. os.Args[1:]), render the entry-point template, and
// write it to the requested path with replace semantics. Returns 0 on
// success, 1 on any failure; every failure prints exactly one diagnostic
// to deps.Err and aborts the run.
func Run(args []string, deps Dependencies) int {
	errOut := deps.Err
	if errOut == nil {
		errOut = os.Stderr
	}
	render := deps.Render
	if render == nil {
		render = generator.RenderEntryPoint
	}
	emit := deps.Emit
	if emit == nil {
		emit = generator.Emit
	}

	parsed, err := parseArgs(args)
	if err != nil {
		return exitWithError(errOut, err)
	}

	source, err := render(parsed.ModuleName, parsed.EntryTypeName)
	if err != nil {
		return exitWithError(errOut, err)
	}

	if err := emit(parsed.OutputPath, source); err != nil {
		return exitWithError(errOut, err)
	}

	return 0
}

// exitWithError prints an error message to the output writer and returns
// exit code 1 for CLI error handling.
func exitWithError(out io.Writer, err error) int {
	fmt.Fprintln(out, err)
	return 1
}
