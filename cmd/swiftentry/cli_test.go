// Where: cmd/swiftentry/cli_test.go
// What: Tests for CLI dependency wiring.
// Why: Ensure buildDependencies wires diagnostics and generator defaults.
package main

import (
	"bytes"
	"testing"
)

func TestBuildDependencies(t *testing.T) {
	origStderr := stderr
	t.Cleanup(func() {
		stderr = origStderr
	})

	var buf bytes.Buffer
	stderr = &buf

	deps := buildDependencies()
	if deps.Err != &buf {
		t.Fatalf("expected diagnostics writer to be wired to stderr seam")
	}
	if deps.Render == nil {
		t.Fatalf("expected renderer")
	}
	if deps.Emit == nil {
		t.Fatalf("expected emitter")
	}
}
