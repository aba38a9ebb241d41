// Package testutil provides shared test helpers used across integration,
// e2e, and unit test packages.
package testutil

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
)

// RepoRoot returns the absolute path to the repository root by walking
// up from the current working directory. It fails the test if the
// working directory cannot be determined.
func RepoRoot(t *testing.T) string {
	t.Helper()
	dir, err := os.Getwd()
	require.NoError(t, err)
	return filepath.Clean(filepath.Join(dir, "..", ".."))
}

// StubPnpm writes an executable shell script named pnpm into its own
// temporary directory and returns the executable path. Tests point the
// usage query adapter at it directly, or prepend filepath.Dir of it to
// PATH when exercising the CLI.
func StubPnpm(t *testing.T, script string) string {
	t.Helper()
	stub := filepath.Join(t.TempDir(), "pnpm")
	require.NoError(t, os.WriteFile(stub, []byte(script), 0755))
	return stub
}
