package adapters

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeStubPnpm(t *testing.T, script string) string {
	t.Helper()
	stub := filepath.Join(t.TempDir(), "pnpm-stub")
	require.NoError(t, os.WriteFile(stub, []byte(script), 0755))
	return stub
}

func TestPnpmWhyAdapterCapturesStdoutOnly(t *testing.T) {
	stub := writeStubPnpm(t, "#!/bin/sh\n"+
		"echo \"checkout-web@1.4.0 /repo/apps/checkout-web (PRIVATE)\"\n"+
		"echo\n"+
		"echo \"dependencies:\"\n"+
		"echo \"lodash 4.17.21\"\n"+
		"echo \"progress noise\" >&2\n")

	adapter := PnpmWhyAdapter{Command: stub}
	out, err := adapter.Why(context.Background(), t.TempDir(), "lodash")
	require.NoError(t, err)
	assert.Contains(t, out, "lodash 4.17.21")
	assert.NotContains(t, out, "progress noise")
}

func TestPnpmWhyAdapterFailureReturnsError(t *testing.T) {
	stub := writeStubPnpm(t, "#!/bin/sh\nexit 1\n")

	adapter := PnpmWhyAdapter{Command: stub}
	_, err := adapter.Why(context.Background(), t.TempDir(), "lodash")
	require.Error(t, err)
}

func TestPnpmWhyAdapterRunsInWorkspaceRoot(t *testing.T) {
	stub := writeStubPnpm(t, "#!/bin/sh\npwd\n")
	root := t.TempDir()

	adapter := PnpmWhyAdapter{Command: stub}
	out, err := adapter.Why(context.Background(), root, "lodash")
	require.NoError(t, err)
	resolved, err := filepath.EvalSymlinks(root)
	require.NoError(t, err)
	assert.Contains(t, out, resolved)
}
