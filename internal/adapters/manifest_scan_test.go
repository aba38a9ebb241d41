package adapters

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/require"

	"platform-tools/internal/types"
)

func TestManifestScanAdapterFindsDeclarationsAcrossFiles(t *testing.T) {
	dir := t.TempDir()
	first := filepath.Join(dir, "app", "package.json")
	require.NoError(t, os.MkdirAll(filepath.Dir(first), 0755))
	require.NoError(t, os.WriteFile(first, []byte("{\n  \"dependencies\": {\n    \"lodash\": \"^4.17.21\"\n  }\n}\n"), 0644))
	second := filepath.Join(dir, "lib", "package.json")
	require.NoError(t, os.MkdirAll(filepath.Dir(second), 0755))
	require.NoError(t, os.WriteFile(second, []byte("{\n  \"devDependencies\": {\n    \"lodash\": \"^4.17.21\"\n  }\n}\n"), 0644))

	matches, err := NewManifestScanAdapter().FindDeclarations([]string{first, second}, "lodash")
	require.NoError(t, err)

	want := []types.DirectMatch{
		{Target: "lodash", Path: first, Line: 3, Text: "    \"lodash\": \"^4.17.21\""},
		{Target: "lodash", Path: second, Line: 3, Text: "    \"lodash\": \"^4.17.21\""},
	}
	if diff := cmp.Diff(want, matches); diff != "" {
		t.Fatalf("unexpected matches (-want +got):\n%s", diff)
	}
}

func TestManifestScanAdapterSkipsUnreadableManifests(t *testing.T) {
	dir := t.TempDir()
	readable := filepath.Join(dir, "package.json")
	require.NoError(t, os.WriteFile(readable, []byte("{\n  \"dependencies\": {\n    \"react\": \"^18.3.1\"\n  }\n}\n"), 0644))

	matches, err := NewManifestScanAdapter().FindDeclarations(
		[]string{filepath.Join(dir, "missing", "package.json"), readable}, "react")
	require.NoError(t, err)
	require.Len(t, matches, 1)
	require.Equal(t, readable, matches[0].Path)
}
