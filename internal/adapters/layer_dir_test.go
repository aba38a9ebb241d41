package adapters

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLayerDirAdapterWritesStepFiles(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "layer")
	adapter := NewLayerDirAdapter(dir)

	require.NoError(t, adapter.WriteVersionFile(42))
	require.NoError(t, adapter.WriteLocationFile("https://layers.example.com/archive.zip"))

	version, err := os.ReadFile(filepath.Join(dir, "latest_version.txt"))
	require.NoError(t, err)
	assert.Equal(t, "42\n", string(version))

	location, err := os.ReadFile(filepath.Join(dir, "download_url.txt"))
	require.NoError(t, err)
	assert.Equal(t, "https://layers.example.com/archive.zip\n", string(location))

	assert.Equal(t, filepath.Join(dir, "layer.zip"), adapter.ArchivePath())
}

func TestLayerDirAdapterRemoveBookkeeping(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "layer")
	adapter := NewLayerDirAdapter(dir)
	require.NoError(t, adapter.WriteVersionFile(1))
	require.NoError(t, adapter.WriteLocationFile("https://layers.example.com/archive.zip"))

	adapter.RemoveBookkeeping()

	_, err := os.Stat(filepath.Join(dir, "latest_version.txt"))
	assert.True(t, os.IsNotExist(err))
	_, err = os.Stat(filepath.Join(dir, "download_url.txt"))
	assert.True(t, os.IsNotExist(err))

	// Removing twice is harmless.
	adapter.RemoveBookkeeping()
}

func TestLayerDirAdapterEmptyDirErrors(t *testing.T) {
	adapter := NewLayerDirAdapter("")
	require.Error(t, adapter.WriteVersionFile(1))
}
