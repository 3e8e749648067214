package iofs

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/gridstats/pbpkit/pkg/config"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEnsureDirsCreatesDirectories(t *testing.T) {
	tmpDir := t.TempDir()

	err := EnsureDirs(tmpDir)
	require.NoError(t, err)

	for _, dir := range []string{
		filepath.Join(tmpDir, ".config", "pbpkit"),
		filepath.Join(tmpDir, ".cache", "pbpkit"),
		filepath.Join(tmpDir, ".local", "share", "pbpkit", "logs"),
	} {
		info, err := os.Stat(dir)
		require.NoError(t, err, dir)
		assert.True(t, info.IsDir(), dir)
	}
}

func TestEnsureDirsIdempotent(t *testing.T) {
	tmpDir := t.TempDir()

	require.NoError(t, EnsureDirs(tmpDir))
	require.NoError(t, EnsureDirs(tmpDir))
}

func TestEnsureConfigFile(t *testing.T) {
	tmpDir := t.TempDir()
	require.NoError(t, EnsureDirs(tmpDir))

	require.NoError(t, EnsureConfigFile(tmpDir))

	data, err := os.ReadFile(config.ConfigFilePath(tmpDir))
	require.NoError(t, err)
	assert.Equal(t, ConfigYAML, string(data))
}

func TestEnsureConfigFileKeepsExisting(t *testing.T) {
	tmpDir := t.TempDir()
	require.NoError(t, EnsureDirs(tmpDir))

	path := config.ConfigFilePath(tmpDir)
	require.NoError(t, os.WriteFile(path, []byte("custom: true\n"), 0644))

	require.NoError(t, EnsureConfigFile(tmpDir))

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, "custom: true\n", string(data))
}

func TestEnsureSourcesFile(t *testing.T) {
	tmpDir := t.TempDir()
	require.NoError(t, EnsureDirs(tmpDir))

	require.NoError(t, EnsureSourcesFile(tmpDir))

	data, err := os.ReadFile(config.SourcesFilePath(tmpDir))
	require.NoError(t, err)
	assert.Equal(t, SourcesYAML, string(data))
}
