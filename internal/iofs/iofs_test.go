package iofs

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/83years/oadb/pkg/config"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEnsureDirs(t *testing.T) {
	home := t.TempDir()
	err := EnsureDirs(home)
	require.NoError(t, err)

	for _, dir := range []string{
		config.ConfigDir(home),
		config.ShareDir(home),
		config.LogDir(home),
		filepath.Join(config.LogDir(home), "errors"),
	} {
		info, err := os.Stat(dir)
		require.NoError(t, err, dir)
		assert.True(t, info.IsDir(), dir)
	}

	// idempotent
	assert.NoError(t, EnsureDirs(home))
}

func TestEnsureConfigFile(t *testing.T) {
	home := t.TempDir()
	require.NoError(t, EnsureDirs(home))
	require.NoError(t, EnsureConfigFile(home))

	path := config.ConfigFilePath(home)
	require.NoError(t, ValidateConfigFile(path))

	// existing file is preserved
	require.NoError(t, os.WriteFile(path, []byte("database:\n  host: kept\n"), 0644))
	require.NoError(t, EnsureConfigFile(home))
	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(data), "kept")
}

func TestValidateConfigFileBad(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "bad.yaml")
	require.NoError(t, os.WriteFile(path, []byte("database: [not yaml"), 0644))
	assert.Error(t, ValidateConfigFile(path))
	assert.Error(t, ValidateConfigFile(filepath.Join(dir, "missing.yaml")))
}
