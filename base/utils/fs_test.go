package utils

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEnsureDirectory(t *testing.T) {
	t.Parallel()

	base := t.TempDir()
	dir := filepath.Join(base, "a", "b")
	require.NoError(t, EnsureDirectory(dir, 0o755))
	assert.True(t, IsDir(dir))
	require.NoError(t, EnsureDirectory(dir, 0o755))

	file := filepath.Join(base, "file")
	require.NoError(t, os.WriteFile(file, nil, 0o600))
	require.Error(t, EnsureDirectory(file, 0o755))
	assert.True(t, PathExists(file))
	assert.False(t, IsDir(file))
	assert.False(t, PathExists(filepath.Join(base, "missing")))
}

func TestEnsureParent(t *testing.T) {
	t.Parallel()

	base := t.TempDir()
	require.NoError(t, EnsureParent(filepath.Join(base, "out", "globe.png")))
	assert.True(t, IsDir(filepath.Join(base, "out")))
	require.NoError(t, EnsureParent("globe.png"))
}
