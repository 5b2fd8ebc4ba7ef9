package aveditor

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAtomicSwapOverwritesExistingPreservingMode(t *testing.T) {
	dir := t.TempDir()
	dest := filepath.Join(dir, "dest.txt")
	src := filepath.Join(dir, "src.txt")

	require.NoError(t, os.WriteFile(dest, []byte("old"), 0o640))
	require.NoError(t, os.WriteFile(src, []byte("new"), 0o600))

	require.NoError(t, atomicSwap(src, dest))

	data, err := os.ReadFile(dest)
	require.NoError(t, err)
	assert.Equal(t, "new", string(data))

	info, err := os.Stat(dest)
	require.NoError(t, err)
	assert.Equal(t, os.FileMode(0o640), info.Mode().Perm())

	_, err = os.Stat(src)
	assert.True(t, os.IsNotExist(err))
}

func TestAtomicSwapWithNoExistingDest(t *testing.T) {
	dir := t.TempDir()
	dest := filepath.Join(dir, "dest.txt")
	src := filepath.Join(dir, "src.txt")
	require.NoError(t, os.WriteFile(src, []byte("fresh"), 0o600))

	require.NoError(t, atomicSwap(src, dest))

	data, err := os.ReadFile(dest)
	require.NoError(t, err)
	assert.Equal(t, "fresh", string(data))
}
