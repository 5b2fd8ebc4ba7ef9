package aveditor

import (
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestScopedTempFileWriteReadClose(t *testing.T) {
	tmp, err := NewScopedTempFile(nil)
	require.NoError(t, err)

	require.NoError(t, tmp.Write([]byte("scratch data")))
	data, err := tmp.Read()
	require.NoError(t, err)
	assert.Equal(t, "scratch data", string(data))

	path := tmp.Path()
	require.NoError(t, tmp.Close())

	_, statErr := os.Stat(path)
	assert.True(t, os.IsNotExist(statErr))
}

func TestScopedTempFileCloseIsIdempotent(t *testing.T) {
	tmp, err := NewScopedTempFile(nil)
	require.NoError(t, err)

	assert.NoError(t, tmp.Close())
	assert.NoError(t, tmp.Close())
}

func TestScopedTempFileUsesProvidedEraser(t *testing.T) {
	var erasedPath string
	eraser := func(path string) error {
		erasedPath = path
		return os.Remove(path)
	}

	tmp, err := NewScopedTempFile(eraser)
	require.NoError(t, err)
	path := tmp.Path()

	require.NoError(t, tmp.Close())
	assert.Equal(t, path, erasedPath)
}
