package ashell

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSplitWords(t *testing.T) {
	assert.Equal(t, []string{"vim", "-n"}, SplitWords("vim -n"))
	assert.Equal(t, []string{"nano"}, SplitWords("  nano  "))
}

func TestArgvCommandRunSuccess(t *testing.T) {
	path, err := LookPath("true")
	require.NoError(t, err)

	cmd := NewArgvCommand(path)
	assert.NoError(t, cmd.Run(context.Background()))
}

func TestArgvCommandRunFailurePropagatesError(t *testing.T) {
	path, err := LookPath("false")
	require.NoError(t, err)

	cmd := NewArgvCommand(path)
	assert.Error(t, cmd.Run(context.Background()))
}

func TestArgvCommandRejectsEmptyPath(t *testing.T) {
	cmd := NewArgvCommand("")
	assert.Error(t, cmd.Run(context.Background()))
}
