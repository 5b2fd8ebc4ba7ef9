package aveditor

import (
	"context"
	"os"

	"github.com/amenonsen/ansible/ashell"
)

const defaultEditor = "vim"

// invokeEditor reads $EDITOR (defaulting to vim), word-splits it, and
// spawns the result with path appended as the final argument — without
// a shell, so the path is never subject to shell interpretation.
func invokeEditor(ctx context.Context, path string) error {
	editor := os.Getenv("EDITOR")
	if editor == "" {
		editor = defaultEditor
	}

	words := ashell.SplitWords(editor)
	if len(words) == 0 {
		words = []string{defaultEditor}
	}

	cmd := ashell.NewArgvCommand(words[0], append(words[1:], path)...)
	return cmd.Run(ctx)
}
