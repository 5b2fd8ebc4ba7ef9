package ashell

import (
	"context"
	"fmt"
	"os"
	"os/exec"
	"strings"
)

// ArgvCommand runs a program directly via argv, never through a shell.
// It exists for the two process-spawn points the vault editor workflow
// needs — the user's editor and the external "shred" utility — where a
// shell's string interpretation of the target path would be a command
// injection hazard.
type ArgvCommand struct {
	Path string
	Args []string
}

// SplitWords performs simple whitespace word-splitting of a command
// string, the same "EDITOR env var, word-split, append path" rule the
// editor workflow uses to turn $EDITOR into an argv prefix. It does not
// interpret quoting, globbing, or any other shell metacharacter: this is
// word-splitting, not shell parsing.
func SplitWords(s string) []string {
	return strings.Fields(s)
}

// NewArgvCommand builds a command from a program path and its arguments.
func NewArgvCommand(path string, args ...string) *ArgvCommand {
	return &ArgvCommand{Path: path, Args: args}
}

// Run spawns the command with the process's stdio inherited and waits
// for it to exit. Editors and shred both need a real terminal/stdio, so
// output is never captured here.
func (c *ArgvCommand) Run(ctx context.Context) error {
	if strings.TrimSpace(c.Path) == "" {
		return fmt.Errorf("ashell: command path cannot be empty")
	}

	cmd := exec.CommandContext(ctx, c.Path, c.Args...)
	cmd.Stdin = os.Stdin
	cmd.Stdout = os.Stdout
	cmd.Stderr = os.Stderr

	if err := cmd.Run(); err != nil {
		return fmt.Errorf("ashell: %s: %w", c.Path, err)
	}
	return nil
}

// LookPath resolves name against PATH, the same resolution exec.Command
// would perform, exposed so callers can decide up front whether an
// optional tool (like "shred") is even available before trying to run
// it.
func LookPath(name string) (string, error) {
	return exec.LookPath(name)
}
