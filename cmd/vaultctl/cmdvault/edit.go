package cmdvault

import (
	"context"

	"github.com/spf13/cobra"
)

var editCmd = &cobra.Command{
	Use:   "edit PATH",
	Short: "Decrypt a file into a scratch temp file, edit, and re-encrypt it",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		editor, err := newEditor()
		if err != nil {
			return err
		}
		return editor.Edit(context.Background(), args[0])
	},
}
