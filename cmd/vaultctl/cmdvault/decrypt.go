package cmdvault

import (
	"github.com/spf13/cobra"
)

var decryptCmd = &cobra.Command{
	Use:   "decrypt PATH",
	Short: "Decrypt a vault file in place (or to --output)",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		editor, err := newEditor()
		if err != nil {
			return err
		}
		return editor.DecryptFile(args[0], flagOutput)
	},
}
