package cmdvault

import (
	"github.com/spf13/cobra"
)

var encryptCmd = &cobra.Command{
	Use:   "encrypt PATH",
	Short: "Encrypt a plaintext file in place (or to --output)",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		editor, err := newEditor()
		if err != nil {
			return err
		}
		return editor.EncryptFile(args[0], flagOutput)
	},
}
