package cmdvault

import (
	"github.com/spf13/cobra"
)

var rekeyCmd = &cobra.Command{
	Use:   "rekey PATH",
	Short: "Re-encrypt a vault file under a new passphrase, preserving mode and ownership",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		editor, err := newEditor()
		if err != nil {
			return err
		}
		newPassphrase, err := readPassphraseFile(flagNewPasswordFile)
		if err != nil {
			return err
		}
		warnWeakPassphrase(newPassphrase)
		return editor.Rekey(args[0], newPassphrase)
	},
}
