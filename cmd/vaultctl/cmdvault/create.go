package cmdvault

import (
	"context"

	"github.com/spf13/cobra"
)

var createCmd = &cobra.Command{
	Use:   "create PATH",
	Short: "Create a new encrypted file and open it in an editor",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		if flagGenerate {
			if _, err := generatePassphraseToFile(flagVaultPasswordFile); err != nil {
				return err
			}
		} else if passphrase, err := readPassphraseFile(flagVaultPasswordFile); err != nil {
			return err
		} else {
			warnWeakPassphrase(passphrase)
		}

		editor, err := newEditor()
		if err != nil {
			return err
		}
		return editor.Create(context.Background(), args[0])
	},
}
