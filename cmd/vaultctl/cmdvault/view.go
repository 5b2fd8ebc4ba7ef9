package cmdvault

import (
	"fmt"

	"github.com/spf13/cobra"
)

var viewCmd = &cobra.Command{
	Use:   "view PATH",
	Short: "Decrypt a file and print its plaintext to stdout",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		editor, err := newEditor()
		if err != nil {
			return err
		}
		plaintext, err := editor.View(args[0])
		if err != nil {
			return err
		}
		fmt.Print(string(plaintext))
		return nil
	},
}
