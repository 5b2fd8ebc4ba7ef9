package cmdvault

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/amenonsen/ansible/acrypt"
	"github.com/spf13/cobra"
)

var encryptStringCmd = &cobra.Command{
	Use:   "encrypt-string [VALUE]",
	Short: "Encrypt a single string value for inline use in a YAML document",
	Long: `encrypt-string encrypts a single value and prints it as a YAML
"!vault" block, the way ansible-vault encrypt-string does. The value is
taken from the positional argument, or read from stdin if omitted.`,
	Args: cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		passphrase, err := readPassphraseFile(flagVaultPasswordFile)
		if err != nil {
			return err
		}

		var value []byte
		if len(args) == 1 {
			value = []byte(args[0])
		} else {
			value, err = io.ReadAll(os.Stdin)
			if err != nil {
				return fmt.Errorf("cannot read value from stdin: %w", err)
			}
			value = []byte(strings.TrimRight(string(value), "\n"))
		}

		vault := acrypt.NewVault(passphrase)
		armoured, err := vault.Encrypt(value, acrypt.CipherName(flagCipher))
		if err != nil {
			return err
		}

		fmt.Print(yamlVaultBlock(flagName, armoured))
		return nil
	},
}

// yamlVaultBlock renders an armoured blob as a YAML "!vault |" literal
// block, indenting every armoured line under the given variable name
// (left unlabeled, printed bare, if name is empty).
func yamlVaultBlock(name string, armoured []byte) string {
	var b strings.Builder
	if name != "" {
		fmt.Fprintf(&b, "%s: !vault |\n", name)
	} else {
		b.WriteString("!vault |\n")
	}
	for _, line := range strings.Split(strings.TrimRight(string(armoured), "\n"), "\n") {
		b.WriteString("  ")
		b.WriteString(line)
		b.WriteString("\n")
	}
	return b.String()
}
