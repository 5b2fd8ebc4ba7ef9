// Command vaultctl is a thin CLI wrapper around the acrypt/aveditor
// vault library, exercising its Create/Edit/View/Encrypt/Decrypt/Rekey
// operations the way ansible-vault's own CLI exercises libansible's.
package main

import (
	"fmt"
	"os"

	"github.com/amenonsen/ansible/cmd/vaultctl/cmdvault"
)

func main() {
	if err := cmdvault.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
