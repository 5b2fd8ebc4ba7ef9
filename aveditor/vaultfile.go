package aveditor

import (
	"bufio"
	"bytes"
	"context"
	"fmt"
	"os"

	"github.com/amenonsen/ansible/acrypt"
)

// VaultEditor sequences the editor workflow's file-level operations:
// decrypt-into-temp, hand off to an external editor, re-encrypt, and
// atomically replace the target, with guaranteed secure erasure of any
// plaintext temp file on every exit path. It holds a facade (acrypt.Vault)
// which in turn holds the codec and cipher suite — a strictly tree-shaped
// ownership graph, never cyclic.
type VaultEditor struct {
	vault      *acrypt.Vault
	cipherName acrypt.CipherName
	eraser     SecureEraser
}

// NewVaultEditor binds passphrase and an optional preferred write
// cipher (empty string selects the default, AES256).
func NewVaultEditor(passphrase []byte, cipherName acrypt.CipherName) *VaultEditor {
	return &VaultEditor{
		vault:      acrypt.NewVault(passphrase),
		cipherName: cipherName,
	}
}

// WithSecureEraser overrides the default shred-then-fallback eraser,
// primarily for tests that want to assert on erase behavior directly.
func (e *VaultEditor) WithSecureEraser(eraser SecureEraser) *VaultEditor {
	e.eraser = eraser
	return e
}

// IsEncryptedFile peeks at a file's header line without consuming the
// rest of it, so a caller can check encryption status without paying
// for a full read.
func IsEncryptedFile(path string) (bool, error) {
	f, err := os.Open(path)
	if err != nil {
		return false, fmt.Errorf("aveditor: cannot open %s: %w", path, err)
	}
	defer f.Close()

	line, err := bufio.NewReader(f).ReadString('\n')
	if err != nil && len(line) == 0 {
		return false, nil
	}
	return acrypt.IsEncrypted([]byte(line)), nil
}

// Create makes a new encrypted file at path. It refuses if the target
// already exists (ErrAlreadyExists), matching "use edit instead".
func (e *VaultEditor) Create(ctx context.Context, path string) error {
	if _, err := os.Stat(path); err == nil {
		return acrypt.ErrAlreadyExists
	} else if !os.IsNotExist(err) {
		return fmt.Errorf("aveditor: cannot stat %s: %w", path, err)
	}

	return e.editHelper(ctx, path, nil, false)
}

// Edit decrypts path into a scratch temp file, hands it to the editor,
// and re-encrypts and replaces path on save. If the file was written
// with a cipher outside the write set (legacy AES), re-save is forced
// even when the plaintext is unchanged, migrating the file to AES256.
func (e *VaultEditor) Edit(ctx context.Context, path string) error {
	ciphertext, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("aveditor: cannot read %s: %w", path, err)
	}

	res, err := e.vault.Decrypt(ciphertext)
	if err != nil {
		return err
	}

	forceSave := !res.CipherName.IsWritable()
	return e.editHelper(ctx, path, res.Plaintext, forceSave)
}

// editHelper implements the shared core of Create and Edit: allocate a
// scoped temp file, optionally seed it with existing plaintext, invoke
// the editor, and — unless the content is unchanged and no migration is
// forced — encrypt and atomically swap the result into path.
func (e *VaultEditor) editHelper(ctx context.Context, path string, existing []byte, forceSave bool) error {
	tmp, err := NewScopedTempFile(e.eraser)
	if err != nil {
		return err
	}
	defer tmp.Close()

	if existing != nil {
		if err := tmp.Write(existing); err != nil {
			return err
		}
	}

	if err := invokeEditor(ctx, tmp.Path()); err != nil {
		return err
	}

	edited, err := tmp.Read()
	if err != nil {
		return err
	}

	if existing != nil && bytes.Equal(existing, edited) && !forceSave {
		return nil
	}
	if existing == nil && len(edited) == 0 {
		// create: nothing was saved, so there is nothing to encrypt.
		return nil
	}

	armoured, err := e.vault.Encrypt(edited, e.cipherName)
	if err != nil {
		return err
	}

	if err := tmp.Write(armoured); err != nil {
		return err
	}

	return atomicSwap(tmp.Path(), path)
}

// EncryptFile is a one-shot transform: read plaintext from path, encrypt,
// and write to outPath (defaulting to path).
func (e *VaultEditor) EncryptFile(path string, outPath string) error {
	plaintext, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("aveditor: cannot read %s: %w", path, err)
	}

	armoured, err := e.vault.Encrypt(plaintext, e.cipherName)
	if err != nil {
		return err
	}

	if outPath == "" {
		outPath = path
	}
	return writeFilePreservingMode(path, outPath, armoured)
}

// DecryptFile is a one-shot transform: read ciphertext from path,
// decrypt, and write plaintext to outPath (defaulting to path).
func (e *VaultEditor) DecryptFile(path string, outPath string) error {
	ciphertext, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("aveditor: cannot read %s: %w", path, err)
	}

	res, err := e.vault.Decrypt(ciphertext)
	if err != nil {
		return err
	}

	if outPath == "" {
		outPath = path
	}
	return writeFilePreservingMode(path, outPath, res.Plaintext)
}

// View decrypts path and returns the plaintext without writing anything
// to disk.
func (e *VaultEditor) View(path string) ([]byte, error) {
	ciphertext, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("aveditor: cannot read %s: %w", path, err)
	}

	res, err := e.vault.Decrypt(ciphertext)
	if err != nil {
		return nil, err
	}
	return res.Plaintext, nil
}

// Rekey decrypts path under the editor's current passphrase and
// re-encrypts it under newPassphrase, preserving the file's mode and
// ownership as captured before the rewrite.
func (e *VaultEditor) Rekey(path string, newPassphrase []byte) error {
	prev, hadDest, err := statOwnership(path)
	if err != nil {
		return err
	}
	if !hadDest {
		return fmt.Errorf("aveditor: cannot rekey %s: %w", path, os.ErrNotExist)
	}

	ciphertext, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("aveditor: cannot read %s: %w", path, err)
	}

	res, err := e.vault.Decrypt(ciphertext)
	if err != nil {
		return err
	}

	newVault := acrypt.NewVault(newPassphrase)
	newArmoured, err := newVault.Encrypt(res.Plaintext, e.cipherName)
	if err != nil {
		return err
	}

	if err := os.WriteFile(path, newArmoured, prev.mode); err != nil {
		return fmt.Errorf("aveditor: cannot write %s: %w", path, err)
	}
	return restoreOwnership(path, prev)
}

// writeFilePreservingMode writes data to outPath. When outPath equals
// srcPath, srcPath's existing mode is preserved on the overwrite;
// otherwise the file is created with default vault-appropriate
// (owner-only) permissions.
func writeFilePreservingMode(srcPath, outPath string, data []byte) error {
	mode := os.FileMode(0o600)
	if srcPath == outPath {
		if info, err := os.Stat(srcPath); err == nil {
			mode = info.Mode()
		}
	}
	if err := os.WriteFile(outPath, data, mode); err != nil {
		return fmt.Errorf("aveditor: cannot write %s: %w", outPath, err)
	}
	return nil
}
