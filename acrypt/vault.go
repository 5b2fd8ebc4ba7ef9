package acrypt

import "fmt"

// Vault binds a single passphrase to the vault codec and cipher suite
// for the lifetime of the value. It is otherwise stateless: Encrypt and
// Decrypt take and return plain byte slices, and never touch disk.
type Vault struct {
	passphrase    []byte
	hasPassphrase bool
}

// NewVault binds passphrase (a UTF-8 encoded secret) to a new Vault.
// Passing nil means "no passphrase was supplied" and surfaces as
// ErrPasswordRequired at Decrypt time, matching the source's
// self.b_password is None check. A non-nil but empty passphrase
// ([]byte{} or []byte("")) is a passphrase the caller explicitly chose
// — a weak one, but present — and is accepted, matching the source's
// treatment of "" as distinct from None.
func NewVault(passphrase []byte) *Vault {
	return &Vault{passphrase: passphrase, hasPassphrase: passphrase != nil}
}

// IsEncrypted reports whether data looks like an armoured vault blob,
// i.e. it starts with the $ANSIBLE_VAULT magic header.
func IsEncrypted(data []byte) bool {
	return isEncrypted(data)
}

// Encrypt produces an armoured blob for plaintext. cipherName selects
// the cipher to write with; pass "" for the default (AES256). Any name
// outside the write set is silently substituted with the default,
// matching the source behavior.
func (v *Vault) Encrypt(plaintext []byte, cipherName CipherName) ([]byte, error) {
	if isEncrypted(plaintext) {
		return nil, ErrAlreadyEncrypted
	}

	name, impl := cipherForWrite(cipherName)
	body, err := impl.Encrypt(plaintext, v.passphrase)
	if err != nil {
		return nil, err
	}

	return emitVaultContainer(name, impl.Version(), body), nil
}

// DecryptResult carries the parsed header fields alongside the
// recovered plaintext, for callers that need to report what cipher and
// container version a file used.
type DecryptResult struct {
	ContainerVersion ContainerVersion
	CipherName       CipherName
	CipherVersion    string
	VaultID          string
	Plaintext        []byte
}

// Decrypt parses an armoured blob, verifies and decrypts it, and
// returns the recovered plaintext together with the header metadata.
func (v *Vault) Decrypt(armoured []byte) (DecryptResult, error) {
	if !v.hasPassphrase {
		return DecryptResult{}, ErrPasswordRequired
	}

	hdr, body, err := parseVaultContainer(armoured)
	if err != nil {
		return DecryptResult{}, err
	}

	impl, err := cipherForRead(hdr.CipherName)
	if err != nil {
		return DecryptResult{}, err
	}

	plaintext, err := impl.Decrypt(body, v.passphrase, hdr.CipherVersion)
	if err != nil {
		return DecryptResult{}, fmt.Errorf("%w", err)
	}

	return DecryptResult{
		ContainerVersion: hdr.ContainerVersion,
		CipherName:       hdr.CipherName,
		CipherVersion:    hdr.CipherVersion,
		VaultID:          hdr.VaultID,
		Plaintext:        plaintext,
	}, nil
}
