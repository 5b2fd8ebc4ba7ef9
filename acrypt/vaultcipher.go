package acrypt

// VaultCipher is the capability set every vault cipher suite implements:
// encrypt a payload to a body, decrypt a body back to a payload, and
// report the cipher-version tag it stamps on new output.
//
// AES256 implements both directions. The legacy AES cipher implements
// Decrypt only; Encrypt always fails with ErrDeprecatedEncrypt.
type VaultCipher interface {
	// Encrypt produces the body (everything after the header line's
	// trailing newline) for plaintext under passphrase.
	Encrypt(plaintext, passphrase []byte) (body []byte, err error)

	// Decrypt recovers plaintext from body under passphrase. cipherVersion
	// is the per-cipher version tag parsed from the header, needed
	// because AES256's 1.1 and 1.2 variants use different body framing
	// and key-derivation rules.
	Decrypt(body, passphrase []byte, cipherVersion string) (plaintext []byte, err error)

	// Version is the cipher-version tag this implementation stamps on
	// data it encrypts.
	Version() string
}
