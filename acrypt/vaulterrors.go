package acrypt

import "errors"

// Vault error kinds. These are sentinel values, not distinct types, so
// callers compare with errors.Is across wrapped chains.
var (
	// ErrNotVault means the input lacks the $ANSIBLE_VAULT magic header
	// where one was required.
	ErrNotVault = errors.New("input is not vault encrypted data")

	// ErrMalformedHeader means the header is present but its field count
	// or version shape does not match any recognized container version.
	ErrMalformedHeader = errors.New("malformed vault header")

	// ErrUnknownCipher means the cipher name in the header is not in the
	// read set.
	ErrUnknownCipher = errors.New("unrecognized vault cipher")

	// ErrDeprecatedEncrypt means the caller asked to encrypt with the
	// legacy AES cipher, which is decrypt-only.
	ErrDeprecatedEncrypt = errors.New("encryption disabled for deprecated AES cipher")

	// ErrAuthFailure means the HMAC did not validate. Surfaced as a
	// generic failure to avoid giving an attacker an oracle.
	ErrAuthFailure = errors.New("decryption failed")

	// ErrPasswordRequired means decrypt was attempted with no passphrase
	// bound to the vault.
	ErrPasswordRequired = errors.New("a vault password must be specified to decrypt data")

	// ErrAlreadyEncrypted means plaintext input already looks armoured.
	ErrAlreadyEncrypted = errors.New("input is already encrypted")

	// ErrAlreadyExists means a create operation's target file is present.
	ErrAlreadyExists = errors.New("target file already exists")

	// ErrCryptoUnavailable means a required primitive could not be used:
	// the AES256 cipher returns it when the random source or AES cipher
	// construction fails, which does not happen in normal operation.
	ErrCryptoUnavailable = errors.New("required cryptographic primitive unavailable")
)
