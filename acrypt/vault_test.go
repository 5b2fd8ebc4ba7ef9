package acrypt

import (
	"bytes"
	"encoding/base64"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestVaultRoundTrip(t *testing.T) {
	v := NewVault([]byte("secret"))

	armoured, err := v.Encrypt([]byte("hello\n"), "")
	require.NoError(t, err)

	res, err := v.Decrypt(armoured)
	require.NoError(t, err)
	assert.Equal(t, []byte("hello\n"), res.Plaintext)
	assert.Equal(t, CipherNameAES256, res.CipherName)
	assert.Equal(t, "1.2", res.CipherVersion)
	assert.Equal(t, ContainerVersion12, res.ContainerVersion)
}

func TestVaultEncryptIsNondeterministic(t *testing.T) {
	v := NewVault([]byte("secret"))

	a, err := v.Encrypt([]byte("same plaintext"), "")
	require.NoError(t, err)
	b, err := v.Encrypt([]byte("same plaintext"), "")
	require.NoError(t, err)

	assert.NotEqual(t, a, b, "fresh random salt must make repeated encryptions differ")
}

func TestVaultWrongPassphraseFailsAuth(t *testing.T) {
	armoured, err := NewVault([]byte("correct")).Encrypt([]byte("payload"), "")
	require.NoError(t, err)

	_, err = NewVault([]byte("incorrect")).Decrypt(armoured)
	assert.ErrorIs(t, err, ErrAuthFailure)
}

func TestVaultTamperDetection(t *testing.T) {
	armoured, err := NewVault([]byte("secret")).Encrypt([]byte("0123456789"), "")
	require.NoError(t, err)

	lines := splitHexLines(armoured)
	require.GreaterOrEqual(t, len(lines), 2)
	body := lines[1]
	require.NotEmpty(t, body)
	tampered := append([]byte{}, body...)
	tampered[0] ^= 0x01
	lines[1] = tampered

	rebuilt := lines[0]
	for _, l := range lines[1:] {
		rebuilt = append(rebuilt, '\n')
		rebuilt = append(rebuilt, l...)
	}

	_, err = NewVault([]byte("secret")).Decrypt(rebuilt)
	assert.ErrorIs(t, err, ErrAuthFailure)
}

func TestVaultAlreadyEncrypted(t *testing.T) {
	v := NewVault([]byte("secret"))
	armoured, err := v.Encrypt([]byte("plain"), "")
	require.NoError(t, err)

	_, err = v.Encrypt(armoured, "")
	assert.ErrorIs(t, err, ErrAlreadyEncrypted)
}

func TestVaultPasswordRequired(t *testing.T) {
	armoured, err := NewVault([]byte("secret")).Encrypt([]byte("plain"), "")
	require.NoError(t, err)

	_, err = NewVault(nil).Decrypt(armoured)
	assert.ErrorIs(t, err, ErrPasswordRequired)
}

func TestVaultExplicitEmptyPassphraseIsNotPasswordRequired(t *testing.T) {
	// An explicitly chosen empty passphrase ([]byte{}) is a weak but
	// present passphrase, distinct from nil ("no passphrase given").
	armoured, err := NewVault([]byte{}).Encrypt([]byte("plain"), "")
	require.NoError(t, err)

	result, err := NewVault([]byte{}).Decrypt(armoured)
	require.NoError(t, err)
	assert.Equal(t, []byte("plain"), result.Plaintext)
}

func TestIsEncrypted(t *testing.T) {
	armoured, err := NewVault([]byte("secret")).Encrypt([]byte("plain"), "")
	require.NoError(t, err)

	assert.True(t, IsEncrypted(armoured))
	assert.False(t, IsEncrypted([]byte("just some random text, not a vault")))
}

func TestVaultEncryptSubstitutesUnwritableCipher(t *testing.T) {
	v := NewVault([]byte("secret"))
	armoured, err := v.Encrypt([]byte("plain"), CipherNameAES)
	require.NoError(t, err)

	res, err := v.Decrypt(armoured)
	require.NoError(t, err)
	assert.Equal(t, CipherNameAES256, res.CipherName)
}

func TestVaultHeaderHasFourFieldsAndBodyDecodesToAtLeast64Bytes(t *testing.T) {
	armoured, err := NewVault([]byte("secret")).Encrypt([]byte("x"), "")
	require.NoError(t, err)

	hdr, body, err := parseVaultContainer(armoured)
	require.NoError(t, err)
	assert.Equal(t, ContainerVersion12, hdr.ContainerVersion)
	assert.Equal(t, CipherNameAES256, hdr.CipherName)
	assert.Equal(t, "1.2", hdr.CipherVersion)
	assert.NotEmpty(t, body)

	headerLine := splitHexLines(armoured)[0]
	assert.Len(t, bytes.Split(headerLine, []byte(";")), 4)

	raw, err := base64.StdEncoding.DecodeString(string(stripNewlines(body)))
	require.NoError(t, err)
	assert.GreaterOrEqual(t, len(raw), 64)
}
