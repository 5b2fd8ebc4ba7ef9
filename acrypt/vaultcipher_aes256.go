package acrypt

import (
	"bytes"
	"crypto/aes"
	"crypto/cipher"
	"crypto/hmac"
	"crypto/rand"
	"crypto/sha256"
	"crypto/subtle"
	"encoding/base64"
	"encoding/hex"
	"fmt"
	"math/big"

	"golang.org/x/crypto/pbkdf2"
)

// aes256Cipher implements the modern encrypt-then-MAC construction:
// AES-CTR for confidentiality, HMAC-SHA256 over the ciphertext for
// integrity, both keys stretched from the passphrase with PBKDF2.
// http://www.daemonology.net/blog/2009-06-11-cryptographic-right-answers.html
type aes256Cipher struct{}

const (
	aes256KeyLength      = 32
	aes256SaltLength     = 32
	aes256PBKDF2Rounds   = 10000
	aes256Width          = 80
	aes256LegacyIVLength = 16
)

func (aes256Cipher) Version() string { return "1.2" }

// deriveKeys stretches passphrase+salt into an AES key and an HMAC key,
// and optionally (for legacy 1.1 compatibility) a 128-bit initial CTR
// counter value. When generateIV is false the counter starts at zero,
// which is safe because the salt is fresh random data on every
// encryption; deriving a counter via PBKDF2 only slows things down for
// no security benefit in that case (preserved from the source design
// note, not reproduced as a comment verbatim).
func deriveKeys(passphrase, salt []byte, generateIV bool) (key, macKey []byte, counter *big.Int) {
	ivLen := 0
	if generateIV {
		ivLen = aes256LegacyIVLength
	}

	derived := pbkdf2.Key(passphrase, salt, aes256PBKDF2Rounds, 2*aes256KeyLength+ivLen, sha256.New)
	key = derived[:aes256KeyLength]
	macKey = derived[aes256KeyLength : 2*aes256KeyLength]

	counter = big.NewInt(0)
	if generateIV {
		counter = new(big.Int).SetBytes(derived[2*aes256KeyLength:])
	}
	return key, macKey, counter
}

// counterBlock renders a counter value as the 16-byte big-endian initial
// counter block crypto/cipher.NewCTR expects; Go's CTR implementation
// increments this block as a big-endian integer per block exactly as
// pycrypto's Counter.new(128, initial_value=...) does.
func counterBlock(counter *big.Int) []byte {
	block := make([]byte, aes.BlockSize)
	b := counter.Bytes()
	copy(block[aes.BlockSize-len(b):], b)
	return block
}

func hmacCompareConstantTime(a, b []byte) bool {
	if len(a) != len(b) {
		return false
	}
	var acc byte
	for i := range a {
		acc |= a[i] ^ b[i]
	}
	return subtle.ConstantTimeByteEq(acc, 0) == 1
}

func (aes256Cipher) Encrypt(plaintext, passphrase []byte) ([]byte, error) {
	salt := make([]byte, aes256SaltLength)
	if _, err := rand.Read(salt); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrCryptoUnavailable, err)
	}

	key, macKey, counter := deriveKeys(passphrase, salt, false)

	block, err := aes.NewCipher(key)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrCryptoUnavailable, err)
	}
	stream := cipher.NewCTR(block, counterBlock(counter))
	ciphertext := make([]byte, len(plaintext))
	stream.XORKeyStream(ciphertext, plaintext)

	mac := hmac.New(sha256.New, macKey)
	mac.Write(ciphertext)
	tag := mac.Sum(nil)

	raw := make([]byte, 0, len(salt)+len(tag)+len(ciphertext))
	raw = append(raw, salt...)
	raw = append(raw, tag...)
	raw = append(raw, ciphertext...)

	encoded := make([]byte, base64.StdEncoding.EncodedLen(len(raw)))
	base64.StdEncoding.Encode(encoded, raw)

	return wrapLines(encoded, aes256Width), nil
}

func (aes256Cipher) Decrypt(body, passphrase []byte, cipherVersion string) ([]byte, error) {
	var salt, tag, ciphertext []byte
	var generateIV bool

	if cipherVersion == "1.1" {
		generateIV = true
		// Legacy 1.1 bodies carry three newline-separated hex fields
		// (salt, mac, ciphertext); the ciphertext field itself may span
		// several wrapped lines, so only blank lines are dropped before
		// the first two fixed-width fields are peeled off.
		lines := splitHexLines(body)
		var nonEmpty [][]byte
		for _, l := range lines {
			if len(l) > 0 {
				nonEmpty = append(nonEmpty, l)
			}
		}
		if len(nonEmpty) < 3 {
			return nil, fmt.Errorf("%w: expected 3 hex fields in 1.1 body", ErrMalformedHeader)
		}
		var err error
		if salt, err = hex.DecodeString(string(nonEmpty[0])); err != nil {
			return nil, fmt.Errorf("%w: %v", ErrMalformedHeader, err)
		}
		if tag, err = hex.DecodeString(string(nonEmpty[1])); err != nil {
			return nil, fmt.Errorf("%w: %v", ErrMalformedHeader, err)
		}
		ctHex := bytes.Join(nonEmpty[2:], nil)
		if ciphertext, err = hex.DecodeString(string(ctHex)); err != nil {
			return nil, fmt.Errorf("%w: %v", ErrMalformedHeader, err)
		}
	} else {
		message := stripNewlines(body)
		raw := make([]byte, base64.StdEncoding.DecodedLen(len(message)))
		n, err := base64.StdEncoding.Decode(raw, message)
		if err != nil {
			// A corrupted body is reported like a MAC mismatch so that
			// tampering yields one uniform failure.
			return nil, fmt.Errorf("%w: %v", ErrAuthFailure, err)
		}
		raw = raw[:n]
		if len(raw) < aes256SaltLength+sha256.Size {
			return nil, fmt.Errorf("%w: body too short", ErrMalformedHeader)
		}
		salt = raw[:aes256SaltLength]
		tag = raw[aes256SaltLength : 2*aes256SaltLength]
		ciphertext = raw[2*aes256SaltLength:]
	}

	key, macKey, counter := deriveKeys(passphrase, salt, generateIV)

	mac := hmac.New(sha256.New, macKey)
	mac.Write(ciphertext)
	expected := mac.Sum(nil)
	if !hmacCompareConstantTime(tag, expected) {
		return nil, ErrAuthFailure
	}

	block, err := aes.NewCipher(key)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrCryptoUnavailable, err)
	}
	stream := cipher.NewCTR(block, counterBlock(counter))
	plaintext := make([]byte, len(ciphertext))
	stream.XORKeyStream(plaintext, ciphertext)

	if cipherVersion == "1.1" {
		plaintext = stripLegacyPadding(plaintext)
	}

	return plaintext, nil
}

// stripLegacyPadding removes the spurious pseudo-PKCS#7 padding used by
// vault 1.1: the last byte's value is the pad count, and the trailing
// bytes are dropped without validating that they equal the pad byte.
// This is a known quirk of the legacy format, preserved intentionally.
func stripLegacyPadding(plaintext []byte) []byte {
	if len(plaintext) == 0 {
		return plaintext
	}
	n := int(plaintext[len(plaintext)-1])
	if n > len(plaintext) {
		return plaintext
	}
	return plaintext[:len(plaintext)-n]
}

func stripNewlines(b []byte) []byte {
	out := make([]byte, 0, len(b))
	for _, c := range b {
		if c != '\n' {
			out = append(out, c)
		}
	}
	return out
}

func splitHexLines(b []byte) [][]byte {
	var out [][]byte
	start := 0
	for i, c := range b {
		if c == '\n' {
			out = append(out, b[start:i])
			start = i + 1
		}
	}
	out = append(out, b[start:])
	return out
}

// wrapLines hard-wraps data into lines of at most width characters, each
// followed by a newline (including the last line), matching the
// armoured-body wrapping real ansible-vault writes.
func wrapLines(data []byte, width int) []byte {
	var out []byte
	for i := 0; i < len(data); i += width {
		end := i + width
		if end > len(data) {
			end = len(data)
		}
		out = append(out, data[i:end]...)
		out = append(out, '\n')
	}
	return out
}
