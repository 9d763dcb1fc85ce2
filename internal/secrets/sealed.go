package secrets

import (
	"bytes"
	"encoding/base64"
	"fmt"
	"io"
	"strings"

	"filippo.io/age"
)

// SealedPrefix marks a ciphertext produced by Seal.
const SealedPrefix = "age:"

// DefaultWorkFactor is the scrypt cost (log2 N) used when sealing. Opening
// happens on the request path, so it stays well below age's file default.
const DefaultWorkFactor = 14

// Seal encrypts plaintext to an age scrypt recipient derived from key and
// returns SealedPrefix followed by the base64 ciphertext.
func Seal(plaintext, key string, workFactor int) (string, error) {
	recipient, err := age.NewScryptRecipient(key)
	if err != nil {
		return "", fmt.Errorf("creating scrypt recipient: %w", err)
	}
	recipient.SetWorkFactor(workFactor)

	var buf bytes.Buffer
	writer, err := age.Encrypt(&buf, recipient)
	if err != nil {
		return "", fmt.Errorf("creating age encryptor: %w", err)
	}
	if _, err := io.WriteString(writer, plaintext); err != nil {
		return "", fmt.Errorf("writing plaintext: %w", err)
	}
	if err := writer.Close(); err != nil {
		return "", fmt.Errorf("finalizing age encryption: %w", err)
	}

	return SealedPrefix + base64.StdEncoding.EncodeToString(buf.Bytes()), nil
}

// Unseal reverses Seal. Ciphertexts whose work factor exceeds maxWorkFactor
// are rejected before any scrypt work is done.
func Unseal(ciphertext, key string, maxWorkFactor int) (string, error) {
	encoded, ok := strings.CutPrefix(ciphertext, SealedPrefix)
	if !ok {
		return "", fmt.Errorf("ciphertext is missing the %q prefix", SealedPrefix)
	}

	raw, err := base64.StdEncoding.DecodeString(encoded)
	if err != nil {
		return "", fmt.Errorf("decoding base64 ciphertext: %w", err)
	}

	identity, err := age.NewScryptIdentity(key)
	if err != nil {
		return "", fmt.Errorf("creating scrypt identity: %w", err)
	}
	identity.SetMaxWorkFactor(maxWorkFactor)

	reader, err := age.Decrypt(bytes.NewReader(raw), identity)
	if err != nil {
		return "", fmt.Errorf("decrypting: %w", err)
	}
	plaintext, err := io.ReadAll(reader)
	if err != nil {
		return "", fmt.Errorf("reading decrypted plaintext: %w", err)
	}
	return string(plaintext), nil
}

// IsSealed reports whether ciphertext was produced by Seal.
func IsSealed(ciphertext string) bool {
	return strings.HasPrefix(ciphertext, SealedPrefix)
}
