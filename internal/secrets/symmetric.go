package secrets

import (
	"crypto/cipher"
	"crypto/rand"
	"crypto/sha256"
	"encoding/hex"
	"fmt"
	"io"

	"golang.org/x/crypto/chacha20poly1305"
)

// EncryptSymmetric encrypts plaintext with XChaCha20-Poly1305 under the
// SHA-256 digest of key. The result is hex(nonce || ciphertext || tag), the
// format older document passwords are stored in.
func EncryptSymmetric(plaintext, key string) (string, error) {
	aead, err := newSymmetricAEAD(key)
	if err != nil {
		return "", err
	}

	nonce := make([]byte, chacha20poly1305.NonceSizeX, chacha20poly1305.NonceSizeX+len(plaintext)+aead.Overhead())
	if _, err := io.ReadFull(rand.Reader, nonce); err != nil {
		return "", fmt.Errorf("generating nonce: %w", err)
	}

	return hex.EncodeToString(aead.Seal(nonce, nonce, []byte(plaintext), nil)), nil
}

// DecryptSymmetric reverses EncryptSymmetric.
func DecryptSymmetric(ciphertext, key string) (string, error) {
	raw, err := hex.DecodeString(ciphertext)
	if err != nil {
		return "", fmt.Errorf("decoding hex ciphertext: %w", err)
	}
	if len(raw) < chacha20poly1305.NonceSizeX+chacha20poly1305.Overhead {
		return "", fmt.Errorf("ciphertext is %d bytes, minimum is %d", len(raw), chacha20poly1305.NonceSizeX+chacha20poly1305.Overhead)
	}

	aead, err := newSymmetricAEAD(key)
	if err != nil {
		return "", err
	}

	nonce, sealed := raw[:chacha20poly1305.NonceSizeX], raw[chacha20poly1305.NonceSizeX:]
	plaintext, err := aead.Open(nil, nonce, sealed, nil)
	if err != nil {
		return "", fmt.Errorf("decrypting: %w", err)
	}
	return string(plaintext), nil
}

func newSymmetricAEAD(key string) (cipher.AEAD, error) {
	digest := sha256.Sum256([]byte(key))
	aead, err := chacha20poly1305.NewX(digest[:])
	if err != nil {
		return nil, fmt.Errorf("creating XChaCha20-Poly1305 cipher: %w", err)
	}
	return aead, nil
}
