package secrets

import (
	"fmt"

	"signet/internal/domain"
)

// Opener decrypts stored document passwords with the process-wide
// encryption key. Both the sealed (age) and the older symmetric format
// are accepted; new values are always sealed.
type Opener struct {
	key           string
	maxWorkFactor int
}

// NewOpener returns an Opener for key. An empty key is a configuration
// error.
func NewOpener(key string) (*Opener, error) {
	if key == "" {
		return nil, fmt.Errorf("%w: encryption key is not set", domain.ErrConfiguration)
	}
	return &Opener{key: key, maxWorkFactor: DefaultWorkFactor}, nil
}

// Open decrypts ciphertext, dispatching on its format.
func (o *Opener) Open(ciphertext string) (string, error) {
	if IsSealed(ciphertext) {
		return Unseal(ciphertext, o.key, o.maxWorkFactor)
	}
	return DecryptSymmetric(ciphertext, o.key)
}

// Seal encrypts plaintext in the sealed format.
func (o *Opener) Seal(plaintext string) (string, error) {
	return Seal(plaintext, o.key, o.maxWorkFactor)
}
