package auth

import "signet/internal/domain/models"

// JWTVerifier verifies session tokens issued by the identity provider.
type JWTVerifier interface {
	// VerifyToken validates a JWT and returns its claims. Invalid, expired
	// or anonymous tokens wrap domain.ErrUnauthorized.
	VerifyToken(tokenString string) (*models.SessionClaims, error)

	// Close releases resources held by the verifier.
	Close() error
}
