package auth

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"signet/internal/domain"
	"signet/internal/domain/models"

	"github.com/MicahParks/keyfunc/v3"
	"github.com/golang-jwt/jwt/v5"
)

// allowedAlgorithms blocks algorithm confusion: only asymmetric keys from
// the JWKS are accepted.
var allowedAlgorithms = []string{"RS256", "ES256"}

// KeyfuncVerifier implements JWTVerifier on top of a jwt.Keyfunc, usually
// backed by a JWKS endpoint.
type KeyfuncVerifier struct {
	keyfunc jwt.Keyfunc
	logger  *slog.Logger
}

// NewJWTVerifier creates a verifier that fetches public keys from jwksURL.
// Keys are cached and refreshed by keyfunc according to HTTP cache headers.
func NewJWTVerifier(jwksURL string, logger *slog.Logger) (JWTVerifier, error) {
	if jwksURL == "" {
		return nil, errors.New("JWKS URL cannot be empty")
	}

	jwks, err := keyfunc.NewDefaultCtx(context.Background(), []string{jwksURL})
	if err != nil {
		return nil, fmt.Errorf("failed to create JWKS client: %w", err)
	}

	logger.Info("JWT verifier initialized", "jwks_url", jwksURL)
	return NewKeyfuncVerifier(jwks.Keyfunc, logger), nil
}

// NewKeyfuncVerifier creates a verifier resolving keys with fn.
func NewKeyfuncVerifier(fn jwt.Keyfunc, logger *slog.Logger) *KeyfuncVerifier {
	return &KeyfuncVerifier{keyfunc: fn, logger: logger}
}

// VerifyToken validates a JWT and extracts session claims.
func (v *KeyfuncVerifier) VerifyToken(tokenString string) (*models.SessionClaims, error) {
	token, err := jwt.ParseWithClaims(tokenString, &models.SessionClaims{}, v.keyfunc,
		jwt.WithValidMethods(allowedAlgorithms),
		jwt.WithExpirationRequired(),
	)
	if err != nil {
		v.logger.Debug("token rejected", "error", err)
		return nil, fmt.Errorf("%w: %v", domain.ErrUnauthorized, err)
	}

	claims, ok := token.Claims.(*models.SessionClaims)
	if !ok || !token.Valid {
		return nil, domain.ErrUnauthorized
	}

	if claims.UserID <= 0 {
		v.logger.Debug("token missing uid claim", "subject", claims.Subject)
		return nil, domain.ErrUnauthorized
	}

	// Anonymous tokens carry a role other than "authenticated".
	if claims.Role != "authenticated" {
		v.logger.Warn("token has unexpected role",
			"role", claims.Role,
			"user_id", claims.UserID,
		)
		return nil, domain.ErrUnauthorized
	}

	return claims, nil
}

// Close is a no-op; keyfunc v3 manages its own refresh goroutine lifetime
// through the context it was created with.
func (v *KeyfuncVerifier) Close() error {
	v.logger.Info("JWT verifier closed")
	return nil
}
