package auth

import (
	"crypto/ecdsa"
	"crypto/elliptic"
	"crypto/rand"
	"errors"
	"io"
	"log/slog"
	"testing"
	"time"

	"signet/internal/domain"
	"signet/internal/domain/models"

	"github.com/golang-jwt/jwt/v5"
)

func newTestVerifier(t *testing.T) (*KeyfuncVerifier, *ecdsa.PrivateKey) {
	t.Helper()
	key, err := ecdsa.GenerateKey(elliptic.P256(), rand.Reader)
	if err != nil {
		t.Fatalf("generate key: %v", err)
	}
	keyfn := func(*jwt.Token) (any, error) { return &key.PublicKey, nil }
	return NewKeyfuncVerifier(keyfn, slog.New(slog.NewTextHandler(io.Discard, nil))), key
}

func sign(t *testing.T, key *ecdsa.PrivateKey, claims models.SessionClaims) string {
	t.Helper()
	token, err := jwt.NewWithClaims(jwt.SigningMethodES256, claims).SignedString(key)
	if err != nil {
		t.Fatalf("sign token: %v", err)
	}
	return token
}

func validClaims() models.SessionClaims {
	return models.SessionClaims{
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   "42",
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(time.Hour)),
		},
		UserID:        42,
		Email:         "user@example.com",
		EmailVerified: true,
		Role:          "authenticated",
	}
}

func TestKeyfuncVerifier_VerifyToken(t *testing.T) {
	verifier, key := newTestVerifier(t)

	claims, err := verifier.VerifyToken(sign(t, key, validClaims()))
	if err != nil {
		t.Fatalf("VerifyToken() error = %v", err)
	}
	session := claims.Session()
	if session.UserID != 42 || session.Email != "user@example.com" || !session.EmailVerified {
		t.Errorf("Session() = %+v", session)
	}
}

func TestKeyfuncVerifier_Rejects(t *testing.T) {
	verifier, key := newTestVerifier(t)
	otherKey, err := ecdsa.GenerateKey(elliptic.P256(), rand.Reader)
	if err != nil {
		t.Fatalf("generate key: %v", err)
	}

	expired := validClaims()
	expired.ExpiresAt = jwt.NewNumericDate(time.Now().Add(-time.Minute))

	anonymous := validClaims()
	anonymous.Role = "anon"

	noUser := validClaims()
	noUser.UserID = 0

	noExpiry := validClaims()
	noExpiry.ExpiresAt = nil

	hmacToken, err := jwt.NewWithClaims(jwt.SigningMethodHS256, validClaims()).SignedString([]byte("shared"))
	if err != nil {
		t.Fatalf("sign hmac token: %v", err)
	}

	tests := []struct {
		name  string
		token string
	}{
		{"garbage", "not-a-jwt"},
		{"expired", sign(t, key, expired)},
		{"anonymous role", sign(t, key, anonymous)},
		{"missing uid", sign(t, key, noUser)},
		{"missing expiry", sign(t, key, noExpiry)},
		{"wrong key", sign(t, otherKey, validClaims())},
		{"hmac algorithm", hmacToken},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := verifier.VerifyToken(tt.token)
			if !errors.Is(err, domain.ErrUnauthorized) {
				t.Errorf("VerifyToken() error = %v, want ErrUnauthorized", err)
			}
		})
	}
}
