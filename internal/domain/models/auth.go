package models

import "github.com/golang-jwt/jwt/v5"

// SessionClaims is the JWT claim set issued by the identity provider.
type SessionClaims struct {
	jwt.RegisteredClaims        // Standard JWT claims (sub, iss, aud, exp, iat, etc.)
	UserID               int64  `json:"uid"`
	Email                string `json:"email"`
	EmailVerified        bool   `json:"email_verified"`
	Role                 string `json:"role"` // "authenticated" or "anon"
	SessionID            string `json:"session_id"`
}

// Session is the authenticated requester for the current HTTP request.
// A nil *Session means the request is anonymous.
type Session struct {
	UserID        int64  `json:"id"`
	Email         string `json:"email"`
	EmailVerified bool   `json:"email_verified"`
}

// Session converts verified claims into the request session.
func (c *SessionClaims) Session() *Session {
	return &Session{
		UserID:        c.UserID,
		Email:         c.Email,
		EmailVerified: c.EmailVerified,
	}
}
