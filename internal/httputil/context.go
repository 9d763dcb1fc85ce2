package httputil

import (
	"context"
	"net/http"

	"signet/internal/domain/models"
)

type contextKey string

const (
	sessionKey   contextKey = "session"
	requestIDKey contextKey = "requestID"
)

// WithSession attaches the authenticated session to the request context.
func WithSession(r *http.Request, session *models.Session) *http.Request {
	ctx := context.WithValue(r.Context(), sessionKey, session)
	return r.WithContext(ctx)
}

// GetSession returns the request session, or nil for anonymous requests.
func GetSession(r *http.Request) *models.Session {
	session, _ := r.Context().Value(sessionKey).(*models.Session)
	return session
}

// WithRequestID attaches a request id to ctx.
func WithRequestID(ctx context.Context, requestID string) context.Context {
	return context.WithValue(ctx, requestIDKey, requestID)
}

// GetRequestID returns the request id carried by ctx, or "".
func GetRequestID(ctx context.Context) string {
	requestID, _ := ctx.Value(requestIDKey).(string)
	return requestID
}
