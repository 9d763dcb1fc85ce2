package middleware

import (
	"bytes"
	"errors"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"signet/internal/domain/models"
	"signet/internal/httputil"
)

type stubVerifier struct {
	valid map[string]*models.SessionClaims
}

func (v stubVerifier) VerifyToken(token string) (*models.SessionClaims, error) {
	if claims, ok := v.valid[token]; ok {
		return claims, nil
	}
	return nil, errors.New("invalid token")
}

func (v stubVerifier) Close() error { return nil }

func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

// echoSession writes the session email, or "anonymous".
var echoSession = http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
	if session := httputil.GetSession(r); session != nil {
		_, _ = io.WriteString(w, session.Email)
		return
	}
	_, _ = io.WriteString(w, "anonymous")
})

func TestAuthMiddleware(t *testing.T) {
	verifier := stubVerifier{valid: map[string]*models.SessionClaims{
		"good": {UserID: 7, Email: "user@example.com", Role: "authenticated"},
	}}
	handler := AuthMiddleware(verifier, AuthOptions{
		PublicPaths:      []string{"/health"},
		OptionalPrefixes: []string{"/api/embed/"},
	}, discardLogger())(echoSession)

	tests := []struct {
		name       string
		path       string
		header     string
		cookie     string
		wantStatus int
		wantBody   string
	}{
		{name: "public path", path: "/health", header: "Bearer garbage", wantStatus: http.StatusOK, wantBody: "anonymous"},
		{name: "bearer token", path: "/api/documents/1", header: "Bearer good", wantStatus: http.StatusOK, wantBody: "user@example.com"},
		{name: "cookie token", path: "/api/documents/1", cookie: "good", wantStatus: http.StatusOK, wantBody: "user@example.com"},
		{name: "missing token", path: "/api/documents/1", wantStatus: http.StatusUnauthorized},
		{name: "non-bearer scheme", path: "/api/documents/1", header: "Basic Zm9vOmJhcg==", wantStatus: http.StatusUnauthorized},
		{name: "invalid token", path: "/api/documents/1", header: "Bearer nope", wantStatus: http.StatusUnauthorized},
		{name: "optional anonymous", path: "/api/embed/direct/tok_abcdef12", wantStatus: http.StatusOK, wantBody: "anonymous"},
		{name: "optional signed in", path: "/api/embed/direct/tok_abcdef12", header: "Bearer good", wantStatus: http.StatusOK, wantBody: "user@example.com"},
		{name: "optional invalid token", path: "/api/embed/direct/tok_abcdef12", header: "Bearer nope", wantStatus: http.StatusUnauthorized},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodGet, tt.path, nil)
			if tt.header != "" {
				req.Header.Set("Authorization", tt.header)
			}
			if tt.cookie != "" {
				req.AddCookie(&http.Cookie{Name: "token", Value: tt.cookie})
			}
			rec := httptest.NewRecorder()

			handler.ServeHTTP(rec, req)

			if rec.Code != tt.wantStatus {
				t.Fatalf("status = %d, want %d", rec.Code, tt.wantStatus)
			}
			if tt.wantBody != "" && rec.Body.String() != tt.wantBody {
				t.Errorf("body = %q, want %q", rec.Body.String(), tt.wantBody)
			}
		})
	}
}

func TestRequestID(t *testing.T) {
	var seen string
	handler := RequestID(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		seen = httputil.GetRequestID(r.Context())
	}))

	t.Run("generated", func(t *testing.T) {
		rec := httptest.NewRecorder()
		handler.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/", nil))

		if !strings.HasPrefix(seen, "req_") {
			t.Errorf("request id = %q, want req_ prefix", seen)
		}
		if rec.Header().Get(RequestIDHeader) != seen {
			t.Errorf("response header = %q, want %q", rec.Header().Get(RequestIDHeader), seen)
		}
	})

	t.Run("propagated", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/", nil)
		req.Header.Set(RequestIDHeader, "upstream-123")
		handler.ServeHTTP(httptest.NewRecorder(), req)

		if seen != "upstream-123" {
			t.Errorf("request id = %q, want upstream-123", seen)
		}
	})

	t.Run("oversized client id replaced", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/", nil)
		req.Header.Set(RequestIDHeader, strings.Repeat("x", maxClientRequestIDLength+1))
		handler.ServeHTTP(httptest.NewRecorder(), req)

		if !strings.HasPrefix(seen, "req_") {
			t.Errorf("request id = %q, want generated id", seen)
		}
	})
}

func TestRecovery(t *testing.T) {
	var logs bytes.Buffer
	logger := slog.New(slog.NewJSONHandler(&logs, nil))

	handler := Recovery(logger)(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		panic("boom")
	}))

	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/api/documents/1", nil))

	if rec.Code != http.StatusInternalServerError {
		t.Errorf("status = %d, want 500", rec.Code)
	}
	if !strings.Contains(logs.String(), "panic recovered") {
		t.Errorf("panic not logged: %s", logs.String())
	}
}
