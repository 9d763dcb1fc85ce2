package middleware

import (
	"net/http"

	"github.com/google/uuid"

	"signet/internal/httputil"
)

// RequestIDHeader carries the request id in both directions.
const RequestIDHeader = "X-Request-Id"

const maxClientRequestIDLength = 128

// NewRequestID returns a fresh request id.
func NewRequestID() string {
	return "req_" + uuid.NewString()
}

// RequestID reuses a well-formed client request id or assigns a new one,
// echoes it in the response and stores it in the request context.
func RequestID(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		id := r.Header.Get(RequestIDHeader)
		if id == "" || len(id) > maxClientRequestIDLength {
			id = NewRequestID()
		}

		w.Header().Set(RequestIDHeader, id)
		next.ServeHTTP(w, r.WithContext(httputil.WithRequestID(r.Context(), id)))
	})
}
