package middleware

import (
	"net/http"

	"github.com/google/uuid"

	"github.com/J0SEF4/HackathonSaludIA/internal/infrastructure/observability"
)

// RequestIDHeader carries the request correlation ID.
const RequestIDHeader = "X-Request-ID"

// RequestIDMiddleware accepts an incoming request ID or assigns a fresh one,
// echoes it on the response, and stores it on the context for log
// enrichment.
func RequestIDMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		requestID := r.Header.Get(RequestIDHeader)
		if requestID == "" {
			requestID = uuid.New().String()
		}

		w.Header().Set(RequestIDHeader, requestID)
		ctx := observability.WithRequestID(r.Context(), requestID)

		next.ServeHTTP(w, r.WithContext(ctx))
	})
}
