package router

import (
	"net/http"

	"github.com/google/uuid"

	"github.com/nutrascore/review-trust-api/internal/domain"
)

const requestIDHeader = "X-Request-ID"

// requestIDMiddleware tags every request with an ID, honoring one supplied
// by an upstream proxy, and threads it through the context logger.
func requestIDMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		requestID := r.Header.Get(requestIDHeader)
		if requestID == "" {
			requestID = uuid.NewString()
		}

		w.Header().Set(requestIDHeader, requestID)

		ctx := domain.ContextWithRequestID(r.Context(), requestID)
		logger := domain.LoggerFromContext(ctx).With("request_id", requestID)
		ctx = domain.ContextWithLogger(ctx, logger)

		next.ServeHTTP(w, r.WithContext(ctx))
	})
}
