package middleware

import (
	"net/http"

	"convenios/internal/platform/logger"
	pnet "convenios/internal/platform/net"
)

// LoggerContext copies the chi request id into the logger context so
// logger.C picks it up anywhere downstream of the router
func LoggerContext() func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if id := pnet.RequestID(r.Context()); id != "" {
				r = r.WithContext(logger.WithRequest(r.Context(), id))
			}
			next.ServeHTTP(w, r)
		})
	}
}
