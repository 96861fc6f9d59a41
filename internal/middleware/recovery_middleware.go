package middleware

import (
	"fmt"
	"net/http"
	"runtime/debug"

	"notes-api/pkg/response"

	"go.uber.org/zap"
)

// RecoveryMiddleware turns handler panics into 500 responses with the panic
// and stack logged.
func RecoveryMiddleware(log *zap.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			defer func() {
				if rec := recover(); rec != nil {
					log.Error("handler panic",
						zap.String("method", r.Method),
						zap.String("path", r.URL.Path),
						zap.String("panic", fmt.Sprintf("%v", rec)),
						zap.String("stack", string(debug.Stack())),
					)
					response.Message(w, http.StatusInternalServerError, "internal error")
				}
			}()

			next.ServeHTTP(w, r)
		})
	}
}
