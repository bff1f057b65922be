package middleware

import (
	"encoding/json"
	"fmt"
	"net/http"

	"go.uber.org/zap"
)

// Recoverer is the process-wide fallback: anything a handler lets escape
// becomes a generic 500 in the standard response envelope.
func Recoverer(logger *zap.Logger) func(http.Handler) http.Handler {
	log := logger.Named("Recoverer")
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			defer func() {
				if rec := recover(); rec != nil {
					log.Error("Panic recovered while handling request",
						zap.String("method", r.Method),
						zap.String("path", r.URL.Path),
						zap.Any("panic", rec))
					w.Header().Set("Content-Type", "application/json")
					w.WriteHeader(http.StatusInternalServerError)
					json.NewEncoder(w).Encode(map[string]interface{}{
						"success": false,
						"message": "Something went wrong!",
						"error":   fmt.Sprintf("%v", rec),
					})
				}
			}()
			next.ServeHTTP(w, r)
		})
	}
}
