package server

import (
	"log/slog"
	"net/http"
)

// Recovery turns a panic in a downstream handler into a 500 response and
// logs the recovered value.
func Recovery(logger *slog.Logger) Middleware {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			defer func() {
				if err := recover(); err != nil {
					logger.Error("panic recovered",
						"method", r.Method,
						"uri", r.URL.RequestURI(),
						"request_id", RequestIDFromContext(r.Context()),
						"panic", err,
					)
					http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
				}
			}()

			next.ServeHTTP(w, r)
		})
	}
}
