package middleware

import (
	"net/http"
	"runtime/debug"

	"github.com/gorilla/mux"
)

// Recover перехватывает панику в обработчике и отвечает 500
func Recover(logger Logger) mux.MiddlewareFunc {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			defer func() {
				if rec := recover(); rec != nil {
					logger.Error("%s %s - Panic recovered: %v\n%s", r.Method, r.URL.Path, rec, debug.Stack())
					w.Header().Set("Connection", "close")
					http.Error(w, "Internal server error", http.StatusInternalServerError)
				}
			}()

			next.ServeHTTP(w, r)
		})
	}
}
