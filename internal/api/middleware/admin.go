package middleware

import (
	"net/http"

	"github.com/gorilla/mux"
)

// LoginPath страница, куда отправляется пользователь без прав администратора
const LoginPath = "/login"

// AdminOnly пропускает запрос только при наличии роли администратора в сессии
// Сессия перечитывается на каждом запросе: вход и выход действуют сразу
// Это ограничение интерфейса, права по-прежнему проверяет backend
func AdminOnly(sessions AdminChecker, logger Logger) mux.MiddlewareFunc {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if !sessions.IsAdmin() {
				logger.Warn("%s %s - Access denied: admin role required, redirecting to %s",
					r.Method, r.URL.Path, LoginPath)
				http.Redirect(w, r, LoginPath, http.StatusFound)
				return
			}
			next.ServeHTTP(w, r)
		})
	}
}
