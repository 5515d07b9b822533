package middleware

import (
	"net"
	"net/http"
	"net/url"
	"strings"

	"github.com/gorilla/mux"
)

// LoopbackHosts имена, под которыми фронтенд доступен локальному браузеру
var LoopbackHosts = []string{"localhost", "127.0.0.1", "::1"}

// AllowedHosts отклоняет запросы, у которых заголовок Host не из списка (DNS rebinding)
func AllowedHosts(hosts []string, logger Logger) mux.MiddlewareFunc {
	allowed := make(map[string]struct{}, len(hosts))
	for _, host := range hosts {
		allowed[strings.ToLower(host)] = struct{}{}
	}

	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if _, ok := allowed[hostname(r.Host)]; !ok {
				logger.Warn("%s %s - Forbidden host: host=%q, remote=%s", r.Method, r.URL.Path, r.Host, r.RemoteAddr)
				http.Error(w, "Forbidden", http.StatusForbidden)
				return
			}
			next.ServeHTTP(w, r)
		})
	}
}

// SameOrigin отклоняет изменяющие запросы, отправленные с чужих сайтов
// Проверяется Sec-Fetch-Site, а если браузер его не прислал, то Origin
// Запросы без обоих заголовков (не из браузера) пропускаются
func SameOrigin(logger Logger) mux.MiddlewareFunc {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if isSafeMethod(r.Method) || isSameOrigin(r) {
				next.ServeHTTP(w, r)
				return
			}

			logger.Warn("%s %s - Cross-origin request rejected: origin=%q, sec-fetch-site=%q",
				r.Method, r.URL.Path, r.Header.Get("Origin"), r.Header.Get("Sec-Fetch-Site"))
			http.Error(w, "Cross-origin request rejected", http.StatusForbidden)
		})
	}
}

func isSafeMethod(method string) bool {
	switch method {
	case http.MethodGet, http.MethodHead, http.MethodOptions:
		return true
	default:
		return false
	}
}

func isSameOrigin(r *http.Request) bool {
	switch r.Header.Get("Sec-Fetch-Site") {
	case "same-origin", "none":
		return true
	case "":
	default:
		return false
	}

	origin := r.Header.Get("Origin")
	if origin == "" {
		return true
	}
	u, err := url.Parse(origin)
	if err != nil || u.Host == "" {
		return false
	}
	return strings.EqualFold(u.Host, r.Host)
}

// hostname отрезает порт и квадратные скобки IPv6
func hostname(hostport string) string {
	host, _, err := net.SplitHostPort(hostport)
	if err != nil {
		host = strings.Trim(hostport, "[]")
	}
	return strings.ToLower(host)
}
