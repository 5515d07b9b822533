package session

import (
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// TokenExpiry читает claim exp из access токена без проверки подписи
// Подпись проверяет только backend; клиенту срок нужен лишь для диагностики
func TokenExpiry(token string) (time.Time, bool) {
	if token == "" {
		return time.Time{}, false
	}

	claims := jwt.MapClaims{}
	if _, _, err := jwt.NewParser().ParseUnverified(token, claims); err != nil {
		return time.Time{}, false
	}

	exp, err := claims.GetExpirationTime()
	if err != nil || exp == nil {
		return time.Time{}, false
	}
	return exp.Time, true
}

// IsTokenExpired returns true only if the token carries an exp claim in the past
func IsTokenExpired(token string, now time.Time) bool {
	exp, ok := TokenExpiry(token)
	if !ok {
		return false
	}
	return !now.Before(exp)
}
