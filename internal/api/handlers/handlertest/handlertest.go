// Package handlertest содержит общие помощники для тестов обработчиков экранов
package handlertest

import (
	"io"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-CarRental/internal/api/handlers"
	"github.com/m04kA/SMC-CarRental/internal/api/views"
	"github.com/m04kA/SMC-CarRental/internal/domain"
	"github.com/m04kA/SMC-CarRental/internal/session"
	"github.com/m04kA/SMC-CarRental/pkg/logger"
)

// Renderer возвращает рендерер на встроенных шаблонах
func Renderer(t *testing.T) *views.Renderer {
	t.Helper()
	r, err := views.New()
	require.NoError(t, err)
	return r
}

// Sessions возвращает хранилище сессии в памяти, при s != nil пользователь уже вошел
func Sessions(t *testing.T, s *domain.Session) *session.Store {
	t.Helper()
	store := session.NewStore(session.NewMemoryStorage(), logger.Discard())
	if s != nil {
		require.NoError(t, store.Set(s))
	}
	return store
}

// User обычный пользователь
func User() *domain.Session {
	return &domain.Session{ID: 7, Username: "alice", Roles: []string{domain.RoleUser}, Token: "user-token"}
}

// Admin администратор
func Admin() *domain.Session {
	return &domain.Session{ID: 1, Username: "root", Roles: []string{domain.RoleAdmin}, Token: "admin-token"}
}

// PostForm собирает POST запрос с телом формы
func PostForm(target string, values url.Values) *http.Request {
	req := httptest.NewRequest(http.MethodPost, target, strings.NewReader(values.Encode()))
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	return req
}

// Body возвращает тело ответа строкой
func Body(t *testing.T, rec *httptest.ResponseRecorder) string {
	t.Helper()
	data, err := io.ReadAll(rec.Result().Body)
	require.NoError(t, err)
	return string(data)
}

// Flash возвращает уведомление, установленное ответом, или nil
func Flash(rec *httptest.ResponseRecorder) *handlers.Notice {
	for _, c := range rec.Result().Cookies() {
		if c.Name != handlers.FlashCookie || c.MaxAge < 0 || c.Value == "" {
			continue
		}
		req := httptest.NewRequest(http.MethodGet, "/", nil)
		req.AddCookie(c)
		return handlers.PopFlash(httptest.NewRecorder(), req)
	}
	return nil
}
