package rentalapi

import (
	"context"
	"fmt"
	"net/http"

	"github.com/m04kA/SMC-CarRental/internal/domain"
)

var (
	opLogin    = operation{name: "auth.login", fallback: "Failed to login. Please try again."}
	opRegister = operation{name: "auth.register", fallback: "Failed to register. Please try again."}
)

// AuthService вызовы аутентификации
type AuthService struct {
	client *Client
}

// Login выполняет вход и сохраняет сессию
// Это единственный путь записи сессии, кроме Logout
func (s *AuthService) Login(ctx context.Context, username, password string) (*LoginResponse, error) {
	var resp LoginResponse
	if err := s.client.do(ctx, opLogin, http.MethodPost, "/auth/login", nil,
		LoginRequest{Username: username, Password: password}, &resp); err != nil {
		return nil, err
	}

	if resp.AccessToken == "" {
		s.client.log.Warn("Login: backend returned no access token for user=%s, session not stored", username)
		return &resp, nil
	}

	if err := s.client.sessions.Set(&domain.Session{
		ID:       resp.ID,
		Username: resp.Username,
		Roles:    resp.Roles,
		Token:    resp.AccessToken,
	}); err != nil {
		s.client.log.Error("Login: failed to store session for user=%s: %v", username, err)
		return nil, &APIError{Op: opLogin.name, Message: opLogin.fallback, kind: ErrInternal,
			cause: fmt.Errorf("failed to store session: %w", err)}
	}

	s.client.log.Info("Login: user=%s id=%d logged in, roles=%v", resp.Username, resp.ID, resp.Roles)
	return &resp, nil
}

// Register регистрирует пользователя, сессию не меняет
func (s *AuthService) Register(ctx context.Context, req RegisterRequest) (*MessageResponse, error) {
	var resp MessageResponse
	if err := s.client.do(ctx, opRegister, http.MethodPost, "/auth/signup", nil, req, &resp); err != nil {
		return nil, err
	}
	return &resp, nil
}

// Logout удаляет сессию (токен и запись пользователя вместе)
func (s *AuthService) Logout() error {
	return s.client.sessions.Clear()
}
