package login

import (
	"context"
	"net/http"
	"net/http/httptest"
	"net/url"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/m04kA/SMC-CarRental/internal/api/handlers/handlertest"
	"github.com/m04kA/SMC-CarRental/internal/integrations/rentalapi"
	"github.com/m04kA/SMC-CarRental/pkg/logger"
)

type authServiceMock struct {
	calls int
	login func(ctx context.Context, username, password string) (*rentalapi.LoginResponse, error)
}

func (m *authServiceMock) Login(ctx context.Context, username, password string) (*rentalapi.LoginResponse, error) {
	m.calls++
	return m.login(ctx, username, password)
}

func newHandler(t *testing.T, auth AuthService) *Handler {
	return NewHandler(auth, handlertest.Sessions(t, nil), handlertest.Renderer(t), logger.Discard())
}

func TestShow(t *testing.T) {
	rec := httptest.NewRecorder()
	newHandler(t, &authServiceMock{}).Show(rec, httptest.NewRequest(http.MethodGet, "/login", nil))

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, handlertest.Body(t, rec), `action="/login"`)
}

func TestHandle_Success(t *testing.T) {
	auth := &authServiceMock{login: func(_ context.Context, username, password string) (*rentalapi.LoginResponse, error) {
		assert.Equal(t, "alice", username)
		assert.Equal(t, "secret", password)
		return &rentalapi.LoginResponse{ID: 7, Username: "alice", AccessToken: "token"}, nil
	}}

	rec := httptest.NewRecorder()
	newHandler(t, auth).Handle(rec, handlertest.PostForm("/login", url.Values{
		"username": {" alice "},
		"password": {"secret"},
	}))

	assert.Equal(t, http.StatusSeeOther, rec.Code)
	assert.Equal(t, SuccessPath, rec.Header().Get("Location"))
}

func TestHandle_RequiredFields(t *testing.T) {
	auth := &authServiceMock{}

	rec := httptest.NewRecorder()
	newHandler(t, auth).Handle(rec, handlertest.PostForm("/login", url.Values{"username": {"alice"}}))

	assert.Equal(t, http.StatusUnprocessableEntity, rec.Code)
	assert.Contains(t, handlertest.Body(t, rec), msgFieldsRequired)
	assert.Zero(t, auth.calls)
}

func TestHandle_BackendError(t *testing.T) {
	tests := []struct {
		name    string
		err     error
		message string
	}{
		{
			name:    "server message",
			err:     rentalapi.NewStatusError("auth.login", http.StatusUnauthorized, "Bad credentials"),
			message: "Bad credentials",
		},
		{
			name:    "fallback",
			err:     context.DeadlineExceeded,
			message: msgLoginFailed,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			auth := &authServiceMock{login: func(context.Context, string, string) (*rentalapi.LoginResponse, error) {
				return nil, tt.err
			}}

			rec := httptest.NewRecorder()
			newHandler(t, auth).Handle(rec, handlertest.PostForm("/login", url.Values{
				"username": {"alice"},
				"password": {"wrong"},
			}))

			body := handlertest.Body(t, rec)
			assert.Equal(t, http.StatusUnauthorized, rec.Code)
			assert.Contains(t, body, tt.message)
			assert.Contains(t, body, `value="alice"`)
		})
	}
}
