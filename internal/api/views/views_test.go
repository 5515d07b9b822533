package views

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMoney(t *testing.T) {
	assert.Equal(t, "$80", Money(80))
	assert.Equal(t, "$12.50", Money(12.5))
	assert.Equal(t, "$0", Money(0))
	price := 0.1
	assert.Equal(t, "$0.30", Money(price*3))
	assert.Equal(t, "$99.99", Money(99.99))
	assert.Equal(t, "$100", Money(99.999))
}

func TestDate(t *testing.T) {
	assert.Equal(t, "2024-03-01", Date("2024-03-01T00:00:00"))
	assert.Equal(t, "2024-03-01", Date("2024-03-01"))
	assert.Equal(t, "", Date(""))
}

func TestRenderer_Render(t *testing.T) {
	r, err := New()
	require.NoError(t, err)

	rec := httptest.NewRecorder()
	err = r.Render(rec, http.StatusOK, "login", Page{
		Title:  "Login",
		Notice: &Notice{Message: "Registered successfully", Severity: "success"},
		Data:   struct{ Username, Error string }{Username: "bob"},
	})
	require.NoError(t, err)

	body := rec.Body.String()
	assert.Equal(t, "text/html; charset=utf-8", rec.Header().Get("Content-Type"))
	assert.Contains(t, body, "Registered successfully")
	assert.Contains(t, body, `href="/login"`)
	assert.Contains(t, body, `href="/register"`)
	assert.NotContains(t, body, `href="/admin"`)
}

func TestRenderer_NavForAdmin(t *testing.T) {
	r, err := New()
	require.NoError(t, err)

	rec := httptest.NewRecorder()
	err = r.Render(rec, http.StatusOK, "home", Page{
		Nav:  Nav{LoggedIn: true, Username: "root", IsAdmin: true},
		Data: struct{ LoggedIn bool }{},
	})
	require.NoError(t, err)

	body := rec.Body.String()
	assert.Contains(t, body, `href="/admin"`)
	assert.Contains(t, body, `href="/my-bookings"`)
	assert.Contains(t, body, `action="/logout"`)
	assert.NotContains(t, body, `href="/register"`)
}

func TestRenderer_UnknownPage(t *testing.T) {
	r, err := New()
	require.NoError(t, err)

	err = r.Render(httptest.NewRecorder(), http.StatusOK, "missing", Page{})
	assert.Error(t, err)
}
