package app

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"net/url"
	"path/filepath"
	"regexp"
	"strings"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-CarRental/internal/config"
	"github.com/m04kA/SMC-CarRental/internal/domain"
	"github.com/m04kA/SMC-CarRental/internal/integrations/rentalapi"
	"github.com/m04kA/SMC-CarRental/pkg/logger"
)

var draftIDPattern = regexp.MustCompile(`name="draftId" value="([^"]+)"`)

// localOrigin адрес, под которым браузер пользователя открывает фронтенд
const localOrigin = "http://127.0.0.1:3000"

// fakeBackend REST backend проката в памяти
type fakeBackend struct {
	mu       sync.Mutex
	drafts   []domain.BookingDraft
	authSeen []string
	deleted  []string
	carCalls int
}

func (b *fakeBackend) handler() http.Handler {
	mux := http.NewServeMux()

	mux.HandleFunc("POST /api/auth/login", func(w http.ResponseWriter, r *http.Request) {
		var req rentalapi.LoginRequest
		_ = json.NewDecoder(r.Body).Decode(&req)

		switch {
		case req.Username == "alice" && req.Password == "secret":
			writeJSON(w, http.StatusOK, rentalapi.LoginResponse{
				ID: 7, Username: "alice", Roles: []string{domain.RoleUser}, AccessToken: "user-token",
			})
		case req.Username == "root" && req.Password == "secret":
			writeJSON(w, http.StatusOK, rentalapi.LoginResponse{
				ID: 1, Username: "root", Roles: []string{domain.RoleAdmin}, AccessToken: "admin-token",
			})
		default:
			writeJSON(w, http.StatusUnauthorized, map[string]string{"message": "Bad credentials"})
		}
	})

	mux.HandleFunc("GET /api/cars/{id}", func(w http.ResponseWriter, r *http.Request) {
		b.mu.Lock()
		b.carCalls++
		b.mu.Unlock()

		if r.PathValue("id") != "5" {
			writeJSON(w, http.StatusNotFound, map[string]string{"message": "Car not found"})
			return
		}
		writeJSON(w, http.StatusOK, domain.Car{ID: 5, Brand: "Toyota", Name: "Camry", Type: "Sedan", Price: 40})
	})

	mux.HandleFunc("GET /api/cars", func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, http.StatusOK, []domain.Car{{ID: 5, Brand: "Toyota", Name: "Camry", Price: 40}})
	})

	mux.HandleFunc("DELETE /api/cars/{id}", func(w http.ResponseWriter, r *http.Request) {
		b.mu.Lock()
		b.deleted = append(b.deleted, r.PathValue("id"))
		b.mu.Unlock()
		w.WriteHeader(http.StatusNoContent)
	})

	mux.HandleFunc("GET /api/bookings", func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, http.StatusOK, []domain.Booking{})
	})

	mux.HandleFunc("POST /api/bookings", func(w http.ResponseWriter, r *http.Request) {
		var draft domain.BookingDraft
		_ = json.NewDecoder(r.Body).Decode(&draft)

		b.mu.Lock()
		b.drafts = append(b.drafts, draft)
		b.authSeen = append(b.authSeen, r.Header.Get("Authorization"))
		b.mu.Unlock()

		writeJSON(w, http.StatusCreated, domain.Booking{ID: 1, TotalPrice: draft.TotalPrice, Status: draft.Status})
	})

	return mux
}

func writeJSON(w http.ResponseWriter, status int, v interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

type testApp struct {
	*App
	backend *fakeBackend
	cfg     *config.Config
}

func newTestApp(t *testing.T) *testApp {
	backend := &fakeBackend{}
	server := httptest.NewServer(backend.handler())
	t.Cleanup(server.Close)

	cfg := config.Default()
	cfg.Backend.URL = server.URL + "/api"
	cfg.Session.File = filepath.Join(t.TempDir(), "session.json")
	cfg.Metrics.Enabled = true

	a, err := New(cfg, logger.Discard())
	require.NoError(t, err)
	t.Cleanup(a.Close)

	return &testApp{App: a, backend: backend, cfg: cfg}
}

func (a *testApp) serve(req *http.Request) *httptest.ResponseRecorder {
	rec := httptest.NewRecorder()
	a.Handler().ServeHTTP(rec, req)
	return rec
}

func (a *testApp) get(target string) *httptest.ResponseRecorder {
	return a.serve(httptest.NewRequest(http.MethodGet, localOrigin+target, nil))
}

// post отправляет форму так, как ее отправляет браузер со страницы фронтенда
func (a *testApp) post(target string, values url.Values) *httptest.ResponseRecorder {
	return a.serve(a.formRequest(target, values, localOrigin))
}

func (a *testApp) formRequest(target string, values url.Values, origin string) *http.Request {
	req := httptest.NewRequest(http.MethodPost, localOrigin+target, strings.NewReader(values.Encode()))
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	req.Header.Set("Origin", origin)
	return req
}

func (a *testApp) login(t *testing.T, username string) {
	rec := a.post("/login", url.Values{"username": {username}, "password": {"secret"}})
	require.Equal(t, http.StatusSeeOther, rec.Code)
	require.Equal(t, "/cars", rec.Header().Get("Location"))
}

func (a *testApp) review(t *testing.T) string {
	rec := a.post("/cars/5/book", url.Values{"pickupDate": {"2024-03-01"}, "returnDate": {"2024-03-03"}})
	require.Equal(t, http.StatusOK, rec.Code)
	body := rec.Body.String()
	require.Contains(t, body, `<td id="total-price">$80</td>`)

	match := draftIDPattern.FindStringSubmatch(body)
	require.Len(t, match, 2)
	return match[1]
}

func TestBookingJourney(t *testing.T) {
	a := newTestApp(t)

	// без сессии кнопки бронирования нет
	rec := a.get("/cars/5")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.NotContains(t, rec.Body.String(), "Book Now")
	assert.Contains(t, rec.Body.String(), `href="/login"`)

	a.login(t, "alice")

	rec = a.get("/cars/5")
	body := rec.Body.String()
	assert.Contains(t, body, "Book Now")
	assert.Contains(t, body, `href="/my-bookings"`)
	assert.NotContains(t, body, `href="/admin"`)

	draftID := a.review(t)
	rec = a.post("/cars/5/book/confirm", url.Values{"draftId": {draftID}})
	assert.Equal(t, http.StatusSeeOther, rec.Code)
	assert.Equal(t, "/cars/5", rec.Header().Get("Location"))

	require.Len(t, a.backend.drafts, 1)
	assert.Equal(t, domain.BookingDraft{
		Car:        domain.CarRef{ID: 5},
		User:       domain.UserRef{ID: 7},
		PickupDate: "2024-03-01T00:00:00",
		ReturnDate: "2024-03-03T00:00:00",
		TotalPrice: 80,
		Status:     domain.StatusPending,
	}, a.backend.drafts[0])
	assert.Equal(t, []string{"Bearer user-token"}, a.backend.authSeen)
}

func TestAdminGuard(t *testing.T) {
	a := newTestApp(t)

	rec := a.get("/admin")
	assert.Equal(t, http.StatusFound, rec.Code)
	assert.Equal(t, "/login", rec.Header().Get("Location"))

	a.login(t, "alice")
	assert.Equal(t, http.StatusFound, a.get("/admin").Code)

	a.post("/logout", nil)
	a.login(t, "root")

	rec = a.get("/admin")
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "Admin Dashboard")

	// после выхода охрана срабатывает сразу
	rec = a.post("/logout", nil)
	assert.Equal(t, "/login", rec.Header().Get("Location"))
	assert.Nil(t, a.Sessions().Current())

	rec = a.get("/admin")
	assert.Equal(t, http.StatusFound, rec.Code)
	assert.Equal(t, "/login", rec.Header().Get("Location"))
}

func TestDraftsDroppedOnSessionChange(t *testing.T) {
	a := newTestApp(t)
	a.login(t, "alice")
	draftID := a.review(t)

	a.post("/logout", nil)
	a.login(t, "root")

	rec := a.post("/cars/5/book/confirm", url.Values{"draftId": {draftID}})
	assert.Equal(t, "/cars/5/book", rec.Header().Get("Location"))
	assert.Empty(t, a.backend.drafts)
}

func TestSessionSurvivesRestart(t *testing.T) {
	a := newTestApp(t)
	a.login(t, "alice")

	restarted, err := New(a.cfg, logger.Discard())
	require.NoError(t, err)
	defer restarted.Close()

	current := restarted.Sessions().Current()
	require.NotNil(t, current)
	assert.Equal(t, "alice", current.Username)
	assert.Equal(t, "user-token", current.Token)
}

func TestLoginFailureShowsServerMessage(t *testing.T) {
	a := newTestApp(t)

	rec := a.post("/login", url.Values{"username": {"alice"}, "password": {"nope"}})
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
	assert.Contains(t, rec.Body.String(), "Bad credentials")
	assert.Nil(t, a.Sessions().Current())
}

func TestMetricsEndpoint(t *testing.T) {
	a := newTestApp(t)
	a.get("/cars")
	a.login(t, "alice")

	rec := a.get(a.cfg.Metrics.Path)
	require.Equal(t, http.StatusOK, rec.Code)

	body := rec.Body.String()
	assert.Contains(t, body, `http_requests_total{method="GET",route="/cars",service="car-rental-web",status="200"} 1`)
	assert.Contains(t, body, `backend_requests_total{operation="auth.login",service="car-rental-web",status="200"} 1`)
	assert.Contains(t, body, `session_active{service="car-rental-web"} 1`)
}

func TestCrossSiteRequestsRejected(t *testing.T) {
	a := newTestApp(t)
	a.login(t, "root")

	t.Run("form post from another site", func(t *testing.T) {
		req := a.formRequest("/admin/cars/5/delete", nil, "http://evil.example")
		req.Header.Set("Sec-Fetch-Site", "cross-site")

		rec := a.serve(req)
		assert.Equal(t, http.StatusForbidden, rec.Code)
		assert.Empty(t, a.backend.deleted)
	})

	t.Run("request through a foreign host name", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "http://evil.example:3000/admin", nil)
		req.RemoteAddr = "192.168.1.77:51000"

		rec := a.serve(req)
		assert.Equal(t, http.StatusForbidden, rec.Code)
		assert.NotContains(t, rec.Body.String(), "Admin Dashboard")
	})

	t.Run("same-origin post still works", func(t *testing.T) {
		rec := a.post("/admin/cars/5/delete", nil)
		assert.Equal(t, http.StatusSeeOther, rec.Code)
		assert.Equal(t, "/admin", rec.Header().Get("Location"))
		assert.Equal(t, []string{"5"}, a.backend.deleted)
	})
}

func TestReviewValidationSkipsBackend(t *testing.T) {
	a := newTestApp(t)
	a.login(t, "alice")

	rec := a.post("/cars/5/book", url.Values{"pickupDate": {"2024-03-05"}, "returnDate": {"2024-03-01"}})
	assert.Equal(t, http.StatusUnprocessableEntity, rec.Code)
	assert.Contains(t, rec.Body.String(), "Return date must be after pickup date!")
	assert.Zero(t, a.backend.carCalls)
}
