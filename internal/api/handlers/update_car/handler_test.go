package update_car

import (
	"context"
	"net/http"
	"net/http/httptest"
	"net/url"
	"testing"

	"github.com/gorilla/mux"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-CarRental/internal/api/handlers/handlertest"
	"github.com/m04kA/SMC-CarRental/internal/domain"
	"github.com/m04kA/SMC-CarRental/internal/integrations/rentalapi"
	"github.com/m04kA/SMC-CarRental/pkg/logger"
)

type carServiceMock struct {
	car     *domain.Car
	getErr  error
	updated map[int64]domain.Car
	err     error
}

func (m *carServiceMock) GetByID(context.Context, int64) (*domain.Car, error) {
	return m.car, m.getErr
}

func (m *carServiceMock) Update(_ context.Context, id int64, car domain.Car) (*domain.Car, error) {
	if m.updated == nil {
		m.updated = make(map[int64]domain.Car)
	}
	m.updated[id] = car
	if m.err != nil {
		return nil, m.err
	}
	return &car, nil
}

func newRouter(t *testing.T, service CarService) *mux.Router {
	h := NewHandler(service, handlertest.Sessions(t, handlertest.Admin()), handlertest.Renderer(t), logger.Discard())
	r := mux.NewRouter()
	r.HandleFunc("/admin/cars/{id}/edit", h.Show).Methods(http.MethodGet)
	r.HandleFunc("/admin/cars/{id}", h.Handle).Methods(http.MethodPost)
	return r
}

func TestShow(t *testing.T) {
	service := &carServiceMock{car: &domain.Car{ID: 2, Brand: "Ford", Name: "Focus", Type: "Sedan",
		Transmission: "Manual", Price: 30}}
	rec := httptest.NewRecorder()
	newRouter(t, service).ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/admin/cars/2/edit", nil))

	body := handlertest.Body(t, rec)
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, body, "Edit Car #2")
	assert.Contains(t, body, `action="/admin/cars/2"`)
	assert.Contains(t, body, `value="Focus"`)
	assert.Contains(t, body, `name="transmission" value="Manual"`)
	assert.Contains(t, body, `<datalist id="car-types">`)
}

func TestEdit_KeepsTypeOutsideSuggestions(t *testing.T) {
	service := &carServiceMock{car: &domain.Car{ID: 4, Brand: "Honda", Name: "Jazz", Type: "Hatchback",
		Transmission: "CVT", Price: 35}}
	r := newRouter(t, service)

	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/admin/cars/4/edit", nil))
	body := handlertest.Body(t, rec)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, body, `name="type" value="Hatchback"`)
	assert.Contains(t, body, `name="transmission" value="CVT"`)

	// форма отправлена без изменений
	rec = httptest.NewRecorder()
	r.ServeHTTP(rec, handlertest.PostForm("/admin/cars/4", url.Values{
		"brand":        {"Honda"},
		"name":         {"Jazz"},
		"type":         {"Hatchback"},
		"transmission": {"CVT"},
		"price":        {"35"},
	}))

	assert.Equal(t, http.StatusSeeOther, rec.Code)
	require.Contains(t, service.updated, int64(4))
	assert.Equal(t, "Hatchback", service.updated[4].Type)
	assert.Equal(t, "CVT", service.updated[4].Transmission)
}

func TestShow_NotFound(t *testing.T) {
	service := &carServiceMock{getErr: rentalapi.NewStatusError("cars.get", http.StatusNotFound, "")}
	rec := httptest.NewRecorder()
	newRouter(t, service).ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/admin/cars/2/edit", nil))

	assert.Equal(t, http.StatusNotFound, rec.Code)
	assert.Contains(t, handlertest.Body(t, rec), "Car not found.")
}

func TestHandle(t *testing.T) {
	service := &carServiceMock{}
	rec := httptest.NewRecorder()
	newRouter(t, service).ServeHTTP(rec, handlertest.PostForm("/admin/cars/2", url.Values{
		"brand":        {"Ford"},
		"name":         {"Focus ST"},
		"type":         {"Sports"},
		"transmission": {"Manual"},
		"price":        {"45.5"},
	}))

	assert.Equal(t, http.StatusSeeOther, rec.Code)
	assert.Equal(t, dashboardPath, rec.Header().Get("Location"))
	notice := handlertest.Flash(rec)
	require.NotNil(t, notice)
	assert.Equal(t, msgCarUpdated, notice.Message)

	require.Contains(t, service.updated, int64(2))
	assert.Equal(t, int64(2), service.updated[2].ID)
	assert.Equal(t, "Focus ST", service.updated[2].Name)
	assert.Equal(t, 45.5, service.updated[2].Price)
}

func TestHandle_Failure(t *testing.T) {
	service := &carServiceMock{err: rentalapi.NewStatusError("cars.update", http.StatusBadRequest, "Price is too high")}
	rec := httptest.NewRecorder()
	newRouter(t, service).ServeHTTP(rec, handlertest.PostForm("/admin/cars/2", url.Values{
		"brand":        {"Ford"},
		"name":         {"Focus"},
		"type":         {"Sedan"},
		"transmission": {"Manual"},
		"price":        {"9999"},
	}))

	body := handlertest.Body(t, rec)
	assert.Equal(t, http.StatusUnprocessableEntity, rec.Code)
	assert.Contains(t, body, "Price is too high")
	assert.Contains(t, body, `value="9999"`)
}
