package handlers

import (
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-CarRental/internal/domain"
)

func TestFlash_RoundTrip(t *testing.T) {
	rec := httptest.NewRecorder()
	SetFlash(rec, SeveritySuccess, "Car booked successfully!")

	cookies := rec.Result().Cookies()
	require.Len(t, cookies, 1)

	req := httptest.NewRequest(http.MethodGet, "/cars/1", nil)
	req.AddCookie(cookies[0])

	rec = httptest.NewRecorder()
	notice := PopFlash(rec, req)
	require.NotNil(t, notice)
	assert.Equal(t, "Car booked successfully!", notice.Message)
	assert.Equal(t, SeveritySuccess, notice.Severity)

	// cookie удаляется после чтения
	cleared := rec.Result().Cookies()
	require.Len(t, cleared, 1)
	assert.True(t, cleared[0].MaxAge < 0)
}

func TestFlash_Garbage(t *testing.T) {
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.AddCookie(&http.Cookie{Name: FlashCookie, Value: "%%%"})
	assert.Nil(t, PopFlash(httptest.NewRecorder(), req))

	assert.Nil(t, PopFlash(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, "/", nil)))
}

func TestValidateForm(t *testing.T) {
	type form struct {
		Username string  `validate:"required"`
		Email    string  `validate:"required,email"`
		Price    float64 `validate:"gt=0"`
	}

	assert.Empty(t, ValidateForm(form{Username: "bob", Email: "bob@mail.com", Price: 10}))

	msg := ValidateForm(form{Email: "nope", Price: 0})
	assert.Contains(t, msg, "Username is required.")
	assert.Contains(t, msg, "Email must be a valid email address.")
	assert.Contains(t, msg, "Price must be greater than 0.")
}

func TestNavFor(t *testing.T) {
	assert.Equal(t, false, NavFor(nil).LoggedIn)

	nav := NavFor(&domain.Session{Username: "alice", Roles: []string{domain.RoleUser}})
	assert.True(t, nav.LoggedIn)
	assert.False(t, nav.IsAdmin)
	assert.Equal(t, "alice", nav.Username)

	assert.True(t, NavFor(&domain.Session{Roles: []string{domain.RoleAdmin}}).IsAdmin)
}

func TestFetchState(t *testing.T) {
	assert.True(t, Succeeded(0).IsEmpty())
	assert.True(t, Succeeded(2).IsSuccess())
	assert.True(t, Failed("x").IsError())
	assert.Equal(t, "x", Failed("x").Error)
	assert.True(t, NotFound().IsNotFound())
}

func TestParseCarForm(t *testing.T) {
	newRequest := func(values url.Values) *http.Request {
		req := httptest.NewRequest(http.MethodPost, "/admin/cars", strings.NewReader(values.Encode()))
		req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
		return req
	}

	t.Run("valid", func(t *testing.T) {
		form, car, msg := ParseCarForm(newRequest(url.Values{
			"brand":        {"Toyota"},
			"name":         {"Camry"},
			"type":         {"Sedan"},
			"transmission": {"Automatic"},
			"modelYear":    {"2022"},
			"price":        {"40"},
		}), "/admin/cars", "Add Car")

		assert.Empty(t, msg)
		assert.Equal(t, "Toyota", car.Brand)
		assert.Equal(t, 2022, car.ModelYear)
		assert.Equal(t, 40.0, car.Price)
		assert.Equal(t, "/admin/cars", form.Action)
	})

	t.Run("non numeric price", func(t *testing.T) {
		form, _, msg := ParseCarForm(newRequest(url.Values{
			"brand": {"Toyota"}, "name": {"Camry"}, "type": {"Sedan"},
			"transmission": {"Manual"}, "price": {"abc"},
		}), "/admin/cars", "Add Car")

		assert.Equal(t, "Price must be a number.", msg)
		assert.Equal(t, "abc", form.Price)
	})

	t.Run("validation", func(t *testing.T) {
		_, _, msg := ParseCarForm(newRequest(url.Values{
			"transmission": {"Manual"}, "price": {"0"},
		}), "/admin/cars", "Add Car")

		assert.Contains(t, msg, "Brand is required.")
		assert.Contains(t, msg, "Type is required.")
		assert.Contains(t, msg, "Price must be greater than 0.")
	})

	t.Run("type outside the suggestions", func(t *testing.T) {
		form, car, msg := ParseCarForm(newRequest(url.Values{
			"brand": {"Honda"}, "name": {"Jazz"}, "type": {" Hatchback "},
			"transmission": {"CVT"}, "price": {"35"},
		}), "/admin/cars/4", "Save")

		require.Empty(t, msg)
		assert.Equal(t, "Hatchback", car.Type)
		assert.Equal(t, "CVT", car.Transmission)
		assert.Equal(t, "Hatchback", form.Type)
	})
}

func TestCarFormFrom(t *testing.T) {
	form := CarFormFrom(domain.Car{Brand: "BMW", Name: "M3", Type: "Sports", ModelYear: 2020, Price: 120.5},
		"/admin/cars/3", "Save")

	assert.Equal(t, "BMW", form.Brand)
	assert.Equal(t, "2020", form.ModelYear)
	assert.Equal(t, "120.5", form.Price)
	assert.Equal(t, "Sports", form.Type)
	assert.Equal(t, domain.CarTypes, form.CarTypes)
}
