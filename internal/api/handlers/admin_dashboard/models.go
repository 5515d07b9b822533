package admin_dashboard

import (
	"github.com/m04kA/SMC-CarRental/internal/api/handlers"
	"github.com/m04kA/SMC-CarRental/internal/domain"
)

// CreateCarPath адрес формы добавления автомобиля
const CreateCarPath = "/admin/cars"

// PageData данные панели администратора
type PageData struct {
	Cars          []domain.Car
	CarsState     handlers.FetchState
	Bookings      []domain.Booking
	BookingsState handlers.FetchState
	Form          handlers.CarForm
	FormError     string
}
