package home

import (
	"github.com/m04kA/SMC-CarRental/internal/api/handlers"
	"github.com/m04kA/SMC-CarRental/internal/domain"
)

// PageData данные главной страницы
type PageData struct {
	LoggedIn bool
	Bookings []domain.Booking
	State    handlers.FetchState
}
