package get_user_bookings

import (
	"github.com/m04kA/SMC-CarRental/internal/api/handlers"
	"github.com/m04kA/SMC-CarRental/internal/domain"
)

// PageData данные страницы "My Bookings"
type PageData struct {
	LoggedIn bool
	Bookings []domain.Booking
	State    handlers.FetchState
}
