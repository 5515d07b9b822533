package get_user_bookings

import (
	"context"
	"net/http"

	"github.com/m04kA/SMC-CarRental/internal/api/views"
	"github.com/m04kA/SMC-CarRental/internal/domain"
)

type BookingService interface {
	ListByUser(ctx context.Context, userID int64) ([]domain.Booking, error)
}

type SessionReader interface {
	Current() *domain.Session
}

type Renderer interface {
	Render(w http.ResponseWriter, status int, name string, page views.Page) error
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
