package admin_dashboard

import (
	"context"
	"net/http"

	"github.com/m04kA/SMC-CarRental/internal/api/views"
	"github.com/m04kA/SMC-CarRental/internal/domain"
)

type CarService interface {
	List(ctx context.Context) ([]domain.Car, error)
}

type BookingService interface {
	ListAll(ctx context.Context) ([]domain.Booking, error)
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
