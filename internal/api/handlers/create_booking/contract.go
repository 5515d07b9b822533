package create_booking

import (
	"context"
	"net/http"

	"github.com/m04kA/SMC-CarRental/internal/api/views"
	"github.com/m04kA/SMC-CarRental/internal/domain"
	createBooking "github.com/m04kA/SMC-CarRental/internal/usecase/create_booking"
)

type CreateBookingUseCase interface {
	Review(ctx context.Context, req *createBooking.ReviewRequest) (*createBooking.Summary, error)
	Get(draftID string) (*createBooking.Summary, error)
	Confirm(ctx context.Context, req *createBooking.ConfirmRequest) (*domain.Booking, error)
	Discard(draftID string)
}

type CarService interface {
	GetByID(ctx context.Context, id int64) (*domain.Car, error)
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
