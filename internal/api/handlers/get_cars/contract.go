package get_cars

import (
	"context"
	"net/http"

	"github.com/m04kA/SMC-CarRental/internal/api/views"
	"github.com/m04kA/SMC-CarRental/internal/domain"
)

type CarService interface {
	List(ctx context.Context) ([]domain.Car, error)
	Search(ctx context.Context, filter domain.CarFilter) ([]domain.Car, error)
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
