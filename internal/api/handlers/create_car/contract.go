package create_car

import (
	"context"
	"net/http"

	"github.com/m04kA/SMC-CarRental/internal/api/handlers"
	"github.com/m04kA/SMC-CarRental/internal/domain"
)

type CarService interface {
	Create(ctx context.Context, car domain.Car) (*domain.Car, error)
}

// Dashboard повторно показывает панель администратора с заполненной формой
type Dashboard interface {
	Render(w http.ResponseWriter, r *http.Request, status int, form handlers.CarForm, formError string)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
