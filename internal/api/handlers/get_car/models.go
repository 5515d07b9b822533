package get_car

import (
	"github.com/m04kA/SMC-CarRental/internal/api/handlers"
	"github.com/m04kA/SMC-CarRental/internal/domain"
)

// PageData данные страницы автомобиля
type PageData struct {
	Car     *domain.Car
	State   handlers.FetchState
	CanBook bool // кнопка "Book Now" только при наличии сессии
}
