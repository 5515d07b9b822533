package update_car

import (
	"fmt"

	"github.com/m04kA/SMC-CarRental/internal/api/handlers"
)

// PageData данные страницы редактирования автомобиля
type PageData struct {
	CarID     int64
	State     handlers.FetchState
	Form      handlers.CarForm
	FormError string
}

func updatePath(carID int64) string {
	return fmt.Sprintf("/admin/cars/%d", carID)
}
