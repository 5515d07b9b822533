package create_booking

import (
	"net/http"
	"strings"

	"github.com/m04kA/SMC-CarRental/internal/domain"
)

// DatesData данные формы выбора дат
type DatesData struct {
	Car        domain.Car
	PickupDate string
	ReturnDate string
	Error      string
}

// DatesForm форма выбора дат
type DatesForm struct {
	PickupDate string
	ReturnDate string
}

// ParseDatesForm читает даты из тела формы
func ParseDatesForm(r *http.Request) DatesForm {
	return DatesForm{
		PickupDate: strings.TrimSpace(r.PostFormValue("pickupDate")),
		ReturnDate: strings.TrimSpace(r.PostFormValue("returnDate")),
	}
}

// draftIDFromForm читает идентификатор сводки из тела формы
func draftIDFromForm(r *http.Request) string {
	return strings.TrimSpace(r.PostFormValue("draftId"))
}
