package get_cars

import (
	"net/url"
	"strings"

	"github.com/m04kA/SMC-CarRental/internal/api/handlers"
	"github.com/m04kA/SMC-CarRental/internal/domain"
)

// PageData данные страницы каталога
type PageData struct {
	Cars          []domain.Car
	State         handlers.FetchState
	Filter        domain.CarFilter
	CarTypes      []string
	Transmissions []string
}

// filterFromQuery читает фильтр из query параметров
func filterFromQuery(q url.Values) domain.CarFilter {
	return domain.CarFilter{
		Brand:        strings.TrimSpace(q.Get("brand")),
		Type:         strings.TrimSpace(q.Get("type")),
		Transmission: strings.TrimSpace(q.Get("transmission")),
	}
}
