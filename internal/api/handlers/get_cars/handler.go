package get_cars

import (
	"net/http"

	"github.com/m04kA/SMC-CarRental/internal/api/handlers"
	"github.com/m04kA/SMC-CarRental/internal/domain"
	"github.com/m04kA/SMC-CarRental/internal/integrations/rentalapi"
)

const (
	pageName = "cars"

	msgFetchCarsFailed  = "Failed to fetch cars. Please try again later."
	msgFilterCarsFailed = "Failed to filter cars. Please try again."
)

type Handler struct {
	cars     CarService
	sessions SessionReader
	renderer Renderer
	logger   Logger
}

func NewHandler(cars CarService, sessions SessionReader, renderer Renderer, logger Logger) *Handler {
	return &Handler{
		cars:     cars,
		sessions: sessions,
		renderer: renderer,
		logger:   logger,
	}
}

// Handle GET /cars?brand=&type=&transmission=
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	filter := filterFromQuery(r.URL.Query())

	data := &PageData{
		Filter:        filter,
		CarTypes:      domain.CarTypes,
		Transmissions: domain.Transmissions,
	}

	var (
		cars []domain.Car
		err  error
	)
	if filter.IsEmpty() {
		cars, err = h.cars.List(r.Context())
		if err != nil {
			h.logger.Error("GET /cars - Failed to fetch cars: %v", err)
			data.State = handlers.Failed(rentalapi.MessageOf(err, msgFetchCarsFailed))
		}
	} else {
		cars, err = h.cars.Search(r.Context(), filter)
		if err != nil {
			h.logger.Error("GET /cars - Failed to filter cars: brand=%q type=%q transmission=%q, error=%v",
				filter.Brand, filter.Type, filter.Transmission, err)
			data.State = handlers.Failed(rentalapi.MessageOf(err, msgFilterCarsFailed))
		}
	}

	if err == nil {
		data.Cars = cars
		data.State = handlers.Succeeded(len(cars))
	}

	page := handlers.NewPage(w, r, h.sessions, "Cars", data)
	handlers.RenderPage(w, r, h.renderer, h.logger, http.StatusOK, pageName, page)
}
