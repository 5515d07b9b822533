package get_car

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	"github.com/m04kA/SMC-CarRental/internal/api/handlers"
	"github.com/m04kA/SMC-CarRental/internal/integrations/rentalapi"
)

const (
	pageName = "car_details"

	msgFetchCarFailed = "Failed to fetch car details. Please try again later."
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

// Handle GET /cars/{id}
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	data := &PageData{}
	status := http.StatusOK

	carID, err := strconv.ParseInt(mux.Vars(r)["id"], 10, 64)
	if err != nil {
		h.logger.Warn("GET /cars/{id} - Invalid car ID: %v", err)
		data.State = handlers.NotFound()
		status = http.StatusNotFound
		h.render(w, r, status, data)
		return
	}

	car, err := h.cars.GetByID(r.Context(), carID)
	switch {
	case errors.Is(err, rentalapi.ErrNotFound):
		h.logger.Info("GET /cars/{id} - Car not found: car_id=%d", carID)
		data.State = handlers.NotFound()
		status = http.StatusNotFound
	case err != nil:
		h.logger.Error("GET /cars/{id} - Failed to fetch car: car_id=%d, error=%v", carID, err)
		data.State = handlers.Failed(rentalapi.MessageOf(err, msgFetchCarFailed))
	default:
		data.Car = car
		data.State = handlers.Succeeded(1)
		data.CanBook = h.sessions.Current() != nil
	}

	h.render(w, r, status, data)
}

func (h *Handler) render(w http.ResponseWriter, r *http.Request, status int, data *PageData) {
	title := "Car"
	if data.Car != nil {
		title = data.Car.Title()
	}
	page := handlers.NewPage(w, r, h.sessions, title, data)
	handlers.RenderPage(w, r, h.renderer, h.logger, status, pageName, page)
}
