package update_car

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	"github.com/m04kA/SMC-CarRental/internal/api/handlers"
	"github.com/m04kA/SMC-CarRental/internal/integrations/rentalapi"
)

const (
	pageName      = "admin_edit_car"
	dashboardPath = "/admin"

	msgSubmit         = "Save"
	msgCarUpdated     = "Car updated!"
	msgUpdateFailed   = "Error updating car"
	msgFetchCarFailed = "Error fetching cars"
)

type Handler struct {
	service  CarService
	sessions SessionReader
	renderer Renderer
	logger   Logger
}

func NewHandler(service CarService, sessions SessionReader, renderer Renderer, logger Logger) *Handler {
	return &Handler{
		service:  service,
		sessions: sessions,
		renderer: renderer,
		logger:   logger,
	}
}

// Show GET /admin/cars/{id}/edit
func (h *Handler) Show(w http.ResponseWriter, r *http.Request) {
	carID, ok := h.carID(w, r, "GET /admin/cars/{id}/edit")
	if !ok {
		return
	}
	data := &PageData{CarID: carID}

	car, err := h.service.GetByID(r.Context(), carID)
	switch {
	case errors.Is(err, rentalapi.ErrNotFound):
		h.logger.Warn("GET /admin/cars/{id}/edit - Car not found: car_id=%d", carID)
		data.State = handlers.NotFound()
		h.render(w, r, http.StatusNotFound, data)
		return
	case err != nil:
		h.logger.Error("GET /admin/cars/{id}/edit - Failed to fetch car: car_id=%d, error=%v", carID, err)
		data.State = handlers.Failed(rentalapi.MessageOf(err, msgFetchCarFailed))
		h.render(w, r, http.StatusOK, data)
		return
	}

	data.State = handlers.Succeeded(1)
	data.Form = handlers.CarFormFrom(*car, updatePath(carID), msgSubmit)
	h.render(w, r, http.StatusOK, data)
}

// Handle POST /admin/cars/{id}
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	carID, ok := h.carID(w, r, "POST /admin/cars/{id}")
	if !ok {
		return
	}

	form, car, msg := handlers.ParseCarForm(r, updatePath(carID), msgSubmit)
	data := &PageData{CarID: carID, State: handlers.Succeeded(1), Form: form}
	if msg != "" {
		h.logger.Warn("POST /admin/cars/{id} - Validation failed: car_id=%d, %s", carID, msg)
		data.FormError = msg
		h.render(w, r, http.StatusUnprocessableEntity, data)
		return
	}

	car.ID = carID
	if _, err := h.service.Update(r.Context(), carID, car); err != nil {
		h.logger.Error("POST /admin/cars/{id} - Failed to update car: car_id=%d, error=%v", carID, err)
		data.FormError = rentalapi.MessageOf(err, msgUpdateFailed)
		h.render(w, r, http.StatusUnprocessableEntity, data)
		return
	}

	h.logger.Info("POST /admin/cars/{id} - Car updated successfully: car_id=%d", carID)
	handlers.SetFlash(w, handlers.SeveritySuccess, msgCarUpdated)
	handlers.Redirect(w, r, dashboardPath)
}

func (h *Handler) carID(w http.ResponseWriter, r *http.Request, op string) (int64, bool) {
	carID, err := strconv.ParseInt(mux.Vars(r)["id"], 10, 64)
	if err != nil {
		h.logger.Warn("%s - Invalid car ID: %v", op, err)
		http.NotFound(w, r)
		return 0, false
	}
	return carID, true
}

func (h *Handler) render(w http.ResponseWriter, r *http.Request, status int, data *PageData) {
	page := handlers.NewPage(w, r, h.sessions, "Edit Car", data)
	handlers.RenderPage(w, r, h.renderer, h.logger, status, pageName, page)
}
