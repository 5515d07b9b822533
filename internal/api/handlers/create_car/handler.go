package create_car

import (
	"net/http"

	"github.com/m04kA/SMC-CarRental/internal/api/handlers"
	"github.com/m04kA/SMC-CarRental/internal/integrations/rentalapi"
)

const (
	dashboardPath = "/admin"
	formAction    = "/admin/cars"

	msgSubmit    = "Add Car"
	msgCarAdded  = "Car added!"
	msgAddFailed = "Error adding car"
)

type Handler struct {
	service   CarService
	dashboard Dashboard
	logger    Logger
}

func NewHandler(service CarService, dashboard Dashboard, logger Logger) *Handler {
	return &Handler{
		service:   service,
		dashboard: dashboard,
		logger:    logger,
	}
}

// Handle POST /admin/cars
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	form, car, msg := handlers.ParseCarForm(r, formAction, msgSubmit)
	if msg != "" {
		h.logger.Warn("POST /admin/cars - Validation failed: %s", msg)
		h.dashboard.Render(w, r, http.StatusUnprocessableEntity, form, msg)
		return
	}

	created, err := h.service.Create(r.Context(), car)
	if err != nil {
		h.logger.Error("POST /admin/cars - Failed to create car: brand=%s name=%s, error=%v", car.Brand, car.Name, err)
		h.dashboard.Render(w, r, http.StatusUnprocessableEntity, form, rentalapi.MessageOf(err, msgAddFailed))
		return
	}

	h.logger.Info("POST /admin/cars - Car created successfully: car_id=%d", created.ID)
	handlers.SetFlash(w, handlers.SeveritySuccess, msgCarAdded)
	handlers.Redirect(w, r, dashboardPath)
}
