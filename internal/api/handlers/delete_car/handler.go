package delete_car

import (
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	"github.com/m04kA/SMC-CarRental/internal/api/handlers"
	"github.com/m04kA/SMC-CarRental/internal/integrations/rentalapi"
)

const (
	dashboardPath = "/admin"

	msgInvalidCarID = "Invalid car ID"
	msgCarDeleted   = "Car deleted!"
	msgDeleteFailed = "Error deleting car"
)

type Handler struct {
	service CarService
	logger  Logger
}

func NewHandler(service CarService, logger Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// Handle POST /admin/cars/{id}/delete
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	carID, err := strconv.ParseInt(mux.Vars(r)["id"], 10, 64)
	if err != nil {
		h.logger.Warn("POST /admin/cars/{id}/delete - Invalid car ID: %v", err)
		handlers.SetFlash(w, handlers.SeverityError, msgInvalidCarID)
		handlers.Redirect(w, r, dashboardPath)
		return
	}

	if err := h.service.Delete(r.Context(), carID); err != nil {
		h.logger.Error("POST /admin/cars/{id}/delete - Failed to delete car: car_id=%d, error=%v", carID, err)
		handlers.SetFlash(w, handlers.SeverityError, rentalapi.MessageOf(err, msgDeleteFailed))
		handlers.Redirect(w, r, dashboardPath)
		return
	}

	h.logger.Info("POST /admin/cars/{id}/delete - Car deleted successfully: car_id=%d", carID)
	handlers.SetFlash(w, handlers.SeveritySuccess, msgCarDeleted)
	handlers.Redirect(w, r, dashboardPath)
}
