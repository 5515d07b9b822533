package cancel_booking

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	"github.com/m04kA/SMC-CarRental/internal/api/handlers"
	"github.com/m04kA/SMC-CarRental/internal/integrations/rentalapi"
)

const (
	dashboardPath = "/admin"

	msgInvalidBookingID = "Invalid booking ID"
	msgNotFound         = "Booking not found"
	msgCancelled        = "Booking cancelled!"
	msgCancelFailed     = "Failed to cancel booking"
)

type Handler struct {
	service BookingService
	logger  Logger
}

func NewHandler(service BookingService, logger Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// Handle POST /admin/bookings/{bookingId}/cancel
// Отмена выполняется удалением бронирования на backend
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	bookingID, err := strconv.ParseInt(mux.Vars(r)["bookingId"], 10, 64)
	if err != nil {
		h.logger.Warn("POST /admin/bookings/{id}/cancel - Invalid booking ID: %v", err)
		handlers.SetFlash(w, handlers.SeverityError, msgInvalidBookingID)
		handlers.Redirect(w, r, dashboardPath)
		return
	}

	if err := h.service.Delete(r.Context(), bookingID); err != nil {
		switch {
		case errors.Is(err, rentalapi.ErrNotFound):
			h.logger.Warn("POST /admin/bookings/{id}/cancel - Booking not found: booking_id=%d", bookingID)
			handlers.SetFlash(w, handlers.SeverityError, msgNotFound)
		default:
			h.logger.Error("POST /admin/bookings/{id}/cancel - Failed to cancel booking: booking_id=%d, error=%v",
				bookingID, err)
			handlers.SetFlash(w, handlers.SeverityError, rentalapi.MessageOf(err, msgCancelFailed))
		}
		handlers.Redirect(w, r, dashboardPath)
		return
	}

	h.logger.Info("POST /admin/bookings/{id}/cancel - Booking cancelled successfully: booking_id=%d", bookingID)
	handlers.SetFlash(w, handlers.SeveritySuccess, msgCancelled)
	handlers.Redirect(w, r, dashboardPath)
}
