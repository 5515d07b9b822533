package home

import (
	"net/http"

	"github.com/m04kA/SMC-CarRental/internal/api/handlers"
	"github.com/m04kA/SMC-CarRental/internal/integrations/rentalapi"
)

const (
	pageName = "home"

	msgFetchBookingsFailed = "Failed to fetch your bookings"
)

type Handler struct {
	bookings BookingService
	sessions SessionReader
	renderer Renderer
	logger   Logger
}

func NewHandler(bookings BookingService, sessions SessionReader, renderer Renderer, logger Logger) *Handler {
	return &Handler{
		bookings: bookings,
		sessions: sessions,
		renderer: renderer,
		logger:   logger,
	}
}

// Handle GET /
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	data := &PageData{}

	// Бронирования показываем только авторизованному пользователю
	if session := h.sessions.Current(); session != nil {
		data.LoggedIn = true

		bookings, err := h.bookings.ListByUser(r.Context(), session.ID)
		if err != nil {
			h.logger.Error("GET / - Failed to fetch bookings: user_id=%d, error=%v", session.ID, err)
			data.State = handlers.Failed(rentalapi.MessageOf(err, msgFetchBookingsFailed))
		} else {
			data.Bookings = bookings
			data.State = handlers.Succeeded(len(bookings))
		}
	}

	page := handlers.NewPage(w, r, h.sessions, "Home", data)
	handlers.RenderPage(w, r, h.renderer, h.logger, http.StatusOK, pageName, page)
}
