package get_user_bookings

import (
	"net/http"

	"github.com/m04kA/SMC-CarRental/internal/api/handlers"
	"github.com/m04kA/SMC-CarRental/internal/integrations/rentalapi"
)

const (
	pageName = "my_bookings"

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

// Handle GET /my-bookings
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	data := &PageData{}

	session := h.sessions.Current()
	if session == nil {
		h.logger.Info("GET /my-bookings - No active session")
		h.render(w, r, data)
		return
	}
	data.LoggedIn = true

	bookings, err := h.bookings.ListByUser(r.Context(), session.ID)
	if err != nil {
		h.logger.Error("GET /my-bookings - Failed to get bookings: user_id=%d, error=%v", session.ID, err)
		data.State = handlers.Failed(rentalapi.MessageOf(err, msgFetchBookingsFailed))
		h.render(w, r, data)
		return
	}

	data.Bookings = bookings
	data.State = handlers.Succeeded(len(bookings))
	h.render(w, r, data)
}

func (h *Handler) render(w http.ResponseWriter, r *http.Request, data *PageData) {
	page := handlers.NewPage(w, r, h.sessions, "My Bookings", data)
	handlers.RenderPage(w, r, h.renderer, h.logger, http.StatusOK, pageName, page)
}
