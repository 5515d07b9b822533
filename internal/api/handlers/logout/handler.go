package logout

import (
	"net/http"

	"github.com/m04kA/SMC-CarRental/internal/api/handlers"
)

const (
	loginPath = "/login"

	msgLoggedOut = "You have been logged out."
)

type Handler struct {
	auth   AuthService
	logger Logger
}

func NewHandler(auth AuthService, logger Logger) *Handler {
	return &Handler{
		auth:   auth,
		logger: logger,
	}
}

// Handle POST /logout
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	if err := h.auth.Logout(); err != nil {
		h.logger.Error("POST /logout - Failed to clear session: %v", err)
		handlers.RespondInternalError(w)
		return
	}

	h.logger.Info("POST /logout - Session cleared")
	handlers.SetFlash(w, handlers.SeverityInfo, msgLoggedOut)
	handlers.Redirect(w, r, loginPath)
}
