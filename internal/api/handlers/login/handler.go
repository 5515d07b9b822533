package login

import (
	"net/http"

	"github.com/m04kA/SMC-CarRental/internal/api/handlers"
	"github.com/m04kA/SMC-CarRental/internal/integrations/rentalapi"
)

const (
	pageName = "login"

	// SuccessPath страница после успешного входа
	SuccessPath = "/cars"

	msgFieldsRequired = "Username and password are required."
	msgLoginFailed    = "Failed to login. Please try again."
	msgInvalidBody    = "Invalid form data."
)

type Handler struct {
	auth     AuthService
	sessions SessionReader
	renderer Renderer
	logger   Logger
}

func NewHandler(auth AuthService, sessions SessionReader, renderer Renderer, logger Logger) *Handler {
	return &Handler{
		auth:     auth,
		sessions: sessions,
		renderer: renderer,
		logger:   logger,
	}
}

// Show GET /login
func (h *Handler) Show(w http.ResponseWriter, r *http.Request) {
	h.render(w, r, http.StatusOK, &PageData{})
}

// Handle POST /login
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseForm(); err != nil {
		h.logger.Warn("POST /login - Invalid request body: %v", err)
		h.render(w, r, http.StatusBadRequest, &PageData{Error: msgInvalidBody})
		return
	}
	form := parseLoginForm(r)

	// Обязательные поля проверяются до обращения к backend
	if msg := handlers.ValidateForm(form); msg != "" {
		h.logger.Warn("POST /login - Validation failed: %s", msg)
		h.render(w, r, http.StatusUnprocessableEntity, &PageData{Username: form.Username, Error: msgFieldsRequired})
		return
	}

	if _, err := h.auth.Login(r.Context(), form.Username, form.Password); err != nil {
		h.logger.Warn("POST /login - Login failed: username=%s, error=%v", form.Username, err)
		h.render(w, r, http.StatusUnauthorized, &PageData{
			Username: form.Username,
			Error:    rentalapi.MessageOf(err, msgLoginFailed),
		})
		return
	}

	h.logger.Info("POST /login - User logged in: username=%s", form.Username)
	handlers.Redirect(w, r, SuccessPath)
}

func (h *Handler) render(w http.ResponseWriter, r *http.Request, status int, data *PageData) {
	page := handlers.NewPage(w, r, h.sessions, "Login", data)
	handlers.RenderPage(w, r, h.renderer, h.logger, status, pageName, page)
}
