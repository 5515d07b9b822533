package register

import (
	"net/http"

	"github.com/m04kA/SMC-CarRental/internal/api/handlers"
	"github.com/m04kA/SMC-CarRental/internal/integrations/rentalapi"
)

const (
	pageName  = "register"
	loginPath = "/login"

	msgRegistered     = "Registration successful! Please log in."
	msgRegisterFailed = "Failed to register. Please try again."
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

// Show GET /register
func (h *Handler) Show(w http.ResponseWriter, r *http.Request) {
	h.render(w, r, http.StatusOK, &PageData{})
}

// Handle POST /register
// Регистрация не меняет сессию, пользователь входит отдельно
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseForm(); err != nil {
		h.logger.Warn("POST /register - Invalid request body: %v", err)
		h.render(w, r, http.StatusBadRequest, &PageData{Error: msgInvalidBody})
		return
	}
	form := parseRegisterForm(r)

	if msg := handlers.ValidateForm(form); msg != "" {
		h.logger.Warn("POST /register - Validation failed: username=%s, %s", form.Username, msg)
		h.render(w, r, http.StatusUnprocessableEntity, &PageData{
			Username: form.Username,
			Email:    form.Email,
			Error:    msg,
		})
		return
	}

	resp, err := h.auth.Register(r.Context(), rentalapi.RegisterRequest{
		Username: form.Username,
		Email:    form.Email,
		Password: form.Password,
		Role:     DefaultRole,
	})
	if err != nil {
		h.logger.Warn("POST /register - Registration failed: username=%s, error=%v", form.Username, err)
		h.render(w, r, http.StatusUnprocessableEntity, &PageData{
			Username: form.Username,
			Email:    form.Email,
			Error:    rentalapi.MessageOf(err, msgRegisterFailed),
		})
		return
	}

	message := msgRegistered
	if resp != nil && resp.Message != "" {
		message = resp.Message
	}

	h.logger.Info("POST /register - User registered: username=%s", form.Username)
	handlers.SetFlash(w, handlers.SeveritySuccess, message)
	handlers.Redirect(w, r, loginPath)
}

func (h *Handler) render(w http.ResponseWriter, r *http.Request, status int, data *PageData) {
	page := handlers.NewPage(w, r, h.sessions, "Register", data)
	handlers.RenderPage(w, r, h.renderer, h.logger, status, pageName, page)
}
