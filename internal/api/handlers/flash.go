package handlers

import (
	"encoding/base64"
	"encoding/json"
	"net/http"
)

// FlashCookie имя cookie с уведомлением
const FlashCookie = "car_rental_flash"

// Severity уровень уведомления
type Severity string

const (
	SeveritySuccess Severity = "success"
	SeverityError   Severity = "error"
	SeverityInfo    Severity = "info"
)

// Notice кратковременное уведомление (snackbar), переживающее один редирект
type Notice struct {
	Message  string   `json:"message"`
	Severity Severity `json:"severity"`
}

// SetFlash сохраняет уведомление до следующего запроса
func SetFlash(w http.ResponseWriter, severity Severity, message string) {
	data, err := json.Marshal(Notice{Message: message, Severity: severity})
	if err != nil {
		return
	}
	http.SetCookie(w, &http.Cookie{
		Name:     FlashCookie,
		Value:    base64.URLEncoding.EncodeToString(data),
		Path:     "/",
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
	})
}

// PopFlash читает и удаляет уведомление
func PopFlash(w http.ResponseWriter, r *http.Request) *Notice {
	cookie, err := r.Cookie(FlashCookie)
	if err != nil {
		return nil
	}

	http.SetCookie(w, &http.Cookie{
		Name:     FlashCookie,
		Value:    "",
		Path:     "/",
		MaxAge:   -1,
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
	})

	data, err := base64.URLEncoding.DecodeString(cookie.Value)
	if err != nil {
		return nil
	}
	var notice Notice
	if err := json.Unmarshal(data, &notice); err != nil || notice.Message == "" {
		return nil
	}
	return &notice
}
