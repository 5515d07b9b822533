package handlers

import (
	"net/http"

	"github.com/m04kA/SMC-CarRental/internal/api/views"
	"github.com/m04kA/SMC-CarRental/internal/domain"
)

// SessionReader интерфейс чтения текущей сессии
type SessionReader interface {
	Current() *domain.Session
}

// NewPage собирает общие данные страницы: навигацию по текущей сессии и уведомление
// Сессия читается на каждом запросе, поэтому навигация всегда актуальна
func NewPage(w http.ResponseWriter, r *http.Request, sessions SessionReader, title string, data interface{}) views.Page {
	page := views.Page{
		Title: title,
		Nav:   NavFor(sessions.Current()),
		Data:  data,
	}
	if notice := PopFlash(w, r); notice != nil {
		page.Notice = &views.Notice{Message: notice.Message, Severity: string(notice.Severity)}
	}
	return page
}

// NavFor строит состояние навигационной панели
func NavFor(session *domain.Session) views.Nav {
	if session == nil {
		return views.Nav{}
	}
	return views.Nav{
		LoggedIn: true,
		Username: session.Username,
		IsAdmin:  session.IsAdmin(),
	}
}
