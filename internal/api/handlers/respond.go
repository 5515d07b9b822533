package handlers

import (
	"net/http"

	"github.com/m04kA/SMC-CarRental/internal/api/views"
)

// FetchStatus итог загрузки данных экрана
// Состояние "loading" соответствует самому HTTP запросу, пока он выполняется
type FetchStatus string

const (
	FetchSuccess  FetchStatus = "success"
	FetchEmpty    FetchStatus = "empty"
	FetchError    FetchStatus = "error"
	FetchNotFound FetchStatus = "not-found"
)

// FetchState состояние загрузки данных экрана
type FetchState struct {
	Status FetchStatus
	Error  string
}

// Succeeded возвращает состояние для загруженного списка (empty при нулевой длине)
func Succeeded(count int) FetchState {
	if count == 0 {
		return FetchState{Status: FetchEmpty}
	}
	return FetchState{Status: FetchSuccess}
}

// Failed возвращает состояние ошибки с сообщением
func Failed(message string) FetchState {
	return FetchState{Status: FetchError, Error: message}
}

// NotFound возвращает состояние отсутствующей записи
func NotFound() FetchState {
	return FetchState{Status: FetchNotFound}
}

func (s FetchState) IsSuccess() bool  { return s.Status == FetchSuccess }
func (s FetchState) IsEmpty() bool    { return s.Status == FetchEmpty }
func (s FetchState) IsError() bool    { return s.Status == FetchError }
func (s FetchState) IsNotFound() bool { return s.Status == FetchNotFound }

// Redirect выполняет редирект после POST (Post/Redirect/Get)
func Redirect(w http.ResponseWriter, r *http.Request, path string) {
	http.Redirect(w, r, path, http.StatusSeeOther)
}

// RespondBadRequest отвечает текстом 400 (для некорректных параметров маршрута)
func RespondBadRequest(w http.ResponseWriter, message string) {
	http.Error(w, message, http.StatusBadRequest)
}

// RespondInternalError отвечает 500 без деталей
func RespondInternalError(w http.ResponseWriter) {
	http.Error(w, "Internal server error", http.StatusInternalServerError)
}

// PageRenderer интерфейс рендеринга страниц
type PageRenderer interface {
	Render(w http.ResponseWriter, status int, name string, page views.Page) error
}

// ErrorLogger интерфейс для логирования ошибок рендеринга
type ErrorLogger interface {
	Error(format string, v ...interface{})
}

// RenderPage рендерит страницу, при ошибке шаблона логирует и отвечает 500
func RenderPage(w http.ResponseWriter, r *http.Request, renderer PageRenderer, logger ErrorLogger,
	status int, name string, page views.Page) {
	if err := renderer.Render(w, status, name, page); err != nil {
		logger.Error("%s %s - Failed to render page %s: %v", r.Method, r.URL.Path, name, err)
		RespondInternalError(w)
	}
}
