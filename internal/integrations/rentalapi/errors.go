package rentalapi

import (
	"errors"
	"fmt"
)

var (
	// ErrNotFound возвращается при ответе 404
	ErrNotFound = errors.New("rentalapi: resource not found")

	// ErrUnauthorized возвращается при ответах 401/403 (токен отсутствует, истек или прав недостаточно)
	ErrUnauthorized = errors.New("rentalapi: unauthorized")

	// ErrRequest возвращается при любом другом неуспешном статусе
	ErrRequest = errors.New("rentalapi: request failed")

	// ErrTransport возвращается при сетевых ошибках
	ErrTransport = errors.New("rentalapi: transport error")

	// ErrInvalidResponse возвращается, когда успешный ответ не удалось разобрать
	ErrInvalidResponse = errors.New("rentalapi: invalid response")

	// ErrInternal возвращается при внутренних ошибках клиента
	ErrInternal = errors.New("rentalapi: internal error")
)

// APIError неуспешный результат вызова backend с сообщением для пользователя
type APIError struct {
	Op         string // операция, например "cars.get"
	StatusCode int    // 0 при сетевой ошибке
	Message    string // сообщение сервера или запасное сообщение операции
	kind       error
	cause      error
}

func (e *APIError) Error() string {
	if e.cause != nil {
		return fmt.Sprintf("%s: %s (status %d): %v", e.Op, e.Message, e.StatusCode, e.cause)
	}
	return fmt.Sprintf("%s: %s (status %d)", e.Op, e.Message, e.StatusCode)
}

// Is позволяет сравнивать APIError с sentinel ошибками пакета через errors.Is
func (e *APIError) Is(target error) bool {
	return e.kind == target
}

func (e *APIError) Unwrap() error {
	return e.cause
}

// MessageOf возвращает человекочитаемое сообщение ошибки
// Для APIError - сообщение сервера или операции, иначе fallback
func MessageOf(err error, fallback string) string {
	var apiErr *APIError
	if errors.As(err, &apiErr) && apiErr.Message != "" {
		return apiErr.Message
	}
	return fallback
}

// NewStatusError создает ошибку неуспешного HTTP ответа, вид ошибки определяется по статусу
func NewStatusError(op string, status int, message string) *APIError {
	return &APIError{Op: op, StatusCode: status, Message: message, kind: kindForStatus(status)}
}

func kindForStatus(status int) error {
	switch {
	case status == 404:
		return ErrNotFound
	case status == 401 || status == 403:
		return ErrUnauthorized
	default:
		return ErrRequest
	}
}
