package rentalapi

import (
	"time"

	"github.com/m04kA/SMC-CarRental/internal/domain"
)

// SessionStore интерфейс хранилища сессии
type SessionStore interface {
	Token() string
	Set(session *domain.Session) error
	Clear() error
}

// MetricsCollector интерфейс сбора метрик запросов к backend
type MetricsCollector interface {
	ObserveBackendRequest(operation string, status int, duration time.Duration)
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
