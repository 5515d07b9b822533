package create_booking

import (
	"context"
	"time"

	"github.com/m04kA/SMC-CarRental/internal/domain"
)

// SessionProvider интерфейс чтения текущей сессии
type SessionProvider interface {
	Current() *domain.Session
}

// BookingCreator интерфейс создания бронирования на backend
type BookingCreator interface {
	Create(ctx context.Context, draft domain.BookingDraft) (*domain.Booking, error)
}

// TimeProvider интерфейс для получения текущего времени (для тестирования)
type TimeProvider interface {
	Now() time.Time
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}

// RealTimeProvider реальный провайдер времени для production
type RealTimeProvider struct{}

// Now возвращает текущее время
func (p *RealTimeProvider) Now() time.Time {
	return time.Now()
}
