package create_booking

import (
	"time"

	"github.com/m04kA/SMC-CarRental/internal/domain"
)

// State состояние процесса бронирования
type State string

const (
	StateIdle             State = "idle"
	StateCollectingDates  State = "collecting-dates"
	StateReviewingSummary State = "reviewing-summary"
	StateSubmitting       State = "submitting"
	StateDone             State = "done"
	StateFailed           State = "failed"
)

// DraftTTL время жизни неподтвержденной сводки
const DraftTTL = 30 * time.Minute

// ReviewRequest модель запроса на расчет сводки бронирования
type ReviewRequest struct {
	Car        domain.Car // автомобиль, открытый на странице
	PickupDate string     // "2024-03-01"
	ReturnDate string     // "2024-03-03"
}

// Summary замороженная сводка, показанная пользователю для подтверждения
type Summary struct {
	DraftID string
	Car     domain.Car
	Days    int
	Draft   domain.BookingDraft
}

// ConfirmRequest модель запроса на подтверждение сводки
type ConfirmRequest struct {
	DraftID string
	CarID   int64
}
