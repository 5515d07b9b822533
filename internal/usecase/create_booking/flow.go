package create_booking

import (
	"context"
	"fmt"
	"sync"

	"github.com/m04kA/SMC-CarRental/internal/domain"
)

// Flow конечный автомат одного диалога бронирования
// idle -> collecting-dates -> reviewing-summary -> submitting -> done | failed
type Flow struct {
	mu    sync.Mutex
	car   domain.Car
	state State
	draft *domain.BookingDraft
	days  int
}

// NewFlow создает процесс бронирования в состоянии idle
func NewFlow(car domain.Car) *Flow {
	return &Flow{car: car, state: StateIdle}
}

// State возвращает текущее состояние
func (f *Flow) State() State {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.state
}

// Draft возвращает копию замороженной сводки (nil вне reviewing-summary)
func (f *Flow) Draft() *domain.BookingDraft {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.draft == nil {
		return nil
	}
	draft := *f.draft
	return &draft
}

// Open открывает ввод дат; повторный запуск возможен после done и failed
func (f *Flow) Open() error {
	f.mu.Lock()
	defer f.mu.Unlock()

	if f.state == StateSubmitting {
		return fmt.Errorf("%w: cannot open while %s", ErrInvalidState, f.state)
	}
	f.state = StateCollectingDates
	f.draft = nil
	f.days = 0
	return nil
}

// Review проверяет даты и замораживает сводку; сетевых вызовов нет
// При ошибке валидации процесс остается в collecting-dates
func (f *Flow) Review(session *domain.Session, pickup, ret string) (*domain.BookingDraft, error) {
	f.mu.Lock()
	defer f.mu.Unlock()

	if f.state != StateCollectingDates {
		return nil, fmt.Errorf("%w: cannot review while %s", ErrInvalidState, f.state)
	}

	draft, days, err := buildDraft(session, f.car, pickup, ret)
	if err != nil {
		return nil, err
	}

	f.draft = draft
	f.days = days
	f.state = StateReviewingSummary

	result := *draft
	return &result, nil
}

// Back возвращает к вводу дат, сводка отбрасывается
func (f *Flow) Back() error {
	f.mu.Lock()
	defer f.mu.Unlock()

	if f.state != StateReviewingSummary {
		return fmt.Errorf("%w: cannot go back while %s", ErrInvalidState, f.state)
	}
	f.state = StateCollectingDates
	f.draft = nil
	f.days = 0
	return nil
}

// Confirm отправляет ровно ту сводку, что была показана пользователю, без пересчета
// Ошибка переводит процесс в failed и отбрасывает сводку; повтора нет
func (f *Flow) Confirm(ctx context.Context, creator BookingCreator) (*domain.Booking, error) {
	f.mu.Lock()
	if f.state != StateReviewingSummary || f.draft == nil {
		state := f.state
		f.mu.Unlock()
		return nil, fmt.Errorf("%w: cannot confirm while %s", ErrInvalidState, state)
	}
	draft := *f.draft
	f.state = StateSubmitting
	f.mu.Unlock()

	booking, err := creator.Create(ctx, draft)

	f.mu.Lock()
	defer f.mu.Unlock()
	f.draft = nil
	f.days = 0
	if err != nil {
		f.state = StateFailed
		return nil, fmt.Errorf("%w: %w", ErrSubmitFailed, err)
	}
	f.state = StateDone
	return booking, nil
}

func (f *Flow) rentalDays() int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.days
}
