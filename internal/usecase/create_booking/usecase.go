package create_booking

import (
	"context"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/m04kA/SMC-CarRental/internal/domain"
)

type flowEntry struct {
	flow      *Flow
	createdAt time.Time
}

// UseCase use case для бронирования автомобиля
// Хранит открытые сводки между запросом расчета и запросом подтверждения
type UseCase struct {
	sessions     SessionProvider
	bookings     BookingCreator
	timeProvider TimeProvider
	logger       Logger

	mu    sync.Mutex
	flows map[string]*flowEntry
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(
	sessions SessionProvider,
	bookings BookingCreator,
	logger Logger,
) *UseCase {
	return &UseCase{
		sessions:     sessions,
		bookings:     bookings,
		timeProvider: &RealTimeProvider{},
		logger:       logger,
		flows:        make(map[string]*flowEntry),
	}
}

// Review считает длительность и стоимость и замораживает сводку бронирования
func (uc *UseCase) Review(ctx context.Context, req *ReviewRequest) (*Summary, error) {
	uc.logger.Info("ReviewBooking: car=%d, pickup=%q, return=%q", req.Car.ID, req.PickupDate, req.ReturnDate)

	// 1. Открываем ввод дат
	flow := NewFlow(req.Car)
	if err := flow.Open(); err != nil {
		return nil, err
	}

	// 2. Валидация и расчет (без сетевых вызовов)
	draft, err := flow.Review(uc.sessions.Current(), req.PickupDate, req.ReturnDate)
	if err != nil {
		uc.logger.Warn("ReviewBooking: validation failed for car=%d: %v", req.Car.ID, err)
		return nil, err
	}

	// 3. Сохраняем процесс до подтверждения
	draftID := uuid.NewString()
	now := uc.timeProvider.Now()

	uc.mu.Lock()
	uc.evictExpiredLocked(now)
	uc.flows[draftID] = &flowEntry{flow: flow, createdAt: now}
	uc.mu.Unlock()

	uc.logger.Info("ReviewBooking: draft=%s car=%d user=%d days=%d total=%.2f",
		draftID, draft.Car.ID, draft.User.ID, flow.rentalDays(), draft.TotalPrice)

	return &Summary{
		DraftID: draftID,
		Car:     req.Car,
		Days:    flow.rentalDays(),
		Draft:   *draft,
	}, nil
}

// Get возвращает ранее рассчитанную сводку
func (uc *UseCase) Get(draftID string) (*Summary, error) {
	uc.mu.Lock()
	defer uc.mu.Unlock()

	entry, ok := uc.flows[draftID]
	if !ok || uc.isExpired(entry, uc.timeProvider.Now()) {
		return nil, ErrDraftNotFound
	}

	draft := entry.flow.Draft()
	if draft == nil {
		return nil, ErrDraftNotFound
	}

	return &Summary{
		DraftID: draftID,
		Car:     entry.flow.car,
		Days:    entry.flow.rentalDays(),
		Draft:   *draft,
	}, nil
}

// Confirm отправляет замороженную сводку на backend
// Сводка извлекается из реестра в любом случае: после ошибки пользователь начинает заново
func (uc *UseCase) Confirm(ctx context.Context, req *ConfirmRequest) (*domain.Booking, error) {
	uc.logger.Info("ConfirmBooking: draft=%s car=%d", req.DraftID, req.CarID)

	// 1. Забираем процесс из реестра
	uc.mu.Lock()
	entry, ok := uc.flows[req.DraftID]
	if ok && entry.flow.car.ID == req.CarID {
		delete(uc.flows, req.DraftID)
	}
	uc.mu.Unlock()

	if !ok || entry.flow.car.ID != req.CarID {
		uc.logger.Warn("ConfirmBooking: draft=%s not found for car=%d", req.DraftID, req.CarID)
		return nil, ErrDraftNotFound
	}
	if uc.isExpired(entry, uc.timeProvider.Now()) {
		uc.logger.Warn("ConfirmBooking: draft=%s expired", req.DraftID)
		return nil, ErrDraftNotFound
	}

	// 2. Отправляем ровно ту сводку, что видел пользователь
	booking, err := entry.flow.Confirm(ctx, uc.bookings)
	if err != nil {
		uc.logger.Error("ConfirmBooking: draft=%s submission failed: %v", req.DraftID, err)
		return nil, err
	}

	uc.logger.Info("ConfirmBooking: draft=%s submitted, booking id=%d", req.DraftID, booking.ID)
	return booking, nil
}

// Discard отбрасывает сводку (кнопка "Назад" или закрытие диалога)
func (uc *UseCase) Discard(draftID string) {
	uc.mu.Lock()
	defer uc.mu.Unlock()

	if entry, ok := uc.flows[draftID]; ok {
		_ = entry.flow.Back()
		delete(uc.flows, draftID)
		uc.logger.Info("DiscardBooking: draft=%s discarded", draftID)
	}
}

// Reset отбрасывает все открытые сводки
// Вызывается при смене сессии: сводка привязана к пользователю, который ее создал
func (uc *UseCase) Reset() {
	uc.mu.Lock()
	defer uc.mu.Unlock()

	if len(uc.flows) > 0 {
		uc.logger.Info("ResetBookings: discarding %d open drafts", len(uc.flows))
	}
	uc.flows = make(map[string]*flowEntry)
}

func (uc *UseCase) isExpired(entry *flowEntry, now time.Time) bool {
	return now.Sub(entry.createdAt) > DraftTTL
}

func (uc *UseCase) evictExpiredLocked(now time.Time) {
	for id, entry := range uc.flows {
		if uc.isExpired(entry, now) {
			delete(uc.flows, id)
		}
	}
}
