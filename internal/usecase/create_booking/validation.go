package create_booking

import (
	"fmt"
	"math"
	"strings"
	"time"

	"github.com/m04kA/SMC-CarRental/internal/domain"
)

// validateCar проверяет данные автомобиля, по которым считается цена
func validateCar(car domain.Car) error {
	if car.ID <= 0 {
		return fmt.Errorf("%w: car id must be positive", ErrInvalidInput)
	}
	if car.Price < 0 {
		return fmt.Errorf("%w: car price must not be negative", ErrInvalidInput)
	}
	return nil
}

// parseDates проверяет и разбирает даты получения и возврата
func parseDates(pickup, ret string) (time.Time, time.Time, error) {
	pickup = strings.TrimSpace(pickup)
	ret = strings.TrimSpace(ret)

	if pickup == "" || ret == "" {
		return time.Time{}, time.Time{}, ErrDatesRequired
	}

	pickupDate, err := time.Parse(domain.DateFormat, pickup)
	if err != nil {
		return time.Time{}, time.Time{}, fmt.Errorf("%w: pickup date %q", ErrInvalidDate, pickup)
	}

	returnDate, err := time.Parse(domain.DateFormat, ret)
	if err != nil {
		return time.Time{}, time.Time{}, fmt.Errorf("%w: return date %q", ErrInvalidDate, ret)
	}

	return pickupDate, returnDate, nil
}

// RentalDays количество суток аренды, округленное вверх
func RentalDays(pickup, ret time.Time) int {
	return int(math.Ceil(ret.Sub(pickup).Hours() / 24))
}

// TotalPrice стоимость аренды: цена за сутки × число суток
func TotalPrice(pricePerDay float64, days int) float64 {
	return pricePerDay * float64(days)
}

// ValidateDates проверяет сессию и даты без данных автомобиля и сетевых вызовов
// Возвращает число суток аренды
func ValidateDates(session *domain.Session, pickup, ret string) (int, error) {
	if session == nil {
		return 0, ErrNoSession
	}

	pickupDate, returnDate, err := parseDates(pickup, ret)
	if err != nil {
		return 0, err
	}

	days := RentalDays(pickupDate, returnDate)
	if days < 1 {
		return 0, ErrReturnBeforePickup
	}
	return days, nil
}

// buildDraft валидирует ввод и формирует сводку бронирования
func buildDraft(session *domain.Session, car domain.Car, pickup, ret string) (*domain.BookingDraft, int, error) {
	days, err := ValidateDates(session, pickup, ret)
	if err != nil {
		return nil, 0, err
	}

	if err := validateCar(car); err != nil {
		return nil, 0, err
	}

	// даты уже проверены
	pickupDate, returnDate, _ := parseDates(pickup, ret)

	return &domain.BookingDraft{
		Car:        domain.CarRef{ID: car.ID},
		User:       domain.UserRef{ID: session.ID},
		PickupDate: pickupDate.Format(domain.DateTimeFormat),
		ReturnDate: returnDate.Format(domain.DateTimeFormat),
		TotalPrice: TotalPrice(car.Price, days),
		Status:     domain.StatusPending,
	}, days, nil
}
