package rentalapi

import (
	"context"
	"fmt"
	"net/http"

	"github.com/m04kA/SMC-CarRental/internal/domain"
)

var (
	opBookingsCreate     = operation{name: "bookings.create", fallback: "Booking failed!"}
	opBookingsList       = operation{name: "bookings.list", fallback: "Failed to fetch bookings"}
	opBookingsListByUser = operation{name: "bookings.list_by_user", fallback: "Failed to fetch your bookings"}
	opBookingsDelete     = operation{name: "bookings.delete", fallback: "Failed to cancel booking"}
)

// BookingService вызовы бронирований
type BookingService struct {
	client *Client
}

// Create POST /bookings
func (s *BookingService) Create(ctx context.Context, draft domain.BookingDraft) (*domain.Booking, error) {
	var created domain.Booking
	if err := s.client.do(ctx, opBookingsCreate, http.MethodPost, "/bookings", nil, draft, &created); err != nil {
		return nil, err
	}
	return &created, nil
}

// ListAll GET /bookings (только для администратора, проверяет backend)
func (s *BookingService) ListAll(ctx context.Context) ([]domain.Booking, error) {
	bookings := []domain.Booking{}
	if err := s.client.do(ctx, opBookingsList, http.MethodGet, "/bookings", nil, nil, &bookings); err != nil {
		return nil, err
	}
	return bookings, nil
}

// ListByUser GET /bookings/user/{userId}
func (s *BookingService) ListByUser(ctx context.Context, userID int64) ([]domain.Booking, error) {
	bookings := []domain.Booking{}
	path := fmt.Sprintf("/bookings/user/%d", userID)
	if err := s.client.do(ctx, opBookingsListByUser, http.MethodGet, path, nil, nil, &bookings); err != nil {
		return nil, err
	}
	return bookings, nil
}

// Delete DELETE /bookings/{id}
// Используется и для отмены бронирования администратором
func (s *BookingService) Delete(ctx context.Context, id int64) error {
	return s.client.do(ctx, opBookingsDelete, http.MethodDelete, fmt.Sprintf("/bookings/%d", id), nil, nil, nil)
}
