package domain

import "strings"

// BookingStatus represents the status of a booking
type BookingStatus string

const (
	StatusPending   BookingStatus = "pending"
	StatusConfirmed BookingStatus = "confirmed"
	StatusCancelled BookingStatus = "cancelled"
)

// StatusColor цвет отображения статуса в интерфейсе
type StatusColor string

const (
	ColorWarning StatusColor = "warning"
	ColorSuccess StatusColor = "success"
	ColorError   StatusColor = "error"
	ColorDefault StatusColor = "default"
)

// CarRef ссылка на автомобиль в теле бронирования
type CarRef struct {
	ID int64 `json:"id"`
}

// UserRef ссылка на пользователя в теле бронирования
type UserRef struct {
	ID       int64  `json:"id"`
	Username string `json:"username,omitempty"`
}

// Booking represents a car booking as returned by the backend
type Booking struct {
	ID         int64         `json:"id"`
	Car        *Car          `json:"car,omitempty"`
	User       *UserRef      `json:"user,omitempty"`
	PickupDate string        `json:"pickupDate"`
	ReturnDate string        `json:"returnDate"`
	TotalPrice float64       `json:"totalPrice"`
	Status     BookingStatus `json:"status"`
}

// BookingDraft замороженная сводка бронирования до отправки на backend
type BookingDraft struct {
	Car        CarRef        `json:"car"`
	User       UserRef       `json:"user"`
	PickupDate string        `json:"pickupDate"`
	ReturnDate string        `json:"returnDate"`
	TotalPrice float64       `json:"totalPrice"`
	Status     BookingStatus `json:"status"`
}

// CarTitle returns "<brand> <name>" of the booked car, or empty string if the car is not embedded
func (b Booking) CarTitle() string {
	if b.Car == nil {
		return ""
	}
	return b.Car.Title()
}

// Color returns the display color for the booking status
func (b Booking) Color() StatusColor {
	return ColorForStatus(string(b.Status))
}

// ColorForStatus сопоставляет статус с цветом без учета регистра
// Неизвестные статусы получают ColorDefault
func ColorForStatus(status string) StatusColor {
	switch BookingStatus(strings.ToLower(status)) {
	case StatusPending:
		return ColorWarning
	case StatusConfirmed:
		return ColorSuccess
	case StatusCancelled:
		return ColorError
	default:
		return ColorDefault
	}
}
