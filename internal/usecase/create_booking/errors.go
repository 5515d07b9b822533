package create_booking

import "errors"

var (
	// ErrNoSession возвращается, когда бронирует неавторизованный пользователь
	ErrNoSession = errors.New("create_booking: no active session")

	// ErrDatesRequired возвращается, когда не указана одна из дат
	ErrDatesRequired = errors.New("create_booking: pickup and return dates are required")

	// ErrInvalidDate возвращается при некорректном формате даты
	ErrInvalidDate = errors.New("create_booking: invalid date format")

	// ErrReturnBeforePickup возвращается, когда аренда короче одних суток
	ErrReturnBeforePickup = errors.New("create_booking: return date must be after pickup date")

	// ErrInvalidInput возвращается при некорректных данных автомобиля
	ErrInvalidInput = errors.New("create_booking: invalid input data")

	// ErrInvalidState возвращается при переходе, недопустимом в текущем состоянии
	ErrInvalidState = errors.New("create_booking: invalid workflow state")

	// ErrDraftNotFound возвращается, когда сводка не найдена (подтверждена, отменена или устарела)
	ErrDraftNotFound = errors.New("create_booking: booking draft not found")

	// ErrSubmitFailed возвращается, когда backend отклонил бронирование
	ErrSubmitFailed = errors.New("create_booking: booking submission failed")
)
