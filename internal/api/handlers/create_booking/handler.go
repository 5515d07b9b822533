package create_booking

import (
	"errors"
	"fmt"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	"github.com/m04kA/SMC-CarRental/internal/api/handlers"
	"github.com/m04kA/SMC-CarRental/internal/api/views"
	"github.com/m04kA/SMC-CarRental/internal/domain"
	"github.com/m04kA/SMC-CarRental/internal/integrations/rentalapi"
	createBooking "github.com/m04kA/SMC-CarRental/internal/usecase/create_booking"
)

const (
	pageDates   = "booking_dates"
	pageSummary = "booking_summary"

	msgLoginRequired      = "Please log in to book a car!"
	msgDatesRequired      = "All fields are required!"
	msgInvalidDate        = "Invalid date. Use the YYYY-MM-DD format."
	msgReturnBeforePickup = "Return date must be after pickup date!"
	msgInvalidCar         = "This car cannot be booked."
	msgDraftExpired       = "Your booking summary has expired. Please select the dates again."
	msgBookingSucceeded   = "Car booked successfully!"
	msgBookingFailed      = "Booking failed!"
	msgFetchCarFailed     = "Failed to fetch car details. Please try again later."
	msgInvalidRequestBody = "Invalid form data."
)

type Handler struct {
	useCase  CreateBookingUseCase
	cars     CarService
	sessions SessionReader
	renderer Renderer
	logger   Logger
}

func NewHandler(useCase CreateBookingUseCase, cars CarService, sessions SessionReader, renderer Renderer, logger Logger) *Handler {
	return &Handler{
		useCase:  useCase,
		cars:     cars,
		sessions: sessions,
		renderer: renderer,
		logger:   logger,
	}
}

// ShowDates GET /cars/{id}/book
func (h *Handler) ShowDates(w http.ResponseWriter, r *http.Request) {
	if h.sessions.Current() == nil {
		h.redirectToLogin(w, r)
		return
	}

	car, ok := h.loadCar(w, r, "GET /cars/{id}/book")
	if !ok {
		return
	}

	h.renderDates(w, r, http.StatusOK, &DatesData{Car: *car})
}

// Review POST /cars/{id}/book
func (h *Handler) Review(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseForm(); err != nil {
		h.logger.Warn("POST /cars/{id}/book - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}
	form := ParseDatesForm(r)

	carID, ok := h.carID(w, r, "POST /cars/{id}/book")
	if !ok {
		return
	}

	// Сессия и даты проверяются до обращения к backend
	if _, err := createBooking.ValidateDates(h.sessions.Current(), form.PickupDate, form.ReturnDate); err != nil {
		h.rejectDates(w, r, domain.Car{ID: carID}, form, err)
		return
	}

	car, ok := h.loadCar(w, r, "POST /cars/{id}/book")
	if !ok {
		return
	}

	summary, err := h.useCase.Review(r.Context(), &createBooking.ReviewRequest{
		Car:        *car,
		PickupDate: form.PickupDate,
		ReturnDate: form.ReturnDate,
	})
	if err != nil {
		h.rejectDates(w, r, *car, form, err)
		return
	}

	page := handlers.NewPage(w, r, h.sessions, "Booking Summary", summary)
	handlers.RenderPage(w, r, h.renderer, h.logger, http.StatusOK, pageSummary, page)
}

// Back POST /cars/{id}/book/back
func (h *Handler) Back(w http.ResponseWriter, r *http.Request) {
	carID, ok := h.carID(w, r, "POST /cars/{id}/book/back")
	if !ok {
		return
	}
	draftID := draftIDFromForm(r)

	// Возвращаемся к вводу дат с ранее выбранными значениями
	summary, err := h.useCase.Get(draftID)
	h.useCase.Discard(draftID)
	if err != nil || summary.Car.ID != carID {
		handlers.Redirect(w, r, bookPath(carID))
		return
	}

	h.renderDates(w, r, http.StatusOK, &DatesData{
		Car:        summary.Car,
		PickupDate: views.Date(summary.Draft.PickupDate),
		ReturnDate: views.Date(summary.Draft.ReturnDate),
	})
}

// Confirm POST /cars/{id}/book/confirm
func (h *Handler) Confirm(w http.ResponseWriter, r *http.Request) {
	carID, ok := h.carID(w, r, "POST /cars/{id}/book/confirm")
	if !ok {
		return
	}

	booking, err := h.useCase.Confirm(r.Context(), &createBooking.ConfirmRequest{
		DraftID: draftIDFromForm(r),
		CarID:   carID,
	})
	if err != nil {
		if errors.Is(err, createBooking.ErrDraftNotFound) {
			h.logger.Warn("POST /cars/{id}/book/confirm - Draft not found: car_id=%d", carID)
			handlers.SetFlash(w, handlers.SeverityError, msgDraftExpired)
			handlers.Redirect(w, r, bookPath(carID))
			return
		}

		h.logger.Error("POST /cars/{id}/book/confirm - Failed to create booking: car_id=%d, error=%v", carID, err)
		handlers.SetFlash(w, handlers.SeverityError, rentalapi.MessageOf(err, msgBookingFailed))
		handlers.Redirect(w, r, carPath(carID))
		return
	}

	h.logger.Info("POST /cars/{id}/book/confirm - Booking created: booking_id=%d, car_id=%d", booking.ID, carID)
	handlers.SetFlash(w, handlers.SeveritySuccess, msgBookingSucceeded)
	handlers.Redirect(w, r, carPath(carID))
}

func (h *Handler) carID(w http.ResponseWriter, r *http.Request, op string) (int64, bool) {
	carID, err := strconv.ParseInt(mux.Vars(r)["id"], 10, 64)
	if err != nil {
		h.logger.Warn("%s - Invalid car ID: %v", op, err)
		http.NotFound(w, r)
		return 0, false
	}
	return carID, true
}

// loadCar получает автомобиль, при ошибке отправляет пользователя на страницу автомобиля с уведомлением
func (h *Handler) loadCar(w http.ResponseWriter, r *http.Request, op string) (*domain.Car, bool) {
	carID, ok := h.carID(w, r, op)
	if !ok {
		return nil, false
	}

	car, err := h.cars.GetByID(r.Context(), carID)
	if err != nil {
		h.logger.Error("%s - Failed to fetch car: car_id=%d, error=%v", op, carID, err)
		if !errors.Is(err, rentalapi.ErrNotFound) {
			handlers.SetFlash(w, handlers.SeverityError, rentalapi.MessageOf(err, msgFetchCarFailed))
		}
		handlers.Redirect(w, r, carPath(carID))
		return nil, false
	}
	return car, true
}

// rejectDates показывает форму дат с ошибкой валидации (без сессии отправляет на вход)
func (h *Handler) rejectDates(w http.ResponseWriter, r *http.Request, car domain.Car, form DatesForm, err error) {
	if errors.Is(err, createBooking.ErrNoSession) {
		h.redirectToLogin(w, r)
		return
	}

	h.logger.Warn("POST /cars/{id}/book - Validation failed: car_id=%d, error=%v", car.ID, err)
	h.renderDates(w, r, http.StatusUnprocessableEntity, &DatesData{
		Car:        car,
		PickupDate: form.PickupDate,
		ReturnDate: form.ReturnDate,
		Error:      reviewErrorMessage(err),
	})
}

func (h *Handler) renderDates(w http.ResponseWriter, r *http.Request, status int, data *DatesData) {
	title := "Book a Car"
	if data.Car.Title() != "" {
		title = "Book " + data.Car.Title()
	}
	page := handlers.NewPage(w, r, h.sessions, title, data)
	handlers.RenderPage(w, r, h.renderer, h.logger, status, pageDates, page)
}

func (h *Handler) redirectToLogin(w http.ResponseWriter, r *http.Request) {
	h.logger.Warn("%s %s - No active session, redirecting to login", r.Method, r.URL.Path)
	handlers.SetFlash(w, handlers.SeverityError, msgLoginRequired)
	handlers.Redirect(w, r, "/login")
}

func reviewErrorMessage(err error) string {
	switch {
	case errors.Is(err, createBooking.ErrDatesRequired):
		return msgDatesRequired
	case errors.Is(err, createBooking.ErrInvalidDate):
		return msgInvalidDate
	case errors.Is(err, createBooking.ErrReturnBeforePickup):
		return msgReturnBeforePickup
	case errors.Is(err, createBooking.ErrInvalidInput):
		return msgInvalidCar
	default:
		return msgBookingFailed
	}
}

func carPath(carID int64) string {
	return fmt.Sprintf("/cars/%d", carID)
}

func bookPath(carID int64) string {
	return fmt.Sprintf("/cars/%d/book", carID)
}
