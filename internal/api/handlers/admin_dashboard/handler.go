package admin_dashboard

import (
	"net/http"
	"sync"

	"github.com/m04kA/SMC-CarRental/internal/api/handlers"
	"github.com/m04kA/SMC-CarRental/internal/domain"
	"github.com/m04kA/SMC-CarRental/internal/integrations/rentalapi"
)

const (
	pageName = "admin"

	msgFetchCarsFailed     = "Error fetching cars"
	msgFetchBookingsFailed = "Failed to fetch bookings"
	msgSubmitAdd           = "Add Car"
)

type Handler struct {
	cars     CarService
	bookings BookingService
	sessions SessionReader
	renderer Renderer
	logger   Logger
}

func NewHandler(cars CarService, bookings BookingService, sessions SessionReader, renderer Renderer, logger Logger) *Handler {
	return &Handler{
		cars:     cars,
		bookings: bookings,
		sessions: sessions,
		renderer: renderer,
		logger:   logger,
	}
}

// Handle GET /admin
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	h.Render(w, r, http.StatusOK, NewCarForm(), "")
}

// NewCarForm пустая форма добавления автомобиля
func NewCarForm() handlers.CarForm {
	return handlers.NewCarForm(CreateCarPath, msgSubmitAdd)
}

// Render загружает автомобили и бронирования и рендерит панель с формой добавления
// Списки загружаются параллельно, ошибка одного не мешает показать другой
func (h *Handler) Render(w http.ResponseWriter, r *http.Request, status int, form handlers.CarForm, formError string) {
	data := &PageData{
		Form:      form,
		FormError: formError,
	}

	var (
		wg          sync.WaitGroup
		cars        []domain.Car
		bookings    []domain.Booking
		carsErr     error
		bookingsErr error
	)

	wg.Add(2)
	go func() {
		defer wg.Done()
		cars, carsErr = h.cars.List(r.Context())
	}()
	go func() {
		defer wg.Done()
		bookings, bookingsErr = h.bookings.ListAll(r.Context())
	}()
	wg.Wait()

	if carsErr != nil {
		h.logger.Error("GET /admin - Failed to fetch cars: %v", carsErr)
		data.CarsState = handlers.Failed(rentalapi.MessageOf(carsErr, msgFetchCarsFailed))
	} else {
		data.Cars = cars
		data.CarsState = handlers.Succeeded(len(cars))
	}

	if bookingsErr != nil {
		h.logger.Error("GET /admin - Failed to fetch bookings: %v", bookingsErr)
		data.BookingsState = handlers.Failed(rentalapi.MessageOf(bookingsErr, msgFetchBookingsFailed))
	} else {
		data.Bookings = bookings
		data.BookingsState = handlers.Succeeded(len(bookings))
	}

	page := handlers.NewPage(w, r, h.sessions, "Admin Dashboard", data)
	handlers.RenderPage(w, r, h.renderer, h.logger, status, pageName, page)
}
