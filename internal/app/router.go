package app

import (
	"net/http"

	"github.com/gorilla/mux"

	adminDashboardHandler "github.com/m04kA/SMC-CarRental/internal/api/handlers/admin_dashboard"
	cancelBookingHandler "github.com/m04kA/SMC-CarRental/internal/api/handlers/cancel_booking"
	createBookingHandler "github.com/m04kA/SMC-CarRental/internal/api/handlers/create_booking"
	createCarHandler "github.com/m04kA/SMC-CarRental/internal/api/handlers/create_car"
	deleteCarHandler "github.com/m04kA/SMC-CarRental/internal/api/handlers/delete_car"
	getCarHandler "github.com/m04kA/SMC-CarRental/internal/api/handlers/get_car"
	getCarsHandler "github.com/m04kA/SMC-CarRental/internal/api/handlers/get_cars"
	getUserBookingsHandler "github.com/m04kA/SMC-CarRental/internal/api/handlers/get_user_bookings"
	homeHandler "github.com/m04kA/SMC-CarRental/internal/api/handlers/home"
	loginHandler "github.com/m04kA/SMC-CarRental/internal/api/handlers/login"
	logoutHandler "github.com/m04kA/SMC-CarRental/internal/api/handlers/logout"
	registerHandler "github.com/m04kA/SMC-CarRental/internal/api/handlers/register"
	updateCarHandler "github.com/m04kA/SMC-CarRental/internal/api/handlers/update_car"
	"github.com/m04kA/SMC-CarRental/internal/api/middleware"
)

// router настраивает маршруты экранов
func (a *App) router() http.Handler {
	var (
		cars     = a.client.Cars
		bookings = a.client.Bookings
		auth     = a.client.Auth
		log      = a.log
	)

	// Инициализируем handlers
	home := homeHandler.NewHandler(bookings, a.sessions, a.renderer, log)
	getCars := getCarsHandler.NewHandler(cars, a.sessions, a.renderer, log)
	getCar := getCarHandler.NewHandler(cars, a.sessions, a.renderer, log)
	createBooking := createBookingHandler.NewHandler(a.bookings, cars, a.sessions, a.renderer, log)
	login := loginHandler.NewHandler(auth, a.sessions, a.renderer, log)
	register := registerHandler.NewHandler(auth, a.sessions, a.renderer, log)
	logout := logoutHandler.NewHandler(auth, log)
	getUserBookings := getUserBookingsHandler.NewHandler(bookings, a.sessions, a.renderer, log)
	adminDashboard := adminDashboardHandler.NewHandler(cars, bookings, a.sessions, a.renderer, log)
	createCar := createCarHandler.NewHandler(cars, adminDashboard, log)
	updateCar := updateCarHandler.NewHandler(cars, a.sessions, a.renderer, log)
	deleteCar := deleteCarHandler.NewHandler(cars, log)
	cancelBooking := cancelBookingHandler.NewHandler(bookings, log)

	r := mux.NewRouter()
	r.Use(middleware.Recover(log))
	r.Use(middleware.Logging(log))

	// Добавляем metrics middleware (если метрики включены)
	if a.metrics != nil {
		r.Use(middleware.MetricsMiddleware(a.metrics, a.cfg.Metrics.Path))
		r.Handle(a.cfg.Metrics.Path, a.metrics.Handler()).Methods(http.MethodGet)
		log.Info("Prometheus metrics endpoint exposed at %s", a.cfg.Metrics.Path)
	}

	// Сессия одна на процесс: только локальный браузер и только со своих страниц
	r.Use(middleware.AllowedHosts(a.allowedHosts(), log))
	r.Use(middleware.SameOrigin(log))

	// ============================================================
	// PUBLIC SCREENS
	// ============================================================

	r.HandleFunc("/", home.Handle).Methods(http.MethodGet)

	// Каталог и поиск
	r.HandleFunc("/cars", getCars.Handle).Methods(http.MethodGet)
	r.HandleFunc("/cars/{id:[0-9]+}", getCar.Handle).Methods(http.MethodGet)

	// Бронирование: даты -> сводка -> подтверждение
	r.HandleFunc("/cars/{id:[0-9]+}/book", createBooking.ShowDates).Methods(http.MethodGet)
	r.HandleFunc("/cars/{id:[0-9]+}/book", createBooking.Review).Methods(http.MethodPost)
	r.HandleFunc("/cars/{id:[0-9]+}/book/confirm", createBooking.Confirm).Methods(http.MethodPost)
	r.HandleFunc("/cars/{id:[0-9]+}/book/back", createBooking.Back).Methods(http.MethodPost)

	// Аутентификация
	r.HandleFunc("/login", login.Show).Methods(http.MethodGet)
	r.HandleFunc("/login", login.Handle).Methods(http.MethodPost)
	r.HandleFunc("/register", register.Show).Methods(http.MethodGet)
	r.HandleFunc("/register", register.Handle).Methods(http.MethodPost)
	r.HandleFunc("/logout", logout.Handle).Methods(http.MethodPost)

	r.HandleFunc("/my-bookings", getUserBookings.Handle).Methods(http.MethodGet)

	// ============================================================
	// ADMIN SCREENS (роль ROLE_ADMIN в сессии)
	// ============================================================

	admin := r.PathPrefix("/admin").Subrouter()
	admin.Use(middleware.AdminOnly(a.sessions, log))

	admin.HandleFunc("", adminDashboard.Handle).Methods(http.MethodGet)
	admin.HandleFunc("/cars", createCar.Handle).Methods(http.MethodPost)
	admin.HandleFunc("/cars/{id:[0-9]+}/edit", updateCar.Show).Methods(http.MethodGet)
	admin.HandleFunc("/cars/{id:[0-9]+}", updateCar.Handle).Methods(http.MethodPost)
	admin.HandleFunc("/cars/{id:[0-9]+}/delete", deleteCar.Handle).Methods(http.MethodPost)
	admin.HandleFunc("/bookings/{bookingId:[0-9]+}/cancel", cancelBooking.Handle).Methods(http.MethodPost)

	return r
}

// allowedHosts имена, допустимые в заголовке Host
func (a *App) allowedHosts() []string {
	hosts := append([]string{}, middleware.LoopbackHosts...)
	hosts = append(hosts, a.cfg.Server.Host)
	return append(hosts, a.cfg.Server.AllowedHosts...)
}
