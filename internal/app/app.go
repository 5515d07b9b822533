package app

import (
	"fmt"
	"net/http"
	"time"

	"github.com/m04kA/SMC-CarRental/internal/api/views"
	"github.com/m04kA/SMC-CarRental/internal/config"
	"github.com/m04kA/SMC-CarRental/internal/domain"
	"github.com/m04kA/SMC-CarRental/internal/integrations/rentalapi"
	"github.com/m04kA/SMC-CarRental/internal/session"
	createBookingUC "github.com/m04kA/SMC-CarRental/internal/usecase/create_booking"
	"github.com/m04kA/SMC-CarRental/pkg/logger"
	"github.com/m04kA/SMC-CarRental/pkg/metrics"
)

// App собранное приложение: хранилище сессии, клиент backend, use cases и роутер экранов
type App struct {
	cfg      *config.Config
	log      *logger.Logger
	sessions *session.Store
	metrics  *metrics.Metrics
	client   *rentalapi.Client
	bookings *createBookingUC.UseCase
	renderer *views.Renderer
	handler  http.Handler

	unsubscribe []func()
}

// New собирает приложение по конфигурации
func New(cfg *config.Config, log *logger.Logger) (*App, error) {
	a := &App{cfg: cfg, log: log}

	// Метрики (если включены)
	var collector rentalapi.MetricsCollector
	if cfg.Metrics.Enabled {
		a.metrics = metrics.New(cfg.Metrics.ServiceName)
		collector = a.metrics
		log.Info("Metrics enabled at %s", cfg.Metrics.Path)
	}

	// Сессия в локальном файле
	a.sessions = session.NewStore(session.NewFileStorage(cfg.Session.File), log)
	log.Info("Session storage: %s", cfg.Session.File)

	// Клиент backend
	a.client = rentalapi.NewClient(
		cfg.Backend.URL,
		time.Duration(cfg.Backend.Timeout)*time.Second,
		a.sessions,
		collector,
		log,
	)
	log.Info("Backend client initialized (url=%s timeout=%ds)", cfg.Backend.URL, cfg.Backend.Timeout)

	// Use cases
	a.bookings = createBookingUC.NewUseCase(a.sessions, a.client.Bookings, log)

	// Шаблоны страниц
	renderer, err := views.New()
	if err != nil {
		return nil, fmt.Errorf("failed to parse templates: %w", err)
	}
	a.renderer = renderer

	a.subscribe()
	a.handler = a.router()

	if current := a.sessions.Current(); current != nil {
		log.Info("Restored session for user=%s", current.Username)
	}

	return a, nil
}

// Handler возвращает корневой HTTP обработчик
func (a *App) Handler() http.Handler {
	return a.handler
}

// Sessions возвращает хранилище сессии
func (a *App) Sessions() *session.Store {
	return a.sessions
}

// Close отписывает наблюдателей сессии
func (a *App) Close() {
	for _, unsubscribe := range a.unsubscribe {
		unsubscribe()
	}
	a.unsubscribe = nil
}

// subscribe регистрирует наблюдателей смены сессии
func (a *App) subscribe() {
	// Сводки бронирования привязаны к пользователю, который их создал
	a.unsubscribe = append(a.unsubscribe, a.sessions.Subscribe(func(*domain.Session) {
		a.bookings.Reset()
	}))

	if a.metrics != nil {
		a.metrics.SetSessionActive(a.sessions.Current() != nil)
		a.unsubscribe = append(a.unsubscribe, a.sessions.Subscribe(func(s *domain.Session) {
			a.metrics.SetSessionActive(s != nil)
		}))
	}
}
