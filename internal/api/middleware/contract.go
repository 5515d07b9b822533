package middleware

import "time"

// AdminChecker интерфейс проверки роли администратора в текущей сессии
type AdminChecker interface {
	IsAdmin() bool
}

// HTTPMetricsCollector интерфейс сбора HTTP метрик
type HTTPMetricsCollector interface {
	ObserveHTTPRequest(method, route string, status int, duration time.Duration)
}

// Logger интерфейс для логирования
type Logger interface {
	Debug(format string, v ...interface{})
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
