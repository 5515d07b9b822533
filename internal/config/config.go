package config

import (
	"errors"
	"fmt"
	"net"
	"os"
	"strconv"

	"github.com/BurntSushi/toml"
	"github.com/joho/godotenv"
)

// DefaultHost интерфейс, на котором слушает фронтенд по умолчанию
const DefaultHost = "127.0.0.1"

var (
	// ErrInvalidConfig возвращается, когда конфигурация не проходит валидацию
	ErrInvalidConfig = errors.New("config: invalid configuration")
)

// Config конфигурация приложения
type Config struct {
	Server  ServerConfig  `toml:"server"`
	Backend BackendConfig `toml:"backend"`
	Session SessionConfig `toml:"session"`
	Logs    LogsConfig    `toml:"logs"`
	Metrics MetricsConfig `toml:"metrics"`
}

// ServerConfig настройки HTTP сервера фронтенда (таймауты в секундах)
// Host по умолчанию 127.0.0.1: сессия одна на процесс и не должна быть доступна из сети
type ServerConfig struct {
	Host            string   `toml:"host"`
	HTTPPort        int      `toml:"http_port"`
	ReadTimeout     int      `toml:"read_timeout"`
	WriteTimeout    int      `toml:"write_timeout"`
	IdleTimeout     int      `toml:"idle_timeout"`
	ShutdownTimeout int      `toml:"shutdown_timeout"`
	AllowedHosts    []string `toml:"allowed_hosts"` // имена в заголовке Host помимо loopback и host
}

// Addr адрес для net.Listen в формате host:port
func (s ServerConfig) Addr() string {
	return net.JoinHostPort(s.Host, strconv.Itoa(s.HTTPPort))
}

// BackendConfig настройки REST backend
type BackendConfig struct {
	URL     string `toml:"url"`     // базовый адрес вместе с префиксом /api
	Timeout int    `toml:"timeout"` // 0 = таймаут транспорта по умолчанию
}

// SessionConfig настройки локального хранилища сессии
type SessionConfig struct {
	File string `toml:"file"`
}

// LogsConfig настройки логирования
type LogsConfig struct {
	Level string `toml:"level"`
	File  string `toml:"file"`
}

// MetricsConfig настройки Prometheus метрик
type MetricsConfig struct {
	Enabled     bool   `toml:"enabled"`
	Path        string `toml:"path"`
	ServiceName string `toml:"service_name"`
}

// Default возвращает конфигурацию по умолчанию
func Default() *Config {
	return &Config{
		Server: ServerConfig{
			Host:            DefaultHost,
			HTTPPort:        3000,
			ReadTimeout:     15,
			WriteTimeout:    15,
			IdleTimeout:     60,
			ShutdownTimeout: 10,
		},
		Backend: BackendConfig{
			URL: "http://localhost:8081/api",
		},
		Session: SessionConfig{
			File: ".car-rental/session.json",
		},
		Logs: LogsConfig{
			Level: "info",
		},
		Metrics: MetricsConfig{
			Enabled:     false,
			Path:        "/metrics",
			ServiceName: "car-rental-web",
		},
	}
}

// Load загружает конфигурацию из TOML файла поверх значений по умолчанию,
// затем применяет переменные окружения (и .env файл, если он есть)
func Load(path string) (*Config, error) {
	cfg := Default()

	if _, err := toml.DecodeFile(path, cfg); err != nil {
		return nil, fmt.Errorf("failed to decode %s: %w", path, err)
	}

	// .env опционален
	if err := godotenv.Load(); err != nil && !errors.Is(err, os.ErrNotExist) {
		return nil, fmt.Errorf("failed to load .env: %w", err)
	}

	if err := cfg.applyEnv(); err != nil {
		return nil, err
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

// applyEnv переопределяет значения из переменных окружения CARRENTAL_*
func (c *Config) applyEnv() error {
	if v := os.Getenv("CARRENTAL_BACKEND_URL"); v != "" {
		c.Backend.URL = v
	}
	if v := os.Getenv("CARRENTAL_HTTP_PORT"); v != "" {
		port, err := strconv.Atoi(v)
		if err != nil {
			return fmt.Errorf("%w: CARRENTAL_HTTP_PORT=%q is not a number", ErrInvalidConfig, v)
		}
		c.Server.HTTPPort = port
	}
	if v := os.Getenv("CARRENTAL_HTTP_HOST"); v != "" {
		c.Server.Host = v
	}
	if v := os.Getenv("CARRENTAL_SESSION_FILE"); v != "" {
		c.Session.File = v
	}
	if v := os.Getenv("CARRENTAL_LOG_LEVEL"); v != "" {
		c.Logs.Level = v
	}
	return nil
}

// Validate проверяет обязательные параметры
func (c *Config) Validate() error {
	if c.Backend.URL == "" {
		return fmt.Errorf("%w: backend.url is required", ErrInvalidConfig)
	}
	if c.Backend.Timeout < 0 {
		return fmt.Errorf("%w: backend.timeout must not be negative", ErrInvalidConfig)
	}
	if c.Server.Host == "" {
		return fmt.Errorf("%w: server.host is required", ErrInvalidConfig)
	}
	if c.Server.HTTPPort <= 0 || c.Server.HTTPPort > 65535 {
		return fmt.Errorf("%w: server.http_port must be in 1..65535", ErrInvalidConfig)
	}
	if c.Session.File == "" {
		return fmt.Errorf("%w: session.file is required", ErrInvalidConfig)
	}
	if c.Metrics.Enabled && c.Metrics.Path == "" {
		return fmt.Errorf("%w: metrics.path is required when metrics are enabled", ErrInvalidConfig)
	}
	return nil
}
