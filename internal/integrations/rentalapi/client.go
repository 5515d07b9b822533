package rentalapi

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/m04kA/SMC-CarRental/internal/session"
)

const maxErrorBodySize = 1 << 20

// operation описывает вызов backend: имя для логов и метрик и запасное сообщение об ошибке
type operation struct {
	name     string
	fallback string
}

// Client клиент REST backend проката автомобилей
// Все запросы идут на один базовый адрес и несут bearer токен текущей сессии, если он есть
type Client struct {
	baseURL    string
	httpClient *http.Client
	sessions   SessionStore
	metrics    MetricsCollector
	log        Logger
	now        func() time.Time

	Auth     *AuthService
	Cars     *CarService
	Bookings *BookingService
}

// NewClient создает новый экземпляр клиента backend
// timeout = 0 оставляет поведение транспорта по умолчанию
func NewClient(baseURL string, timeout time.Duration, sessions SessionStore, metrics MetricsCollector, log Logger) *Client {
	c := &Client{
		baseURL: strings.TrimRight(baseURL, "/"),
		httpClient: &http.Client{
			Timeout: timeout,
		},
		sessions: sessions,
		metrics:  metrics,
		log:      log,
		now:      time.Now,
	}
	c.Auth = &AuthService{client: c}
	c.Cars = &CarService{client: c}
	c.Bookings = &BookingService{client: c}
	return c
}

// do выполняет запрос и декодирует JSON ответ в out (если out != nil и тело не пустое)
func (c *Client) do(ctx context.Context, op operation, method, path string, query url.Values, body, out interface{}) error {
	endpoint := c.baseURL + path
	if len(query) > 0 {
		endpoint += "?" + query.Encode()
	}

	var reader io.Reader
	if body != nil {
		payload, err := json.Marshal(body)
		if err != nil {
			return &APIError{Op: op.name, Message: op.fallback, kind: ErrInternal,
				cause: fmt.Errorf("failed to encode request: %w", err)}
		}
		reader = bytes.NewReader(payload)
	}

	req, err := http.NewRequestWithContext(ctx, method, endpoint, reader)
	if err != nil {
		return &APIError{Op: op.name, Message: op.fallback, kind: ErrInternal,
			cause: fmt.Errorf("failed to create request: %w", err)}
	}

	requestID := uuid.NewString()
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Accept", "application/json")
	req.Header.Set("X-Request-ID", requestID)
	c.authorize(req, op)

	started := c.now()
	resp, err := c.httpClient.Do(req)
	if err != nil {
		c.observe(op, 0, started)
		c.log.Error("%s: %s %s failed, request_id=%s: %v", op.name, method, path, requestID, err)
		return &APIError{Op: op.name, Message: op.fallback, kind: ErrTransport, cause: err}
	}
	defer resp.Body.Close()
	c.observe(op, resp.StatusCode, started)

	// Обработка статус-кодов
	if resp.StatusCode < http.StatusOK || resp.StatusCode >= http.StatusMultipleChoices {
		apiErr := NewStatusError(op.name, resp.StatusCode, serverMessage(resp.Body, op.fallback))
		c.log.Warn("%s: %s %s returned status=%d, request_id=%s, message=%q",
			op.name, method, path, resp.StatusCode, requestID, apiErr.Message)
		return apiErr
	}

	c.log.Info("%s: %s %s status=%d, request_id=%s", op.name, method, path, resp.StatusCode, requestID)

	if out == nil {
		return nil
	}

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return &APIError{Op: op.name, StatusCode: resp.StatusCode, Message: op.fallback, kind: ErrTransport,
			cause: fmt.Errorf("failed to read response: %w", err)}
	}
	if len(bytes.TrimSpace(data)) == 0 {
		return nil
	}

	// Парсим ответ
	if err := json.Unmarshal(data, out); err != nil {
		c.log.Error("%s: failed to decode response, request_id=%s: %v", op.name, requestID, err)
		return &APIError{Op: op.name, StatusCode: resp.StatusCode, Message: op.fallback, kind: ErrInvalidResponse,
			cause: fmt.Errorf("failed to decode response: %w", err)}
	}
	return nil
}

// authorize прикрепляет bearer токен текущей сессии
// Локальной проверки прав нет: авторизацию выполняет backend
func (c *Client) authorize(req *http.Request, op operation) {
	token := c.sessions.Token()
	if token == "" {
		return
	}
	if session.IsTokenExpired(token, c.now()) {
		c.log.Warn("%s: sending expired access token, backend will reject it", op.name)
	}
	req.Header.Set("Authorization", "Bearer "+token)
}

func (c *Client) observe(op operation, status int, started time.Time) {
	if c.metrics == nil {
		return
	}
	c.metrics.ObserveBackendRequest(op.name, status, c.now().Sub(started))
}

// serverMessage извлекает поле message из тела ошибки или возвращает fallback
func serverMessage(body io.Reader, fallback string) string {
	data, err := io.ReadAll(io.LimitReader(body, maxErrorBodySize))
	if err != nil || len(data) == 0 {
		return fallback
	}

	var errResp errorResponse
	if err := json.Unmarshal(data, &errResp); err != nil {
		return fallback
	}
	if msg := strings.TrimSpace(errResp.Message); msg != "" {
		return msg
	}
	return fallback
}
