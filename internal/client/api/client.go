package api

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/url"
	"time"

	gonanoid "github.com/matoous/go-nanoid/v2"

	"github.com/iudanet/articlekeeper/pkg/api"
)

const (
	// DefaultTimeout таймаут одного запроса по умолчанию
	DefaultTimeout = 30 * time.Second

	// RequestIDHeader заголовок корреляции запроса с логами сервера
	RequestIDHeader = "X-Request-ID"

	maxRedirects = 10
)

// Client представляет HTTP клиент для взаимодействия с сервером статей
type Client struct {
	httpClient *http.Client
	baseURL    *url.URL
	logger     *slog.Logger
	retry      retryPolicy
}

// Option настраивает Client
type Option func(*Client)

// WithHTTPClient подменяет http.Client (например, в тестах)
func WithHTTPClient(hc *http.Client) Option {
	return func(c *Client) {
		if hc != nil {
			c.httpClient = hc
		}
	}
}

// WithTimeout задаёт таймаут запроса
func WithTimeout(d time.Duration) Option {
	return func(c *Client) {
		if d > 0 {
			c.httpClient.Timeout = d
		}
	}
}

// WithLogger задаёт логгер для отладочных записей о запросах
func WithLogger(logger *slog.Logger) Option {
	return func(c *Client) {
		if logger != nil {
			c.logger = logger
		}
	}
}

// WithRetry включает повтор GET запросов при транспортных ошибках.
// attempts == 0 отключает повторы.
func WithRetry(attempts uint64, baseDelay time.Duration) Option {
	return func(c *Client) {
		c.retry = retryPolicy{attempts: attempts, baseDelay: baseDelay}
	}
}

// NewClient создает новый API клиент.
// baseURL должен быть абсолютным http(s) адресом, например http://localhost:8080/api/v1
func NewClient(baseURL string, opts ...Option) (*Client, error) {
	base, err := parseBaseURL(baseURL)
	if err != nil {
		return nil, newError("new client", KindInvalidTarget, err)
	}

	c := &Client{
		baseURL: base,
		logger:  slog.New(slog.DiscardHandler),
		httpClient: &http.Client{
			Timeout: DefaultTimeout,
			CheckRedirect: func(req *http.Request, via []*http.Request) error {
				if len(via) >= maxRedirects {
					return fmt.Errorf("stopped after %d redirects", maxRedirects)
				}
				return nil
			},
		},
	}

	for _, opt := range opts {
		opt(c)
	}

	return c, nil
}

// BaseURL возвращает адрес сервера
func (c *Client) BaseURL() string {
	return c.baseURL.String()
}

func parseBaseURL(raw string) (*url.URL, error) {
	if raw == "" {
		return nil, errors.New("base url is empty")
	}
	u, err := url.Parse(raw)
	if err != nil {
		return nil, fmt.Errorf("parse base url: %w", err)
	}
	if u.Scheme != "http" && u.Scheme != "https" {
		return nil, fmt.Errorf("unsupported scheme %q", u.Scheme)
	}
	if u.Host == "" {
		return nil, errors.New("base url has no host")
	}
	// query и fragment базового адреса не используются
	u.RawQuery = ""
	u.Fragment = ""
	return u, nil
}

// resolve строит адрес ресурса: base/resource[/id[/verb]]
func (c *Client) resolve(resource string, segments ...string) (*url.URL, error) {
	if resource == "" {
		return nil, errors.New("resource is empty")
	}
	parts := make([]string, 0, len(segments)+1)
	parts = append(parts, url.PathEscape(resource))
	for _, s := range segments {
		if s == "" {
			return nil, errors.New("empty path segment")
		}
		parts = append(parts, url.PathEscape(s))
	}
	return c.baseURL.JoinPath(parts...), nil
}

// doRequest выполняет HTTP запрос.
// Статус ответа проверяется до попытки декодирования: любой не-2xx это KindServerRejected.
// Если result != nil, пустое тело дает KindEmptyResponse.
func (c *Client) doRequest(ctx context.Context, op, method string, target *url.URL, body, result any) error {
	var payload []byte
	if body != nil {
		data, err := json.Marshal(body)
		if err != nil {
			return newError(op, KindInvalidRequest, fmt.Errorf("failed to marshal request body: %w", err))
		}
		payload = data
	}

	return c.retry.do(ctx, method, func(ctx context.Context) error {
		return c.roundTrip(ctx, op, method, target, payload, result)
	})
}

func (c *Client) roundTrip(ctx context.Context, op, method string, target *url.URL, payload []byte, result any) error {
	var bodyReader io.Reader
	if payload != nil {
		bodyReader = bytes.NewReader(payload)
	}

	req, err := http.NewRequestWithContext(ctx, method, target.String(), bodyReader)
	if err != nil {
		return newError(op, KindInvalidTarget, fmt.Errorf("failed to create request: %w", err))
	}

	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Accept", "application/json")

	requestID, err := gonanoid.New()
	if err == nil {
		req.Header.Set(RequestIDHeader, requestID)
	}

	started := time.Now()
	resp, err := c.httpClient.Do(req)
	if err != nil {
		c.logger.Debug("Request failed",
			"op", op, "method", method, "path", target.Path, "request_id", requestID, "error", err)
		return newError(op, KindTransportFailure, err)
	}
	defer func() {
		_ = resp.Body.Close()
	}()

	// Читаем тело ответа
	respBody, err := io.ReadAll(resp.Body)
	if err != nil {
		return newError(op, KindTransportFailure, fmt.Errorf("failed to read response body: %w", err))
	}

	c.logger.Debug("Request completed",
		"op", op,
		"method", method,
		"path", target.Path,
		"status", resp.StatusCode,
		"request_id", requestID,
		"duration", time.Since(started),
	)

	// Проверяем статус код
	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		rejected := &Error{Op: op, Kind: KindServerRejected, Status: resp.StatusCode}
		var errResp api.ErrorResponse
		if err := json.Unmarshal(respBody, &errResp); err == nil {
			rejected.Message = errResp.Message
			if rejected.Message == "" {
				rejected.Message = errResp.Error
			}
		}
		return rejected
	}

	if result == nil {
		return nil
	}

	if len(bytes.TrimSpace(respBody)) == 0 {
		return newError(op, KindEmptyResponse, nil)
	}

	// Декодируем успешный ответ
	if err := json.Unmarshal(respBody, result); err != nil {
		return newError(op, KindDecodeFailure, fmt.Errorf("failed to decode response: %w", err))
	}

	if v, ok := result.(validator); ok {
		if err := v.validate(); err != nil {
			return newError(op, KindDecodeFailure, err)
		}
	}

	return nil
}

// validator проверяет обязательные поля декодированного ответа
type validator interface {
	validate() error
}
