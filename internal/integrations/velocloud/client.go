package velocloud

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"
)

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}

// Client клиент платформы виртуального велоспорта
// Один клиент обслуживает все аккаунты: base URL и учетные данные приходят
// с каждой сессией, таймаут общий на каждый вызов.
// Учетные данные аккаунтов никогда не попадают в логи и тексты ошибок.
type Client struct {
	httpClient *http.Client
	log        Logger
}

// NewClient создает новый экземпляр клиента платформы
func NewClient(timeout time.Duration, log Logger) *Client {
	return &Client{
		httpClient: &http.Client{
			Timeout: timeout,
		},
		log: log,
	}
}

// Login аутентифицируется на платформе и возвращает сессию
// 401/403 трактуются как ErrAuth (неверные учетные данные).
func (c *Client) Login(ctx context.Context, baseURL, email, password string) (*Session, error) {
	body, err := json.Marshal(loginRequest{Email: email, Password: password})
	if err != nil {
		return nil, fmt.Errorf("%w: Login - marshal request: %v", ErrInternal, err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, baseURL+"/api/auth/login", bytes.NewReader(body))
	if err != nil {
		return nil, fmt.Errorf("%w: Login - create request: %v", ErrInternal, err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		// Текст ошибки транспорта не содержит учетных данных
		return nil, fmt.Errorf("%w: Login - execute request: %v", ErrInternal, err)
	}
	defer resp.Body.Close()

	switch resp.StatusCode {
	case http.StatusOK:
		// Продолжаем обработку
	case http.StatusUnauthorized, http.StatusForbidden:
		return nil, ErrAuth
	default:
		return nil, fmt.Errorf("%w: Login - unexpected status code %d", ErrInvalidResponse, resp.StatusCode)
	}

	var loginResp loginResponse
	if err := json.NewDecoder(resp.Body).Decode(&loginResp); err != nil {
		return nil, fmt.Errorf("%w: Login - decode response: %v", ErrInvalidResponse, err)
	}
	if loginResp.Token == "" {
		return nil, fmt.Errorf("%w: Login - empty token", ErrInvalidResponse)
	}

	return &Session{BaseURL: baseURL, Token: loginResp.Token}, nil
}

// FetchProfile получает текущий профиль аккаунта
// 404 терпим: платформа еще не завела профиль, возвращаем пустой.
func (c *Client) FetchProfile(ctx context.Context, session *Session) (*Profile, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, session.BaseURL+"/api/profile", nil)
	if err != nil {
		return nil, fmt.Errorf("%w: FetchProfile - create request: %v", ErrInternal, err)
	}
	c.authorize(req, session)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("%w: FetchProfile - execute request: %v", ErrInternal, err)
	}
	defer resp.Body.Close()

	switch resp.StatusCode {
	case http.StatusOK:
		// Продолжаем обработку
	case http.StatusNotFound:
		return &Profile{}, nil
	case http.StatusUnauthorized, http.StatusForbidden:
		return nil, ErrAuth
	default:
		body, _ := io.ReadAll(resp.Body)
		return nil, fmt.Errorf("%w: FetchProfile - unexpected status code %d: %s", ErrInvalidResponse, resp.StatusCode, string(body))
	}

	var profile Profile
	if err := json.NewDecoder(resp.Body).Decode(&profile); err != nil {
		return nil, fmt.Errorf("%w: FetchProfile - decode response: %v", ErrInvalidResponse, err)
	}

	return &profile, nil
}

// UpdateUser обновляет имя пользователя аккаунта
func (c *Client) UpdateUser(ctx context.Context, session *Session, fields UserFields) error {
	return c.update(ctx, session, "/api/user", "UpdateUser", fields)
}

// UpdateProfile обновляет профиль аккаунта (вес, рост, FTP, пол, дата рождения)
func (c *Client) UpdateProfile(ctx context.Context, session *Session, fields ProfileFields) error {
	return c.update(ctx, session, "/api/profile", "UpdateProfile", fields)
}

func (c *Client) update(ctx context.Context, session *Session, path, method string, payload interface{}) error {
	body, err := json.Marshal(payload)
	if err != nil {
		return fmt.Errorf("%w: %s - marshal request: %v", ErrInternal, method, err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPut, session.BaseURL+path, bytes.NewReader(body))
	if err != nil {
		return fmt.Errorf("%w: %s - create request: %v", ErrInternal, method, err)
	}
	req.Header.Set("Content-Type", "application/json")
	c.authorize(req, session)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("%w: %s - execute request: %v", ErrInternal, method, err)
	}
	defer resp.Body.Close()

	switch resp.StatusCode {
	case http.StatusOK, http.StatusNoContent:
		return nil
	case http.StatusUnauthorized, http.StatusForbidden:
		return ErrAuth
	default:
		respBody, _ := io.ReadAll(resp.Body)
		return fmt.Errorf("%w: %s - unexpected status code %d: %s", ErrInvalidResponse, method, resp.StatusCode, string(respBody))
	}
}

func (c *Client) authorize(req *http.Request, session *Session) {
	req.Header.Set("Authorization", "Bearer "+session.Token)
}
