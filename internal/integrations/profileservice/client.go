package profileservice

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"
)

// Client клиент для работы с ProfileService
type Client struct {
	baseURL    string
	httpClient *http.Client
	log        Logger
}

// NewClient создает новый экземпляр клиента ProfileService
func NewClient(baseURL string, timeout time.Duration, log Logger) *Client {
	return &Client{
		baseURL: baseURL,
		httpClient: &http.Client{
			Timeout: timeout,
		},
		log: log,
	}
}

// GetCoach получает профиль тренера по его ID
func (c *Client) GetCoach(ctx context.Context, coachID int64) (*Coach, error) {
	url := fmt.Sprintf("%s/internal/coaches/%d", c.baseURL, coachID)

	var coach Coach
	if err := c.getJSON(ctx, url, ErrCoachNotFound, &coach); err != nil {
		return nil, err
	}

	return &coach, nil
}

// GetCoachByUserID получает профиль тренера по ID пользователя
// Возвращает ErrCoachNotFound, если пользователь не является тренером
func (c *Client) GetCoachByUserID(ctx context.Context, userID int64) (*Coach, error) {
	url := fmt.Sprintf("%s/internal/users/%d/coach", c.baseURL, userID)

	var coach Coach
	if err := c.getJSON(ctx, url, ErrCoachNotFound, &coach); err != nil {
		return nil, err
	}

	return &coach, nil
}

// GetUser получает профиль пользователя по его ID
func (c *Client) GetUser(ctx context.Context, userID int64) (*User, error) {
	url := fmt.Sprintf("%s/internal/users/%d", c.baseURL, userID)

	var user User
	if err := c.getJSON(ctx, url, ErrUserNotFound, &user); err != nil {
		return nil, err
	}

	return &user, nil
}

// getJSON выполняет GET запрос и декодирует ответ
// notFoundErr возвращается на 404, чтобы вызывающий код различал сущности
func (c *Client) getJSON(ctx context.Context, url string, notFoundErr error, out interface{}) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return fmt.Errorf("%w: failed to create request: %v", ErrInternal, err)
	}

	req.Header.Set("Content-Type", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		c.log.Error("ProfileService request failed: url=%s, error=%v", url, err)
		return fmt.Errorf("%w: failed to execute request: %v", ErrInternal, err)
	}
	defer resp.Body.Close()

	// Обработка статус-кодов
	switch resp.StatusCode {
	case http.StatusOK:
		// Продолжаем обработку
	case http.StatusBadRequest:
		return fmt.Errorf("%w: invalid identifier format", ErrInvalidResponse)
	case http.StatusNotFound:
		return notFoundErr
	default:
		body, _ := io.ReadAll(resp.Body)
		return fmt.Errorf("%w: unexpected status code %d: %s", ErrInvalidResponse, resp.StatusCode, string(body))
	}

	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("%w: failed to decode response: %v", ErrInvalidResponse, err)
	}

	return nil
}
