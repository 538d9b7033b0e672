package userservice

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/google/uuid"

	"github.com/eklokale/RoomBookingService/internal/domain"
)

// Client клиент для работы с UserService
type Client struct {
	baseURL    string
	httpClient *http.Client
	log        Logger
}

// NewClient создает новый экземпляр клиента UserService
func NewClient(baseURL string, timeout time.Duration, log Logger) *Client {
	return &Client{
		baseURL: baseURL,
		httpClient: &http.Client{
			Timeout: timeout,
		},
		log: log,
	}
}

// GetRole получает роль пользователя.
// Роль обязательна для любого решения о бронировании: без неё
// операция отклоняется, а не выполняется с ролью по умолчанию.
func (c *Client) GetRole(ctx context.Context, userID uuid.UUID) (domain.Role, error) {
	url := fmt.Sprintf("%s/internal/users/%s/role", c.baseURL, userID)

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return "", fmt.Errorf("%w: failed to create request: %v", ErrInternal, err)
	}

	req.Header.Set("Content-Type", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return "", fmt.Errorf("%w: failed to execute request: %v", ErrInternal, err)
	}
	defer resp.Body.Close()

	// Обработка статус-кодов
	switch resp.StatusCode {
	case http.StatusOK:
		// Продолжаем обработку
	case http.StatusBadRequest:
		return "", fmt.Errorf("%w: invalid user ID format", ErrInvalidResponse)
	case http.StatusNotFound:
		return "", ErrRoleNotFound
	default:
		body, _ := io.ReadAll(resp.Body)
		return "", fmt.Errorf("%w: unexpected status code %d: %s", ErrInvalidResponse, resp.StatusCode, string(body))
	}

	// Парсим ответ
	var role RoleResponse
	if err := json.NewDecoder(resp.Body).Decode(&role); err != nil {
		return "", fmt.Errorf("%w: failed to decode response: %v", ErrInvalidResponse, err)
	}

	parsed, err := domain.ParseRole(role.Role)
	if err != nil {
		c.log.Error("UserService returned unknown role %q for user_id=%s", role.Role, userID)
		return "", fmt.Errorf("%w: unknown role %q", ErrInvalidResponse, role.Role)
	}

	return parsed, nil
}
