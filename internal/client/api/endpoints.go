package api

import (
	"context"
	"fmt"
	"net/http"

	"github.com/iudanet/stockle/internal/crypto"
	"github.com/iudanet/stockle/internal/models"
	"github.com/iudanet/stockle/pkg/api"
)

// CheckAvailability - одна попытка GET /status
func (c *Client) CheckAvailability(ctx context.Context) bool {
	status, _, err := c.send(ctx, http.MethodGet, "/status", nil, "")
	if err != nil {
		c.logger.Debug("availability check failed", "error", err)
		return false
	}
	return status == http.StatusOK
}

// CheckSyncRequested - одна попытка GET /sync_now.
// Флаг на сервере одноразовый: true возвращается один раз после POST /sync_now.
func (c *Client) CheckSyncRequested(ctx context.Context) bool {
	status, _, err := c.send(ctx, http.MethodGet, "/sync_now", nil, "")
	if err != nil {
		c.logger.Debug("sync-now check failed", "error", err)
		return false
	}
	return status == http.StatusOK
}

// SendBatch - одна попытка POST /process_data с пакетом изменений
func (c *Client) SendBatch(ctx context.Context, events []models.ChangeEvent) (api.ProcessResult, error) {
	var result api.ProcessResult
	if err := c.Do(ctx, http.MethodPost, "/process_data", events, &result); err != nil {
		return api.ProcessResult{}, fmt.Errorf("send batch failed: %w", err)
	}
	return result, nil
}

// Login аутентифицирует пользователя; полученный токен используется в следующих запросах
func (c *Client) Login(ctx context.Context, username, password string) (*api.TokenResponse, error) {
	hash, err := crypto.HashPassword(password)
	if err != nil {
		return nil, err
	}

	var resp api.TokenResponse
	if err := c.Do(ctx, http.MethodPost, "/login", api.LoginRequest{Username: username, PasswordHash: hash}, &resp); err != nil {
		return nil, fmt.Errorf("login request failed: %w", err)
	}

	c.SetToken(resp.AccessToken)
	return &resp, nil
}

// ChangePassword меняет пароль текущего пользователя
func (c *Client) ChangePassword(ctx context.Context, newPassword string) error {
	hash, err := crypto.HashPassword(newPassword)
	if err != nil {
		return err
	}
	var msg string
	if err := c.Do(ctx, http.MethodPost, "/change_password", api.ChangePasswordRequest{PasswordHash: hash}, &msg); err != nil {
		return fmt.Errorf("change password request failed: %w", err)
	}
	return nil
}

// Stock ищет товары по названию, штрихкоду, группе или количеству
func (c *Client) Stock(ctx context.Context, query string) ([]models.StockItem, error) {
	var resp api.StockResponse
	if err := c.Do(ctx, http.MethodPost, "/stock", api.StockQuery{Query: query}, &resp); err != nil {
		return nil, fmt.Errorf("stock request failed: %w", err)
	}
	return resp.Items, nil
}

// UpdateStock устанавливает остатки товаров
func (c *Client) UpdateStock(ctx context.Context, updates []api.QuantityUpdate) error {
	var msg string
	if err := c.Do(ctx, http.MethodPut, "/stock", api.UpdateStockRequest{Products: updates}, &msg); err != nil {
		return fmt.Errorf("update stock request failed: %w", err)
	}
	return nil
}

// Categories возвращает группы товаров
func (c *Client) Categories(ctx context.Context) ([]string, error) {
	var resp api.CategoriesResponse
	if err := c.Do(ctx, http.MethodGet, "/categories", nil, &resp); err != nil {
		return nil, fmt.Errorf("categories request failed: %w", err)
	}
	return resp.Categories, nil
}

// TriggerSyncNow просит кассы синхронизироваться немедленно
func (c *Client) TriggerSyncNow(ctx context.Context) (string, error) {
	var msg string
	if err := c.Do(ctx, http.MethodPost, "/sync_now", nil, &msg); err != nil {
		return "", fmt.Errorf("sync-now request failed: %w", err)
	}
	return msg, nil
}
