// Package cli реализует команды операторской утилиты stockctl.
package cli

import (
	"context"
	"errors"
	"fmt"

	httpClient "github.com/iudanet/stockle/internal/client/api"
	"github.com/iudanet/stockle/internal/client/iocli"
	"github.com/iudanet/stockle/internal/models"
	"github.com/iudanet/stockle/internal/validation"
	"github.com/iudanet/stockle/pkg/api"
)

//go:generate moq -out client_mock.go . Client

// Client - вызовы API инвентаря, доступные оператору
type Client interface {
	BaseURL() string
	CheckAvailability(ctx context.Context) bool
	Login(ctx context.Context, username, password string) (*api.TokenResponse, error)
	ChangePassword(ctx context.Context, newPassword string) error
	Stock(ctx context.Context, query string) ([]models.StockItem, error)
	UpdateStock(ctx context.Context, updates []api.QuantityUpdate) error
	Categories(ctx context.Context) ([]string, error)
	TriggerSyncNow(ctx context.Context) (string, error)
}

type Cli struct {
	client  Client
	retrier *httpClient.Retrier
	io      iocli.IO
}

// New создает Cli; retrier может быть nil (без повторов)
func New(client Client, retrier *httpClient.Retrier, io iocli.IO) *Cli {
	return &Cli{
		client:  client,
		retrier: retrier,
		io:      io,
	}
}

// retry выполняет сетевую операцию с экспоненциальной задержкой, пока API недоступен
func (c *Cli) retry(ctx context.Context, op func(ctx context.Context) error) error {
	if c.retrier == nil {
		return op(ctx)
	}
	return c.retrier.Do(ctx, op)
}

// authenticate запрашивает учетные данные и получает токен доступа
func (c *Cli) authenticate(ctx context.Context, username string) (*api.TokenResponse, error) {
	if username == "" {
		var err error
		username, err = c.io.ReadInput("Username: ")
		if err != nil {
			return nil, fmt.Errorf("failed to read username: %w", err)
		}
	}
	if err := validation.ValidateUsername(username); err != nil {
		return nil, fmt.Errorf("invalid username: %w", err)
	}

	password, err := c.io.ReadPassword("Password: ")
	if err != nil {
		return nil, fmt.Errorf("failed to read password: %w", err)
	}

	var token *api.TokenResponse
	err = c.retry(ctx, func(ctx context.Context) error {
		resp, loginErr := c.client.Login(ctx, username, password)
		token = resp
		return loginErr
	})
	if err != nil {
		var statusErr *httpClient.StatusError
		if errors.As(err, &statusErr) {
			return nil, fmt.Errorf("login failed: %s", statusErr.Message)
		}
		return nil, err
	}
	return token, nil
}
