package cli

import (
	"context"
	"fmt"

	"github.com/iudanet/stockle/internal/validation"
)

// RunChangePassword меняет пароль оператора
func (c *Cli) RunChangePassword(ctx context.Context, username string) error {
	if _, err := c.authenticate(ctx, username); err != nil {
		return err
	}

	newPassword, err := c.io.ReadPassword("New password: ")
	if err != nil {
		return fmt.Errorf("failed to read password: %w", err)
	}
	if err := validation.ValidatePassword(newPassword); err != nil {
		return fmt.Errorf("invalid password: %w", err)
	}

	confirm, err := c.io.ReadPassword("Repeat new password: ")
	if err != nil {
		return fmt.Errorf("failed to read password: %w", err)
	}
	if confirm != newPassword {
		return fmt.Errorf("passwords do not match")
	}

	err = c.retry(ctx, func(ctx context.Context) error {
		return c.client.ChangePassword(ctx, newPassword)
	})
	if err != nil {
		return err
	}

	c.io.Println("✓ Password changed")
	return nil
}
