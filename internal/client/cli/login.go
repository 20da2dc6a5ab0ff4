package cli

import (
	"context"
	"time"
)

// RunLogin проверяет учетные данные оператора
func (c *Cli) RunLogin(ctx context.Context, username string) error {
	c.io.Println("=== Login ===")
	c.io.Println()

	token, err := c.authenticate(ctx, username)
	if err != nil {
		return err
	}

	expiresIn := time.Duration(token.ExpiresIn) * time.Second
	c.io.Println()
	c.io.Println("✓ Login successful!")
	c.io.Printf("Username: %s\n", token.Username)
	c.io.Printf("Access token expires in: %s\n", expiresIn)
	return nil
}
