package cli

import (
	"context"
)

// RunStatus - одна проверка доступности API, без повторов
func (c *Cli) RunStatus(ctx context.Context) error {
	c.io.Println("=== Inventory API Status ===")
	c.io.Println()
	c.io.Printf("Server: %s\n", c.client.BaseURL())

	if c.client.CheckAvailability(ctx) {
		c.io.Println("Status: available")
		return nil
	}

	c.io.Println("Status: unavailable")
	c.io.Println()
	c.io.Println("Tills keep their changes locally and will send them once the API is back.")
	return nil
}
