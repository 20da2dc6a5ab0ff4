package cli

import (
	"context"
)

// RunSyncNow просит все кассы синхронизироваться при следующем опросе флага
func (c *Cli) RunSyncNow(ctx context.Context, username string) error {
	if _, err := c.authenticate(ctx, username); err != nil {
		return err
	}

	var message string
	err := c.retry(ctx, func(ctx context.Context) error {
		msg, err := c.client.TriggerSyncNow(ctx)
		message = msg
		return err
	})
	if err != nil {
		return err
	}

	c.io.Printf("✓ %s\n", message)
	c.io.Println("Tills pick up the request on their next poll.")
	return nil
}
