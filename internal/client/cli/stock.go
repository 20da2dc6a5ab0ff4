package cli

import (
	"context"
	"fmt"
	"strconv"
	"strings"
	"text/tabwriter"

	"github.com/iudanet/stockle/internal/models"
	"github.com/iudanet/stockle/internal/validation"
	"github.com/iudanet/stockle/pkg/api"
)

// RunStock ищет товары и печатает остатки таблицей
func (c *Cli) RunStock(ctx context.Context, query string) error {
	var items []models.StockItem
	err := c.retry(ctx, func(ctx context.Context) error {
		found, err := c.client.Stock(ctx, query)
		items = found
		return err
	})
	if err != nil {
		return err
	}

	if len(items) == 0 {
		c.io.Printf("No products match %q.\n", query)
		return nil
	}

	c.io.Printf("Found %d product(s):\n\n", len(items))

	tw := tabwriter.NewWriter(c.io, 0, 0, 2, ' ', 0)
	fmt.Fprintln(tw, "BARCODE\tNAME\tCATEGORY\tPRICE\tVAT\tQUANTITY")
	for _, item := range items {
		fmt.Fprintf(tw, "%s\t%s\t%s\t%.2f\t%g\t%g\n",
			item.Barcode, item.Name, item.Category, item.Price, item.VAT, item.Quantity)
	}
	return tw.Flush()
}

// RunCategories печатает группы товаров
func (c *Cli) RunCategories(ctx context.Context) error {
	var categories []string
	err := c.retry(ctx, func(ctx context.Context) error {
		found, err := c.client.Categories(ctx)
		categories = found
		return err
	})
	if err != nil {
		return err
	}

	if len(categories) == 0 {
		c.io.Println("No categories yet.")
		return nil
	}
	for _, category := range categories {
		c.io.Println(category)
	}
	return nil
}

// RunSetStock устанавливает остатки; аргументы вида barcode=quantity
func (c *Cli) RunSetStock(ctx context.Context, username string, args []string) error {
	updates, err := parseQuantityUpdates(args)
	if err != nil {
		return err
	}

	if _, err := c.authenticate(ctx, username); err != nil {
		return err
	}

	err = c.retry(ctx, func(ctx context.Context) error {
		return c.client.UpdateStock(ctx, updates)
	})
	if err != nil {
		return err
	}

	c.io.Printf("✓ Updated stock for %d product(s)\n", len(updates))
	return nil
}

func parseQuantityUpdates(args []string) ([]api.QuantityUpdate, error) {
	if len(args) == 0 {
		return nil, fmt.Errorf("missing updates. Usage: stockctl set-stock <barcode>=<quantity> ...")
	}

	updates := make([]api.QuantityUpdate, 0, len(args))
	for _, arg := range args {
		barcode, qty, ok := strings.Cut(arg, "=")
		if !ok {
			return nil, fmt.Errorf("invalid update %q, expected <barcode>=<quantity>", arg)
		}
		if err := validation.ValidateBarcode(barcode); err != nil {
			return nil, fmt.Errorf("invalid update %q: %w", arg, err)
		}
		quantity, err := strconv.ParseFloat(qty, 64)
		if err != nil {
			return nil, fmt.Errorf("invalid quantity in %q: %w", arg, err)
		}
		updates = append(updates, api.QuantityUpdate{Barcode: barcode, Quantity: quantity})
	}
	return updates, nil
}
