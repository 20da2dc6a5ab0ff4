// Package inventory раскладывает присланный кассой пакет изменений по видам
// и применяет его к складской базе.
package inventory

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/iudanet/stockle/internal/models"
	"github.com/iudanet/stockle/internal/server/storage"
	"github.com/iudanet/stockle/pkg/api"
)

// BuildChangeSet раскладывает пакет по видам изменений.
// DELETE отменяет ADD/EDIT того же штрихкода, пришедшие в пакете раньше него.
// Невалидные события пропускаются и учитываются в skipped.
func BuildChangeSet(events []models.ChangeEvent) (set storage.ChangeSet, skipped int) {
	var products []models.ChangeEvent

	for _, ev := range events {
		if err := ev.Validate(); err != nil {
			skipped++
			continue
		}

		switch ev.Type {
		case models.ChangeDelete:
			kept := products[:0]
			for _, p := range products {
				if p.Barcode != ev.Barcode {
					kept = append(kept, p)
				}
			}
			products = kept
			set.Deletes = append(set.Deletes, ev)
		case models.ChangeAdd, models.ChangeEdit:
			products = append(products, ev)
		case models.ChangeSale:
			set.Sales = append(set.Sales, ev)
		}
	}

	for _, p := range products {
		if p.Type == models.ChangeAdd {
			set.Adds = append(set.Adds, p)
		} else {
			set.Edits = append(set.Edits, p)
		}
	}

	return set, skipped
}

// Processor применяет пакеты изменений к складу
type Processor struct {
	store  storage.InventoryStorage
	logger *slog.Logger
}

// NewProcessor создает Processor
func NewProcessor(store storage.InventoryStorage, logger *slog.Logger) *Processor {
	return &Processor{
		store:  store,
		logger: logger,
	}
}

// Process применяет пакет целиком или не применяет ничего
func (p *Processor) Process(ctx context.Context, events []models.ChangeEvent) (api.ProcessResult, error) {
	set, skipped := BuildChangeSet(events)
	result := api.ProcessResult{
		Deleted: len(set.Deletes),
		Added:   len(set.Adds),
		Edited:  len(set.Edits),
		Sales:   len(set.Sales),
		Skipped: skipped,
	}

	if skipped > 0 {
		p.logger.WarnContext(ctx, "skipped invalid change events", slog.Int("skipped", skipped))
	}

	if set.Len() == 0 {
		return result, nil
	}

	if err := p.store.ApplyChangeSet(ctx, set); err != nil {
		return api.ProcessResult{}, fmt.Errorf("failed to apply change set: %w", err)
	}

	p.logger.InfoContext(ctx, "change set applied",
		slog.Int("deleted", result.Deleted),
		slog.Int("added", result.Added),
		slog.Int("edited", result.Edited),
		slog.Int("sales", result.Sales))

	return result, nil
}
