package main

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/google/uuid"
	urcli "github.com/urfave/cli/v2"

	"github.com/iudanet/stockle/internal/client/api"
	"github.com/iudanet/stockle/internal/client/cli"
	"github.com/iudanet/stockle/internal/client/iocli"
)

var (
	// Version information set via ldflags during build
	Version   = "dev"
	BuildDate = "unknown"
	GitCommit = "unknown"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	app := cli.NewApp(fmt.Sprintf("%s (commit: %s, built: %s)", Version, GitCommit, BuildDate), connect)
	if err := app.RunContext(ctx, os.Args); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

// connect создает клиент API по глобальным флагам.
// Каждый запуск - новая идентичность клиента и новый обмен ключами.
func connect(c *urcli.Context) (*cli.Cli, error) {
	console := iocli.NewStdio()

	// Логи клиента не нужны оператору, ошибки выводятся самой командой
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))

	client := api.NewClient(c.String("server"), uuid.NewString(), logger,
		api.WithTimeout(c.Duration("timeout")))

	cfg := api.DefaultRetryConfig()
	cfg.MaxRetries = c.Int("retries")
	retrier := api.NewRetrier(cfg, func(attempt int, delay time.Duration, err error) {
		console.Printf("Server unavailable, retrying in %s (attempt %d/%d)...\n", delay, attempt, cfg.MaxRetries)
	})

	return cli.New(client, retrier, console), nil
}
