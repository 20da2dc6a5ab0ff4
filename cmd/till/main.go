package main

import (
	"context"
	"flag"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/iudanet/stockle/internal/client/api"
	"github.com/iudanet/stockle/internal/client/pos"
	"github.com/iudanet/stockle/internal/client/storage/boltdb"
	"github.com/iudanet/stockle/internal/client/sync"
	"github.com/iudanet/stockle/internal/config"
	"github.com/iudanet/stockle/internal/discovery"
)

var (
	// Version information set via ldflags during build
	Version   = "dev"
	BuildDate = "unknown"
	GitCommit = "unknown"
)

func main() {
	showVersion := flag.Bool("version", false, "Show version information")
	configPath := flag.String("config", "", "Path to YAML config file")
	flag.Parse()

	if *showVersion {
		printVersion()
		os.Exit(0)
	}

	if err := run(*configPath); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func run(configPath string) error {
	cfg, err := config.LoadTill(config.WithConfigFile(configPath))
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}

	level, _ := cfg.Log.SlogLevel()
	logger := slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{Level: level}))
	slog.SetDefault(logger)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	store, err := boltdb.New(ctx, cfg.State.Path)
	if err != nil {
		return fmt.Errorf("failed to open state database: %w", err)
	}
	defer func() {
		if err := store.Close(); err != nil {
			logger.Error("failed to close state database", "error", err)
		}
	}()

	clientID, err := store.ClientID(ctx)
	if err != nil {
		return err
	}

	serverURL, err := resolveServerURL(ctx, cfg, logger)
	if err != nil {
		return err
	}

	reader, err := pos.Open(ctx, cfg.POS.Path, logger)
	if err != nil {
		return err
	}
	defer func() {
		if err := reader.Close(); err != nil {
			logger.Error("failed to close POS database", "error", err)
		}
	}()

	client := api.NewClient(serverURL, clientID, logger, api.WithTimeout(cfg.Server.Timeout))

	coordinator, err := sync.NewCoordinator(ctx, sync.Config{
		Interval:      cfg.Sync.Interval,
		PollInterval:  cfg.Sync.PollInterval,
		TableCapacity: cfg.Table.Capacity,
		MaxLoadFactor: cfg.Table.MaxLoadFactor,
		MinLoadFactor: cfg.Table.MinLoadFactor,
		QueueCapacity: cfg.Sync.QueueCapacity,
		BatchSize:     cfg.Sync.BatchSize,
	}, client, reader, store, store, logger)
	if err != nil {
		return err
	}

	logger.Info("Till agent started",
		"server", serverURL,
		"client_id", clientID,
		"pos", cfg.POS.Path)

	return coordinator.Run(ctx)
}

// resolveServerURL берет адрес API из конфигурации или ищет его через mDNS
func resolveServerURL(ctx context.Context, cfg config.Till, logger *slog.Logger) (string, error) {
	if cfg.Server.URL != "" {
		return cfg.Server.URL, nil
	}

	lookupCtx, cancel := context.WithTimeout(ctx, cfg.MDNS.Timeout)
	defer cancel()

	logger.Info("Looking up inventory API via mDNS", "service", cfg.MDNS.Service)
	url, err := discovery.Lookup(lookupCtx, cfg.MDNS.Service)
	if err != nil {
		return "", fmt.Errorf("failed to discover inventory API (set server.url explicitly): %w", err)
	}
	logger.Info("Inventory API discovered", "url", url)
	return url, nil
}

func printVersion() {
	fmt.Printf("Stockle Till Agent\n")
	fmt.Printf("Version:    %s\n", Version)
	fmt.Printf("Build Date: %s\n", BuildDate)
	fmt.Printf("Git Commit: %s\n", GitCommit)
}
