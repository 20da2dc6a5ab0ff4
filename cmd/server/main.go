package main

import (
	"context"
	"flag"
	"fmt"
	"log/slog"
	"net"
	"os"
	"os/signal"
	"strconv"
	"syscall"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/redis/go-redis/v9"

	"github.com/iudanet/stockle/internal/config"
	"github.com/iudanet/stockle/internal/crypto"
	"github.com/iudanet/stockle/internal/discovery"
	"github.com/iudanet/stockle/internal/server"
	"github.com/iudanet/stockle/internal/server/handlers"
	"github.com/iudanet/stockle/internal/server/metrics"
	"github.com/iudanet/stockle/internal/server/middleware"
	"github.com/iudanet/stockle/internal/server/session"
	"github.com/iudanet/stockle/internal/server/storage/sqlite"
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
	cfg, err := config.LoadServer(config.WithConfigFile(configPath))
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}

	level, _ := cfg.Log.SlogLevel()
	logger := slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{Level: level}))
	slog.SetDefault(logger)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	store, err := sqlite.New(ctx, cfg.Database.Path)
	if err != nil {
		return fmt.Errorf("failed to open database: %w", err)
	}
	defer func() {
		if err := store.Close(); err != nil {
			logger.Error("failed to close database", "error", err)
		}
	}()

	if version, err := store.SchemaVersion(ctx); err == nil {
		logger.Info("database ready", "path", cfg.Database.Path, "schema_version", version)
	}

	if _, err := handlers.EnsureDefaultAdmin(ctx, logger, store); err != nil {
		return err
	}

	key, generated, err := crypto.LoadOrGenerateKey(cfg.RSA.KeyPath, cfg.RSA.Bits)
	if err != nil {
		return err
	}
	logger.Info("rsa key ready",
		"fingerprint", key.Fingerprint(),
		"bits", key.N.BitLen(),
		"generated", generated)

	sessions, closeSessions, err := newSessionStore(ctx, cfg, key.Fingerprint())
	if err != nil {
		return err
	}
	defer closeSessions()

	registry := prometheus.NewRegistry()
	registry.MustRegister(collectors.NewGoCollector(), collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}))
	m := metrics.New(registry)

	var limiter *middleware.RateLimiter
	if cfg.RateLimit.Enabled {
		limiter = middleware.NewRateLimiter(cfg.RateLimit.RPS, cfg.RateLimit.Burst, cfg.RateLimit.IdleTTL)
		defer limiter.Stop()
	}

	router := server.NewRouter(server.Dependencies{
		Logger:      logger,
		Key:         key,
		Sessions:    sessions,
		Users:       store,
		Inventory:   store,
		DB:          store,
		Metrics:     m,
		RateLimiter: limiter,
		JWT:         jwtConfig(cfg.JWT),
	})

	ln, err := net.Listen("tcp", cfg.HTTP.Listen)
	if err != nil {
		return fmt.Errorf("failed to listen on %s: %w", cfg.HTTP.Listen, err)
	}

	if cfg.MDNS.Enabled {
		port := ln.Addr().(*net.TCPAddr).Port
		ad, err := discovery.Advertise(cfg.MDNS.Instance, cfg.MDNS.Service, port,
			[]string{"version=" + Version, "port=" + strconv.Itoa(port)})
		if err != nil {
			// API доступен и без анонса: кассы могут указать адрес явно
			logger.Warn("mDNS advertisement disabled", "error", err)
		} else {
			defer ad.Shutdown()
			logger.Info("mDNS service registered", "service", cfg.MDNS.Service, "port", port)
		}
	}

	srv := server.New(server.Config{
		Addr:            cfg.HTTP.Listen,
		ReadTimeout:     cfg.HTTP.ReadTimeout,
		WriteTimeout:    cfg.HTTP.WriteTimeout,
		ShutdownTimeout: cfg.HTTP.ShutdownTimeout,
	}, router, logger)

	return srv.Serve(ctx, ln)
}

// jwtConfig переводит настройки JWT из конфигурации в параметры обработчиков
func jwtConfig(cfg config.JWTConfig) handlers.JWTConfig {
	return handlers.JWTConfig{Secret: []byte(cfg.Secret), AccessTokenTTL: cfg.TTL}
}

// newSessionStore выбирает хранилище ключей сессии по конфигурации
func newSessionStore(ctx context.Context, cfg config.Server, fingerprint string) (session.Store, func(), error) {
	if cfg.Session.Backend != config.SessionBackendRedis {
		return session.NewMemoryStore(), func() {}, nil
	}

	client := redis.NewClient(&redis.Options{
		Addr:     cfg.Redis.Addr,
		Password: cfg.Redis.Password,
		DB:       cfg.Redis.DB,
	})
	if err := client.Ping(ctx).Err(); err != nil {
		_ = client.Close()
		return nil, nil, fmt.Errorf("failed to connect to redis at %s: %w", cfg.Redis.Addr, err)
	}

	closeFn := func() {
		if err := client.Close(); err != nil {
			slog.Error("failed to close redis client", "error", err)
		}
	}
	return session.NewRedisStore(client, fingerprint, cfg.Session.TTL), closeFn, nil
}

func printVersion() {
	fmt.Printf("Stockle Inventory API\n")
	fmt.Printf("Version:    %s\n", Version)
	fmt.Printf("Build Date: %s\n", BuildDate)
	fmt.Printf("Git Commit: %s\n", GitCommit)
}
