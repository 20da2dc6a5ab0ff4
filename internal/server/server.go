// Package server собирает HTTP API инвентаря: маршруты, цепочку middleware и жизненный цикл сервера.
package server

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net"
	"net/http"
	"time"

	"github.com/gorilla/mux"

	"github.com/iudanet/stockle/internal/crypto"
	"github.com/iudanet/stockle/internal/server/handlers"
	"github.com/iudanet/stockle/internal/server/metrics"
	"github.com/iudanet/stockle/internal/server/middleware"
	"github.com/iudanet/stockle/internal/server/session"
	"github.com/iudanet/stockle/internal/server/storage"
)

// Dependencies - все, что нужно маршрутизатору
type Dependencies struct {
	Logger    *slog.Logger
	Key       *crypto.PrivateKey
	Sessions  session.Store
	Users     storage.UserStorage
	Inventory storage.InventoryStorage
	DB        handlers.Pinger
	Metrics   *metrics.Metrics
	// RateLimiter nil отключает ограничение частоты запросов
	RateLimiter *middleware.RateLimiter
	JWT         handlers.JWTConfig
}

// NewRouter регистрирует маршруты API и оборачивает их цепочкой middleware:
// recovery -> identity -> logging -> rate limit -> secure envelope -> router.
func NewRouter(deps Dependencies) http.Handler {
	logger := deps.Logger

	connect := handlers.NewConnectHandler(logger, deps.Key, deps.Sessions, deps.Metrics)
	status := handlers.NewStatusHandler(logger, deps.DB)
	syncNow := handlers.NewSyncNowHandler(logger)
	auth := handlers.NewAuthHandler(logger, deps.Users, deps.JWT)
	inventory := handlers.NewInventoryHandler(logger, deps.Inventory, deps.Metrics)

	requireAuth := middleware.AuthMiddleware(logger, deps.JWT)

	r := mux.NewRouter()
	r.Use(middleware.MetricsMiddleware(deps.Metrics))

	// Открытые эндпоинты
	r.HandleFunc("/status", status.Status).Methods(http.MethodGet)
	r.HandleFunc("/connect", connect.PublicKey).Methods(http.MethodGet)
	r.HandleFunc("/connect", connect.Handshake).Methods(http.MethodPost)
	r.HandleFunc("/sync_now", syncNow.Check).Methods(http.MethodGet)
	r.Handle("/metrics", deps.Metrics.Handler()).Methods(http.MethodGet)

	// Эндпоинты внутри конверта
	r.HandleFunc("/login", auth.Login).Methods(http.MethodPost)
	r.HandleFunc("/process_data", inventory.ProcessData).Methods(http.MethodPost)
	r.HandleFunc("/stock", inventory.SearchStock).Methods(http.MethodGet, http.MethodPost)
	r.HandleFunc("/categories", inventory.Categories).Methods(http.MethodGet)

	// Требуют access token
	r.Handle("/stock", requireAuth(http.HandlerFunc(inventory.UpdateStock))).Methods(http.MethodPut)
	r.Handle("/sync_now", requireAuth(http.HandlerFunc(syncNow.Trigger))).Methods(http.MethodPost)
	r.Handle("/change_password", requireAuth(http.HandlerFunc(auth.ChangePassword))).Methods(http.MethodPost)

	var h http.Handler = r
	h = middleware.SecureMiddleware(logger, deps.Sessions, deps.Metrics, middleware.DefaultOpenRoutes)(h)
	if deps.RateLimiter != nil {
		h = middleware.RateLimitMiddleware(logger, deps.RateLimiter, deps.Metrics)(h)
	}
	h = middleware.LoggingWithSkip(logger, []string{"/metrics", "/status"})(h)
	h = middleware.ClientIdentityMiddleware(logger)(h)
	h = middleware.RecoveryMiddleware(logger)(h)
	return h
}

// Config - параметры HTTP сервера
type Config struct {
	Addr            string
	ReadTimeout     time.Duration
	WriteTimeout    time.Duration
	ShutdownTimeout time.Duration
}

// Server - HTTP сервер API с корректной остановкой по контексту
type Server struct {
	httpServer      *http.Server
	logger          *slog.Logger
	shutdownTimeout time.Duration
}

// New создает сервер
func New(cfg Config, handler http.Handler, logger *slog.Logger) *Server {
	return &Server{
		httpServer: &http.Server{
			Addr:              cfg.Addr,
			Handler:           handler,
			ReadTimeout:       cfg.ReadTimeout,
			ReadHeaderTimeout: cfg.ReadTimeout,
			WriteTimeout:      cfg.WriteTimeout,
		},
		logger:          logger,
		shutdownTimeout: cfg.ShutdownTimeout,
	}
}

// Run слушает addr до отмены ctx
func (s *Server) Run(ctx context.Context) error {
	ln, err := net.Listen("tcp", s.httpServer.Addr)
	if err != nil {
		return fmt.Errorf("failed to listen on %s: %w", s.httpServer.Addr, err)
	}
	return s.Serve(ctx, ln)
}

// Serve обслуживает соединения ln до отмены ctx, затем ждет завершения активных запросов
func (s *Server) Serve(ctx context.Context, ln net.Listener) error {
	errCh := make(chan error, 1)
	go func() {
		s.logger.Info("inventory API listening", "addr", ln.Addr().String())
		errCh <- s.httpServer.Serve(ln)
	}()

	select {
	case err := <-errCh:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return fmt.Errorf("server failed: %w", err)
	case <-ctx.Done():
	}

	s.logger.Info("shutting down inventory API")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), s.shutdownTimeout)
	defer cancel()
	if err := s.httpServer.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("failed to shutdown server: %w", err)
	}
	if err := <-errCh; err != nil && !errors.Is(err, http.ErrServerClosed) {
		return fmt.Errorf("server failed: %w", err)
	}
	return nil
}
