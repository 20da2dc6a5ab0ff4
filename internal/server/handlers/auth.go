package handlers

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"time"

	"github.com/google/uuid"

	"github.com/iudanet/stockle/internal/crypto"
	"github.com/iudanet/stockle/internal/models"
	"github.com/iudanet/stockle/internal/server/storage"
	"github.com/iudanet/stockle/internal/validation"
	"github.com/iudanet/stockle/pkg/api"
)

// DefaultAdminUsername - пользователь, создаваемый при первом запуске
const DefaultAdminUsername = "admin"

// AuthHandler обрабатывает запросы авторизации
type AuthHandler struct {
	responder
	userStorage storage.UserStorage
	jwtConfig   JWTConfig
}

// NewAuthHandler создает новый handler для авторизации
func NewAuthHandler(logger *slog.Logger, userStorage storage.UserStorage, jwtConfig JWTConfig) *AuthHandler {
	return &AuthHandler{
		responder:   responder{logger: logger},
		userStorage: userStorage,
		jwtConfig:   jwtConfig,
	}
}

// Login обрабатывает POST /login
// Аутентификация по SHA-1 хешу пароля
func (h *AuthHandler) Login(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	// Парсим request body
	var req api.LoginRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.logger.WarnContext(ctx, "failed to decode login request", slog.Any("error", err))
		h.sendError(w, "invalid request body", http.StatusBadRequest)
		return
	}

	// Валидация username
	if err := validation.ValidateUsername(req.Username); err != nil {
		h.logger.WarnContext(ctx, "invalid username", slog.String("username", req.Username), slog.Any("error", err))
		h.sendText(w, api.InvalidCredentialsMessage, http.StatusBadRequest)
		return
	}

	if err := validation.ValidatePasswordHash(req.PasswordHash); err != nil {
		h.sendText(w, api.InvalidCredentialsMessage, http.StatusBadRequest)
		return
	}

	// Получаем пользователя из БД
	user, err := h.userStorage.GetUserByUsername(ctx, req.Username)
	if err != nil {
		if errors.Is(err, storage.ErrUserNotFound) {
			h.logger.WarnContext(ctx, "login failed: user not found", slog.String("username", req.Username))
			h.sendText(w, api.InvalidCredentialsMessage, http.StatusBadRequest)
			return
		}
		h.logger.ErrorContext(ctx, "failed to get user", slog.Any("error", err))
		h.sendError(w, "internal server error", http.StatusInternalServerError)
		return
	}

	if err := crypto.VerifyPasswordHash(req.PasswordHash, user.PasswordHash); err != nil {
		h.logger.WarnContext(ctx, "login failed: invalid password", slog.String("username", req.Username))
		h.sendText(w, api.InvalidCredentialsMessage, http.StatusBadRequest)
		return
	}

	// Генерируем JWT access token
	accessToken, expiresIn, err := GenerateAccessToken(h.jwtConfig, user.ID, user.Username)
	if err != nil {
		h.logger.ErrorContext(ctx, "failed to generate access token", slog.Any("error", err))
		h.sendError(w, "internal server error", http.StatusInternalServerError)
		return
	}

	// Обновляем last_login
	if err := h.userStorage.UpdateLastLogin(ctx, user.ID, time.Now()); err != nil {
		// Не критичная ошибка, логируем но не прерываем
		h.logger.WarnContext(ctx, "failed to update last login", slog.Any("error", err))
	}

	h.logger.InfoContext(ctx, "user logged in successfully",
		slog.String("username", user.Username),
		slog.String("user_id", user.ID))

	resp := api.TokenResponse{
		Username:    user.Username,
		AccessToken: accessToken,
		ExpiresIn:   expiresIn,
	}

	h.sendJSON(w, resp, http.StatusOK)
}

// ChangePassword обрабатывает POST /change_password
// Меняет хеш пароля пользователя из access token
func (h *AuthHandler) ChangePassword(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	username, ok := GetUsername(ctx)
	if !ok {
		h.logger.ErrorContext(ctx, "username not found in context")
		h.sendError(w, "Unauthorized", http.StatusUnauthorized)
		return
	}

	var req api.ChangePasswordRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.sendError(w, "invalid request body", http.StatusBadRequest)
		return
	}

	if err := validation.ValidatePasswordHash(req.PasswordHash); err != nil {
		h.sendError(w, err.Error(), http.StatusBadRequest)
		return
	}

	if err := h.userStorage.UpdatePasswordHash(ctx, username, req.PasswordHash); err != nil {
		if errors.Is(err, storage.ErrUserNotFound) {
			h.sendError(w, "user not found", http.StatusNotFound)
			return
		}
		h.logger.ErrorContext(ctx, "failed to update password", slog.Any("error", err))
		h.sendError(w, "internal server error", http.StatusInternalServerError)
		return
	}

	h.logger.InfoContext(ctx, "password changed", slog.String("username", username))

	h.sendText(w, api.PasswordChangedMessage, http.StatusOK)
}

// EnsureDefaultAdmin создает пользователя admin с паролем admin, если пользователей еще нет.
// Возвращает true, если пользователь был создан.
func EnsureDefaultAdmin(ctx context.Context, logger *slog.Logger, users storage.UserStorage) (bool, error) {
	n, err := users.CountUsers(ctx)
	if err != nil {
		return false, err
	}
	if n > 0 {
		return false, nil
	}

	hash, err := crypto.HashPassword(DefaultAdminUsername)
	if err != nil {
		return false, err
	}

	admin := &models.User{
		ID:           uuid.New().String(),
		Username:     DefaultAdminUsername,
		PasswordHash: hash,
		CreatedAt:    time.Now(),
	}
	if err := users.CreateUser(ctx, admin); err != nil {
		if errors.Is(err, storage.ErrUserAlreadyExists) {
			return false, nil
		}
		return false, fmt.Errorf("failed to create default admin: %w", err)
	}

	logger.WarnContext(ctx, "default admin user created, change its password",
		slog.String("username", DefaultAdminUsername))

	return true, nil
}
