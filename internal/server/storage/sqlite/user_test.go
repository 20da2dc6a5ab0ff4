package sqlite

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/iudanet/stockle/internal/models"
	"github.com/iudanet/stockle/internal/server/storage"
)

func newUser(username, hash string) *models.User {
	return &models.User{
		ID:           uuid.New().String(),
		Username:     username,
		PasswordHash: hash,
		CreatedAt:    time.Now(),
	}
}

func TestUserStorage_CreateUser(t *testing.T) {
	ctx := context.Background()
	s, cleanup := setupTestStorage(t)
	defer cleanup()

	withLogin := newUser("testuser2", "hash456")
	withLogin.LastLogin = timePtr(time.Now())

	tests := []struct {
		wantError error
		user      *models.User
		name      string
	}{
		{
			name:      "create new user successfully",
			user:      newUser("testuser1", "hash123"),
			wantError: nil,
		},
		{
			name:      "create user with last login",
			user:      withLogin,
			wantError: nil,
		},
		{
			name:      "duplicate username",
			user:      newUser("testuser1", "other"),
			wantError: storage.ErrUserAlreadyExists,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := s.CreateUser(ctx, tt.user)
			if tt.wantError != nil {
				assert.ErrorIs(t, err, tt.wantError)
				return
			}
			require.NoError(t, err)

			// Verify user was created
			retrieved, err := s.GetUserByUsername(ctx, tt.user.Username)
			require.NoError(t, err)
			assert.Equal(t, tt.user.ID, retrieved.ID)
			assert.Equal(t, tt.user.PasswordHash, retrieved.PasswordHash)
			assert.Equal(t, tt.user.LastLogin != nil, retrieved.LastLogin != nil)
		})
	}
}

func TestUserStorage_GetUserByUsername(t *testing.T) {
	ctx := context.Background()
	s, cleanup := setupTestStorage(t)
	defer cleanup()

	user := newUser("findme", "hash123")
	require.NoError(t, s.CreateUser(ctx, user))

	tests := []struct {
		wantError error
		name      string
		username  string
	}{
		{name: "get existing user", username: "findme"},
		{name: "get non-existent user", username: "notfound", wantError: storage.ErrUserNotFound},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			retrieved, err := s.GetUserByUsername(ctx, tt.username)
			if tt.wantError != nil {
				assert.ErrorIs(t, err, tt.wantError)
				assert.Nil(t, retrieved)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, user.ID, retrieved.ID)
			assert.Equal(t, user.Username, retrieved.Username)
			assert.Nil(t, retrieved.LastLogin)
		})
	}
}

func TestUserStorage_UpdatePasswordHash(t *testing.T) {
	ctx := context.Background()
	s, cleanup := setupTestStorage(t)
	defer cleanup()

	require.NoError(t, s.CreateUser(ctx, newUser("admin", "oldhash")))

	require.NoError(t, s.UpdatePasswordHash(ctx, "admin", "newhash"))
	retrieved, err := s.GetUserByUsername(ctx, "admin")
	require.NoError(t, err)
	assert.Equal(t, "newhash", retrieved.PasswordHash)

	err = s.UpdatePasswordHash(ctx, "ghost", "x")
	assert.ErrorIs(t, err, storage.ErrUserNotFound)
}

func TestUserStorage_UpdateLastLogin(t *testing.T) {
	ctx := context.Background()
	s, cleanup := setupTestStorage(t)
	defer cleanup()

	user := newUser("logintest", "hash123")
	require.NoError(t, s.CreateUser(ctx, user))

	tests := []struct {
		loginTime time.Time
		wantError error
		name      string
		userID    string
	}{
		{
			name:      "update last login for existing user",
			userID:    user.ID,
			loginTime: time.Now(),
		},
		{
			name:      "update last login for non-existent user",
			userID:    "nonexistent",
			loginTime: time.Now(),
			wantError: storage.ErrUserNotFound,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := s.UpdateLastLogin(ctx, tt.userID, tt.loginTime)
			if tt.wantError != nil {
				assert.ErrorIs(t, err, tt.wantError)
				return
			}
			require.NoError(t, err)

			retrieved, err := s.GetUserByUsername(ctx, user.Username)
			require.NoError(t, err)
			require.NotNil(t, retrieved.LastLogin)
			// Compare times with 1 second tolerance
			assert.WithinDuration(t, tt.loginTime, *retrieved.LastLogin, time.Second)
		})
	}
}

func TestUserStorage_CountUsers(t *testing.T) {
	ctx := context.Background()
	s, cleanup := setupTestStorage(t)
	defer cleanup()

	n, err := s.CountUsers(ctx)
	require.NoError(t, err)
	assert.Equal(t, 0, n)

	require.NoError(t, s.CreateUser(ctx, newUser("a", "h")))
	require.NoError(t, s.CreateUser(ctx, newUser("b", "h")))

	n, err = s.CountUsers(ctx)
	require.NoError(t, err)
	assert.Equal(t, 2, n)
}

// Helper function
func timePtr(t time.Time) *time.Time {
	return &t
}
