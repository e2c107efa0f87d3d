package service_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"golang.org/x/crypto/bcrypt"

	"dawati-backend/internal/domain"
	"dawati-backend/internal/security"
	"dawati-backend/internal/service"
)

func newAuthFixture() (*MockUserRepo, service.AuthService) {
	userRepo := new(MockUserRepo)
	tokens := security.NewTokenManager("test-secret", 60, 0)
	return userRepo, service.NewAuthService(userRepo, tokens)
}

func TestAuthService_Signup(t *testing.T) {
	ctx := context.Background()

	t.Run("Success", func(t *testing.T) {
		userRepo, svc := newAuthFixture()
		userRepo.On("GetByEmail", ctx, "noura@test.com").Return(nil, domain.ErrNotFound)
		userRepo.On("Create", ctx, mock.AnythingOfType("*domain.User")).Return(nil)

		user, access, refresh, err := svc.Signup(ctx, "Noura", "Noura@Test.com", "+966501234567", "s3cretpass")
		assert.NoError(t, err)
		assert.Equal(t, "noura@test.com", user.Email)
		assert.NotEmpty(t, access)
		assert.NotEmpty(t, refresh)
		assert.NotEqual(t, "s3cretpass", user.PasswordHash)
	})

	t.Run("Duplicate Email", func(t *testing.T) {
		userRepo, svc := newAuthFixture()
		userRepo.On("GetByEmail", ctx, "noura@test.com").Return(&domain.User{ID: 1}, nil)

		_, _, _, err := svc.Signup(ctx, "Noura", "noura@test.com", "", "s3cretpass")
		assert.True(t, domain.IsValidationError(err))
	})

	t.Run("Short Password", func(t *testing.T) {
		_, svc := newAuthFixture()
		_, _, _, err := svc.Signup(ctx, "Noura", "noura@test.com", "", "short")
		assert.True(t, domain.IsValidationError(err))
	})
}

func TestAuthService_Login(t *testing.T) {
	ctx := context.Background()
	hash, _ := bcrypt.GenerateFromPassword([]byte("s3cretpass"), bcrypt.DefaultCost)
	stored := &domain.User{ID: 1, Email: "noura@test.com", PasswordHash: string(hash)}

	t.Run("Success", func(t *testing.T) {
		userRepo, svc := newAuthFixture()
		userRepo.On("GetByEmail", ctx, "noura@test.com").Return(stored, nil)

		user, access, refresh, err := svc.Login(ctx, "noura@test.com", "s3cretpass")
		assert.NoError(t, err)
		assert.Equal(t, int32(1), user.ID)
		assert.NotEmpty(t, access)
		assert.NotEmpty(t, refresh)
	})

	t.Run("Wrong Password", func(t *testing.T) {
		userRepo, svc := newAuthFixture()
		userRepo.On("GetByEmail", ctx, "noura@test.com").Return(stored, nil)

		_, _, _, err := svc.Login(ctx, "noura@test.com", "wrongpass")
		assert.ErrorIs(t, err, service.ErrInvalidCredentials)
	})

	t.Run("Unknown Email", func(t *testing.T) {
		userRepo, svc := newAuthFixture()
		userRepo.On("GetByEmail", ctx, "ghost@test.com").Return(nil, domain.ErrNotFound)

		_, _, _, err := svc.Login(ctx, "ghost@test.com", "s3cretpass")
		assert.ErrorIs(t, err, service.ErrInvalidCredentials)
	})
}

func TestAuthService_RefreshToken(t *testing.T) {
	ctx := context.Background()
	tokens := security.NewTokenManager("test-secret", 60, 0)

	t.Run("Success", func(t *testing.T) {
		userRepo := new(MockUserRepo)
		svc := service.NewAuthService(userRepo, tokens)
		refresh, err := tokens.GenerateRefreshToken(1, "noura@test.com")
		assert.NoError(t, err)
		userRepo.On("GetByID", ctx, int32(1)).Return(&domain.User{ID: 1, Email: "noura@test.com"}, nil)

		access, newRefresh, err := svc.RefreshToken(ctx, refresh)
		assert.NoError(t, err)
		assert.NotEmpty(t, access)
		assert.NotEmpty(t, newRefresh)
	})

	t.Run("Access Token Is Refused", func(t *testing.T) {
		userRepo := new(MockUserRepo)
		svc := service.NewAuthService(userRepo, tokens)
		access, err := tokens.GenerateAccessToken(1, "noura@test.com", false)
		assert.NoError(t, err)

		_, _, err = svc.RefreshToken(ctx, access)
		assert.ErrorIs(t, err, security.ErrWrongTokenType)
	})
}
