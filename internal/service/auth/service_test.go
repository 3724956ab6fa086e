package auth_test

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"foundit-fast/internal/config"
	"foundit-fast/internal/domain"
	"foundit-fast/internal/repository"
	"foundit-fast/internal/service/auth"
)

func newAuthService() (auth.Service, *repository.Repositories) {
	repos := repository.NewRepositories()
	cfg := &config.Config{
		JWTSecret:        "test-secret",
		JWTAccessExpiry:  15 * time.Minute,
		JWTRefreshExpiry: 24 * time.Hour,
		OTPExpiry:        10 * time.Minute,
	}
	return auth.NewService(repos.User, repos.Session, cfg), repos
}

func registerInput() domain.RegisterInput {
	return domain.RegisterInput{
		Name:     "John Doe",
		Email:    "john@example.com",
		Phone:    "5550101",
		Password: "password123",
	}
}

func TestAuthService_Register(t *testing.T) {
	svc, _ := newAuthService()
	ctx := context.Background()

	t.Run("registers and logs straight in", func(t *testing.T) {
		user, tokens, err := svc.Register(ctx, registerInput())

		require.NoError(t, err)
		assert.Equal(t, domain.RoleUser, user.Role)
		assert.Equal(t, domain.UserActive, user.Status)
		assert.NotEqual(t, "password123", user.PasswordHash)
		require.NotNil(t, tokens)
		assert.NotEmpty(t, tokens.AccessToken)
		assert.NotEmpty(t, tokens.RefreshToken)

		claims, err := svc.ValidateAccessToken(tokens.AccessToken)
		require.NoError(t, err)
		assert.Equal(t, user.ID, claims.UserID)
		assert.Equal(t, user.Email, claims.Email)
	})

	t.Run("duplicate email rejected", func(t *testing.T) {
		_, _, err := svc.Register(ctx, registerInput())
		assert.ErrorIs(t, err, auth.ErrEmailExists)
	})
}

func TestAuthService_Login(t *testing.T) {
	svc, repos := newAuthService()
	ctx := context.Background()

	user, _, err := svc.Register(ctx, registerInput())
	require.NoError(t, err)

	t.Run("success", func(t *testing.T) {
		got, tokens, err := svc.Login(ctx, domain.LoginInput{Email: "john@example.com", Password: "password123"})

		require.NoError(t, err)
		assert.Equal(t, user.ID, got.ID)
		assert.NotEmpty(t, tokens.AccessToken)
	})

	t.Run("wrong password", func(t *testing.T) {
		_, _, err := svc.Login(ctx, domain.LoginInput{Email: "john@example.com", Password: "wrong-password"})
		assert.ErrorIs(t, err, auth.ErrInvalidCredentials)
	})

	t.Run("unknown email", func(t *testing.T) {
		_, _, err := svc.Login(ctx, domain.LoginInput{Email: "nobody@example.com", Password: "password123"})
		assert.ErrorIs(t, err, auth.ErrInvalidCredentials)
	})

	t.Run("blocked account", func(t *testing.T) {
		user.Status = domain.UserBlocked
		require.NoError(t, repos.User.Update(ctx, user))

		_, _, err := svc.Login(ctx, domain.LoginInput{Email: "john@example.com", Password: "password123"})
		assert.ErrorIs(t, err, auth.ErrAccountBlocked)
	})
}

func TestAuthService_RefreshToken(t *testing.T) {
	svc, _ := newAuthService()
	ctx := context.Background()

	_, tokens, err := svc.Register(ctx, registerInput())
	require.NoError(t, err)

	t.Run("rotates the refresh token", func(t *testing.T) {
		next, err := svc.RefreshToken(ctx, tokens.RefreshToken)

		require.NoError(t, err)
		assert.NotEqual(t, tokens.RefreshToken, next.RefreshToken)

		// The presented token is single-use.
		_, err = svc.RefreshToken(ctx, tokens.RefreshToken)
		assert.ErrorIs(t, err, auth.ErrInvalidToken)

		tokens = next
	})

	t.Run("garbage token", func(t *testing.T) {
		_, err := svc.RefreshToken(ctx, "not-a-token")
		assert.ErrorIs(t, err, auth.ErrInvalidToken)
	})

	t.Run("logout revokes", func(t *testing.T) {
		require.NoError(t, svc.Logout(ctx, tokens.RefreshToken))

		_, err := svc.RefreshToken(ctx, tokens.RefreshToken)
		assert.ErrorIs(t, err, auth.ErrInvalidToken)
	})
}

func TestAuthService_ValidateAccessToken(t *testing.T) {
	svc, _ := newAuthService()

	t.Run("garbage", func(t *testing.T) {
		_, err := svc.ValidateAccessToken("not.a.jwt")
		assert.ErrorIs(t, err, auth.ErrInvalidToken)
	})

	t.Run("tampered signature", func(t *testing.T) {
		_, tokens, err := svc.Register(context.Background(), domain.RegisterInput{
			Name: "Jane", Email: "jane@example.com", Password: "password123",
		})
		require.NoError(t, err)

		_, err = svc.ValidateAccessToken(tokens.AccessToken + "x")
		assert.ErrorIs(t, err, auth.ErrInvalidToken)
	})
}

func TestAuthService_PasswordReset(t *testing.T) {
	svc, _ := newAuthService()
	ctx := context.Background()

	_, tokens, err := svc.Register(ctx, registerInput())
	require.NoError(t, err)

	t.Run("unknown email", func(t *testing.T) {
		_, err := svc.RequestPasswordReset(ctx, "nobody@example.com")
		assert.ErrorIs(t, err, auth.ErrUserNotFound)
	})

	otp, err := svc.RequestPasswordReset(ctx, "john@example.com")
	require.NoError(t, err)
	require.Len(t, otp, 6)

	t.Run("wrong code", func(t *testing.T) {
		wrong := "000000"
		if wrong == otp {
			wrong = "000001"
		}
		err := svc.ResetPassword(ctx, domain.ResetPasswordInput{
			Email: "john@example.com", OTP: wrong, NewPassword: "newpassword1",
		})
		assert.ErrorIs(t, err, auth.ErrInvalidOTP)
	})

	t.Run("resets password and revokes sessions", func(t *testing.T) {
		err := svc.ResetPassword(ctx, domain.ResetPasswordInput{
			Email: "JOHN@example.com", OTP: otp, NewPassword: "newpassword1",
		})
		require.NoError(t, err)

		_, _, err = svc.Login(ctx, domain.LoginInput{Email: "john@example.com", Password: "password123"})
		assert.ErrorIs(t, err, auth.ErrInvalidCredentials)

		_, _, err = svc.Login(ctx, domain.LoginInput{Email: "john@example.com", Password: "newpassword1"})
		assert.NoError(t, err)

		// Old refresh tokens died with the reset.
		_, err = svc.RefreshToken(ctx, tokens.RefreshToken)
		assert.ErrorIs(t, err, auth.ErrInvalidToken)
	})

	t.Run("code is single use", func(t *testing.T) {
		err := svc.ResetPassword(ctx, domain.ResetPasswordInput{
			Email: "john@example.com", OTP: otp, NewPassword: "anotherpass1",
		})
		assert.ErrorIs(t, err, auth.ErrInvalidOTP)
	})
}
