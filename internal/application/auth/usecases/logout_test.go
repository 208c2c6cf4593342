package usecases

import (
	"context"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"fractalyx/internal/infrastructure/auth"
	"fractalyx/internal/shared/biztime"
	"fractalyx/internal/shared/errors"
	"fractalyx/internal/shared/logger"
)

func refreshClaims(expiresAt time.Time) *auth.Claims {
	return &auth.Claims{
		CustomerID: 1,
		Username:   "dev",
		TokenType:  auth.TokenTypeRefresh,
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(expiresAt),
		},
	}
}

func TestLogoutUseCase_Execute(t *testing.T) {
	t.Run("valid token revoked for remaining lifetime", func(t *testing.T) {
		var revokedToken string
		var revokedTTL time.Duration

		tokens := &mockTokenService{
			VerifyFunc: func(tokenString string) (*auth.Claims, error) {
				return refreshClaims(biztime.NowUTC().Add(time.Hour)), nil
			},
		}
		store := &mockTokenStore{
			RevokeFunc: func(ctx context.Context, token string, ttl time.Duration) error {
				revokedToken = token
				revokedTTL = ttl
				return nil
			},
		}

		uc := NewLogoutUseCase(tokens, store, logger.NewLogger())
		err := uc.Execute(context.Background(), LogoutCommand{RefreshToken: "refresh-token"})

		require.NoError(t, err)
		assert.Equal(t, "refresh-token", revokedToken)
		assert.Greater(t, revokedTTL, 55*time.Minute)
	})

	t.Run("invalid token succeeds without revocation", func(t *testing.T) {
		tokens := &mockTokenService{
			VerifyFunc: func(tokenString string) (*auth.Claims, error) {
				return nil, errors.NewUnauthorizedError("invalid token")
			},
		}
		store := &mockTokenStore{
			RevokeFunc: func(ctx context.Context, token string, ttl time.Duration) error {
				t.Fatal("unexpected revoke")
				return nil
			},
		}

		uc := NewLogoutUseCase(tokens, store, logger.NewLogger())
		err := uc.Execute(context.Background(), LogoutCommand{RefreshToken: "garbage"})
		assert.NoError(t, err)
	})

	t.Run("expired token succeeds without revocation", func(t *testing.T) {
		tokens := &mockTokenService{
			VerifyFunc: func(tokenString string) (*auth.Claims, error) {
				return refreshClaims(biztime.NowUTC().Add(-time.Minute)), nil
			},
		}
		store := &mockTokenStore{
			RevokeFunc: func(ctx context.Context, token string, ttl time.Duration) error {
				t.Fatal("unexpected revoke")
				return nil
			},
		}

		uc := NewLogoutUseCase(tokens, store, logger.NewLogger())
		err := uc.Execute(context.Background(), LogoutCommand{RefreshToken: "stale"})
		assert.NoError(t, err)
	})

	t.Run("store failure does not fail logout", func(t *testing.T) {
		tokens := &mockTokenService{
			VerifyFunc: func(tokenString string) (*auth.Claims, error) {
				return refreshClaims(biztime.NowUTC().Add(time.Hour)), nil
			},
		}
		store := &mockTokenStore{
			RevokeFunc: func(ctx context.Context, token string, ttl time.Duration) error {
				return errors.NewInternalError("redis down")
			},
		}

		uc := NewLogoutUseCase(tokens, store, logger.NewLogger())
		err := uc.Execute(context.Background(), LogoutCommand{RefreshToken: "refresh-token"})
		assert.NoError(t, err)
	})

	t.Run("empty token rejected", func(t *testing.T) {
		uc := NewLogoutUseCase(&mockTokenService{}, &mockTokenStore{}, logger.NewLogger())
		err := uc.Execute(context.Background(), LogoutCommand{})
		require.Error(t, err)
		assert.True(t, errors.IsValidationError(err))
	})
}

func TestRefreshTokenUseCase_Execute(t *testing.T) {
	t.Run("revoked token rejected", func(t *testing.T) {
		store := &mockTokenStore{
			IsRevokedFunc: func(ctx context.Context, token string) bool { return true },
		}

		uc := NewRefreshTokenUseCase(&mockTokenService{}, store, logger.NewLogger())
		_, err := uc.Execute(context.Background(), RefreshTokenCommand{RefreshToken: "revoked"})

		require.Error(t, err)
		assert.Equal(t, errors.ErrorTypeUnauthorized, err.(*errors.AppError).Type)
	})

	t.Run("valid token produces new pair", func(t *testing.T) {
		tokens := &mockTokenService{
			RefreshFunc: func(refreshTokenString string) (*auth.TokenPair, error) {
				return &auth.TokenPair{AccessToken: "new-access", RefreshToken: "new-refresh", ExpiresIn: 3600}, nil
			},
		}

		uc := NewRefreshTokenUseCase(tokens, &mockTokenStore{}, logger.NewLogger())
		result, err := uc.Execute(context.Background(), RefreshTokenCommand{RefreshToken: "ok"})

		require.NoError(t, err)
		assert.Equal(t, "new-access", result.AccessToken)
		assert.Equal(t, "new-refresh", result.RefreshToken)
	})
}
