package usecases

import (
	"context"
	"time"

	"fractalyx/internal/infrastructure/auth"
)

// TokenService abstracts JWT issuance and verification
type TokenService interface {
	Generate(customerID uint, username string) (*auth.TokenPair, error)
	Verify(tokenString string) (*auth.Claims, error)
	Refresh(refreshTokenString string) (*auth.TokenPair, error)
}

// PasswordHasher abstracts password hashing
type PasswordHasher interface {
	Hash(password string) (string, error)
	Verify(password, hash string) error
}

// TokenStore tracks revoked refresh tokens
type TokenStore interface {
	Revoke(ctx context.Context, token string, ttl time.Duration) error
	IsRevoked(ctx context.Context, token string) bool
}

// RegisterExecutor defines the interface for customer registration
type RegisterExecutor interface {
	Execute(ctx context.Context, cmd RegisterCommand) (*RegisterResult, error)
}

// LoginExecutor defines the interface for customer login
type LoginExecutor interface {
	Execute(ctx context.Context, cmd LoginCommand) (*LoginResult, error)
}

// RefreshTokenExecutor defines the interface for token refresh
type RefreshTokenExecutor interface {
	Execute(ctx context.Context, cmd RefreshTokenCommand) (*RefreshTokenResult, error)
}

// LogoutExecutor defines the interface for logout
type LogoutExecutor interface {
	Execute(ctx context.Context, cmd LogoutCommand) error
}
