package usecases

import (
	"context"

	"fractalyx/internal/shared/biztime"
	"fractalyx/internal/shared/errors"
	"fractalyx/internal/shared/logger"
)

// LogoutCommand represents the input for logout
type LogoutCommand struct {
	RefreshToken string `json:"refresh_token"`
}

// LogoutUseCase revokes the presented refresh token
type LogoutUseCase struct {
	tokens TokenService
	store  TokenStore
	logger logger.Interface
}

// NewLogoutUseCase creates a new instance of LogoutUseCase
func NewLogoutUseCase(
	tokens TokenService,
	store TokenStore,
	logger logger.Interface,
) *LogoutUseCase {
	return &LogoutUseCase{
		tokens: tokens,
		store:  store,
		logger: logger,
	}
}

// Execute revokes the refresh token for the remainder of its lifetime.
// Already-invalid tokens succeed; logout is idempotent.
func (uc *LogoutUseCase) Execute(ctx context.Context, cmd LogoutCommand) error {
	if cmd.RefreshToken == "" {
		return errors.NewValidationError("refresh_token is required")
	}

	claims, err := uc.tokens.Verify(cmd.RefreshToken)
	if err != nil {
		return nil
	}

	if uc.store == nil || claims.ExpiresAt == nil {
		return nil
	}

	ttl := claims.ExpiresAt.Sub(biztime.NowUTC())
	if ttl <= 0 {
		return nil
	}
	if err := uc.store.Revoke(ctx, cmd.RefreshToken, ttl); err != nil {
		uc.logger.Warnw("failed to revoke refresh token", "error", err)
	}

	return nil
}
