package usecases

import (
	"context"

	"fractalyx/internal/shared/errors"
	"fractalyx/internal/shared/logger"
)

// RefreshTokenCommand represents the input for token refresh
type RefreshTokenCommand struct {
	RefreshToken string `json:"refresh_token"`
}

// RefreshTokenResult represents the output of token refresh
type RefreshTokenResult struct {
	AccessToken  string `json:"access_token"`
	RefreshToken string `json:"refresh_token"`
	ExpiresIn    int64  `json:"expires_in"`
}

// RefreshTokenUseCase rotates refresh tokens
type RefreshTokenUseCase struct {
	tokens TokenService
	store  TokenStore
	logger logger.Interface
}

// NewRefreshTokenUseCase creates a new instance of RefreshTokenUseCase
func NewRefreshTokenUseCase(
	tokens TokenService,
	store TokenStore,
	logger logger.Interface,
) *RefreshTokenUseCase {
	return &RefreshTokenUseCase{
		tokens: tokens,
		store:  store,
		logger: logger,
	}
}

// Execute exchanges a refresh token for a fresh pair. Revoked tokens are
// rejected.
func (uc *RefreshTokenUseCase) Execute(ctx context.Context, cmd RefreshTokenCommand) (*RefreshTokenResult, error) {
	if cmd.RefreshToken == "" {
		return nil, errors.NewValidationError("refresh_token is required")
	}

	if uc.store != nil && uc.store.IsRevoked(ctx, cmd.RefreshToken) {
		return nil, errors.NewUnauthorizedError("refresh token has been revoked")
	}

	pair, err := uc.tokens.Refresh(cmd.RefreshToken)
	if err != nil {
		return nil, errors.NewUnauthorizedError("invalid refresh token")
	}

	return &RefreshTokenResult{
		AccessToken:  pair.AccessToken,
		RefreshToken: pair.RefreshToken,
		ExpiresIn:    pair.ExpiresIn,
	}, nil
}
