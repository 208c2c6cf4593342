package usecases

import (
	"context"
	"strings"

	"fractalyx/internal/application/auth/dto"
	"fractalyx/internal/domain/customer"
	"fractalyx/internal/shared/errors"
	"fractalyx/internal/shared/logger"
)

// LoginCommand represents the input for login. Identifier is either an email
// or a username; anything containing "@" is treated as an email.
type LoginCommand struct {
	Identifier string `json:"identifier"`
	Password   string `json:"password"`
}

// LoginResult represents the output of login
type LoginResult struct {
	Customer     *dto.CustomerDTO `json:"customer"`
	AccessToken  string           `json:"access_token"`
	RefreshToken string           `json:"refresh_token"`
	ExpiresIn    int64            `json:"expires_in"`
}

// LoginUseCase handles customer login
type LoginUseCase struct {
	customerRepo customer.Repository
	hasher       PasswordHasher
	tokens       TokenService
	logger       logger.Interface
}

// NewLoginUseCase creates a new instance of LoginUseCase
func NewLoginUseCase(
	customerRepo customer.Repository,
	hasher PasswordHasher,
	tokens TokenService,
	logger logger.Interface,
) *LoginUseCase {
	return &LoginUseCase{
		customerRepo: customerRepo,
		hasher:       hasher,
		tokens:       tokens,
		logger:       logger,
	}
}

// Execute authenticates the customer and issues a token pair. Unknown
// identifiers and wrong passwords produce the same error.
func (uc *LoginUseCase) Execute(ctx context.Context, cmd LoginCommand) (*LoginResult, error) {
	if cmd.Identifier == "" || cmd.Password == "" {
		return nil, errors.NewValidationError("identifier and password are required")
	}

	var c *customer.Customer
	var err error
	if strings.Contains(cmd.Identifier, "@") {
		c, err = uc.customerRepo.GetByEmail(ctx, strings.ToLower(cmd.Identifier))
	} else {
		c, err = uc.customerRepo.GetByUsername(ctx, cmd.Identifier)
	}
	if err != nil {
		if errors.IsNotFoundError(err) {
			return nil, errors.NewUnauthorizedError("invalid credentials")
		}
		return nil, err
	}

	if err := uc.hasher.Verify(cmd.Password, c.PasswordHash()); err != nil {
		uc.logger.Warnw("failed login attempt", "customer_id", c.ID())
		return nil, errors.NewUnauthorizedError("invalid credentials")
	}

	pair, err := uc.tokens.Generate(c.ID(), c.Username())
	if err != nil {
		uc.logger.Errorw("failed to generate tokens", "customer_id", c.ID(), "error", err)
		return nil, errors.NewInternalError("failed to issue tokens")
	}

	return &LoginResult{
		Customer:     dto.FromCustomer(c),
		AccessToken:  pair.AccessToken,
		RefreshToken: pair.RefreshToken,
		ExpiresIn:    pair.ExpiresIn,
	}, nil
}
