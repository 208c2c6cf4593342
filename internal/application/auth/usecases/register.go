package usecases

import (
	"context"
	"strings"

	"fractalyx/internal/application/auth/dto"
	"fractalyx/internal/domain/customer"
	"fractalyx/internal/shared/db"
	"fractalyx/internal/shared/errors"
	"fractalyx/internal/shared/logger"
)

// RegisterCommand represents the input for customer registration
type RegisterCommand struct {
	Email    string `json:"email"`
	Username string `json:"username"`
	Password string `json:"password"`
	Company  string `json:"company"`
}

// RegisterResult represents the output of customer registration
type RegisterResult struct {
	Customer     *dto.CustomerDTO `json:"customer"`
	AccessToken  string           `json:"access_token"`
	RefreshToken string           `json:"refresh_token"`
	ExpiresIn    int64            `json:"expires_in"`
}

// RegisterUseCase handles customer registration
type RegisterUseCase struct {
	customerRepo customer.Repository
	hasher       PasswordHasher
	tokens       TokenService
	txManager    *db.TransactionManager
	logger       logger.Interface
}

// NewRegisterUseCase creates a new instance of RegisterUseCase
func NewRegisterUseCase(
	customerRepo customer.Repository,
	hasher PasswordHasher,
	tokens TokenService,
	txManager *db.TransactionManager,
	logger logger.Interface,
) *RegisterUseCase {
	return &RegisterUseCase{
		customerRepo: customerRepo,
		hasher:       hasher,
		tokens:       tokens,
		txManager:    txManager,
		logger:       logger,
	}
}

// Execute registers a customer and issues an initial token pair
func (uc *RegisterUseCase) Execute(ctx context.Context, cmd RegisterCommand) (*RegisterResult, error) {
	if err := validateRegisterCommand(cmd); err != nil {
		return nil, err
	}

	if existing, err := uc.customerRepo.GetByEmail(ctx, cmd.Email); err == nil && existing != nil {
		return nil, errors.NewConflictError("email already registered")
	} else if err != nil && !errors.IsNotFoundError(err) {
		return nil, err
	}

	if existing, err := uc.customerRepo.GetByUsername(ctx, cmd.Username); err == nil && existing != nil {
		return nil, errors.NewConflictError("username already taken")
	} else if err != nil && !errors.IsNotFoundError(err) {
		return nil, err
	}

	hash, err := uc.hasher.Hash(cmd.Password)
	if err != nil {
		uc.logger.Errorw("failed to hash password", "error", err)
		return nil, errors.NewInternalError("failed to process registration")
	}

	c, err := customer.NewCustomer(cmd.Email, cmd.Username, hash, cmd.Company)
	if err != nil {
		return nil, errors.NewValidationError(err.Error())
	}

	err = uc.txManager.RunInTransaction(ctx, func(txCtx context.Context) error {
		return uc.customerRepo.Save(txCtx, c)
	})
	if err != nil {
		return nil, err
	}

	pair, err := uc.tokens.Generate(c.ID(), c.Username())
	if err != nil {
		uc.logger.Errorw("failed to generate tokens", "customer_id", c.ID(), "error", err)
		return nil, errors.NewInternalError("failed to issue tokens")
	}

	uc.logger.Infow("customer registered", "customer_id", c.ID(), "username", c.Username())

	return &RegisterResult{
		Customer:     dto.FromCustomer(c),
		AccessToken:  pair.AccessToken,
		RefreshToken: pair.RefreshToken,
		ExpiresIn:    pair.ExpiresIn,
	}, nil
}

func validateRegisterCommand(cmd RegisterCommand) error {
	if cmd.Email == "" || !strings.Contains(cmd.Email, "@") {
		return errors.NewValidationError("a valid email is required")
	}
	if cmd.Username == "" {
		return errors.NewValidationError("username is required")
	}
	if len(cmd.Password) < 8 {
		return errors.NewValidationError("password must be at least 8 characters")
	}
	return nil
}
