package usecases

import (
	"context"

	"fractalyx/internal/domain/customer"
	"fractalyx/internal/shared/db"
	"fractalyx/internal/shared/errors"
	"fractalyx/internal/shared/logger"
)

// CreateCheckoutSessionCommand represents the input for starting a checkout
type CreateCheckoutSessionCommand struct {
	CustomerID uint   `json:"customer_id"`
	PriceID    string `json:"price_id"`
}

// CreateCheckoutSessionResult carries the provider-hosted checkout URL
type CreateCheckoutSessionResult struct {
	URL string `json:"url"`
}

// CreateCheckoutSessionUseCase starts a subscription checkout, creating the
// provider-side customer on first use and healing stale references.
type CreateCheckoutSessionUseCase struct {
	customerRepo customer.Repository
	gateway      PaymentGateway
	txManager    *db.TransactionManager
	logger       logger.Interface
}

// NewCreateCheckoutSessionUseCase creates a new instance of CreateCheckoutSessionUseCase
func NewCreateCheckoutSessionUseCase(
	customerRepo customer.Repository,
	gateway PaymentGateway,
	txManager *db.TransactionManager,
	logger logger.Interface,
) *CreateCheckoutSessionUseCase {
	return &CreateCheckoutSessionUseCase{
		customerRepo: customerRepo,
		gateway:      gateway,
		txManager:    txManager,
		logger:       logger,
	}
}

// Execute opens a checkout session for the customer
func (uc *CreateCheckoutSessionUseCase) Execute(ctx context.Context, cmd CreateCheckoutSessionCommand) (*CreateCheckoutSessionResult, error) {
	if cmd.PriceID == "" {
		return nil, errors.NewValidationError("price_id is required")
	}

	c, err := uc.customerRepo.GetByID(ctx, cmd.CustomerID)
	if err != nil {
		return nil, err
	}

	stripeCustomerID, err := uc.ensureStripeCustomer(ctx, c)
	if err != nil {
		return nil, err
	}

	url, err := uc.gateway.CreateCheckoutSession(ctx, stripeCustomerID, cmd.PriceID)
	if err != nil {
		uc.logger.Errorw("failed to create checkout session", "customer_id", cmd.CustomerID, "error", err)
		return nil, errors.NewInternalError("failed to start checkout")
	}

	return &CreateCheckoutSessionResult{URL: url}, nil
}

// ensureStripeCustomer returns a live provider-side customer ID, creating one
// when missing or when the stored reference no longer resolves.
func (uc *CreateCheckoutSessionUseCase) ensureStripeCustomer(ctx context.Context, c *customer.Customer) (string, error) {
	if id := c.StripeCustomerID(); id != "" && uc.gateway.CustomerExists(ctx, id) {
		return id, nil
	}

	id, err := uc.gateway.CreateCustomer(ctx, c.Email(), c.Username())
	if err != nil {
		uc.logger.Errorw("failed to create stripe customer", "customer_id", c.ID(), "error", err)
		return "", errors.NewInternalError("failed to register with payment provider")
	}

	c.SetStripeCustomerID(id)
	err = uc.txManager.RunInTransaction(ctx, func(txCtx context.Context) error {
		return uc.customerRepo.Update(txCtx, c)
	})
	if err != nil {
		return "", err
	}

	return id, nil
}
