package usecases

import (
	"context"

	"fractalyx/internal/domain/customer"
	"fractalyx/internal/shared/errors"
	"fractalyx/internal/shared/logger"
)

// CreatePortalSessionCommand represents the input for opening the billing portal
type CreatePortalSessionCommand struct {
	CustomerID uint `json:"customer_id"`
}

// CreatePortalSessionResult carries the provider-hosted portal URL
type CreatePortalSessionResult struct {
	URL string `json:"url"`
}

// CreatePortalSessionUseCase opens the self-service billing portal
type CreatePortalSessionUseCase struct {
	customerRepo customer.Repository
	gateway      PaymentGateway
	logger       logger.Interface
}

// NewCreatePortalSessionUseCase creates a new instance of CreatePortalSessionUseCase
func NewCreatePortalSessionUseCase(
	customerRepo customer.Repository,
	gateway PaymentGateway,
	logger logger.Interface,
) *CreatePortalSessionUseCase {
	return &CreatePortalSessionUseCase{
		customerRepo: customerRepo,
		gateway:      gateway,
		logger:       logger,
	}
}

// Execute opens a billing portal session. Customers without a provider-side
// record have nothing to manage yet.
func (uc *CreatePortalSessionUseCase) Execute(ctx context.Context, cmd CreatePortalSessionCommand) (*CreatePortalSessionResult, error) {
	c, err := uc.customerRepo.GetByID(ctx, cmd.CustomerID)
	if err != nil {
		return nil, err
	}

	if c.StripeCustomerID() == "" {
		return nil, errors.NewValidationError("no billing account for this customer")
	}

	url, err := uc.gateway.CreatePortalSession(ctx, c.StripeCustomerID())
	if err != nil {
		uc.logger.Errorw("failed to create portal session", "customer_id", cmd.CustomerID, "error", err)
		return nil, errors.NewInternalError("failed to open billing portal")
	}

	return &CreatePortalSessionResult{URL: url}, nil
}
