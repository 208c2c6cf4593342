package usecases

import (
	"context"

	"fractalyx/internal/infrastructure/payment/stripe"
	"fractalyx/internal/shared/logger"
)

// ListPlansResult represents the output of listing subscription plans
type ListPlansResult struct {
	Plans []stripe.Plan `json:"plans"`
}

// ListPlansUseCase lists the purchasable subscription plans
type ListPlansUseCase struct {
	gateway PaymentGateway
	logger  logger.Interface
}

// NewListPlansUseCase creates a new instance of ListPlansUseCase
func NewListPlansUseCase(gateway PaymentGateway, logger logger.Interface) *ListPlansUseCase {
	return &ListPlansUseCase{
		gateway: gateway,
		logger:  logger,
	}
}

// Execute lists plans, seeding defaults on first use
func (uc *ListPlansUseCase) Execute(ctx context.Context) (*ListPlansResult, error) {
	plans, err := uc.gateway.ListPlans(ctx)
	if err != nil {
		uc.logger.Errorw("failed to list plans", "error", err)
		return nil, err
	}

	return &ListPlansResult{Plans: plans}, nil
}
