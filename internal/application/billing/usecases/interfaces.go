package usecases

import (
	"context"

	"fractalyx/internal/infrastructure/payment/stripe"
)

// PaymentGateway abstracts the payment provider
type PaymentGateway interface {
	ListPlans(ctx context.Context) ([]stripe.Plan, error)
	CreateCustomer(ctx context.Context, email, name string) (string, error)
	CustomerExists(ctx context.Context, stripeCustomerID string) bool
	CreateCheckoutSession(ctx context.Context, stripeCustomerID, priceID string) (string, error)
	CreatePortalSession(ctx context.Context, stripeCustomerID string) (string, error)
	ParseWebhook(payload []byte, signature string) (*stripe.WebhookEvent, error)
}

// ListPlansExecutor defines the interface for listing subscription plans
type ListPlansExecutor interface {
	Execute(ctx context.Context) (*ListPlansResult, error)
}

// CreateCheckoutSessionExecutor defines the interface for starting a checkout
type CreateCheckoutSessionExecutor interface {
	Execute(ctx context.Context, cmd CreateCheckoutSessionCommand) (*CreateCheckoutSessionResult, error)
}

// CreatePortalSessionExecutor defines the interface for opening the billing portal
type CreatePortalSessionExecutor interface {
	Execute(ctx context.Context, cmd CreatePortalSessionCommand) (*CreatePortalSessionResult, error)
}

// HandleWebhookExecutor defines the interface for processing provider webhooks
type HandleWebhookExecutor interface {
	Execute(ctx context.Context, cmd HandleWebhookCommand) error
}
