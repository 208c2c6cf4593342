package usecases

import (
	"context"

	"fractalyx/internal/domain/customer"
	"fractalyx/internal/infrastructure/payment/stripe"
	"fractalyx/internal/shared/db"
	"fractalyx/internal/shared/errors"
	"fractalyx/internal/shared/logger"
)

// HandleWebhookCommand carries the raw webhook request
type HandleWebhookCommand struct {
	Payload   []byte
	Signature string
}

// HandleWebhookUseCase applies provider subscription events to local rows.
// Upserts are keyed by the provider subscription ID, so replayed events are
// harmless.
type HandleWebhookUseCase struct {
	customerRepo     customer.Repository
	subscriptionRepo customer.SubscriptionRepository
	gateway          PaymentGateway
	txManager        *db.TransactionManager
	logger           logger.Interface
}

// NewHandleWebhookUseCase creates a new instance of HandleWebhookUseCase
func NewHandleWebhookUseCase(
	customerRepo customer.Repository,
	subscriptionRepo customer.SubscriptionRepository,
	gateway PaymentGateway,
	txManager *db.TransactionManager,
	logger logger.Interface,
) *HandleWebhookUseCase {
	return &HandleWebhookUseCase{
		customerRepo:     customerRepo,
		subscriptionRepo: subscriptionRepo,
		gateway:          gateway,
		txManager:        txManager,
		logger:           logger,
	}
}

// Execute verifies and applies one webhook event. Event types outside the
// subscription lifecycle are acknowledged without action.
func (uc *HandleWebhookUseCase) Execute(ctx context.Context, cmd HandleWebhookCommand) error {
	event, err := uc.gateway.ParseWebhook(cmd.Payload, cmd.Signature)
	if err != nil {
		return errors.NewBadRequestError(err.Error())
	}

	switch event.Type {
	case "checkout.session.completed":
		return uc.handleCheckoutCompleted(ctx, event)
	case "customer.subscription.updated":
		active := event.SubscriptionStatus == "active" || event.SubscriptionStatus == "trialing"
		return uc.upsertSubscription(ctx, event, active)
	case "customer.subscription.deleted":
		return uc.handleSubscriptionDeleted(ctx, event)
	default:
		uc.logger.Debugw("ignoring webhook event", "type", event.Type)
		return nil
	}
}

func (uc *HandleWebhookUseCase) handleCheckoutCompleted(ctx context.Context, event *stripe.WebhookEvent) error {
	if event.StripeSubscriptionID == "" {
		uc.logger.Warnw("checkout completed without subscription", "stripe_customer_id", event.StripeCustomerID)
		return nil
	}
	return uc.upsertSubscription(ctx, event, true)
}

func (uc *HandleWebhookUseCase) upsertSubscription(ctx context.Context, event *stripe.WebhookEvent, active bool) error {
	sub, err := uc.subscriptionRepo.GetByStripeSubscriptionID(ctx, event.StripeSubscriptionID)
	if err == nil {
		sub.SetActive(active)
		return uc.txManager.RunInTransaction(ctx, func(txCtx context.Context) error {
			return uc.subscriptionRepo.Update(txCtx, sub)
		})
	}
	if !errors.IsNotFoundError(err) {
		return err
	}

	c, err := uc.customerRepo.GetByStripeCustomerID(ctx, event.StripeCustomerID)
	if err != nil {
		if errors.IsNotFoundError(err) {
			uc.logger.Warnw("webhook for unknown customer", "stripe_customer_id", event.StripeCustomerID)
			return nil
		}
		return err
	}

	sub, err = customer.NewSubscription(c.ID(), event.StripeSubscriptionID, customer.TierProfessional)
	if err != nil {
		return errors.NewValidationError(err.Error())
	}
	sub.SetActive(active)

	err = uc.txManager.RunInTransaction(ctx, func(txCtx context.Context) error {
		return uc.subscriptionRepo.Save(txCtx, sub)
	})
	if err != nil {
		return err
	}

	uc.logger.Infow("subscription created from webhook",
		"customer_id", c.ID(),
		"stripe_subscription_id", event.StripeSubscriptionID,
	)
	return nil
}

func (uc *HandleWebhookUseCase) handleSubscriptionDeleted(ctx context.Context, event *stripe.WebhookEvent) error {
	sub, err := uc.subscriptionRepo.GetByStripeSubscriptionID(ctx, event.StripeSubscriptionID)
	if err != nil {
		if errors.IsNotFoundError(err) {
			return nil
		}
		return err
	}

	sub.Cancel()
	return uc.txManager.RunInTransaction(ctx, func(txCtx context.Context) error {
		return uc.subscriptionRepo.Update(txCtx, sub)
	})
}
