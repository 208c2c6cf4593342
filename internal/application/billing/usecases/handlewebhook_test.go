package usecases

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"fractalyx/internal/domain/customer"
	"fractalyx/internal/infrastructure/payment/stripe"
	"fractalyx/internal/shared/errors"
	"fractalyx/internal/shared/logger"
)

func webhookGateway(event *stripe.WebhookEvent) *mockPaymentGateway {
	return &mockPaymentGateway{
		ParseWebhookFunc: func(payload []byte, signature string) (*stripe.WebhookEvent, error) {
			return event, nil
		},
	}
}

func billedCustomer(t *testing.T) *customer.Customer {
	t.Helper()
	c, err := customer.NewCustomer("dev@example.com", "dev", "hash", "")
	require.NoError(t, err)
	require.NoError(t, c.SetID(9))
	c.SetStripeCustomerID("cus_123")
	return c
}

func TestHandleWebhookUseCase_CheckoutCompleted(t *testing.T) {
	t.Run("creates active professional subscription", func(t *testing.T) {
		var saved *customer.Subscription
		subRepo := &mockSubscriptionRepository{
			GetByStripeSubscriptionIDFunc: func(ctx context.Context, id string) (*customer.Subscription, error) {
				return nil, errors.NewNotFoundError("subscription not found")
			},
			SaveFunc: func(ctx context.Context, sub *customer.Subscription) error {
				saved = sub
				return sub.SetID(1)
			},
		}
		custRepo := &mockCustomerRepository{
			GetByStripeCustomerIDFunc: func(ctx context.Context, id string) (*customer.Customer, error) {
				return billedCustomer(t), nil
			},
		}
		gateway := webhookGateway(&stripe.WebhookEvent{
			Type:                 "checkout.session.completed",
			StripeCustomerID:     "cus_123",
			StripeSubscriptionID: "sub_abc",
		})

		uc := NewHandleWebhookUseCase(custRepo, subRepo, gateway, newTestTxManager(t), logger.NewLogger())
		err := uc.Execute(context.Background(), HandleWebhookCommand{Payload: []byte("{}")})

		require.NoError(t, err)
		require.NotNil(t, saved)
		assert.Equal(t, uint(9), saved.CustomerID())
		assert.Equal(t, "sub_abc", saved.StripeSubscriptionID())
		assert.Equal(t, customer.TierProfessional, saved.Tier())
		assert.Equal(t, customer.TierProfessional.Features(), saved.Features())
		assert.True(t, saved.Active())
	})

	t.Run("replayed event updates the existing row", func(t *testing.T) {
		existing, err := customer.NewSubscription(9, "sub_abc", customer.TierProfessional)
		require.NoError(t, err)
		require.NoError(t, existing.SetID(1))

		var updated *customer.Subscription
		subRepo := &mockSubscriptionRepository{
			GetByStripeSubscriptionIDFunc: func(ctx context.Context, id string) (*customer.Subscription, error) {
				return existing, nil
			},
			SaveFunc: func(ctx context.Context, sub *customer.Subscription) error {
				t.Fatal("unexpected save, replay must update")
				return nil
			},
			UpdateFunc: func(ctx context.Context, sub *customer.Subscription) error {
				updated = sub
				return nil
			},
		}
		gateway := webhookGateway(&stripe.WebhookEvent{
			Type:                 "checkout.session.completed",
			StripeCustomerID:     "cus_123",
			StripeSubscriptionID: "sub_abc",
		})

		uc := NewHandleWebhookUseCase(&mockCustomerRepository{}, subRepo, gateway, newTestTxManager(t), logger.NewLogger())
		err = uc.Execute(context.Background(), HandleWebhookCommand{Payload: []byte("{}")})

		require.NoError(t, err)
		require.NotNil(t, updated)
		assert.True(t, updated.Active())
	})

	t.Run("missing subscription ID acknowledged without action", func(t *testing.T) {
		gateway := webhookGateway(&stripe.WebhookEvent{
			Type:             "checkout.session.completed",
			StripeCustomerID: "cus_123",
		})

		uc := NewHandleWebhookUseCase(&mockCustomerRepository{}, &mockSubscriptionRepository{}, gateway, newTestTxManager(t), logger.NewLogger())
		err := uc.Execute(context.Background(), HandleWebhookCommand{Payload: []byte("{}")})
		assert.NoError(t, err)
	})

	t.Run("unknown customer acknowledged without action", func(t *testing.T) {
		subRepo := &mockSubscriptionRepository{
			GetByStripeSubscriptionIDFunc: func(ctx context.Context, id string) (*customer.Subscription, error) {
				return nil, errors.NewNotFoundError("subscription not found")
			},
		}
		custRepo := &mockCustomerRepository{
			GetByStripeCustomerIDFunc: func(ctx context.Context, id string) (*customer.Customer, error) {
				return nil, errors.NewNotFoundError("customer not found")
			},
		}
		gateway := webhookGateway(&stripe.WebhookEvent{
			Type:                 "checkout.session.completed",
			StripeCustomerID:     "cus_unknown",
			StripeSubscriptionID: "sub_abc",
		})

		uc := NewHandleWebhookUseCase(custRepo, subRepo, gateway, newTestTxManager(t), logger.NewLogger())
		err := uc.Execute(context.Background(), HandleWebhookCommand{Payload: []byte("{}")})
		assert.NoError(t, err)
	})
}

func TestHandleWebhookUseCase_SubscriptionLifecycle(t *testing.T) {
	t.Run("past_due update deactivates", func(t *testing.T) {
		existing, err := customer.NewSubscription(9, "sub_abc", customer.TierProfessional)
		require.NoError(t, err)
		require.NoError(t, existing.SetID(1))
		existing.SetActive(true)

		var updated *customer.Subscription
		subRepo := &mockSubscriptionRepository{
			GetByStripeSubscriptionIDFunc: func(ctx context.Context, id string) (*customer.Subscription, error) {
				return existing, nil
			},
			UpdateFunc: func(ctx context.Context, sub *customer.Subscription) error {
				updated = sub
				return nil
			},
		}
		gateway := webhookGateway(&stripe.WebhookEvent{
			Type:                 "customer.subscription.updated",
			StripeCustomerID:     "cus_123",
			StripeSubscriptionID: "sub_abc",
			SubscriptionStatus:   "past_due",
		})

		uc := NewHandleWebhookUseCase(&mockCustomerRepository{}, subRepo, gateway, newTestTxManager(t), logger.NewLogger())
		err = uc.Execute(context.Background(), HandleWebhookCommand{Payload: []byte("{}")})

		require.NoError(t, err)
		require.NotNil(t, updated)
		assert.False(t, updated.Active())
	})

	t.Run("trialing update keeps subscription active", func(t *testing.T) {
		existing, err := customer.NewSubscription(9, "sub_abc", customer.TierProfessional)
		require.NoError(t, err)
		require.NoError(t, existing.SetID(1))

		subRepo := &mockSubscriptionRepository{
			GetByStripeSubscriptionIDFunc: func(ctx context.Context, id string) (*customer.Subscription, error) {
				return existing, nil
			},
		}
		gateway := webhookGateway(&stripe.WebhookEvent{
			Type:                 "customer.subscription.updated",
			StripeSubscriptionID: "sub_abc",
			SubscriptionStatus:   "trialing",
		})

		uc := NewHandleWebhookUseCase(&mockCustomerRepository{}, subRepo, gateway, newTestTxManager(t), logger.NewLogger())
		err = uc.Execute(context.Background(), HandleWebhookCommand{Payload: []byte("{}")})

		require.NoError(t, err)
		assert.True(t, existing.Active())
	})

	t.Run("deleted cancels subscription", func(t *testing.T) {
		existing, err := customer.NewSubscription(9, "sub_abc", customer.TierProfessional)
		require.NoError(t, err)
		require.NoError(t, existing.SetID(1))
		existing.SetActive(true)

		subRepo := &mockSubscriptionRepository{
			GetByStripeSubscriptionIDFunc: func(ctx context.Context, id string) (*customer.Subscription, error) {
				return existing, nil
			},
		}
		gateway := webhookGateway(&stripe.WebhookEvent{
			Type:                 "customer.subscription.deleted",
			StripeSubscriptionID: "sub_abc",
		})

		uc := NewHandleWebhookUseCase(&mockCustomerRepository{}, subRepo, gateway, newTestTxManager(t), logger.NewLogger())
		err = uc.Execute(context.Background(), HandleWebhookCommand{Payload: []byte("{}")})

		require.NoError(t, err)
		assert.False(t, existing.Active())
	})

	t.Run("deleted for unknown subscription acknowledged", func(t *testing.T) {
		subRepo := &mockSubscriptionRepository{
			GetByStripeSubscriptionIDFunc: func(ctx context.Context, id string) (*customer.Subscription, error) {
				return nil, errors.NewNotFoundError("subscription not found")
			},
		}
		gateway := webhookGateway(&stripe.WebhookEvent{
			Type:                 "customer.subscription.deleted",
			StripeSubscriptionID: "sub_missing",
		})

		uc := NewHandleWebhookUseCase(&mockCustomerRepository{}, subRepo, gateway, newTestTxManager(t), logger.NewLogger())
		err := uc.Execute(context.Background(), HandleWebhookCommand{Payload: []byte("{}")})
		assert.NoError(t, err)
	})
}

func TestHandleWebhookUseCase_UnknownEventType(t *testing.T) {
	gateway := webhookGateway(&stripe.WebhookEvent{Type: "invoice.paid"})

	uc := NewHandleWebhookUseCase(&mockCustomerRepository{}, &mockSubscriptionRepository{}, gateway, newTestTxManager(t), logger.NewLogger())
	err := uc.Execute(context.Background(), HandleWebhookCommand{Payload: []byte("{}")})
	assert.NoError(t, err)
}

func TestHandleWebhookUseCase_BadSignature(t *testing.T) {
	gateway := &mockPaymentGateway{
		ParseWebhookFunc: func(payload []byte, signature string) (*stripe.WebhookEvent, error) {
			return nil, errors.NewBadRequestError("signature verification failed")
		},
	}

	uc := NewHandleWebhookUseCase(&mockCustomerRepository{}, &mockSubscriptionRepository{}, gateway, newTestTxManager(t), logger.NewLogger())
	err := uc.Execute(context.Background(), HandleWebhookCommand{Payload: []byte("{}"), Signature: "bad"})

	require.Error(t, err)
	assert.Equal(t, errors.ErrorTypeBadRequest, err.(*errors.AppError).Type)
}
