package usecases

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	"fractalyx/internal/domain/customer"
	"fractalyx/internal/infrastructure/payment/stripe"
	"fractalyx/internal/shared/db"
)

func newTestTxManager(t *testing.T) *db.TransactionManager {
	t.Helper()
	gdb, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	require.NoError(t, err)
	return db.NewTransactionManager(gdb)
}

type mockCustomerRepository struct {
	SaveFunc                  func(ctx context.Context, c *customer.Customer) error
	UpdateFunc                func(ctx context.Context, c *customer.Customer) error
	GetByIDFunc               func(ctx context.Context, customerID uint) (*customer.Customer, error)
	GetByEmailFunc            func(ctx context.Context, email string) (*customer.Customer, error)
	GetByUsernameFunc         func(ctx context.Context, username string) (*customer.Customer, error)
	GetByStripeCustomerIDFunc func(ctx context.Context, stripeCustomerID string) (*customer.Customer, error)
}

func (m *mockCustomerRepository) Save(ctx context.Context, c *customer.Customer) error {
	if m.SaveFunc != nil {
		return m.SaveFunc(ctx, c)
	}
	return nil
}

func (m *mockCustomerRepository) Update(ctx context.Context, c *customer.Customer) error {
	if m.UpdateFunc != nil {
		return m.UpdateFunc(ctx, c)
	}
	return nil
}

func (m *mockCustomerRepository) GetByID(ctx context.Context, customerID uint) (*customer.Customer, error) {
	if m.GetByIDFunc != nil {
		return m.GetByIDFunc(ctx, customerID)
	}
	return nil, nil
}

func (m *mockCustomerRepository) GetByEmail(ctx context.Context, email string) (*customer.Customer, error) {
	if m.GetByEmailFunc != nil {
		return m.GetByEmailFunc(ctx, email)
	}
	return nil, nil
}

func (m *mockCustomerRepository) GetByUsername(ctx context.Context, username string) (*customer.Customer, error) {
	if m.GetByUsernameFunc != nil {
		return m.GetByUsernameFunc(ctx, username)
	}
	return nil, nil
}

func (m *mockCustomerRepository) GetByStripeCustomerID(ctx context.Context, stripeCustomerID string) (*customer.Customer, error) {
	if m.GetByStripeCustomerIDFunc != nil {
		return m.GetByStripeCustomerIDFunc(ctx, stripeCustomerID)
	}
	return nil, nil
}

type mockSubscriptionRepository struct {
	SaveFunc                      func(ctx context.Context, sub *customer.Subscription) error
	UpdateFunc                    func(ctx context.Context, sub *customer.Subscription) error
	GetByIDFunc                   func(ctx context.Context, subscriptionID uint) (*customer.Subscription, error)
	GetByStripeSubscriptionIDFunc func(ctx context.Context, stripeSubscriptionID string) (*customer.Subscription, error)
	GetActiveByCustomerFunc       func(ctx context.Context, customerID uint) (*customer.Subscription, error)
	ListByCustomerFunc            func(ctx context.Context, customerID uint) ([]*customer.Subscription, error)
}

func (m *mockSubscriptionRepository) Save(ctx context.Context, sub *customer.Subscription) error {
	if m.SaveFunc != nil {
		return m.SaveFunc(ctx, sub)
	}
	return nil
}

func (m *mockSubscriptionRepository) Update(ctx context.Context, sub *customer.Subscription) error {
	if m.UpdateFunc != nil {
		return m.UpdateFunc(ctx, sub)
	}
	return nil
}

func (m *mockSubscriptionRepository) GetByID(ctx context.Context, subscriptionID uint) (*customer.Subscription, error) {
	if m.GetByIDFunc != nil {
		return m.GetByIDFunc(ctx, subscriptionID)
	}
	return nil, nil
}

func (m *mockSubscriptionRepository) GetByStripeSubscriptionID(ctx context.Context, stripeSubscriptionID string) (*customer.Subscription, error) {
	if m.GetByStripeSubscriptionIDFunc != nil {
		return m.GetByStripeSubscriptionIDFunc(ctx, stripeSubscriptionID)
	}
	return nil, nil
}

func (m *mockSubscriptionRepository) GetActiveByCustomer(ctx context.Context, customerID uint) (*customer.Subscription, error) {
	if m.GetActiveByCustomerFunc != nil {
		return m.GetActiveByCustomerFunc(ctx, customerID)
	}
	return nil, nil
}

func (m *mockSubscriptionRepository) ListByCustomer(ctx context.Context, customerID uint) ([]*customer.Subscription, error) {
	if m.ListByCustomerFunc != nil {
		return m.ListByCustomerFunc(ctx, customerID)
	}
	return nil, nil
}

type mockPaymentGateway struct {
	ListPlansFunc             func(ctx context.Context) ([]stripe.Plan, error)
	CreateCustomerFunc        func(ctx context.Context, email, name string) (string, error)
	CustomerExistsFunc        func(ctx context.Context, stripeCustomerID string) bool
	CreateCheckoutSessionFunc func(ctx context.Context, stripeCustomerID, priceID string) (string, error)
	CreatePortalSessionFunc   func(ctx context.Context, stripeCustomerID string) (string, error)
	ParseWebhookFunc          func(payload []byte, signature string) (*stripe.WebhookEvent, error)
}

func (m *mockPaymentGateway) ListPlans(ctx context.Context) ([]stripe.Plan, error) {
	if m.ListPlansFunc != nil {
		return m.ListPlansFunc(ctx)
	}
	return nil, nil
}

func (m *mockPaymentGateway) CreateCustomer(ctx context.Context, email, name string) (string, error) {
	if m.CreateCustomerFunc != nil {
		return m.CreateCustomerFunc(ctx, email, name)
	}
	return "cus_mock", nil
}

func (m *mockPaymentGateway) CustomerExists(ctx context.Context, stripeCustomerID string) bool {
	if m.CustomerExistsFunc != nil {
		return m.CustomerExistsFunc(ctx, stripeCustomerID)
	}
	return true
}

func (m *mockPaymentGateway) CreateCheckoutSession(ctx context.Context, stripeCustomerID, priceID string) (string, error) {
	if m.CreateCheckoutSessionFunc != nil {
		return m.CreateCheckoutSessionFunc(ctx, stripeCustomerID, priceID)
	}
	return "https://checkout.example/session", nil
}

func (m *mockPaymentGateway) CreatePortalSession(ctx context.Context, stripeCustomerID string) (string, error) {
	if m.CreatePortalSessionFunc != nil {
		return m.CreatePortalSessionFunc(ctx, stripeCustomerID)
	}
	return "https://portal.example/session", nil
}

func (m *mockPaymentGateway) ParseWebhook(payload []byte, signature string) (*stripe.WebhookEvent, error) {
	if m.ParseWebhookFunc != nil {
		return m.ParseWebhookFunc(payload, signature)
	}
	return &stripe.WebhookEvent{}, nil
}
