package customer

import "context"

type Repository interface {
	Save(ctx context.Context, customer *Customer) error
	Update(ctx context.Context, customer *Customer) error
	GetByID(ctx context.Context, customerID uint) (*Customer, error)
	GetByEmail(ctx context.Context, email string) (*Customer, error)
	GetByUsername(ctx context.Context, username string) (*Customer, error)
	GetByStripeCustomerID(ctx context.Context, stripeCustomerID string) (*Customer, error)
}

type SubscriptionRepository interface {
	Save(ctx context.Context, subscription *Subscription) error
	Update(ctx context.Context, subscription *Subscription) error
	GetByID(ctx context.Context, subscriptionID uint) (*Subscription, error)
	GetByStripeSubscriptionID(ctx context.Context, stripeSubscriptionID string) (*Subscription, error)
	GetActiveByCustomer(ctx context.Context, customerID uint) (*Subscription, error)
	ListByCustomer(ctx context.Context, customerID uint) ([]*Subscription, error)
}
