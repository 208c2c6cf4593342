package stripe

import (
	"context"
	"encoding/json"
	"fmt"
	"sort"
	"strings"

	stripego "github.com/stripe/stripe-go/v82"
	"github.com/stripe/stripe-go/v82/client"
	"github.com/stripe/stripe-go/v82/webhook"

	"fractalyx/internal/infrastructure/config"
	"fractalyx/internal/shared/logger"
)

// Plan is a purchasable subscription tier backed by a Stripe price.
type Plan struct {
	PriceID  string   `json:"price_id"`
	Name     string   `json:"name"`
	Tier     string   `json:"tier"`
	Amount   int64    `json:"amount"`
	Currency string   `json:"currency"`
	Interval string   `json:"interval"`
	Features []string `json:"features"`
}

// WebhookEvent is the neutral view of a Stripe event the billing layer
// consumes.
type WebhookEvent struct {
	Type                 string
	StripeCustomerID     string
	StripeSubscriptionID string
	SubscriptionStatus   string
	PriceID              string
}

// defaultPlan seeds a product+price pair when the account has no plans yet.
type defaultPlan struct {
	tier     string
	name     string
	amount   int64
	features []string
}

var defaultPlans = []defaultPlan{
	{
		tier:   "basic",
		name:   "Basic",
		amount: 4999,
		features: []string{
			"1 project",
			"Coordinator chat",
			"Ticket and checkpoint tracking",
		},
	},
	{
		tier:   "professional",
		name:   "Professional",
		amount: 9999,
		features: []string{
			"Unlimited projects",
			"All six role agents",
			"Image analysis",
			"Priority support",
		},
	},
	{
		tier:   "enterprise",
		name:   "Enterprise",
		amount: 19999,
		features: []string{
			"Everything in Professional",
			"Custom agent models",
			"Dedicated support",
			"SLA",
		},
	},
}

// tierOrder sorts plans Basic → Professional → Enterprise.
var tierOrder = map[string]int{
	"basic":        0,
	"professional": 1,
	"enterprise":   2,
}

// Client wraps the Stripe SDK behind the operations the billing layer needs.
type Client struct {
	api    *client.API
	cfg    *config.StripeConfig
	logger logger.Interface
}

func NewClient(cfg *config.StripeConfig, log logger.Interface) *Client {
	api := &client.API{}
	api.Init(cfg.SecretKey, nil)
	return &Client{
		api:    api,
		cfg:    cfg,
		logger: log,
	}
}

// ListPlans returns the recurring plans on the account, seeding the three
// default tiers when none exist yet.
func (c *Client) ListPlans(ctx context.Context) ([]Plan, error) {
	plans, err := c.fetchPlans(ctx)
	if err != nil {
		return nil, err
	}

	if len(plans) == 0 {
		if err := c.seedDefaultPlans(ctx); err != nil {
			return nil, err
		}
		plans, err = c.fetchPlans(ctx)
		if err != nil {
			return nil, err
		}
	}

	sort.SliceStable(plans, func(i, j int) bool {
		return tierOrder[plans[i].Tier] < tierOrder[plans[j].Tier]
	})

	return plans, nil
}

func (c *Client) fetchPlans(ctx context.Context) ([]Plan, error) {
	params := &stripego.PriceListParams{Active: stripego.Bool(true)}
	params.Context = ctx
	params.AddExpand("data.product")

	var plans []Plan
	iter := c.api.Prices.List(params)
	for iter.Next() {
		price := iter.Price()
		if price.Recurring == nil || price.Product == nil {
			continue
		}

		tier := price.Product.Metadata["tier"]
		if tier == "" {
			continue
		}

		var features []string
		if raw := price.Product.Metadata["features"]; raw != "" {
			features = strings.Split(raw, "|")
		}

		plans = append(plans, Plan{
			PriceID:  price.ID,
			Name:     price.Product.Name,
			Tier:     tier,
			Amount:   price.UnitAmount,
			Currency: string(price.Currency),
			Interval: string(price.Recurring.Interval),
			Features: features,
		})
	}
	if err := iter.Err(); err != nil {
		return nil, fmt.Errorf("failed to list prices: %w", err)
	}

	return plans, nil
}

func (c *Client) seedDefaultPlans(ctx context.Context) error {
	c.logger.Info("no plans found on Stripe account, creating defaults")

	for _, p := range defaultPlans {
		productParams := &stripego.ProductParams{
			Name: stripego.String(p.name),
			Metadata: map[string]string{
				"tier":     p.tier,
				"features": strings.Join(p.features, "|"),
			},
		}
		productParams.Context = ctx

		product, err := c.api.Products.New(productParams)
		if err != nil {
			return fmt.Errorf("failed to create product %s: %w", p.name, err)
		}

		priceParams := &stripego.PriceParams{
			Product:    stripego.String(product.ID),
			UnitAmount: stripego.Int64(p.amount),
			Currency:   stripego.String(string(stripego.CurrencyUSD)),
			Recurring: &stripego.PriceRecurringParams{
				Interval: stripego.String(string(stripego.PriceRecurringIntervalMonth)),
			},
		}
		priceParams.Context = ctx

		if _, err := c.api.Prices.New(priceParams); err != nil {
			return fmt.Errorf("failed to create price for %s: %w", p.name, err)
		}
	}

	return nil
}

// CreateCustomer registers the customer on Stripe and returns its ID.
func (c *Client) CreateCustomer(ctx context.Context, email, name string) (string, error) {
	params := &stripego.CustomerParams{
		Email: stripego.String(email),
		Name:  stripego.String(name),
	}
	params.Context = ctx

	cust, err := c.api.Customers.New(params)
	if err != nil {
		return "", fmt.Errorf("failed to create stripe customer: %w", err)
	}
	return cust.ID, nil
}

// CustomerExists reports whether the Stripe customer is still present and not
// deleted. Stale IDs happen when test-mode data is wiped.
func (c *Client) CustomerExists(ctx context.Context, stripeCustomerID string) bool {
	params := &stripego.CustomerParams{}
	params.Context = ctx

	cust, err := c.api.Customers.Get(stripeCustomerID, params)
	if err != nil {
		return false
	}
	return !cust.Deleted
}

// CreateCheckoutSession opens a subscription checkout and returns its URL.
func (c *Client) CreateCheckoutSession(ctx context.Context, stripeCustomerID, priceID string) (string, error) {
	params := &stripego.CheckoutSessionParams{
		Customer: stripego.String(stripeCustomerID),
		Mode:     stripego.String(string(stripego.CheckoutSessionModeSubscription)),
		LineItems: []*stripego.CheckoutSessionLineItemParams{
			{
				Price:    stripego.String(priceID),
				Quantity: stripego.Int64(1),
			},
		},
		SuccessURL: stripego.String(c.cfg.SuccessURL),
		CancelURL:  stripego.String(c.cfg.CancelURL),
	}
	params.Context = ctx

	session, err := c.api.CheckoutSessions.New(params)
	if err != nil {
		return "", fmt.Errorf("failed to create checkout session: %w", err)
	}
	return session.URL, nil
}

// CreatePortalSession opens a billing portal session and returns its URL.
func (c *Client) CreatePortalSession(ctx context.Context, stripeCustomerID string) (string, error) {
	params := &stripego.BillingPortalSessionParams{
		Customer:  stripego.String(stripeCustomerID),
		ReturnURL: stripego.String(c.cfg.PortalReturnURL),
	}
	params.Context = ctx

	session, err := c.api.BillingPortalSessions.New(params)
	if err != nil {
		return "", fmt.Errorf("failed to create portal session: %w", err)
	}
	return session.URL, nil
}

// ParseWebhook verifies the event signature when a webhook secret is
// configured and extracts the fields the billing layer acts on.
func (c *Client) ParseWebhook(payload []byte, signature string) (*WebhookEvent, error) {
	var event stripego.Event
	if c.cfg.WebhookSecret != "" {
		verified, err := webhook.ConstructEvent(payload, signature, c.cfg.WebhookSecret)
		if err != nil {
			return nil, fmt.Errorf("webhook signature verification failed: %w", err)
		}
		event = verified
	} else if err := json.Unmarshal(payload, &event); err != nil {
		return nil, fmt.Errorf("failed to parse webhook payload: %w", err)
	}

	out := &WebhookEvent{Type: string(event.Type)}

	switch event.Type {
	case "checkout.session.completed":
		var session stripego.CheckoutSession
		if err := json.Unmarshal(event.Data.Raw, &session); err != nil {
			return nil, fmt.Errorf("failed to parse checkout session: %w", err)
		}
		if session.Customer != nil {
			out.StripeCustomerID = session.Customer.ID
		}
		if session.Subscription != nil {
			out.StripeSubscriptionID = session.Subscription.ID
		}

	case "customer.subscription.updated", "customer.subscription.deleted":
		var sub stripego.Subscription
		if err := json.Unmarshal(event.Data.Raw, &sub); err != nil {
			return nil, fmt.Errorf("failed to parse subscription: %w", err)
		}
		out.StripeSubscriptionID = sub.ID
		out.SubscriptionStatus = string(sub.Status)
		if sub.Customer != nil {
			out.StripeCustomerID = sub.Customer.ID
		}
		if sub.Items != nil && len(sub.Items.Data) > 0 && sub.Items.Data[0].Price != nil {
			out.PriceID = sub.Items.Data[0].Price.ID
		}
	}

	return out, nil
}
