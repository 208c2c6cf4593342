package customer

import (
	"fmt"
	"strings"
	"time"

	"fractalyx/internal/shared/biztime"
)

type Customer struct {
	id               uint
	email            string
	username         string
	passwordHash     string
	company          string
	stripeCustomerID string
	createdAt        time.Time
	updatedAt        time.Time
}

func NewCustomer(email, username, passwordHash, company string) (*Customer, error) {
	email = strings.ToLower(strings.TrimSpace(email))
	username = strings.TrimSpace(username)

	if email == "" {
		return nil, fmt.Errorf("email is required")
	}
	if !strings.Contains(email, "@") {
		return nil, fmt.Errorf("invalid email address")
	}
	if username == "" {
		return nil, fmt.Errorf("username is required")
	}
	if passwordHash == "" {
		return nil, fmt.Errorf("password hash is required")
	}

	now := biztime.NowUTC()
	return &Customer{
		email:        email,
		username:     username,
		passwordHash: passwordHash,
		company:      company,
		createdAt:    now,
		updatedAt:    now,
	}, nil
}

func ReconstructCustomer(
	id uint,
	email string,
	username string,
	passwordHash string,
	company string,
	stripeCustomerID string,
	createdAt, updatedAt time.Time,
) (*Customer, error) {
	if id == 0 {
		return nil, fmt.Errorf("customer ID cannot be zero")
	}
	if email == "" {
		return nil, fmt.Errorf("email is required")
	}

	return &Customer{
		id:               id,
		email:            email,
		username:         username,
		passwordHash:     passwordHash,
		company:          company,
		stripeCustomerID: stripeCustomerID,
		createdAt:        createdAt,
		updatedAt:        updatedAt,
	}, nil
}

func (c *Customer) ID() uint {
	return c.id
}

func (c *Customer) Email() string {
	return c.email
}

func (c *Customer) Username() string {
	return c.username
}

func (c *Customer) PasswordHash() string {
	return c.passwordHash
}

func (c *Customer) Company() string {
	return c.company
}

func (c *Customer) StripeCustomerID() string {
	return c.stripeCustomerID
}

func (c *Customer) CreatedAt() time.Time {
	return c.createdAt
}

func (c *Customer) UpdatedAt() time.Time {
	return c.updatedAt
}

func (c *Customer) SetID(id uint) error {
	if c.id != 0 {
		return fmt.Errorf("customer ID is already set")
	}
	if id == 0 {
		return fmt.Errorf("customer ID cannot be zero")
	}
	c.id = id
	return nil
}

// SetStripeCustomerID records the Stripe customer reference created lazily
// on first checkout.
func (c *Customer) SetStripeCustomerID(stripeCustomerID string) {
	c.stripeCustomerID = stripeCustomerID
	c.updatedAt = biztime.NowUTC()
}
