package customer

import (
	"fmt"
	"time"

	"fractalyx/internal/shared/biztime"
)

type Subscription struct {
	id                   uint
	customerID           uint
	stripeSubscriptionID string
	tier                 Tier
	features             []string
	active               bool
	startDate            time.Time
	endDate              *time.Time
	autoRenew            bool
	createdAt            time.Time
	updatedAt            time.Time
}

func NewSubscription(customerID uint, stripeSubscriptionID string, tier Tier) (*Subscription, error) {
	if customerID == 0 {
		return nil, fmt.Errorf("customer ID is required")
	}
	if stripeSubscriptionID == "" {
		return nil, fmt.Errorf("stripe subscription ID is required")
	}
	if !tier.IsValid() {
		return nil, fmt.Errorf("invalid subscription tier: %s", tier)
	}

	now := biztime.NowUTC()
	return &Subscription{
		customerID:           customerID,
		stripeSubscriptionID: stripeSubscriptionID,
		tier:                 tier,
		features:             tier.Features(),
		active:               true,
		startDate:            now,
		autoRenew:            true,
		createdAt:            now,
		updatedAt:            now,
	}, nil
}

func ReconstructSubscription(
	id uint,
	customerID uint,
	stripeSubscriptionID string,
	tier Tier,
	features []string,
	active bool,
	startDate time.Time,
	endDate *time.Time,
	autoRenew bool,
	createdAt, updatedAt time.Time,
) (*Subscription, error) {
	if id == 0 {
		return nil, fmt.Errorf("subscription ID cannot be zero")
	}
	if customerID == 0 {
		return nil, fmt.Errorf("customer ID is required")
	}
	if !tier.IsValid() {
		return nil, fmt.Errorf("invalid subscription tier: %s", tier)
	}

	return &Subscription{
		id:                   id,
		customerID:           customerID,
		stripeSubscriptionID: stripeSubscriptionID,
		tier:                 tier,
		features:             features,
		active:               active,
		startDate:            startDate,
		endDate:              endDate,
		autoRenew:            autoRenew,
		createdAt:            createdAt,
		updatedAt:            updatedAt,
	}, nil
}

func (s *Subscription) ID() uint {
	return s.id
}

func (s *Subscription) CustomerID() uint {
	return s.customerID
}

func (s *Subscription) StripeSubscriptionID() string {
	return s.stripeSubscriptionID
}

func (s *Subscription) Tier() Tier {
	return s.tier
}

func (s *Subscription) Features() []string {
	return s.features
}

func (s *Subscription) Active() bool {
	return s.active
}

func (s *Subscription) StartDate() time.Time {
	return s.startDate
}

func (s *Subscription) EndDate() *time.Time {
	return s.endDate
}

func (s *Subscription) AutoRenew() bool {
	return s.autoRenew
}

func (s *Subscription) CreatedAt() time.Time {
	return s.createdAt
}

func (s *Subscription) UpdatedAt() time.Time {
	return s.updatedAt
}

func (s *Subscription) SetID(id uint) error {
	if s.id != 0 {
		return fmt.Errorf("subscription ID is already set")
	}
	if id == 0 {
		return fmt.Errorf("subscription ID cannot be zero")
	}
	s.id = id
	return nil
}

func (s *Subscription) ChangeTier(tier Tier) error {
	if !tier.IsValid() {
		return fmt.Errorf("invalid subscription tier: %s", tier)
	}
	s.tier = tier
	s.features = tier.Features()
	s.updatedAt = biztime.NowUTC()
	return nil
}

func (s *Subscription) SetActive(active bool) {
	s.active = active
	s.updatedAt = biztime.NowUTC()
}

func (s *Subscription) SetAutoRenew(autoRenew bool) {
	s.autoRenew = autoRenew
	s.updatedAt = biztime.NowUTC()
}

// Cancel deactivates the subscription and records its end date.
func (s *Subscription) Cancel() {
	now := biztime.NowUTC()
	s.active = false
	s.autoRenew = false
	s.endDate = &now
	s.updatedAt = now
}
