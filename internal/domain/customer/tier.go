package customer

import "fmt"

type Tier string

const (
	TierBasic        Tier = "basic"
	TierProfessional Tier = "professional"
	TierEnterprise   Tier = "enterprise"
)

var validTiers = map[Tier]bool{
	TierBasic:        true,
	TierProfessional: true,
	TierEnterprise:   true,
}

func (t Tier) String() string {
	return string(t)
}

func (t Tier) IsValid() bool {
	return validTiers[t]
}

func NewTier(s string) (Tier, error) {
	t := Tier(s)
	if !t.IsValid() {
		return "", fmt.Errorf("invalid subscription tier: %s", s)
	}
	return t, nil
}

// Features returns the plan features snapshotted onto new subscriptions.
// The catalog shown to customers lives in Stripe product metadata; this
// list is the local default for each tier.
func (t Tier) Features() []string {
	switch t {
	case TierBasic:
		return []string{
			"Up to 5 projects",
			"3 fractal agents",
			"Basic adaptive intelligence",
			"Email support",
		}
	case TierProfessional:
		return []string{
			"Unlimited projects",
			"Full fractal network",
			"Advanced adaptive intelligence",
			"Priority support",
			"Project analytics",
		}
	case TierEnterprise:
		return []string{
			"Unlimited projects",
			"Custom fractal network",
			"Premium adaptive intelligence",
			"Dedicated support",
			"Advanced analytics",
			"Custom integrations",
			"Team management",
		}
	default:
		return nil
	}
}
