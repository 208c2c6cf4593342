package customer

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewSubscription(t *testing.T) {
	sub, err := NewSubscription(9, "sub_abc", TierProfessional)
	require.NoError(t, err)

	assert.True(t, sub.Active())
	assert.True(t, sub.AutoRenew())
	assert.Equal(t, TierProfessional, sub.Tier())
	assert.Equal(t, TierProfessional.Features(), sub.Features())
	assert.Contains(t, sub.Features(), "Unlimited projects")
}

func TestNewSubscription_Validation(t *testing.T) {
	_, err := NewSubscription(0, "sub_abc", TierBasic)
	assert.Error(t, err)

	_, err = NewSubscription(9, "", TierBasic)
	assert.Error(t, err)

	_, err = NewSubscription(9, "sub_abc", Tier("platinum"))
	assert.Error(t, err)
}

func TestSubscription_ChangeTier(t *testing.T) {
	sub, err := NewSubscription(9, "sub_abc", TierBasic)
	require.NoError(t, err)
	assert.Contains(t, sub.Features(), "Up to 5 projects")

	require.NoError(t, sub.ChangeTier(TierEnterprise))
	assert.Equal(t, TierEnterprise, sub.Tier())
	assert.Contains(t, sub.Features(), "Custom integrations")

	assert.Error(t, sub.ChangeTier(Tier("platinum")))
	assert.Equal(t, TierEnterprise, sub.Tier())
}

func TestSubscription_Cancel(t *testing.T) {
	sub, err := NewSubscription(9, "sub_abc", TierBasic)
	require.NoError(t, err)

	sub.Cancel()
	assert.False(t, sub.Active())
	assert.False(t, sub.AutoRenew())
	require.NotNil(t, sub.EndDate())
}
