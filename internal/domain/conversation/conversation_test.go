package conversation

import (
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewConversation(t *testing.T) {
	t.Run("explicit title is kept", func(t *testing.T) {
		conv, err := NewConversation(1, 2, "Sprint planning")
		require.NoError(t, err)
		assert.Equal(t, "Sprint planning", conv.Title())
		assert.False(t, conv.HasDefaultTitle())
	})

	t.Run("empty title falls back to timestamp", func(t *testing.T) {
		conv, err := NewConversation(1, 2, "")
		require.NoError(t, err)

		_, parseErr := time.Parse(DefaultTitleLayout, conv.Title())
		assert.NoError(t, parseErr)
		assert.True(t, conv.HasDefaultTitle())
	})

	t.Run("missing customer rejected", func(t *testing.T) {
		_, err := NewConversation(0, 2, "x")
		assert.Error(t, err)
	})

	t.Run("missing project rejected", func(t *testing.T) {
		_, err := NewConversation(1, 0, "x")
		assert.Error(t, err)
	})
}

func TestConversation_DeriveTitleFrom(t *testing.T) {
	t.Run("default title replaced with message preview", func(t *testing.T) {
		conv, err := NewConversation(1, 2, "")
		require.NoError(t, err)

		conv.DeriveTitleFrom("Set up the CI pipeline")
		assert.Equal(t, "Set up the CI pipeline", conv.Title())
	})

	t.Run("long message cut at 30 runes with ellipsis", func(t *testing.T) {
		conv, err := NewConversation(1, 2, "")
		require.NoError(t, err)

		msg := strings.Repeat("a", 45)
		conv.DeriveTitleFrom(msg)
		assert.Equal(t, strings.Repeat("a", 30)+"...", conv.Title())
	})

	t.Run("multibyte runes counted as runes", func(t *testing.T) {
		conv, err := NewConversation(1, 2, "")
		require.NoError(t, err)

		msg := strings.Repeat("日", 31)
		conv.DeriveTitleFrom(msg)
		assert.Equal(t, strings.Repeat("日", 30)+"...", conv.Title())
	})

	t.Run("explicit title untouched", func(t *testing.T) {
		conv, err := NewConversation(1, 2, "Release review")
		require.NoError(t, err)

		conv.DeriveTitleFrom("Something else entirely")
		assert.Equal(t, "Release review", conv.Title())
	})

	t.Run("derived title not replaced twice", func(t *testing.T) {
		conv, err := NewConversation(1, 2, "")
		require.NoError(t, err)

		conv.DeriveTitleFrom("First message")
		conv.DeriveTitleFrom("Second message")
		assert.Equal(t, "First message", conv.Title())
	})

	t.Run("empty message is a no-op", func(t *testing.T) {
		conv, err := NewConversation(1, 2, "")
		require.NoError(t, err)
		before := conv.Title()

		conv.DeriveTitleFrom("")
		assert.Equal(t, before, conv.Title())
	})
}

func TestConversation_Touch(t *testing.T) {
	conv, err := NewConversation(1, 2, "x")
	require.NoError(t, err)

	before := conv.UpdatedAt()
	time.Sleep(time.Millisecond)
	conv.Touch()
	assert.True(t, conv.UpdatedAt().After(before))
}

func TestNewUserMessage(t *testing.T) {
	t.Run("text message", func(t *testing.T) {
		msg, err := NewUserMessage(1, "hello", "")
		require.NoError(t, err)
		assert.True(t, msg.IsUser())
		assert.False(t, msg.HasImage())
		assert.Nil(t, msg.AgentID())
	})

	t.Run("image-only message allowed", func(t *testing.T) {
		msg, err := NewUserMessage(1, "", "uploads/shot.png")
		require.NoError(t, err)
		assert.True(t, msg.HasImage())
		assert.Equal(t, "uploads/shot.png", msg.ImagePath())
	})

	t.Run("empty message rejected", func(t *testing.T) {
		_, err := NewUserMessage(1, "", "")
		assert.Error(t, err)
	})
}

func TestNewAgentMessage(t *testing.T) {
	agentID := uint(7)

	msg, err := NewAgentMessage(1, &agentID, "reply")
	require.NoError(t, err)
	assert.False(t, msg.IsUser())
	require.NotNil(t, msg.AgentID())
	assert.Equal(t, uint(7), *msg.AgentID())

	_, err = NewAgentMessage(1, &agentID, "")
	assert.Error(t, err)
}
