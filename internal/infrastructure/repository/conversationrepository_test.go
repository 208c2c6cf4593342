package repository

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"fractalyx/internal/domain/conversation"
	"fractalyx/internal/shared/errors"
)

func newConversation(t *testing.T, customerID uint, title string) *conversation.Conversation {
	t.Helper()
	c, err := conversation.NewConversation(customerID, 1, title)
	require.NoError(t, err)
	return c
}

func TestConversationRepository_SaveAndGetByID(t *testing.T) {
	repo := NewConversationRepository(setupTestDB(t))
	ctx := context.Background()

	c := newConversation(t, 1, "Sprint planning")
	require.NoError(t, repo.Save(ctx, c))
	assert.NotZero(t, c.ID())

	found, err := repo.GetByID(ctx, c.ID())
	require.NoError(t, err)
	assert.Equal(t, "Sprint planning", found.Title())
	assert.Equal(t, uint(1), found.CustomerID())

	_, err = repo.GetByID(ctx, 999)
	assert.True(t, errors.IsNotFoundError(err))
}

func TestConversationRepository_Update(t *testing.T) {
	repo := NewConversationRepository(setupTestDB(t))
	ctx := context.Background()

	c := newConversation(t, 1, "")
	require.NoError(t, repo.Save(ctx, c))

	c.DeriveTitleFrom("Can you plan the next release for me?")
	require.NoError(t, repo.Update(ctx, c))

	found, err := repo.GetByID(ctx, c.ID())
	require.NoError(t, err)
	assert.Equal(t, c.Title(), found.Title())
}

func TestConversationRepository_ListByCustomer_MostRecentFirst(t *testing.T) {
	repo := NewConversationRepository(setupTestDB(t))
	ctx := context.Background()

	older := newConversation(t, 1, "Older")
	require.NoError(t, repo.Save(ctx, older))

	newer := newConversation(t, 1, "Newer")
	require.NoError(t, repo.Save(ctx, newer))

	foreign := newConversation(t, 2, "Someone else")
	require.NoError(t, repo.Save(ctx, foreign))

	time.Sleep(time.Millisecond)
	older.Touch()
	require.NoError(t, repo.Update(ctx, older))

	list, err := repo.ListByCustomer(ctx, 1)
	require.NoError(t, err)
	require.Len(t, list, 2)
	assert.Equal(t, "Older", list[0].Title())
	assert.Equal(t, "Newer", list[1].Title())
}

func TestConversationRepository_Recent(t *testing.T) {
	repo := NewConversationRepository(setupTestDB(t))
	ctx := context.Background()

	titles := []string{"First", "Second", "Third"}
	for _, title := range titles {
		c := newConversation(t, 1, title)
		require.NoError(t, repo.Save(ctx, c))
		time.Sleep(time.Millisecond)
		c.Touch()
		require.NoError(t, repo.Update(ctx, c))
	}

	list, err := repo.Recent(ctx, 1, 2)
	require.NoError(t, err)
	require.Len(t, list, 2)
	assert.Equal(t, "Third", list[0].Title())
	assert.Equal(t, "Second", list[1].Title())
}

func TestMessageRepository(t *testing.T) {
	db := setupTestDB(t)
	convRepo := NewConversationRepository(db)
	msgRepo := NewMessageRepository(db)
	ctx := context.Background()

	c := newConversation(t, 1, "Chat")
	require.NoError(t, convRepo.Save(ctx, c))

	userMsg, err := conversation.NewUserMessage(c.ID(), "Hello there", "")
	require.NoError(t, err)
	require.NoError(t, msgRepo.Save(ctx, userMsg))

	agentID := uint(1)
	agentMsg, err := conversation.NewAgentMessage(c.ID(), &agentID, "Hello! How can I help?")
	require.NoError(t, err)
	require.NoError(t, msgRepo.Save(ctx, agentMsg))

	messages, err := msgRepo.ListByConversation(ctx, c.ID())
	require.NoError(t, err)
	require.Len(t, messages, 2)
	assert.True(t, messages[0].IsUser())
	assert.False(t, messages[1].IsUser())
	require.NotNil(t, messages[1].AgentID())
	assert.Equal(t, uint(1), *messages[1].AgentID())

	count, err := msgRepo.CountByConversation(ctx, c.ID())
	require.NoError(t, err)
	assert.Equal(t, int64(2), count)
}
