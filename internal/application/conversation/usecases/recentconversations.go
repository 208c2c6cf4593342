package usecases

import (
	"context"

	"fractalyx/internal/application/conversation/dto"
	"fractalyx/internal/domain/conversation"
	"fractalyx/internal/shared/logger"
)

// defaultRecentLimit bounds the sidebar recency list when no limit is given.
const defaultRecentLimit = 5

// RecentConversationsCommand represents the input for the recency list
type RecentConversationsCommand struct {
	CustomerID uint `json:"customer_id"`
	Limit      int  `json:"limit"`
}

// RecentConversationsResult represents the output of the recency list
type RecentConversationsResult struct {
	Conversations []*dto.ConversationDTO `json:"conversations"`
}

// RecentConversationsUseCase serves the sidebar's recent-conversations list
type RecentConversationsUseCase struct {
	conversationRepo conversation.Repository
	logger           logger.Interface
}

// NewRecentConversationsUseCase creates a new instance of RecentConversationsUseCase
func NewRecentConversationsUseCase(
	conversationRepo conversation.Repository,
	logger logger.Interface,
) *RecentConversationsUseCase {
	return &RecentConversationsUseCase{
		conversationRepo: conversationRepo,
		logger:           logger,
	}
}

// Execute returns the customer's most recently updated conversations
func (uc *RecentConversationsUseCase) Execute(ctx context.Context, cmd RecentConversationsCommand) (*RecentConversationsResult, error) {
	limit := cmd.Limit
	if limit <= 0 {
		limit = defaultRecentLimit
	}

	conversations, err := uc.conversationRepo.Recent(ctx, cmd.CustomerID, limit)
	if err != nil {
		return nil, err
	}

	return &RecentConversationsResult{Conversations: dto.FromConversations(conversations)}, nil
}
