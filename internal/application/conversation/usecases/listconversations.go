package usecases

import (
	"context"

	"fractalyx/internal/application/conversation/dto"
	"fractalyx/internal/domain/conversation"
	"fractalyx/internal/shared/logger"
)

// ListConversationsCommand represents the input for listing conversations
type ListConversationsCommand struct {
	CustomerID uint `json:"customer_id"`
}

// ListConversationsResult represents the output of listing conversations
type ListConversationsResult struct {
	Conversations []*dto.ConversationDTO `json:"conversations"`
	Total         int                    `json:"total"`
}

// ListConversationsUseCase lists a customer's conversations, most recently
// updated first
type ListConversationsUseCase struct {
	conversationRepo conversation.Repository
	logger           logger.Interface
}

// NewListConversationsUseCase creates a new instance of ListConversationsUseCase
func NewListConversationsUseCase(
	conversationRepo conversation.Repository,
	logger logger.Interface,
) *ListConversationsUseCase {
	return &ListConversationsUseCase{
		conversationRepo: conversationRepo,
		logger:           logger,
	}
}

// Execute lists the customer's conversations
func (uc *ListConversationsUseCase) Execute(ctx context.Context, cmd ListConversationsCommand) (*ListConversationsResult, error) {
	conversations, err := uc.conversationRepo.ListByCustomer(ctx, cmd.CustomerID)
	if err != nil {
		return nil, err
	}

	return &ListConversationsResult{
		Conversations: dto.FromConversations(conversations),
		Total:         len(conversations),
	}, nil
}
