package usecases

import (
	"context"

	"fractalyx/internal/application/conversation/dto"
	"fractalyx/internal/domain/agent"
	"fractalyx/internal/domain/conversation"
	"fractalyx/internal/shared/errors"
	"fractalyx/internal/shared/logger"
)

// ListMessagesCommand represents the input for a conversation transcript.
// CustomerID scopes access to the conversation owner.
type ListMessagesCommand struct {
	ConversationID uint `json:"conversation_id"`
	CustomerID     uint `json:"customer_id"`
}

// ListMessagesResult represents the output of a transcript fetch
type ListMessagesResult struct {
	Conversation *dto.ConversationDTO `json:"conversation"`
	Messages     []*dto.MessageDTO    `json:"messages"`
}

// ListMessagesUseCase returns a conversation transcript with agent names
// resolved on agent replies
type ListMessagesUseCase struct {
	conversationRepo conversation.Repository
	messageRepo      conversation.MessageRepository
	agentRepo        agent.Repository
	logger           logger.Interface
}

// NewListMessagesUseCase creates a new instance of ListMessagesUseCase
func NewListMessagesUseCase(
	conversationRepo conversation.Repository,
	messageRepo conversation.MessageRepository,
	agentRepo agent.Repository,
	logger logger.Interface,
) *ListMessagesUseCase {
	return &ListMessagesUseCase{
		conversationRepo: conversationRepo,
		messageRepo:      messageRepo,
		agentRepo:        agentRepo,
		logger:           logger,
	}
}

// Execute fetches the transcript in chronological order
func (uc *ListMessagesUseCase) Execute(ctx context.Context, cmd ListMessagesCommand) (*ListMessagesResult, error) {
	conv, err := uc.conversationRepo.GetByID(ctx, cmd.ConversationID)
	if err != nil {
		return nil, err
	}

	if conv.CustomerID() != cmd.CustomerID {
		return nil, errors.NewForbiddenError("conversation belongs to another customer")
	}

	messages, err := uc.messageRepo.ListByConversation(ctx, cmd.ConversationID)
	if err != nil {
		return nil, err
	}

	agentNames := make(map[uint]string)
	out := make([]*dto.MessageDTO, 0, len(messages))
	for _, msg := range messages {
		name := ""
		if id := msg.AgentID(); id != nil {
			cached, ok := agentNames[*id]
			if !ok {
				if a, err := uc.agentRepo.GetByID(ctx, *id); err == nil {
					cached = a.Name()
				}
				agentNames[*id] = cached
			}
			name = cached
		}
		out = append(out, dto.FromMessage(msg, name))
	}

	return &ListMessagesResult{
		Conversation: dto.FromConversation(conv),
		Messages:     out,
	}, nil
}
