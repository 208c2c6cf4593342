package usecases

import (
	"context"

	"fractalyx/internal/agents"
	conversationdto "fractalyx/internal/application/conversation/dto"
	"fractalyx/internal/domain/agent"
	"fractalyx/internal/domain/checkpoint"
	"fractalyx/internal/domain/conversation"
	"fractalyx/internal/domain/ticket"
	"fractalyx/internal/infrastructure/inference"
	"fractalyx/internal/shared/db"
	"fractalyx/internal/shared/errors"
	"fractalyx/internal/shared/logger"
)

// PostMessageCommand represents one chat turn from a customer
type PostMessageCommand struct {
	CustomerID     uint   `json:"customer_id"`
	ConversationID uint   `json:"conversation_id"`
	Message        string `json:"message"`
	ImagePath      string `json:"image_path"`
}

// PostMessageResult carries the coordinator's reply
type PostMessageResult struct {
	Reply        string                           `json:"reply"`
	Conversation *conversationdto.ConversationDTO `json:"conversation"`
}

// PostMessageUseCase runs one chat turn: it builds a project-scoped
// coordinator, routes the message through it, and refreshes the conversation
// title and recency.
type PostMessageUseCase struct {
	conversationRepo conversation.Repository
	messageRepo      conversation.MessageRepository
	agentRepo        agent.Repository
	ticketRepo       ticket.TicketRepository
	checkpointRepo   checkpoint.Repository
	txManager        *db.TransactionManager
	client           inference.Client
	classifier       agents.Classifier
	logger           logger.Interface
}

// NewPostMessageUseCase creates a new instance of PostMessageUseCase
func NewPostMessageUseCase(
	conversationRepo conversation.Repository,
	messageRepo conversation.MessageRepository,
	agentRepo agent.Repository,
	ticketRepo ticket.TicketRepository,
	checkpointRepo checkpoint.Repository,
	txManager *db.TransactionManager,
	client inference.Client,
	classifier agents.Classifier,
	logger logger.Interface,
) *PostMessageUseCase {
	return &PostMessageUseCase{
		conversationRepo: conversationRepo,
		messageRepo:      messageRepo,
		agentRepo:        agentRepo,
		ticketRepo:       ticketRepo,
		checkpointRepo:   checkpointRepo,
		txManager:        txManager,
		client:           client,
		classifier:       classifier,
		logger:           logger,
	}
}

// Execute processes the chat turn
func (uc *PostMessageUseCase) Execute(ctx context.Context, cmd PostMessageCommand) (*PostMessageResult, error) {
	if cmd.Message == "" && cmd.ImagePath == "" {
		return nil, errors.NewValidationError("message cannot be empty")
	}

	conv, err := uc.conversationRepo.GetByID(ctx, cmd.ConversationID)
	if err != nil {
		return nil, err
	}
	if conv.CustomerID() != cmd.CustomerID {
		return nil, errors.NewForbiddenError("conversation belongs to another customer")
	}

	coordinator, err := agents.NewCoordinator(ctx, conv.ProjectID(), agents.Deps{
		Agents:        uc.agentRepo,
		Tickets:       uc.ticketRepo,
		Checkpoints:   uc.checkpointRepo,
		Conversations: uc.conversationRepo,
		Messages:      uc.messageRepo,
		TxManager:     uc.txManager,
		Client:        uc.client,
		Classifier:    uc.classifier,
		Logger:        uc.logger,
	})
	if err != nil {
		uc.logger.Errorw("failed to build coordinator", "project_id", conv.ProjectID(), "error", err)
		return nil, err
	}

	reply, err := coordinator.ProcessUserMessage(ctx, cmd.Message, cmd.ConversationID, cmd.ImagePath)
	if err != nil {
		return nil, err
	}

	conv.DeriveTitleFrom(cmd.Message)
	conv.Touch()
	if err := uc.conversationRepo.Update(ctx, conv); err != nil {
		uc.logger.Warnw("failed to refresh conversation", "conversation_id", conv.ID(), "error", err)
	}

	return &PostMessageResult{
		Reply:        reply,
		Conversation: conversationdto.FromConversation(conv),
	}, nil
}
