package usecases

import (
	"context"

	"fractalyx/internal/application/ticket/dto"
	"fractalyx/internal/domain/ticket"
	"fractalyx/internal/shared/db"
	"fractalyx/internal/shared/errors"
	"fractalyx/internal/shared/logger"
)

// AddCommentCommand represents the input for commenting on a ticket.
// IsUser nil defaults to a user-authored comment; AgentID attributes the
// comment to an agent.
type AddCommentCommand struct {
	TicketID uint   `json:"ticket_id"`
	Content  string `json:"content"`
	IsUser   *bool  `json:"is_user"`
	AgentID  *uint  `json:"agent_id"`
}

// AddCommentResult represents the output of commenting on a ticket
type AddCommentResult struct {
	Comment *dto.CommentDTO `json:"comment"`
}

// AddCommentUseCase handles ticket comments
type AddCommentUseCase struct {
	ticketRepo  ticket.TicketRepository
	commentRepo ticket.CommentRepository
	txManager   *db.TransactionManager
	logger      logger.Interface
}

// NewAddCommentUseCase creates a new instance of AddCommentUseCase
func NewAddCommentUseCase(
	ticketRepo ticket.TicketRepository,
	commentRepo ticket.CommentRepository,
	txManager *db.TransactionManager,
	logger logger.Interface,
) *AddCommentUseCase {
	return &AddCommentUseCase{
		ticketRepo:  ticketRepo,
		commentRepo: commentRepo,
		txManager:   txManager,
		logger:      logger,
	}
}

// Execute adds a comment to an existing ticket
func (uc *AddCommentUseCase) Execute(ctx context.Context, cmd AddCommentCommand) (*AddCommentResult, error) {
	if _, err := uc.ticketRepo.GetByID(ctx, cmd.TicketID); err != nil {
		return nil, err
	}

	isUser := true
	if cmd.IsUser != nil {
		isUser = *cmd.IsUser
	}

	comment, err := ticket.NewComment(cmd.TicketID, cmd.Content, isUser, cmd.AgentID)
	if err != nil {
		return nil, errors.NewValidationError(err.Error())
	}

	err = uc.txManager.RunInTransaction(ctx, func(txCtx context.Context) error {
		return uc.commentRepo.Save(txCtx, comment)
	})
	if err != nil {
		uc.logger.Errorw("failed to save comment", "ticket_id", cmd.TicketID, "error", err)
		return nil, err
	}

	return &AddCommentResult{Comment: dto.FromComment(comment)}, nil
}
