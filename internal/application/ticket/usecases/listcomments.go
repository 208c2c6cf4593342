package usecases

import (
	"context"

	"fractalyx/internal/application/ticket/dto"
	"fractalyx/internal/domain/ticket"
	"fractalyx/internal/shared/logger"
)

// ListCommentsCommand represents the input for listing ticket comments
type ListCommentsCommand struct {
	TicketID uint `json:"ticket_id"`
}

// ListCommentsResult represents the output of listing ticket comments
type ListCommentsResult struct {
	Comments []*dto.CommentDTO `json:"comments"`
	Total    int               `json:"total"`
}

// ListCommentsUseCase handles listing comments on a ticket
type ListCommentsUseCase struct {
	ticketRepo  ticket.TicketRepository
	commentRepo ticket.CommentRepository
	logger      logger.Interface
}

// NewListCommentsUseCase creates a new instance of ListCommentsUseCase
func NewListCommentsUseCase(
	ticketRepo ticket.TicketRepository,
	commentRepo ticket.CommentRepository,
	logger logger.Interface,
) *ListCommentsUseCase {
	return &ListCommentsUseCase{
		ticketRepo:  ticketRepo,
		commentRepo: commentRepo,
		logger:      logger,
	}
}

// Execute lists comments in chronological order
func (uc *ListCommentsUseCase) Execute(ctx context.Context, cmd ListCommentsCommand) (*ListCommentsResult, error) {
	if _, err := uc.ticketRepo.GetByID(ctx, cmd.TicketID); err != nil {
		return nil, err
	}

	comments, err := uc.commentRepo.GetByTicketID(ctx, cmd.TicketID)
	if err != nil {
		return nil, err
	}

	return &ListCommentsResult{
		Comments: dto.FromComments(comments),
		Total:    len(comments),
	}, nil
}
