package usecases

import (
	"context"

	"fractalyx/internal/application/ticket/dto"
	"fractalyx/internal/domain/ticket"
	vo "fractalyx/internal/domain/ticket/valueobjects"
	"fractalyx/internal/shared/db"
	"fractalyx/internal/shared/errors"
	"fractalyx/internal/shared/logger"
)

// ChangeTicketStatusCommand represents the input for a status change
type ChangeTicketStatusCommand struct {
	TicketID uint   `json:"ticket_id"`
	Status   string `json:"status"`
}

// ChangeTicketStatusResult represents the output of a status change
type ChangeTicketStatusResult struct {
	Ticket *dto.TicketDTO `json:"ticket"`
}

// ChangeTicketStatusUseCase moves tickets between statuses
type ChangeTicketStatusUseCase struct {
	ticketRepo ticket.TicketRepository
	txManager  *db.TransactionManager
	logger     logger.Interface
}

// NewChangeTicketStatusUseCase creates a new instance of ChangeTicketStatusUseCase
func NewChangeTicketStatusUseCase(
	ticketRepo ticket.TicketRepository,
	txManager *db.TransactionManager,
	logger logger.Interface,
) *ChangeTicketStatusUseCase {
	return &ChangeTicketStatusUseCase{
		ticketRepo: ticketRepo,
		txManager:  txManager,
		logger:     logger,
	}
}

// Execute changes the ticket status
func (uc *ChangeTicketStatusUseCase) Execute(ctx context.Context, cmd ChangeTicketStatusCommand) (*ChangeTicketStatusResult, error) {
	status, err := vo.NewTicketStatus(cmd.Status)
	if err != nil {
		return nil, errors.NewValidationError(err.Error())
	}

	t, err := uc.ticketRepo.GetByID(ctx, cmd.TicketID)
	if err != nil {
		return nil, err
	}

	if err := t.ChangeStatus(status); err != nil {
		return nil, errors.NewValidationError(err.Error())
	}

	err = uc.txManager.RunInTransaction(ctx, func(txCtx context.Context) error {
		return uc.ticketRepo.Update(txCtx, t)
	})
	if err != nil {
		uc.logger.Errorw("failed to change ticket status", "ticket_id", cmd.TicketID, "status", cmd.Status, "error", err)
		return nil, err
	}

	return &ChangeTicketStatusResult{Ticket: dto.FromTicket(t)}, nil
}
