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

// UpdateTicketCommand represents the input for patching a ticket. Nil fields
// are left untouched; ClearDueDate removes an existing due date.
type UpdateTicketCommand struct {
	TicketID       uint    `json:"ticket_id"`
	Title          *string `json:"title"`
	Description    *string `json:"description"`
	Status         *string `json:"status"`
	Priority       *string `json:"priority"`
	DueDate        *string `json:"due_date"`
	ClearDueDate   bool    `json:"clear_due_date"`
	ParentTicketID *uint   `json:"parent_ticket_id"`
}

// UpdateTicketResult represents the output of patching a ticket
type UpdateTicketResult struct {
	Ticket *dto.TicketDTO `json:"ticket"`
}

// UpdateTicketUseCase handles partial ticket updates
type UpdateTicketUseCase struct {
	ticketRepo ticket.TicketRepository
	txManager  *db.TransactionManager
	logger     logger.Interface
}

// NewUpdateTicketUseCase creates a new instance of UpdateTicketUseCase
func NewUpdateTicketUseCase(
	ticketRepo ticket.TicketRepository,
	txManager *db.TransactionManager,
	logger logger.Interface,
) *UpdateTicketUseCase {
	return &UpdateTicketUseCase{
		ticketRepo: ticketRepo,
		txManager:  txManager,
		logger:     logger,
	}
}

// Execute applies the provided fields to the ticket
func (uc *UpdateTicketUseCase) Execute(ctx context.Context, cmd UpdateTicketCommand) (*UpdateTicketResult, error) {
	t, err := uc.ticketRepo.GetByID(ctx, cmd.TicketID)
	if err != nil {
		return nil, err
	}

	if cmd.Title != nil {
		if err := t.UpdateTitle(*cmd.Title); err != nil {
			return nil, errors.NewValidationError(err.Error())
		}
	}

	if cmd.Description != nil {
		t.UpdateDescription(*cmd.Description)
	}

	if cmd.Status != nil {
		status, err := vo.NewTicketStatus(*cmd.Status)
		if err != nil {
			return nil, errors.NewValidationError(err.Error())
		}
		if err := t.ChangeStatus(status); err != nil {
			return nil, errors.NewValidationError(err.Error())
		}
	}

	if cmd.Priority != nil {
		priority, err := vo.NewPriority(*cmd.Priority)
		if err != nil {
			return nil, errors.NewValidationError(err.Error())
		}
		if err := t.ChangePriority(priority); err != nil {
			return nil, errors.NewValidationError(err.Error())
		}
	}

	if cmd.ClearDueDate {
		t.SetDueDate(nil)
	} else if cmd.DueDate != nil {
		dueDate, err := parseDueDate(*cmd.DueDate)
		if err != nil {
			return nil, errors.NewValidationError("invalid due_date format, expected RFC3339 or YYYY-MM-DD")
		}
		t.SetDueDate(&dueDate)
	}

	if cmd.ParentTicketID != nil {
		parent, err := uc.ticketRepo.GetByID(ctx, *cmd.ParentTicketID)
		if err != nil {
			if errors.IsNotFoundError(err) {
				return nil, errors.NewValidationError("parent ticket not found")
			}
			return nil, err
		}
		if parent.ProjectID() != t.ProjectID() {
			return nil, errors.NewValidationError("parent ticket belongs to a different project")
		}
		if err := t.SetParent(cmd.ParentTicketID); err != nil {
			return nil, errors.NewValidationError(err.Error())
		}
	}

	err = uc.txManager.RunInTransaction(ctx, func(txCtx context.Context) error {
		return uc.ticketRepo.Update(txCtx, t)
	})
	if err != nil {
		uc.logger.Errorw("failed to update ticket", "ticket_id", cmd.TicketID, "error", err)
		return nil, err
	}

	return &UpdateTicketResult{Ticket: dto.FromTicket(t)}, nil
}
