package usecases

import (
	"context"
	"time"

	"fractalyx/internal/application/ticket/dto"
	"fractalyx/internal/domain/ticket"
	vo "fractalyx/internal/domain/ticket/valueobjects"
	"fractalyx/internal/shared/db"
	"fractalyx/internal/shared/errors"
	"fractalyx/internal/shared/logger"
)

// CreateTicketCommand represents the input for creating a ticket
type CreateTicketCommand struct {
	ProjectID      uint   `json:"project_id"`
	Title          string `json:"title"`
	Description    string `json:"description"`
	Priority       string `json:"priority"`
	DueDate        string `json:"due_date"`
	ParentTicketID *uint  `json:"parent_ticket_id"`
}

// CreateTicketResult represents the output of creating a ticket
type CreateTicketResult struct {
	Ticket *dto.TicketDTO `json:"ticket"`
}

// CreateTicketUseCase handles ticket creation
type CreateTicketUseCase struct {
	ticketRepo ticket.TicketRepository
	txManager  *db.TransactionManager
	logger     logger.Interface
}

// NewCreateTicketUseCase creates a new instance of CreateTicketUseCase
func NewCreateTicketUseCase(
	ticketRepo ticket.TicketRepository,
	txManager *db.TransactionManager,
	logger logger.Interface,
) *CreateTicketUseCase {
	return &CreateTicketUseCase{
		ticketRepo: ticketRepo,
		txManager:  txManager,
		logger:     logger,
	}
}

// Execute creates a new ticket. An unrecognized priority string falls back to
// medium rather than failing the request.
func (uc *CreateTicketUseCase) Execute(ctx context.Context, cmd CreateTicketCommand) (*CreateTicketResult, error) {
	uc.logger.Infow("creating ticket",
		"project_id", cmd.ProjectID,
		"title", cmd.Title,
	)

	if cmd.ProjectID == 0 {
		return nil, errors.NewValidationError("project_id is required")
	}

	priority := vo.ParsePriority(cmd.Priority)

	t, err := ticket.NewTicket(cmd.ProjectID, cmd.Title, cmd.Description, priority)
	if err != nil {
		return nil, errors.NewValidationError(err.Error())
	}

	if cmd.DueDate != "" {
		dueDate, err := parseDueDate(cmd.DueDate)
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
		if parent.ProjectID() != cmd.ProjectID {
			return nil, errors.NewValidationError("parent ticket belongs to a different project")
		}
		if err := t.SetParent(cmd.ParentTicketID); err != nil {
			return nil, errors.NewValidationError(err.Error())
		}
	}

	err = uc.txManager.RunInTransaction(ctx, func(txCtx context.Context) error {
		return uc.ticketRepo.Save(txCtx, t)
	})
	if err != nil {
		uc.logger.Errorw("failed to save ticket", "error", err)
		return nil, err
	}

	uc.logger.Infow("ticket created", "ticket_id", t.ID())

	return &CreateTicketResult{Ticket: dto.FromTicket(t)}, nil
}

// parseDueDate accepts RFC3339 timestamps or bare dates.
func parseDueDate(value string) (time.Time, error) {
	if t, err := time.Parse(time.RFC3339, value); err == nil {
		return t.UTC(), nil
	}
	t, err := time.Parse("2006-01-02", value)
	if err != nil {
		return time.Time{}, err
	}
	return t.UTC(), nil
}
