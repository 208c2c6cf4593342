package usecases

import (
	"context"

	"fractalyx/internal/application/ticket/dto"
	"fractalyx/internal/domain/agent"
	"fractalyx/internal/domain/ticket"
	"fractalyx/internal/shared/db"
	"fractalyx/internal/shared/errors"
	"fractalyx/internal/shared/logger"
)

// AssignTicketCommand represents the input for assigning a ticket
type AssignTicketCommand struct {
	TicketID uint `json:"ticket_id"`
	AgentID  uint `json:"agent_id"`
}

// AssignTicketResult represents the output of assigning a ticket
type AssignTicketResult struct {
	Ticket *dto.TicketDTO `json:"ticket"`
}

// AssignTicketUseCase handles assigning tickets to agents. Assignment always
// moves the ticket to in_progress, whatever its current status.
type AssignTicketUseCase struct {
	ticketRepo ticket.TicketRepository
	agentRepo  agent.Repository
	txManager  *db.TransactionManager
	logger     logger.Interface
}

// NewAssignTicketUseCase creates a new instance of AssignTicketUseCase
func NewAssignTicketUseCase(
	ticketRepo ticket.TicketRepository,
	agentRepo agent.Repository,
	txManager *db.TransactionManager,
	logger logger.Interface,
) *AssignTicketUseCase {
	return &AssignTicketUseCase{
		ticketRepo: ticketRepo,
		agentRepo:  agentRepo,
		txManager:  txManager,
		logger:     logger,
	}
}

// Execute assigns the ticket to the agent
func (uc *AssignTicketUseCase) Execute(ctx context.Context, cmd AssignTicketCommand) (*AssignTicketResult, error) {
	if _, err := uc.agentRepo.GetByID(ctx, cmd.AgentID); err != nil {
		return nil, err
	}

	t, err := uc.ticketRepo.GetByID(ctx, cmd.TicketID)
	if err != nil {
		return nil, err
	}

	if err := t.AssignTo(cmd.AgentID); err != nil {
		return nil, errors.NewValidationError(err.Error())
	}

	err = uc.txManager.RunInTransaction(ctx, func(txCtx context.Context) error {
		return uc.ticketRepo.Update(txCtx, t)
	})
	if err != nil {
		uc.logger.Errorw("failed to assign ticket", "ticket_id", cmd.TicketID, "agent_id", cmd.AgentID, "error", err)
		return nil, err
	}

	uc.logger.Infow("ticket assigned", "ticket_id", cmd.TicketID, "agent_id", cmd.AgentID)

	return &AssignTicketResult{Ticket: dto.FromTicket(t)}, nil
}
