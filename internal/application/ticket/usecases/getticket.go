package usecases

import (
	"context"

	"fractalyx/internal/application/ticket/dto"
	"fractalyx/internal/domain/ticket"
	"fractalyx/internal/shared/logger"
)

// GetTicketCommand represents the input for fetching a ticket
type GetTicketCommand struct {
	TicketID uint `json:"ticket_id"`
}

// GetTicketResult represents the output of fetching a ticket
type GetTicketResult struct {
	Ticket *dto.TicketDTO `json:"ticket"`
}

// GetTicketUseCase handles single-ticket lookups
type GetTicketUseCase struct {
	ticketRepo ticket.TicketRepository
	logger     logger.Interface
}

// NewGetTicketUseCase creates a new instance of GetTicketUseCase
func NewGetTicketUseCase(ticketRepo ticket.TicketRepository, logger logger.Interface) *GetTicketUseCase {
	return &GetTicketUseCase{
		ticketRepo: ticketRepo,
		logger:     logger,
	}
}

// Execute fetches a ticket by ID
func (uc *GetTicketUseCase) Execute(ctx context.Context, cmd GetTicketCommand) (*GetTicketResult, error) {
	t, err := uc.ticketRepo.GetByID(ctx, cmd.TicketID)
	if err != nil {
		return nil, err
	}

	return &GetTicketResult{Ticket: dto.FromTicket(t)}, nil
}
