package usecases

import (
	"context"

	"fractalyx/internal/application/ticket/dto"
	"fractalyx/internal/domain/ticket"
	vo "fractalyx/internal/domain/ticket/valueobjects"
	"fractalyx/internal/shared/errors"
	"fractalyx/internal/shared/logger"
)

// ListTicketsCommand represents the input for listing project tickets.
// Status, Priority and AgentID are optional filters.
type ListTicketsCommand struct {
	ProjectID uint   `json:"project_id"`
	Status    string `json:"status"`
	Priority  string `json:"priority"`
	AgentID   *uint  `json:"agent_id"`
}

// ListTicketsResult represents the output of listing tickets
type ListTicketsResult struct {
	Tickets []*dto.TicketDTO `json:"tickets"`
	Total   int              `json:"total"`
}

// ListTicketsUseCase handles project-scoped ticket listing
type ListTicketsUseCase struct {
	ticketRepo ticket.TicketRepository
	logger     logger.Interface
}

// NewListTicketsUseCase creates a new instance of ListTicketsUseCase
func NewListTicketsUseCase(ticketRepo ticket.TicketRepository, logger logger.Interface) *ListTicketsUseCase {
	return &ListTicketsUseCase{
		ticketRepo: ticketRepo,
		logger:     logger,
	}
}

// Execute lists tickets for a project, newest first, applying any filters.
func (uc *ListTicketsUseCase) Execute(ctx context.Context, cmd ListTicketsCommand) (*ListTicketsResult, error) {
	if cmd.ProjectID == 0 {
		return nil, errors.NewValidationError("project_id is required")
	}

	filter := ticket.TicketFilter{AgentID: cmd.AgentID}

	if cmd.Status != "" {
		status, err := vo.NewTicketStatus(cmd.Status)
		if err != nil {
			return nil, errors.NewValidationError(err.Error())
		}
		filter.Status = &status
	}

	if cmd.Priority != "" {
		priority, err := vo.NewPriority(cmd.Priority)
		if err != nil {
			return nil, errors.NewValidationError(err.Error())
		}
		filter.Priority = &priority
	}

	tickets, err := uc.ticketRepo.ListByProject(ctx, cmd.ProjectID, filter)
	if err != nil {
		return nil, err
	}

	return &ListTicketsResult{
		Tickets: dto.FromTickets(tickets),
		Total:   len(tickets),
	}, nil
}
