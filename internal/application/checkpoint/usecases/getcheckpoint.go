package usecases

import (
	"context"

	"fractalyx/internal/application/checkpoint/dto"
	ticketdto "fractalyx/internal/application/ticket/dto"
	"fractalyx/internal/domain/checkpoint"
	"fractalyx/internal/domain/ticket"
	"fractalyx/internal/shared/logger"
)

// GetCheckpointCommand represents the input for fetching a checkpoint
type GetCheckpointCommand struct {
	CheckpointID uint `json:"checkpoint_id"`
}

// GetCheckpointResult represents the output of fetching a checkpoint
type GetCheckpointResult struct {
	Checkpoint *dto.CheckpointDTO `json:"checkpoint"`
}

// GetCheckpointUseCase handles checkpoint lookups with attached tickets
type GetCheckpointUseCase struct {
	checkpointRepo checkpoint.Repository
	ticketRepo     ticket.TicketRepository
	logger         logger.Interface
}

// NewGetCheckpointUseCase creates a new instance of GetCheckpointUseCase
func NewGetCheckpointUseCase(
	checkpointRepo checkpoint.Repository,
	ticketRepo ticket.TicketRepository,
	logger logger.Interface,
) *GetCheckpointUseCase {
	return &GetCheckpointUseCase{
		checkpointRepo: checkpointRepo,
		ticketRepo:     ticketRepo,
		logger:         logger,
	}
}

// Execute fetches a checkpoint and its attached tickets
func (uc *GetCheckpointUseCase) Execute(ctx context.Context, cmd GetCheckpointCommand) (*GetCheckpointResult, error) {
	cp, err := uc.checkpointRepo.GetByID(ctx, cmd.CheckpointID)
	if err != nil {
		return nil, err
	}

	ticketIDs, err := uc.checkpointRepo.ListTicketIDs(ctx, cmd.CheckpointID)
	if err != nil {
		return nil, err
	}

	result := dto.FromCheckpoint(cp)
	if len(ticketIDs) > 0 {
		tickets, err := uc.ticketRepo.GetByIDs(ctx, ticketIDs)
		if err != nil {
			return nil, err
		}
		result.Tickets = ticketdto.FromTickets(tickets)
	}

	return &GetCheckpointResult{Checkpoint: result}, nil
}
