package usecases

import (
	"context"

	"fractalyx/internal/domain/checkpoint"
	"fractalyx/internal/domain/ticket"
	"fractalyx/internal/shared/db"
	"fractalyx/internal/shared/errors"
	"fractalyx/internal/shared/logger"
)

// AttachTicketCommand represents the input for linking a ticket to a checkpoint
type AttachTicketCommand struct {
	CheckpointID uint `json:"checkpoint_id"`
	TicketID     uint `json:"ticket_id"`
}

// AttachTicketResult reports whether a new link was created. Attached stays
// false when the ticket was already linked.
type AttachTicketResult struct {
	Attached bool `json:"attached"`
}

// AttachTicketUseCase links tickets to checkpoints
type AttachTicketUseCase struct {
	checkpointRepo checkpoint.Repository
	ticketRepo     ticket.TicketRepository
	txManager      *db.TransactionManager
	logger         logger.Interface
}

// NewAttachTicketUseCase creates a new instance of AttachTicketUseCase
func NewAttachTicketUseCase(
	checkpointRepo checkpoint.Repository,
	ticketRepo ticket.TicketRepository,
	txManager *db.TransactionManager,
	logger logger.Interface,
) *AttachTicketUseCase {
	return &AttachTicketUseCase{
		checkpointRepo: checkpointRepo,
		ticketRepo:     ticketRepo,
		txManager:      txManager,
		logger:         logger,
	}
}

// Execute links the ticket to the checkpoint. Cross-project links are rejected.
func (uc *AttachTicketUseCase) Execute(ctx context.Context, cmd AttachTicketCommand) (*AttachTicketResult, error) {
	cp, err := uc.checkpointRepo.GetByID(ctx, cmd.CheckpointID)
	if err != nil {
		return nil, err
	}

	t, err := uc.ticketRepo.GetByID(ctx, cmd.TicketID)
	if err != nil {
		return nil, err
	}

	if t.ProjectID() != cp.ProjectID() {
		return nil, errors.NewValidationError("ticket belongs to a different project")
	}

	var attached bool
	err = uc.txManager.RunInTransaction(ctx, func(txCtx context.Context) error {
		var txErr error
		attached, txErr = uc.checkpointRepo.AttachTicket(txCtx, cmd.CheckpointID, cmd.TicketID)
		return txErr
	})
	if err != nil {
		uc.logger.Errorw("failed to attach ticket", "checkpoint_id", cmd.CheckpointID, "ticket_id", cmd.TicketID, "error", err)
		return nil, err
	}

	return &AttachTicketResult{Attached: attached}, nil
}
