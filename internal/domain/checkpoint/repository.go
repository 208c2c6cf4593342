package checkpoint

import "context"

type Repository interface {
	Save(ctx context.Context, checkpoint *Checkpoint) error
	Update(ctx context.Context, checkpoint *Checkpoint) error
	GetByID(ctx context.Context, checkpointID uint) (*Checkpoint, error)
	ListByProject(ctx context.Context, projectID uint) ([]*Checkpoint, error)

	// AttachTicket links a ticket to a checkpoint. Attaching an already
	// linked pair is a no-op reported via the bool return.
	AttachTicket(ctx context.Context, checkpointID, ticketID uint) (bool, error)
	DetachTicket(ctx context.Context, checkpointID, ticketID uint) error
	IsTicketAttached(ctx context.Context, checkpointID, ticketID uint) (bool, error)
	ListTicketIDs(ctx context.Context, checkpointID uint) ([]uint, error)
}
