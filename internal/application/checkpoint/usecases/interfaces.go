package usecases

import "context"

// CreateCheckpointExecutor defines the interface for creating checkpoints
type CreateCheckpointExecutor interface {
	Execute(ctx context.Context, cmd CreateCheckpointCommand) (*CreateCheckpointResult, error)
}

// GetCheckpointExecutor defines the interface for fetching a checkpoint
type GetCheckpointExecutor interface {
	Execute(ctx context.Context, cmd GetCheckpointCommand) (*GetCheckpointResult, error)
}

// ListCheckpointsExecutor defines the interface for listing project checkpoints
type ListCheckpointsExecutor interface {
	Execute(ctx context.Context, cmd ListCheckpointsCommand) (*ListCheckpointsResult, error)
}

// SetCheckpointCompletedExecutor defines the interface for toggling completion
type SetCheckpointCompletedExecutor interface {
	Execute(ctx context.Context, cmd SetCheckpointCompletedCommand) (*SetCheckpointCompletedResult, error)
}

// AttachTicketExecutor defines the interface for linking a ticket to a checkpoint
type AttachTicketExecutor interface {
	Execute(ctx context.Context, cmd AttachTicketCommand) (*AttachTicketResult, error)
}
