package usecases

import "context"

// CreateTicketExecutor defines the interface for creating tickets
type CreateTicketExecutor interface {
	Execute(ctx context.Context, cmd CreateTicketCommand) (*CreateTicketResult, error)
}

// GetTicketExecutor defines the interface for fetching a single ticket
type GetTicketExecutor interface {
	Execute(ctx context.Context, cmd GetTicketCommand) (*GetTicketResult, error)
}

// ListTicketsExecutor defines the interface for listing project tickets
type ListTicketsExecutor interface {
	Execute(ctx context.Context, cmd ListTicketsCommand) (*ListTicketsResult, error)
}

// UpdateTicketExecutor defines the interface for patching ticket fields
type UpdateTicketExecutor interface {
	Execute(ctx context.Context, cmd UpdateTicketCommand) (*UpdateTicketResult, error)
}

// AssignTicketExecutor defines the interface for assigning a ticket to an agent
type AssignTicketExecutor interface {
	Execute(ctx context.Context, cmd AssignTicketCommand) (*AssignTicketResult, error)
}

// ChangeTicketStatusExecutor defines the interface for moving a ticket between statuses
type ChangeTicketStatusExecutor interface {
	Execute(ctx context.Context, cmd ChangeTicketStatusCommand) (*ChangeTicketStatusResult, error)
}

// AddCommentExecutor defines the interface for commenting on a ticket
type AddCommentExecutor interface {
	Execute(ctx context.Context, cmd AddCommentCommand) (*AddCommentResult, error)
}

// ListCommentsExecutor defines the interface for listing ticket comments
type ListCommentsExecutor interface {
	Execute(ctx context.Context, cmd ListCommentsCommand) (*ListCommentsResult, error)
}
