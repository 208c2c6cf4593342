package ticket

import (
	"context"

	vo "fractalyx/internal/domain/ticket/valueobjects"
)

type TicketRepository interface {
	Save(ctx context.Context, ticket *Ticket) error
	Update(ctx context.Context, ticket *Ticket) error
	GetByID(ctx context.Context, ticketID uint) (*Ticket, error)
	ListByProject(ctx context.Context, projectID uint, filter TicketFilter) ([]*Ticket, error)
	CountByProject(ctx context.Context, projectID uint) (TicketCounts, error)
	GetByIDs(ctx context.Context, ticketIDs []uint) ([]*Ticket, error)
}

type TicketFilter struct {
	Status   *vo.TicketStatus
	Priority *vo.Priority
	AgentID  *uint
}

// TicketCounts aggregates per-project ticket counters for project summaries.
type TicketCounts struct {
	Total     int64
	Open      int64
	Completed int64
}

type CommentRepository interface {
	Save(ctx context.Context, comment *Comment) error
	GetByTicketID(ctx context.Context, ticketID uint) ([]*Comment, error)
}
