package usecases

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	"fractalyx/internal/domain/agent"
	"fractalyx/internal/domain/ticket"
	"fractalyx/internal/shared/db"
)

func newTestTxManager(t *testing.T) *db.TransactionManager {
	t.Helper()
	gdb, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	require.NoError(t, err)
	return db.NewTransactionManager(gdb)
}

type mockTicketRepository struct {
	SaveFunc           func(ctx context.Context, tk *ticket.Ticket) error
	UpdateFunc         func(ctx context.Context, tk *ticket.Ticket) error
	GetByIDFunc        func(ctx context.Context, ticketID uint) (*ticket.Ticket, error)
	ListByProjectFunc  func(ctx context.Context, projectID uint, filter ticket.TicketFilter) ([]*ticket.Ticket, error)
	CountByProjectFunc func(ctx context.Context, projectID uint) (ticket.TicketCounts, error)
	GetByIDsFunc       func(ctx context.Context, ticketIDs []uint) ([]*ticket.Ticket, error)
}

func (m *mockTicketRepository) Save(ctx context.Context, tk *ticket.Ticket) error {
	if m.SaveFunc != nil {
		return m.SaveFunc(ctx, tk)
	}
	return nil
}

func (m *mockTicketRepository) Update(ctx context.Context, tk *ticket.Ticket) error {
	if m.UpdateFunc != nil {
		return m.UpdateFunc(ctx, tk)
	}
	return nil
}

func (m *mockTicketRepository) GetByID(ctx context.Context, ticketID uint) (*ticket.Ticket, error) {
	if m.GetByIDFunc != nil {
		return m.GetByIDFunc(ctx, ticketID)
	}
	return nil, nil
}

func (m *mockTicketRepository) ListByProject(ctx context.Context, projectID uint, filter ticket.TicketFilter) ([]*ticket.Ticket, error) {
	if m.ListByProjectFunc != nil {
		return m.ListByProjectFunc(ctx, projectID, filter)
	}
	return nil, nil
}

func (m *mockTicketRepository) CountByProject(ctx context.Context, projectID uint) (ticket.TicketCounts, error) {
	if m.CountByProjectFunc != nil {
		return m.CountByProjectFunc(ctx, projectID)
	}
	return ticket.TicketCounts{}, nil
}

func (m *mockTicketRepository) GetByIDs(ctx context.Context, ticketIDs []uint) ([]*ticket.Ticket, error) {
	if m.GetByIDsFunc != nil {
		return m.GetByIDsFunc(ctx, ticketIDs)
	}
	return nil, nil
}

type mockCommentRepository struct {
	SaveFunc          func(ctx context.Context, comment *ticket.Comment) error
	GetByTicketIDFunc func(ctx context.Context, ticketID uint) ([]*ticket.Comment, error)
}

func (m *mockCommentRepository) Save(ctx context.Context, comment *ticket.Comment) error {
	if m.SaveFunc != nil {
		return m.SaveFunc(ctx, comment)
	}
	return nil
}

func (m *mockCommentRepository) GetByTicketID(ctx context.Context, ticketID uint) ([]*ticket.Comment, error) {
	if m.GetByTicketIDFunc != nil {
		return m.GetByTicketIDFunc(ctx, ticketID)
	}
	return nil, nil
}

type mockAgentRepository struct {
	SaveFunc      func(ctx context.Context, a *agent.Agent) error
	GetByIDFunc   func(ctx context.Context, agentID uint) (*agent.Agent, error)
	GetByRoleFunc func(ctx context.Context, role agent.Role) (*agent.Agent, error)
	ListFunc      func(ctx context.Context) ([]*agent.Agent, error)
	CountFunc     func(ctx context.Context) (int64, error)
}

func (m *mockAgentRepository) Save(ctx context.Context, a *agent.Agent) error {
	if m.SaveFunc != nil {
		return m.SaveFunc(ctx, a)
	}
	return nil
}

func (m *mockAgentRepository) GetByID(ctx context.Context, agentID uint) (*agent.Agent, error) {
	if m.GetByIDFunc != nil {
		return m.GetByIDFunc(ctx, agentID)
	}
	return nil, nil
}

func (m *mockAgentRepository) GetByRole(ctx context.Context, role agent.Role) (*agent.Agent, error) {
	if m.GetByRoleFunc != nil {
		return m.GetByRoleFunc(ctx, role)
	}
	return nil, nil
}

func (m *mockAgentRepository) List(ctx context.Context) ([]*agent.Agent, error) {
	if m.ListFunc != nil {
		return m.ListFunc(ctx)
	}
	return nil, nil
}

func (m *mockAgentRepository) Count(ctx context.Context) (int64, error) {
	if m.CountFunc != nil {
		return m.CountFunc(ctx)
	}
	return 0, nil
}
