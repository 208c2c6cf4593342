package agents

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	"fractalyx/internal/domain/agent"
	"fractalyx/internal/domain/checkpoint"
	"fractalyx/internal/domain/conversation"
	"fractalyx/internal/domain/ticket"
	"fractalyx/internal/infrastructure/inference"
	"fractalyx/internal/shared/db"
)

// newTestTxManager backs the transaction manager with an in-memory database
// so transactional flows run without mocking gorm.
func newTestTxManager(t *testing.T) *db.TransactionManager {
	t.Helper()
	gdb, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	require.NoError(t, err)
	return db.NewTransactionManager(gdb)
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

type mockCheckpointRepository struct {
	SaveFunc             func(ctx context.Context, cp *checkpoint.Checkpoint) error
	UpdateFunc           func(ctx context.Context, cp *checkpoint.Checkpoint) error
	GetByIDFunc          func(ctx context.Context, checkpointID uint) (*checkpoint.Checkpoint, error)
	ListByProjectFunc    func(ctx context.Context, projectID uint) ([]*checkpoint.Checkpoint, error)
	AttachTicketFunc     func(ctx context.Context, checkpointID, ticketID uint) (bool, error)
	DetachTicketFunc     func(ctx context.Context, checkpointID, ticketID uint) error
	IsTicketAttachedFunc func(ctx context.Context, checkpointID, ticketID uint) (bool, error)
	ListTicketIDsFunc    func(ctx context.Context, checkpointID uint) ([]uint, error)
}

func (m *mockCheckpointRepository) Save(ctx context.Context, cp *checkpoint.Checkpoint) error {
	if m.SaveFunc != nil {
		return m.SaveFunc(ctx, cp)
	}
	return nil
}

func (m *mockCheckpointRepository) Update(ctx context.Context, cp *checkpoint.Checkpoint) error {
	if m.UpdateFunc != nil {
		return m.UpdateFunc(ctx, cp)
	}
	return nil
}

func (m *mockCheckpointRepository) GetByID(ctx context.Context, checkpointID uint) (*checkpoint.Checkpoint, error) {
	if m.GetByIDFunc != nil {
		return m.GetByIDFunc(ctx, checkpointID)
	}
	return nil, nil
}

func (m *mockCheckpointRepository) ListByProject(ctx context.Context, projectID uint) ([]*checkpoint.Checkpoint, error) {
	if m.ListByProjectFunc != nil {
		return m.ListByProjectFunc(ctx, projectID)
	}
	return nil, nil
}

func (m *mockCheckpointRepository) AttachTicket(ctx context.Context, checkpointID, ticketID uint) (bool, error) {
	if m.AttachTicketFunc != nil {
		return m.AttachTicketFunc(ctx, checkpointID, ticketID)
	}
	return false, nil
}

func (m *mockCheckpointRepository) DetachTicket(ctx context.Context, checkpointID, ticketID uint) error {
	if m.DetachTicketFunc != nil {
		return m.DetachTicketFunc(ctx, checkpointID, ticketID)
	}
	return nil
}

func (m *mockCheckpointRepository) IsTicketAttached(ctx context.Context, checkpointID, ticketID uint) (bool, error) {
	if m.IsTicketAttachedFunc != nil {
		return m.IsTicketAttachedFunc(ctx, checkpointID, ticketID)
	}
	return false, nil
}

func (m *mockCheckpointRepository) ListTicketIDs(ctx context.Context, checkpointID uint) ([]uint, error) {
	if m.ListTicketIDsFunc != nil {
		return m.ListTicketIDsFunc(ctx, checkpointID)
	}
	return nil, nil
}

type mockConversationRepository struct {
	SaveFunc           func(ctx context.Context, conv *conversation.Conversation) error
	UpdateFunc         func(ctx context.Context, conv *conversation.Conversation) error
	GetByIDFunc        func(ctx context.Context, conversationID uint) (*conversation.Conversation, error)
	ListByCustomerFunc func(ctx context.Context, customerID uint) ([]*conversation.Conversation, error)
	RecentFunc         func(ctx context.Context, customerID uint, limit int) ([]*conversation.Conversation, error)
}

func (m *mockConversationRepository) Save(ctx context.Context, conv *conversation.Conversation) error {
	if m.SaveFunc != nil {
		return m.SaveFunc(ctx, conv)
	}
	return nil
}

func (m *mockConversationRepository) Update(ctx context.Context, conv *conversation.Conversation) error {
	if m.UpdateFunc != nil {
		return m.UpdateFunc(ctx, conv)
	}
	return nil
}

func (m *mockConversationRepository) GetByID(ctx context.Context, conversationID uint) (*conversation.Conversation, error) {
	if m.GetByIDFunc != nil {
		return m.GetByIDFunc(ctx, conversationID)
	}
	return nil, nil
}

func (m *mockConversationRepository) ListByCustomer(ctx context.Context, customerID uint) ([]*conversation.Conversation, error) {
	if m.ListByCustomerFunc != nil {
		return m.ListByCustomerFunc(ctx, customerID)
	}
	return nil, nil
}

func (m *mockConversationRepository) Recent(ctx context.Context, customerID uint, limit int) ([]*conversation.Conversation, error) {
	if m.RecentFunc != nil {
		return m.RecentFunc(ctx, customerID, limit)
	}
	return nil, nil
}

type mockMessageRepository struct {
	SaveFunc                func(ctx context.Context, msg *conversation.Message) error
	ListByConversationFunc  func(ctx context.Context, conversationID uint) ([]*conversation.Message, error)
	CountByConversationFunc func(ctx context.Context, conversationID uint) (int64, error)
}

func (m *mockMessageRepository) Save(ctx context.Context, msg *conversation.Message) error {
	if m.SaveFunc != nil {
		return m.SaveFunc(ctx, msg)
	}
	return nil
}

func (m *mockMessageRepository) ListByConversation(ctx context.Context, conversationID uint) ([]*conversation.Message, error) {
	if m.ListByConversationFunc != nil {
		return m.ListByConversationFunc(ctx, conversationID)
	}
	return nil, nil
}

func (m *mockMessageRepository) CountByConversation(ctx context.Context, conversationID uint) (int64, error) {
	if m.CountByConversationFunc != nil {
		return m.CountByConversationFunc(ctx, conversationID)
	}
	return 0, nil
}

// mockInferenceClient returns a fixed reply and records calls.
type mockInferenceClient struct {
	GenerateFunc          func(ctx context.Context, systemPrompt string, history []inference.Turn) (string, error)
	GenerateWithImageFunc func(ctx context.Context, systemPrompt string, history []inference.Turn, imagePath string) (string, error)
	StatusFunc            func(ctx context.Context) (*inference.Status, error)
}

func (m *mockInferenceClient) Generate(ctx context.Context, systemPrompt string, history []inference.Turn) (string, error) {
	if m.GenerateFunc != nil {
		return m.GenerateFunc(ctx, systemPrompt, history)
	}
	return "ok", nil
}

func (m *mockInferenceClient) GenerateWithImage(ctx context.Context, systemPrompt string, history []inference.Turn, imagePath string) (string, error) {
	if m.GenerateWithImageFunc != nil {
		return m.GenerateWithImageFunc(ctx, systemPrompt, history, imagePath)
	}
	return "ok", nil
}

func (m *mockInferenceClient) Status(ctx context.Context) (*inference.Status, error) {
	if m.StatusFunc != nil {
		return m.StatusFunc(ctx)
	}
	return &inference.Status{Running: true}, nil
}

// sixAgents builds the fixed role roster with sequential IDs starting at 1.
func sixAgents(t *testing.T) []*agent.Agent {
	t.Helper()
	names := map[agent.Role]string{
		agent.RoleCoordinator: "Alice",
		agent.RolePlanner:     "Bob",
		agent.RoleResearcher:  "Charlie",
		agent.RoleDeveloper:   "Diana",
		agent.RoleTester:      "Eve",
		agent.RoleReviewer:    "Frank",
	}

	var out []*agent.Agent
	for i, role := range agent.AllRoles() {
		a, err := agent.NewAgent(names[role], role, "", agent.DefaultModel)
		require.NoError(t, err)
		require.NoError(t, a.SetID(uint(i+1)))
		out = append(out, a)
	}
	return out
}
