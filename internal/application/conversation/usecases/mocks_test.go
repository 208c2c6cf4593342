package usecases

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	"fractalyx/internal/domain/conversation"
	"fractalyx/internal/domain/project"
	"fractalyx/internal/shared/db"
)

func newTestTxManager(t *testing.T) *db.TransactionManager {
	t.Helper()

	gormDB, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	require.NoError(t, err)

	return db.NewTransactionManager(gormDB)
}

type mockConversationRepository struct {
	SaveFunc           func(ctx context.Context, c *conversation.Conversation) error
	UpdateFunc         func(ctx context.Context, c *conversation.Conversation) error
	GetByIDFunc        func(ctx context.Context, conversationID uint) (*conversation.Conversation, error)
	ListByCustomerFunc func(ctx context.Context, customerID uint) ([]*conversation.Conversation, error)
	RecentFunc         func(ctx context.Context, customerID uint, limit int) ([]*conversation.Conversation, error)
}

func (m *mockConversationRepository) Save(ctx context.Context, c *conversation.Conversation) error {
	if m.SaveFunc != nil {
		return m.SaveFunc(ctx, c)
	}
	return c.SetID(1)
}

func (m *mockConversationRepository) Update(ctx context.Context, c *conversation.Conversation) error {
	if m.UpdateFunc != nil {
		return m.UpdateFunc(ctx, c)
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

type mockProjectRepository struct {
	SaveFunc      func(ctx context.Context, p *project.Project) error
	UpdateFunc    func(ctx context.Context, p *project.Project) error
	GetByIDFunc   func(ctx context.Context, projectID uint) (*project.Project, error)
	GetByNameFunc func(ctx context.Context, name string) (*project.Project, error)
	ListFunc      func(ctx context.Context) ([]*project.Project, error)
	GetFirstFunc  func(ctx context.Context) (*project.Project, error)
}

func (m *mockProjectRepository) Save(ctx context.Context, p *project.Project) error {
	if m.SaveFunc != nil {
		return m.SaveFunc(ctx, p)
	}
	return p.SetID(1)
}

func (m *mockProjectRepository) Update(ctx context.Context, p *project.Project) error {
	if m.UpdateFunc != nil {
		return m.UpdateFunc(ctx, p)
	}
	return nil
}

func (m *mockProjectRepository) GetByID(ctx context.Context, projectID uint) (*project.Project, error) {
	if m.GetByIDFunc != nil {
		return m.GetByIDFunc(ctx, projectID)
	}
	return nil, nil
}

func (m *mockProjectRepository) GetByName(ctx context.Context, name string) (*project.Project, error) {
	if m.GetByNameFunc != nil {
		return m.GetByNameFunc(ctx, name)
	}
	return nil, nil
}

func (m *mockProjectRepository) List(ctx context.Context) ([]*project.Project, error) {
	if m.ListFunc != nil {
		return m.ListFunc(ctx)
	}
	return nil, nil
}

func (m *mockProjectRepository) GetFirst(ctx context.Context) (*project.Project, error) {
	if m.GetFirstFunc != nil {
		return m.GetFirstFunc(ctx)
	}
	return nil, nil
}
