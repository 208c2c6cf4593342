package agent

import "context"

type Repository interface {
	Save(ctx context.Context, agent *Agent) error
	GetByID(ctx context.Context, agentID uint) (*Agent, error)
	GetByRole(ctx context.Context, role Role) (*Agent, error)
	List(ctx context.Context) ([]*Agent, error)
	Count(ctx context.Context) (int64, error)
}
