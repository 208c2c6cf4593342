package usecases

import "context"

// ListAgentsExecutor defines the interface for listing agents
type ListAgentsExecutor interface {
	Execute(ctx context.Context) (*ListAgentsResult, error)
}

// CreateAgentExecutor defines the interface for creating agents
type CreateAgentExecutor interface {
	Execute(ctx context.Context, cmd CreateAgentCommand) (*CreateAgentResult, error)
}
