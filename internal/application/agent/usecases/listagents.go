package usecases

import (
	"context"

	"fractalyx/internal/application/agent/dto"
	"fractalyx/internal/domain/agent"
	"fractalyx/internal/shared/logger"
)

// ListAgentsResult represents the output of listing agents
type ListAgentsResult struct {
	Agents []*dto.AgentDTO `json:"agents"`
	Total  int             `json:"total"`
}

// ListAgentsUseCase handles listing the agent roster
type ListAgentsUseCase struct {
	agentRepo agent.Repository
	logger    logger.Interface
}

// NewListAgentsUseCase creates a new instance of ListAgentsUseCase
func NewListAgentsUseCase(agentRepo agent.Repository, logger logger.Interface) *ListAgentsUseCase {
	return &ListAgentsUseCase{
		agentRepo: agentRepo,
		logger:    logger,
	}
}

// Execute lists all agents
func (uc *ListAgentsUseCase) Execute(ctx context.Context) (*ListAgentsResult, error) {
	agents, err := uc.agentRepo.List(ctx)
	if err != nil {
		return nil, err
	}

	return &ListAgentsResult{
		Agents: dto.FromAgents(agents),
		Total:  len(agents),
	}, nil
}
