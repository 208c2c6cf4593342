package usecases

import (
	"context"

	"fractalyx/internal/application/agent/dto"
	"fractalyx/internal/domain/agent"
	"fractalyx/internal/shared/db"
	"fractalyx/internal/shared/errors"
	"fractalyx/internal/shared/logger"
)

// CreateAgentCommand represents the input for creating an agent. An empty
// model falls back to the default vision-capable model.
type CreateAgentCommand struct {
	Name        string `json:"name"`
	Role        string `json:"role"`
	Description string `json:"description"`
	Model       string `json:"model"`
}

// CreateAgentResult represents the output of creating an agent
type CreateAgentResult struct {
	Agent *dto.AgentDTO `json:"agent"`
}

// CreateAgentUseCase handles agent creation
type CreateAgentUseCase struct {
	agentRepo agent.Repository
	txManager *db.TransactionManager
	logger    logger.Interface
}

// NewCreateAgentUseCase creates a new instance of CreateAgentUseCase
func NewCreateAgentUseCase(
	agentRepo agent.Repository,
	txManager *db.TransactionManager,
	logger logger.Interface,
) *CreateAgentUseCase {
	return &CreateAgentUseCase{
		agentRepo: agentRepo,
		txManager: txManager,
		logger:    logger,
	}
}

// Execute creates a new agent with a validated role
func (uc *CreateAgentUseCase) Execute(ctx context.Context, cmd CreateAgentCommand) (*CreateAgentResult, error) {
	role, err := agent.NewRole(cmd.Role)
	if err != nil {
		return nil, errors.NewValidationError(err.Error())
	}

	model := cmd.Model
	if model == "" {
		model = agent.DefaultModel
	}

	a, err := agent.NewAgent(cmd.Name, role, cmd.Description, model)
	if err != nil {
		return nil, errors.NewValidationError(err.Error())
	}

	err = uc.txManager.RunInTransaction(ctx, func(txCtx context.Context) error {
		return uc.agentRepo.Save(txCtx, a)
	})
	if err != nil {
		uc.logger.Errorw("failed to save agent", "name", cmd.Name, "error", err)
		return nil, err
	}

	uc.logger.Infow("agent created", "agent_id", a.ID(), "role", role.String())

	return &CreateAgentResult{Agent: dto.FromAgent(a)}, nil
}
