package mappers

import (
	"fractalyx/internal/domain/agent"
	"fractalyx/internal/infrastructure/persistence/models"
)

type AgentMapper interface {
	ToModel(a *agent.Agent) *models.AgentModel
	ToDomain(model *models.AgentModel) (*agent.Agent, error)
}

type AgentMapperImpl struct{}

func NewAgentMapper() AgentMapper {
	return &AgentMapperImpl{}
}

func (m *AgentMapperImpl) ToModel(a *agent.Agent) *models.AgentModel {
	return &models.AgentModel{
		ID:          a.ID(),
		Name:        a.Name(),
		Role:        a.Role().String(),
		Description: a.Description(),
		Model:       a.Model(),
		CreatedAt:   a.CreatedAt().UnixMilli(),
	}
}

func (m *AgentMapperImpl) ToDomain(model *models.AgentModel) (*agent.Agent, error) {
	role, err := agent.NewRole(model.Role)
	if err != nil {
		return nil, err
	}

	return agent.ReconstructAgent(
		model.ID,
		model.Name,
		role,
		model.Description,
		model.Model,
		convertMillisToTime(model.CreatedAt),
	)
}
