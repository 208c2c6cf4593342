package dto

import (
	"time"

	"fractalyx/internal/domain/agent"
)

type AgentDTO struct {
	ID          uint      `json:"id"`
	Name        string    `json:"name"`
	Role        string    `json:"role"`
	Description string    `json:"description"`
	Model       string    `json:"model"`
	CreatedAt   time.Time `json:"created_at"`
}

func FromAgent(a *agent.Agent) *AgentDTO {
	return &AgentDTO{
		ID:          a.ID(),
		Name:        a.Name(),
		Role:        a.Role().String(),
		Description: a.Description(),
		Model:       a.Model(),
		CreatedAt:   a.CreatedAt(),
	}
}

func FromAgents(agents []*agent.Agent) []*AgentDTO {
	out := make([]*AgentDTO, 0, len(agents))
	for _, a := range agents {
		out = append(out, FromAgent(a))
	}
	return out
}
