package agent

import (
	"fmt"
	"time"

	"fractalyx/internal/shared/biztime"
)

// DefaultModel is the inference model used when an agent is created without
// an explicit model.
const DefaultModel = "llama3:8b-vision"

type Agent struct {
	id          uint
	name        string
	role        Role
	description string
	model       string
	createdAt   time.Time
}

func NewAgent(name string, role Role, description, model string) (*Agent, error) {
	if len(name) == 0 {
		return nil, fmt.Errorf("name is required")
	}
	if !role.IsValid() {
		return nil, fmt.Errorf("invalid agent role: %s", role)
	}
	if model == "" {
		model = DefaultModel
	}

	return &Agent{
		name:        name,
		role:        role,
		description: description,
		model:       model,
		createdAt:   biztime.NowUTC(),
	}, nil
}

func ReconstructAgent(
	id uint,
	name string,
	role Role,
	description string,
	model string,
	createdAt time.Time,
) (*Agent, error) {
	if id == 0 {
		return nil, fmt.Errorf("agent ID cannot be zero")
	}
	if len(name) == 0 {
		return nil, fmt.Errorf("name is required")
	}
	if !role.IsValid() {
		return nil, fmt.Errorf("invalid agent role: %s", role)
	}

	return &Agent{
		id:          id,
		name:        name,
		role:        role,
		description: description,
		model:       model,
		createdAt:   createdAt,
	}, nil
}

func (a *Agent) ID() uint {
	return a.id
}

func (a *Agent) Name() string {
	return a.name
}

func (a *Agent) Role() Role {
	return a.role
}

func (a *Agent) Description() string {
	return a.description
}

func (a *Agent) Model() string {
	return a.model
}

func (a *Agent) CreatedAt() time.Time {
	return a.createdAt
}

func (a *Agent) SetID(id uint) error {
	if a.id != 0 {
		return fmt.Errorf("agent ID is already set")
	}
	if id == 0 {
		return fmt.Errorf("agent ID cannot be zero")
	}
	a.id = id
	return nil
}
