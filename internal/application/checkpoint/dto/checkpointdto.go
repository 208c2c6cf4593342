package dto

import (
	"time"

	ticketdto "fractalyx/internal/application/ticket/dto"
	"fractalyx/internal/domain/checkpoint"
)

type CheckpointDTO struct {
	ID            uint       `json:"id"`
	ProjectID     uint       `json:"project_id"`
	Name          string     `json:"name"`
	Description   string     `json:"description"`
	Completed     bool       `json:"completed"`
	MilestoneDate *time.Time `json:"milestone_date,omitempty"`
	CreatedAt     time.Time  `json:"created_at"`
	UpdatedAt     time.Time  `json:"updated_at"`

	Tickets []*ticketdto.TicketDTO `json:"tickets,omitempty"`
}

func FromCheckpoint(cp *checkpoint.Checkpoint) *CheckpointDTO {
	return &CheckpointDTO{
		ID:            cp.ID(),
		ProjectID:     cp.ProjectID(),
		Name:          cp.Name(),
		Description:   cp.Description(),
		Completed:     cp.Completed(),
		MilestoneDate: cp.MilestoneDate(),
		CreatedAt:     cp.CreatedAt(),
		UpdatedAt:     cp.UpdatedAt(),
	}
}

func FromCheckpoints(checkpoints []*checkpoint.Checkpoint) []*CheckpointDTO {
	out := make([]*CheckpointDTO, 0, len(checkpoints))
	for _, cp := range checkpoints {
		out = append(out, FromCheckpoint(cp))
	}
	return out
}
