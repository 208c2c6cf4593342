package dto

import (
	"time"

	"fractalyx/internal/domain/project"
	"fractalyx/internal/domain/ticket"
)

type ProjectDTO struct {
	ID          uint      `json:"id"`
	Name        string    `json:"name"`
	Description string    `json:"description"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`

	TicketCounts *TicketCountsDTO `json:"ticket_counts,omitempty"`
}

type TicketCountsDTO struct {
	Total     int64 `json:"total"`
	Open      int64 `json:"open"`
	Completed int64 `json:"completed"`
}

func FromProject(p *project.Project) *ProjectDTO {
	return &ProjectDTO{
		ID:          p.ID(),
		Name:        p.Name(),
		Description: p.Description(),
		CreatedAt:   p.CreatedAt(),
		UpdatedAt:   p.UpdatedAt(),
	}
}

func FromProjectWithCounts(p *project.Project, counts ticket.TicketCounts) *ProjectDTO {
	out := FromProject(p)
	out.TicketCounts = &TicketCountsDTO{
		Total:     counts.Total,
		Open:      counts.Open,
		Completed: counts.Completed,
	}
	return out
}
