package dto

import (
	"time"

	"fractalyx/internal/domain/ticket"
)

type TicketDTO struct {
	ID              uint       `json:"id"`
	ProjectID       uint       `json:"project_id"`
	Title           string     `json:"title"`
	Description     string     `json:"description"`
	Status          string     `json:"status"`
	Priority        string     `json:"priority"`
	AssignedAgentID *uint      `json:"assigned_agent_id,omitempty"`
	ParentTicketID  *uint      `json:"parent_ticket_id,omitempty"`
	DueDate         *time.Time `json:"due_date,omitempty"`
	CreatedAt       time.Time  `json:"created_at"`
	UpdatedAt       time.Time  `json:"updated_at"`
}

type CommentDTO struct {
	ID        uint      `json:"id"`
	TicketID  uint      `json:"ticket_id"`
	AgentID   *uint     `json:"agent_id,omitempty"`
	IsUser    bool      `json:"is_user"`
	Content   string    `json:"content"`
	CreatedAt time.Time `json:"created_at"`
}

func FromTicket(t *ticket.Ticket) *TicketDTO {
	return &TicketDTO{
		ID:              t.ID(),
		ProjectID:       t.ProjectID(),
		Title:           t.Title(),
		Description:     t.Description(),
		Status:          t.Status().String(),
		Priority:        t.Priority().String(),
		AssignedAgentID: t.AssignedAgentID(),
		ParentTicketID:  t.ParentTicketID(),
		DueDate:         t.DueDate(),
		CreatedAt:       t.CreatedAt(),
		UpdatedAt:       t.UpdatedAt(),
	}
}

func FromTickets(tickets []*ticket.Ticket) []*TicketDTO {
	out := make([]*TicketDTO, 0, len(tickets))
	for _, t := range tickets {
		out = append(out, FromTicket(t))
	}
	return out
}

func FromComment(c *ticket.Comment) *CommentDTO {
	return &CommentDTO{
		ID:        c.ID(),
		TicketID:  c.TicketID(),
		AgentID:   c.AgentID(),
		IsUser:    c.IsUser(),
		Content:   c.Content(),
		CreatedAt: c.CreatedAt(),
	}
}

func FromComments(comments []*ticket.Comment) []*CommentDTO {
	out := make([]*CommentDTO, 0, len(comments))
	for _, c := range comments {
		out = append(out, FromComment(c))
	}
	return out
}
