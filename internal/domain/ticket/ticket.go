package ticket

import (
	"fmt"
	"time"
	"unicode/utf8"

	vo "fractalyx/internal/domain/ticket/valueobjects"
)

type Ticket struct {
	id              uint
	projectID       uint
	title           string
	description     string
	status          vo.TicketStatus
	priority        vo.Priority
	assignedAgentID *uint
	parentTicketID  *uint
	dueDate         *time.Time
	createdAt       time.Time
	updatedAt       time.Time
	comments        []*Comment
}

func NewTicket(
	projectID uint,
	title string,
	description string,
	priority vo.Priority,
) (*Ticket, error) {
	if projectID == 0 {
		return nil, fmt.Errorf("project ID is required")
	}
	if len(title) == 0 {
		return nil, fmt.Errorf("title is required")
	}
	if utf8.RuneCountInString(title) > 200 {
		return nil, fmt.Errorf("title exceeds maximum length of 200 characters")
	}
	if !priority.IsValid() {
		return nil, fmt.Errorf("invalid priority")
	}

	now := time.Now()

	t := &Ticket{
		projectID:   projectID,
		title:       title,
		description: description,
		status:      vo.StatusOpen,
		priority:    priority,
		createdAt:   now,
		updatedAt:   now,
		comments:    []*Comment{},
	}

	return t, nil
}

func ReconstructTicket(
	id uint,
	projectID uint,
	title string,
	description string,
	status vo.TicketStatus,
	priority vo.Priority,
	assignedAgentID *uint,
	parentTicketID *uint,
	dueDate *time.Time,
	createdAt, updatedAt time.Time,
) (*Ticket, error) {
	if id == 0 {
		return nil, fmt.Errorf("ticket ID cannot be zero")
	}
	if projectID == 0 {
		return nil, fmt.Errorf("project ID is required")
	}
	if len(title) == 0 {
		return nil, fmt.Errorf("title is required")
	}
	if !status.IsValid() {
		return nil, fmt.Errorf("invalid status")
	}
	if !priority.IsValid() {
		return nil, fmt.Errorf("invalid priority")
	}

	return &Ticket{
		id:              id,
		projectID:       projectID,
		title:           title,
		description:     description,
		status:          status,
		priority:        priority,
		assignedAgentID: assignedAgentID,
		parentTicketID:  parentTicketID,
		dueDate:         dueDate,
		createdAt:       createdAt,
		updatedAt:       updatedAt,
		comments:        []*Comment{},
	}, nil
}

func (t *Ticket) ID() uint {
	return t.id
}

func (t *Ticket) ProjectID() uint {
	return t.projectID
}

func (t *Ticket) Title() string {
	return t.title
}

func (t *Ticket) Description() string {
	return t.description
}

func (t *Ticket) Status() vo.TicketStatus {
	return t.status
}

func (t *Ticket) Priority() vo.Priority {
	return t.priority
}

func (t *Ticket) AssignedAgentID() *uint {
	return t.assignedAgentID
}

func (t *Ticket) ParentTicketID() *uint {
	return t.parentTicketID
}

func (t *Ticket) DueDate() *time.Time {
	return t.dueDate
}

func (t *Ticket) CreatedAt() time.Time {
	return t.createdAt
}

func (t *Ticket) UpdatedAt() time.Time {
	return t.updatedAt
}

func (t *Ticket) Comments() []*Comment {
	commentsCopy := make([]*Comment, len(t.comments))
	copy(commentsCopy, t.comments)
	return commentsCopy
}

func (t *Ticket) SetID(id uint) error {
	if t.id != 0 {
		return fmt.Errorf("ticket ID is already set")
	}
	if id == 0 {
		return fmt.Errorf("ticket ID cannot be zero")
	}
	t.id = id
	return nil
}

// AssignTo assigns the ticket to an agent. Assignment always moves the
// ticket to in_progress, even when it was previously completed or blocked.
func (t *Ticket) AssignTo(agentID uint) error {
	if agentID == 0 {
		return fmt.Errorf("agent ID cannot be zero")
	}

	t.assignedAgentID = &agentID
	t.status = vo.StatusInProgress
	t.updatedAt = time.Now()

	return nil
}

func (t *Ticket) ChangeStatus(newStatus vo.TicketStatus) error {
	if !newStatus.IsValid() {
		return fmt.Errorf("invalid status: %s", newStatus)
	}

	if t.status == newStatus {
		return nil
	}

	t.status = newStatus
	t.updatedAt = time.Now()

	return nil
}

func (t *Ticket) ChangePriority(newPriority vo.Priority) error {
	if !newPriority.IsValid() {
		return fmt.Errorf("invalid priority: %s", newPriority)
	}

	if t.priority == newPriority {
		return nil
	}

	t.priority = newPriority
	t.updatedAt = time.Now()

	return nil
}

func (t *Ticket) UpdateTitle(title string) error {
	if len(title) == 0 {
		return fmt.Errorf("title is required")
	}
	if utf8.RuneCountInString(title) > 200 {
		return fmt.Errorf("title exceeds maximum length of 200 characters")
	}

	t.title = title
	t.updatedAt = time.Now()

	return nil
}

func (t *Ticket) UpdateDescription(description string) {
	t.description = description
	t.updatedAt = time.Now()
}

func (t *Ticket) SetDueDate(dueDate *time.Time) {
	t.dueDate = dueDate
	t.updatedAt = time.Now()
}

// SetParent links the ticket under a parent ticket. The caller is
// responsible for verifying the parent belongs to the same project.
func (t *Ticket) SetParent(parentTicketID *uint) error {
	if parentTicketID != nil && *parentTicketID == t.id && t.id != 0 {
		return fmt.Errorf("ticket cannot be its own parent")
	}

	t.parentTicketID = parentTicketID
	t.updatedAt = time.Now()

	return nil
}

func (t *Ticket) AddComment(comment *Comment) error {
	if comment == nil {
		return fmt.Errorf("comment cannot be nil")
	}

	if comment.TicketID() != t.id {
		return fmt.Errorf("comment ticket ID mismatch")
	}

	t.comments = append(t.comments, comment)
	t.updatedAt = time.Now()

	return nil
}
