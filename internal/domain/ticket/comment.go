package ticket

import (
	"fmt"
	"time"

	"fractalyx/internal/shared/biztime"
)

// Comment is a note on a ticket, authored either by the customer or by one
// of the agents. Agent authorship is optional even for non-user comments,
// matching system-generated notes that carry no agent attribution.
type Comment struct {
	id        uint
	ticketID  uint
	agentID   *uint
	isUser    bool
	content   string
	createdAt time.Time
	updatedAt time.Time
}

func NewComment(
	ticketID uint,
	content string,
	isUser bool,
	agentID *uint,
) (*Comment, error) {
	if ticketID == 0 {
		return nil, fmt.Errorf("ticket ID is required")
	}
	if len(content) == 0 {
		return nil, fmt.Errorf("content cannot be empty")
	}
	if len(content) > 5000 {
		return nil, fmt.Errorf("content exceeds maximum length of 5000 characters")
	}
	if agentID != nil && *agentID == 0 {
		return nil, fmt.Errorf("agent ID cannot be zero")
	}

	now := biztime.NowUTC()
	return &Comment{
		ticketID:  ticketID,
		agentID:   agentID,
		isUser:    isUser,
		content:   content,
		createdAt: now,
		updatedAt: now,
	}, nil
}

func ReconstructComment(
	id uint,
	ticketID uint,
	agentID *uint,
	isUser bool,
	content string,
	createdAt, updatedAt time.Time,
) (*Comment, error) {
	if id == 0 {
		return nil, fmt.Errorf("comment ID cannot be zero")
	}
	if ticketID == 0 {
		return nil, fmt.Errorf("ticket ID is required")
	}

	return &Comment{
		id:        id,
		ticketID:  ticketID,
		agentID:   agentID,
		isUser:    isUser,
		content:   content,
		createdAt: createdAt,
		updatedAt: updatedAt,
	}, nil
}

func (c *Comment) ID() uint {
	return c.id
}

func (c *Comment) TicketID() uint {
	return c.ticketID
}

func (c *Comment) AgentID() *uint {
	return c.agentID
}

func (c *Comment) IsUser() bool {
	return c.isUser
}

func (c *Comment) Content() string {
	return c.content
}

func (c *Comment) CreatedAt() time.Time {
	return c.createdAt
}

func (c *Comment) UpdatedAt() time.Time {
	return c.updatedAt
}

func (c *Comment) SetID(id uint) error {
	if c.id != 0 {
		return fmt.Errorf("comment ID is already set")
	}
	if id == 0 {
		return fmt.Errorf("comment ID cannot be zero")
	}
	c.id = id
	return nil
}
