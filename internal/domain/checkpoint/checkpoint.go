package checkpoint

import (
	"fmt"
	"time"

	"fractalyx/internal/shared/biztime"
)

type Checkpoint struct {
	id            uint
	projectID     uint
	name          string
	description   string
	completed     bool
	milestoneDate *time.Time
	createdAt     time.Time
	updatedAt     time.Time
}

func NewCheckpoint(projectID uint, name, description string, milestoneDate *time.Time) (*Checkpoint, error) {
	if projectID == 0 {
		return nil, fmt.Errorf("project ID is required")
	}
	if len(name) == 0 {
		return nil, fmt.Errorf("name is required")
	}
	if len(name) > 100 {
		return nil, fmt.Errorf("name exceeds maximum length of 100 characters")
	}

	now := biztime.NowUTC()
	return &Checkpoint{
		projectID:     projectID,
		name:          name,
		description:   description,
		milestoneDate: milestoneDate,
		createdAt:     now,
		updatedAt:     now,
	}, nil
}

func ReconstructCheckpoint(
	id uint,
	projectID uint,
	name string,
	description string,
	completed bool,
	milestoneDate *time.Time,
	createdAt, updatedAt time.Time,
) (*Checkpoint, error) {
	if id == 0 {
		return nil, fmt.Errorf("checkpoint ID cannot be zero")
	}
	if projectID == 0 {
		return nil, fmt.Errorf("project ID is required")
	}
	if len(name) == 0 {
		return nil, fmt.Errorf("name is required")
	}

	return &Checkpoint{
		id:            id,
		projectID:     projectID,
		name:          name,
		description:   description,
		completed:     completed,
		milestoneDate: milestoneDate,
		createdAt:     createdAt,
		updatedAt:     updatedAt,
	}, nil
}

func (c *Checkpoint) ID() uint {
	return c.id
}

func (c *Checkpoint) ProjectID() uint {
	return c.projectID
}

func (c *Checkpoint) Name() string {
	return c.name
}

func (c *Checkpoint) Description() string {
	return c.description
}

func (c *Checkpoint) Completed() bool {
	return c.completed
}

func (c *Checkpoint) MilestoneDate() *time.Time {
	return c.milestoneDate
}

func (c *Checkpoint) CreatedAt() time.Time {
	return c.createdAt
}

func (c *Checkpoint) UpdatedAt() time.Time {
	return c.updatedAt
}

func (c *Checkpoint) SetID(id uint) error {
	if c.id != 0 {
		return fmt.Errorf("checkpoint ID is already set")
	}
	if id == 0 {
		return fmt.Errorf("checkpoint ID cannot be zero")
	}
	c.id = id
	return nil
}

func (c *Checkpoint) SetCompleted(completed bool) {
	if c.completed == completed {
		return
	}
	c.completed = completed
	c.updatedAt = biztime.NowUTC()
}
