package models

type TicketModel struct {
	ID              uint   `gorm:"primaryKey"`
	ProjectID       uint   `gorm:"not null;index"`
	Title           string `gorm:"size:200;not null"`
	Description     string `gorm:"type:text"`
	Status          string `gorm:"size:20;not null;index"`
	Priority        string `gorm:"size:20;not null;index"`
	AssignedAgentID *uint  `gorm:"index"`
	ParentTicketID  *uint  `gorm:"index"`
	DueDate         *int64
	CreatedAt       int64 `gorm:"autoCreateTime:milli;not null"`
	UpdatedAt       int64 `gorm:"autoUpdateTime:milli;not null"`

	// Note: No foreign key constraints or associations.
	// All relationships are managed by application business logic.
}

func (TicketModel) TableName() string {
	return "tickets"
}

type CommentModel struct {
	ID        uint   `gorm:"primaryKey"`
	TicketID  uint   `gorm:"not null;index"`
	AgentID   *uint  `gorm:"index"`
	IsUser    bool   `gorm:"not null;default:false"`
	Content   string `gorm:"type:text;not null"`
	CreatedAt int64  `gorm:"autoCreateTime:milli;not null;index"`
	UpdatedAt int64  `gorm:"autoUpdateTime:milli;not null"`
}

func (CommentModel) TableName() string {
	return "ticket_comments"
}
