package models

type CheckpointModel struct {
	ID            uint   `gorm:"primaryKey"`
	ProjectID     uint   `gorm:"not null;index"`
	Name          string `gorm:"size:100;not null"`
	Description   string `gorm:"type:text"`
	Completed     bool   `gorm:"not null;default:false"`
	MilestoneDate *int64
	CreatedAt     int64 `gorm:"autoCreateTime:milli;not null"`
	UpdatedAt     int64 `gorm:"autoUpdateTime:milli;not null"`
}

func (CheckpointModel) TableName() string {
	return "checkpoints"
}

// CheckpointTicketModel is the m:n link between checkpoints and tickets.
type CheckpointTicketModel struct {
	CheckpointID uint `gorm:"primaryKey;autoIncrement:false"`
	TicketID     uint `gorm:"primaryKey;autoIncrement:false"`
	CreatedAt    int64 `gorm:"autoCreateTime:milli;not null"`
}

func (CheckpointTicketModel) TableName() string {
	return "checkpoint_tickets"
}
