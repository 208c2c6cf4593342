package models

type AgentModel struct {
	ID          uint   `gorm:"primaryKey"`
	Name        string `gorm:"size:100;not null"`
	Role        string `gorm:"size:20;not null;index"`
	Description string `gorm:"type:text"`
	Model       string `gorm:"size:100;not null"`
	CreatedAt   int64  `gorm:"autoCreateTime:milli;not null"`
}

func (AgentModel) TableName() string {
	return "agents"
}
