package models

type ConversationModel struct {
	ID         uint   `gorm:"primaryKey"`
	CustomerID uint   `gorm:"not null;index"`
	ProjectID  uint   `gorm:"not null;index"`
	Title      string `gorm:"size:200"`
	CreatedAt  int64  `gorm:"autoCreateTime:milli;not null"`
	UpdatedAt  int64  `gorm:"autoUpdateTime:milli;not null;index"`
}

func (ConversationModel) TableName() string {
	return "conversations"
}

type MessageModel struct {
	ID             uint   `gorm:"primaryKey"`
	ConversationID uint   `gorm:"not null;index"`
	AgentID        *uint  `gorm:"index"`
	Content        string `gorm:"type:text;not null"`
	IsUser         bool   `gorm:"not null;default:false"`
	HasImage       bool   `gorm:"not null;default:false"`
	ImagePath      string `gorm:"size:500"`
	CreatedAt      int64  `gorm:"autoCreateTime:milli;not null;index"`
}

func (MessageModel) TableName() string {
	return "messages"
}
