package models

import "gorm.io/datatypes"

type CustomerModel struct {
	ID               uint   `gorm:"primaryKey"`
	Email            string `gorm:"uniqueIndex;size:255;not null"`
	Username         string `gorm:"uniqueIndex;size:100;not null"`
	PasswordHash     string `gorm:"size:255;not null"`
	Company          string `gorm:"size:200"`
	StripeCustomerID string `gorm:"size:100;index"`
	CreatedAt        int64  `gorm:"autoCreateTime:milli;not null"`
	UpdatedAt        int64  `gorm:"autoUpdateTime:milli;not null"`
}

func (CustomerModel) TableName() string {
	return "customers"
}

type SubscriptionModel struct {
	ID                   uint           `gorm:"primaryKey"`
	CustomerID           uint           `gorm:"not null;index"`
	StripeSubscriptionID string         `gorm:"uniqueIndex;size:100;not null"`
	Tier                 string         `gorm:"size:20;not null"`
	Features             datatypes.JSON
	Active               bool   `gorm:"not null;default:true;index"`
	StartDate            int64  `gorm:"not null"`
	EndDate              *int64
	AutoRenew            bool  `gorm:"not null;default:true"`
	CreatedAt            int64 `gorm:"autoCreateTime:milli;not null"`
	UpdatedAt            int64 `gorm:"autoUpdateTime:milli;not null"`
}

func (SubscriptionModel) TableName() string {
	return "subscriptions"
}
