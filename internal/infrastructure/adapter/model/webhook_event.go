package model

import (
	"time"

	"gorm.io/datatypes"
)

// WebhookEvent is the ledger row of a verified processor delivery
type WebhookEvent struct {
	ID              uint64 `gorm:"primaryKey;autoIncrement"`
	EventID         string `gorm:"not null;size:255;uniqueIndex"`
	Type            string `gorm:"not null;size:100;index"`
	Channel         string `gorm:"not null;size:20"`
	Payload         datatypes.JSON
	ProcessedAt     *time.Time
	ProcessingError string    `gorm:"type:text"`
	CreatedAt       time.Time `gorm:"not null"`
	UpdatedAt       time.Time `gorm:"not null"`
}

// TableName specifies the table name for WebhookEvent
func (WebhookEvent) TableName() string {
	return "webhook_events"
}
