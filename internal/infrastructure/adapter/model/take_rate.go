package model

import (
	"time"

	"github.com/shopspring/decimal"
)

// TakeRate represents a platform fee policy row
type TakeRate struct {
	ID        uint64          `gorm:"primaryKey;autoIncrement"`
	UserID    *uint64         `gorm:"index"`
	TakeRate  decimal.Decimal `gorm:"type:numeric(5,2);not null"`
	DateFrom  time.Time       `gorm:"not null"`
	DateTo    time.Time       `gorm:"not null"`
	IsDefault bool            `gorm:"not null;default:false"`
	CreatedAt time.Time       `gorm:"not null"`
}

// TableName specifies the table name for TakeRate
func (TakeRate) TableName() string {
	return "take_rates"
}
