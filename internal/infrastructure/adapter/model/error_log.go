package model

import (
	"time"

	"gorm.io/datatypes"
)

// TransactionErrorLog records a processing failure, correlated to a transaction when possible
type TransactionErrorLog struct {
	ID            uint64  `gorm:"primaryKey;autoIncrement"`
	TransactionID *uint64 `gorm:"index"`
	ErrorType     string  `gorm:"not null;size:50;index"`
	Message       string  `gorm:"type:text;not null"`
	Context       datatypes.JSONMap
	CreatedAt     time.Time `gorm:"not null"`
}

// TableName specifies the table name for TransactionErrorLog
func (TransactionErrorLog) TableName() string {
	return "transaction_error_logs"
}
