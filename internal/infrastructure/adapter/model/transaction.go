package model

import (
	"time"
)

// Transaction represents the database model for marketplace purchases
type Transaction struct {
	ID           uint64 `gorm:"primaryKey;autoIncrement"`
	ListingID    uint64 `gorm:"not null;index"`
	BuyerUserID  uint64 `gorm:"not null;index"`
	SellerUserID uint64 `gorm:"not null;index"`

	TotalAmount  int64 `gorm:"not null"`
	PlatformFee  int64 `gorm:"not null"`
	SellerAmount int64 `gorm:"not null"`

	ExternalSessionID       *string `gorm:"size:255;uniqueIndex"`
	ExternalPaymentIntentID *string `gorm:"size:255;index"`
	ExternalChargeID        *string `gorm:"size:255;index"`
	ExternalTransferID      *string `gorm:"size:255"`

	TransactionStatus string `gorm:"not null;size:20;default:PENDING"`
	PaymentStatus     string `gorm:"not null;size:20;default:PENDING"`
	TransferStatus    string `gorm:"not null;size:20;default:PENDING"`

	CreatedAt time.Time `gorm:"not null"`
	UpdatedAt time.Time `gorm:"not null"`
}

// TableName specifies the table name for Transaction
func (Transaction) TableName() string {
	return "transactions"
}

// TransactionAuditLog is one append-only row per effective field change
type TransactionAuditLog struct {
	ID            uint64    `gorm:"primaryKey;autoIncrement"`
	TransactionID uint64    `gorm:"not null;index"`
	FieldName     string    `gorm:"not null;size:50"`
	OldValue      string    `gorm:"type:text"`
	NewValue      string    `gorm:"type:text"`
	ChangedBy     string    `gorm:"not null;size:20"`
	Channel       string    `gorm:"size:20"`
	CreatedAt     time.Time `gorm:"not null"`

	Transaction Transaction `gorm:"foreignKey:TransactionID;references:ID;constraint:OnDelete:CASCADE"`
}

// TableName specifies the table name for TransactionAuditLog
func (TransactionAuditLog) TableName() string {
	return "transaction_audit_logs"
}
