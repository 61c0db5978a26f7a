package model

import (
	"time"

	"gorm.io/datatypes"
)

// BuyerProfile anchors a user to a processor customer
type BuyerProfile struct {
	ID                 uint64    `gorm:"primaryKey;autoIncrement"`
	UserID             uint64    `gorm:"not null;uniqueIndex"`
	ExternalCustomerID string    `gorm:"size:255"`
	CreatedAt          time.Time `gorm:"not null"`
	UpdatedAt          time.Time `gorm:"not null"`
}

// TableName specifies the table name for BuyerProfile
func (BuyerProfile) TableName() string {
	return "buyer_profiles"
}

// SellerProfile mirrors the onboarding state of a seller's connected account
type SellerProfile struct {
	ID                  uint64  `gorm:"primaryKey;autoIncrement"`
	UserID              uint64  `gorm:"not null;uniqueIndex"`
	ExternalAccountID   *string `gorm:"size:255;uniqueIndex"`
	OnboardingCompleted bool    `gorm:"not null;default:false"`
	ChargesEnabled      bool    `gorm:"not null;default:false"`
	PayoutsEnabled      bool    `gorm:"not null;default:false"`
	AccountStatus       string  `gorm:"not null;size:20;default:onboarding"`
	Capabilities        datatypes.JSONType[map[string]string]
	CreatedAt           time.Time `gorm:"not null"`
	UpdatedAt           time.Time `gorm:"not null"`
}

// TableName specifies the table name for SellerProfile
func (SellerProfile) TableName() string {
	return "seller_profiles"
}
