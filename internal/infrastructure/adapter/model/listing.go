package model

// Listing is the read-side projection of a catalog item
type Listing struct {
	ID           uint64 `gorm:"primaryKey;autoIncrement"`
	Kind         string `gorm:"not null;size:20"`
	Title        string `gorm:"not null;size:255"`
	Description  string `gorm:"type:text"`
	Price        int64  `gorm:"not null"`
	SellerUserID uint64 `gorm:"not null;index"`
	Status       string `gorm:"not null;size:20;default:DRAFT"`
	PropertyName string `gorm:"size:255"`
	ThumbnailURL string `gorm:"size:1024"`
}

// TableName specifies the table name for Listing
func (Listing) TableName() string {
	return "listings"
}
