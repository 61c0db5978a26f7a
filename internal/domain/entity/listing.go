package entity

// ListingKind is the catalog family a listing belongs to
type ListingKind string

// Listing kinds
const (
	ListingProperty     ListingKind = "property"
	ListingRoom         ListingKind = "room"
	ListingProduct      ListingKind = "product"
	ListingConsultation ListingKind = "consultation"
)

// PublicationStatus is the catalog publication state of a listing
type PublicationStatus string

// Publication statuses
const (
	ListingDraft     PublicationStatus = "DRAFT"
	ListingPublished PublicationStatus = "PUBLISHED"
	ListingArchived  PublicationStatus = "ARCHIVED"
)

// Listing is the read-only catalog view the payment flow needs
type Listing struct {
	ID           uint64
	Kind         ListingKind
	Title        string
	Description  string
	Price        int64 // minor currency unit
	SellerUserID uint64
	Status       PublicationStatus
	PropertyName string
	ThumbnailURL string
}

// IsPublished reports whether buyers may purchase the listing
func (l *Listing) IsPublished() bool {
	return l.Status == ListingPublished
}
