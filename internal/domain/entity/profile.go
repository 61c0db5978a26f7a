package entity

import "time"

// BuyerProfile anchors a buyer to the processor's customer object
type BuyerProfile struct {
	ID                 uint64
	UserID             uint64
	ExternalCustomerID string
	CreatedAt          time.Time
	UpdatedAt          time.Time
}

// HasCustomer reports whether the processor customer was already created
func (p *BuyerProfile) HasCustomer() bool {
	return p.ExternalCustomerID != ""
}

// Account status values mirrored onto seller profiles
const (
	AccountStatusOnboarding = "onboarding"
	AccountStatusPending    = "pending"
	AccountStatusRestricted = "restricted"
	AccountStatusActive     = "active"
)

// SellerProfile anchors a seller to the processor's connected account
type SellerProfile struct {
	ID                  uint64
	UserID              uint64
	ExternalAccountID   string
	OnboardingCompleted bool
	ChargesEnabled      bool
	PayoutsEnabled      bool
	AccountStatus       string
	Capabilities        map[string]string
	CreatedAt           time.Time
	UpdatedAt           time.Time
}

// CanReceivePayments reports whether checkout may route funds to the seller
func (p *SellerProfile) CanReceivePayments() bool {
	return p.ExternalAccountID != ""
}

// AccountState is the processor-side onboarding snapshot of a connected account
type AccountState struct {
	AccountID        string
	DetailsSubmitted bool
	ChargesEnabled   bool
	PayoutsEnabled   bool
	DisabledReason   string
	Capabilities     map[string]string
}

// Status derives the mirrored account status from the snapshot
func (s AccountState) Status() string {
	switch {
	case s.ChargesEnabled && s.PayoutsEnabled:
		return AccountStatusActive
	case s.DisabledReason != "":
		return AccountStatusRestricted
	case s.DetailsSubmitted:
		return AccountStatusPending
	default:
		return AccountStatusOnboarding
	}
}
