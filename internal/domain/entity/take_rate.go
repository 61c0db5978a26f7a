package entity

import (
	"fmt"
	"time"

	errs "github.com/amirhossein-jamali/marketplace-payments/internal/domain/error"
	"github.com/shopspring/decimal"
)

// OpenEndedDate is stored in take_rates.date_to for policies with no end.
// date_to is never NULL; the sentinel keeps range queries a plain BETWEEN.
var OpenEndedDate = time.Date(9999, 12, 31, 23, 59, 59, 0, time.UTC)

var (
	hundred = decimal.NewFromInt(100)
	zero    = decimal.Zero
)

// TakeRate is a time-ranged platform commission policy
type TakeRate struct {
	ID        uint64
	UserID    *uint64 // nil applies to every seller
	Rate      decimal.Decimal
	DateFrom  time.Time
	DateTo    time.Time
	IsDefault bool
	CreatedAt time.Time
}

// NewTakeRate validates and builds a take rate policy. A zero dateTo means open-ended.
func NewTakeRate(userID *uint64, rate decimal.Decimal, dateFrom, dateTo time.Time) (*TakeRate, error) {
	if err := ValidateRate(rate); err != nil {
		return nil, err
	}
	if dateTo.IsZero() {
		dateTo = OpenEndedDate
	}
	if dateTo.Before(dateFrom) {
		return nil, fmt.Errorf("%w: date_to %s is before date_from %s",
			errs.ErrInvalidRequest, dateTo.Format(time.DateOnly), dateFrom.Format(time.DateOnly))
	}
	return &TakeRate{
		UserID:    userID,
		Rate:      rate,
		DateFrom:  dateFrom,
		DateTo:    dateTo,
		IsDefault: userID == nil,
	}, nil
}

// Covers reports whether at lies in [DateFrom, DateTo]
func (r *TakeRate) Covers(at time.Time) bool {
	return !at.Before(r.DateFrom) && !at.After(r.DateTo)
}

// IsOpenEnded reports whether the policy has no end date
func (r *TakeRate) IsOpenEnded() bool {
	return !r.DateTo.Before(OpenEndedDate)
}

// ValidateRate checks that a percentage lies in [0, 100]
func ValidateRate(rate decimal.Decimal) error {
	if rate.LessThan(zero) || rate.GreaterThan(hundred) {
		return fmt.Errorf("%w: take rate %s outside 0-100", errs.ErrInvalidRequest, rate.String())
	}
	return nil
}

// FeeSplit divides a total between the platform and the seller
type FeeSplit struct {
	Total        int64
	PlatformFee  int64
	SellerAmount int64
	Rate         decimal.Decimal
}

// SplitFee computes platform_fee = floor(total * rate / 100) and gives the rest to the seller.
// Decimal arithmetic keeps the result identical whenever it is recomputed.
func SplitFee(total int64, rate decimal.Decimal) (FeeSplit, error) {
	if total <= 0 {
		return FeeSplit{}, fmt.Errorf("%w: total amount must be positive, got %d", errs.ErrInvalidRequest, total)
	}
	if err := ValidateRate(rate); err != nil {
		return FeeSplit{}, err
	}

	fee := decimal.NewFromInt(total).Mul(rate).Div(hundred).Floor().IntPart()
	return FeeSplit{
		Total:        total,
		PlatformFee:  fee,
		SellerAmount: total - fee,
		Rate:         rate,
	}, nil
}

// Validate checks the split invariant
func (s FeeSplit) Validate() error {
	if s.Total <= 0 || s.PlatformFee < 0 || s.SellerAmount < 0 {
		return fmt.Errorf("%w: negative or empty amounts in fee split", errs.ErrInvalidRequest)
	}
	if s.PlatformFee+s.SellerAmount != s.Total {
		return fmt.Errorf("%w: platform fee %d + seller amount %d != total %d",
			errs.ErrInvalidRequest, s.PlatformFee, s.SellerAmount, s.Total)
	}
	return nil
}
