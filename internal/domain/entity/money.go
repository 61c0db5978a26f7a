package entity

import (
	"fmt"
	"strings"

	errs "github.com/amirhossein-jamali/marketplace-payments/internal/domain/error"
	"github.com/shopspring/decimal"
)

// MinorUnitExponent is the decimal exponent of the minor currency unit (cents)
const MinorUnitExponent = -2

// FormatAmount renders a minor-unit amount as a fixed two decimal string
func FormatAmount(minor int64) string {
	return decimal.New(minor, MinorUnitExponent).StringFixed(2)
}

// ParseAmount converts a major-unit decimal string such as "12.50" into minor units.
// More than two fractional digits is rejected rather than rounded.
func ParseAmount(amount string) (int64, error) {
	amount = strings.TrimSpace(amount)
	if amount == "" {
		return 0, fmt.Errorf("%w: empty amount", errs.ErrInvalidRequest)
	}
	d, err := decimal.NewFromString(amount)
	if err != nil {
		return 0, fmt.Errorf("%w: invalid amount %q", errs.ErrInvalidRequest, amount)
	}
	if d.IsNegative() {
		return 0, fmt.Errorf("%w: negative amount %q", errs.ErrInvalidRequest, amount)
	}
	if d.Exponent() < MinorUnitExponent && !d.Equal(d.Truncate(2)) {
		return 0, fmt.Errorf("%w: amount %q has more than two decimal places", errs.ErrInvalidRequest, amount)
	}
	return d.Shift(2).IntPart(), nil
}
