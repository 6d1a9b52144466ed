package domain

import (
	"github.com/shopspring/decimal"
	"go.trai.ch/zerr"
)

// CheckLimit enforces the optional price ceiling of a computation.
// A limit of zero or less disables the check.
func CheckLimit(total, limit decimal.Decimal) error {
	if !limit.IsPositive() || !total.GreaterThan(limit) {
		return nil
	}
	err := zerr.Wrap(ErrPriceLimitExceeded, "price "+total.String()+" exceeds limit "+limit.String())
	err = zerr.With(err, "price", total.String())
	return zerr.With(err, "limit", limit.String())
}
