package ports

import (
	"github.com/shopspring/decimal"
	"go.trai.ch/bom/internal/core/domain"
)

// PriceTable defines the interface for pricing primitive components.
//
//go:generate mockgen -source=price_table.go -destination=mocks/mock_price_table.go -package=mocks
type PriceTable interface {
	// Price returns the price of one instance of key with the given attributes.
	// It returns domain.ErrUnknownComponentType when key has no formula.
	Price(key domain.ComponentKey, attrs domain.Attributes) (decimal.Decimal, error)

	// Keys lists every priced key.
	Keys() []domain.ComponentKey
}
