// Package oracle holds the price table of primitive components.
package oracle

import (
	"math/big"
	"slices"
	"strconv"
	"strings"

	"github.com/shopspring/decimal"
	"go.trai.ch/bom/internal/core/domain"
	"go.trai.ch/zerr"
)

// maxExponent bounds the power-of-two attributes (address and select widths).
const maxExponent = 1024

// formula prices one component from its attributes.
type formula func(r *attrReader) decimal.Decimal

// Table prices primitive components. It implements ports.PriceTable.
type Table struct {
	formulas map[domain.ComponentKey]formula
}

// New returns the built-in price table.
func New() *Table {
	return &Table{formulas: builtinFormulas()}
}

// Price returns the price of one instance of key.
// Unknown keys yield domain.ErrUnknownComponentType and a zero price.
// An attribute that is not a base-10 integer yields domain.ErrInvalidAttribute and a zero price.
func (t *Table) Price(key domain.ComponentKey, attrs domain.Attributes) (decimal.Decimal, error) {
	f, ok := t.formulas[key]
	if !ok {
		err := zerr.Wrap(domain.ErrUnknownComponentType, "no price for component "+key.String())
		return decimal.Zero, zerr.With(err, "component", key.String())
	}

	r := &attrReader{attrs: attrs}
	price := f(r)
	if r.err != nil {
		return decimal.Zero, zerr.With(r.err, "component", key.String())
	}
	return price, nil
}

// Keys lists every priced key ordered by its string encoding.
func (t *Table) Keys() []domain.ComponentKey {
	keys := make([]domain.ComponentKey, 0, len(t.formulas))
	for k := range t.formulas {
		keys = append(keys, k)
	}
	slices.SortFunc(keys, domain.ComponentKey.Compare)
	return keys
}

// attrReader reads integer attributes and keeps the first conversion error.
type attrReader struct {
	attrs domain.Attributes
	err   error
}

func (r *attrReader) int(name string, def int64) int64 {
	raw, ok := r.attrs.Lookup(name)
	if !ok {
		return def
	}
	v, err := strconv.ParseInt(strings.TrimSpace(raw), 10, 64)
	if err != nil {
		r.fail(name, raw)
		return 0
	}
	return v
}

// dec reads an integer attribute as a decimal.
func (r *attrReader) dec(name string, def int64) decimal.Decimal {
	return decimal.NewFromInt(r.int(name, def))
}

// pow2 reads an exponent attribute and returns 2 raised to it.
func (r *attrReader) pow2(name string, def int64) decimal.Decimal {
	n := r.int(name, def)
	if n < 0 || n > maxExponent {
		r.fail(name, strconv.FormatInt(n, 10))
		return decimal.Zero
	}
	return decimal.NewFromBigInt(new(big.Int).Lsh(big.NewInt(1), uint(n)), 0)
}

func (r *attrReader) has(name string) bool {
	return r.attrs.Has(name)
}

func (r *attrReader) fail(name, raw string) {
	if r.err != nil {
		return
	}
	err := zerr.Wrap(domain.ErrInvalidAttribute, "attribute "+name+" has unusable value "+strconv.Quote(raw))
	err = zerr.With(err, "attribute", name)
	r.err = zerr.With(err, "value", raw)
}
