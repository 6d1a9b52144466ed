package report

import (
	"github.com/shopspring/decimal"
	"gopkg.in/yaml.v3"
)

// Amount is a price written as a bare number with its exact decimal digits.
type Amount decimal.Decimal

// MarshalJSON writes the decimal without quotes.
func (a Amount) MarshalJSON() ([]byte, error) {
	return []byte(decimal.Decimal(a).String()), nil
}

// MarshalYAML writes the decimal as an int or float scalar.
func (a Amount) MarshalYAML() (any, error) {
	d := decimal.Decimal(a)
	tag := "!!float"
	if d.IsInteger() {
		tag = "!!int"
	}
	return &yaml.Node{Kind: yaml.ScalarNode, Tag: tag, Value: d.String()}, nil
}
