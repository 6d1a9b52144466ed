// Package report encodes a priced bill as JSON or YAML.
package report

import (
	"bytes"
	"encoding/json"
	"io"

	"go.trai.ch/bom/internal/core/domain"
	"go.trai.ch/zerr"
	"gopkg.in/yaml.v3"
)

const (
	jsonIndent = "    "
	yamlIndent = 2
	priceField = "price"
)

// Encoder implements ports.BillEncoder.
type Encoder struct{}

// NewEncoder creates a new Encoder.
func NewEncoder() *Encoder {
	return &Encoder{}
}

type circuitReport struct {
	Price  Amount                `json:"price" yaml:"price"`
	Amount int                   `json:"amount" yaml:"amount"`
	Parts  map[string]partReport `json:"parts" yaml:"parts"`
}

type partReport struct {
	Amount    int              `json:"amount" yaml:"amount"`
	TotalCost Amount           `json:"total_cost" yaml:"total_cost"`
	Units     []map[string]any `json:"units,omitempty" yaml:"units,omitempty"`
}

// billReport keeps circuits in the order they were first visited.
type billReport struct {
	names    []string
	circuits map[string]circuitReport
}

// Encode writes bill to w in the requested format.
func (e *Encoder) Encode(w io.Writer, bill *domain.Bill, format string) error {
	report := newBillReport(bill)

	var (
		data []byte
		err  error
	)
	switch format {
	case "", domain.FormatJSON:
		data, err = encodeJSON(report)
	case domain.FormatYAML:
		data, err = encodeYAML(report)
	default:
		return zerr.With(zerr.Wrap(domain.ErrInvalidFormat, "unsupported bill format"), "format", format)
	}
	if err != nil {
		return zerr.Wrap(err, domain.ErrReportMarshalFailed.Error())
	}

	if _, err := w.Write(data); err != nil {
		return zerr.Wrap(err, domain.ErrReportWriteFailed.Error())
	}
	return nil
}

func newBillReport(bill *domain.Bill) billReport {
	r := billReport{
		names:    bill.Names(),
		circuits: make(map[string]circuitReport, bill.Len()),
	}

	for _, name := range r.names {
		entry, _ := bill.Entry(name)
		c := circuitReport{
			Price:  Amount(entry.Price),
			Amount: entry.UsageCount,
			Parts:  make(map[string]partReport, len(entry.Parts)),
		}
		for key, part := range entry.Parts {
			p := partReport{
				Amount:    part.Amount,
				TotalCost: Amount(part.TotalCost),
			}
			for _, unit := range part.Units {
				p.Units = append(p.Units, flattenUnit(unit))
			}
			c.Parts[key.String()] = p
		}
		r.circuits[name] = c
	}

	return r
}

// flattenUnit merges the unit fields and its price into one object.
func flattenUnit(unit domain.Unit) map[string]any {
	m := make(map[string]any, len(unit.Fields)+1)
	for _, f := range unit.Fields {
		m[f.Name.String()] = f.Value
	}
	m[priceField] = Amount(unit.Price)
	return m
}

// MarshalJSON writes the circuits as one object in visit order.
func (r billReport) MarshalJSON() ([]byte, error) {
	var buf bytes.Buffer
	buf.WriteByte('{')
	for i, name := range r.names {
		if i > 0 {
			buf.WriteByte(',')
		}
		key, err := marshalJSON(name)
		if err != nil {
			return nil, err
		}
		value, err := marshalJSON(r.circuits[name])
		if err != nil {
			return nil, err
		}
		buf.Write(key)
		buf.WriteByte(':')
		buf.Write(value)
	}
	buf.WriteByte('}')
	return buf.Bytes(), nil
}

// MarshalYAML returns a mapping node with the circuits in visit order.
func (r billReport) MarshalYAML() (any, error) {
	node := &yaml.Node{Kind: yaml.MappingNode, Tag: "!!map"}
	for _, name := range r.names {
		value := &yaml.Node{}
		if err := value.Encode(r.circuits[name]); err != nil {
			return nil, err
		}
		node.Content = append(node.Content,
			&yaml.Node{Kind: yaml.ScalarNode, Tag: "!!str", Value: name},
			value,
		)
	}
	return node, nil
}

func marshalJSON(v any) ([]byte, error) {
	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	enc.SetEscapeHTML(false)
	if err := enc.Encode(v); err != nil {
		return nil, err
	}
	return bytes.TrimSuffix(buf.Bytes(), []byte("\n")), nil
}

func encodeJSON(r billReport) ([]byte, error) {
	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	enc.SetEscapeHTML(false)
	enc.SetIndent("", jsonIndent)
	if err := enc.Encode(r); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

func encodeYAML(r billReport) ([]byte, error) {
	var buf bytes.Buffer
	enc := yaml.NewEncoder(&buf)
	enc.SetIndent(yamlIndent)
	if err := enc.Encode(r); err != nil {
		return nil, err
	}
	if err := enc.Close(); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}
