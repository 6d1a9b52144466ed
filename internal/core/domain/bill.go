package domain

import (
	"slices"

	"github.com/shopspring/decimal"
)

// Unit is the detail record of one priced element instance.
type Unit struct {
	// Fields holds the declared attributes of a component, or from/to for a wire.
	Fields Attributes
	Price  decimal.Decimal
}

// PartAggregate accumulates every instance of one component key inside a circuit.
type PartAggregate struct {
	Amount    int
	TotalCost decimal.Decimal
	// Units is only populated in detailed mode.
	Units []Unit
}

// BillEntry is the priced breakdown of one circuit.
type BillEntry struct {
	Price      decimal.Decimal
	UsageCount int
	Parts      map[ComponentKey]*PartAggregate
}

// Add records one priced element under key. The entry price is left untouched
// until Complete so that a re-entrant visit observes the price as it was seeded.
func (e *BillEntry) Add(key ComponentKey, unit Unit, detailed bool) {
	part, ok := e.Parts[key]
	if !ok {
		part = &PartAggregate{}
		e.Parts[key] = part
	}
	part.Amount++
	part.TotalCost = part.TotalCost.Add(unit.Price)
	if detailed {
		part.Units = append(part.Units, unit)
	}
}

// Complete writes the final price of the entry.
func (e *BillEntry) Complete(price decimal.Decimal) {
	e.Price = price
}

// SortedKeys returns the part keys ordered by their string encoding.
func (e *BillEntry) SortedKeys() []ComponentKey {
	keys := make([]ComponentKey, 0, len(e.Parts))
	for k := range e.Parts {
		keys = append(keys, k)
	}
	slices.SortFunc(keys, ComponentKey.Compare)
	return keys
}

// Bill maps every visited circuit to its entry.
type Bill struct {
	// Circuit is the requested top-level circuit.
	Circuit string
	entries map[string]*BillEntry
	order   []string
}

// NewBill creates an empty bill for the requested circuit.
func NewBill(circuit string) *Bill {
	return &Bill{
		Circuit: circuit,
		entries: make(map[string]*BillEntry),
	}
}

// Seed creates the entry of a circuit on its first visit, with price 0 and a usage count of 1.
func (b *Bill) Seed(name string) *BillEntry {
	entry := &BillEntry{
		UsageCount: 1,
		Parts:      make(map[ComponentKey]*PartAggregate),
	}
	b.entries[name] = entry
	b.order = append(b.order, name)
	return entry
}

// Entry returns the entry of a circuit.
func (b *Bill) Entry(name string) (*BillEntry, bool) {
	e, ok := b.entries[name]
	return e, ok
}

// Names returns circuit names in the order they were first visited.
func (b *Bill) Names() []string {
	return b.order
}

// Len returns the number of entries.
func (b *Bill) Len() int {
	return len(b.order)
}

// Total returns the price of the requested circuit.
func (b *Bill) Total() decimal.Decimal {
	if e, ok := b.entries[b.Circuit]; ok {
		return e.Price
	}
	return decimal.Zero
}
