// Package aggregator computes the bill of materials of a circuit by walking its hierarchy.
package aggregator

import (
	"context"
	"errors"
	"fmt"
	"strconv"

	"github.com/shopspring/decimal"
	"go.trai.ch/bom/internal/core/domain"
	"go.trai.ch/bom/internal/core/ports"
	"go.trai.ch/zerr"
)

var (
	attrFrom = domain.NewInternedString("from")
	attrTo   = domain.NewInternedString("to")
)

// Options tunes a single computation.
type Options struct {
	// Detailed keeps a detail record of every priced instance.
	Detailed bool
}

// Aggregator prices circuits against a price table.
type Aggregator struct {
	prices ports.PriceTable
	logger ports.Logger
	tracer ports.Tracer
}

// New creates a new Aggregator with the given dependencies.
func New(prices ports.PriceTable, logger ports.Logger, tracer ports.Tracer) *Aggregator {
	return &Aggregator{
		prices: prices,
		logger: logger,
		tracer: tracer,
	}
}

// Compute prices circuit and every circuit it reaches inside docs.
// Each call starts from an empty bill.
func (a *Aggregator) Compute(
	ctx context.Context,
	docs *domain.DocumentSet,
	circuit string,
	opts Options,
) (*domain.Bill, error) {
	c := a.NewContext(docs, circuit, opts)
	if _, err := c.PriceCircuit(ctx, circuit, 0); err != nil {
		return nil, err
	}
	return c.Bill(), nil
}

// NewContext creates the state of one computation.
func (a *Aggregator) NewContext(docs *domain.DocumentSet, circuit string, opts Options) *Context {
	return &Context{
		a:    a,
		docs: docs,
		opts: opts,
		bill: domain.NewBill(circuit),
	}
}

// Context holds the bill under construction for one top-level computation.
// It is not safe for concurrent use.
type Context struct {
	a    *Aggregator
	docs *domain.DocumentSet
	opts Options
	bill *domain.Bill
}

// Bill returns the bill built so far.
func (c *Context) Bill() *domain.Bill {
	return c.bill
}

// PriceElement prices one element found at the given depth.
// Primitives and wires are priced by the price table; custom references recurse one level deeper.
// Unknown primitives and unusable attributes are logged and priced at zero.
func (c *Context) PriceElement(ctx context.Context, el domain.Element, depth int) (domain.Unit, error) {
	switch domain.Classify(el) {
	case domain.KindCustom:
		comp, _ := el.(*domain.Component)
		var name string
		if comp != nil {
			name = comp.Type.String()
		}
		price, err := c.PriceCircuit(ctx, name, depth+1)
		if err != nil {
			return domain.Unit{}, err
		}
		return domain.Unit{Price: price}, nil
	default:
		unit := domain.Unit{Fields: fieldsOf(el)}
		price, err := c.a.prices.Price(domain.KeyOf(el), attributesOf(el))
		if err != nil {
			if !errors.Is(err, domain.ErrUnknownComponentType) && !errors.Is(err, domain.ErrInvalidAttribute) {
				return domain.Unit{}, err
			}
			c.a.logger.Warn(fmt.Sprintf("%s, priced at 0", err.Error()))
		}
		unit.Price = price
		return unit, nil
	}
}

// PriceCircuit returns the price of the named circuit, creating its bill entry on the first visit.
// A circuit visited again, including a cyclic visit that is still being resolved, only gains
// one usage and reports its price as currently recorded.
func (c *Context) PriceCircuit(ctx context.Context, name string, depth int) (decimal.Decimal, error) {
	if depth > domain.MaxDepth {
		err := zerr.Wrap(domain.ErrRecursionDepthExceeded, "circuit "+name+" is nested deeper than "+strconv.Itoa(domain.MaxDepth))
		err = zerr.With(err, "circuit", name)
		return decimal.Zero, zerr.With(err, "depth", depth)
	}

	if entry, ok := c.bill.Entry(name); ok {
		entry.UsageCount++
		return entry.Price, nil
	}

	if err := ctx.Err(); err != nil {
		return decimal.Zero, err
	}

	_, def, ok := c.docs.Resolve(name)
	if !ok {
		c.a.logger.Warn(fmt.Sprintf("circuit not found: %s, priced at 0", name))
		c.bill.Seed(name)
		return decimal.Zero, nil
	}

	ctx, span := c.a.tracer.Start(ctx, name,
		ports.WithAttribute(ports.AttrCircuit, name),
		ports.WithAttribute(ports.AttrDepth, depth),
	)
	defer span.End()

	entry := c.bill.Seed(name)
	price := decimal.Zero
	for _, el := range def.Elements {
		unit, err := c.PriceElement(ctx, el, depth)
		if err != nil {
			span.RecordError(err)
			return decimal.Zero, err
		}
		price = price.Add(unit.Price)
		entry.Add(domain.KeyOf(el), unit, c.opts.Detailed)
	}
	entry.Complete(price)

	span.SetAttribute(ports.AttrElements, len(def.Elements))
	span.SetAttribute(ports.AttrPrice, price.String())
	return price, nil
}

// fieldsOf returns the detail fields of a priced element.
func fieldsOf(el domain.Element) domain.Attributes {
	switch e := el.(type) {
	case *domain.Wire:
		return domain.Attributes{
			{Name: attrFrom, Value: e.From},
			{Name: attrTo, Value: e.To},
		}
	case *domain.Component:
		return e.Attributes
	default:
		return nil
	}
}

func attributesOf(el domain.Element) domain.Attributes {
	if c, ok := el.(*domain.Component); ok {
		return c.Attributes
	}
	return nil
}
