package aggregator_test

import (
	"context"
	"errors"
	"fmt"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.trai.ch/bom/internal/core/domain"
	"go.trai.ch/bom/internal/core/ports"
	"go.trai.ch/bom/internal/core/ports/mocks"
	"go.trai.ch/bom/internal/engine/aggregator"
	"go.trai.ch/bom/internal/engine/oracle"
	"go.uber.org/mock/gomock"
)

type aggregatorTestMocks struct {
	logger *mocks.MockLogger
	tracer *mocks.MockTracer
	span   *mocks.MockSpan
}

// setupAggregatorTest creates an aggregator over the built-in price table and common mocks.
func setupAggregatorTest(t *testing.T) (*aggregator.Aggregator, aggregatorTestMocks) {
	t.Helper()
	ctrl := gomock.NewController(t)
	m := aggregatorTestMocks{
		logger: mocks.NewMockLogger(ctrl),
		tracer: mocks.NewMockTracer(ctrl),
		span:   mocks.NewMockSpan(ctrl),
	}

	m.span.EXPECT().End().AnyTimes()
	m.span.EXPECT().RecordError(gomock.Any()).AnyTimes()
	m.span.EXPECT().SetAttribute(gomock.Any(), gomock.Any()).AnyTimes()

	// Start has variadic signature: Start(ctx, name, ...opts).
	m.tracer.EXPECT().Start(gomock.Any(), gomock.Any(), gomock.Any()).DoAndReturn(
		func(ctx context.Context, _ string, _ ...ports.SpanOption) (context.Context, ports.Span) {
			return ctx, m.span
		},
	).AnyTimes()

	return aggregator.New(oracle.New(), m.logger, m.tracer), m
}

func gate(lib, typeName string, kv ...string) *domain.Component {
	c := &domain.Component{Library: lib, Type: domain.NewInternedString(typeName)}
	for i := 0; i+1 < len(kv); i += 2 {
		c.Attributes = append(c.Attributes, domain.Attribute{Name: domain.NewInternedString(kv[i]), Value: kv[i+1]})
	}
	return c
}

func ref(typeName string) *domain.Component {
	return &domain.Component{Type: domain.NewInternedString(typeName)}
}

func circuit(name string, els ...domain.Element) domain.CircuitDefinition {
	return domain.CircuitDefinition{Name: name, Elements: els}
}

func docs(circuits ...domain.CircuitDefinition) *domain.DocumentSet {
	set := domain.NewDocumentSet()
	set.Add(&domain.Document{Path: "/design/main.circ", Circuits: circuits})
	return set
}

func price(t *testing.T, bill *domain.Bill, name string) string {
	t.Helper()
	entry, ok := bill.Entry(name)
	require.True(t, ok, "missing bill entry for %s", name)
	return entry.Price.String()
}

func TestAggregator_EmptyCircuit(t *testing.T) {
	agg, _ := setupAggregatorTest(t)

	bill, err := agg.Compute(context.Background(), docs(circuit("Empty")), "Empty", aggregator.Options{})
	require.NoError(t, err)

	entry, ok := bill.Entry("Empty")
	require.True(t, ok)
	assert.True(t, entry.Price.IsZero())
	assert.Equal(t, 1, entry.UsageCount)
	assert.Empty(t, entry.Parts)
}

func TestAggregator_WiresOnly(t *testing.T) {
	agg, _ := setupAggregatorTest(t)
	set := docs(circuit("W",
		&domain.Wire{From: "(0,0)", To: "(10,0)"},
		&domain.Wire{From: "(10,0)", To: "(10,10)"},
	))

	bill, err := agg.Compute(context.Background(), set, "W", aggregator.Options{})
	require.NoError(t, err)

	assert.Equal(t, "0", price(t, bill, "W"))
	entry, _ := bill.Entry("W")
	part := entry.Parts[domain.NewComponentKey("wire", "Wire")]
	require.NotNil(t, part)
	assert.Equal(t, 2, part.Amount)
}

func TestAggregator_SharedSubCircuit(t *testing.T) {
	agg, _ := setupAggregatorTest(t)
	set := docs(
		circuit("C", ref("D"), ref("D")),
		circuit("D", gate("0", "Transistor")),
	)

	bill, err := agg.Compute(context.Background(), set, "C", aggregator.Options{})
	require.NoError(t, err)

	d, _ := bill.Entry("D")
	assert.Equal(t, "2", d.Price.String())
	assert.Equal(t, 2, d.UsageCount)

	c, _ := bill.Entry("C")
	assert.Equal(t, "4", c.Price.String())
	part := c.Parts[domain.NewComponentKey("custom", "D")]
	require.NotNil(t, part)
	assert.Equal(t, 2, part.Amount)
	assert.Equal(t, "4", part.TotalCost.String())
}

func TestAggregator_TopAndSub(t *testing.T) {
	agg, _ := setupAggregatorTest(t)
	set := docs(
		circuit("Top",
			gate("1", "NOT Gate", "width", "2"),
			gate("0", "Pin", "pull", "down"),
			ref("Sub"),
			ref("Sub"),
		),
		circuit("Sub", gate("0", "Transistor")),
	)

	bill, err := agg.Compute(context.Background(), set, "Top", aggregator.Options{})
	require.NoError(t, err)

	top, _ := bill.Entry("Top")
	sub, _ := bill.Entry("Sub")
	assert.Equal(t, "9", top.Price.String())
	assert.Equal(t, 1, top.UsageCount)
	assert.Equal(t, "2", sub.Price.String())
	assert.Equal(t, 2, sub.UsageCount)
	assert.Equal(t, "9", bill.Total().String())
	assert.Equal(t, []string{"Top", "Sub"}, bill.Names())
}

func TestAggregator_SelfReference(t *testing.T) {
	agg, _ := setupAggregatorTest(t)
	set := docs(circuit("Loop", gate("0", "Transistor"), ref("Loop")))

	bill, err := agg.Compute(context.Background(), set, "Loop", aggregator.Options{})
	require.NoError(t, err)

	entry, _ := bill.Entry("Loop")
	// The cyclic instance contributes the price observed at re-entry, which is 0.
	assert.Equal(t, "2", entry.Price.String())
	assert.Equal(t, 2, entry.UsageCount)
	part := entry.Parts[domain.NewComponentKey("custom", "Loop")]
	require.NotNil(t, part)
	assert.True(t, part.TotalCost.IsZero())
}

func TestAggregator_MutualReference(t *testing.T) {
	agg, _ := setupAggregatorTest(t)
	set := docs(
		circuit("A", gate("0", "Transistor"), ref("B")),
		circuit("B", gate("0", "Clock"), ref("A")),
	)

	bill, err := agg.Compute(context.Background(), set, "A", aggregator.Options{})
	require.NoError(t, err)

	assert.Equal(t, "1", price(t, bill, "B"))
	assert.Equal(t, "3", price(t, bill, "A"))
	a, _ := bill.Entry("A")
	assert.Equal(t, 2, a.UsageCount)
}

func TestAggregator_CustomBucketMergesLibraries(t *testing.T) {
	agg, _ := setupAggregatorTest(t)
	top := &domain.Document{
		Path: "/design/top.circ",
		Circuits: []domain.CircuitDefinition{
			circuit("Top",
				&domain.Component{Library: "7", Type: domain.NewInternedString("Alu")},
				&domain.Component{Library: "8", Type: domain.NewInternedString("Alu")},
			),
		},
	}
	libA := &domain.Document{
		Path:     "/design/a.circ",
		Circuits: []domain.CircuitDefinition{circuit("Alu", gate("3", "Adder"))},
	}
	libB := &domain.Document{
		Path:     "/design/b.circ",
		Circuits: []domain.CircuitDefinition{circuit("Alu", gate("0", "Transistor"))},
	}
	set := domain.NewDocumentSet()
	set.Add(top)
	set.Add(libA)
	set.Add(libB)

	bill, err := agg.Compute(context.Background(), set, "Top", aggregator.Options{})
	require.NoError(t, err)

	// Both instances resolve to the first definition and share one bucket.
	entry, _ := bill.Entry("Top")
	require.Len(t, entry.Parts, 1)
	part := entry.Parts[domain.NewComponentKey("custom", "Alu")]
	require.NotNil(t, part)
	assert.Equal(t, 2, part.Amount)
	assert.Equal(t, "64", entry.Price.String())

	alu, _ := bill.Entry("Alu")
	assert.Equal(t, 2, alu.UsageCount)
}

func TestAggregator_MissingCircuit(t *testing.T) {
	agg, m := setupAggregatorTest(t)
	m.logger.EXPECT().Warn("circuit not found: Ghost, priced at 0").Times(1)

	set := docs(circuit("Top", ref("Ghost"), ref("Ghost"), gate("0", "Clock")))

	bill, err := agg.Compute(context.Background(), set, "Top", aggregator.Options{})
	require.NoError(t, err)

	assert.Equal(t, "1", price(t, bill, "Top"))
	ghost, ok := bill.Entry("Ghost")
	require.True(t, ok)
	assert.True(t, ghost.Price.IsZero())
	assert.Equal(t, 2, ghost.UsageCount)
	assert.Empty(t, ghost.Parts)
}

func TestAggregator_UnknownComponent(t *testing.T) {
	agg, m := setupAggregatorTest(t)
	m.logger.EXPECT().Warn(gomock.Any()).Do(func(msg string) {
		assert.Contains(t, msg, "3:Flux Capacitor")
	}).Times(1)

	set := docs(circuit("Top", gate("3", "Flux Capacitor"), gate("0", "Transistor")))

	bill, err := agg.Compute(context.Background(), set, "Top", aggregator.Options{})
	require.NoError(t, err)
	assert.Equal(t, "2", price(t, bill, "Top"))
}

func TestAggregator_InvalidAttribute(t *testing.T) {
	agg, m := setupAggregatorTest(t)
	m.logger.EXPECT().Warn(gomock.Any()).Times(1)

	set := docs(circuit("Top", gate("1", "NOT Gate", "width", "two"), gate("1", "NOT Gate")))

	bill, err := agg.Compute(context.Background(), set, "Top", aggregator.Options{})
	require.NoError(t, err)

	entry, _ := bill.Entry("Top")
	part := entry.Parts[domain.NewComponentKey("1", "NOT Gate")]
	require.NotNil(t, part)
	assert.Equal(t, 2, part.Amount)
	assert.Equal(t, "2", entry.Price.String())
}

// chain builds circuits L0 -> L1 -> ... -> Ln, where Ln holds one transistor.
func chain(n int) *domain.DocumentSet {
	circuits := make([]domain.CircuitDefinition, 0, n+1)
	for i := range n {
		circuits = append(circuits, circuit(fmt.Sprintf("L%d", i), ref(fmt.Sprintf("L%d", i+1))))
	}
	circuits = append(circuits, circuit(fmt.Sprintf("L%d", n), gate("0", "Transistor")))
	return docs(circuits...)
}

func TestAggregator_DepthCeiling(t *testing.T) {
	t.Run("deepest allowed level", func(t *testing.T) {
		agg, _ := setupAggregatorTest(t)

		bill, err := agg.Compute(context.Background(), chain(domain.MaxDepth), "L0", aggregator.Options{})
		require.NoError(t, err)
		assert.Equal(t, "2", bill.Total().String())
		assert.Equal(t, domain.MaxDepth+1, bill.Len())
	})

	t.Run("one level too deep", func(t *testing.T) {
		agg, _ := setupAggregatorTest(t)

		bill, err := agg.Compute(context.Background(), chain(domain.MaxDepth+1), "L0", aggregator.Options{})
		require.ErrorIs(t, err, domain.ErrRecursionDepthExceeded)
		assert.Nil(t, bill)
	})
}

func TestAggregator_DetailedUnits(t *testing.T) {
	agg, _ := setupAggregatorTest(t)
	set := docs(
		circuit("Top",
			gate("1", "NOT Gate", "width", "2", "facing", "east"),
			&domain.Wire{From: "(0,0)", To: "(0,10)"},
			ref("Sub"),
			gate("1", "NOT Gate"),
		),
		circuit("Sub", gate("0", "Transistor")),
	)

	plain, err := agg.Compute(context.Background(), set, "Top", aggregator.Options{})
	require.NoError(t, err)
	entry, _ := plain.Entry("Top")
	for _, part := range entry.Parts {
		assert.Nil(t, part.Units)
	}

	detailed, err := agg.Compute(context.Background(), set, "Top", aggregator.Options{Detailed: true})
	require.NoError(t, err)
	entry, _ = detailed.Entry("Top")

	nots := entry.Parts[domain.NewComponentKey("1", "NOT Gate")].Units
	require.Len(t, nots, 2)
	assert.Equal(t, "4", nots[0].Price.String())
	width, _ := nots[0].Fields.Lookup("width")
	assert.Equal(t, "2", width)
	assert.True(t, nots[0].Fields.Has("facing"))
	assert.Equal(t, "2", nots[1].Price.String(), "units keep file order")

	wires := entry.Parts[domain.NewComponentKey("wire", "Wire")].Units
	require.Len(t, wires, 1)
	from, _ := wires[0].Fields.Lookup("from")
	to, _ := wires[0].Fields.Lookup("to")
	assert.Equal(t, "(0,0)", from)
	assert.Equal(t, "(0,10)", to)

	subs := entry.Parts[domain.NewComponentKey("custom", "Sub")].Units
	require.Len(t, subs, 1)
	assert.Empty(t, subs[0].Fields)
	assert.Equal(t, "2", subs[0].Price.String())
}

func TestAggregator_Deterministic(t *testing.T) {
	agg, _ := setupAggregatorTest(t)
	set := docs(
		circuit("Top", gate("4", "Random", "width", "4"), ref("Mem"), ref("Mem")),
		circuit("Mem", gate("4", "ROM", "addrWidth", "3"), gate("5", "DotMatrix")),
	)

	first, err := agg.Compute(context.Background(), set, "Top", aggregator.Options{Detailed: true})
	require.NoError(t, err)
	second, err := agg.Compute(context.Background(), set, "Top", aggregator.Options{Detailed: true})
	require.NoError(t, err)

	assert.Equal(t, first, second)
	assert.Equal(t, "84.7", first.Total().String())
}

func TestAggregator_PriceTableFailure(t *testing.T) {
	ctrl := gomock.NewController(t)
	table := mocks.NewMockPriceTable(ctrl)
	logger := mocks.NewMockLogger(ctrl)
	tracer := mocks.NewMockTracer(ctrl)
	span := mocks.NewMockSpan(ctrl)

	boom := errors.New("boom")
	table.EXPECT().Price(gomock.Any(), gomock.Any()).Return(decimal.Zero, boom)
	tracer.EXPECT().Start(gomock.Any(), "Top", gomock.Any()).DoAndReturn(
		func(ctx context.Context, _ string, _ ...ports.SpanOption) (context.Context, ports.Span) {
			return ctx, span
		},
	)
	span.EXPECT().RecordError(boom)
	span.EXPECT().End()

	agg := aggregator.New(table, logger, tracer)
	_, err := agg.Compute(context.Background(), docs(circuit("Top", gate("0", "Clock"))), "Top", aggregator.Options{})
	require.ErrorIs(t, err, boom)
}

func TestAggregator_SpanAttributes(t *testing.T) {
	ctrl := gomock.NewController(t)
	logger := mocks.NewMockLogger(ctrl)
	tracer := mocks.NewMockTracer(ctrl)
	span := mocks.NewMockSpan(ctrl)

	var cfg ports.SpanConfig
	tracer.EXPECT().Start(gomock.Any(), "Top", gomock.Any()).DoAndReturn(
		func(ctx context.Context, _ string, opts ...ports.SpanOption) (context.Context, ports.Span) {
			for _, opt := range opts {
				opt(&cfg)
			}
			return ctx, span
		},
	)
	span.EXPECT().SetAttribute(ports.AttrElements, 2)
	span.EXPECT().SetAttribute(ports.AttrPrice, "3")
	span.EXPECT().End()

	agg := aggregator.New(oracle.New(), logger, tracer)
	_, err := agg.Compute(context.Background(),
		docs(circuit("Top", gate("0", "Clock"), gate("0", "Transistor"))), "Top", aggregator.Options{})
	require.NoError(t, err)

	assert.Equal(t, "Top", cfg.Attributes[ports.AttrCircuit])
	assert.Equal(t, 0, cfg.Attributes[ports.AttrDepth])
}

func TestAggregator_Cancelled(t *testing.T) {
	agg, _ := setupAggregatorTest(t)
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := agg.Compute(ctx, docs(circuit("Top")), "Top", aggregator.Options{})
	require.ErrorIs(t, err, context.Canceled)
}

func TestContext_PriceElement(t *testing.T) {
	agg, _ := setupAggregatorTest(t)
	c := agg.NewContext(docs(circuit("Sub", gate("0", "Transistor"))), "Sub", aggregator.Options{})

	unit, err := c.PriceElement(context.Background(), gate("4", "RAM", "addrWidth", "2", "dataWidth", "8"), 0)
	require.NoError(t, err)
	assert.Equal(t, "256", unit.Price.String())

	unit, err = c.PriceElement(context.Background(), ref("Sub"), 0)
	require.NoError(t, err)
	assert.Equal(t, "2", unit.Price.String())

	entry, ok := c.Bill().Entry("Sub")
	require.True(t, ok)
	assert.Equal(t, 1, entry.UsageCount)
}
