package oracle

import (
	"github.com/shopspring/decimal"
	"go.trai.ch/bom/internal/core/domain"
)

var (
	half      = decimal.New(5, -1)
	hundredth = decimal.New(1, -2)
	twentieth = decimal.New(5, -2)
)

func n(v int64) decimal.Decimal {
	return decimal.NewFromInt(v)
}

func fixed(v int64) formula {
	price := n(v)
	return func(*attrReader) decimal.Decimal { return price }
}

// perWidth prices factor per bit of width.
func perWidth(factor, defWidth int64) formula {
	return func(r *attrReader) decimal.Decimal {
		return n(factor).Mul(r.dec("width", defWidth))
	}
}

// gate prices a multi-input gate, with an output inverter for negated gates.
func gate(extra int64, inverted bool) formula {
	return func(r *attrReader) decimal.Decimal {
		w := r.dec("width", 1)
		price := r.dec("inputs", 5).Add(n(extra)).Mul(w)
		if inverted {
			price = price.Add(n(2).Mul(w))
		}
		return price
	}
}

func selector(factor int64) formula {
	return func(r *attrReader) decimal.Decimal {
		w := r.dec("width", 1)
		lines := r.pow2("select", 1).Sub(n(1))
		return lines.Mul(w).Mul(n(factor))
	}
}

func squaredWidth(factor int64) formula {
	return func(r *attrReader) decimal.Decimal {
		w := r.dec("width", 8)
		return n(factor).Mul(w).Mul(w)
	}
}

func memory(factor decimal.Decimal) formula {
	return func(r *attrReader) decimal.Decimal {
		return r.pow2("addrWidth", 8).Mul(r.dec("dataWidth", 8)).Mul(factor)
	}
}

func key(category, typeName string) domain.ComponentKey {
	return domain.NewComponentKey(category, typeName)
}

func builtinFormulas() map[domain.ComponentKey]formula {
	free := fixed(0)

	return map[domain.ComponentKey]formula{
		key(domain.CategoryWire, domain.WireType): free,
		key("6", "Text"):                          free,

		// Wiring
		key("0", "Splitter"):      free,
		key("0", "Tunnel"):        free,
		key("0", "Probe"):         free,
		key("0", "Pull Resistor"): free,
		key("0", "Constant"):      free,
		key("0", "Power"):         free,
		key("0", "Ground"):        free,
		key("0", "Pin"): func(r *attrReader) decimal.Decimal {
			if r.has("pull") {
				return n(1)
			}
			return decimal.Zero
		},
		key("0", "Clock"):             fixed(1),
		key("0", "Transistor"):        fixed(2),
		key("0", "Transmission Gate"): fixed(4),
		key("0", "Bit Extender"): func(r *attrReader) decimal.Decimal {
			return r.dec("in_width", 8).Add(r.dec("out_width", 16))
		},

		// Gates
		key("1", "NOT Gate"):            perWidth(2, 1),
		key("1", "Buffer"):              perWidth(2, 1),
		key("1", "AND Gate"):            gate(1, false),
		key("1", "OR Gate"):             gate(1, false),
		key("1", "XOR Gate"):            gate(1, false),
		key("1", "NAND Gate"):           gate(1, true),
		key("1", "NOR Gate"):            gate(1, true),
		key("1", "XNOR Gate"):           gate(1, true),
		key("1", "Odd Parity"):          gate(4, false),
		key("1", "Even Parity"):         gate(4, false),
		key("1", "Controlled Buffer"):   perWidth(3, 1),
		key("1", "Controlled Inverter"): perWidth(3, 1),

		// Plexers
		key("2", "Multiplexer"):   selector(10),
		key("2", "Demultiplexer"): selector(7),
		key("2", "Decoder"): func(r *attrReader) decimal.Decimal {
			s := r.dec("select", 1)
			return n(3).Mul(s).Mul(s).Sub(s)
		},
		key("2", "Priority Encoder"): func(r *attrReader) decimal.Decimal {
			s := r.dec("select", 3)
			lines := r.pow2("select", 3)
			// s*n/2 is an integer division.
			tail := s.Mul(lines).Div(n(2)).Floor()
			return lines.Mul(lines).Add(n(3).Mul(lines)).Add(tail)
		},
		key("2", "BitSelector"): func(r *attrReader) decimal.Decimal {
			return r.dec("width", 8).Add(r.dec("group", 1))
		},

		// Arithmetic
		key("3", "Adder"):      perWidth(4, 8),
		key("3", "Subtractor"): perWidth(4, 8),
		key("3", "BitAdder"):   perWidth(4, 8),
		key("3", "BitFinder"):  perWidth(4, 8),
		key("3", "Multiplier"): squaredWidth(4),
		key("3", "Divider"):    squaredWidth(4),
		key("3", "Negator"):    perWidth(2, 8),
		key("3", "Comparator"): func(r *attrReader) decimal.Decimal {
			return n(16).Add(n(4).Mul(r.dec("width", 8)))
		},
		key("3", "Shifter"): squaredWidth(1),

		// Memory
		key("4", "D Flip-Flop"):    fixed(24),
		key("4", "T Flip-Flop"):    fixed(12),
		key("4", "J-K Flip-Flop"):  fixed(12),
		key("4", "S-R Flip-Flop"):  fixed(6),
		key("4", "Register"):       perWidth(24, 8),
		key("4", "Counter"):        perWidth(28, 8),
		key("4", "Shift Register"): perWidth(40, 1),
		key("4", "Random"):         perWidth(5, 8),
		key("4", "RAM"):            memory(n(8)),
		key("4", "ROM"):            memory(half),

		// Input/Output
		key("5", "Button"):            fixed(2),
		key("5", "Joystick"):          fixed(3000),
		key("5", "Keyboard"):          fixed(3000),
		key("5", "LED"):               fixed(10),
		key("5", "7-Segment Display"): fixed(100),
		key("5", "Hex Digit Display"): fixed(100),
		key("5", "DotMatrix"): func(r *attrReader) decimal.Decimal {
			return r.dec("matrixcols", 5).Mul(r.dec("matrixrows", 7)).Mul(hundredth)
		},
		key("5", "TTY"): func(r *attrReader) decimal.Decimal {
			return r.dec("cols", 32).Mul(r.dec("rows", 8)).Mul(twentieth)
		},
	}
}
