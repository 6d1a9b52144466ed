package domain

import (
	"strconv"
	"strings"
)

const (
	// CategoryWire is the category of every wire element.
	CategoryWire = "wire"

	// CategoryCustom is the category shared by every user-defined circuit reference,
	// whatever library declares it.
	CategoryCustom = "custom"

	// WireType is the type name used for wires.
	WireType = "Wire"

	// MaxBuiltinLibrary is the highest library id that denotes a built-in primitive library.
	MaxBuiltinLibrary = 6

	keySeparator = ":"
)

// Kind is the classification of an element.
type Kind int

const (
	// KindWire is a wire connecting two points.
	KindWire Kind = iota
	// KindBuiltin is a primitive priced directly by the price table.
	KindBuiltin
	// KindCustom is an instantiation of a user-defined circuit, priced by recursion.
	KindCustom
)

// String returns the name of the kind.
func (k Kind) String() string {
	switch k {
	case KindWire:
		return "wire"
	case KindBuiltin:
		return "builtin"
	case KindCustom:
		return "custom"
	default:
		return "unknown"
	}
}

// ComponentKey identifies a component type for pricing and grouping in the bill.
type ComponentKey struct {
	Category InternedString
	Type     InternedString
}

// NewComponentKey creates a ComponentKey from its parts.
func NewComponentKey(category, typeName string) ComponentKey {
	return ComponentKey{
		Category: NewInternedString(category),
		Type:     NewInternedString(typeName),
	}
}

// ParseComponentKey parses the "<category>:<type>" encoding produced by String.
// The category never contains a colon, so the first colon splits the key.
func ParseComponentKey(s string) (ComponentKey, bool) {
	category, typeName, ok := strings.Cut(s, keySeparator)
	if !ok || category == "" {
		return ComponentKey{}, false
	}
	return NewComponentKey(category, typeName), true
}

// String returns the stable "<category>:<type>" encoding of the key.
func (k ComponentKey) String() string {
	return k.Category.String() + keySeparator + k.Type.String()
}

// MarshalText implements encoding.TextMarshaler so keys can be used as map keys in encoded bills.
func (k ComponentKey) MarshalText() ([]byte, error) {
	return []byte(k.String()), nil
}

// Compare orders keys by their string encoding.
func (k ComponentKey) Compare(other ComponentKey) int {
	return strings.Compare(k.String(), other.String())
}

// Classify decides how an element is priced.
// A component is built-in when its library id parses as an integer no greater than MaxBuiltinLibrary.
// Components without a library, with a non-numeric library or with a higher id are custom circuit references.
func Classify(el Element) Kind {
	switch e := el.(type) {
	case *Wire:
		return KindWire
	case *Component:
		if e.Library == "" {
			return KindCustom
		}
		id, err := strconv.Atoi(e.Library)
		if err != nil || id > MaxBuiltinLibrary {
			return KindCustom
		}
		return KindBuiltin
	default:
		return KindCustom
	}
}

// KeyOf derives the grouping key of an element.
func KeyOf(el Element) ComponentKey {
	switch Classify(el) {
	case KindWire:
		return NewComponentKey(CategoryWire, WireType)
	case KindBuiltin:
		c := el.(*Component)
		return ComponentKey{Category: NewInternedString(c.Library), Type: c.Type}
	default:
		if c, ok := el.(*Component); ok {
			return ComponentKey{Category: NewInternedString(CategoryCustom), Type: c.Type}
		}
		return NewComponentKey(CategoryCustom, "")
	}
}
