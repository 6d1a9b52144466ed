package ports

import "time"

// Renderer is the abstraction for trace output.
// It decouples span collection from presentation.
//
//go:generate mockgen -source=renderer.go -destination=mocks/mock_renderer.go -package=mocks
type Renderer interface {
	// OnCircuitStart is called when the pricing of a circuit begins.
	// spanID: unique identifier for this resolution
	// parentID: spanID of the enclosing resolution (empty if root)
	// name: circuit name
	// depth: nesting depth, 0 for the requested circuit
	OnCircuitStart(spanID, parentID, name string, depth int, startTime time.Time)

	// OnCircuitComplete is called when a circuit has been priced.
	// price is the decimal string of the resolved price, empty when it is unknown.
	OnCircuitComplete(spanID, price string, endTime time.Time, err error)

	// Stop flushes any buffered output.
	Stop() error
}
