package ports

import (
	"io"

	"go.trai.ch/bom/internal/core/domain"
)

// BillEncoder defines the interface for serializing a bill.
//
//go:generate mockgen -source=bill_encoder.go -destination=mocks/mock_bill_encoder.go -package=mocks
type BillEncoder interface {
	// Encode writes bill to w in the given format (domain.FormatJSON or domain.FormatYAML).
	Encode(w io.Writer, bill *domain.Bill, format string) error
}
