package ports

import (
	"context"

	"go.trai.ch/bom/internal/core/domain"
)

// DocumentLoader defines the interface for reading a design file and its linked libraries.
//
//go:generate mockgen -source=document_loader.go -destination=mocks/mock_document_loader.go -package=mocks
type DocumentLoader interface {
	// Load parses the design file at path and every library it links, transitively.
	// Only a failure on the top-level file is returned as an error.
	Load(ctx context.Context, path string) (*domain.DocumentSet, error)
}
