package signing

import (
	"context"

	"signet/internal/domain/models/signing"
)

// DocumentRepository defines data access for documents.
type DocumentRepository interface {
	// GetByID returns a document that is not soft-deleted. Missing documents
	// wrap domain.ErrNotFound.
	GetByID(ctx context.Context, id int64) (*signing.Document, error)

	// Create inserts a document and fills in its generated id and timestamps.
	Create(ctx context.Context, doc *signing.Document) error
}
