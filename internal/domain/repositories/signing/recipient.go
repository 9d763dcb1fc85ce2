package signing

import (
	"context"

	"signet/internal/domain/models/signing"
)

// RecipientRepository defines data access for recipients. Lists are ordered
// by id.
type RecipientRepository interface {
	ListByDocument(ctx context.Context, documentID int64) ([]signing.Recipient, error)
	ListByTemplate(ctx context.Context, templateID int64) ([]signing.Recipient, error)
	Create(ctx context.Context, recipient *signing.Recipient) error
}

// FieldRepository defines data access for fields. Lists are ordered by id.
type FieldRepository interface {
	ListByDocument(ctx context.Context, documentID int64) ([]signing.Field, error)
	ListByTemplate(ctx context.Context, templateID int64) ([]signing.Field, error)
	Create(ctx context.Context, field *signing.Field) error
}
