package signing

import (
	"context"

	"signet/internal/domain/models/signing"
)

// TemplateRepository defines data access for templates and their direct
// links. Templates are returned with DirectLink populated when one exists.
type TemplateRepository interface {
	// GetByID returns a template. Missing templates wrap domain.ErrNotFound.
	GetByID(ctx context.Context, id int64) (*signing.Template, error)

	// GetByDirectLinkToken returns the template whose direct link carries
	// token, regardless of whether the link is enabled.
	GetByDirectLinkToken(ctx context.Context, token string) (*signing.Template, error)

	Create(ctx context.Context, tmpl *signing.Template) error

	// CreateDirectLink inserts link. link.ID is generated when empty.
	CreateDirectLink(ctx context.Context, link *signing.DirectLink) error
}
