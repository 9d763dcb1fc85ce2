package signing

import (
	"context"

	"signet/internal/domain/models"
)

// DocumentService resolves document access for page loads. A nil session is
// anonymous.
type DocumentService interface {
	// GetDocumentPage returns the document with its recipients and fields.
	// Any denial, missing document or malformed id yields a
	// *domain.RedirectError pointing at the documents listing.
	GetDocumentPage(ctx context.Context, session *models.Session, req *ResourceRequest) (*DocumentPage, error)

	// ExplainDocumentAccess runs the same pipeline but returns the raw
	// decision instead of converting denials to errors.
	ExplainDocumentAccess(ctx context.Context, session *models.Session, req *ResourceRequest) (*AccessExplanation, error)
}

// TemplateService resolves template access for page loads.
type TemplateService interface {
	// GetTemplatePage returns the template with its recipients and fields.
	// Denials yield a *domain.RedirectError pointing at the templates listing.
	GetTemplatePage(ctx context.Context, session *models.Session, req *ResourceRequest) (*TemplatePage, error)
}

// DirectLinkService serves templates through their direct-link token.
type DirectLinkService interface {
	// GetDirectTemplate returns the restricted view for token. Unknown or
	// disabled links are not found; templates requiring an account yield a
	// *domain.AuthenticationRequiredError for anonymous sessions.
	GetDirectTemplate(ctx context.Context, session *models.Session, token string) (*DirectTemplatePage, error)
}

// TeamService answers team permission questions for the current member.
type TeamService interface {
	GetPermissions(ctx context.Context, session *models.Session, teamURL string) (*TeamPermissions, error)
}
