package signing

import (
	"context"
	"errors"
	"log/slog"
	"strings"

	"signet/internal/access"
	"signet/internal/domain"
	"signet/internal/domain/models"
	"signet/internal/domain/models/signing"
	signingRepo "signet/internal/domain/repositories/signing"
	signingSvc "signet/internal/domain/services/signing"
)

// templateService implements the TemplateService interface
type templateService struct {
	templateRepo  signingRepo.TemplateRepository
	recipientRepo signingRepo.RecipientRepository
	fieldRepo     signingRepo.FieldRepository
	teamRepo      signingRepo.TeamRepository
	resolver      *access.Resolver
	baseURL       string
	logger        *slog.Logger
}

// NewTemplateService creates a new template service. baseURL prefixes
// direct-link share URLs.
func NewTemplateService(
	templateRepo signingRepo.TemplateRepository,
	recipientRepo signingRepo.RecipientRepository,
	fieldRepo signingRepo.FieldRepository,
	teamRepo signingRepo.TeamRepository,
	resolver *access.Resolver,
	baseURL string,
	logger *slog.Logger,
) signingSvc.TemplateService {
	return &templateService{
		templateRepo:  templateRepo,
		recipientRepo: recipientRepo,
		fieldRepo:     fieldRepo,
		teamRepo:      teamRepo,
		resolver:      resolver,
		baseURL:       strings.TrimRight(baseURL, "/"),
		logger:        logger,
	}
}

// GetTemplatePage resolves access and returns the template page.
func (s *templateService) GetTemplatePage(ctx context.Context, session *models.Session, req *signingSvc.ResourceRequest) (*signingSvc.TemplatePage, error) {
	team, err := loadTeam(ctx, s.teamRepo, session, req.TeamURL)
	if err != nil {
		return nil, err
	}

	var tmpl *signing.Template
	if id, ok := parseResourceID(req.ID); ok {
		found, err := s.templateRepo.GetByID(ctx, id)
		switch {
		case err == nil && found.TemplateDocumentDataID != nil:
			tmpl = found
		case err == nil, errors.Is(err, domain.ErrNotFound):
		default:
			return nil, err
		}
	}

	var (
		recipients []signing.Recipient
		fields     []signing.Field
	)
	if tmpl != nil {
		recipients, fields, err = loadParticipants(ctx, tmpl.ID, s.recipientRepo.ListByTemplate, s.fieldRepo.ListByTemplate)
		if err != nil {
			return nil, err
		}
	}

	decision, err := s.resolver.ResolveDocumentAccess(
		access.TemplateResource(tmpl, recipients, fields),
		requesterFrom(session),
		access.TeamContextFor(team),
	)
	if err != nil {
		return nil, err
	}
	logDecision(s.logger, access.KindTemplate, req.ID, req.TeamURL, session, decision)

	teamURL := teamURLOf(team)
	templatesPath := signing.TemplatesPath(teamURL)
	if !decision.Granted() {
		return nil, &domain.RedirectError{Location: templatesPath}
	}

	out := *tmpl
	out.Meta = withPlainPassword(out.Meta, decision.Password)

	page := &signingSvc.TemplatePage{
		Template:      &out,
		Recipients:    recipients,
		Fields:        fields,
		Team:          team,
		TemplatesPath: templatesPath,
		DocumentsPath: signing.DocumentsPath(teamURL),
	}
	if link := out.DirectLink; link != nil && link.Enabled {
		page.DirectLinkURL = s.baseURL + signing.DirectLinkSharePath(link.Token)
	}

	return page, nil
}
