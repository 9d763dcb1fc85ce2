package signing

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"signet/internal/access"
	"signet/internal/domain"
	"signet/internal/domain/models"
	"signet/internal/domain/models/signing"
	signingRepo "signet/internal/domain/repositories/signing"
	signingSvc "signet/internal/domain/services/signing"
)

var errDirectLinkNotFound = fmt.Errorf("direct link: %w", domain.ErrNotFound)

// directLinkService implements the DirectLinkService interface
type directLinkService struct {
	templateRepo   signingRepo.TemplateRepository
	recipientRepo  signingRepo.RecipientRepository
	fieldRepo      signingRepo.FieldRepository
	teamRepo       signingRepo.TeamRepository
	resolver       *access.Resolver
	billingEnabled bool
	logger         *slog.Logger
}

// NewDirectLinkService creates a new direct link service. With billing
// enabled, only team-owned templates may be embedded.
func NewDirectLinkService(
	templateRepo signingRepo.TemplateRepository,
	recipientRepo signingRepo.RecipientRepository,
	fieldRepo signingRepo.FieldRepository,
	teamRepo signingRepo.TeamRepository,
	resolver *access.Resolver,
	billingEnabled bool,
	logger *slog.Logger,
) signingSvc.DirectLinkService {
	return &directLinkService{
		templateRepo:   templateRepo,
		recipientRepo:  recipientRepo,
		fieldRepo:      fieldRepo,
		teamRepo:       teamRepo,
		resolver:       resolver,
		billingEnabled: billingEnabled,
		logger:         logger,
	}
}

// GetDirectTemplate resolves a direct link token into the signer's view.
func (s *directLinkService) GetDirectTemplate(ctx context.Context, session *models.Session, token string) (*signingSvc.DirectTemplatePage, error) {
	if err := validateDirectLinkToken(token); err != nil {
		return nil, errDirectLinkNotFound
	}

	tmpl, err := s.templateRepo.GetByDirectLinkToken(ctx, token)
	if err != nil && !errors.Is(err, domain.ErrNotFound) {
		return nil, err
	}

	var (
		recipients []signing.Recipient
		fields     []signing.Field
	)
	if tmpl != nil && tmpl.DirectLink != nil && tmpl.DirectLink.Enabled {
		if s.billingEnabled && tmpl.TeamID == nil {
			s.logger.Info("direct link blocked by paywall",
				"template_id", tmpl.ID,
				"owner_id", tmpl.UserID,
			)
			return nil, &domain.PaywallError{}
		}

		recipients, fields, err = loadParticipants(ctx, tmpl.ID, s.recipientRepo.ListByTemplate, s.fieldRepo.ListByTemplate)
		if err != nil {
			return nil, err
		}
	}

	decision, err := s.resolver.ResolveDirectLinkAccess(
		access.TemplateResource(tmpl, recipients, fields),
		token,
		requesterFrom(session),
	)
	if err != nil {
		return nil, err
	}
	logDecision(s.logger, access.KindTemplate, templateIDOf(tmpl), "", session, decision)

	switch decision.Outcome {
	case access.GrantedRestricted:
	case access.AuthenticationRequired:
		authErr := &domain.AuthenticationRequiredError{ReturnTo: decision.RedirectTarget}
		if session != nil {
			authErr.Email = session.Email
		}
		return nil, authErr
	default:
		return nil, errDirectLinkNotFound
	}

	out := *tmpl
	out.Meta = withPlainPassword(out.Meta, decision.Password)

	return &signingSvc.DirectTemplatePage{
		Token:         token,
		Template:      &out,
		Recipient:     decision.Recipient,
		Fields:        decision.Fields,
		HidePoweredBy: s.hidePoweredBy(ctx, out.TeamID),
	}, nil
}

// hidePoweredBy reads the owning team's branding flag. Lookup failures only
// cost the branding and are logged.
func (s *directLinkService) hidePoweredBy(ctx context.Context, teamID *int64) bool {
	if teamID == nil {
		return false
	}
	team, err := s.teamRepo.GetByID(ctx, *teamID)
	if err != nil {
		s.logger.Warn("load team branding", "team_id", *teamID, "error", err)
		return false
	}
	return team.HidePoweredBy
}

func templateIDOf(tmpl *signing.Template) string {
	if tmpl == nil {
		return ""
	}
	return fmt.Sprint(tmpl.ID)
}
