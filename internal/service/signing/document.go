package signing

import (
	"context"
	"errors"
	"log/slog"

	"signet/internal/access"
	"signet/internal/domain"
	"signet/internal/domain/models"
	"signet/internal/domain/models/signing"
	signingRepo "signet/internal/domain/repositories/signing"
	signingSvc "signet/internal/domain/services/signing"
)

// documentService implements the DocumentService interface
type documentService struct {
	documentRepo  signingRepo.DocumentRepository
	recipientRepo signingRepo.RecipientRepository
	fieldRepo     signingRepo.FieldRepository
	teamRepo      signingRepo.TeamRepository
	resolver      *access.Resolver
	logger        *slog.Logger
}

// NewDocumentService creates a new document service
func NewDocumentService(
	documentRepo signingRepo.DocumentRepository,
	recipientRepo signingRepo.RecipientRepository,
	fieldRepo signingRepo.FieldRepository,
	teamRepo signingRepo.TeamRepository,
	resolver *access.Resolver,
	logger *slog.Logger,
) signingSvc.DocumentService {
	return &documentService{
		documentRepo:  documentRepo,
		recipientRepo: recipientRepo,
		fieldRepo:     fieldRepo,
		teamRepo:      teamRepo,
		resolver:      resolver,
		logger:        logger,
	}
}

type documentResolution struct {
	team       *signing.Team
	document   *signing.Document
	recipients []signing.Recipient
	fields     []signing.Field
	decision   access.Decision
}

func (s *documentService) resolve(ctx context.Context, session *models.Session, req *signingSvc.ResourceRequest) (*documentResolution, error) {
	team, err := loadTeam(ctx, s.teamRepo, session, req.TeamURL)
	if err != nil {
		return nil, err
	}
	res := &documentResolution{team: team}

	if id, ok := parseResourceID(req.ID); ok {
		doc, err := s.documentRepo.GetByID(ctx, id)
		switch {
		case err == nil && doc.DocumentDataID != nil:
			res.document = doc
		case err == nil, errors.Is(err, domain.ErrNotFound):
			// Documents without data cannot be displayed and count as missing.
		default:
			return nil, err
		}
	}

	if res.document != nil {
		res.recipients, res.fields, err = loadParticipants(ctx, res.document.ID, s.recipientRepo.ListByDocument, s.fieldRepo.ListByDocument)
		if err != nil {
			return nil, err
		}
	}

	res.decision, err = s.resolver.ResolveDocumentAccess(
		access.DocumentResource(res.document, res.recipients, res.fields),
		requesterFrom(session),
		access.TeamContextFor(team),
	)
	if err != nil {
		return nil, err
	}

	logDecision(s.logger, access.KindDocument, req.ID, req.TeamURL, session, res.decision)
	return res, nil
}

// GetDocumentPage resolves access and returns the document page.
func (s *documentService) GetDocumentPage(ctx context.Context, session *models.Session, req *signingSvc.ResourceRequest) (*signingSvc.DocumentPage, error) {
	res, err := s.resolve(ctx, session, req)
	if err != nil {
		return nil, err
	}

	documentsPath := signing.DocumentsPath(teamURLOf(res.team))
	if !res.decision.Granted() {
		return nil, &domain.RedirectError{Location: documentsPath}
	}

	doc := *res.document
	doc.Meta = withPlainPassword(doc.Meta, res.decision.Password)

	return &signingSvc.DocumentPage{
		Document:      &doc,
		Recipients:    res.recipients,
		Fields:        res.fields,
		Team:          res.team,
		DocumentsPath: documentsPath,
	}, nil
}

// ExplainDocumentAccess returns the raw decision for a document.
func (s *documentService) ExplainDocumentAccess(ctx context.Context, session *models.Session, req *signingSvc.ResourceRequest) (*signingSvc.AccessExplanation, error) {
	res, err := s.resolve(ctx, session, req)
	if err != nil {
		return nil, err
	}

	explanation := &signingSvc.AccessExplanation{
		Kind:       access.KindDocument,
		ResourceID: req.ID,
		TeamURL:    req.TeamURL,
		Found:      res.document != nil,
		Decision:   res.decision,
	}
	if res.document != nil && res.document.TeamID != nil {
		if role, ok := access.MinimumRole(res.document.Visibility); ok {
			explanation.MinimumRole = role
		}
	}
	return explanation, nil
}
