package seed

import (
	"context"
	"fmt"
	"log/slog"
	"regexp"
	"strings"

	validation "github.com/go-ozzo/ozzo-validation/v4"
	"github.com/google/uuid"

	"signet/internal/config"
	"signet/internal/domain/models/signing"
	"signet/internal/domain/repositories"
	signingRepo "signet/internal/domain/repositories/signing"
)

var teamURLPattern = regexp.MustCompile(`^[a-z0-9][a-z0-9_-]*$`)

// Sealer encrypts a document password for storage.
type Sealer interface {
	Seal(plaintext string) (string, error)
}

// Options selects the team and users the sample data is created for.
// User ids refer to accounts in the external auth provider.
type Options struct {
	TeamURL        string
	TeamName       string
	AdminUserID    int64
	ManagerUserID  int64
	MemberUserID   int64
	RecipientEmail string
	Password       string // Empty skips the password-protected document
	HidePoweredBy  bool
}

// Validate checks the options before anything is written.
func (o Options) Validate() error {
	return validation.ValidateStruct(&o,
		validation.Field(&o.TeamURL,
			validation.Required,
			validation.Length(1, config.MaxTeamURLLength),
			validation.Match(teamURLPattern),
		),
		validation.Field(&o.TeamName, validation.Required, validation.Length(1, config.MaxTitleLength)),
		validation.Field(&o.AdminUserID, validation.Required, validation.Min(int64(1))),
		validation.Field(&o.ManagerUserID, validation.Required, validation.Min(int64(1))),
		validation.Field(&o.MemberUserID, validation.Required, validation.Min(int64(1))),
		validation.Field(&o.RecipientEmail, validation.Required, validation.Length(3, config.MaxEmailLength)),
	)
}

// Summary lists what a seed run created.
type Summary struct {
	TeamID      int64
	DocumentIDs []int64
	TemplateIDs []int64
	Tokens      []string
}

// Seeder creates sample teams, documents and templates covering every
// visibility level, a direct link and an optional password.
type Seeder struct {
	tx         repositories.TransactionManager
	teams      signingRepo.TeamRepository
	documents  signingRepo.DocumentRepository
	templates  signingRepo.TemplateRepository
	recipients signingRepo.RecipientRepository
	fields     signingRepo.FieldRepository
	sealer     Sealer
	logger     *slog.Logger
}

// NewSeeder creates a seeder. sealer may be nil when no password is seeded.
func NewSeeder(
	tx repositories.TransactionManager,
	teams signingRepo.TeamRepository,
	documents signingRepo.DocumentRepository,
	templates signingRepo.TemplateRepository,
	recipients signingRepo.RecipientRepository,
	fields signingRepo.FieldRepository,
	sealer Sealer,
	logger *slog.Logger,
) *Seeder {
	return &Seeder{
		tx:         tx,
		teams:      teams,
		documents:  documents,
		templates:  templates,
		recipients: recipients,
		fields:     fields,
		sealer:     sealer,
		logger:     logger,
	}
}

// NewDirectLinkToken returns a random URL-safe direct-link token.
func NewDirectLinkToken() string {
	return "tok_" + strings.ReplaceAll(uuid.NewString(), "-", "")
}

// Seed writes all sample data in one transaction.
func (s *Seeder) Seed(ctx context.Context, opts Options) (*Summary, error) {
	if err := opts.Validate(); err != nil {
		return nil, fmt.Errorf("seed options: %w", err)
	}

	var sealedPassword *string
	if opts.Password != "" {
		if s.sealer == nil {
			return nil, fmt.Errorf("seed password: no encryption key configured")
		}
		sealed, err := s.sealer.Seal(opts.Password)
		if err != nil {
			return nil, fmt.Errorf("seal password: %w", err)
		}
		sealedPassword = &sealed
	}

	summary := &Summary{}
	err := s.tx.ExecTx(ctx, func(ctx context.Context) error {
		team, err := s.seedTeam(ctx, opts)
		if err != nil {
			return err
		}
		summary.TeamID = team.ID

		for _, visibility := range signing.Visibilities {
			doc, err := s.seedDocument(ctx, opts, &team.ID, visibility, nil)
			if err != nil {
				return err
			}
			summary.DocumentIDs = append(summary.DocumentIDs, doc.ID)
		}

		// Personal document shared only through its recipient
		personal, err := s.seedDocument(ctx, opts, nil, signing.VisibilityEveryone, nil)
		if err != nil {
			return err
		}
		summary.DocumentIDs = append(summary.DocumentIDs, personal.ID)

		if sealedPassword != nil {
			protected, err := s.seedDocument(ctx, opts, &team.ID, signing.VisibilityAdmin, sealedPassword)
			if err != nil {
				return err
			}
			summary.DocumentIDs = append(summary.DocumentIDs, protected.ID)
		}

		tmpl, token, err := s.seedTemplate(ctx, opts, &team.ID, signing.AccessAuthNone)
		if err != nil {
			return err
		}
		summary.TemplateIDs = append(summary.TemplateIDs, tmpl.ID)
		summary.Tokens = append(summary.Tokens, token)

		gated, gatedToken, err := s.seedTemplate(ctx, opts, &team.ID, signing.AccessAuthAccount)
		if err != nil {
			return err
		}
		summary.TemplateIDs = append(summary.TemplateIDs, gated.ID)
		summary.Tokens = append(summary.Tokens, gatedToken)

		return nil
	})
	if err != nil {
		return nil, err
	}

	s.logger.Info("seed complete",
		"team_id", summary.TeamID,
		"documents", len(summary.DocumentIDs),
		"templates", len(summary.TemplateIDs),
	)
	return summary, nil
}

func (s *Seeder) seedTeam(ctx context.Context, opts Options) (*signing.Team, error) {
	team := &signing.Team{
		Name:          opts.TeamName,
		URL:           opts.TeamURL,
		OwnerUserID:   opts.AdminUserID,
		HidePoweredBy: opts.HidePoweredBy,
	}
	if err := s.teams.Create(ctx, team); err != nil {
		return nil, fmt.Errorf("create team %s: %w", opts.TeamURL, err)
	}

	members := []signing.TeamMember{
		{TeamID: team.ID, UserID: opts.AdminUserID, Role: signing.TeamMemberRoleAdmin},
		{TeamID: team.ID, UserID: opts.ManagerUserID, Role: signing.TeamMemberRoleManager},
		{TeamID: team.ID, UserID: opts.MemberUserID, Role: signing.TeamMemberRoleMember},
	}
	for i := range members {
		if err := s.teams.AddMember(ctx, &members[i]); err != nil {
			return nil, fmt.Errorf("add member %d: %w", members[i].UserID, err)
		}
	}

	s.logger.Debug("team seeded", "team_id", team.ID, "url", team.URL)
	return team, nil
}

func (s *Seeder) seedDocument(ctx context.Context, opts Options, teamID *int64, visibility signing.Visibility, password *string) (*signing.Document, error) {
	title := "Sample agreement (" + string(visibility) + ")"
	if teamID == nil {
		title = "Personal agreement"
	}
	if password != nil {
		title = "Protected agreement"
	}

	dataID := uuid.NewString()
	doc := &signing.Document{
		UserID:         opts.AdminUserID,
		TeamID:         teamID,
		Title:          title,
		Status:         signing.DocumentStatusPending,
		Visibility:     visibility,
		DocumentDataID: &dataID,
		Meta:           &signing.DocumentMeta{Subject: title, Password: password},
	}
	if err := s.documents.Create(ctx, doc); err != nil {
		return nil, fmt.Errorf("create document %q: %w", title, err)
	}

	recipient := &signing.Recipient{
		DocumentID:    &doc.ID,
		Email:         opts.RecipientEmail,
		Name:          "Sample Signer",
		Role:          signing.RecipientRoleSigner,
		SigningStatus: signing.SigningStatusNotSigned,
	}
	if err := s.recipients.Create(ctx, recipient); err != nil {
		return nil, fmt.Errorf("create recipient for document %d: %w", doc.ID, err)
	}

	field := &signing.Field{
		DocumentID:  &doc.ID,
		RecipientID: recipient.ID,
		Type:        signing.FieldTypeSignature,
		Page:        1,
		PositionX:   10,
		PositionY:   80,
		Width:       30,
		Height:      5,
	}
	if err := s.fields.Create(ctx, field); err != nil {
		return nil, fmt.Errorf("create field for document %d: %w", doc.ID, err)
	}

	return doc, nil
}

func (s *Seeder) seedTemplate(ctx context.Context, opts Options, teamID *int64, accessAuth signing.AccessAuth) (*signing.Template, string, error) {
	title := "Direct link template"
	if accessAuth == signing.AccessAuthAccount {
		title = "Direct link template (account required)"
	}

	dataID := uuid.NewString()
	tmpl := &signing.Template{
		UserID:                 opts.AdminUserID,
		TeamID:                 teamID,
		Title:                  title,
		Type:                   signing.TemplateTypePublic,
		Visibility:             signing.VisibilityEveryone,
		TemplateDocumentDataID: &dataID,
		AuthOptions:            signing.AuthOptions{GlobalAccessAuth: accessAuth},
	}
	if err := s.templates.Create(ctx, tmpl); err != nil {
		return nil, "", fmt.Errorf("create template %q: %w", title, err)
	}

	signer := &signing.Recipient{
		TemplateID:    &tmpl.ID,
		Email:         "direct-link@signet.local",
		Name:          "Direct Link Signer",
		Role:          signing.RecipientRoleSigner,
		SigningStatus: signing.SigningStatusNotSigned,
	}
	if err := s.recipients.Create(ctx, signer); err != nil {
		return nil, "", fmt.Errorf("create direct recipient for template %d: %w", tmpl.ID, err)
	}

	viewer := &signing.Recipient{
		TemplateID:    &tmpl.ID,
		Email:         opts.RecipientEmail,
		Name:          "Sample Viewer",
		Role:          signing.RecipientRoleViewer,
		SigningStatus: signing.SigningStatusNotSigned,
	}
	if err := s.recipients.Create(ctx, viewer); err != nil {
		return nil, "", fmt.Errorf("create viewer for template %d: %w", tmpl.ID, err)
	}

	for _, f := range []signing.Field{
		{TemplateID: &tmpl.ID, RecipientID: signer.ID, Type: signing.FieldTypeSignature, Page: 1, PositionX: 10, PositionY: 80, Width: 30, Height: 5},
		{TemplateID: &tmpl.ID, RecipientID: signer.ID, Type: signing.FieldTypeDate, Page: 1, PositionX: 50, PositionY: 80, Width: 20, Height: 5},
		{TemplateID: &tmpl.ID, RecipientID: viewer.ID, Type: signing.FieldTypeName, Page: 1, PositionX: 10, PositionY: 90, Width: 30, Height: 5},
	} {
		if err := s.fields.Create(ctx, &f); err != nil {
			return nil, "", fmt.Errorf("create field for template %d: %w", tmpl.ID, err)
		}
	}

	link := &signing.DirectLink{
		TemplateID:                tmpl.ID,
		Token:                     NewDirectLinkToken(),
		Enabled:                   true,
		DirectTemplateRecipientID: signer.ID,
	}
	if err := s.templates.CreateDirectLink(ctx, link); err != nil {
		return nil, "", fmt.Errorf("create direct link for template %d: %w", tmpl.ID, err)
	}

	return tmpl, link.Token, nil
}
