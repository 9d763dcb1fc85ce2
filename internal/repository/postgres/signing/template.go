package signing

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"

	"signet/internal/domain"
	models "signet/internal/domain/models/signing"
	signingRepo "signet/internal/domain/repositories/signing"
	"signet/internal/repository/postgres"
)

// PostgresTemplateRepository implements signingRepo.TemplateRepository.
type PostgresTemplateRepository struct {
	pool   *pgxpool.Pool
	tables *postgres.TableNames
}

// NewTemplateRepository creates a new template repository.
func NewTemplateRepository(config *postgres.RepositoryConfig) signingRepo.TemplateRepository {
	return &PostgresTemplateRepository{
		pool:   config.Pool,
		tables: config.Tables,
	}
}

func (r *PostgresTemplateRepository) selectTemplate(where string) string {
	return fmt.Sprintf(`
		SELECT t.id, t.user_id, t.team_id, t.title, t.type, t.visibility, t.template_document_data_id,
		       COALESCE(t.auth_options, '{}'::jsonb), t.meta, t.created_at, t.updated_at,
		       l.id::text, l.token, l.enabled, l.direct_template_recipient_id, l.created_at
		FROM %s t
		LEFT JOIN %s l ON l.template_id = t.id
		WHERE %s
	`, r.tables.Templates, r.tables.DirectLinks, where)
}

// GetByID retrieves a template and its direct link.
func (r *PostgresTemplateRepository) GetByID(ctx context.Context, id int64) (*models.Template, error) {
	tmpl, err := r.scanOne(ctx, r.selectTemplate("t.id = $1"), id)
	if err != nil {
		if postgres.IsPgNoRowsError(err) {
			return nil, fmt.Errorf("template %d: %w", id, domain.ErrNotFound)
		}
		return nil, fmt.Errorf("get template: %w", err)
	}
	return tmpl, nil
}

// GetByDirectLinkToken retrieves the template owning a direct link token.
func (r *PostgresTemplateRepository) GetByDirectLinkToken(ctx context.Context, token string) (*models.Template, error) {
	tmpl, err := r.scanOne(ctx, r.selectTemplate("l.token = $1"), token)
	if err != nil {
		if postgres.IsPgNoRowsError(err) {
			return nil, fmt.Errorf("direct link: %w", domain.ErrNotFound)
		}
		return nil, fmt.Errorf("get template by direct link: %w", err)
	}
	return tmpl, nil
}

func (r *PostgresTemplateRepository) scanOne(ctx context.Context, query string, arg any) (*models.Template, error) {
	var (
		tmpl        models.Template
		linkID      *string
		linkToken   *string
		linkEnabled *bool
		linkRecip   *int64
		linkCreated *time.Time
	)

	executor := postgres.GetExecutor(ctx, r.pool)
	err := executor.QueryRow(ctx, query, arg).Scan(
		&tmpl.ID,
		&tmpl.UserID,
		&tmpl.TeamID,
		&tmpl.Title,
		&tmpl.Type,
		&tmpl.Visibility,
		&tmpl.TemplateDocumentDataID,
		&tmpl.AuthOptions,
		&tmpl.Meta,
		&tmpl.CreatedAt,
		&tmpl.UpdatedAt,
		&linkID,
		&linkToken,
		&linkEnabled,
		&linkRecip,
		&linkCreated,
	)
	if err != nil {
		return nil, err
	}

	if linkID != nil {
		tmpl.DirectLink = &models.DirectLink{
			ID:                        *linkID,
			TemplateID:                tmpl.ID,
			Token:                     *linkToken,
			Enabled:                   *linkEnabled,
			DirectTemplateRecipientID: *linkRecip,
			CreatedAt:                 *linkCreated,
		}
	}

	return &tmpl, nil
}

// Create inserts a template. The direct link, if any, is created separately.
func (r *PostgresTemplateRepository) Create(ctx context.Context, tmpl *models.Template) error {
	query := fmt.Sprintf(`
		INSERT INTO %s (user_id, team_id, title, type, visibility, template_document_data_id, auth_options, meta)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
		RETURNING id, created_at, updated_at
	`, r.tables.Templates)

	executor := postgres.GetExecutor(ctx, r.pool)
	err := executor.QueryRow(ctx, query,
		tmpl.UserID,
		tmpl.TeamID,
		tmpl.Title,
		tmpl.Type,
		tmpl.Visibility,
		tmpl.TemplateDocumentDataID,
		tmpl.AuthOptions,
		tmpl.Meta,
	).Scan(&tmpl.ID, &tmpl.CreatedAt, &tmpl.UpdatedAt)
	if err != nil {
		return fmt.Errorf("create template: %w", err)
	}
	return nil
}

// CreateDirectLink inserts a direct link for an existing template.
func (r *PostgresTemplateRepository) CreateDirectLink(ctx context.Context, link *models.DirectLink) error {
	if link.ID == "" {
		link.ID = uuid.NewString()
	}

	query := fmt.Sprintf(`
		INSERT INTO %s (id, template_id, token, enabled, direct_template_recipient_id)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING created_at
	`, r.tables.DirectLinks)

	executor := postgres.GetExecutor(ctx, r.pool)
	err := executor.QueryRow(ctx, query,
		link.ID,
		link.TemplateID,
		link.Token,
		link.Enabled,
		link.DirectTemplateRecipientID,
	).Scan(&link.CreatedAt)
	if err != nil {
		if postgres.IsPgDuplicateError(err) {
			return fmt.Errorf("direct link for template %d: %w", link.TemplateID, domain.ErrConflict)
		}
		return fmt.Errorf("create direct link: %w", err)
	}
	return nil
}
