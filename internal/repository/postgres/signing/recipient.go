package signing

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"

	models "signet/internal/domain/models/signing"
	signingRepo "signet/internal/domain/repositories/signing"
	"signet/internal/repository/postgres"
)

// PostgresRecipientRepository implements signingRepo.RecipientRepository.
type PostgresRecipientRepository struct {
	pool   *pgxpool.Pool
	tables *postgres.TableNames
}

// NewRecipientRepository creates a new recipient repository.
func NewRecipientRepository(config *postgres.RepositoryConfig) signingRepo.RecipientRepository {
	return &PostgresRecipientRepository{
		pool:   config.Pool,
		tables: config.Tables,
	}
}

// ListByDocument lists a document's recipients.
func (r *PostgresRecipientRepository) ListByDocument(ctx context.Context, documentID int64) ([]models.Recipient, error) {
	return r.list(ctx, "document_id", documentID)
}

// ListByTemplate lists a template's recipients.
func (r *PostgresRecipientRepository) ListByTemplate(ctx context.Context, templateID int64) ([]models.Recipient, error) {
	return r.list(ctx, "template_id", templateID)
}

func (r *PostgresRecipientRepository) list(ctx context.Context, ownerColumn string, ownerID int64) ([]models.Recipient, error) {
	query := fmt.Sprintf(`
		SELECT id, document_id, template_id, email, name, role, signing_status,
		       COALESCE(auth_options, '{}'::jsonb), signed_at
		FROM %s
		WHERE %s = $1
		ORDER BY id
	`, r.tables.Recipients, ownerColumn)

	executor := postgres.GetExecutor(ctx, r.pool)
	rows, err := executor.Query(ctx, query, ownerID)
	if err != nil {
		return nil, fmt.Errorf("list recipients: %w", err)
	}
	defer rows.Close()

	recipients := []models.Recipient{}
	for rows.Next() {
		var recipient models.Recipient
		if err := rows.Scan(
			&recipient.ID,
			&recipient.DocumentID,
			&recipient.TemplateID,
			&recipient.Email,
			&recipient.Name,
			&recipient.Role,
			&recipient.SigningStatus,
			&recipient.AuthOptions,
			&recipient.SignedAt,
		); err != nil {
			return nil, fmt.Errorf("scan recipient: %w", err)
		}
		recipients = append(recipients, recipient)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate recipients: %w", err)
	}

	return recipients, nil
}

// Create inserts a recipient for a document or a template.
func (r *PostgresRecipientRepository) Create(ctx context.Context, recipient *models.Recipient) error {
	query := fmt.Sprintf(`
		INSERT INTO %s (document_id, template_id, email, name, role, signing_status, auth_options, signed_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
		RETURNING id
	`, r.tables.Recipients)

	executor := postgres.GetExecutor(ctx, r.pool)
	err := executor.QueryRow(ctx, query,
		recipient.DocumentID,
		recipient.TemplateID,
		recipient.Email,
		recipient.Name,
		recipient.Role,
		recipient.SigningStatus,
		recipient.AuthOptions,
		recipient.SignedAt,
	).Scan(&recipient.ID)
	if err != nil {
		return fmt.Errorf("create recipient: %w", err)
	}
	return nil
}
