package signing

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"

	"signet/internal/domain"
	models "signet/internal/domain/models/signing"
	signingRepo "signet/internal/domain/repositories/signing"
	"signet/internal/repository/postgres"
)

// PostgresFieldRepository implements signingRepo.FieldRepository.
type PostgresFieldRepository struct {
	pool   *pgxpool.Pool
	tables *postgres.TableNames
}

// NewFieldRepository creates a new field repository.
func NewFieldRepository(config *postgres.RepositoryConfig) signingRepo.FieldRepository {
	return &PostgresFieldRepository{
		pool:   config.Pool,
		tables: config.Tables,
	}
}

// ListByDocument lists a document's fields.
func (r *PostgresFieldRepository) ListByDocument(ctx context.Context, documentID int64) ([]models.Field, error) {
	return r.list(ctx, "document_id", documentID)
}

// ListByTemplate lists a template's fields.
func (r *PostgresFieldRepository) ListByTemplate(ctx context.Context, templateID int64) ([]models.Field, error) {
	return r.list(ctx, "template_id", templateID)
}

func (r *PostgresFieldRepository) list(ctx context.Context, ownerColumn string, ownerID int64) ([]models.Field, error) {
	query := fmt.Sprintf(`
		SELECT id, document_id, template_id, recipient_id, type, page,
		       position_x, position_y, width, height, custom_text, inserted
		FROM %s
		WHERE %s = $1
		ORDER BY id
	`, r.tables.Fields, ownerColumn)

	executor := postgres.GetExecutor(ctx, r.pool)
	rows, err := executor.Query(ctx, query, ownerID)
	if err != nil {
		return nil, fmt.Errorf("list fields: %w", err)
	}
	defer rows.Close()

	fields := []models.Field{}
	for rows.Next() {
		var field models.Field
		if err := rows.Scan(
			&field.ID,
			&field.DocumentID,
			&field.TemplateID,
			&field.RecipientID,
			&field.Type,
			&field.Page,
			&field.PositionX,
			&field.PositionY,
			&field.Width,
			&field.Height,
			&field.CustomText,
			&field.Inserted,
		); err != nil {
			return nil, fmt.Errorf("scan field: %w", err)
		}
		fields = append(fields, field)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate fields: %w", err)
	}

	return fields, nil
}

// Create inserts a field.
func (r *PostgresFieldRepository) Create(ctx context.Context, field *models.Field) error {
	query := fmt.Sprintf(`
		INSERT INTO %s (document_id, template_id, recipient_id, type, page,
		                position_x, position_y, width, height, custom_text, inserted)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11)
		RETURNING id
	`, r.tables.Fields)

	executor := postgres.GetExecutor(ctx, r.pool)
	err := executor.QueryRow(ctx, query,
		field.DocumentID,
		field.TemplateID,
		field.RecipientID,
		field.Type,
		field.Page,
		field.PositionX,
		field.PositionY,
		field.Width,
		field.Height,
		field.CustomText,
		field.Inserted,
	).Scan(&field.ID)
	if err != nil {
		if postgres.IsPgForeignKeyError(err) {
			return fmt.Errorf("field recipient %d does not exist: %w", field.RecipientID, domain.ErrValidation)
		}
		return fmt.Errorf("create field: %w", err)
	}
	return nil
}
