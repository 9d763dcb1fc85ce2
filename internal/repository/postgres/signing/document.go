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

// PostgresDocumentRepository implements signingRepo.DocumentRepository.
type PostgresDocumentRepository struct {
	pool   *pgxpool.Pool
	tables *postgres.TableNames
}

// NewDocumentRepository creates a new document repository.
func NewDocumentRepository(config *postgres.RepositoryConfig) signingRepo.DocumentRepository {
	return &PostgresDocumentRepository{
		pool:   config.Pool,
		tables: config.Tables,
	}
}

// GetByID retrieves a live document by id.
func (r *PostgresDocumentRepository) GetByID(ctx context.Context, id int64) (*models.Document, error) {
	query := fmt.Sprintf(`
		SELECT id, user_id, team_id, title, status, visibility, document_data_id,
		       COALESCE(auth_options, '{}'::jsonb), meta, created_at, updated_at, deleted_at
		FROM %s
		WHERE id = $1 AND deleted_at IS NULL
	`, r.tables.Documents)

	var doc models.Document
	executor := postgres.GetExecutor(ctx, r.pool)
	err := executor.QueryRow(ctx, query, id).Scan(
		&doc.ID,
		&doc.UserID,
		&doc.TeamID,
		&doc.Title,
		&doc.Status,
		&doc.Visibility,
		&doc.DocumentDataID,
		&doc.AuthOptions,
		&doc.Meta,
		&doc.CreatedAt,
		&doc.UpdatedAt,
		&doc.DeletedAt,
	)
	if err != nil {
		if postgres.IsPgNoRowsError(err) {
			return nil, fmt.Errorf("document %d: %w", id, domain.ErrNotFound)
		}
		return nil, fmt.Errorf("get document: %w", err)
	}

	return &doc, nil
}

// Create inserts a document.
func (r *PostgresDocumentRepository) Create(ctx context.Context, doc *models.Document) error {
	query := fmt.Sprintf(`
		INSERT INTO %s (user_id, team_id, title, status, visibility, document_data_id, auth_options, meta)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
		RETURNING id, created_at, updated_at
	`, r.tables.Documents)

	executor := postgres.GetExecutor(ctx, r.pool)
	err := executor.QueryRow(ctx, query,
		doc.UserID,
		doc.TeamID,
		doc.Title,
		doc.Status,
		doc.Visibility,
		doc.DocumentDataID,
		doc.AuthOptions,
		doc.Meta,
	).Scan(&doc.ID, &doc.CreatedAt, &doc.UpdatedAt)
	if err != nil {
		if postgres.IsPgForeignKeyError(err) {
			return fmt.Errorf("document team %v: %w", doc.TeamID, domain.ErrValidation)
		}
		return fmt.Errorf("create document: %w", err)
	}

	return nil
}
