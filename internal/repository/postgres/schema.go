package postgres

import (
	"context"
	"fmt"
	"slices"

	"signet/internal/domain/repositories"
)

// CreateSchema creates any missing tables and indexes. It is idempotent.
func CreateSchema(ctx context.Context, db repositories.DBTX, tables *TableNames, prefix string) error {
	statements := []string{
		`CREATE TABLE IF NOT EXISTS ` + tables.Teams + ` (
			id BIGSERIAL PRIMARY KEY,
			name TEXT NOT NULL,
			url TEXT NOT NULL UNIQUE,
			owner_user_id BIGINT NOT NULL,
			branding_hide_powered_by BOOLEAN NOT NULL DEFAULT FALSE,
			created_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
		)`,
		`CREATE TABLE IF NOT EXISTS ` + tables.TeamMembers + ` (
			id BIGSERIAL PRIMARY KEY,
			team_id BIGINT NOT NULL REFERENCES ` + tables.Teams + `(id) ON DELETE CASCADE,
			user_id BIGINT NOT NULL,
			role TEXT NOT NULL CHECK (role IN ('ADMIN', 'MANAGER', 'MEMBER')),
			created_at TIMESTAMPTZ NOT NULL DEFAULT NOW(),
			UNIQUE (team_id, user_id)
		)`,
		`CREATE TABLE IF NOT EXISTS ` + tables.Templates + ` (
			id BIGSERIAL PRIMARY KEY,
			user_id BIGINT NOT NULL,
			team_id BIGINT REFERENCES ` + tables.Teams + `(id) ON DELETE CASCADE,
			title TEXT NOT NULL,
			type TEXT NOT NULL DEFAULT 'PRIVATE',
			visibility TEXT NOT NULL DEFAULT 'EVERYONE',
			template_document_data_id TEXT,
			auth_options JSONB,
			meta JSONB,
			created_at TIMESTAMPTZ NOT NULL DEFAULT NOW(),
			updated_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
		)`,
		`CREATE TABLE IF NOT EXISTS ` + tables.DirectLinks + ` (
			id UUID PRIMARY KEY,
			template_id BIGINT NOT NULL UNIQUE REFERENCES ` + tables.Templates + `(id) ON DELETE CASCADE,
			token TEXT NOT NULL UNIQUE,
			enabled BOOLEAN NOT NULL DEFAULT TRUE,
			direct_template_recipient_id BIGINT NOT NULL,
			created_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
		)`,
		`CREATE TABLE IF NOT EXISTS ` + tables.Documents + ` (
			id BIGSERIAL PRIMARY KEY,
			user_id BIGINT NOT NULL,
			team_id BIGINT REFERENCES ` + tables.Teams + `(id) ON DELETE CASCADE,
			title TEXT NOT NULL,
			status TEXT NOT NULL DEFAULT 'DRAFT',
			visibility TEXT NOT NULL DEFAULT 'EVERYONE',
			document_data_id TEXT,
			auth_options JSONB,
			meta JSONB,
			created_at TIMESTAMPTZ NOT NULL DEFAULT NOW(),
			updated_at TIMESTAMPTZ NOT NULL DEFAULT NOW(),
			deleted_at TIMESTAMPTZ
		)`,
		`CREATE TABLE IF NOT EXISTS ` + tables.Recipients + ` (
			id BIGSERIAL PRIMARY KEY,
			document_id BIGINT REFERENCES ` + tables.Documents + `(id) ON DELETE CASCADE,
			template_id BIGINT REFERENCES ` + tables.Templates + `(id) ON DELETE CASCADE,
			email TEXT NOT NULL,
			name TEXT NOT NULL DEFAULT '',
			role TEXT NOT NULL DEFAULT 'SIGNER',
			signing_status TEXT NOT NULL DEFAULT 'NOT_SIGNED',
			auth_options JSONB,
			signed_at TIMESTAMPTZ,
			CHECK ((document_id IS NULL) <> (template_id IS NULL))
		)`,
		`CREATE TABLE IF NOT EXISTS ` + tables.Fields + ` (
			id BIGSERIAL PRIMARY KEY,
			document_id BIGINT REFERENCES ` + tables.Documents + `(id) ON DELETE CASCADE,
			template_id BIGINT REFERENCES ` + tables.Templates + `(id) ON DELETE CASCADE,
			recipient_id BIGINT NOT NULL REFERENCES ` + tables.Recipients + `(id) ON DELETE CASCADE,
			type TEXT NOT NULL,
			page INTEGER NOT NULL DEFAULT 1,
			position_x DOUBLE PRECISION NOT NULL DEFAULT 0,
			position_y DOUBLE PRECISION NOT NULL DEFAULT 0,
			width DOUBLE PRECISION NOT NULL DEFAULT 0,
			height DOUBLE PRECISION NOT NULL DEFAULT 0,
			custom_text TEXT NOT NULL DEFAULT '',
			inserted BOOLEAN NOT NULL DEFAULT FALSE
		)`,
		`CREATE INDEX IF NOT EXISTS idx_` + prefix + `team_members_user ON ` + tables.TeamMembers + `(user_id)`,
		`CREATE INDEX IF NOT EXISTS idx_` + prefix + `documents_team ON ` + tables.Documents + `(team_id) WHERE deleted_at IS NULL`,
		`CREATE INDEX IF NOT EXISTS idx_` + prefix + `recipients_document ON ` + tables.Recipients + `(document_id)`,
		`CREATE INDEX IF NOT EXISTS idx_` + prefix + `recipients_template ON ` + tables.Recipients + `(template_id)`,
		`CREATE INDEX IF NOT EXISTS idx_` + prefix + `fields_document ON ` + tables.Fields + `(document_id)`,
		`CREATE INDEX IF NOT EXISTS idx_` + prefix + `fields_template ON ` + tables.Fields + `(template_id)`,
	}

	for _, stmt := range statements {
		if _, err := db.Exec(ctx, stmt); err != nil {
			return fmt.Errorf("create schema: %w", err)
		}
	}
	return nil
}

// DropSchema drops all tables, children first.
func DropSchema(ctx context.Context, db repositories.DBTX, tables *TableNames) error {
	names := tables.All()
	slices.Reverse(names)
	for _, table := range names {
		if _, err := db.Exec(ctx, "DROP TABLE IF EXISTS "+table+" CASCADE"); err != nil {
			return fmt.Errorf("drop %s: %w", table, err)
		}
	}
	return nil
}
