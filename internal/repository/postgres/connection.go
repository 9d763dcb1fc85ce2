package postgres

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"signet/internal/domain/repositories"
)

// RepositoryConfig holds configuration shared by repository implementations.
type RepositoryConfig struct {
	Pool   *pgxpool.Pool
	Tables *TableNames
	Logger *slog.Logger
}

// TableNames holds the environment-prefixed table names.
type TableNames struct {
	Teams       string
	TeamMembers string
	Documents   string
	Templates   string
	DirectLinks string
	Recipients  string
	Fields      string
}

// NewTableNames creates table names with the given prefix (dev_, test_, or
// empty in production).
func NewTableNames(prefix string) *TableNames {
	return &TableNames{
		Teams:       fmt.Sprintf("%steams", prefix),
		TeamMembers: fmt.Sprintf("%steam_members", prefix),
		Documents:   fmt.Sprintf("%sdocuments", prefix),
		Templates:   fmt.Sprintf("%stemplates", prefix),
		DirectLinks: fmt.Sprintf("%stemplate_direct_links", prefix),
		Recipients:  fmt.Sprintf("%srecipients", prefix),
		Fields:      fmt.Sprintf("%sfields", prefix),
	}
}

// All lists the tables in dependency order, parents first.
func (t *TableNames) All() []string {
	return []string{
		t.Teams,
		t.TeamMembers,
		t.Templates,
		t.DirectLinks,
		t.Documents,
		t.Recipients,
		t.Fields,
	}
}

// CreateConnectionPool creates a pgx pool and verifies it with a ping.
//
// Connections through a transaction pooler (port 6543) cannot use prepared
// statements, so the pool switches to QueryExecModeCacheDescribe there
// unless the connection string already picked a mode. Prefixed table names
// are interpolated before the SQL reaches the server, so each environment
// gets its own cached statements.
func CreateConnectionPool(ctx context.Context, databaseURL string) (*pgxpool.Pool, error) {
	config, err := pgxpool.ParseConfig(databaseURL)
	if err != nil {
		return nil, fmt.Errorf("parse connection string: %w", err)
	}

	config.MaxConns = 25
	config.MinConns = 2

	if config.ConnConfig.Port == 6543 && config.ConnConfig.DefaultQueryExecMode == pgx.QueryExecModeCacheStatement {
		config.ConnConfig.DefaultQueryExecMode = pgx.QueryExecModeCacheDescribe
		slog.Debug("using cache_describe mode behind transaction pooler", "port", config.ConnConfig.Port)
	}

	pool, err := pgxpool.NewWithConfig(ctx, config)
	if err != nil {
		return nil, fmt.Errorf("create connection pool: %w", err)
	}

	if err := pool.Ping(ctx); err != nil {
		pool.Close()
		return nil, fmt.Errorf("ping database: %w", err)
	}

	return pool, nil
}

// GetExecutor returns the transaction carried by ctx, or pool when there is
// none.
func GetExecutor(ctx context.Context, pool *pgxpool.Pool) repositories.DBTX {
	if tx := repositories.TxFromContext(ctx); tx != nil {
		return tx
	}
	return pool
}
