package main

import (
	"context"
	"fmt"
	"log"
	"os"

	"signet/internal/config"
	"signet/internal/repository/postgres"
	postgresSigning "signet/internal/repository/postgres/signing"
	"signet/internal/secrets"
	"signet/internal/seed"

	"github.com/joho/godotenv"
	flag "github.com/spf13/pflag"
)

func main() {
	dropTables := flag.Bool("drop-tables", false, "Drop all tables before seeding (fresh start)")
	schemaOnly := flag.Bool("schema-only", false, "Only set up schema, don't seed data")

	var opts seed.Options
	flag.StringVar(&opts.TeamURL, "team-url", "acme", "URL slug of the sample team")
	flag.StringVar(&opts.TeamName, "team-name", "Acme Inc", "Display name of the sample team")
	flag.Int64Var(&opts.AdminUserID, "admin", 1, "User id of the team admin and resource owner")
	flag.Int64Var(&opts.ManagerUserID, "manager", 2, "User id of the team manager")
	flag.Int64Var(&opts.MemberUserID, "member", 3, "User id of the team member")
	flag.StringVar(&opts.RecipientEmail, "recipient-email", "signer@example.com", "Email of the sample recipient")
	flag.StringVar(&opts.Password, "password", "", "Seed a password-protected document with this password (requires ENCRYPTION_KEY)")
	flag.BoolVar(&opts.HidePoweredBy, "hide-powered-by", false, "Enable the team's hide-powered-by branding")
	flag.Parse()

	_ = godotenv.Load()

	cfg := config.Load()

	// SAFETY: Prevent destructive operations in production
	if cfg.Environment == "prod" && *dropTables {
		log.Fatalf("🚫 BLOCKED: Cannot run --drop-tables in production environment")
	}

	logger := config.NewLogger(cfg.Environment, os.Stdout)

	if *schemaOnly {
		log.Printf("🏗️  Setting up schema only (environment: %s, prefix: %s)", cfg.Environment, cfg.TablePrefix)
	} else {
		log.Printf("🌱 Seeding database (environment: %s, prefix: %s)", cfg.Environment, cfg.TablePrefix)
	}

	ctx := context.Background()
	pool, err := postgres.CreateConnectionPool(ctx, cfg.DatabaseURL)
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}
	defer pool.Close()

	tables := postgres.NewTableNames(cfg.TablePrefix)

	if *dropTables {
		log.Println("🗑️  Dropping all tables...")
		if err := postgres.DropSchema(ctx, pool, tables); err != nil {
			log.Fatalf("Failed to drop tables: %v", err)
		}
		log.Println("✅ Tables dropped")
	}

	log.Println("📋 Ensuring database schema is up to date...")
	if err := postgres.CreateSchema(ctx, pool, tables, cfg.TablePrefix); err != nil {
		log.Fatalf("Failed to run schema: %v", err)
	}
	log.Println("✅ Schema ready")

	if *schemaOnly {
		log.Println("✅ Schema setup complete (schema-only mode)")
		return
	}

	var sealer seed.Sealer
	if cfg.EncryptionKey != "" {
		opener, err := secrets.NewOpener(cfg.EncryptionKey)
		if err != nil {
			log.Fatalf("Failed to create sealer: %v", err)
		}
		sealer = opener
	}

	repoConfig := &postgres.RepositoryConfig{
		Pool:   pool,
		Tables: tables,
		Logger: logger,
	}
	seeder := seed.NewSeeder(
		postgres.NewTransactionManager(pool, logger),
		postgresSigning.NewTeamRepository(repoConfig),
		postgresSigning.NewDocumentRepository(repoConfig),
		postgresSigning.NewTemplateRepository(repoConfig),
		postgresSigning.NewRecipientRepository(repoConfig),
		postgresSigning.NewFieldRepository(repoConfig),
		sealer,
		logger,
	)

	summary, err := seeder.Seed(ctx, opts)
	if err != nil {
		log.Fatalf("Failed to seed: %v", err)
	}

	fmt.Printf("Team %s (id %d)\n", opts.TeamURL, summary.TeamID)
	fmt.Printf("Documents: %v\n", summary.DocumentIDs)
	fmt.Printf("Templates: %v\n", summary.TemplateIDs)
	for _, token := range summary.Tokens {
		fmt.Printf("Direct link: %s/d/%s\n", cfg.BaseURL(), token)
	}
	log.Println("🎉 Seeding complete!")
}
