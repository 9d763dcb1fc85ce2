// Command accessctl is an operator tool for document access control.
//
//	accessctl seal [--work-factor N] <password>   encrypt a document password
//	accessctl open <ciphertext>                    decrypt a stored password
//	accessctl check --user ID --document ID [--team URL] [--email E]
//	                                               explain an access decision
package main

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log"
	"os"
	"strconv"

	"signet/internal/access"
	"signet/internal/config"
	"signet/internal/domain/models"
	signingSvc "signet/internal/domain/services/signing"
	"signet/internal/repository/postgres"
	postgresSigning "signet/internal/repository/postgres/signing"
	"signet/internal/secrets"
	serviceSigning "signet/internal/service/signing"

	"github.com/joho/godotenv"
	flag "github.com/spf13/pflag"
)

var errUsage = errors.New("usage: accessctl <seal|open|check> [flags]")

func main() {
	_ = godotenv.Load()

	if err := run(context.Background(), config.Load(), os.Args[1:], os.Stdout); err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return
		}
		log.Fatal(err)
	}
}

func run(ctx context.Context, cfg *config.Config, args []string, out io.Writer) error {
	if len(args) == 0 {
		return errUsage
	}

	switch args[0] {
	case "seal":
		return runSeal(cfg, args[1:], out)
	case "open":
		return runOpen(cfg, args[1:], out)
	case "check":
		return runCheck(ctx, cfg, args[1:], out)
	default:
		return fmt.Errorf("unknown command %q: %w", args[0], errUsage)
	}
}

func runSeal(cfg *config.Config, args []string, out io.Writer) error {
	fs := flag.NewFlagSet("seal", flag.ContinueOnError)
	workFactor := fs.Int("work-factor", secrets.DefaultWorkFactor, "scrypt work factor (log2 N)")
	if err := fs.Parse(args); err != nil {
		return err
	}
	if fs.NArg() != 1 {
		return errors.New("usage: accessctl seal [--work-factor N] <password>")
	}
	if cfg.EncryptionKey == "" {
		return errors.New("ENCRYPTION_KEY is not set")
	}

	sealed, err := secrets.Seal(fs.Arg(0), cfg.EncryptionKey, *workFactor)
	if err != nil {
		return err
	}
	_, err = fmt.Fprintln(out, sealed)
	return err
}

func runOpen(cfg *config.Config, args []string, out io.Writer) error {
	fs := flag.NewFlagSet("open", flag.ContinueOnError)
	if err := fs.Parse(args); err != nil {
		return err
	}
	if fs.NArg() != 1 {
		return errors.New("usage: accessctl open <ciphertext>")
	}

	opener, err := secrets.NewOpener(cfg.EncryptionKey)
	if err != nil {
		return err
	}
	plaintext, err := opener.Open(fs.Arg(0))
	if err != nil {
		return err
	}
	_, err = fmt.Fprintln(out, plaintext)
	return err
}

func runCheck(ctx context.Context, cfg *config.Config, args []string, out io.Writer) error {
	fs := flag.NewFlagSet("check", flag.ContinueOnError)
	userID := fs.Int64("user", 0, "requesting user id (0 for anonymous)")
	email := fs.String("email", "", "requesting user email")
	teamURL := fs.String("team", "", "team URL the request is made in")
	documentID := fs.Int64("document", 0, "document id")
	if err := fs.Parse(args); err != nil {
		return err
	}
	if *documentID <= 0 {
		return errors.New("usage: accessctl check --user ID --document ID [--team URL] [--email E]")
	}

	logger := config.NewLogger(cfg.Environment, os.Stderr)

	pool, err := postgres.CreateConnectionPool(ctx, cfg.DatabaseURL)
	if err != nil {
		return fmt.Errorf("connect: %w", err)
	}
	defer pool.Close()

	repoConfig := &postgres.RepositoryConfig{
		Pool:   pool,
		Tables: postgres.NewTableNames(cfg.TablePrefix),
		Logger: logger,
	}

	var opener access.SecretOpener
	if cfg.EncryptionKey != "" {
		o, err := secrets.NewOpener(cfg.EncryptionKey)
		if err != nil {
			return err
		}
		opener = o
	}

	docService := serviceSigning.NewDocumentService(
		postgresSigning.NewDocumentRepository(repoConfig),
		postgresSigning.NewRecipientRepository(repoConfig),
		postgresSigning.NewFieldRepository(repoConfig),
		postgresSigning.NewTeamRepository(repoConfig),
		access.NewResolver(opener),
		logger,
	)

	explanation, err := docService.ExplainDocumentAccess(ctx, sessionFor(*userID, *email), &signingSvc.ResourceRequest{
		TeamURL: *teamURL,
		ID:      strconv.FormatInt(*documentID, 10),
	})
	if err != nil {
		return err
	}

	enc := json.NewEncoder(out)
	enc.SetIndent("", "  ")
	return enc.Encode(explanation)
}

// sessionFor builds the session to check with. A zero user is anonymous.
func sessionFor(userID int64, email string) *models.Session {
	if userID <= 0 {
		return nil
	}
	return &models.Session{UserID: userID, Email: email, EmailVerified: true}
}
