package signing

import (
	"context"
	"fmt"
	"log/slog"
	"regexp"
	"strconv"

	"signet/internal/access"
	"signet/internal/config"
	"signet/internal/domain"
	"signet/internal/domain/models"
	"signet/internal/domain/models/signing"
	signingRepo "signet/internal/domain/repositories/signing"

	validation "github.com/go-ozzo/ozzo-validation/v4"
	"golang.org/x/sync/errgroup"
)

var (
	resourceIDPattern      = regexp.MustCompile(`^[1-9][0-9]{0,17}$`)
	teamURLPattern         = regexp.MustCompile(`^[a-z0-9][a-z0-9_-]*$`)
	directLinkTokenPattern = regexp.MustCompile(`^[A-Za-z0-9_-]+$`)
)

// requesterFrom maps the request session onto the resolver's requester.
func requesterFrom(session *models.Session) access.Requester {
	if session == nil {
		return access.Anonymous
	}
	return access.Requester{
		UserID:        session.UserID,
		Email:         session.Email,
		EmailVerified: session.EmailVerified,
	}
}

func sessionUserID(session *models.Session) int64 {
	if session == nil {
		return 0
	}
	return session.UserID
}

// parseResourceID parses a positive numeric path id. ok is false for any
// malformed input.
func parseResourceID(raw string) (id int64, ok bool) {
	err := validation.Validate(raw,
		validation.Required,
		validation.Match(resourceIDPattern),
	)
	if err != nil {
		return 0, false
	}
	id, err = strconv.ParseInt(raw, 10, 64)
	if err != nil {
		return 0, false
	}
	return id, true
}

func validateTeamURL(teamURL string) error {
	return validation.Validate(teamURL,
		validation.Required,
		validation.Length(1, config.MaxTeamURLLength),
		validation.Match(teamURLPattern),
	)
}

func validateDirectLinkToken(token string) error {
	return validation.Validate(token,
		validation.Required,
		validation.Length(config.MinDirectLinkTokenLength, config.MaxDirectLinkTokenLength),
		validation.Match(directLinkTokenPattern),
	)
}

// loadTeam loads the team addressed by teamURL with the requester's
// membership. An empty teamURL is the personal context and returns nil.
// Malformed slugs, anonymous requesters and non-members all report the
// team as not found.
func loadTeam(ctx context.Context, teams signingRepo.TeamRepository, session *models.Session, teamURL string) (*signing.Team, error) {
	if teamURL == "" {
		return nil, nil
	}
	if err := validateTeamURL(teamURL); err != nil || session == nil {
		return nil, fmt.Errorf("team %q: %w", teamURL, domain.ErrNotFound)
	}
	return teams.GetByURL(ctx, teamURL, session.UserID)
}

func teamURLOf(team *signing.Team) string {
	if team == nil {
		return ""
	}
	return team.URL
}

type listRecipientsFn func(ctx context.Context, ownerID int64) ([]signing.Recipient, error)
type listFieldsFn func(ctx context.Context, ownerID int64) ([]signing.Field, error)

// loadParticipants fetches recipients and fields concurrently. Both must
// succeed before a decision is made.
func loadParticipants(ctx context.Context, ownerID int64, listRecipients listRecipientsFn, listFields listFieldsFn) ([]signing.Recipient, []signing.Field, error) {
	var (
		recipients []signing.Recipient
		fields     []signing.Field
	)

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		var err error
		recipients, err = listRecipients(gctx, ownerID)
		return err
	})
	g.Go(func() error {
		var err error
		fields, err = listFields(gctx, ownerID)
		return err
	})
	if err := g.Wait(); err != nil {
		return nil, nil, err
	}

	return recipients, fields, nil
}

// withPlainPassword returns a copy of meta carrying the decrypted password.
func withPlainPassword(meta *signing.DocumentMeta, password *string) *signing.DocumentMeta {
	if meta == nil {
		return nil
	}
	out := *meta
	out.Password = password
	return &out
}

// logDecision writes the audit line for one resolution. Denial reasons are
// only ever logged; responses for all denials are identical.
func logDecision(logger *slog.Logger, kind access.Kind, resourceID, teamURL string, session *models.Session, decision access.Decision) {
	attrs := []any{
		"kind", kind.String(),
		"resource_id", resourceID,
		"team_url", teamURL,
		"user_id", sessionUserID(session),
		"outcome", decision.Outcome.String(),
		"reason", decision.Reason.String(),
	}

	if decision.Granted() {
		logger.Debug("access granted", attrs...)
		return
	}
	logger.Info("access denied", attrs...)
}
