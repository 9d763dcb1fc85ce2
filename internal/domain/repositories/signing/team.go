package signing

import (
	"context"

	"signet/internal/domain/models/signing"
)

// TeamRepository defines data access for teams and memberships.
type TeamRepository interface {
	// GetByURL returns the team with slug url and sets CurrentMember to
	// userID's membership. A team the user does not belong to is reported
	// as not found.
	GetByURL(ctx context.Context, url string, userID int64) (*signing.Team, error)

	// GetByID returns a team without membership information.
	GetByID(ctx context.Context, id int64) (*signing.Team, error)

	Create(ctx context.Context, team *signing.Team) error
	AddMember(ctx context.Context, member *signing.TeamMember) error
}
