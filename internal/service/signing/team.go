package signing

import (
	"context"
	"fmt"
	"log/slog"

	"signet/internal/access"
	"signet/internal/domain"
	"signet/internal/domain/models"
	signingRepo "signet/internal/domain/repositories/signing"
	signingSvc "signet/internal/domain/services/signing"
)

// teamService implements the TeamService interface
type teamService struct {
	teamRepo signingRepo.TeamRepository
	actions  *access.TeamActionRegistry
	logger   *slog.Logger
}

// NewTeamService creates a new team service
func NewTeamService(
	teamRepo signingRepo.TeamRepository,
	actions *access.TeamActionRegistry,
	logger *slog.Logger,
) signingSvc.TeamService {
	return &teamService{
		teamRepo: teamRepo,
		actions:  actions,
		logger:   logger,
	}
}

// GetPermissions lists the team actions and assignable roles of the member.
func (s *teamService) GetPermissions(ctx context.Context, session *models.Session, teamURL string) (*signingSvc.TeamPermissions, error) {
	if session == nil {
		return nil, domain.ErrUnauthorized
	}
	if teamURL == "" {
		return nil, fmt.Errorf("team url: %w", domain.ErrNotFound)
	}

	team, err := loadTeam(ctx, s.teamRepo, session, teamURL)
	if err != nil {
		return nil, err
	}

	role := team.CurrentMember.Role
	return &signingSvc.TeamPermissions{
		TeamID:          team.ID,
		TeamURL:         team.URL,
		Role:            role,
		Actions:         s.actions.ActionsFor(role),
		ManageableRoles: s.actions.ManageableRoles(role),
	}, nil
}
