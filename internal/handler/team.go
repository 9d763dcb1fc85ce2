package handler

import (
	"log/slog"
	"net/http"

	signingSvc "signet/internal/domain/services/signing"
	"signet/internal/httputil"
)

// TeamHandler handles team HTTP requests
type TeamHandler struct {
	teamService signingSvc.TeamService
	logger      *slog.Logger
}

// NewTeamHandler creates a new team handler
func NewTeamHandler(teamService signingSvc.TeamService, logger *slog.Logger) *TeamHandler {
	return &TeamHandler{
		teamService: teamService,
		logger:      logger,
	}
}

// GetPermissions lists the team actions and roles the caller may manage
// GET /api/t/{teamUrl}/permissions
func (h *TeamHandler) GetPermissions(w http.ResponseWriter, r *http.Request) {
	perms, err := h.teamService.GetPermissions(r.Context(), httputil.GetSession(r), r.PathValue("teamUrl"))
	if err != nil {
		handleError(w, r, h.logger, err)
		return
	}

	httputil.RespondJSON(w, http.StatusOK, perms)
}
