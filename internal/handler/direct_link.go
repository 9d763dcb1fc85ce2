package handler

import (
	"log/slog"
	"net/http"

	signingSvc "signet/internal/domain/services/signing"
	"signet/internal/httputil"
)

// DirectLinkHandler serves templates opened through a direct link.
// Requests may be anonymous.
type DirectLinkHandler struct {
	directLinkService signingSvc.DirectLinkService
	logger            *slog.Logger
}

// NewDirectLinkHandler creates a new direct link handler
func NewDirectLinkHandler(directLinkService signingSvc.DirectLinkService, logger *slog.Logger) *DirectLinkHandler {
	return &DirectLinkHandler{
		directLinkService: directLinkService,
		logger:            logger,
	}
}

// GetDirectTemplate returns the signer view for a direct-link token
// GET /api/embed/direct/{token}
func (h *DirectLinkHandler) GetDirectTemplate(w http.ResponseWriter, r *http.Request) {
	page, err := h.directLinkService.GetDirectTemplate(r.Context(), httputil.GetSession(r), r.PathValue("token"))
	if err != nil {
		handleError(w, r, h.logger, err)
		return
	}

	httputil.RespondJSON(w, http.StatusOK, page)
}
