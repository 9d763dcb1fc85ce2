package handler

import (
	"log/slog"
	"net/http"

	signingSvc "signet/internal/domain/services/signing"
	"signet/internal/httputil"
)

// TemplateHandler serves template pages.
type TemplateHandler struct {
	templateService signingSvc.TemplateService
	logger          *slog.Logger
}

// NewTemplateHandler creates a new template handler
func NewTemplateHandler(templateService signingSvc.TemplateService, logger *slog.Logger) *TemplateHandler {
	return &TemplateHandler{
		templateService: templateService,
		logger:          logger,
	}
}

// GetTemplate returns a template page if the requester may see it
// GET /api/templates/{id}
// GET /api/t/{teamUrl}/templates/{id}
func (h *TemplateHandler) GetTemplate(w http.ResponseWriter, r *http.Request) {
	page, err := h.templateService.GetTemplatePage(r.Context(), httputil.GetSession(r), resourceRequest(r))
	if err != nil {
		handleError(w, r, h.logger, err)
		return
	}

	httputil.RespondJSON(w, http.StatusOK, page)
}
