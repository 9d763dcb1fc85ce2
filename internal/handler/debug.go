package handler

import (
	"log/slog"
	"net/http"

	signingSvc "signet/internal/domain/services/signing"
	"signet/internal/httputil"
)

// DebugHandler exposes raw access decisions. Only mounted in dev.
type DebugHandler struct {
	docService signingSvc.DocumentService
	logger     *slog.Logger
}

// NewDebugHandler creates a new debug handler
func NewDebugHandler(docService signingSvc.DocumentService, logger *slog.Logger) *DebugHandler {
	return &DebugHandler{
		docService: docService,
		logger:     logger,
	}
}

// ExplainDocumentAccess returns the decision for the caller and a document,
// including the denial reason.
// GET /debug/api/documents/{id}/access?team=<teamUrl>
func (h *DebugHandler) ExplainDocumentAccess(w http.ResponseWriter, r *http.Request) {
	req := &signingSvc.ResourceRequest{
		TeamURL: r.URL.Query().Get("team"),
		ID:      r.PathValue("id"),
	}

	explanation, err := h.docService.ExplainDocumentAccess(r.Context(), httputil.GetSession(r), req)
	if err != nil {
		handleError(w, r, h.logger, err)
		return
	}

	httputil.RespondJSON(w, http.StatusOK, explanation)
}
