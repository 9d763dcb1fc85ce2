package handler

import (
	"log/slog"
	"net/http"

	signingSvc "signet/internal/domain/services/signing"
	"signet/internal/httputil"
)

// DocumentHandler serves document pages.
// Handlers only talk to services; access rules live in the service layer.
type DocumentHandler struct {
	docService signingSvc.DocumentService
	logger     *slog.Logger
}

// NewDocumentHandler creates a new document handler
func NewDocumentHandler(docService signingSvc.DocumentService, logger *slog.Logger) *DocumentHandler {
	return &DocumentHandler{
		docService: docService,
		logger:     logger,
	}
}

// GetDocument returns a document page if the requester may see it
// GET /api/documents/{id}
// GET /api/t/{teamUrl}/documents/{id}
func (h *DocumentHandler) GetDocument(w http.ResponseWriter, r *http.Request) {
	page, err := h.docService.GetDocumentPage(r.Context(), httputil.GetSession(r), resourceRequest(r))
	if err != nil {
		handleError(w, r, h.logger, err)
		return
	}

	httputil.RespondJSON(w, http.StatusOK, page)
}

// resourceRequest reads the team URL and id path values. Routes without a
// team segment yield an empty TeamURL.
func resourceRequest(r *http.Request) *signingSvc.ResourceRequest {
	return &signingSvc.ResourceRequest{
		TeamURL: r.PathValue("teamUrl"),
		ID:      r.PathValue("id"),
	}
}
