package handler

import (
	"errors"
	"log/slog"
	"net/http"

	"signet/internal/domain"
	"signet/internal/httputil"
)

// Problem extension codes understood by the embed client.
const (
	codeAuthenticationRequired = "embed-authentication-required"
	codePaywall                = "embed-paywall"
)

// handleError converts domain errors to HTTP responses
func handleError(w http.ResponseWriter, r *http.Request, logger *slog.Logger, err error) {
	var (
		redirectErr *domain.RedirectError
		authErr     *domain.AuthenticationRequiredError
		paywallErr  *domain.PaywallError
		httpErr     domain.HTTPError
	)

	switch {
	case errors.As(err, &redirectErr):
		httputil.RespondErrorWithExtras(w, redirectErr.StatusCode(), redirectErr.Error(), map[string]any{
			"redirect": redirectErr.Location,
		})
	case errors.As(err, &authErr):
		extras := map[string]any{
			"code":     codeAuthenticationRequired,
			"returnTo": authErr.ReturnTo,
		}
		if authErr.Email != "" {
			extras["email"] = authErr.Email
		}
		httputil.RespondErrorWithExtras(w, authErr.StatusCode(), authErr.Error(), extras)
	case errors.As(err, &paywallErr):
		httputil.RespondErrorWithExtras(w, paywallErr.StatusCode(), paywallErr.Error(), map[string]any{
			"code": codePaywall,
		})
	case errors.As(err, &httpErr):
		httputil.RespondError(w, httpErr.StatusCode(), httpErr.Error())
	case errors.Is(err, domain.ErrValidation):
		httputil.RespondError(w, http.StatusBadRequest, err.Error())
	case errors.Is(err, domain.ErrNotFound):
		httputil.RespondError(w, http.StatusNotFound, "resource not found")
	case errors.Is(err, domain.ErrUnauthorized):
		httputil.RespondError(w, http.StatusUnauthorized, "unauthorized")
	case errors.Is(err, domain.ErrForbidden):
		httputil.RespondError(w, http.StatusForbidden, "forbidden")
	case errors.Is(err, domain.ErrConflict):
		httputil.RespondError(w, http.StatusConflict, err.Error())
	default:
		logger.Error("request failed",
			"method", r.Method,
			"path", r.URL.Path,
			"request_id", httputil.GetRequestID(r.Context()),
			"error", err,
		)
		httputil.RespondError(w, http.StatusInternalServerError, "internal server error")
	}
}
