package http

import (
	"log/slog"
	"net/http"

	"github.com/aussiebroadwan/disclosure/internal/disclosure/domain"
	"github.com/aussiebroadwan/disclosure/internal/disclosure/service"
	"github.com/aussiebroadwan/disclosure/pkg/disclosuresdk"
	"github.com/aussiebroadwan/disclosure/pkg/httpx"
	"github.com/aussiebroadwan/disclosure/pkg/slogx"
)

// maxJSONBody bounds every JSON request body.
const maxJSONBody = 64 << 10

var statusByKind = map[service.ErrorKind]int{
	service.KindUnauthenticated:       http.StatusUnauthorized,
	service.KindMissingOrgContext:     http.StatusForbidden,
	service.KindForbidden:             http.StatusForbidden,
	service.KindNotFound:              http.StatusNotFound,
	service.KindValidation:            http.StatusBadRequest,
	service.KindConflict:              http.StatusConflict,
	service.KindExpired:               http.StatusGone,
	service.KindAlreadyAccepted:       http.StatusConflict,
	service.KindWrongOrg:              http.StatusForbidden,
	service.KindEmailMismatch:         http.StatusForbidden,
	service.KindDependencyUnavailable: http.StatusServiceUnavailable,
	service.KindPreconditionFailed:    http.StatusPreconditionFailed,
	service.KindRenderTimeout:         http.StatusGatewayTimeout,
	service.KindInternal:              http.StatusInternalServerError,
}

// writeError maps a service error to its status and JSON envelope. Failures
// the caller cannot act on are logged in full and described generically.
func writeError(w http.ResponseWriter, r *http.Request, err error) {
	log := slogx.FromContext(r.Context())

	kind := service.Kind(err)
	status, ok := statusByKind[kind]
	if !ok {
		status = http.StatusInternalServerError
	}

	desc := err.Error()
	switch kind {
	case service.KindInternal:
		log.Error("request failed", slog.Any("error", err))
		desc = "internal error"
	case service.KindDependencyUnavailable:
		log.Error("dependency unavailable", slog.Any("error", err))
		desc = "a backing service is unavailable, try again later"
	case service.KindRenderTimeout:
		log.Warn("render timed out", slog.Any("error", err))
	}

	httpx.WriteJSON(w, status, disclosuresdk.ErrorResponse{
		Error:            string(kind),
		ErrorDescription: desc,
	})
}

// writeBadRequest reports a malformed request that never reached a service.
func writeBadRequest(w http.ResponseWriter, desc string) {
	httpx.WriteJSON(w, http.StatusBadRequest, disclosuresdk.ErrorResponse{
		Error:            string(service.KindValidation),
		ErrorDescription: desc,
	})
}

// identityFromRequest returns the caller placed on the context by
// httpx.AuthnMiddleware.
func identityFromRequest(r *http.Request) (domain.Identity, error) {
	c, ok := httpx.ClaimsFromContext(r.Context())
	if !ok || c.Subject == "" {
		return domain.Identity{}, service.ErrUnauthenticated
	}
	return domain.Identity{
		Subject: c.Subject,
		Email:   c.Email,
		Name:    c.Name,
		Roles:   c.Roles,
		OrgID:   c.OrgID,
	}, nil
}
