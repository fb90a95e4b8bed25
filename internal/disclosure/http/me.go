package http

import (
	"net/http"

	"github.com/aussiebroadwan/disclosure/internal/disclosure/service"
	"github.com/aussiebroadwan/disclosure/pkg/httpx"
)

type MeHandler struct {
	AccessService *service.AccessService
}

// ServeHTTP godoc
//
//	@Summary		Current User
//	@Description	Returns the caller's user record, creating it on first sight of the identity.
//	@Tags			Users
//	@Produce		json
//	@Success		200	{object}	disclosuresdk.User
//	@Failure		401	{object}	disclosuresdk.ErrorResponse	"error, error_description"
//	@Failure		403	{object}	disclosuresdk.ErrorResponse	"error, error_description"
//	@Security		BearerAuth
//	@Router			/v1/me [get].
func (h *MeHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	id, err := identityFromRequest(r)
	if err != nil {
		writeError(w, r, err)
		return
	}

	u, err := h.AccessService.EnsureUser(r.Context(), id)
	if err != nil {
		writeError(w, r, err)
		return
	}
	httpx.WriteJSON(w, http.StatusOK, toUser(u))
}
