package http

import (
	"net/http"

	"github.com/aussiebroadwan/disclosure/internal/disclosure/service"
	"github.com/aussiebroadwan/disclosure/pkg/httpx"
)

type DashboardHandler struct {
	DashboardService *service.DashboardService
}

// ServeHTTP godoc
//
//	@Summary		Dashboard Summary
//	@Description	Checklist progress for every property visible to the caller, with totals.
//	@Tags			Dashboard
//	@Produce		json
//	@Success		200	{object}	disclosuresdk.DashboardSummary
//	@Failure		401	{object}	disclosuresdk.ErrorResponse	"error, error_description"
//	@Failure		403	{object}	disclosuresdk.ErrorResponse	"error, error_description"
//	@Security		BearerAuth
//	@Router			/v1/dashboard/summary [get].
func (h *DashboardHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	id, err := identityFromRequest(r)
	if err != nil {
		writeError(w, r, err)
		return
	}

	sum, err := h.DashboardService.Summary(r.Context(), id)
	if err != nil {
		writeError(w, r, err)
		return
	}
	httpx.WriteJSON(w, http.StatusOK, toSummary(sum))
}
