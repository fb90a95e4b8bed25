package http

import (
	"context"
	"net/http"
	"time"

	"github.com/aussiebroadwan/disclosure/internal/disclosure/blob"
	"github.com/aussiebroadwan/disclosure/internal/disclosure/store"
	"github.com/aussiebroadwan/disclosure/pkg/disclosuresdk"
	"github.com/aussiebroadwan/disclosure/pkg/httpx"
)

const readyzTimeout = 3 * time.Second

// ReadyzHandler godoc
//
//	@Summary		Readiness Check Endpoint
//	@Description	Readiness probe endpoint returning service health status and checks for critical dependencies
//	@Description	Includes uptime, version, and status of the database and object store
//	@Tags			Health
//	@Produce		json
//	@Success		200	{object}	disclosuresdk.HealthResponse	"status, uptime, version, checks"
//	@Failure		503	{object}	disclosuresdk.HealthResponse	"status, uptime, version, checks - service not ready"
//	@Router			/readyz [get].
func ReadyzHandler(
	startTime time.Time,
	version string,
	st store.Store,
	gw blob.Gateway,
) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx, cancel := context.WithTimeout(r.Context(), readyzTimeout)
		defer cancel()

		checks := &disclosuresdk.HealthChecks{
			Database:    "ok",
			ObjectStore: "ok",
		}
		overallStatus := "ok"
		statusCode := http.StatusOK

		// Check database connectivity
		if err := st.Ping(ctx); err != nil {
			checks.Database = "error: " + err.Error()
			overallStatus = "degraded"
			statusCode = http.StatusServiceUnavailable
		}

		// Check the bucket is reachable
		if err := gw.Ping(ctx); err != nil {
			checks.ObjectStore = "error: " + err.Error()
			overallStatus = "degraded"
			statusCode = http.StatusServiceUnavailable
		}

		response := disclosuresdk.HealthResponse{
			Status:  overallStatus,
			Uptime:  time.Since(startTime).String(),
			Version: version,
			Checks:  checks,
		}
		httpx.WriteJSON(w, statusCode, response)
	}
}
