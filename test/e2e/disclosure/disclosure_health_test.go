package disclosure_test

import (
	"net/http"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/aussiebroadwan/disclosure/pkg/disclosuresdk"
)

func TestHealthEndpoints(t *testing.T) {
	svc := startService(t)

	health, err := svc.client.GetLiveness(t.Context())
	require.NoError(t, err)
	require.Equal(t, "ok", health.Status)

	health, err = svc.client.GetReadiness(t.Context())
	require.NoError(t, err)
	require.Equal(t, "ok", health.Status)
	require.Equal(t, "ok", health.Checks.Database)
	require.Equal(t, "ok", health.Checks.ObjectStore)
}

func TestIdentityRequired(t *testing.T) {
	svc := startService(t)
	orgID := svc.createOrg(t, "Acme Realty")

	_, err := svc.client.NewSession("not-a-jwt").Me(t.Context())
	requireAPIError(t, err, http.StatusUnauthorized, disclosuresdk.ErrorCodeUnauthenticated)

	// A token from another issuer's key is rejected
	other := startService(t)
	_, err = svc.client.NewSession(other.login(t, orgID, "sub-x", "x@acme.test", "Agent").Token()).Me(t.Context())
	requireAPIError(t, err, http.StatusUnauthorized, disclosuresdk.ErrorCodeUnauthenticated)

	// Signed but without an org, for a subject never seen before
	_, err = svc.login(t, "", "sub-y", "y@acme.test", "Agent").Me(t.Context())
	requireAPIError(t, err, http.StatusForbidden, disclosuresdk.ErrorCodeMissingOrgContext)

	me, err := svc.login(t, orgID, "sub-agent", "agent@acme.test", "Agent").Me(t.Context())
	require.NoError(t, err)
	require.Equal(t, orgID, me.OrgID)
	require.Equal(t, []string{"Agent"}, me.Roles)
}
