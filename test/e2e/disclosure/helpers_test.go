package disclosure_test

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"net"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/aussiebroadwan/disclosure/internal/disclosure/app"
	"github.com/aussiebroadwan/disclosure/internal/disclosure/domain"
	"github.com/aussiebroadwan/disclosure/internal/disclosure/store/drivers/sqlite"
	"github.com/aussiebroadwan/disclosure/pkg/cryptox"
	"github.com/aussiebroadwan/disclosure/pkg/disclosuresdk"
	"github.com/aussiebroadwan/disclosure/pkg/idx"
	"github.com/aussiebroadwan/disclosure/pkg/jwtx"
)

/*
 * Helpers for the disclosure service end-to-end tests. Each test boots the
 * full application on a loopback listener with its own database file, a
 * freshly generated identity key and the in-memory object store, then talks
 * to it through the SDK.
 */

const (
	testIssuer   = "https://id.e2e.test"
	testAudience = "disclosure"
)

var pdfBytes = []byte("%PDF-1.4\n1 0 obj\n<<>>\nendobj\ntrailer\n<<>>\n%%EOF\n")

type service struct {
	client *disclosuresdk.SDKClient
	signer jwtx.Signer
	dsn    string
}

// startService boots the application. opts may adjust the config first.
func startService(t *testing.T, opts ...func(*app.Config)) *service {
	t.Helper()
	dir := t.TempDir()

	key, err := cryptox.GenerateSigningKey()
	require.NoError(t, err)
	signer, err := jwtx.NewSignerEdDSA(key.KeyID, key.PrivatePEM)
	require.NoError(t, err)

	jwks, err := json.Marshal(jwtx.JWKS{Keys: []jwtx.JWK{
		jwtx.NewEd25519JWK(key.KeyID, "sig", "EdDSA", key.Public),
	}})
	require.NoError(t, err)
	jwksPath := filepath.Join(dir, "jwks.json")
	require.NoError(t, os.WriteFile(jwksPath, jwks, 0o600))

	ln, err := net.Listen("tcp", "127.0.0.1:0")
	require.NoError(t, err)
	baseURL := "http://" + ln.Addr().String()

	cfg := app.Config{
		Env:                  "test",
		LogLevel:             "error",
		LogFormat:            "json",
		AppOrigin:            baseURL,
		ShutdownTimeout:      5 * time.Second,
		DatabaseDSN:          "file:" + filepath.Join(dir, "disclosure.db") + "?_pragma=journal_mode(WAL)",
		JWTIssuer:            testIssuer,
		JWTAudience:          []string{testAudience},
		JWKSFile:             jwksPath,
		RenderTimeout:        10 * time.Second,
		InviteTTL:            time.Hour,
		UploadMaxBytes:       1 << 20,
		DeleteBatchSize:      1000,
		HousekeepingInterval: time.Hour,
	}
	for _, opt := range opts {
		opt(&cfg)
	}
	require.NoError(t, cfg.Validate())

	a, err := app.New(t.Context(), cfg)
	require.NoError(t, err)
	serverErrors := a.Start(ln)
	t.Cleanup(func() {
		require.NoError(t, a.Shutdown())
		require.NoError(t, <-serverErrors)
	})

	return &service{
		client: disclosuresdk.NewSDKClient(baseURL),
		signer: signer,
		dsn:    cfg.DatabaseDSN,
	}
}

// createOrg inserts an organisation the way disclosurectl does.
func (s *service) createOrg(t *testing.T, name string) string {
	t.Helper()
	st, err := sqlite.NewStore(s.dsn)
	require.NoError(t, err)
	defer st.Close()

	org := domain.Org{ID: idx.New().String(), Name: name, CreatedAt: time.Now().UTC()}
	require.NoError(t, st.Orgs().CreateOrg(context.Background(), org))
	return org.ID
}

// login signs an identity token and returns a session for it.
func (s *service) login(t *testing.T, orgID, subject, email string, roles ...string) *disclosuresdk.Session {
	t.Helper()
	token, err := s.signer.Sign(jwtx.NewIdentityClaims(jwtx.IdentityParams{
		Subject:  subject,
		Email:    email,
		Name:     subject,
		Roles:    roles,
		OrgID:    orgID,
		Issuer:   testIssuer,
		Audience: []string{testAudience},
	}, time.Now()))
	require.NoError(t, err)
	return s.client.NewSession(token)
}

// requireAPIError asserts err is an APIError with the given code and status.
func requireAPIError(t *testing.T, err error, status int, code string) {
	t.Helper()
	require.Error(t, err)
	var apiErr *disclosuresdk.APIError
	require.ErrorAs(t, err, &apiErr)
	require.Equal(t, status, apiErr.StatusCode, apiErr.Description)
	require.Equal(t, code, apiErr.Code)
}

func readAll(t *testing.T, d *disclosuresdk.Download) []byte {
	t.Helper()
	defer d.Body.Close()
	data, err := io.ReadAll(d.Body)
	require.NoError(t, err)
	return data
}

func uploadPDF(t *testing.T, s *disclosuresdk.Session, propertyID, kind string) *disclosuresdk.Document {
	t.Helper()
	doc, err := s.UploadDocument(t.Context(), propertyID, kind, kind+".pdf", "application/pdf", bytes.NewReader(pdfBytes))
	require.NoError(t, err)
	return doc
}

func checklistState(items []disclosuresdk.ChecklistItem) map[string]bool {
	out := make(map[string]bool, len(items))
	for _, it := range items {
		out[it.ID] = it.Complete
	}
	return out
}
