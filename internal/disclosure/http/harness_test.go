package http

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"net/textproto"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/aussiebroadwan/disclosure/internal/disclosure/blob"
	"github.com/aussiebroadwan/disclosure/internal/disclosure/checklist"
	"github.com/aussiebroadwan/disclosure/internal/disclosure/domain"
	"github.com/aussiebroadwan/disclosure/internal/disclosure/mail"
	"github.com/aussiebroadwan/disclosure/internal/disclosure/render"
	"github.com/aussiebroadwan/disclosure/internal/disclosure/service"
	"github.com/aussiebroadwan/disclosure/internal/disclosure/store/drivers/sqlite"
	"github.com/aussiebroadwan/disclosure/pkg/disclosuresdk"
	"github.com/aussiebroadwan/disclosure/pkg/httpx"
	"github.com/aussiebroadwan/disclosure/pkg/idx"
	"github.com/aussiebroadwan/disclosure/pkg/jwtx"
	"github.com/aussiebroadwan/disclosure/pkg/slogx"
)

var pdfBytes = []byte("%PDF-1.4\n1 0 obj\n<<>>\nendobj\ntrailer\n<<>>\n%%EOF\n")

// fakeVerifier accepts the tokens handed out by testServer.login.
type fakeVerifier struct {
	mu     sync.Mutex
	claims map[string]jwtx.Claims
}

func (f *fakeVerifier) Verify(token string) (jwtx.Claims, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	c, ok := f.claims[token]
	if !ok {
		return jwtx.Claims{}, jwtx.ErrInvalidSig
	}
	return c, nil
}

type recordingMailer struct {
	mu   sync.Mutex
	err  error
	sent []mail.Invitation
}

func (m *recordingMailer) SendInvite(_ context.Context, inv mail.Invitation) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.err != nil {
		return m.err
	}
	m.sent = append(m.sent, inv)
	return nil
}

type testServer struct {
	router   *Router
	store    *sqlite.Store
	blob     *blob.Memory
	mailer   *recordingMailer
	verifier *fakeVerifier
	org      domain.Org
	renderFn func(ctx context.Context, markup []byte) (render.Result, error)
}

type funcRenderer struct{ s *testServer }

func (r funcRenderer) Render(ctx context.Context, markup []byte) (render.Result, error) {
	if r.s.renderFn != nil {
		return r.s.renderFn(ctx, markup)
	}
	return render.HTMLRenderer{}.Render(ctx, markup)
}

func newTestServer(t *testing.T, limits httpx.RateLimits) *testServer {
	t.Helper()

	st, err := sqlite.NewStore(":memory:")
	require.NoError(t, err)
	require.NoError(t, st.ApplyMigrations())
	t.Cleanup(func() { _ = st.Close() })

	org := domain.Org{ID: idx.New().String(), Name: "Acme Realty", CreatedAt: time.Now().UTC()}
	require.NoError(t, st.Orgs().CreateOrg(context.Background(), org))

	s := &testServer{
		store:    st,
		blob:     blob.NewMemory(),
		mailer:   &recordingMailer{},
		verifier: &fakeVerifier{claims: map[string]jwtx.Claims{}},
		org:      org,
	}

	// Millisecond storage keys must not collide within one test
	var mu sync.Mutex
	clk := time.Now().UTC()
	now := func() time.Time {
		mu.Lock()
		defer mu.Unlock()
		clk = clk.Add(time.Millisecond)
		return clk
	}

	rules := checklist.Default()
	accessSvc := &service.AccessService{Store: st, Now: now}

	r := NewRouter(s.verifier, limits, "test", st, s.blob, slogx.Discard())
	r.AccessService = accessSvc
	r.PropertyService = &service.PropertyService{Store: st, Access: accessSvc, Rules: rules, Now: now}
	r.DocumentService = &service.DocumentService{Store: st, Access: accessSvc, Blob: s.blob, MaxBytes: 1 << 10, Now: now}
	r.ArtifactService = &service.ArtifactService{
		Store: st, Access: accessSvc, Blob: s.blob, Renderer: funcRenderer{s},
		Rules: rules, RenderTimeout: time.Second, Now: now,
	}
	r.InviteService = &service.InviteService{
		Store: st, Access: accessSvc, Mailer: s.mailer, Origin: "https://disclosure.test", Now: now,
	}
	r.DeletionService = &service.DeletionService{Store: st, Access: accessSvc, Blob: s.blob, Now: now}
	r.DashboardService = &service.DashboardService{Store: st, Access: accessSvc, Rules: rules}
	r.ApplyRoutes()

	s.router = r
	return s
}

// login registers an identity in the harness org and returns its token.
func (s *testServer) login(name string, roles ...string) string {
	return s.loginOrg(s.org.ID, name, roles...)
}

func (s *testServer) loginOrg(orgID, name string, roles ...string) string {
	token := "token-" + name
	s.verifier.mu.Lock()
	defer s.verifier.mu.Unlock()
	s.verifier.claims[token] = jwtx.NewIdentityClaims(jwtx.IdentityParams{
		Subject: "sub-" + name,
		Email:   name + "@acme.test",
		Name:    name,
		Roles:   roles,
		OrgID:   orgID,
	}, time.Now())
	return token
}

func (s *testServer) do(t *testing.T, method, path, token string, body io.Reader, contentType string) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest(method, path, body)
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	if contentType != "" {
		req.Header.Set("Content-Type", contentType)
	}
	rec := httptest.NewRecorder()
	s.router.ServeHTTP(rec, req)
	return rec
}

func (s *testServer) doJSON(t *testing.T, method, path, token string, v any) *httptest.ResponseRecorder {
	t.Helper()
	var body io.Reader
	if v != nil {
		raw, err := json.Marshal(v)
		require.NoError(t, err)
		body = bytes.NewReader(raw)
	}
	return s.do(t, method, path, token, body, "application/json")
}

func (s *testServer) upload(t *testing.T, token, propertyID, kind, filename, contentType string, data []byte) *httptest.ResponseRecorder {
	t.Helper()
	var buf bytes.Buffer
	mw := multipart.NewWriter(&buf)
	if kind != "" {
		require.NoError(t, mw.WriteField("kind", kind))
	}
	h := make(textproto.MIMEHeader)
	h.Set("Content-Disposition", fmt.Sprintf(`form-data; name="file"; filename=%q`, filename))
	h.Set("Content-Type", contentType)
	part, err := mw.CreatePart(h)
	require.NoError(t, err)
	_, err = part.Write(data)
	require.NoError(t, err)
	require.NoError(t, mw.Close())

	return s.do(t, http.MethodPost, "/v1/properties/"+propertyID+"/documents", token, &buf, mw.FormDataContentType())
}

func (s *testServer) createProperty(t *testing.T, token string, req disclosuresdk.CreatePropertyRequest) disclosuresdk.Property {
	t.Helper()
	rec := s.doJSON(t, http.MethodPost, "/v1/properties", token, req)
	require.Equal(t, http.StatusCreated, rec.Code, rec.Body.String())
	return decode[disclosuresdk.Property](t, rec)
}

func decode[T any](t *testing.T, rec *httptest.ResponseRecorder) T {
	t.Helper()
	var v T
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &v), rec.Body.String())
	return v
}

// requireError asserts the status and error kind of a failed request.
func requireError(t *testing.T, rec *httptest.ResponseRecorder, status int, kind string) {
	t.Helper()
	require.Equal(t, status, rec.Code, rec.Body.String())
	body := decode[disclosuresdk.ErrorResponse](t, rec)
	require.Equal(t, kind, body.Error)
}

var errBackend = errors.New("backend down")
