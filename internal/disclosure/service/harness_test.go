package service

import (
	"bytes"
	"context"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/aussiebroadwan/disclosure/internal/disclosure/blob"
	"github.com/aussiebroadwan/disclosure/internal/disclosure/checklist"
	"github.com/aussiebroadwan/disclosure/internal/disclosure/domain"
	"github.com/aussiebroadwan/disclosure/internal/disclosure/mail"
	"github.com/aussiebroadwan/disclosure/internal/disclosure/render"
	"github.com/aussiebroadwan/disclosure/internal/disclosure/store/drivers/sqlite"
	"github.com/aussiebroadwan/disclosure/pkg/idx"
	"github.com/aussiebroadwan/disclosure/pkg/slogx"
)

var pdfBytes = []byte("%PDF-1.4\n1 0 obj\n<<>>\nendobj\ntrailer\n<<>>\n%%EOF\n")

// testClock advances one second per reading so generated keys never collide.
type testClock struct {
	mu sync.Mutex
	t  time.Time
}

func (c *testClock) Now() time.Time {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.t = c.t.Add(time.Second)
	return c.t
}

func (c *testClock) Advance(d time.Duration) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.t = c.t.Add(d)
}

type stubRenderer struct {
	fn func(ctx context.Context, markup []byte) (render.Result, error)
}

func (r *stubRenderer) Render(ctx context.Context, markup []byte) (render.Result, error) {
	if r.fn != nil {
		return r.fn(ctx, markup)
	}
	return render.HTMLRenderer{}.Render(ctx, markup)
}

type stubMailer struct {
	mu   sync.Mutex
	err  error
	sent []mail.Invitation
}

func (m *stubMailer) SendInvite(_ context.Context, inv mail.Invitation) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.err != nil {
		return m.err
	}
	m.sent = append(m.sent, inv)
	return nil
}

type harness struct {
	store    *sqlite.Store
	blob     *blob.Memory
	renderer *stubRenderer
	mailer   *stubMailer
	clock    *testClock
	org      domain.Org

	access    *AccessService
	props     *PropertyService
	docs      *DocumentService
	invites   *InviteService
	artifacts *ArtifactService
	deletion  *DeletionService
	dashboard *DashboardService
}

func newHarness(t *testing.T) *harness {
	t.Helper()

	st, err := sqlite.NewStore(":memory:")
	require.NoError(t, err)
	require.NoError(t, st.ApplyMigrations())
	t.Cleanup(func() { _ = st.Close() })

	clk := &testClock{t: time.Date(2025, 3, 1, 9, 0, 0, 0, time.UTC)}
	org := domain.Org{ID: idx.NewAt(clk.t).String(), Name: "Acme Realty", CreatedAt: clk.t}
	require.NoError(t, st.Orgs().CreateOrg(context.Background(), org))

	h := &harness{
		store:    st,
		blob:     blob.NewMemory(),
		renderer: &stubRenderer{},
		mailer:   &stubMailer{},
		clock:    clk,
		org:      org,
	}
	rules := checklist.Default()

	h.access = &AccessService{Store: st, Now: clk.Now}
	h.props = &PropertyService{Store: st, Access: h.access, Rules: rules, Now: clk.Now}
	h.docs = &DocumentService{Store: st, Access: h.access, Blob: h.blob, Now: clk.Now}
	h.invites = &InviteService{
		Store: st, Access: h.access, Mailer: h.mailer,
		Origin: "https://disclosure.test/", Now: clk.Now,
	}
	h.artifacts = &ArtifactService{
		Store: st, Access: h.access, Blob: h.blob, Renderer: h.renderer,
		Rules: rules, RenderTimeout: time.Second, Now: clk.Now,
	}
	h.deletion = &DeletionService{Store: st, Access: h.access, Blob: h.blob, Now: clk.Now}
	h.dashboard = &DashboardService{Store: st, Access: h.access, Rules: rules}
	return h
}

func (h *harness) ctx() context.Context {
	return slogx.WithContext(context.Background(), slogx.Discard())
}

// identity returns a claim for a user of the harness org. The user is
// created on first use.
func (h *harness) identity(name string, roles ...string) domain.Identity {
	return domain.Identity{
		Subject: "sub-" + name,
		Email:   name + "@acme.test",
		Name:    name,
		Roles:   roles,
		OrgID:   h.org.ID,
	}
}

// otherOrgIdentity returns a claim in a freshly created org.
func (h *harness) otherOrgIdentity(t *testing.T, name string, roles ...string) domain.Identity {
	t.Helper()
	org := domain.Org{ID: idx.New().String(), Name: "Other Realty", CreatedAt: h.clock.Now()}
	require.NoError(t, h.store.Orgs().CreateOrg(context.Background(), org))
	id := h.identity(name, roles...)
	id.OrgID = org.ID
	return id
}

func (h *harness) ensure(t *testing.T, id domain.Identity) domain.User {
	t.Helper()
	u, err := h.access.EnsureUser(h.ctx(), id)
	require.NoError(t, err)
	return u
}

func (h *harness) createProperty(t *testing.T, by domain.Identity, typ string) domain.Property {
	t.Helper()
	p, err := h.props.Create(h.ctx(), by, CreatePropertyInput{
		Title:   "12 Wattle St",
		Address: "12 Wattle St, Brisbane QLD",
		Type:    typ,
	})
	require.NoError(t, err)
	return p
}

func (h *harness) upload(t *testing.T, by domain.Identity, propertyID, kind, filename string) domain.Document {
	t.Helper()
	d, err := h.docs.Upload(h.ctx(), by, propertyID, UploadInput{
		Kind:        kind,
		Filename:    filename,
		ContentType: "application/pdf",
		Body:        bytes.NewReader(pdfBytes),
	})
	require.NoError(t, err)
	return d
}
