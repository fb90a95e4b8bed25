package http

import (
	"log/slog"
	"net/http"
	"time"

	"go.opentelemetry.io/contrib/instrumentation/net/http/otelhttp"

	"github.com/aussiebroadwan/disclosure/internal/disclosure/blob"
	"github.com/aussiebroadwan/disclosure/internal/disclosure/service"
	"github.com/aussiebroadwan/disclosure/internal/disclosure/store"
	"github.com/aussiebroadwan/disclosure/pkg/httpx"
	"github.com/aussiebroadwan/disclosure/pkg/slogx"

	_ "github.com/aussiebroadwan/disclosure/api/disclosure" // Swagger docs
	httpSwagger "github.com/swaggo/http-swagger"
)

// SessionCookie is the cookie browsers may carry the identity token in.
const SessionCookie = "disclosure_session"

// Router holds shared dependencies for HTTP handlers.
type Router struct {
	Mux         *http.ServeMux
	middlewares []httpx.Middleware
	handler     http.Handler

	verifier     httpx.TokenVerifier
	limits       httpx.RateLimits
	buildVersion string
	startTime    time.Time
	logger       *slog.Logger

	store store.Store
	blob  blob.Gateway

	AccessService    *service.AccessService
	PropertyService  *service.PropertyService
	DocumentService  *service.DocumentService
	ArtifactService  *service.ArtifactService
	InviteService    *service.InviteService
	DeletionService  *service.DeletionService
	DashboardService *service.DashboardService
}

func NewRouter(
	verifier httpx.TokenVerifier,
	limits httpx.RateLimits,
	buildVersion string,
	st store.Store,
	gw blob.Gateway,
	logger *slog.Logger,
) *Router {
	r := &Router{
		Mux:          http.NewServeMux(),
		verifier:     verifier,
		limits:       limits,
		buildVersion: buildVersion,
		startTime:    time.Now(),
		store:        st,
		blob:         gw,
		logger:       logger,
	}

	// otelhttp runs outermost so the request logger can pick up the trace id
	r.middlewares = []httpx.Middleware{
		func(next http.Handler) http.Handler {
			return otelhttp.NewHandler(next, "disclosure")
		},
		slogx.HTTPMiddleware(r.logger),
	}

	return r
}

// ApplyRoutes registers every route and freezes the middleware chain. It must
// be called once the services are set and before the router serves traffic.
func (r *Router) ApplyRoutes() {
	r.registerSystem()
	r.registerMe()
	r.registerProperties()
	r.registerDocuments()
	r.registerArtifacts()
	r.registerInvites()
	r.registerDashboard()

	r.Mux.Handle("/swagger/", httpSwagger.Handler())

	r.handler = httpx.Chain(r.Mux, r.middlewares...)
}

// ServeHTTP implements http.Handler for Router and applies the global middleware chain.
//
//	@title			Disclosure Service API
//	@version		0.1.0
//	@description	Seller disclosure workflow for real estate agencies: properties, supporting documents, Form 2 generation, serve packs and invites.
//	@description
//	@description				Requests are authenticated with an identity token issued by the agency's identity provider.
//
//	@contact.name				AussieBroadWAN Team
//	@contact.url				https://github.com/aussiebroadwan/disclosure
//
//	@license.name				MIT
//	@license.url				https://opensource.org/licenses/MIT
//
//	@host						localhost:8080
//	@BasePath					/
//
//	@schemes					http https
//
//	@securityDefinitions.apikey	BearerAuth
//	@in							header
//	@name						Authorization
//	@description				Identity token. Format: "Bearer {token}".
func (r *Router) ServeHTTP(w http.ResponseWriter, req *http.Request) {
	r.handler.ServeHTTP(w, req)
}

// secured requires an identity and rate limits per subject.
func (r *Router) secured(h http.Handler, limit httpx.RateLimitConfig) http.Handler {
	return httpx.Chain(h,
		httpx.AuthnMiddleware(r.verifier, SessionCookie),
		httpx.RateLimitBySubject(limit),
	)
}

func (r *Router) registerSystem() {
	r.Mux.Handle("GET /livez",
		httpx.Chain(LivezHandler(r.startTime, r.buildVersion),
			httpx.RateLimitByIP(r.limits.Public),
		),
	)
	r.Mux.Handle("GET /readyz",
		httpx.Chain(ReadyzHandler(r.startTime, r.buildVersion, r.store, r.blob),
			httpx.RateLimitByIP(r.limits.Public),
		),
	)
}

func (r *Router) registerMe() {
	h := &MeHandler{AccessService: r.AccessService}
	r.Mux.Handle("GET /v1/me", r.secured(h, r.limits.Read))
}

func (r *Router) registerProperties() {
	h := &PropertiesHandler{
		PropertyService: r.PropertyService,
		DeletionService: r.DeletionService,
	}

	r.Mux.Handle("GET /v1/properties", r.secured(http.HandlerFunc(h.HandleList), r.limits.Read))
	r.Mux.Handle("POST /v1/properties", r.secured(http.HandlerFunc(h.HandleCreate), r.limits.Write))
	r.Mux.Handle("GET /v1/properties/{id}", r.secured(http.HandlerFunc(h.HandleGet), r.limits.Read))
	r.Mux.Handle("PATCH /v1/properties/{id}", r.secured(http.HandlerFunc(h.HandleUpdate), r.limits.Write))
	r.Mux.Handle("DELETE /v1/properties/{id}", r.secured(http.HandlerFunc(h.HandleDelete), r.limits.Write))
	r.Mux.Handle("POST /v1/properties/{id}/assign-agent", r.secured(http.HandlerFunc(h.HandleAssignAgent), r.limits.Write))
	r.Mux.Handle("GET /v1/properties/{id}/checklist", r.secured(http.HandlerFunc(h.HandleChecklist), r.limits.Read))
}

func (r *Router) registerDocuments() {
	h := &DocumentsHandler{DocumentService: r.DocumentService}

	// Uploads share the heavy profile with artifact generation
	r.Mux.Handle("POST /v1/properties/{id}/documents", r.secured(http.HandlerFunc(h.HandleUpload), r.limits.Heavy))
	r.Mux.Handle("GET /v1/properties/{id}/documents", r.secured(http.HandlerFunc(h.HandleList), r.limits.Read))
	r.Mux.Handle("GET /v1/documents/{id}/download", r.secured(http.HandlerFunc(h.HandleDownload), r.limits.Read))
	r.Mux.Handle("DELETE /v1/documents/{id}", r.secured(http.HandlerFunc(h.HandleDelete), r.limits.Write))
}

func (r *Router) registerArtifacts() {
	h := &ArtifactsHandler{ArtifactService: r.ArtifactService}

	r.Mux.Handle("POST /v1/properties/{id}/form2", r.secured(http.HandlerFunc(h.HandleBuildForm2), r.limits.Heavy))
	r.Mux.Handle("GET /v1/properties/{id}/form2/latest", r.secured(http.HandlerFunc(h.HandleLatestForm2), r.limits.Read))
	r.Mux.Handle("GET /v1/properties/{id}/form2/latest/download", r.secured(http.HandlerFunc(h.HandleDownloadForm2), r.limits.Read))

	r.Mux.Handle("POST /v1/properties/{id}/serve-pack", r.secured(http.HandlerFunc(h.HandleBuildServePack), r.limits.Heavy))
	r.Mux.Handle("GET /v1/properties/{id}/serve-pack/latest", r.secured(http.HandlerFunc(h.HandleLatestServePack), r.limits.Read))
	r.Mux.Handle("GET /v1/properties/{id}/serve-pack/latest/download", r.secured(http.HandlerFunc(h.HandleDownloadServePack), r.limits.Read))
}

func (r *Router) registerInvites() {
	h := &InvitesHandler{InviteService: r.InviteService}

	r.Mux.Handle("POST /v1/properties/{id}/invites", r.secured(http.HandlerFunc(h.HandleIssue), r.limits.Write))
	r.Mux.Handle("POST /v1/invites/{token}/accept", r.secured(http.HandlerFunc(h.HandleAccept), r.limits.Write))

	// Inspect is public; the token itself is the credential
	r.Mux.Handle("GET /v1/invites/{token}",
		httpx.Chain(http.HandlerFunc(h.HandleInspect),
			httpx.RateLimitByIP(r.limits.Public),
		),
	)
}

func (r *Router) registerDashboard() {
	h := &DashboardHandler{DashboardService: r.DashboardService}
	r.Mux.Handle("GET /v1/dashboard/summary", r.secured(h, r.limits.Read))
}
