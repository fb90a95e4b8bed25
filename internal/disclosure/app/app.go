package app

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/aussiebroadwan/disclosure/internal/disclosure/blob"
	"github.com/aussiebroadwan/disclosure/internal/disclosure/checklist"
	httpapi "github.com/aussiebroadwan/disclosure/internal/disclosure/http"
	"github.com/aussiebroadwan/disclosure/internal/disclosure/mail"
	"github.com/aussiebroadwan/disclosure/internal/disclosure/render"
	"github.com/aussiebroadwan/disclosure/internal/disclosure/service"
	"github.com/aussiebroadwan/disclosure/internal/disclosure/store"
	"github.com/aussiebroadwan/disclosure/internal/disclosure/store/drivers/sqlite"
	"github.com/aussiebroadwan/disclosure/pkg/jwtx"
	"github.com/aussiebroadwan/disclosure/pkg/otelx"
	"github.com/aussiebroadwan/disclosure/pkg/slogx"
)

// BuildVersion is overridden at build time via -ldflags.
var BuildVersion = "v0.1.0"

var setupTracing = otelx.Setup

// Application encapsulates the disclosure service with all its dependencies.
type Application struct {
	cfg    Config
	logger *slog.Logger

	// Core dependencies
	db        store.Store
	closeDB   func() error
	blob      blob.Gateway
	renderer  render.Renderer
	mailer    mail.Mailer
	rules     checklist.RuleSets
	keys      *jwtx.KeySet
	keySource *jwtx.Source
	verifier  *jwtx.Verifier

	shutdownTracing func(context.Context) error

	// Services
	accessService       *service.AccessService
	propertyService     *service.PropertyService
	documentService     *service.DocumentService
	artifactService     *service.ArtifactService
	inviteService       *service.InviteService
	deletionService     *service.DeletionService
	dashboardService    *service.DashboardService
	housekeepingService *service.HousekeepingService

	// HTTP server
	server *http.Server
	router *httpapi.Router
}

// New creates an Application with every dependency initialized. Shared
// clients are built once here and handed to the services.
func New(ctx context.Context, cfg Config) (*Application, error) {
	app := &Application{
		cfg: cfg,
		logger: slogx.New(slogx.Config{
			Service: "disclosure",
			Version: BuildVersion,
			Env:     cfg.Env,
			Level:   cfg.LogLevel,
			Format:  cfg.LogFormat,
		}),
	}

	shutdownTracing, err := setupTracing(ctx, otelx.Config{
		ServiceName:    "disclosure",
		ServiceVersion: BuildVersion,
		Endpoint:       cfg.OTLPEndpoint,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to initialize tracing: %w", err)
	}
	app.shutdownTracing = shutdownTracing

	if err := app.initDependencies(ctx); err != nil {
		app.abort(ctx)
		return nil, err
	}

	app.initServices()
	app.initHTTP()

	return app, nil
}

// Start launches the housekeeping worker and serves on ln. The returned
// channel yields the server's exit error, if any.
func (app *Application) Start(ln net.Listener) <-chan error {
	app.housekeepingService.Start()

	app.logger.Info("disclosure service starting", "addr", ln.Addr().String(), "version", BuildVersion)

	serverErrors := make(chan error, 1)
	go func() {
		if err := app.server.Serve(ln); err != nil && !errors.Is(err, http.ErrServerClosed) {
			serverErrors <- err
		}
		close(serverErrors)
	}()
	return serverErrors
}

// Run starts the application and blocks until shutdown is requested.
func (app *Application) Run() error {
	ln, err := net.Listen("tcp", app.cfg.HTTPAddr)
	if err != nil {
		_ = app.closeDB()
		return fmt.Errorf("listen on %s: %w", app.cfg.HTTPAddr, err)
	}
	serverErrors := app.Start(ln)

	shutdown := make(chan os.Signal, 1)
	signal.Notify(shutdown, os.Interrupt, syscall.SIGTERM)

	select {
	case err := <-serverErrors:
		app.housekeepingService.Stop()
		_ = app.closeDB()
		if err != nil {
			return fmt.Errorf("server failed: %w", err)
		}
	case sig := <-shutdown:
		app.logger.Info("shutdown signal received", "signal", sig)

		if err := app.Shutdown(); err != nil {
			return fmt.Errorf("graceful shutdown failed: %w", err)
		}
	}

	return nil
}

// Shutdown drains requests, stops background work, flushes traces and
// closes the database, in that order.
func (app *Application) Shutdown() error {
	app.logger.Info("shutting down disclosure service...")

	ctx, cancel := context.WithTimeout(context.Background(), app.cfg.ShutdownTimeout)
	defer cancel()

	// 1. Stop accepting requests and wait for in-flight ones
	if err := app.server.Shutdown(ctx); err != nil {
		app.logger.Error("graceful server shutdown failed", "error", err)
		if err := app.server.Close(); err != nil {
			app.logger.Error("error closing server", "error", err)
		}
	}

	// 2. Stop the housekeeping worker
	app.housekeepingService.Stop()

	// 3. Flush pending spans
	if err := app.shutdownTracing(ctx); err != nil {
		app.logger.Error("error flushing traces", "error", err)
	}

	// 4. Close the database
	if err := app.closeDB(); err != nil {
		app.logger.Error("error closing database", "error", err)
		return err
	}

	app.logger.Info("disclosure service stopped")
	return nil
}

func (app *Application) initDependencies(ctx context.Context) error {
	if err := app.initDatabase(); err != nil {
		return err
	}
	if err := app.initBlob(ctx); err != nil {
		return err
	}
	if err := app.initIdentity(ctx); err != nil {
		return err
	}
	return app.initDomain()
}

// abort releases whatever New acquired before a step failed.
func (app *Application) abort(ctx context.Context) {
	if app.closeDB != nil {
		if err := app.closeDB(); err != nil {
			app.logger.Error("error closing database", "error", err)
		}
	}
	if err := app.shutdownTracing(ctx); err != nil {
		app.logger.Error("error flushing traces", "error", err)
	}
}

// initDatabase opens the store and applies migrations.
func (app *Application) initDatabase() error {
	db, err := sqlite.NewStore(app.cfg.DatabaseDSN)
	if err != nil {
		return fmt.Errorf("failed to initialize database: %w", err)
	}
	app.db, app.closeDB = db, db.Close

	if err := db.ApplyMigrations(); err != nil {
		return fmt.Errorf("failed to apply database migrations: %w", err)
	}

	app.logger.Info("database migrations applied successfully")
	return nil
}

// initBlob connects the object store and makes sure the bucket exists.
func (app *Application) initBlob(ctx context.Context) error {
	if app.cfg.S3Endpoint == "" {
		app.logger.Warn("S3_ENDPOINT not set, using in-memory object store")
		app.blob = blob.NewMemory()
		return nil
	}

	s3, err := blob.NewS3(blob.S3Config{
		Endpoint:  app.cfg.S3Endpoint,
		AccessKey: app.cfg.S3AccessKey,
		SecretKey: app.cfg.S3SecretKey,
		Bucket:    app.cfg.S3Bucket,
		Region:    app.cfg.S3Region,
		UseSSL:    app.cfg.S3UseSSL,
	})
	if err != nil {
		return fmt.Errorf("failed to initialize object store: %w", err)
	}

	ctx, cancel := context.WithTimeout(ctx, 30*time.Second)
	defer cancel()
	if err := s3.EnsureBucket(ctx); err != nil {
		return fmt.Errorf("failed to ensure bucket %q: %w", app.cfg.S3Bucket, err)
	}

	app.blob = s3
	app.logger.Info("object store ready", "endpoint", app.cfg.S3Endpoint, "bucket", app.cfg.S3Bucket)
	return nil
}

// initIdentity loads the identity provider's verification keys.
func (app *Application) initIdentity(ctx context.Context) error {
	app.keys = jwtx.NewKeySet()

	src, err := jwtx.NewSource(app.cfg.JWKSFile, app.cfg.JWKSURL, app.keys)
	if err != nil {
		return fmt.Errorf("failed to configure JWKS source: %w", err)
	}
	if err := src.Refresh(ctx); err != nil {
		return fmt.Errorf("failed to load JWKS: %w", err)
	}
	app.keySource = src

	app.verifier = jwtx.NewVerifier(app.keys, jwtx.VerifyOptions{
		Issuer:   app.cfg.JWTIssuer,
		Audience: app.cfg.JWTAudience,
		Leeway:   30 * time.Second,
	})

	app.logger.Info("identity keys loaded", "keys", app.keys.Len())
	return nil
}

// initDomain builds the renderer, mailer and checklist rules.
func (app *Application) initDomain() error {
	if app.cfg.RendererURL != "" {
		app.renderer = render.NewGotenbergRenderer(app.cfg.RendererURL)
	} else {
		app.logger.Warn("RENDERER_URL not set, Form 2 will be stored as HTML")
		app.renderer = render.HTMLRenderer{}
	}

	if app.cfg.SMTPHost != "" {
		m, err := mail.NewSMTPMailer(mail.SMTPConfig{
			Host:     app.cfg.SMTPHost,
			Port:     app.cfg.SMTPPort,
			Username: app.cfg.SMTPUsername,
			Password: app.cfg.SMTPPassword,
			From:     app.cfg.SMTPFrom,
		})
		if err != nil {
			return fmt.Errorf("failed to initialize mailer: %w", err)
		}
		app.mailer = m
	} else {
		app.logger.Warn("SMTP_HOST not set, invite emails will only be logged")
		app.mailer = mail.LogMailer{}
	}

	app.rules = checklist.Default()
	if app.cfg.ChecklistRulesFile != "" {
		rules, err := checklist.Load(app.cfg.ChecklistRulesFile)
		if err != nil {
			return fmt.Errorf("failed to load checklist rules: %w", err)
		}
		app.rules = rules
	}
	return nil
}

// initServices initializes all business logic services.
func (app *Application) initServices() {
	app.accessService = &service.AccessService{Store: app.db}
	app.propertyService = &service.PropertyService{
		Store:  app.db,
		Access: app.accessService,
		Rules:  app.rules,
	}
	app.documentService = &service.DocumentService{
		Store:     app.db,
		Access:    app.accessService,
		Blob:      app.blob,
		MaxBytes:  app.cfg.UploadMaxBytes,
		BatchSize: app.cfg.DeleteBatchSize,
	}
	app.artifactService = &service.ArtifactService{
		Store:         app.db,
		Access:        app.accessService,
		Blob:          app.blob,
		Renderer:      app.renderer,
		Rules:         app.rules,
		RenderTimeout: app.cfg.RenderTimeout,
		BatchSize:     app.cfg.DeleteBatchSize,
	}
	app.inviteService = &service.InviteService{
		Store:  app.db,
		Access: app.accessService,
		Mailer: app.mailer,
		Origin: app.cfg.AppOrigin,
		TTL:    app.cfg.InviteTTL,
	}
	app.deletionService = &service.DeletionService{
		Store:     app.db,
		Access:    app.accessService,
		Blob:      app.blob,
		BatchSize: app.cfg.DeleteBatchSize,
	}
	app.dashboardService = &service.DashboardService{
		Store:  app.db,
		Access: app.accessService,
		Rules:  app.rules,
	}

	// Only a remote JWKS changes underneath us
	var keys service.KeyRefresher
	if app.cfg.JWKSURL != "" && app.cfg.JWKSFile == "" {
		keys = app.keySource
	}
	app.housekeepingService = service.NewHousekeepingService(
		app.db,
		app.blob,
		keys,
		app.logger,
		app.cfg.HousekeepingInterval,
	)
	app.housekeepingService.BatchSize = app.cfg.DeleteBatchSize
}

// initHTTP initializes the HTTP router and server.
func (app *Application) initHTTP() {
	router := httpapi.NewRouter(
		app.verifier,
		app.cfg.RateLimits,
		BuildVersion,
		app.db,
		app.blob,
		app.logger,
	)

	router.AccessService = app.accessService
	router.PropertyService = app.propertyService
	router.DocumentService = app.documentService
	router.ArtifactService = app.artifactService
	router.InviteService = app.inviteService
	router.DeletionService = app.deletionService
	router.DashboardService = app.dashboardService
	router.ApplyRoutes()

	app.router = router

	app.server = &http.Server{
		Addr:              app.cfg.HTTPAddr,
		Handler:           router,
		ReadHeaderTimeout: 5 * time.Second,
	}
}
