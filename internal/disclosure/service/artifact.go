package service

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"path"
	"strings"
	"time"

	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/trace"

	"github.com/aussiebroadwan/disclosure/internal/disclosure/access"
	"github.com/aussiebroadwan/disclosure/internal/disclosure/archive"
	"github.com/aussiebroadwan/disclosure/internal/disclosure/blob"
	"github.com/aussiebroadwan/disclosure/internal/disclosure/checklist"
	"github.com/aussiebroadwan/disclosure/internal/disclosure/domain"
	"github.com/aussiebroadwan/disclosure/internal/disclosure/render"
	"github.com/aussiebroadwan/disclosure/internal/disclosure/store"
	"github.com/aussiebroadwan/disclosure/pkg/idx"
	"github.com/aussiebroadwan/disclosure/pkg/otelx"
	"github.com/aussiebroadwan/disclosure/pkg/slogx"
)

// DefaultRenderTimeout bounds a single Form 2 render.
const DefaultRenderTimeout = 30 * time.Second

const servePackContentType = "application/zip"

var tracer = otelx.Tracer("github.com/aussiebroadwan/disclosure/internal/disclosure/service")

// ArtifactService produces the versioned Form 2 disclosure document and the
// serve pack bundle. Versions per property are dense and start at 1.
type ArtifactService struct {
	Store         store.Store
	Access        *AccessService
	Blob          blob.Gateway
	Renderer      render.Renderer
	Rules         checklist.RuleSets
	RenderTimeout time.Duration
	BatchSize     int
	Now           func() time.Time

	builds keyedMutex
}

// BuildForm2 renders the property's current checklist and records it as the
// next Form 2 version.
func (s *ArtifactService) BuildForm2(ctx context.Context, id domain.Identity, propertyID string) (v domain.Form2Version, err error) {
	log := slogx.FromContext(ctx)

	ctx, span := tracer.Start(ctx, "ArtifactService.BuildForm2", trace.WithAttributes(attribute.String("property.id", propertyID)))
	defer func() {
		otelx.RecordError(span, err)
		span.End()
	}()

	// 1. Authorize.
	_, p, err := s.Access.Authorize(ctx, id, propertyID, access.ActionGenerate)
	if err != nil {
		return domain.Form2Version{}, err
	}

	// 2. One build per property at a time.
	unlock, err := s.builds.Lock(ctx, p.ID)
	if err != nil {
		return domain.Form2Version{}, err
	}
	defer unlock()

	// 3. Snapshot the checklist.
	view, err := checklistFor(ctx, s.Store, s.Rules, p)
	if err != nil {
		return domain.Form2Version{}, err
	}
	now := clock(s.Now)

	// 4. Render.
	markup, err := render.DisclosureMarkup(render.Form2Input{Property: p, Checklist: view.Items, GeneratedAt: now})
	if err != nil {
		return domain.Form2Version{}, fmt.Errorf("build markup: %w", err)
	}
	res, err := s.render(ctx, markup)
	if err != nil {
		log.Error("form2 render failed", slog.String("property_id", p.ID), slog.Any("error", err))
		return domain.Form2Version{}, err
	}

	v = domain.Form2Version{
		ID:          idx.NewAt(now).String(),
		PropertyID:  p.ID,
		Snapshot:    domain.Form2Snapshot{Checklist: view.Items},
		StorageKey:  fmt.Sprintf("%s/form2/%d.%s", p.ID, now.UnixMilli(), res.Ext),
		ContentType: res.ContentType,
		CreatedAt:   now,
	}

	// 5. Store the rendered file.
	if err := s.put(ctx, v.StorageKey, res.Body, res.ContentType); err != nil {
		return domain.Form2Version{}, err
	}

	// 6. Allocate the version and record it.
	err = s.persist(ctx, v.StorageKey, now, func(tx store.Tx) error {
		latest, err := tx.Form2Versions().MaxVersion(ctx, p.ID)
		if err != nil {
			return fmt.Errorf("max form2 version: %w", err)
		}
		v.Version = latest + 1
		return tx.Form2Versions().CreateForm2Version(ctx, v)
	})
	if err != nil {
		return domain.Form2Version{}, err
	}

	log.Info("form2 generated",
		slog.String("property_id", p.ID),
		slog.Int64("version", v.Version),
		slog.String("content_type", v.ContentType),
	)
	return v, nil
}

// BuildServePack bundles the latest Form 2 with the newest document of each
// required kind and records it as the next serve pack version.
func (s *ArtifactService) BuildServePack(ctx context.Context, id domain.Identity, propertyID string) (sp domain.ServePack, err error) {
	log := slogx.FromContext(ctx)

	ctx, span := tracer.Start(ctx, "ArtifactService.BuildServePack", trace.WithAttributes(attribute.String("property.id", propertyID)))
	defer func() {
		otelx.RecordError(span, err)
		span.End()
	}()

	// 1. Authorize.
	_, p, err := s.Access.Authorize(ctx, id, propertyID, access.ActionGenerate)
	if err != nil {
		return domain.ServePack{}, err
	}

	// 2. One build per property at a time.
	unlock, err := s.builds.Lock(ctx, p.ID)
	if err != nil {
		return domain.ServePack{}, err
	}
	defer unlock()

	// 3. A serve pack always carries a Form 2.
	form2, err := s.Store.Form2Versions().GetLatest(ctx, p.ID)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return domain.ServePack{}, ErrNoDisclosureYet
		}
		return domain.ServePack{}, fmt.Errorf("latest form2: %w", err)
	}

	// 4. Pick the newest document per required kind.
	docs, err := s.Store.Documents().ListByProperty(ctx, p.ID)
	if err != nil {
		return domain.ServePack{}, fmt.Errorf("list documents: %w", err)
	}
	required := s.Rules.RequiredKinds(p.Type)
	picked := newestPerKind(docs, required)

	manifest := domain.ServePackManifest{
		IncludedKinds: required,
		Documents:     make([]domain.ManifestDocument, 0, len(picked)),
		Form2Version:  form2.Version,
	}
	entries := make([]archive.Entry, 0, len(picked)+1)
	for _, d := range picked {
		manifest.Documents = append(manifest.Documents, domain.ManifestDocument{ID: d.ID, Kind: d.Kind, Filename: d.Filename})
		entries = append(entries, s.blobEntry("documents/"+d.Kind+"__"+archive.SafeName(d.Filename), d.StorageKey, d.CreatedAt))
	}
	entries = append(entries, s.blobEntry(Form2Filename(form2), form2.StorageKey, form2.CreatedAt))

	// 5. Build the archive.
	var buf bytes.Buffer
	if err := archive.Write(ctx, &buf, entries); err != nil {
		if ctx.Err() != nil {
			return domain.ServePack{}, ctx.Err()
		}
		log.Error("serve pack archive failed", slog.String("property_id", p.ID), slog.Any("error", err))
		return domain.ServePack{}, fmt.Errorf("%w: build archive: %v", ErrDependencyUnavailable, err)
	}

	now := clock(s.Now)
	sp = domain.ServePack{
		ID:         idx.NewAt(now).String(),
		PropertyID: p.ID,
		Manifest:   manifest,
		StorageKey: fmt.Sprintf("%s/serve/%d.zip", p.ID, now.UnixMilli()),
		CreatedAt:  now,
	}

	// 6. Store the archive.
	if err := s.put(ctx, sp.StorageKey, buf.Bytes(), servePackContentType); err != nil {
		return domain.ServePack{}, err
	}

	// 7. Allocate the version and record it.
	err = s.persist(ctx, sp.StorageKey, now, func(tx store.Tx) error {
		latest, err := tx.ServePacks().MaxVersion(ctx, p.ID)
		if err != nil {
			return fmt.Errorf("max serve pack version: %w", err)
		}
		sp.Version = latest + 1
		return tx.ServePacks().CreateServePack(ctx, sp)
	})
	if err != nil {
		return domain.ServePack{}, err
	}

	log.Info("serve pack generated",
		slog.String("property_id", p.ID),
		slog.Int64("version", sp.Version),
		slog.Int64("form2_version", form2.Version),
		slog.Int("documents", len(picked)),
	)
	return sp, nil
}

// LatestForm2 returns the highest Form 2 version of a property.
func (s *ArtifactService) LatestForm2(ctx context.Context, id domain.Identity, propertyID string) (domain.Form2Version, error) {
	if _, _, err := s.Access.Authorize(ctx, id, propertyID, access.ActionRead); err != nil {
		return domain.Form2Version{}, err
	}
	v, err := s.Store.Form2Versions().GetLatest(ctx, propertyID)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return domain.Form2Version{}, fmt.Errorf("form2: %w", ErrNotFound)
		}
		return domain.Form2Version{}, fmt.Errorf("latest form2: %w", err)
	}
	return v, nil
}

// DownloadForm2 opens the latest Form 2. The caller must close the body.
func (s *ArtifactService) DownloadForm2(ctx context.Context, id domain.Identity, propertyID string) (domain.Form2Version, blob.Object, error) {
	v, err := s.LatestForm2(ctx, id, propertyID)
	if err != nil {
		return domain.Form2Version{}, blob.Object{}, err
	}
	obj, err := openBlob(ctx, s.Blob, v.StorageKey)
	if err != nil {
		return domain.Form2Version{}, blob.Object{}, err
	}
	if v.ContentType != "" {
		obj.ContentType = v.ContentType
	}
	return v, obj, nil
}

// LatestServePack returns the highest serve pack version of a property.
func (s *ArtifactService) LatestServePack(ctx context.Context, id domain.Identity, propertyID string) (domain.ServePack, error) {
	if _, _, err := s.Access.Authorize(ctx, id, propertyID, access.ActionRead); err != nil {
		return domain.ServePack{}, err
	}
	sp, err := s.Store.ServePacks().GetLatest(ctx, propertyID)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return domain.ServePack{}, fmt.Errorf("serve pack: %w", ErrNotFound)
		}
		return domain.ServePack{}, fmt.Errorf("latest serve pack: %w", err)
	}
	return sp, nil
}

// DownloadServePack opens the latest serve pack. The caller must close the
// body.
func (s *ArtifactService) DownloadServePack(ctx context.Context, id domain.Identity, propertyID string) (domain.ServePack, blob.Object, error) {
	sp, err := s.LatestServePack(ctx, id, propertyID)
	if err != nil {
		return domain.ServePack{}, blob.Object{}, err
	}
	obj, err := openBlob(ctx, s.Blob, sp.StorageKey)
	if err != nil {
		return domain.ServePack{}, blob.Object{}, err
	}
	obj.ContentType = servePackContentType
	return sp, obj, nil
}

// Form2Filename is the name a Form 2 version is delivered under.
func Form2Filename(v domain.Form2Version) string {
	ext := strings.TrimPrefix(path.Ext(v.StorageKey), ".")
	if ext == "" {
		ext = "pdf"
	}
	return fmt.Sprintf("Form2_v%d.%s", v.Version, ext)
}

// ServePackFilename is the attachment name of a serve pack version.
func ServePackFilename(sp domain.ServePack) string {
	return fmt.Sprintf("ServePack_v%d.zip", sp.Version)
}

func (s *ArtifactService) render(ctx context.Context, markup []byte) (render.Result, error) {
	timeout := s.RenderTimeout
	if timeout <= 0 {
		timeout = DefaultRenderTimeout
	}

	ctx, span := tracer.Start(ctx, "render")
	defer span.End()

	rctx, cancel := context.WithTimeout(ctx, timeout)
	defer cancel()

	res, err := s.Renderer.Render(rctx, markup)
	switch {
	case err == nil:
		span.SetAttributes(attribute.Int("render.bytes", len(res.Body)))
		return res, nil
	case ctx.Err() != nil:
		// The caller went away; not the renderer's fault.
		otelx.RecordError(span, ctx.Err())
		return render.Result{}, ctx.Err()
	case errors.Is(err, context.DeadlineExceeded) || rctx.Err() != nil:
		otelx.RecordError(span, err)
		return render.Result{}, fmt.Errorf("%w after %s", ErrRenderTimeout, timeout)
	default:
		otelx.RecordError(span, err)
		return render.Result{}, fmt.Errorf("%w: render: %v", ErrDependencyUnavailable, err)
	}
}

func (s *ArtifactService) put(ctx context.Context, key string, body []byte, contentType string) error {
	ctx, span := tracer.Start(ctx, "store", trace.WithAttributes(
		attribute.String("blob.key", key),
		attribute.Int("blob.bytes", len(body)),
	))
	defer span.End()

	if err := s.Blob.Put(ctx, key, bytes.NewReader(body), int64(len(body)), contentType); err != nil {
		otelx.RecordError(span, err)
		slogx.FromContext(ctx).Error("failed to store artifact", slog.String("key", key), slog.Any("error", err))
		return fmt.Errorf("%w: store artifact: %v", ErrDependencyUnavailable, err)
	}
	return nil
}

// persist runs fn in a transaction. When it fails the already stored blob
// at key is reaped, and a lost version race surfaces as ErrConflict.
func (s *ArtifactService) persist(ctx context.Context, key string, now time.Time, fn func(tx store.Tx) error) error {
	ctx, span := tracer.Start(ctx, "persist")
	defer span.End()

	err := s.Store.WithTx(ctx, fn)
	if err == nil {
		return nil
	}
	otelx.RecordError(span, err)

	log := slogx.FromContext(ctx)
	log.Error("failed to record artifact", slog.String("key", key), slog.Any("error", err))
	reapBlobs(ctx, s.Store, s.Blob, []string{key}, s.BatchSize, "artifact insert failed", now)

	if errors.Is(err, store.ErrAlreadyExists) {
		return fmt.Errorf("%w: a newer version was created concurrently", ErrConflict)
	}
	return unavailable("record artifact", err)
}

func (s *ArtifactService) blobEntry(name, key string, modified time.Time) archive.Entry {
	return archive.Entry{
		Name:     name,
		Modified: modified,
		Open: func(ctx context.Context) (io.ReadCloser, error) {
			obj, err := s.Blob.Get(ctx, key)
			if err != nil {
				return nil, fmt.Errorf("open %s: %w", key, err)
			}
			return obj.Body, nil
		},
	}
}

// newestPerKind picks, for each kind in order, the first matching document.
// docs must be ordered newest first.
func newestPerKind(docs []domain.Document, kinds []string) []domain.Document {
	out := make([]domain.Document, 0, len(kinds))
	for _, kind := range kinds {
		for _, d := range docs {
			if d.Kind == kind {
				out = append(out, d)
				break
			}
		}
	}
	return out
}
