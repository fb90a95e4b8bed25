package service

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"mime"
	"net/http"
	"strings"
	"time"

	"github.com/aussiebroadwan/disclosure/internal/disclosure/access"
	"github.com/aussiebroadwan/disclosure/internal/disclosure/archive"
	"github.com/aussiebroadwan/disclosure/internal/disclosure/blob"
	"github.com/aussiebroadwan/disclosure/internal/disclosure/domain"
	"github.com/aussiebroadwan/disclosure/internal/disclosure/store"
	"github.com/aussiebroadwan/disclosure/pkg/cryptox"
	"github.com/aussiebroadwan/disclosure/pkg/idx"
	"github.com/aussiebroadwan/disclosure/pkg/slogx"
)

// DefaultUploadMaxBytes caps a single document upload.
const DefaultUploadMaxBytes = 10 << 20

// allowedContentTypes maps the accepted upload types to what
// http.DetectContentType reports for their bytes.
var allowedContentTypes = map[string]string{
	"application/pdf": "application/pdf",
	"image/jpeg":      "image/jpeg",
	"image/png":       "image/png",
}

type DocumentService struct {
	Store     store.Store
	Access    *AccessService
	Blob      blob.Gateway
	MaxBytes  int64
	BatchSize int
	Now       func() time.Time
}

type UploadInput struct {
	Kind        string
	Filename    string
	ContentType string
	Body        io.Reader
}

// Upload stores a supporting document for a property. The blob is written
// first; if the metadata insert then fails the blob is removed again.
func (s *DocumentService) Upload(ctx context.Context, id domain.Identity, propertyID string, in UploadInput) (domain.Document, error) {
	log := slogx.FromContext(ctx)

	// 1. Authorize.
	_, p, err := s.Access.Authorize(ctx, id, propertyID, access.ActionUpload)
	if err != nil {
		return domain.Document{}, err
	}

	// 2. Validate metadata.
	filename := strings.TrimSpace(in.Filename)
	if filename == "" {
		return domain.Document{}, validationf("filename is required")
	}
	contentType, err := normalizeContentType(in.ContentType)
	if err != nil {
		return domain.Document{}, err
	}
	kind := strings.TrimSpace(in.Kind)
	if kind == "" {
		kind = domain.DefaultDocumentKind
	}

	// 3. Buffer the body within the limit, hashing as we go.
	limit := s.MaxBytes
	if limit <= 0 {
		limit = DefaultUploadMaxBytes
	}
	hasher := cryptox.NewContentHasher()
	var buf bytes.Buffer
	if _, err := io.Copy(&buf, io.TeeReader(io.LimitReader(in.Body, limit+1), hasher)); err != nil {
		return domain.Document{}, validationf("read upload: %v", err)
	}
	if int64(buf.Len()) > limit {
		return domain.Document{}, validationf("file exceeds %d bytes", limit)
	}
	if buf.Len() == 0 {
		return domain.Document{}, validationf("file is empty")
	}
	if sniffed := http.DetectContentType(buf.Bytes()); !strings.HasPrefix(sniffed, allowedContentTypes[contentType]) {
		return domain.Document{}, validationf("file content does not match %s", contentType)
	}

	now := clock(s.Now)
	doc := domain.Document{
		ID:          idx.NewAt(now).String(),
		PropertyID:  p.ID,
		Kind:        kind,
		Filename:    filename,
		ContentType: contentType,
		Size:        hasher.Size(),
		SHA:         hasher.Sum(),
		StorageKey:  fmt.Sprintf("%s/%d_%s", p.ID, now.UnixMilli(), archive.SafeName(filename)),
		CreatedAt:   now,
	}

	// 4. Store the blob.
	if err := s.Blob.Put(ctx, doc.StorageKey, bytes.NewReader(buf.Bytes()), int64(buf.Len()), contentType); err != nil {
		log.Error("failed to store document", slog.String("key", doc.StorageKey), slog.Any("error", err))
		return domain.Document{}, fmt.Errorf("%w: store document: %v", ErrDependencyUnavailable, err)
	}

	// 5. Record metadata; undo the blob if that fails.
	if err := s.Store.Documents().CreateDocument(ctx, doc); err != nil {
		log.Error("failed to record document", slog.String("property_id", p.ID), slog.Any("error", err))
		reapBlobs(ctx, s.Store, s.Blob, []string{doc.StorageKey}, s.BatchSize, "document insert failed", now)
		return domain.Document{}, unavailable("record document", err)
	}

	log.Info("document uploaded",
		slog.String("document_id", doc.ID),
		slog.String("property_id", p.ID),
		slog.String("kind", doc.Kind),
		slog.Int64("size", doc.Size),
	)
	return doc, nil
}

// List returns a property's documents, newest first.
func (s *DocumentService) List(ctx context.Context, id domain.Identity, propertyID string) ([]domain.Document, error) {
	if _, _, err := s.Access.Authorize(ctx, id, propertyID, access.ActionRead); err != nil {
		return nil, err
	}
	docs, err := s.Store.Documents().ListByProperty(ctx, propertyID)
	if err != nil {
		return nil, fmt.Errorf("list documents: %w", err)
	}
	return docs, nil
}

// Download opens a document for streaming. The caller must close the body.
func (s *DocumentService) Download(ctx context.Context, id domain.Identity, documentID string) (domain.Document, blob.Object, error) {
	doc, err := s.authorizeDocument(ctx, id, documentID, access.ActionRead)
	if err != nil {
		return domain.Document{}, blob.Object{}, err
	}

	obj, err := openBlob(ctx, s.Blob, doc.StorageKey)
	if err != nil {
		return domain.Document{}, blob.Object{}, err
	}
	if doc.ContentType != "" {
		obj.ContentType = doc.ContentType
	}
	return doc, obj, nil
}

// Delete removes a document. Blob removal is best effort and reported as a
// warning; the metadata row is always removed.
func (s *DocumentService) Delete(ctx context.Context, id domain.Identity, documentID string) ([]Warning, error) {
	log := slogx.FromContext(ctx)

	doc, err := s.authorizeDocument(ctx, id, documentID, access.ActionUpdate)
	if err != nil {
		return nil, err
	}

	warnings := reapBlobs(ctx, s.Store, s.Blob, []string{doc.StorageKey}, s.BatchSize, "document deleted", clock(s.Now))

	if err := s.Store.Documents().DeleteDocument(ctx, doc.ID); err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return warnings, ErrNotFound
		}
		return warnings, unavailable("delete document", err)
	}

	log.Info("document deleted", slog.String("document_id", doc.ID), slog.String("property_id", doc.PropertyID))
	return warnings, nil
}

func (s *DocumentService) authorizeDocument(
	ctx context.Context,
	id domain.Identity,
	documentID string,
	action access.Action,
) (domain.Document, error) {
	// Resolve the caller first so anonymous callers learn nothing.
	if _, err := s.Access.EnsureUser(ctx, id); err != nil {
		return domain.Document{}, err
	}

	doc, err := s.Store.Documents().GetDocumentByID(ctx, documentID)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return domain.Document{}, fmt.Errorf("document %s: %w", documentID, ErrNotFound)
		}
		return domain.Document{}, fmt.Errorf("load document: %w", err)
	}

	if _, _, err := s.Access.Authorize(ctx, id, doc.PropertyID, action); err != nil {
		return domain.Document{}, err
	}
	return doc, nil
}

func normalizeContentType(ct string) (string, error) {
	mt, _, err := mime.ParseMediaType(strings.TrimSpace(ct))
	if err != nil {
		return "", validationf("invalid content type %q", ct)
	}
	if _, ok := allowedContentTypes[mt]; !ok {
		return "", validationf("content type %s is not allowed", mt)
	}
	return mt, nil
}

// openBlob maps gateway errors onto service errors.
func openBlob(ctx context.Context, gw blob.Gateway, key string) (blob.Object, error) {
	obj, err := gw.Get(ctx, key)
	if err != nil {
		if errors.Is(err, blob.ErrNotFound) {
			return blob.Object{}, fmt.Errorf("stored file %s: %w", key, ErrNotFound)
		}
		return blob.Object{}, fmt.Errorf("%w: open %s: %v", ErrDependencyUnavailable, key, err)
	}
	return obj, nil
}
