package service

import (
	"bytes"
	"context"
	"errors"
	"io"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/aussiebroadwan/disclosure/internal/disclosure/blob"
	"github.com/aussiebroadwan/disclosure/internal/disclosure/domain"
	"github.com/aussiebroadwan/disclosure/pkg/cryptox"
)

func TestDocumentUpload(t *testing.T) {
	t.Parallel()
	h := newHarness(t)

	agent := h.identity("agent", "Agent")
	seller := h.identity("seller", "Seller")
	p := h.createProperty(t, agent, "house")

	t.Run("stores blob and metadata", func(t *testing.T) {
		d := h.upload(t, agent, p.ID, "title_search", "Title (final).pdf")

		wantSHA, wantSize, err := cryptox.HashContent(bytes.NewReader(pdfBytes))
		require.NoError(t, err)

		require.Equal(t, "title_search", d.Kind)
		require.Equal(t, "Title (final).pdf", d.Filename)
		require.Equal(t, wantSHA, d.SHA)
		require.Equal(t, wantSize, d.Size)
		require.True(t, strings.HasPrefix(d.StorageKey, p.ID+"/"))
		require.True(t, strings.HasSuffix(d.StorageKey, "_Title_final_.pdf"))
		require.True(t, h.blob.Has(d.StorageKey))
	})

	t.Run("kind is stored as given", func(t *testing.T) {
		other := h.createProperty(t, agent, "house")
		d := h.upload(t, agent, other.ID, " Title_Search ", "title.pdf")
		require.Equal(t, "Title_Search", d.Kind)

		view, err := h.props.Checklist(h.ctx(), agent, other.ID)
		require.NoError(t, err)
		require.Equal(t, 0, view.Completed)
	})

	t.Run("kind defaults to supporting", func(t *testing.T) {
		d := h.upload(t, agent, p.ID, "", "extra.pdf")
		require.Equal(t, domain.DefaultDocumentKind, d.Kind)
	})

	t.Run("content type parameters are ignored", func(t *testing.T) {
		png := append([]byte("\x89PNG\r\n\x1a\n"), make([]byte, 32)...)
		d, err := h.docs.Upload(h.ctx(), agent, p.ID, UploadInput{
			Filename: "photo.png", ContentType: "image/png; name=photo.png", Body: bytes.NewReader(png),
		})
		require.NoError(t, err)
		require.Equal(t, "image/png", d.ContentType)
	})

	tests := []struct {
		name string
		in   UploadInput
	}{
		{"disallowed type", UploadInput{Filename: "a.txt", ContentType: "text/plain", Body: strings.NewReader("hello")}},
		{"content does not match type", UploadInput{Filename: "a.pdf", ContentType: "application/pdf", Body: strings.NewReader("hello")}},
		{"empty body", UploadInput{Filename: "a.pdf", ContentType: "application/pdf", Body: strings.NewReader("")}},
		{"missing filename", UploadInput{ContentType: "application/pdf", Body: bytes.NewReader(pdfBytes)}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			before := h.blob.Len()
			_, err := h.docs.Upload(h.ctx(), agent, p.ID, tt.in)
			require.ErrorIs(t, err, ErrValidation)
			require.Equal(t, before, h.blob.Len())
		})
	}

	t.Run("too large", func(t *testing.T) {
		docs := *h.docs
		docs.MaxBytes = 16
		_, err := docs.Upload(h.ctx(), agent, p.ID, UploadInput{
			Filename: "big.pdf", ContentType: "application/pdf", Body: bytes.NewReader(pdfBytes),
		})
		require.ErrorIs(t, err, ErrValidation)
	})

	t.Run("seller cannot upload", func(t *testing.T) {
		_, err := h.docs.Upload(h.ctx(), seller, p.ID, UploadInput{
			Filename: "a.pdf", ContentType: "application/pdf", Body: bytes.NewReader(pdfBytes),
		})
		require.ErrorIs(t, err, ErrForbidden)
	})
}

// putFails refuses every write and passes everything else through.
type putFails struct {
	*blob.Memory
}

func (putFails) Put(context.Context, string, io.Reader, int64, string) error {
	return errors.New("put refused")
}

func TestDocumentUploadBlobFailure(t *testing.T) {
	t.Parallel()
	h := newHarness(t)

	agent := h.identity("agent", "Agent")
	p := h.createProperty(t, agent, "house")

	docs := *h.docs
	docs.Blob = putFails{h.blob}
	_, err := docs.Upload(h.ctx(), agent, p.ID, UploadInput{
		Filename: "a.pdf", ContentType: "application/pdf", Body: bytes.NewReader(pdfBytes),
	})
	require.ErrorIs(t, err, ErrDependencyUnavailable)

	list, err := h.docs.List(h.ctx(), agent, p.ID)
	require.NoError(t, err)
	require.Empty(t, list)
}

func TestDocumentListDownloadDelete(t *testing.T) {
	t.Parallel()
	h := newHarness(t)

	agent := h.identity("agent", "Agent")
	other := h.identity("other-agent", "Agent")
	p := h.createProperty(t, agent, "house")

	older := h.upload(t, agent, p.ID, "title_search", "title.pdf")
	newer := h.upload(t, agent, p.ID, "smoke_alarm", "smoke.pdf")

	t.Run("list newest first", func(t *testing.T) {
		docs, err := h.docs.List(h.ctx(), agent, p.ID)
		require.NoError(t, err)
		require.Len(t, docs, 2)
		require.Equal(t, newer.ID, docs[0].ID)
		require.Equal(t, older.ID, docs[1].ID)
	})

	t.Run("download streams the file", func(t *testing.T) {
		d, obj, err := h.docs.Download(h.ctx(), agent, older.ID)
		require.NoError(t, err)
		defer obj.Body.Close()

		body, err := io.ReadAll(obj.Body)
		require.NoError(t, err)
		require.Equal(t, pdfBytes, body)
		require.Equal(t, "application/pdf", obj.ContentType)
		require.Equal(t, "title.pdf", d.Filename)
	})

	t.Run("download by stranger", func(t *testing.T) {
		_, _, err := h.docs.Download(h.ctx(), other, older.ID)
		require.ErrorIs(t, err, ErrForbidden)
	})

	t.Run("download missing", func(t *testing.T) {
		_, _, err := h.docs.Download(h.ctx(), agent, "01NOSUCHDOC")
		require.ErrorIs(t, err, ErrNotFound)
	})

	t.Run("delete with blob failure warns", func(t *testing.T) {
		h.blob.FailDelete = func(key string) bool { return key == newer.StorageKey }
		defer func() { h.blob.FailDelete = nil }()

		warnings, err := h.docs.Delete(h.ctx(), agent, newer.ID)
		require.NoError(t, err)
		require.Len(t, warnings, 1)
		require.Equal(t, WarnBlobCleanupFailed, warnings[0].Code)

		orphans, err := h.store.OrphanedBlobs().List(context.Background(), 10)
		require.NoError(t, err)
		require.Len(t, orphans, 1)
		require.Equal(t, newer.StorageKey, orphans[0].Key)

		_, _, err = h.docs.Download(h.ctx(), agent, newer.ID)
		require.ErrorIs(t, err, ErrNotFound)
	})

	t.Run("delete removes blob", func(t *testing.T) {
		warnings, err := h.docs.Delete(h.ctx(), agent, older.ID)
		require.NoError(t, err)
		require.Empty(t, warnings)
		require.False(t, h.blob.Has(older.StorageKey))
	})
}
