package service

import (
	"archive/zip"
	"bytes"
	"context"
	"io"
	"strings"
	"sync"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/aussiebroadwan/disclosure/internal/disclosure/domain"
	"github.com/aussiebroadwan/disclosure/internal/disclosure/render"
)

func TestBuildForm2(t *testing.T) {
	t.Parallel()
	h := newHarness(t)

	agent := h.identity("agent", "Agent")
	seller := h.identity("seller", "Seller")
	p := h.createProperty(t, agent, "house")
	h.upload(t, agent, p.ID, "title_search", "title.pdf")

	t.Run("versions start at one and increase", func(t *testing.T) {
		v1, err := h.artifacts.BuildForm2(h.ctx(), agent, p.ID)
		require.NoError(t, err)
		require.EqualValues(t, 1, v1.Version)
		require.Equal(t, "text/html; charset=utf-8", v1.ContentType)
		require.True(t, strings.HasPrefix(v1.StorageKey, p.ID+"/form2/"))
		require.True(t, strings.HasSuffix(v1.StorageKey, ".html"))
		require.True(t, h.blob.Has(v1.StorageKey))

		require.Len(t, v1.Snapshot.Checklist, 3)
		require.True(t, v1.Snapshot.Checklist[0].Complete)
		require.False(t, v1.Snapshot.Checklist[1].Complete)

		v2, err := h.artifacts.BuildForm2(h.ctx(), agent, p.ID)
		require.NoError(t, err)
		require.EqualValues(t, 2, v2.Version)
		require.NotEqual(t, v1.StorageKey, v2.StorageKey)
	})

	t.Run("latest and download", func(t *testing.T) {
		latest, err := h.artifacts.LatestForm2(h.ctx(), agent, p.ID)
		require.NoError(t, err)
		require.EqualValues(t, 2, latest.Version)
		require.Equal(t, "Form2_v2.html", Form2Filename(latest))

		_, obj, err := h.artifacts.DownloadForm2(h.ctx(), agent, p.ID)
		require.NoError(t, err)
		defer obj.Body.Close()
		body, err := io.ReadAll(obj.Body)
		require.NoError(t, err)
		require.Contains(t, string(body), "Title Search")
		require.Equal(t, latest.ContentType, obj.ContentType)
	})

	t.Run("seller may read but not generate", func(t *testing.T) {
		_, err := h.artifacts.BuildForm2(h.ctx(), seller, p.ID)
		require.ErrorIs(t, err, ErrForbidden)
	})

	t.Run("no versions yet", func(t *testing.T) {
		empty := h.createProperty(t, agent, "unit")
		_, err := h.artifacts.LatestForm2(h.ctx(), agent, empty.ID)
		require.ErrorIs(t, err, ErrNotFound)
	})
}

func TestBuildForm2RenderFailures(t *testing.T) {
	t.Parallel()
	h := newHarness(t)

	agent := h.identity("agent", "Agent")
	p := h.createProperty(t, agent, "house")

	t.Run("timeout", func(t *testing.T) {
		h.renderer.fn = func(ctx context.Context, _ []byte) (render.Result, error) {
			<-ctx.Done()
			return render.Result{}, ctx.Err()
		}
		_, err := h.artifacts.BuildForm2(h.ctx(), agent, p.ID)
		require.ErrorIs(t, err, ErrRenderTimeout)
		require.Zero(t, h.blob.Len())
	})

	t.Run("backend down", func(t *testing.T) {
		h.renderer.fn = func(context.Context, []byte) (render.Result, error) {
			return render.Result{}, render.ErrUnavailable
		}
		_, err := h.artifacts.BuildForm2(h.ctx(), agent, p.ID)
		require.ErrorIs(t, err, ErrDependencyUnavailable)
		require.Zero(t, h.blob.Len())
	})

	h.renderer.fn = nil
	v, err := h.artifacts.BuildForm2(h.ctx(), agent, p.ID)
	require.NoError(t, err)
	require.EqualValues(t, 1, v.Version, "failed builds do not consume versions")
}

func TestBuildForm2Concurrent(t *testing.T) {
	t.Parallel()
	h := newHarness(t)

	agent := h.identity("agent", "Agent")
	p := h.createProperty(t, agent, "house")

	const n = 6
	var (
		wg       sync.WaitGroup
		mu       sync.Mutex
		versions []int64
	)
	for range n {
		wg.Add(1)
		go func() {
			defer wg.Done()
			v, err := h.artifacts.BuildForm2(h.ctx(), agent, p.ID)
			if err != nil {
				t.Errorf("build: %v", err)
				return
			}
			mu.Lock()
			versions = append(versions, v.Version)
			mu.Unlock()
		}()
	}
	wg.Wait()

	require.ElementsMatch(t, []int64{1, 2, 3, 4, 5, 6}, versions)
	require.Zero(t, h.artifacts.builds.len())
}

func TestBuildServePack(t *testing.T) {
	t.Parallel()
	h := newHarness(t)

	agent := h.identity("agent", "Agent")
	p := h.createProperty(t, agent, "house")

	t.Run("requires a form2", func(t *testing.T) {
		_, err := h.artifacts.BuildServePack(h.ctx(), agent, p.ID)
		require.ErrorIs(t, err, ErrNoDisclosureYet)
		require.ErrorIs(t, err, ErrPreconditionFailed)
	})

	h.upload(t, agent, p.ID, "title_search", "old title.pdf")
	title := h.upload(t, agent, p.ID, "title_search", "new title.pdf")
	h.upload(t, agent, p.ID, "pool_safety", "pool.pdf")
	h.upload(t, agent, p.ID, "", "notes.pdf")

	form2, err := h.artifacts.BuildForm2(h.ctx(), agent, p.ID)
	require.NoError(t, err)

	t.Run("bundles newest required documents and the form2", func(t *testing.T) {
		sp, err := h.artifacts.BuildServePack(h.ctx(), agent, p.ID)
		require.NoError(t, err)
		require.EqualValues(t, 1, sp.Version)
		require.Equal(t, "ServePack_v1.zip", ServePackFilename(sp))

		require.Equal(t, []string{"title_search", "smoke_alarm"}, sp.Manifest.IncludedKinds)
		require.Equal(t, form2.Version, sp.Manifest.Form2Version)
		require.Equal(t, []domain.ManifestDocument{
			{ID: title.ID, Kind: "title_search", Filename: "new title.pdf"},
		}, sp.Manifest.Documents)

		_, obj, err := h.artifacts.DownloadServePack(h.ctx(), agent, p.ID)
		require.NoError(t, err)
		defer obj.Body.Close()
		require.Equal(t, "application/zip", obj.ContentType)

		data, err := io.ReadAll(obj.Body)
		require.NoError(t, err)
		zr, err := zip.NewReader(bytes.NewReader(data), int64(len(data)))
		require.NoError(t, err)

		var names []string
		for _, f := range zr.File {
			names = append(names, f.Name)
		}
		require.Equal(t, []string{"documents/title_search__new_title.pdf", "Form2_v1.html"}, names)
	})

	t.Run("second pack is version two", func(t *testing.T) {
		sp, err := h.artifacts.BuildServePack(h.ctx(), agent, p.ID)
		require.NoError(t, err)
		require.EqualValues(t, 2, sp.Version)

		latest, err := h.artifacts.LatestServePack(h.ctx(), agent, p.ID)
		require.NoError(t, err)
		require.Equal(t, sp.ID, latest.ID)
	})
}

func TestNewestPerKind(t *testing.T) {
	t.Parallel()

	docs := []domain.Document{
		{ID: "3", Kind: "b"},
		{ID: "2", Kind: "a"},
		{ID: "1", Kind: "a"},
	}
	got := newestPerKind(docs, []string{"a", "b", "c"})
	require.Len(t, got, 2)
	require.Equal(t, "2", got[0].ID)
	require.Equal(t, "3", got[1].ID)
}
