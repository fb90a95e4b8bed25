package archive_test

import (
	"bytes"
	"context"
	"errors"
	"io"
	"strings"
	"testing"

	"github.com/aussiebroadwan/disclosure/internal/disclosure/archive"
	"github.com/klauspost/compress/zip"
	"github.com/stretchr/testify/require"
)

func entry(name, body string) archive.Entry {
	return archive.Entry{
		Name: name,
		Open: func(context.Context) (io.ReadCloser, error) {
			return io.NopCloser(strings.NewReader(body)), nil
		},
	}
}

func TestWritePreservesOrderAndContent(t *testing.T) {
	var buf bytes.Buffer
	err := archive.Write(context.Background(), &buf, []archive.Entry{
		entry("documents/title_search__title.pdf", "title"),
		entry("documents/smoke_alarm__alarm.pdf", "alarm"),
		entry("Form2_v3.pdf", "form2"),
	})
	require.NoError(t, err)

	zr, err := zip.NewReader(bytes.NewReader(buf.Bytes()), int64(buf.Len()))
	require.NoError(t, err)
	require.Len(t, zr.File, 3)

	want := []struct{ name, body string }{
		{"documents/title_search__title.pdf", "title"},
		{"documents/smoke_alarm__alarm.pdf", "alarm"},
		{"Form2_v3.pdf", "form2"},
	}
	for i, f := range zr.File {
		require.Equal(t, want[i].name, f.Name)
		require.Equal(t, zip.Deflate, f.Method)

		rc, err := f.Open()
		require.NoError(t, err)
		got, err := io.ReadAll(rc)
		require.NoError(t, err)
		require.NoError(t, rc.Close())
		require.Equal(t, want[i].body, string(got))
	}
}

func TestWriteRejectsDuplicates(t *testing.T) {
	err := archive.Write(context.Background(), io.Discard, []archive.Entry{entry("a", "1"), entry("a", "2")})
	require.ErrorIs(t, err, archive.ErrDuplicateEntry)
}

func TestWritePropagatesOpenError(t *testing.T) {
	boom := errors.New("blob gone")
	err := archive.Write(context.Background(), io.Discard, []archive.Entry{{
		Name: "x",
		Open: func(context.Context) (io.ReadCloser, error) { return nil, boom },
	}})
	require.ErrorIs(t, err, boom)
}

func TestWriteHonoursCancel(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	err := archive.Write(ctx, io.Discard, []archive.Entry{entry("a", "1")})
	require.ErrorIs(t, err, context.Canceled)
}

func TestSafeName(t *testing.T) {
	tests := []struct {
		in, want string
	}{
		{"title.pdf", "title.pdf"},
		{"../../etc/passwd", "passwd"},
		{`C:\Users\me\smoke alarm.pdf`, "smoke_alarm.pdf"},
		{"résumé (final).png", "r_sum_final_.png"},
		{"a  b.pdf", "a_b.pdf"},
		{".hidden", "hidden"},
		{"", "file"},
		{"..", "file"},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			require.Equal(t, tt.want, archive.SafeName(tt.in))
		})
	}
}
