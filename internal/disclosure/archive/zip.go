// Package archive writes serve pack bundles.
package archive

import (
	"context"
	"errors"
	"fmt"
	"io"
	"path"
	"strings"
	"time"
	"unicode"

	"github.com/klauspost/compress/flate"
	"github.com/klauspost/compress/zip"
)

// ErrDuplicateEntry is returned when two entries share a name.
var ErrDuplicateEntry = errors.New("archive: duplicate entry name")

// Entry is one file in the archive. Open is called lazily when the entry is
// written and the returned reader is closed afterwards.
type Entry struct {
	Name     string
	Modified time.Time
	Open     func(ctx context.Context) (io.ReadCloser, error)
}

// Write streams entries, in order, into a deflate compressed zip on w.
func Write(ctx context.Context, w io.Writer, entries []Entry) error {
	seen := make(map[string]struct{}, len(entries))
	for _, e := range entries {
		if _, dup := seen[e.Name]; dup {
			return fmt.Errorf("%w: %s", ErrDuplicateEntry, e.Name)
		}
		seen[e.Name] = struct{}{}
	}

	zw := zip.NewWriter(w)
	// Entries are mostly PDF and JPEG which barely compress.
	zw.RegisterCompressor(zip.Deflate, func(out io.Writer) (io.WriteCloser, error) {
		return flate.NewWriter(out, flate.BestSpeed)
	})

	for _, e := range entries {
		if err := ctx.Err(); err != nil {
			return err
		}
		if err := writeEntry(ctx, zw, e); err != nil {
			return err
		}
	}

	if err := zw.Close(); err != nil {
		return fmt.Errorf("archive: finalise: %w", err)
	}
	return nil
}

func writeEntry(ctx context.Context, zw *zip.Writer, e Entry) error {
	src, err := e.Open(ctx)
	if err != nil {
		return fmt.Errorf("archive: open %s: %w", e.Name, err)
	}
	defer src.Close()

	hdr := &zip.FileHeader{Name: e.Name, Method: zip.Deflate}
	if !e.Modified.IsZero() {
		hdr.Modified = e.Modified.UTC()
	}

	dst, err := zw.CreateHeader(hdr)
	if err != nil {
		return fmt.Errorf("archive: create %s: %w", e.Name, err)
	}
	if _, err := io.Copy(dst, src); err != nil {
		return fmt.Errorf("archive: copy %s: %w", e.Name, err)
	}
	return nil
}

// SafeName reduces a user supplied filename to a flat, portable entry name.
// Directory components are dropped and each run of characters outside
// letters, digits, dot, dash and underscore becomes a single underscore.
func SafeName(name string) string {
	base := path.Base(strings.ReplaceAll(name, `\`, "/"))
	if base == "." || base == "/" || base == ".." {
		base = ""
	}

	var b strings.Builder
	inRun := false
	for _, r := range base {
		if r < unicode.MaxASCII && (unicode.IsLetter(r) || unicode.IsDigit(r) || r == '.' || r == '-' || r == '_') {
			b.WriteRune(r)
			inRun = false
			continue
		}
		if !inRun {
			b.WriteByte('_')
			inRun = true
		}
	}

	out := strings.TrimLeft(b.String(), ".")
	if out == "" {
		return "file"
	}
	return out
}
