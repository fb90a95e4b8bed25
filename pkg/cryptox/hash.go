package cryptox

import (
	"encoding/hex"
	"io"

	"github.com/zeebo/blake3"
)

// ContentHasher is an io.Writer that computes a BLAKE3 digest of everything
// written to it. Tee an upload through it to hash while storing.
type ContentHasher struct {
	h *blake3.Hasher
	n int64
}

func NewContentHasher() *ContentHasher {
	return &ContentHasher{h: blake3.New()}
}

func (c *ContentHasher) Write(p []byte) (int, error) {
	n, err := c.h.Write(p)
	c.n += int64(n)
	return n, err
}

// Sum returns the hex digest of the bytes written so far.
func (c *ContentHasher) Sum() string {
	return hex.EncodeToString(c.h.Sum(nil))
}

// Size returns the number of bytes written so far.
func (c *ContentHasher) Size() int64 { return c.n }

// HashContent consumes r and returns its BLAKE3 hex digest and length.
func HashContent(r io.Reader) (string, int64, error) {
	h := NewContentHasher()
	if _, err := io.Copy(h, r); err != nil {
		return "", 0, err
	}
	return h.Sum(), h.Size(), nil
}
