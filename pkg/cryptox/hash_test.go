package cryptox

import (
	"io"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestHashContent(t *testing.T) {
	// BLAKE3 of the empty input.
	sum, n, err := HashContent(strings.NewReader(""))
	require.NoError(t, err)
	require.Zero(t, n)
	require.Equal(t, "af1349b9f5f9a1a6a0404dea36dcc9499bcb25c9adc112b7cc9a93cae41f3262", sum)

	a, n, err := HashContent(strings.NewReader("%PDF-1.7"))
	require.NoError(t, err)
	require.EqualValues(t, 8, n)
	require.Len(t, a, 64)

	b, _, err := HashContent(strings.NewReader("%PDF-1.6"))
	require.NoError(t, err)
	require.NotEqual(t, a, b)
}

func TestContentHasherTee(t *testing.T) {
	h := NewContentHasher()
	data, err := io.ReadAll(io.TeeReader(strings.NewReader("title search"), h))
	require.NoError(t, err)
	require.Equal(t, "title search", string(data))

	want, _, err := HashContent(strings.NewReader("title search"))
	require.NoError(t, err)
	require.Equal(t, want, h.Sum())
	require.EqualValues(t, len(data), h.Size())
}
