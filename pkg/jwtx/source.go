package jwtx

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"os"
	"time"
)

// ErrNoSource is returned by NewSource when neither a file nor a URL is set.
var ErrNoSource = errors.New("jwtx: no JWKS source configured")

// Source loads a JWKS into a KeySet, either from a local file or from the
// identity provider's jwks endpoint.
type Source struct {
	File string
	URL  string

	HTTPClient *http.Client
	Keys       *KeySet
}

// NewSource returns a Source that prefers path over url when both are set.
func NewSource(path, url string, keys *KeySet) (*Source, error) {
	if path == "" && url == "" {
		return nil, ErrNoSource
	}
	return &Source{
		File:       path,
		URL:        url,
		HTTPClient: &http.Client{Timeout: 10 * time.Second},
		Keys:       keys,
	}, nil
}

// Refresh fetches the key set and replaces the KeySet contents. On error the
// previous keys stay in place.
func (s *Source) Refresh(ctx context.Context) error {
	var (
		jwks JWKS
		err  error
	)
	if s.File != "" {
		jwks, err = s.readFile()
	} else {
		jwks, err = s.fetch(ctx)
	}
	if err != nil {
		return err
	}
	if len(jwks.Keys) == 0 {
		return fmt.Errorf("jwtx: JWKS from %s has no keys", s.origin())
	}
	return s.Keys.Replace(jwks)
}

func (s *Source) origin() string {
	if s.File != "" {
		return s.File
	}
	return s.URL
}

func (s *Source) readFile() (JWKS, error) {
	raw, err := os.ReadFile(s.File)
	if err != nil {
		return JWKS{}, fmt.Errorf("jwtx: read JWKS file: %w", err)
	}
	return DecodeJWKS(raw)
}

func (s *Source) fetch(ctx context.Context) (JWKS, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, s.URL, nil)
	if err != nil {
		return JWKS{}, fmt.Errorf("jwtx: build JWKS request: %w", err)
	}
	req.Header.Set("Accept", "application/json")

	resp, err := s.HTTPClient.Do(req)
	if err != nil {
		return JWKS{}, fmt.Errorf("jwtx: fetch JWKS: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return JWKS{}, fmt.Errorf("jwtx: fetch JWKS: unexpected status %d", resp.StatusCode)
	}

	raw, err := io.ReadAll(io.LimitReader(resp.Body, 1<<20))
	if err != nil {
		return JWKS{}, fmt.Errorf("jwtx: read JWKS body: %w", err)
	}
	return DecodeJWKS(raw)
}

// DecodeJWKS parses a JSON encoded key set.
func DecodeJWKS(raw []byte) (JWKS, error) {
	var jwks JWKS
	if err := json.Unmarshal(raw, &jwks); err != nil {
		return JWKS{}, fmt.Errorf("jwtx: decode JWKS: %w", err)
	}
	return jwks, nil
}
