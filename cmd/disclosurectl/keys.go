package main

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/aussiebroadwan/disclosure/pkg/cryptox"
	"github.com/aussiebroadwan/disclosure/pkg/jwtx"
)

const (
	signingKeyFile = "signing.pem"
	jwksFile       = "jwks.json"
)

// runKeygen writes a PKCS8 signing key and the JWKS the service verifies
// against. Point JWKS_FILE at the JWKS.
func runKeygen(_ context.Context, args []string, stdout io.Writer) error {
	fs := newFlagSet("keygen", stdout)
	outDir := fs.String("out-dir", ".", "directory to write signing.pem and jwks.json into")
	force := fs.Bool("force", false, "overwrite existing files")
	if err := fs.Parse(args); err != nil {
		return err
	}

	key, err := cryptox.GenerateSigningKey()
	if err != nil {
		return err
	}

	jwks := jwtx.JWKS{Keys: []jwtx.JWK{
		jwtx.NewEd25519JWK(key.KeyID, "sig", "EdDSA", key.Public),
	}}
	jwksJSON, err := json.MarshalIndent(jwks, "", "  ")
	if err != nil {
		return fmt.Errorf("encode jwks: %w", err)
	}

	if err := os.MkdirAll(*outDir, 0o755); err != nil {
		return fmt.Errorf("create %s: %w", *outDir, err)
	}
	keyPath := filepath.Join(*outDir, signingKeyFile)
	jwksPath := filepath.Join(*outDir, jwksFile)
	if err := writeFile(keyPath, key.PrivatePEM, 0o600, *force); err != nil {
		return err
	}
	if err := writeFile(jwksPath, append(jwksJSON, '\n'), 0o644, *force); err != nil {
		return err
	}

	fmt.Fprintf(stdout, "kid:  %s\nkey:  %s\njwks: %s\n", key.KeyID, keyPath, jwksPath)
	return nil
}

// runToken signs an identity token with a key from keygen.
func runToken(_ context.Context, args []string, stdout io.Writer) error {
	fs := newFlagSet("token", stdout)
	keyPath := fs.String("key", signingKeyFile, "PKCS8 Ed25519 signing key")
	subject := fs.String("sub", "", "subject claim (required)")
	email := fs.String("email", "", "email claim")
	name := fs.String("name", "", "name claim")
	roles := fs.StringSlice("roles", nil, "comma separated roles: Admin, Agent, Seller")
	org := fs.String("org", "", "org_id claim; only used the first time a subject is seen")
	issuer := fs.String("issuer", "", "iss claim, must match JWT_ISSUER")
	audience := fs.StringSlice("audience", nil, "aud claim, must include JWT_AUDIENCE")
	ttl := fs.Duration("ttl", jwtx.DefaultTokenTTL, "token lifetime")
	if err := fs.Parse(args); err != nil {
		return err
	}
	if strings.TrimSpace(*subject) == "" {
		return fmt.Errorf("--sub is required")
	}

	pemKey, err := os.ReadFile(*keyPath)
	if err != nil {
		return fmt.Errorf("read signing key: %w", err)
	}
	key, err := cryptox.ParseSigningKey(pemKey)
	if err != nil {
		return err
	}
	signer, err := jwtx.NewSignerEdDSA(key.KeyID, pemKey)
	if err != nil {
		return err
	}

	claims := jwtx.NewIdentityClaims(jwtx.IdentityParams{
		Subject:  *subject,
		Email:    *email,
		Name:     *name,
		Roles:    *roles,
		OrgID:    *org,
		Issuer:   *issuer,
		Audience: *audience,
		TTL:      *ttl,
	}, time.Now())

	token, err := signer.Sign(claims)
	if err != nil {
		return fmt.Errorf("sign token: %w", err)
	}
	fmt.Fprintln(stdout, token)
	return nil
}

func writeFile(path string, data []byte, perm os.FileMode, force bool) error {
	flags := os.O_WRONLY | os.O_CREATE | os.O_TRUNC
	if !force {
		flags |= os.O_EXCL
	}
	f, err := os.OpenFile(path, flags, perm)
	if err != nil {
		if os.IsExist(err) {
			return fmt.Errorf("%s already exists, use --force to overwrite", path)
		}
		return err
	}
	if _, err := f.Write(data); err != nil {
		_ = f.Close()
		return err
	}
	return f.Close()
}
