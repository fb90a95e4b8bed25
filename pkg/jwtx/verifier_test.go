package jwtx_test

import (
	"crypto/ecdsa"
	"crypto/elliptic"
	"crypto/rand"
	"crypto/rsa"
	"testing"
	"time"

	"github.com/aussiebroadwan/disclosure/pkg/cryptox"
	"github.com/aussiebroadwan/disclosure/pkg/jwtx"
	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/require"
)

const (
	testIssuer   = "https://idp.example.com"
	testAudience = "disclosure"
)

func newEdDSASigner(t *testing.T) (jwtx.Signer, *jwtx.KeySet) {
	t.Helper()

	key, err := cryptox.GenerateSigningKey()
	require.NoError(t, err)

	signer, err := jwtx.NewSignerEdDSA(key.KeyID, key.PrivatePEM)
	require.NoError(t, err)

	keys := jwtx.NewKeySet()
	require.NoError(t, keys.AddSigner(signer))
	return signer, keys
}

func identity(now time.Time) jwtx.Claims {
	return jwtx.NewIdentityClaims(jwtx.IdentityParams{
		Subject:  "idp|seller",
		Email:    "seller@example.com",
		Name:     "Sam Seller",
		Roles:    []string{"seller"},
		OrgID:    "org-1",
		Issuer:   testIssuer,
		Audience: []string{testAudience},
		TTL:      5 * time.Minute,
	}, now)
}

func TestVerifyEdDSA(t *testing.T) {
	signer, keys := newEdDSASigner(t)
	require.Equal(t, "EdDSA", signer.Alg())

	claims := identity(time.Now())
	token, err := signer.Sign(claims)
	require.NoError(t, err)

	v := jwtx.NewVerifier(keys, jwtx.VerifyOptions{Issuer: testIssuer, Audience: []string{testAudience}})
	got, err := v.Verify(token)
	require.NoError(t, err)
	require.Equal(t, claims.Subject, got.Subject)
	require.Equal(t, claims.Email, got.Email)
	require.Equal(t, claims.Name, got.Name)
	require.Equal(t, claims.Roles, got.Roles)
	require.Equal(t, claims.OrgID, got.OrgID)
}

func TestVerifyRS256(t *testing.T) {
	priv, err := rsa.GenerateKey(rand.Reader, 2048)
	require.NoError(t, err)

	keys := jwtx.NewKeySet()
	require.NoError(t, keys.AddJWK(jwtx.NewRSAJWK("rsa-1", "sig", "RS256", &priv.PublicKey)))

	tok := jwt.NewWithClaims(jwt.SigningMethodRS256, identity(time.Now()))
	tok.Header["kid"] = "rsa-1"
	signed, err := tok.SignedString(priv)
	require.NoError(t, err)

	v := jwtx.NewVerifier(keys, jwtx.VerifyOptions{Issuer: testIssuer, Audience: []string{testAudience}})
	got, err := v.Verify(signed)
	require.NoError(t, err)
	require.Equal(t, "idp|seller", got.Subject)
}

func TestVerifyES256(t *testing.T) {
	priv, err := ecdsa.GenerateKey(elliptic.P256(), rand.Reader)
	require.NoError(t, err)

	keys := jwtx.NewKeySet()
	require.NoError(t, keys.AddJWK(jwtx.NewES256JWK("ec-1", "sig", "ES256", &priv.PublicKey)))

	tok := jwt.NewWithClaims(jwt.SigningMethodES256, identity(time.Now()))
	tok.Header["kid"] = "ec-1"
	signed, err := tok.SignedString(priv)
	require.NoError(t, err)

	got, err := jwtx.NewVerifier(keys, jwtx.VerifyOptions{}).Verify(signed)
	require.NoError(t, err)
	require.Equal(t, "seller@example.com", got.Email)
}

func TestVerifyRejects(t *testing.T) {
	signer, keys := newEdDSASigner(t)
	now := time.Now()

	sign := func(mut func(*jwtx.Claims)) string {
		c := identity(now)
		if mut != nil {
			mut(&c)
		}
		tok, err := signer.Sign(c)
		require.NoError(t, err)
		return tok
	}

	v := jwtx.NewVerifier(keys, jwtx.VerifyOptions{Issuer: testIssuer, Audience: []string{testAudience}})

	t.Run("wrong issuer", func(t *testing.T) {
		_, err := v.Verify(sign(func(c *jwtx.Claims) { c.Issuer = "https://evil.example.com" }))
		require.ErrorIs(t, err, jwtx.ErrIssuer)
	})

	t.Run("wrong audience", func(t *testing.T) {
		_, err := v.Verify(sign(func(c *jwtx.Claims) { c.Audience = jwt.ClaimStrings{"other"} }))
		require.ErrorIs(t, err, jwtx.ErrAudience)
	})

	t.Run("expired", func(t *testing.T) {
		_, err := v.Verify(sign(func(c *jwtx.Claims) { c.ExpiresAt = jwt.NewNumericDate(now.Add(-time.Minute)) }))
		require.ErrorIs(t, err, jwtx.ErrExpired)
	})

	t.Run("missing subject", func(t *testing.T) {
		_, err := v.Verify(sign(func(c *jwtx.Claims) { c.Subject = "" }))
		require.ErrorIs(t, err, jwtx.ErrInvalidClaim)
	})

	t.Run("garbage", func(t *testing.T) {
		_, err := v.Verify("not.a.jwt")
		require.ErrorIs(t, err, jwtx.ErrMalformed)
	})

	t.Run("unknown kid", func(t *testing.T) {
		other, _ := newEdDSASigner(t)
		tok, err := other.Sign(identity(now))
		require.NoError(t, err)

		_, err = v.Verify(tok)
		require.ErrorIs(t, err, jwtx.ErrUnknownKID)
	})

	t.Run("tampered signature", func(t *testing.T) {
		tok := sign(nil)
		tampered := tok[:len(tok)-4] + "AAAA"
		_, err := v.Verify(tampered)
		require.Error(t, err)
	})

	t.Run("hmac not accepted", func(t *testing.T) {
		tok := jwt.NewWithClaims(jwt.SigningMethodHS256, identity(now))
		tok.Header["kid"] = signer.KID()
		signed, err := tok.SignedString([]byte("secret"))
		require.NoError(t, err)

		_, err = v.Verify(signed)
		require.Error(t, err)
	})
}

func TestVerifyAlgMismatch(t *testing.T) {
	priv, err := rsa.GenerateKey(rand.Reader, 2048)
	require.NoError(t, err)

	// An Ed25519 kid advertised in the set, but the token claims RS256.
	signer, keys := newEdDSASigner(t)
	tok := jwt.NewWithClaims(jwt.SigningMethodRS256, identity(time.Now()))
	tok.Header["kid"] = signer.KID()
	signed, err := tok.SignedString(priv)
	require.NoError(t, err)

	_, err = jwtx.NewVerifier(keys, jwtx.VerifyOptions{}).Verify(signed)
	require.ErrorIs(t, err, jwtx.ErrAlgMismatch)
}
