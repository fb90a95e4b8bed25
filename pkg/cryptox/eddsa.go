package cryptox

import (
	"crypto/ed25519"
	"crypto/rand"
	"crypto/sha256"
	"crypto/x509"
	"encoding/hex"
	"encoding/pem"
	"errors"
	"fmt"
)

// SigningKey is an Ed25519 key pair ready to be written to disk.
type SigningKey struct {
	// KeyID is derived from the public key so that re-exporting the same
	// key always yields the same kid.
	KeyID      string
	PrivatePEM []byte
	Private    ed25519.PrivateKey
	Public     ed25519.PublicKey
}

// GenerateSigningKey creates a fresh Ed25519 signing key. The private half is
// encoded as PKCS8 PEM.
func GenerateSigningKey() (SigningKey, error) {
	pub, priv, err := ed25519.GenerateKey(rand.Reader)
	if err != nil {
		return SigningKey{}, fmt.Errorf("cryptox: generate Ed25519 key: %w", err)
	}

	der, err := x509.MarshalPKCS8PrivateKey(priv)
	if err != nil {
		return SigningKey{}, fmt.Errorf("cryptox: marshal PKCS8 key: %w", err)
	}

	return SigningKey{
		KeyID:      KeyIDFor(pub),
		PrivatePEM: pem.EncodeToMemory(&pem.Block{Type: "PRIVATE KEY", Bytes: der}),
		Private:    priv,
		Public:     pub,
	}, nil
}

// ParseSigningKey reads a PKCS8 PEM Ed25519 private key.
func ParseSigningKey(pemKey []byte) (SigningKey, error) {
	block, _ := pem.Decode(pemKey)
	if block == nil || block.Type != "PRIVATE KEY" {
		return SigningKey{}, errors.New("cryptox: expected PKCS8 PRIVATE KEY block")
	}

	parsed, err := x509.ParsePKCS8PrivateKey(block.Bytes)
	if err != nil {
		return SigningKey{}, fmt.Errorf("cryptox: parse PKCS8: %w", err)
	}

	priv, ok := parsed.(ed25519.PrivateKey)
	if !ok {
		return SigningKey{}, errors.New("cryptox: not an Ed25519 private key")
	}

	pub := priv.Public().(ed25519.PublicKey)
	return SigningKey{KeyID: KeyIDFor(pub), PrivatePEM: pemKey, Private: priv, Public: pub}, nil
}

// KeyIDFor returns a short stable identifier for a public key.
func KeyIDFor(pub ed25519.PublicKey) string {
	sum := sha256.Sum256(pub)
	return hex.EncodeToString(sum[:8])
}
