package crypto

import (
	"crypto/ed25519"
	"crypto/x509"
	"encoding/hex"

	"github.com/ledgerkit/ledgersdk-go/status"
)

func hexLower(b []byte) string { return hex.EncodeToString(b) }

// PrivateKeyFromDER parses a PKCS#8 DER private key, detecting the algorithm
// from its embedded OID.
func PrivateKeyFromDER(der []byte) (PrivateKey, error) {
	if key, err := x509.ParsePKCS8PrivateKey(der); err == nil {
		ed, ok := key.(ed25519.PrivateKey)
		if !ok {
			return PrivateKey{}, status.KeyParse("unsupported PKCS8 key algorithm", nil)
		}
		seed := ed.Seed()
		raw := make([]byte, len(seed))
		copy(raw, seed)
		return PrivateKey{Algorithm: Ed25519, raw: raw}, nil
	}
	return parseEcdsaPrivateFromDER(der)
}

// PublicKeyFromDER parses a SubjectPublicKeyInfo DER public key.
func PublicKeyFromDER(der []byte) (PublicKey, error) {
	if key, err := x509.ParsePKIXPublicKey(der); err == nil {
		ed, ok := key.(ed25519.PublicKey)
		if !ok {
			return PublicKey{}, status.KeyParse("unsupported SubjectPublicKeyInfo algorithm", nil)
		}
		raw := make([]byte, len(ed))
		copy(raw, ed)
		return PublicKey{Algorithm: Ed25519, raw: raw}, nil
	}
	return parseEcdsaPublicFromDER(der)
}

// PrivateKeyFromString parses a private key from its lowercase-or-uppercase
// hex DER string form, tolerating an optional "0x" prefix.
func PrivateKeyFromString(s string) (PrivateKey, error) {
	der, err := parseHexMaybePrefixed(s)
	if err != nil {
		return PrivateKey{}, err
	}
	// A bare 32-byte hex string (no DER wrapper) is accepted as a raw
	// Ed25519 seed, matching how short hex key strings commonly appear in
	// fixtures and environment variables.
	if len(der) == 32 {
		return Ed25519PrivateKeyFromBytes(der)
	}
	return PrivateKeyFromDER(der)
}

// PublicKeyFromString parses a public key from its hex DER string form.
func PublicKeyFromString(s string) (PublicKey, error) {
	b, err := parseHexMaybePrefixed(s)
	if err != nil {
		return PublicKey{}, err
	}
	switch len(b) {
	case 32:
		return Ed25519PublicKeyFromBytes(b)
	case 33, 65:
		return EcdsaPublicKeyFromBytes(b)
	default:
		return PublicKeyFromDER(b)
	}
}
